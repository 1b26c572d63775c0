// Package remote implements the coffee gateway against another barista
// server's HTTP API.
package remote

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"barista/internal/domain"

	"github.com/go-resty/resty/v2"
)

// Client is a coffee repository that forwards to a remote server.
type Client struct {
	http *resty.Client
}

var _ domain.CoffeeRepository = (*Client)(nil)

// New creates a Client for the server at baseURL. token, when set, is sent
// as a bearer token.
func New(baseURL, token string) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10*time.Second).
		SetHeader("Accept", "application/json")
	if token != "" {
		c.SetAuthToken(token)
	}
	return &Client{http: c}
}

type apiError struct {
	Error string `json:"error"`
	Field string `json:"field"`
}

// SaveCoffee posts c to the remote server and returns the id it assigned.
func (c *Client) SaveCoffee(ctx context.Context, nc domain.NewCoffee) (string, error) {
	var out struct {
		ID string `json:"id"`
	}
	var apiErr apiError
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(toForm(nc)).
		SetResult(&out).
		SetError(&apiErr).
		Post("/api/coffees")
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", fmt.Errorf("remote save: %s: %s", resp.Status(), apiErr.Error)
	}
	return out.ID, nil
}

// FetchAllCoffees lists every record on the remote server. It reads the
// unfiltered route, which fails when the remote store does.
func (c *Client) FetchAllCoffees(ctx context.Context) ([]domain.CoffeeRecord, error) {
	var out struct {
		Items []domain.CoffeeRecord `json:"items"`
	}
	var apiErr apiError
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		SetError(&apiErr).
		Get("/api/coffees/all")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("remote fetch: %s: %s", resp.Status(), apiErr.Error)
	}
	return out.Items, nil
}

// toForm renders a validated payload back into form text so the remote
// server applies its own validation.
func toForm(c domain.NewCoffee) domain.CoffeeForm {
	f := domain.CoffeeForm{Name: c.Name, Origin: c.Origin, RoastLevel: string(c.RoastLevel)}
	if c.GrindSize != nil {
		f.GrindSize = strconv.Itoa(*c.GrindSize)
	}
	if c.WaterTemperature != nil {
		f.WaterTemperature = strconv.FormatFloat(*c.WaterTemperature, 'f', -1, 64)
	}
	if c.CoffeeAmount != nil {
		f.CoffeeAmount = strconv.FormatFloat(*c.CoffeeAmount, 'f', -1, 64)
	}
	if c.Notes != nil {
		f.Notes = *c.Notes
	}
	return f
}
