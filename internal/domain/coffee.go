// Package domain contains the core business entities and interfaces.
package domain

import (
	"context"
	"strings"
	"time"
)

// RoastLevel is the roast degree of a coffee bean.
type RoastLevel string

const (
	RoastLight       RoastLevel = "light"
	RoastMediumLight RoastLevel = "medium-light"
	RoastMedium      RoastLevel = "medium"
	RoastMediumDark  RoastLevel = "medium-dark"
	RoastDark        RoastLevel = "dark"
)

// RoastLevels lists every roast level in display order. The first entry is
// the default for new records.
var RoastLevels = []RoastLevel{RoastLight, RoastMediumLight, RoastMedium, RoastMediumDark, RoastDark}

// roastAliases maps the labels shown by the mobile app to roast levels.
var roastAliases = map[string]RoastLevel{
	"淺焙":  RoastLight,
	"中淺焙": RoastMediumLight,
	"中焙":  RoastMedium,
	"中深焙": RoastMediumDark,
	"深焙":  RoastDark,
}

// ParseRoastLevel resolves a roast level from its name or app label.
// Matching on names is case-insensitive.
func ParseRoastLevel(s string) (RoastLevel, bool) {
	s = strings.TrimSpace(s)
	if lvl, ok := roastAliases[s]; ok {
		return lvl, true
	}
	lower := RoastLevel(strings.ToLower(s))
	for _, lvl := range RoastLevels {
		if lvl == lower {
			return lvl, true
		}
	}
	return "", false
}

// CoffeeRecord is one logged coffee bean with its brewing metadata.
type CoffeeRecord struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Origin           string     `json:"origin"`
	RoastLevel       RoastLevel `json:"roastLevel"`
	GrindSize        *int       `json:"grindSize"`
	WaterTemperature *float64   `json:"waterTemperature"`
	CoffeeAmount     *float64   `json:"coffeeAmount"`
	Notes            *string    `json:"notes"`
	Rating           *float64   `json:"rating"`
	CreatedAt        time.Time  `json:"createdAt"`
}

// CoffeeForm holds the raw add-coffee form input. Every field is text as
// typed by the user.
type CoffeeForm struct {
	Name             string `json:"name"`
	Origin           string `json:"origin"`
	RoastLevel       string `json:"roastLevel"`
	GrindSize        string `json:"grindSize"`
	WaterTemperature string `json:"waterTemperature"`
	CoffeeAmount     string `json:"coffeeAmount"`
	Notes            string `json:"notes"`
}

// NewCoffee is a validated, type-converted record ready to be saved.
type NewCoffee struct {
	Name             string     `json:"name"`
	Origin           string     `json:"origin"`
	RoastLevel       RoastLevel `json:"roastLevel"`
	GrindSize        *int       `json:"grindSize"`
	WaterTemperature *float64   `json:"waterTemperature"`
	CoffeeAmount     *float64   `json:"coffeeAmount"`
	Notes            *string    `json:"notes"`
}

// Record builds the stored representation of c under the given id.
func (c NewCoffee) Record(id string, createdAt time.Time) CoffeeRecord {
	return CoffeeRecord{
		ID:               id,
		Name:             c.Name,
		Origin:           c.Origin,
		RoastLevel:       c.RoastLevel,
		GrindSize:        c.GrindSize,
		WaterTemperature: c.WaterTemperature,
		CoffeeAmount:     c.CoffeeAmount,
		Notes:            c.Notes,
		CreatedAt:        createdAt,
	}
}

// CoffeeRepository is the persistence gateway for coffee records.
// Implementations assign the record id and return records in creation order.
type CoffeeRepository interface {
	SaveCoffee(ctx context.Context, c NewCoffee) (string, error)
	FetchAllCoffees(ctx context.Context) ([]CoffeeRecord, error)
}
