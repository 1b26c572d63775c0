package remote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	adapthttp "barista/internal/adapter/http"
	"barista/internal/adapter/memory"
	"barista/internal/app"
	"barista/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveCoffee(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/coffees", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		var form domain.CoffeeForm
		require.NoError(t, json.NewDecoder(r.Body).Decode(&form))
		assert.Equal(t, "Yirgacheffe", form.Name)
		assert.Equal(t, "5", form.GrindSize)
		assert.Equal(t, "93.5", form.WaterTemperature)
		assert.Equal(t, "", form.CoffeeAmount)
		assert.Equal(t, "light", form.RoastLevel)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"remote-1"}`))
	}))
	defer ts.Close()

	grind, temp := 5, 93.5
	id, err := New(ts.URL, "tok").SaveCoffee(context.Background(), domain.NewCoffee{
		Name: "Yirgacheffe", Origin: "Ethiopia", RoastLevel: domain.RoastLight, GrindSize: &grind, WaterTemperature: &temp,
	})
	require.NoError(t, err)
	assert.Equal(t, "remote-1", id)
}

func TestSaveCoffee_RemoteRejects(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"could not save coffee"}`))
	}))
	defer ts.Close()

	_, err := New(ts.URL, "").SaveCoffee(context.Background(), domain.NewCoffee{Name: "a", Origin: "b"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not save coffee")
}

func TestFetchAllCoffees(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/coffees/all", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[{"id":"1","name":"Brazil Bourbon","origin":"Brazil","roastLevel":"medium","grindSize":4,"rating":4.5},{"id":"2","name":"Geisha","origin":"Panama","roastLevel":"light"}]}`))
	}))
	defer ts.Close()

	records, err := New(ts.URL, "").FetchAllCoffees(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, domain.RoastMedium, records[0].RoastLevel)
	require.NotNil(t, records[0].GrindSize)
	assert.Equal(t, 4, *records[0].GrindSize)
	assert.Nil(t, records[1].Rating)
}

func TestFetchAllCoffees_Unauthorized(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer ts.Close()

	_, err := New(ts.URL, "").FetchAllCoffees(context.Background())
	assert.Error(t, err)
}

type downRepo struct{}

func (downRepo) SaveCoffee(context.Context, domain.NewCoffee) (string, error) {
	return "", errors.New("db down")
}

func (downRepo) FetchAllCoffees(context.Context) ([]domain.CoffeeRecord, error) {
	return nil, errors.New("db down")
}

// newUpstream runs a real barista API over repo, reachable with token "tok".
func newUpstream(t *testing.T, repo domain.CoffeeRepository) *httptest.Server {
	t.Helper()
	mem := memory.New()
	cs := app.NewCoffeeService(repo, nil)
	bs := app.NewBrewService()
	auth := app.NewAuthService(mem, mem.NewSessionRepo()).WithAPIToken("tok")
	ts := httptest.NewServer(adapthttp.New(cs, bs, app.NewDashboardService(cs, bs), auth, t.TempDir(), nil).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func TestFetchAllCoffees_UpstreamStoreDown(t *testing.T) {
	ts := newUpstream(t, downRepo{})

	records, err := app.NewCoffeeService(New(ts.URL, "tok"), nil).All(context.Background())
	require.Error(t, err)
	assert.Nil(t, records)

	var pe *domain.PersistenceError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "fetch", pe.Op)
	assert.Contains(t, err.Error(), "could not load coffees")
}

func TestRoundTripThroughServer(t *testing.T) {
	ts := newUpstream(t, memory.New())
	client := New(ts.URL, "tok")
	ctx := context.Background()

	grind := 6
	id1, err := client.SaveCoffee(ctx, domain.NewCoffee{Name: "Huila", Origin: "Colombia", RoastLevel: domain.RoastMediumDark, GrindSize: &grind})
	require.NoError(t, err)
	id2, err := client.SaveCoffee(ctx, domain.NewCoffee{Name: "Sidamo", Origin: "Ethiopia", RoastLevel: domain.RoastLight})
	require.NoError(t, err)

	records, err := client.FetchAllCoffees(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, id1, records[0].ID)
	assert.Equal(t, id2, records[1].ID)
	assert.Equal(t, domain.RoastMediumDark, records[0].RoastLevel)
	require.NotNil(t, records[0].GrindSize)
	assert.Equal(t, 6, *records[0].GrindSize)

	_, err = New(ts.URL, "wrong").FetchAllCoffees(ctx)
	assert.Error(t, err)
}
