package redisstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"barista/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SaveAndFetch(t *testing.T) {
	kv := newFakeKV()
	s := New(kv, "barista:")
	created := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	s.now = func() time.Time { return created }
	ctx := context.Background()

	amount := 18.0
	id1, err := s.SaveCoffee(ctx, domain.NewCoffee{Name: "Yirgacheffe", Origin: "Ethiopia", RoastLevel: domain.RoastLight, CoffeeAmount: &amount})
	require.NoError(t, err)
	id2, err := s.SaveCoffee(ctx, domain.NewCoffee{Name: "Bourbon", Origin: "Brazil", RoastLevel: domain.RoastMedium})
	require.NoError(t, err)

	assert.Contains(t, kv.data, "barista:coffee:"+id1)
	assert.Equal(t, []string{"barista:coffee:" + id1, "barista:coffee:" + id2}, kv.lists["barista:coffees"])

	records, err := s.FetchAllCoffees(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, id1, records[0].ID)
	assert.Equal(t, "Ethiopia", records[0].Origin)
	require.NotNil(t, records[0].CoffeeAmount)
	assert.Equal(t, 18.0, *records[0].CoffeeAmount)
	assert.True(t, records[0].CreatedAt.Equal(created))
	assert.Nil(t, records[1].CoffeeAmount)
}

func TestStore_SkipsMissingDocuments(t *testing.T) {
	kv := newFakeKV()
	s := New(kv, "")
	ctx := context.Background()

	id, err := s.SaveCoffee(ctx, domain.NewCoffee{Name: "a", Origin: "b", RoastLevel: domain.RoastDark})
	require.NoError(t, err)
	delete(kv.data, "coffee:"+id)

	records, err := s.FetchAllCoffees(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestStore_Errors(t *testing.T) {
	kv := newFakeKV()
	kv.err = errors.New("redis: connection pool timeout")
	s := New(kv, "")
	ctx := context.Background()

	_, err := s.SaveCoffee(ctx, domain.NewCoffee{Name: "a", Origin: "b"})
	assert.Error(t, err)
	_, err = s.FetchAllCoffees(ctx)
	assert.Error(t, err)
}

func TestStore_CorruptDocument(t *testing.T) {
	kv := newFakeKV()
	require.NoError(t, kv.Append(context.Background(), "coffees", "coffee:x", "{not json"))

	_, err := New(kv, "").FetchAllCoffees(context.Background())
	assert.ErrorContains(t, err, "unmarshal coffee")
}
