package postgres

import (
	"context"
	"time"

	"barista/internal/adapter/sqlutil"
	"barista/internal/domain"

	"github.com/google/uuid"
)

var _ domain.CoffeeRepository = (*DB)(nil)

// SaveCoffee inserts a new coffee record and returns its id.
func (d *DB) SaveCoffee(ctx context.Context, c domain.NewCoffee) (string, error) {
	id := uuid.NewString()
	args := append([]any{id}, sqlutil.CoffeeArgs(c)...)
	args = append(args, time.Now().UTC())
	_, err := d.sql.ExecContext(ctx,
		"INSERT INTO coffees(id, name, origin, roast_level, grind_size, water_temperature, coffee_amount, notes, created_at) VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9);",
		args...,
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

// FetchAllCoffees returns every coffee record in creation order.
func (d *DB) FetchAllCoffees(ctx context.Context) ([]domain.CoffeeRecord, error) {
	rows, err := d.sql.QueryContext(ctx, "SELECT "+sqlutil.CoffeeColumns+" FROM coffees ORDER BY seq;")
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := []domain.CoffeeRecord{}
	for rows.Next() {
		r, err := sqlutil.ScanCoffee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
