// Package sqlutil holds helpers shared by the database/sql gateways.
package sqlutil

import (
	"database/sql"

	"barista/internal/domain"
)

// CoffeeColumns is the column list ScanCoffee expects, in order.
const CoffeeColumns = "id, name, origin, roast_level, grind_size, water_temperature, coffee_amount, notes, rating, created_at"

// Scanner is satisfied by *sql.Row and *sql.Rows.
type Scanner interface {
	Scan(dest ...any) error
}

// ScanCoffee reads one row selected with CoffeeColumns.
func ScanCoffee(s Scanner) (domain.CoffeeRecord, error) {
	var (
		r      domain.CoffeeRecord
		roast  string
		grind  sql.NullInt64
		temp   sql.NullFloat64
		amount sql.NullFloat64
		notes  sql.NullString
		rating sql.NullFloat64
	)
	if err := s.Scan(&r.ID, &r.Name, &r.Origin, &roast, &grind, &temp, &amount, &notes, &rating, &r.CreatedAt); err != nil {
		return domain.CoffeeRecord{}, err
	}
	r.RoastLevel = domain.RoastLevel(roast)
	r.GrindSize = IntPtr(grind)
	r.WaterTemperature = FloatPtr(temp)
	r.CoffeeAmount = FloatPtr(amount)
	r.Notes = StringPtr(notes)
	r.Rating = FloatPtr(rating)
	r.CreatedAt = r.CreatedAt.UTC()
	return r, nil
}

// CoffeeArgs returns the insert arguments for c after id, in CoffeeColumns
// order up to notes.
func CoffeeArgs(c domain.NewCoffee) []any {
	return []any{c.Name, c.Origin, string(c.RoastLevel), NullInt(c.GrindSize), NullFloat(c.WaterTemperature), NullFloat(c.CoffeeAmount), NullString(c.Notes)}
}

// IntPtr converts a nullable integer column to *int.
func IntPtr(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}

// FloatPtr converts a nullable real column to *float64.
func FloatPtr(n sql.NullFloat64) *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Float64
	return &v
}

// StringPtr converts a nullable text column to *string.
func StringPtr(n sql.NullString) *string {
	if !n.Valid {
		return nil
	}
	v := n.String
	return &v
}

// NullInt is the insert argument for an optional int; nil is NULL.
func NullInt(p *int) sql.NullInt64 {
	if p == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*p), Valid: true}
}

// NullFloat is the insert argument for an optional float; nil is NULL.
func NullFloat(p *float64) sql.NullFloat64 {
	if p == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *p, Valid: true}
}

// NullString is the insert argument for optional text; nil is NULL.
func NullString(p *string) sql.NullString {
	if p == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *p, Valid: true}
}
