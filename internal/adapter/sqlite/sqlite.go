// Package sqlite implements the coffee gateway on a local SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"barista/internal/adapter/sqlutil"
	"barista/internal/domain"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// DB is a SQLite-backed store for coffees, users and sessions.
type DB struct {
	sql *sql.DB
	now func() time.Time
}

var _ domain.CoffeeRepository = (*DB)(nil)

// Open opens (creating if needed) the database file at path and migrates it.
func Open(ctx context.Context, path string) (*DB, error) {
	s, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, err
	}
	// SQLite allows a single writer.
	s.SetMaxOpenConns(1)

	d := &DB{sql: s, now: time.Now}
	if err := d.migrate(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	return d, nil
}

// Close closes the database.
func (d *DB) Close() error {
	return d.sql.Close()
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS coffees (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		origin TEXT NOT NULL,
		roast_level TEXT NOT NULL,
		grind_size INTEGER,
		water_temperature REAL,
		coffee_amount REAL,
		notes TEXT,
		rating REAL,
		created_at DATETIME NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS sessions (
		token TEXT PRIMARY KEY,
		user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		user_agent TEXT NOT NULL DEFAULT '',
		ip TEXT NOT NULL DEFAULT '',
		expires_at INTEGER NOT NULL,
		created_at DATETIME NOT NULL
	);`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_expires_at ON sessions(expires_at);`,
}

func (d *DB) migrate(ctx context.Context) error {
	for _, stmt := range migrations {
		if _, err := d.sql.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// SaveCoffee inserts a new coffee record and returns its id.
func (d *DB) SaveCoffee(ctx context.Context, c domain.NewCoffee) (string, error) {
	id := uuid.NewString()
	args := append([]any{id}, sqlutil.CoffeeArgs(c)...)
	args = append(args, d.now().UTC())
	if _, err := d.sql.ExecContext(ctx,
		`INSERT INTO coffees(id, name, origin, roast_level, grind_size, water_temperature, coffee_amount, notes, created_at) VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?);`,
		args...,
	); err != nil {
		return "", err
	}
	return id, nil
}

// FetchAllCoffees returns every record in insertion order.
func (d *DB) FetchAllCoffees(ctx context.Context) ([]domain.CoffeeRecord, error) {
	rows, err := d.sql.QueryContext(ctx, `SELECT `+sqlutil.CoffeeColumns+` FROM coffees ORDER BY seq;`)
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
