package main

import (
	"context"
	"fmt"

	"barista/internal/adapter/memory"
	"barista/internal/adapter/postgres"
	"barista/internal/adapter/redisstore"
	"barista/internal/adapter/remote"
	"barista/internal/adapter/sqlite"
	"barista/internal/config"
	"barista/internal/domain"

	"go.uber.org/zap"
)

// stores bundles the repositories chosen by the store driver.
type stores struct {
	coffees  domain.CoffeeRepository
	users    domain.UserRepository
	sessions domain.SessionRepository
	closers  []func() error

	// persistentUsers is false when users and sessions die with the process.
	persistentUsers bool
}

func (s *stores) Close() error {
	var first error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// openStores connects the persistence gateway. Users and sessions live in
// the postgres or sqlite database when one is selected and in process
// memory otherwise.
func openStores(ctx context.Context, cfg *config.Config, log *zap.Logger) (*stores, error) {
	mem := memory.New()
	s := &stores{coffees: mem, users: mem, sessions: mem.NewSessionRepo()}

	switch cfg.Store.Driver {
	case config.DriverMemory:
	case config.DriverPostgres:
		db, err := postgres.Open(cfg.Store.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("postgres: %w", err)
		}
		s.coffees, s.users, s.sessions = db, db, postgres.NewSessionRepo(db)
		s.closers = append(s.closers, db.Close)
		s.persistentUsers = true
	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.Store.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("sqlite: %w", err)
		}
		s.coffees, s.users, s.sessions = db, db, sqlite.NewSessionRepo(db)
		s.closers = append(s.closers, db.Close)
		s.persistentUsers = true
	case config.DriverRedis:
		r := cfg.Store.Redis
		client, err := redisstore.Dial(ctx, r.Addr, r.Password, r.DB)
		if err != nil {
			return nil, err
		}
		s.coffees = redisstore.New(redisstore.NewRedisKV(client), r.Prefix)
		s.closers = append(s.closers, client.Close)
	case config.DriverRemote:
		s.coffees = remote.New(cfg.Store.RemoteURL, cfg.Store.RemoteToken)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}

	log.Debug("store opened", zap.String("driver", cfg.Store.Driver))
	return s, nil
}
