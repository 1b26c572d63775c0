// Package app holds the application services and business logic.
package app

import (
	"context"
	"errors"

	"barista/internal/domain"

	"go.uber.org/zap"
)

// CoffeeService encapsulates the add-coffee and coffee-list use cases.
type CoffeeService struct {
	repo domain.CoffeeRepository
	log  *zap.Logger
}

// NewCoffeeService creates a CoffeeService backed by the given gateway.
func NewCoffeeService(repo domain.CoffeeRepository, log *zap.Logger) *CoffeeService {
	if log == nil {
		log = zap.NewNop()
	}
	return &CoffeeService{repo: repo, log: log}
}

// Add validates the form and saves the resulting record, returning its id.
// Errors are either *domain.ValidationError or *domain.PersistenceError.
func (s *CoffeeService) Add(ctx context.Context, form domain.CoffeeForm) (string, error) {
	c, err := domain.ValidateCoffee(form)
	if err != nil {
		return "", err
	}
	id, err := s.repo.SaveCoffee(ctx, c)
	if err != nil {
		s.log.Error("save coffee", zap.String("name", c.Name), zap.Error(err))
		return "", &domain.PersistenceError{Op: "save", Err: err}
	}
	s.log.Info("coffee saved", zap.String("id", id), zap.String("name", c.Name))
	return id, nil
}

// List returns all records matching query. A gateway failure is logged and
// yields an empty list.
func (s *CoffeeService) List(ctx context.Context, query string) []domain.CoffeeRecord {
	records, err := s.All(ctx)
	if err != nil {
		s.log.Warn("fetch coffees failed, showing empty list", zap.Error(err))
		return []domain.CoffeeRecord{}
	}
	return domain.FilterCoffees(records, query)
}

// All returns every stored record in creation order.
func (s *CoffeeService) All(ctx context.Context) ([]domain.CoffeeRecord, error) {
	records, err := s.repo.FetchAllCoffees(ctx)
	if err != nil {
		var pe *domain.PersistenceError
		if errors.As(err, &pe) {
			return nil, err
		}
		return nil, &domain.PersistenceError{Op: "fetch", Err: err}
	}
	if records == nil {
		records = []domain.CoffeeRecord{}
	}
	return records, nil
}
