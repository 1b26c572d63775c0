package app

import (
	"errors"

	"barista/internal/domain"
)

// ErrGuideNotFound indicates that no brew guide has the requested id.
var ErrGuideNotFound = errors.New("brew guide not found")

// BrewService serves the built-in brewing guides.
type BrewService struct {
	guides []domain.BrewGuide
	drinks []domain.Drink
}

// NewBrewService creates a BrewService over the built-in catalog.
func NewBrewService() *BrewService {
	return &BrewService{guides: domain.BrewGuides(), drinks: domain.SuggestedDrinks()}
}

// Guides returns every guide in display order.
func (s *BrewService) Guides() []domain.BrewGuide {
	return s.guides
}

// Guide returns the guide with the given id.
func (s *BrewService) Guide(id string) (domain.BrewGuide, error) {
	for _, g := range s.guides {
		if g.ID == id {
			return g, nil
		}
	}
	return domain.BrewGuide{}, ErrGuideNotFound
}

// Suggestions returns the drinks recommended on the dashboard.
func (s *BrewService) Suggestions() []domain.Drink {
	return s.drinks
}
