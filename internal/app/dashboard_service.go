package app

import (
	"context"
	"time"

	"barista/internal/domain"
)

// DashboardService computes the home screen summary.
type DashboardService struct {
	coffees *CoffeeService
	brew    *BrewService
}

// NewDashboardService creates a DashboardService over the coffee and brew
// services.
func NewDashboardService(cs *CoffeeService, bs *BrewService) *DashboardService {
	return &DashboardService{coffees: cs, brew: bs}
}

// RoastCount is the number of beans logged at one roast level.
type RoastCount struct {
	Level domain.RoastLevel `json:"level"`
	Count int               `json:"count"`
}

// Summary is the dashboard payload.
type Summary struct {
	BeanCount     int            `json:"beanCount"`
	AddedThisWeek int            `json:"addedThisWeek"`
	AverageRating *float64       `json:"averageRating"`
	Roasts        []RoastCount   `json:"roasts"`
	Suggestions   []domain.Drink `json:"suggestions"`
}

// Summary aggregates the stored records as of now. The week window covers
// the seven days ending at now.
func (s *DashboardService) Summary(ctx context.Context, now time.Time) (*Summary, error) {
	records, err := s.coffees.All(ctx)
	if err != nil {
		return nil, err
	}

	weekStart := now.AddDate(0, 0, -7)
	counts := make(map[domain.RoastLevel]int, len(domain.RoastLevels))
	var ratingSum float64
	var rated int

	sum := &Summary{BeanCount: len(records), Suggestions: s.brew.Suggestions()}
	for _, r := range records {
		if r.CreatedAt.After(weekStart) && !r.CreatedAt.After(now) {
			sum.AddedThisWeek++
		}
		if r.Rating != nil {
			ratingSum += *r.Rating
			rated++
		}
		counts[r.RoastLevel]++
	}
	if rated > 0 {
		avg := ratingSum / float64(rated)
		sum.AverageRating = &avg
	}

	sum.Roasts = make([]RoastCount, 0, len(domain.RoastLevels))
	for _, lvl := range domain.RoastLevels {
		sum.Roasts = append(sum.Roasts, RoastCount{Level: lvl, Count: counts[lvl]})
	}
	return sum, nil
}
