package service

import (
	"context"
	"time"

	"github.com/alimenta/alimenta/internal/metrics"
	"github.com/alimenta/alimenta/internal/model"
)

// FoodStore is the persistence surface FoodService depends on.
type FoodStore interface {
	ListFoodItems(ctx context.Context, nameFilter string) ([]*model.FoodItem, error)
}

// FoodService handles food catalog lookups.
type FoodService struct {
	store   FoodStore
	metrics metrics.Recorder
}

// NewFoodService creates a new FoodService.
func NewFoodService(store FoodStore, recorder metrics.Recorder) *FoodService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &FoodService{
		store:   store,
		metrics: recorder,
	}
}

// ListFoodItems returns food items whose name contains the filter.
// An empty filter returns the whole catalog.
func (s *FoodService) ListFoodItems(ctx context.Context, nameFilter string) ([]*model.FoodItem, error) {
	start := time.Now()
	defer func() {
		s.metrics.ObserveFoodLookupDuration(time.Since(start))
	}()

	items, err := s.store.ListFoodItems(ctx, nameFilter)
	if err != nil {
		return nil, err
	}

	s.metrics.IncFoodLookup()

	return items, nil
}
