package ports

import (
	"context"

	"foodtasker/internal/core/domain/model/kernel"
	"foodtasker/internal/core/domain/model/meal"
)

// MealRepository defines the persistence contract for meal aggregates.
type MealRepository interface {
	// Add persists a new meal aggregate to storage.
	Add(ctx context.Context, aggregate *meal.Meal) error

	// Update persists changes to an existing meal aggregate.
	Update(ctx context.Context, aggregate *meal.Meal) error

	// Get retrieves a meal aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*meal.Meal, error)
}
