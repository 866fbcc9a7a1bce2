package mealrepo

import (
	"context"
	"errors"

	"foodtasker/internal/core/domain/model/kernel"
	"foodtasker/internal/core/domain/model/meal"
	"foodtasker/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormMealRepository implements MealRepository using GORM.
type GormMealRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormMealRepository creates a new GORM meal repository.
func NewGormMealRepository(db *gorm.DB, tracker aggregateTracker) *GormMealRepository {
	return &GormMealRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new meal to the database.
func (r *GormMealRepository) Add(ctx context.Context, aggregate *meal.Meal) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing meal to the database.
func (r *GormMealRepository) Update(ctx context.Context, aggregate *meal.Meal) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&MealDTO{}).Where("id = ?", dto.ID).
		Updates(map[string]any{
			"name":              dto.Name,
			"short_description": dto.ShortDescription,
			"image":             dto.Image,
			"price_cents":       dto.PriceCents,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a meal by ID.
func (r *GormMealRepository) Get(ctx context.Context, id kernel.UUID) (*meal.Meal, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MealDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("meal", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
