// Package mealrepo provides persistence for the meal catalog.
package mealrepo

import (
	"foodtasker/internal/core/domain/model/kernel"
	"foodtasker/internal/core/domain/model/meal"

	"github.com/google/uuid"
)

// MealDTO represents the database structure for persisting meal aggregates.
type MealDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID     uuid.UUID `gorm:"type:uuid;index"`
	Name             string
	ShortDescription string
	Image            string
	PriceCents       int64
}

// TableName specifies the database table name for meal entities.
func (MealDTO) TableName() string {
	return "meals"
}

func fromDomain(aggregate *meal.Meal) MealDTO {
	return MealDTO{
		ID:               aggregate.ID().Bytes(),
		RestaurantID:     aggregate.RestaurantID().Bytes(),
		Name:             aggregate.Name(),
		ShortDescription: aggregate.ShortDescription(),
		Image:            aggregate.Image(),
		PriceCents:       aggregate.Price().Cents(),
	}
}

func toDomain(dto MealDTO) (*meal.Meal, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoneyFromCents(dto.PriceCents)
	if err != nil {
		return nil, err
	}

	return meal.RestoreMeal(id, restaurantID, dto.Name, dto.ShortDescription, dto.Image, price)
}
