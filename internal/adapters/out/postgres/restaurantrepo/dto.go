// Package restaurantrepo provides persistence for restaurant profiles.
package restaurantrepo

import (
	"foodtasker/internal/core/domain/model/kernel"
	"foodtasker/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
)

// RestaurantDTO represents the database structure for persisting restaurants.
type RestaurantDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	Phone     string
	Address   string
	LogoImage string
}

// TableName specifies the database table name for restaurant entities.
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

func fromDomain(aggregate *restaurant.Restaurant) RestaurantDTO {
	return RestaurantDTO{
		ID:        aggregate.ID().Bytes(),
		Name:      aggregate.Name(),
		Phone:     aggregate.Phone(),
		Address:   aggregate.Address(),
		LogoImage: aggregate.LogoImage(),
	}
}

func toDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return restaurant.RestoreRestaurant(id, dto.Name, dto.Phone, dto.Address, dto.LogoImage)
}
