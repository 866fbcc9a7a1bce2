// Package driverrepo provides persistence for driver profiles and positions.
package driverrepo

import (
	"foodtasker/internal/core/domain/model/driver"
	"foodtasker/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO represents the database structure for persisting drivers.
// Location holds the last reported position as an opaque string.
type DriverDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string
	Avatar   string
	Phone    string
	Address  string
	Location string
}

// TableName specifies the database table name for driver entities.
func (DriverDTO) TableName() string {
	return "drivers"
}

func fromDomain(aggregate *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:       aggregate.ID().Bytes(),
		Name:     aggregate.Name(),
		Avatar:   aggregate.Avatar(),
		Phone:    aggregate.Phone(),
		Address:  aggregate.Address(),
		Location: aggregate.Location(),
	}
}

func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(id, dto.Name, dto.Avatar, dto.Phone, dto.Address, dto.Location)
}
