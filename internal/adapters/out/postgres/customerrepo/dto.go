// Package customerrepo provides persistence for customer profiles.
package customerrepo

import (
	"foodtasker/internal/core/domain/model/customer"
	"foodtasker/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for persisting customers.
type CustomerDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name    string
	Avatar  string
	Phone   string
	Address string
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(aggregate *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:      aggregate.ID().Bytes(),
		Name:    aggregate.Name(),
		Avatar:  aggregate.Avatar(),
		Phone:   aggregate.Phone(),
		Address: aggregate.Address(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(id, dto.Name, dto.Avatar, dto.Phone, dto.Address)
}
