// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"foodtasker/internal/core/domain/model/kernel"
	"foodtasker/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed for the hot paths: customer active-order checks, driver assignment,
// and status scans for the ready-order list.
type OrderDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID  `gorm:"type:uuid;index"`
	RestaurantID uuid.UUID  `gorm:"type:uuid;index"`
	DriverID     *uuid.UUID `gorm:"type:uuid;index"`
	Address      string
	TotalCents   int64
	Status       int `gorm:"index"`
	CreatedAt    time.Time
	PickedAt     *time.Time
	Lines        []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO represents one persisted order line. SubTotalCents is the
// checkout-time snapshot and never changes after the order is placed.
type OrderLineDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID `gorm:"type:uuid;index"`
	MealID        uuid.UUID `gorm:"type:uuid;index"`
	Quantity      int
	SubTotalCents int64
}

// TableName specifies the database table name for order lines.
func (OrderLineDTO) TableName() string {
	return "order_details"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var driverID *uuid.UUID
	if id := aggregate.Driver(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	lines := make([]OrderLineDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lines = append(lines, OrderLineDTO{
			ID:            line.ID().Bytes(),
			OrderID:       aggregate.ID().Bytes(),
			MealID:        line.MealID().Bytes(),
			Quantity:      line.Quantity(),
			SubTotalCents: line.SubTotal().Cents(),
		})
	}

	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		CustomerID:   aggregate.CustomerID().Bytes(),
		RestaurantID: aggregate.RestaurantID().Bytes(),
		DriverID:     driverID,
		Address:      aggregate.Address(),
		TotalCents:   aggregate.Total().Cents(),
		Status:       int(aggregate.Status()),
		CreatedAt:    aggregate.CreatedAt(),
		PickedAt:     aggregate.PickedAt(),
		Lines:        lines,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including lines using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}

		driverID = &dID
	}

	total, err := kernel.NewMoneyFromCents(dto.TotalCents)
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		line, lineErr := lineToDomain(lineDTO)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(
		id,
		customerID,
		restaurantID,
		driverID,
		dto.Address,
		total,
		order.Status(dto.Status),
		dto.CreatedAt,
		dto.PickedAt,
		lines,
	)
}

func lineToDomain(dto OrderLineDTO) (order.Line, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.Line{}, err
	}

	mealID, err := kernel.UUIDFromBytes(dto.MealID[:])
	if err != nil {
		return order.Line{}, err
	}

	subTotal, err := kernel.NewMoneyFromCents(dto.SubTotalCents)
	if err != nil {
		return order.Line{}, err
	}

	return order.RestoreLine(id, mealID, dto.Quantity, subTotal)
}
