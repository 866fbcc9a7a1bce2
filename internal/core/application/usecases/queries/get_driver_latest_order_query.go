package queries

import (
	"errors"

	"foodtasker/internal/core/domain/model/kernel"
	"foodtasker/internal/pkg/guard"
)

var ErrGetDriverLatestOrderQueryIsNotConstructed = errors.New(
	"GetDriverLatestOrderQuery must be created via NewGetDriverLatestOrderQuery constructor",
)

// GetDriverLatestOrderQuery retrieves the order a driver most recently
// picked up, delivered or not.
type GetDriverLatestOrderQuery struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDriverLatestOrderQuery creates a query for a driver's latest order.
// Validates the driver identifier.
func NewGetDriverLatestOrderQuery(driverID kernel.UUID) (GetDriverLatestOrderQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetDriverLatestOrderQuery{}, err
	}

	return GetDriverLatestOrderQuery{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriverLatestOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverLatestOrderQueryIsNotConstructed)
}

// DriverID returns the identifier of the driver.
func (q GetDriverLatestOrderQuery) DriverID() kernel.UUID {
	return q.driverID
}
