package queries

import (
	"errors"

	"foodtasker/internal/core/domain/model/kernel"
	"foodtasker/internal/pkg/guard"
)

var ErrGetDriverLocationQueryIsNotConstructed = errors.New(
	"GetDriverLocationQuery must be created via NewGetDriverLocationQuery constructor",
)

// GetDriverLocationQuery retrieves the position of the driver carrying the
// customer's current order, so the customer app can draw them on a map.
type GetDriverLocationQuery struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDriverLocationQuery creates a query for the delivering driver's position.
// Validates the customer identifier.
func NewGetDriverLocationQuery(customerID kernel.UUID) (GetDriverLocationQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetDriverLocationQuery{}, err
	}

	return GetDriverLocationQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriverLocationQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverLocationQueryIsNotConstructed)
}

// CustomerID returns the identifier of the customer.
func (q GetDriverLocationQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// GetDriverLocationQueryResponse carries the driver's last reported position.
type GetDriverLocationQueryResponse struct {
	Location string
}
