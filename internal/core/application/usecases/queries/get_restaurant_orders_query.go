package queries

import (
	"errors"
	"time"

	"foodtasker/internal/core/domain/model/kernel"
	"foodtasker/internal/pkg/guard"
)

var ErrGetRestaurantOrdersQueryIsNotConstructed = errors.New(
	"GetRestaurantOrdersQuery must be created via NewGetRestaurantOrdersQuery constructor",
)

// GetRestaurantOrdersQuery retrieves a restaurant's full order queue,
// newest first, for the kitchen dashboard.
type GetRestaurantOrdersQuery struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRestaurantOrdersQuery creates a query to list a restaurant's orders.
// Validates the restaurant identifier.
func NewGetRestaurantOrdersQuery(restaurantID kernel.UUID) (GetRestaurantOrdersQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetRestaurantOrdersQuery{}, err
	}

	return GetRestaurantOrdersQuery{
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRestaurantOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantOrdersQueryIsNotConstructed)
}

// RestaurantID returns the identifier of the restaurant whose orders are wanted.
func (q GetRestaurantOrdersQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

// GetRestaurantOrdersQueryResponse represents one order in the queue.
type GetRestaurantOrdersQueryResponse struct {
	ID           kernel.UUID
	CustomerName string
	Address      string
	Status       string
	TotalCents   int64
	CreatedAt    time.Time
}
