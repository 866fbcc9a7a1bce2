package queries

import (
	"errors"

	"foodtasker/internal/core/domain/model/kernel"
	"foodtasker/internal/pkg/guard"
)

var ErrGetMealsQueryIsNotConstructed = errors.New(
	"GetMealsQuery must be created via NewGetMealsQuery constructor",
)

// GetMealsQuery retrieves a restaurant's menu for the customer app.
type GetMealsQuery struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetMealsQuery creates a query to list one restaurant's meals.
// Validates the restaurant identifier.
func NewGetMealsQuery(restaurantID kernel.UUID) (GetMealsQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetMealsQuery{}, err
	}

	return GetMealsQuery{
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMealsQuery) Validate() error {
	return q.guard.Validate(ErrGetMealsQueryIsNotConstructed)
}

// RestaurantID returns the identifier of the restaurant whose menu is wanted.
func (q GetMealsQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

// GetMealsQueryResponse represents one menu item.
// PriceCents is the price in the smallest currency unit.
type GetMealsQueryResponse struct {
	ID               kernel.UUID
	Name             string
	ShortDescription string
	Image            string
	PriceCents       int64
}
