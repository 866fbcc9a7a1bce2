package queries

import (
	"errors"

	"foodtasker/internal/core/domain/model/kernel"
	"foodtasker/internal/pkg/guard"
)

var ErrGetRestaurantsQueryIsNotConstructed = errors.New(
	"GetRestaurantsQuery must be created via NewGetRestaurantsQuery constructor",
)

// GetRestaurantsQuery retrieves every restaurant on the platform for the
// customer app's browse screen.
//
// Example:
//
//	query := NewGetRestaurantsQuery()
//	handler := NewGetRestaurantsQueryHandler(db)
//
//	restaurants, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list restaurants: %w", err)
//	}
type GetRestaurantsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetRestaurantsQuery creates a query to list all restaurants.
// This is a parameterless query.
func NewGetRestaurantsQuery() GetRestaurantsQuery {
	return GetRestaurantsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetRestaurantsQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantsQueryIsNotConstructed)
}

// GetRestaurantsQueryResponse represents one restaurant in the browse list.
type GetRestaurantsQueryResponse struct {
	ID        kernel.UUID
	Name      string
	Phone     string
	Address   string
	LogoImage string
}
