package queries

import (
	"errors"
	"time"

	"foodtasker/internal/core/domain/model/kernel"
	"foodtasker/internal/pkg/guard"
)

var ErrGetReadyOrdersQueryIsNotConstructed = errors.New(
	"GetReadyOrdersQuery must be created via NewGetReadyOrdersQuery constructor",
)

// GetReadyOrdersQuery retrieves orders that finished cooking and have no
// driver yet. Driver apps poll this list to find work.
//
// Example:
//
//	query := NewGetReadyOrdersQuery()
//	handler := NewGetReadyOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list ready orders: %w", err)
//	}
type GetReadyOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetReadyOrdersQuery creates a query to list claimable orders.
// This is a parameterless query.
func NewGetReadyOrdersQuery() GetReadyOrdersQuery {
	return GetReadyOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetReadyOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetReadyOrdersQueryIsNotConstructed)
}

// GetReadyOrdersQueryResponse represents one claimable order.
type GetReadyOrdersQueryResponse struct {
	ID             kernel.UUID
	RestaurantName string
	Address        string
	TotalCents     int64
	CreatedAt      time.Time
}
