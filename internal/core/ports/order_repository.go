package ports

import (
	"context"
	"time"

	"foodtasker/internal/core/domain/model/kernel"
	"foodtasker/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their status and driver assignment state.
type OrderRepository interface {
	// Add persists a new order aggregate together with its lines.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its lines loaded.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// HasActiveOrder reports whether the customer has an order that has
	// not yet been delivered.
	HasActiveOrder(ctx context.Context, customerID kernel.UUID) (bool, error)

	// HasOrderOnTheWay reports whether the driver is currently carrying
	// an order.
	HasOrderOnTheWay(ctx context.Context, driverID kernel.UUID) (bool, error)

	// AssignDriver atomically claims a ready, unassigned order for the
	// driver. The claim succeeds only if no other driver got there first;
	// a lost race returns order.ErrAlreadyPicked.
	AssignDriver(ctx context.Context, orderID kernel.UUID, driverID kernel.UUID, pickedAt time.Time) error
}
