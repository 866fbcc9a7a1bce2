package queries

import (
	"context"

	"foodtasker/internal/core/domain/model/kernel"
	"foodtasker/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetReadyOrdersQueryHandler lists ready, unassigned orders, newest first.
type GetReadyOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetReadyOrdersQueryHandler creates a handler for the claimable order list.
func NewGetReadyOrdersQueryHandler(db *gorm.DB) GetReadyOrdersQueryHandler {
	return GetReadyOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve ready orders without a driver.
func (h GetReadyOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetReadyOrdersQuery,
) ([]GetReadyOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetReadyOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			r.name,
			o.address,
			o.total_cents,
			o.created_at
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		WHERE o.status = ? AND o.driver_id IS NULL
		ORDER BY o.created_at DESC, o.id
	`, order.Ready).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetReadyOrdersQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.RestaurantName,
			&resp.Address,
			&resp.TotalCents,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
