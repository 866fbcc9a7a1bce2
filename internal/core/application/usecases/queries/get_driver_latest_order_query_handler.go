package queries

import (
	"context"
	"database/sql"
	"errors"

	"foodtasker/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetDriverLatestOrderQueryHandler fetches the order the driver most
// recently picked up, with its lines. Reuses OrderDetailsResponse.
type GetDriverLatestOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetDriverLatestOrderQueryHandler creates a handler for driver order tracking.
func NewGetDriverLatestOrderQueryHandler(db *gorm.DB) GetDriverLatestOrderQueryHandler {
	return GetDriverLatestOrderQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ObjectNotFoundError when the
// driver has never picked up an order.
func (h GetDriverLatestOrderQueryHandler) Handle(
	ctx context.Context,
	query GetDriverLatestOrderQuery,
) (OrderDetailsResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderDetailsResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			r.name,
			COALESCE(d.name, ''),
			o.address,
			o.status,
			o.total_cents,
			o.created_at,
			o.picked_at
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		LEFT JOIN drivers d ON d.id = o.driver_id
		WHERE o.driver_id = ?
		ORDER BY o.picked_at DESC, o.id DESC
		LIMIT 1
	`, query.DriverID().String()).Row()

	details, err := scanOrderDetails(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderDetailsResponse{}, errs.NewObjectNotFoundError("driver_id", query.DriverID())
		}
		return OrderDetailsResponse{}, err
	}

	details.Lines, err = loadOrderLines(ctx, h.db, details.ID)
	if err != nil {
		return OrderDetailsResponse{}, err
	}

	return details, nil
}
