package queries

import (
	"context"
	"database/sql"
	"errors"

	"foodtasker/internal/core/domain/model/order"
	"foodtasker/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetDriverLocationQueryHandler finds the driver carrying the customer's
// on-the-way order and returns that driver's last reported position.
type GetDriverLocationQueryHandler struct {
	db *gorm.DB
}

// NewGetDriverLocationQueryHandler creates a handler for delivery tracking.
func NewGetDriverLocationQueryHandler(db *gorm.DB) GetDriverLocationQueryHandler {
	return GetDriverLocationQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ObjectNotFoundError when the
// customer has no order currently on the way.
func (h GetDriverLocationQueryHandler) Handle(
	ctx context.Context,
	query GetDriverLocationQuery,
) (GetDriverLocationQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDriverLocationQueryResponse{}, err
	}

	var location string

	row := h.db.WithContext(ctx).Raw(`
		SELECT d.location
		FROM orders o
		JOIN drivers d ON d.id = o.driver_id
		WHERE o.customer_id = ? AND o.status = ?
		ORDER BY o.picked_at DESC, o.id DESC
		LIMIT 1
	`, query.CustomerID().String(), order.OnTheWay).Row()

	if err := row.Scan(&location); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetDriverLocationQueryResponse{},
				errs.NewObjectNotFoundError("customer_id", query.CustomerID())
		}
		return GetDriverLocationQueryResponse{}, err
	}

	return GetDriverLocationQueryResponse{Location: location}, nil
}
