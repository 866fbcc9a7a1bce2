package queries

import (
	"context"
	"database/sql"
	"errors"

	"foodtasker/internal/core/domain/model/kernel"
	"foodtasker/internal/core/domain/model/order"
	"foodtasker/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCustomerLatestOrderQueryHandler fetches the customer's most recent
// order with its lines for the tracking screen.
type GetCustomerLatestOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerLatestOrderQueryHandler creates a handler for customer order tracking.
func NewGetCustomerLatestOrderQueryHandler(db *gorm.DB) GetCustomerLatestOrderQueryHandler {
	return GetCustomerLatestOrderQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ObjectNotFoundError when the
// customer has never placed an order.
func (h GetCustomerLatestOrderQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerLatestOrderQuery,
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
		WHERE o.customer_id = ?
		ORDER BY o.created_at DESC, o.id DESC
		LIMIT 1
	`, query.CustomerID().String()).Row()

	details, err := scanOrderDetails(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderDetailsResponse{}, errs.NewObjectNotFoundError("customer_id", query.CustomerID())
		}
		return OrderDetailsResponse{}, err
	}

	details.Lines, err = loadOrderLines(ctx, h.db, details.ID)
	if err != nil {
		return OrderDetailsResponse{}, err
	}

	return details, nil
}

// scanOrderDetails scans one order head row into a response.
func scanOrderDetails(row *sql.Row) (OrderDetailsResponse, error) {
	var details OrderDetailsResponse
	var id uuid.UUID
	var status int

	err := row.Scan(
		&id,
		&details.RestaurantName,
		&details.DriverName,
		&details.Address,
		&status,
		&details.TotalCents,
		&details.CreatedAt,
		&details.PickedAt,
	)
	if err != nil {
		return OrderDetailsResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderDetailsResponse{}, err
	}
	details.ID = orderID
	details.Status = order.Status(status).String()

	return details, nil
}

// loadOrderLines fetches the lines of one order joined with meal names.
func loadOrderLines(ctx context.Context, db *gorm.DB, orderID kernel.UUID) ([]OrderLineResponse, error) {
	lines := make([]OrderLineResponse, 0)

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			m.name,
			od.quantity,
			od.sub_total_cents
		FROM order_details od
		JOIN meals m ON m.id = od.meal_id
		WHERE od.order_id = ?
		ORDER BY m.name, od.id
	`, orderID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var line OrderLineResponse
		if err = rows.Scan(&line.MealName, &line.Quantity, &line.SubTotalCents); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
