package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrderNotificationQueryHandler counts orders placed since the restaurant
// dashboard's previous poll. Status does not matter: an order that raced
// through to ready between polls still gets announced.
type GetOrderNotificationQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderNotificationQueryHandler creates a handler for notification polls.
func NewGetOrderNotificationQueryHandler(db *gorm.DB) GetOrderNotificationQueryHandler {
	return GetOrderNotificationQueryHandler{db: db}
}

// Handle executes the poll query.
func (h GetOrderNotificationQueryHandler) Handle(
	ctx context.Context,
	query GetOrderNotificationQuery,
) (GetOrderNotificationQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderNotificationQueryResponse{}, err
	}

	var count int64

	row := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM orders
		WHERE restaurant_id = ? AND created_at > ?
	`, query.RestaurantID().String(), query.LastRequestTime()).Row()

	if err := row.Scan(&count); err != nil {
		return GetOrderNotificationQueryResponse{}, err
	}

	return GetOrderNotificationQueryResponse{Count: count}, nil
}
