package queries

import (
	"errors"
	"time"

	"foodtasker/internal/core/domain/model/kernel"
	"foodtasker/internal/pkg/guard"
)

var ErrGetOrderNotificationQueryIsNotConstructed = errors.New(
	"GetOrderNotificationQuery must be created via NewGetOrderNotificationQuery constructor",
)

// GetOrderNotificationQuery counts orders a restaurant received since its
// dashboard last asked. The dashboard polls this to ring the new-order bell.
type GetOrderNotificationQuery struct { //nolint:recvcheck //using for validation
	restaurantID    kernel.UUID
	lastRequestTime time.Time

	guard guard.ConstructorGuard
}

// NewGetOrderNotificationQuery creates a notification poll query.
// Validates the restaurant identifier; lastRequestTime may be zero, which
// counts every order the restaurant ever received.
func NewGetOrderNotificationQuery(
	restaurantID kernel.UUID,
	lastRequestTime time.Time,
) (GetOrderNotificationQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetOrderNotificationQuery{}, err
	}

	return GetOrderNotificationQuery{
		restaurantID:    restaurantID,
		lastRequestTime: lastRequestTime,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderNotificationQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderNotificationQueryIsNotConstructed)
}

// RestaurantID returns the polling restaurant's identifier.
func (q GetOrderNotificationQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

// LastRequestTime returns the dashboard's previous poll time.
func (q GetOrderNotificationQuery) LastRequestTime() time.Time {
	return q.lastRequestTime
}

// GetOrderNotificationQueryResponse carries the number of new orders.
type GetOrderNotificationQueryResponse struct {
	Count int64
}
