package queries

import (
	"errors"
	"time"

	"foodtasker/internal/core/domain/model/kernel"
	"foodtasker/internal/pkg/guard"
)

var ErrGetCustomerLatestOrderQueryIsNotConstructed = errors.New(
	"GetCustomerLatestOrderQuery must be created via NewGetCustomerLatestOrderQuery constructor",
)

// GetCustomerLatestOrderQuery retrieves the customer's most recent order so
// their app can show its progress.
type GetCustomerLatestOrderQuery struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCustomerLatestOrderQuery creates a query for a customer's latest order.
// Validates the customer identifier.
func NewGetCustomerLatestOrderQuery(customerID kernel.UUID) (GetCustomerLatestOrderQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerLatestOrderQuery{}, err
	}

	return GetCustomerLatestOrderQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerLatestOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerLatestOrderQueryIsNotConstructed)
}

// CustomerID returns the identifier of the customer.
func (q GetCustomerLatestOrderQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// OrderLineResponse represents one line of an order as shown to apps.
// SubTotalCents is the snapshot taken at checkout, not the meal's current price.
type OrderLineResponse struct {
	MealName      string
	Quantity      int
	SubTotalCents int64
}

// OrderDetailsResponse represents a full order as shown to customers and
// drivers. DriverName is empty until a driver picks the order up.
type OrderDetailsResponse struct {
	ID             kernel.UUID
	RestaurantName string
	DriverName     string
	Address        string
	Status         string
	TotalCents     int64
	CreatedAt      time.Time
	PickedAt       *time.Time
	Lines          []OrderLineResponse
}
