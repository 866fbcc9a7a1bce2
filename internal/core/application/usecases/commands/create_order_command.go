package commands

import (
	"errors"

	"foodtasker/internal/core/domain/model/kernel"
	"foodtasker/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrAddressIsRequired     = errors.New("address is required")
	ErrOrderLinesAreRequired = errors.New("at least one order line is required")
	ErrQuantityIsInvalid     = errors.New("quantity must be greater than 0")
	ErrStripeTokenIsRequired = errors.New("stripe token is required")
)

// OrderLineInput is a single requested meal with its quantity. Prices are
// never accepted from the caller; the handler resolves them from the meal
// catalog at checkout time.
type OrderLineInput struct {
	mealID   kernel.UUID
	quantity int
}

// NewOrderLineInput creates a validated order line request.
func NewOrderLineInput(mealID kernel.UUID, quantity int) (OrderLineInput, error) {
	if err := mealID.Validate(); err != nil {
		return OrderLineInput{}, err
	}

	if quantity <= 0 {
		return OrderLineInput{}, ErrQuantityIsInvalid
	}

	return OrderLineInput{mealID: mealID, quantity: quantity}, nil
}

// MealID returns the requested meal's identifier.
func (l OrderLineInput) MealID() kernel.UUID {
	return l.mealID
}

// Quantity returns the requested quantity.
func (l OrderLineInput) Quantity() int {
	return l.quantity
}

// CreateOrderCommand represents a customer's request to place an order at a
// restaurant. Carries the delivery address, the requested meals, and the
// card token used to charge the customer before the order is persisted.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	line, _ := NewOrderLineInput(mealID, 2)
//	cmd, err := NewCreateOrderCommand(orderID, customerID, restaurantID,
//		"123 Main Street", []OrderLineInput{line}, "tok_visa")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, gateway, clock)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	customerID   kernel.UUID
	restaurantID kernel.UUID
	address      string
	lines        []OrderLineInput
	stripeToken  string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates that all identifiers are valid, the address is not empty, there
// is at least one line, and a card token is present.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	address string,
	lines []OrderLineInput,
	stripeToken string,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomerID(customerID),
		orderCommand.setRestaurantID(restaurantID),
		orderCommand.setAddress(address),
		orderCommand.setLines(lines),
		orderCommand.setStripeToken(stripeToken),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the identifier of the ordering customer.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// RestaurantID returns the identifier of the chosen restaurant.
func (c CreateOrderCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Address returns the delivery address.
func (c CreateOrderCommand) Address() string {
	return c.address
}

// Lines returns the requested meals with their quantities.
func (c CreateOrderCommand) Lines() []OrderLineInput {
	return c.lines
}

// StripeToken returns the single-use card token for the charge.
func (c CreateOrderCommand) StripeToken() string {
	return c.stripeToken
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *CreateOrderCommand) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}

	c.address = address
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLineInput) error {
	if len(lines) == 0 {
		return ErrOrderLinesAreRequired
	}

	for _, line := range lines {
		if line.quantity <= 0 {
			return ErrQuantityIsInvalid
		}
	}

	c.lines = lines
	return nil
}

func (c *CreateOrderCommand) setStripeToken(stripeToken string) error {
	if stripeToken == "" {
		return ErrStripeTokenIsRequired
	}

	c.stripeToken = stripeToken
	return nil
}
