package commands

import (
	"errors"

	"foodtasker/internal/core/domain/model/kernel"
	"foodtasker/internal/pkg/guard"
)

var ErrMarkOrderReadyCommandIsNotConstructed = errors.New(
	"MarkOrderReadyCommand must be created via NewMarkOrderReadyCommand constructor",
)

// MarkOrderReadyCommand represents a restaurant reporting that cooking has
// finished for one of its orders.
type MarkOrderReadyCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkOrderReadyCommand creates a command to move an order out of the
// kitchen. Validates both identifiers.
func NewMarkOrderReadyCommand(orderID kernel.UUID, restaurantID kernel.UUID) (MarkOrderReadyCommand, error) {
	readyCommand := MarkOrderReadyCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		readyCommand.setOrderID(orderID),
		readyCommand.setRestaurantID(restaurantID),
	); err != nil {
		return MarkOrderReadyCommand{}, err
	}

	return readyCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOrderReadyCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderReadyCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to mark ready.
func (c MarkOrderReadyCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RestaurantID returns the identifier of the reporting restaurant.
func (c MarkOrderReadyCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

func (c *MarkOrderReadyCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *MarkOrderReadyCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}
