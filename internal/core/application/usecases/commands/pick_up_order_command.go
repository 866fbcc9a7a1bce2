package commands

import (
	"errors"

	"foodtasker/internal/core/domain/model/kernel"
	"foodtasker/internal/pkg/guard"
)

var ErrPickUpOrderCommandIsNotConstructed = errors.New(
	"PickUpOrderCommand must be created via NewPickUpOrderCommand constructor",
)

// PickUpOrderCommand represents a driver claiming a ready order.
// Many drivers may race for the same order; exactly one claim wins.
type PickUpOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewPickUpOrderCommand creates a command for a driver to claim an order.
// Validates both identifiers.
func NewPickUpOrderCommand(orderID kernel.UUID, driverID kernel.UUID) (PickUpOrderCommand, error) {
	pickUpCommand := PickUpOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		pickUpCommand.setOrderID(orderID),
		pickUpCommand.setDriverID(driverID),
	); err != nil {
		return PickUpOrderCommand{}, err
	}

	return pickUpCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c PickUpOrderCommand) Validate() error {
	return c.guard.Validate(ErrPickUpOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being claimed.
func (c PickUpOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DriverID returns the identifier of the claiming driver.
func (c PickUpOrderCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *PickUpOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PickUpOrderCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}
