package commands

import (
	"errors"

	"foodtasker/internal/core/domain/model/kernel"
	"foodtasker/internal/pkg/guard"
)

var (
	ErrUpdateDriverLocationCommandIsNotConstructed = errors.New(
		"UpdateDriverLocationCommand must be created via NewUpdateDriverLocationCommand constructor",
	)
	ErrLocationIsRequired = errors.New("location is required")
)

// UpdateDriverLocationCommand represents a driver app reporting its current
// position. The location is an opaque string ("lat,lng" by convention);
// last write wins.
type UpdateDriverLocationCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID
	location string

	guard guard.ConstructorGuard
}

// NewUpdateDriverLocationCommand creates a command to record a driver's
// position. Validates the driver ID and rejects an empty location.
func NewUpdateDriverLocationCommand(driverID kernel.UUID, location string) (UpdateDriverLocationCommand, error) {
	locationCommand := UpdateDriverLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		locationCommand.setDriverID(driverID),
		locationCommand.setLocation(location),
	); err != nil {
		return UpdateDriverLocationCommand{}, err
	}

	return locationCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDriverLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDriverLocationCommandIsNotConstructed)
}

// DriverID returns the reporting driver's identifier.
func (c UpdateDriverLocationCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Location returns the reported position.
func (c UpdateDriverLocationCommand) Location() string {
	return c.location
}

func (c *UpdateDriverLocationCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *UpdateDriverLocationCommand) setLocation(location string) error {
	if location == "" {
		return ErrLocationIsRequired
	}

	c.location = location
	return nil
}
