package commands

import (
	"errors"

	"foodtasker/internal/core/domain/model/kernel"
	"foodtasker/internal/pkg/guard"
)

var (
	ErrRegisterRestaurantCommandIsNotConstructed = errors.New(
		"RegisterRestaurantCommand must be created via NewRegisterRestaurantCommand constructor",
	)
	ErrRestaurantNameIsRequired = errors.New("restaurant name is required")
)

// RegisterRestaurantCommand represents onboarding a restaurant onto the
// platform, or updating its profile if it is already registered.
type RegisterRestaurantCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	name         string
	phone        string
	address      string
	logoImage    string

	guard guard.ConstructorGuard
}

// NewRegisterRestaurantCommand creates a command to register a restaurant.
// Validates the identifier and requires a name; the remaining profile
// fields are optional.
func NewRegisterRestaurantCommand(
	restaurantID kernel.UUID,
	name string,
	phone string,
	address string,
	logoImage string,
) (RegisterRestaurantCommand, error) {
	registerCommand := RegisterRestaurantCommand{
		phone:     phone,
		address:   address,
		logoImage: logoImage,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		registerCommand.setRestaurantID(restaurantID),
		registerCommand.setName(name),
	); err != nil {
		return RegisterRestaurantCommand{}, err
	}

	return registerCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrRegisterRestaurantCommandIsNotConstructed)
}

// RestaurantID returns the restaurant's identifier.
func (c RegisterRestaurantCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Name returns the restaurant's display name.
func (c RegisterRestaurantCommand) Name() string {
	return c.name
}

// Phone returns the restaurant's contact phone.
func (c RegisterRestaurantCommand) Phone() string {
	return c.phone
}

// Address returns the restaurant's street address.
func (c RegisterRestaurantCommand) Address() string {
	return c.address
}

// LogoImage returns the restaurant's logo image reference.
func (c RegisterRestaurantCommand) LogoImage() string {
	return c.logoImage
}

func (c *RegisterRestaurantCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *RegisterRestaurantCommand) setName(name string) error {
	if name == "" {
		return ErrRestaurantNameIsRequired
	}

	c.name = name
	return nil
}
