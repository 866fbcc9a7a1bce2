package commands

import (
	"errors"

	"foodtasker/internal/core/domain/model/kernel"
	"foodtasker/internal/pkg/guard"
)

var (
	ErrAddMealCommandIsNotConstructed = errors.New(
		"AddMealCommand must be created via NewAddMealCommand constructor",
	)
	ErrMealNameIsRequired = errors.New("meal name is required")
	ErrPriceIsInvalid     = errors.New("price must be greater than 0")
)

// AddMealCommand represents a restaurant adding a dish to its menu.
type AddMealCommand struct { //nolint:recvcheck //using for validation
	mealID           kernel.UUID
	restaurantID     kernel.UUID
	name             string
	shortDescription string
	image            string
	price            kernel.Money

	guard guard.ConstructorGuard
}

// NewAddMealCommand creates a command to add a menu item.
// Validates identifiers, requires a name, and requires a positive price.
func NewAddMealCommand(
	mealID kernel.UUID,
	restaurantID kernel.UUID,
	name string,
	shortDescription string,
	image string,
	price kernel.Money,
) (AddMealCommand, error) {
	mealCommand := AddMealCommand{
		shortDescription: shortDescription,
		image:            image,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		mealCommand.setMealID(mealID),
		mealCommand.setRestaurantID(restaurantID),
		mealCommand.setName(name),
		mealCommand.setPrice(price),
	); err != nil {
		return AddMealCommand{}, err
	}

	return mealCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AddMealCommand) Validate() error {
	return c.guard.Validate(ErrAddMealCommandIsNotConstructed)
}

// MealID returns the new meal's identifier.
func (c AddMealCommand) MealID() kernel.UUID {
	return c.mealID
}

// RestaurantID returns the menu owner's identifier.
func (c AddMealCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Name returns the dish name.
func (c AddMealCommand) Name() string {
	return c.name
}

// ShortDescription returns the dish description.
func (c AddMealCommand) ShortDescription() string {
	return c.shortDescription
}

// Image returns the dish image reference.
func (c AddMealCommand) Image() string {
	return c.image
}

// Price returns the dish price.
func (c AddMealCommand) Price() kernel.Money {
	return c.price
}

func (c *AddMealCommand) setMealID(mealID kernel.UUID) error {
	if err := mealID.Validate(); err != nil {
		return err
	}

	c.mealID = mealID
	return nil
}

func (c *AddMealCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *AddMealCommand) setName(name string) error {
	if name == "" {
		return ErrMealNameIsRequired
	}

	c.name = name
	return nil
}

func (c *AddMealCommand) setPrice(price kernel.Money) error {
	if !price.IsPositive() {
		return ErrPriceIsInvalid
	}

	c.price = price
	return nil
}
