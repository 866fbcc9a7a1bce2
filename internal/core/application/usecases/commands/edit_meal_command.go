package commands

import (
	"errors"

	"foodtasker/internal/core/domain/model/kernel"
	"foodtasker/internal/pkg/guard"
)

var ErrEditMealCommandIsNotConstructed = errors.New(
	"EditMealCommand must be created via NewEditMealCommand constructor",
)

// EditMealCommand represents a restaurant revising one of its menu items.
// Existing order lines keep the sub-totals they were priced with; only
// future orders see the new price.
type EditMealCommand struct { //nolint:recvcheck //using for validation
	mealID           kernel.UUID
	restaurantID     kernel.UUID
	name             string
	shortDescription string
	image            string
	price            kernel.Money

	guard guard.ConstructorGuard
}

// NewEditMealCommand creates a command to revise a menu item.
// Validates identifiers, requires a name, and requires a positive price.
func NewEditMealCommand(
	mealID kernel.UUID,
	restaurantID kernel.UUID,
	name string,
	shortDescription string,
	image string,
	price kernel.Money,
) (EditMealCommand, error) {
	mealCommand := EditMealCommand{
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
		return EditMealCommand{}, err
	}

	return mealCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c EditMealCommand) Validate() error {
	return c.guard.Validate(ErrEditMealCommandIsNotConstructed)
}

// MealID returns the identifier of the meal being revised.
func (c EditMealCommand) MealID() kernel.UUID {
	return c.mealID
}

// RestaurantID returns the menu owner's identifier.
func (c EditMealCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Name returns the revised dish name.
func (c EditMealCommand) Name() string {
	return c.name
}

// ShortDescription returns the revised dish description.
func (c EditMealCommand) ShortDescription() string {
	return c.shortDescription
}

// Image returns the revised dish image reference.
func (c EditMealCommand) Image() string {
	return c.image
}

// Price returns the revised dish price.
func (c EditMealCommand) Price() kernel.Money {
	return c.price
}

func (c *EditMealCommand) setMealID(mealID kernel.UUID) error {
	if err := mealID.Validate(); err != nil {
		return err
	}

	c.mealID = mealID
	return nil
}

func (c *EditMealCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *EditMealCommand) setName(name string) error {
	if name == "" {
		return ErrMealNameIsRequired
	}

	c.name = name
	return nil
}

func (c *EditMealCommand) setPrice(price kernel.Money) error {
	if !price.IsPositive() {
		return ErrPriceIsInvalid
	}

	c.price = price
	return nil
}
