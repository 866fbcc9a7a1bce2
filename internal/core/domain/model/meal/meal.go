// Package meal contains the Meal aggregate: a dish offered by exactly one
// restaurant, with a name and a positive price. Order lines reference meals
// and snapshot their price at order creation.
package meal

import (
	"errors"

	"foodtasker/internal/core/domain/model/kernel"
	"foodtasker/internal/pkg/errs"
)

var (
	// ErrMealIsNotConstructed is returned when a Meal instance was not created
	// through NewMeal or RestoreMeal.
	ErrMealIsNotConstructed = errors.New("Meal must be created via NewMeal or RestoreMeal")

	// ErrNameIsRequired is returned when creating a meal without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")

	// ErrPriceIsInvalid is returned when the price is not strictly positive.
	ErrPriceIsInvalid = errs.NewValueIsInvalidError("price")
)

// Meal is a dish on a restaurant's menu.
type Meal struct {
	id               kernel.UUID
	restaurantID     kernel.UUID
	name             string
	shortDescription string
	image            string
	price            kernel.Money

	isConstructed bool
}

// NewMeal creates a meal for the given restaurant.
// The name must be non-empty and the price strictly positive.
func NewMeal(
	id kernel.UUID,
	restaurantID kernel.UUID,
	name string,
	shortDescription string,
	image string,
	price kernel.Money,
) (*Meal, error) {
	if err := errors.Join(id.Validate(), restaurantID.Validate()); err != nil {
		return nil, err
	}

	if name == "" {
		return nil, ErrNameIsRequired
	}

	if !price.IsPositive() {
		return nil, ErrPriceIsInvalid
	}

	return &Meal{
		id:               id,
		restaurantID:     restaurantID,
		name:             name,
		shortDescription: shortDescription,
		image:            image,
		price:            price,
		isConstructed:    true,
	}, nil
}

// RestoreMeal reconstructs a meal from persistence.
func RestoreMeal(
	id kernel.UUID,
	restaurantID kernel.UUID,
	name string,
	shortDescription string,
	image string,
	price kernel.Money,
) (*Meal, error) {
	return NewMeal(id, restaurantID, name, shortDescription, image, price)
}

// Validate ensures the Meal was created through a constructor.
func (m *Meal) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMealIsNotConstructed
	}
	return nil
}

// ID returns the meal's unique identifier.
func (m *Meal) ID() kernel.UUID {
	return m.id
}

// RestaurantID returns the owning restaurant's identifier.
func (m *Meal) RestaurantID() kernel.UUID {
	return m.restaurantID
}

// Name returns the meal's display name.
func (m *Meal) Name() string {
	return m.name
}

// ShortDescription returns the menu blurb.
func (m *Meal) ShortDescription() string {
	return m.shortDescription
}

// Image returns the meal's image reference.
func (m *Meal) Image() string {
	return m.image
}

// Price returns the current price. Orders snapshot this value; later edits do
// not affect existing order lines.
func (m *Meal) Price() kernel.Money {
	return m.price
}

// BelongsToRestaurant reports whether the meal is on the given restaurant's
// menu. Staff may only edit their own meals.
func (m *Meal) BelongsToRestaurant(restaurantID kernel.UUID) bool {
	return m.restaurantID.IsEqual(restaurantID)
}

// Update replaces the meal's editable fields.
// The same validation rules as NewMeal apply.
func (m *Meal) Update(name string, shortDescription string, image string, price kernel.Money) error {
	if name == "" {
		return ErrNameIsRequired
	}

	if !price.IsPositive() {
		return ErrPriceIsInvalid
	}

	m.name = name
	m.shortDescription = shortDescription
	m.image = image
	m.price = price
	return nil
}
