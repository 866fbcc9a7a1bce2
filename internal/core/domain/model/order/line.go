package order

import (
	"errors"
	"fmt"

	"foodtasker/internal/core/domain/model/kernel"
	"foodtasker/internal/pkg/errs"
)

// ErrLineIsNotConstructed is returned when a Line instance was not created
// through NewLine or RestoreLine.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine or RestoreLine")

// Line is a detail row of an order: one meal, a quantity, and the sub-total
// snapshot taken when the order was placed. The snapshot never changes, even
// if the meal's price is edited later.
type Line struct {
	id       kernel.UUID
	mealID   kernel.UUID
	quantity int
	subTotal kernel.Money

	isConstructed bool
}

// NewLine creates a detail line for the given meal, computing the sub-total
// snapshot as price × quantity. Quantity must be positive.
func NewLine(id kernel.UUID, mealID kernel.UUID, quantity int, price kernel.Money) (Line, error) {
	if err := errors.Join(id.Validate(), mealID.Validate()); err != nil {
		return Line{}, err
	}

	if quantity <= 0 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	return Line{
		id:            id,
		mealID:        mealID,
		quantity:      quantity,
		subTotal:      price.MultiplyBy(quantity),
		isConstructed: true,
	}, nil
}

// RestoreLine reconstructs a detail line from persistence with its stored
// sub-total snapshot, bypassing the price computation.
func RestoreLine(id kernel.UUID, mealID kernel.UUID, quantity int, subTotal kernel.Money) (Line, error) {
	if err := errors.Join(id.Validate(), mealID.Validate()); err != nil {
		return Line{}, err
	}

	if quantity <= 0 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	return Line{
		id:            id,
		mealID:        mealID,
		quantity:      quantity,
		subTotal:      subTotal,
		isConstructed: true,
	}, nil
}

// Validate ensures the Line was created through a constructor.
func (l Line) Validate() error {
	if !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

// ID returns the line's unique identifier.
func (l Line) ID() kernel.UUID {
	return l.id
}

// MealID returns the identifier of the ordered meal.
func (l Line) MealID() kernel.UUID {
	return l.mealID
}

// Quantity returns how many units of the meal were ordered.
func (l Line) Quantity() int {
	return l.quantity
}

// SubTotal returns the price snapshot taken at order creation.
func (l Line) SubTotal() kernel.Money {
	return l.subTotal
}
