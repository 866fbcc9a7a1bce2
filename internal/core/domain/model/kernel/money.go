package kernel

import (
	"fmt"

	"foodtasker/internal/pkg/errs"
)

// ErrMoneyIsNegative is returned when constructing Money from a negative
// amount of cents.
var ErrMoneyIsNegative = errs.NewValueIsInvalidError("money cannot be negative")

// Money represents a monetary amount as an integer number of cents.
// Integer cents avoid floating point drift in totals and revenue sums; the
// payment gateway is charged in the same minor units.
//
// Unlike most value objects in the model, the zero value is meaningful: it is
// a valid 0.00 amount, which lets revenue buckets default to zero without a
// constructor call.
type Money struct {
	cents int64
}

// NewMoneyFromCents creates Money from an amount in minor currency units.
// Negative amounts are rejected; zero is allowed.
func NewMoneyFromCents(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrMoneyIsNegative
	}
	return Money{cents: cents}, nil
}

// Cents returns the amount in minor currency units.
func (m Money) Cents() int64 {
	return m.cents
}

// Dollars returns the amount in major currency units for JSON payloads.
func (m Money) Dollars() float64 {
	return float64(m.cents) / 100
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// MultiplyBy returns the amount scaled by a non-negative quantity.
// Used for line item sub-totals (price × quantity).
func (m Money) MultiplyBy(quantity int) Money {
	return Money{cents: m.cents * int64(quantity)}
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.cents > 0
}

// IsEqual reports whether two amounts are the same.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String renders the amount as a decimal with two fraction digits, e.g. "18.00".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
