package order

import (
	"fmt"

	"foodtasker/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a forward-only state machine:
//
//	Cooking ──> Ready ──> OnTheWay ──> Delivered
//
// There are no backward transitions and no cancellation state. Status is a
// value object that validates transitions and provides string representations
// for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Cooking is the initial status of a freshly placed (and paid) order.
	// The restaurant is preparing the meals.
	Cooking

	// Ready indicates the restaurant finished cooking and the order is
	// waiting for a driver to pick it up.
	Ready

	// OnTheWay indicates a driver picked the order up and is delivering it.
	OnTheWay

	// Delivered is the final state. A customer with only Delivered orders
	// may place a new one.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Cooking:   "Cooking",
		Ready:     "Ready",
		OnTheWay:  "On the way",
		Delivered: "Delivered",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Cooking:   "Cooking",
		Ready:     "Ready",
		OnTheWay:  "On the way",
		Delivered: "Delivered",
	}
}

// Validate checks if the Status value is one of the four lifecycle states.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsActive reports whether the order still occupies its customer: every
// status except Delivered counts as active. A customer may hold at most one
// active order at a time.
func (s Status) IsActive() bool {
	return s != Delivered && s.Validate() == nil
}

// MarkReady transitions Cooking to Ready.
//
// The returned bool reports whether a transition happened: submitting an
// order that is already past Cooking is not an error, the status simply stays
// unchanged. This mirrors the deliberately lenient accept-or-ignore contract
// of the restaurant order queue.
func (s Status) MarkReady() (Status, bool) {
	if s != Cooking {
		return s, false
	}
	return Ready, true
}

// ValidatePickUp checks that the status allows a driver to take the order.
// Only Ready orders can be picked up.
func (s Status) ValidatePickUp() error {
	if s != Ready {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to pick up", s.String()),
		)
	}
	return nil
}

// ValidateCanHaveDriver validates consistency between status and driver
// assignment: a driver is set on pickup, so Cooking and Ready orders must not
// have one, while OnTheWay and Delivered orders must.
func (s Status) ValidateCanHaveDriver(driver bool) error {
	if driver && s != OnTheWay && s != Delivered {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a driver", s.String()),
		)
	}

	if !driver && (s == OnTheWay || s == Delivered) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no driver", s.String()),
		)
	}

	return nil
}

// PickUp transitions Ready to OnTheWay.
// Returns an error when the order is not Ready; losing a pickup race
// surfaces through the storage layer's conditional update instead.
func (s Status) PickUp() (Status, error) {
	if err := s.ValidatePickUp(); err != nil {
		return 0, err
	}

	return OnTheWay, nil
}

// Deliver transitions to Delivered from any state.
// Completion is deliberately unguarded: a driver may mark any order that
// belongs to them as delivered, whatever its current status.
func (s Status) Deliver() Status {
	return Delivered
}
