package order

import (
	"errors"
	"time"

	"foodtasker/internal/core/domain/model/kernel"
	"foodtasker/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrAddressIsRequired is returned when an order is placed without a
	// delivery address.
	ErrAddressIsRequired = errs.NewValueIsRequiredError("address")

	// ErrLinesAreRequired is returned when an order is placed with no detail
	// lines.
	ErrLinesAreRequired = errs.NewValueIsRequiredError("order details")

	// ErrActiveOrderExists is returned when a customer places an order while
	// a previous order of theirs is not yet delivered.
	ErrActiveOrderExists = errs.NewConflictError("the last order must be delivered first")

	// ErrAlreadyPicked is returned when a pickup attempt loses: the order was
	// taken by another driver, is not ready, or the driver already carries an
	// order that is on the way.
	ErrAlreadyPicked = errs.NewConflictError("order has already been picked up")
)

// Order is the aggregate root of the order lifecycle. It belongs to one
// customer and one restaurant, carries its detail lines, and is assigned to
// at most one driver once picked up.
//
// Invariants maintained by the aggregate:
//   - address is non-empty and there is at least one detail line
//   - total equals the sum of the lines' sub-total snapshots
//   - the status machine only moves forward (see Status)
//   - a driver is assigned together with the Ready -> OnTheWay transition,
//     and pickedAt is set exactly once, at that same moment
type Order struct {
	id           kernel.UUID
	customerID   kernel.UUID
	restaurantID kernel.UUID
	driverID     *kernel.UUID
	address      string
	total        kernel.Money
	status       Status
	createdAt    time.Time
	pickedAt     *time.Time
	lines        []Line

	isConstructed bool
}

// NewOrder creates a freshly placed order in Cooking status.
// The total is computed from the lines' sub-total snapshots; callers charge
// the payment gateway for exactly this amount before persisting the order.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	address string,
	lines []Line,
	createdAt time.Time,
) (*Order, error) {
	if err := errors.Join(id.Validate(), customerID.Validate(), restaurantID.Validate()); err != nil {
		return nil, err
	}

	if address == "" {
		return nil, ErrAddressIsRequired
	}

	if len(lines) == 0 {
		return nil, ErrLinesAreRequired
	}

	var total kernel.Money
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return nil, err
		}
		total = total.Add(line.SubTotal())
	}

	return &Order{
		id:            id,
		customerID:    customerID,
		restaurantID:  restaurantID,
		address:       address,
		total:         total,
		status:        Cooking,
		createdAt:     createdAt,
		lines:         lines,
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an order from persistence in its stored state.
// The stored total is kept as-is (it is a creation-time fact, not a derived
// value), and status/driver consistency is validated.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	driverID *kernel.UUID,
	address string,
	total kernel.Money,
	status Status,
	createdAt time.Time,
	pickedAt *time.Time,
	lines []Line,
) (*Order, error) {
	if err := errors.Join(id.Validate(), customerID.Validate(), restaurantID.Validate()); err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}

	if err := status.ValidateCanHaveDriver(driverID != nil); err != nil {
		return nil, err
	}

	if address == "" {
		return nil, ErrAddressIsRequired
	}

	return &Order{
		id:            id,
		customerID:    customerID,
		restaurantID:  restaurantID,
		driverID:      driverID,
		address:       address,
		total:         total,
		status:        status,
		createdAt:     createdAt,
		pickedAt:      pickedAt,
		lines:         lines,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order was created through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// RestaurantID returns the identifier of the restaurant cooking the order.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// Driver returns the assigned driver's ID, or nil before pickup.
func (o *Order) Driver() *kernel.UUID {
	return o.driverID
}

// Address returns the delivery address.
func (o *Order) Address() string {
	return o.address
}

// Total returns the order total, the sum of the lines' sub-total snapshots.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// PickedAt returns when a driver picked the order up, or nil before pickup.
func (o *Order) PickedAt() *time.Time {
	return o.pickedAt
}

// Lines returns the order's detail lines.
func (o *Order) Lines() []Line {
	return o.lines
}

// BelongsToRestaurant reports whether the order was placed at the given
// restaurant. Restaurant staff may only act on their own orders.
func (o *Order) BelongsToRestaurant(restaurantID kernel.UUID) bool {
	return o.restaurantID.IsEqual(restaurantID)
}

// BelongsToDriver reports whether the order is assigned to the given driver.
func (o *Order) BelongsToDriver(driverID kernel.UUID) bool {
	return o.driverID != nil && o.driverID.IsEqual(driverID)
}

// MarkReady moves a Cooking order to Ready.
//
// The returned bool reports whether anything changed. Submitting an order
// that is already past Cooking is not an error; the caller simply sees no
// change.
func (o *Order) MarkReady() bool {
	newStatus, changed := o.status.MarkReady()
	o.status = newStatus
	return changed
}

// PickUp assigns the order to a driver and moves it to OnTheWay.
//
// The assignment, the status change, and the pickedAt timestamp happen
// together or not at all: the order must be Ready, unassigned, and never
// picked before. Racing drivers are arbitrated by the storage layer's
// conditional update; this method enforces the same predicate for in-memory
// transitions.
func (o *Order) PickUp(driverID kernel.UUID, pickedAt time.Time) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	if o.driverID != nil || o.pickedAt != nil {
		return ErrAlreadyPicked
	}

	newStatus, err := o.status.PickUp()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.driverID = &driverID
	o.pickedAt = &pickedAt
	return nil
}

// Deliver marks the order as Delivered.
// Completion is unguarded: any order that belongs to the driver can be marked
// delivered regardless of its current status. Ownership is checked by the
// caller via BelongsToDriver.
func (o *Order) Deliver() {
	o.status = o.status.Deliver()
}
