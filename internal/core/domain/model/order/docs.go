// Package order contains the Order aggregate, the core of the marketplace's
// order lifecycle. An order is placed by a customer against a restaurant,
// cooked, marked ready by restaurant staff, picked up by exactly one driver,
// and finally delivered.
//
// The aggregate owns the status machine
//
//	Cooking ──> Ready ──> OnTheWay ──> Delivered
//
// with no backward transitions and no cancellation. It also owns the order's
// detail lines, whose sub-totals are price snapshots taken at creation time;
// the order total always equals the sum of those snapshots.
//
// Pickup exclusivity between racing drivers is ultimately enforced by the
// persistence adapter's conditional update; the aggregate enforces the same
// rules for in-memory transitions so no code path can produce an illegal state.
package order
