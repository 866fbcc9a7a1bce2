// Package kernel provides core domain primitives shared by the marketplace
// domain model.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and comparison
//   - Money: an integer-cents value object for prices, sub-totals, and revenue
//
// These primitives enforce domain invariants and are immutable, making them
// safe for concurrent use. Entities and aggregates across the model rely on
// them instead of raw library types.
package kernel
