// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"foodtasker/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends only on the repositories it actually touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// MealRepoFactory provides access to the meal repository within a transaction.
	MealRepoFactory interface {
		MealRepository() ports.MealRepository
	}

	// RestaurantRepoFactory provides access to the restaurant repository within a transaction.
	RestaurantRepoFactory interface {
		RestaurantRepository() ports.RestaurantRepository
	}

	// DriverRepoFactory provides access to the driver repository within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// AccessTokenRepoFactory provides access to the token repository within a transaction.
	AccessTokenRepoFactory interface {
		AccessTokenRepository() ports.AccessTokenRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CheckoutUoW manages transactions for order placement, which reads
	// meals to price the order lines and then persists the order.
	CheckoutUoW interface {
		TxManager
		OrderRepoFactory
		MealRepoFactory
	}

	// CheckoutUoWFactory creates new checkout unit of work instances.
	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}

	// MealUoW manages transactions for meal catalog operations.
	MealUoW interface {
		TxManager
		MealRepoFactory
	}

	// MealUoWFactory creates new meal unit of work instances.
	MealUoWFactory interface {
		Create() MealUoW
	}

	// RestaurantUoW manages transactions for restaurant profile operations.
	RestaurantUoW interface {
		TxManager
		RestaurantRepoFactory
	}

	// RestaurantUoWFactory creates new restaurant unit of work instances.
	RestaurantUoWFactory interface {
		Create() RestaurantUoW
	}

	// DriverUoW manages transactions for driver-only operations.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
	}

	// DriverUoWFactory creates new driver unit of work instances.
	DriverUoWFactory interface {
		Create() DriverUoW
	}

	// AccessTokenUoW manages transactions for token maintenance.
	AccessTokenUoW interface {
		TxManager
		AccessTokenRepoFactory
	}

	// AccessTokenUoWFactory creates new token unit of work instances.
	AccessTokenUoWFactory interface {
		Create() AccessTokenUoW
	}
)
