package commands

import (
	"context"
	"fmt"

	"foodtasker/internal/core/domain/model/kernel"
	"foodtasker/internal/core/domain/model/order"
	"foodtasker/internal/core/ports"
	"foodtasker/internal/pkg/errs"
)

// ErrPaymentFailed is returned when the payment provider declines the charge
// or cannot be reached. The order is never persisted in either case.
var ErrPaymentFailed = errs.NewExternalServiceError("payment provider")

// ChargeDescription appears on the customer's card statement.
const ChargeDescription = "FoodTasker Order"

// CreateOrderCommandHandler handles the business logic for order placement.
// Resolves meal prices from the catalog, charges the customer's card, and
// persists the order in Cooking status only after the charge succeeds.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, gateway, clock, "usd")
//	cmd, _ := NewCreateOrderCommand(orderID, customerID, restaurantID,
//		"456 Oak Avenue", lines, "tok_visa")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
//	// Customer is charged and the order is now cooking
type CreateOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
	gateway    ports.PaymentGateway
	clock      ports.Clock
	currency   string
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires a CheckoutUoWFactory for transactional persistence, a payment
// gateway for the card charge, and a clock for the creation timestamp.
func NewCreateOrderCommandHandler(
	uowFactory CheckoutUoWFactory,
	gateway ports.PaymentGateway,
	clock ports.Clock,
	currency string,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
		clock:      clock,
		currency:   currency,
	}
}

// Handle processes the order placement command.
//
// A customer may only have one undelivered order at a time, so placement is
// rejected while a previous order is still active. Line prices are resolved
// from the meal catalog; client-supplied prices are never trusted. The card
// is charged for the computed total before the order row is written, so a
// declined charge leaves no trace of the order.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	hasActive, err := orderRepo.HasActiveOrder(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}
	if hasActive {
		return order.ErrActiveOrderExists
	}

	lines, err := h.priceLines(ctx, uow.MealRepository(), cmd)
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		cmd.RestaurantID(),
		cmd.Address(),
		lines,
		h.clock.Now(),
	)
	if err != nil {
		return err
	}

	charge, err := h.gateway.Charge(ctx, ports.ChargeRequest{
		AmountCents: newOrder.Total().Cents(),
		Currency:    h.currency,
		Token:       cmd.StripeToken(),
		Description: ChargeDescription,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPaymentFailed, err)
	}
	if !charge.Succeeded() {
		return ErrPaymentFailed
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// priceLines turns the requested meals into order lines priced from the
// catalog. A meal that does not exist or belongs to another restaurant is
// reported as not found.
func (h *CreateOrderCommandHandler) priceLines(
	ctx context.Context,
	mealRepo ports.MealRepository,
	cmd CreateOrderCommand,
) ([]order.Line, error) {
	lines := make([]order.Line, 0, len(cmd.Lines()))
	for _, input := range cmd.Lines() {
		repoMeal, err := mealRepo.Get(ctx, input.MealID())
		if err != nil {
			return nil, err
		}

		if !repoMeal.BelongsToRestaurant(cmd.RestaurantID()) {
			return nil, errs.NewObjectNotFoundError("meal_id", input.MealID())
		}

		line, err := order.NewLine(kernel.NewUUID(), repoMeal.ID(), input.Quantity(), repoMeal.Price())
		if err != nil {
			return nil, err
		}

		lines = append(lines, line)
	}

	return lines, nil
}
