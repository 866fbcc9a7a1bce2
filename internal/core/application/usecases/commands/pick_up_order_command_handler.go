package commands

import (
	"context"

	"foodtasker/internal/core/domain/model/order"
	"foodtasker/internal/core/ports"
)

// PickUpOrderCommandHandler assigns a ready order to the claiming driver and
// moves it to OnTheWay in a single conditional update. When several drivers
// claim simultaneously, the storage layer arbitrates and exactly one wins;
// the rest get order.ErrAlreadyPicked.
type PickUpOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      ports.Clock
}

// NewPickUpOrderCommandHandler creates a handler for order pickup.
func NewPickUpOrderCommandHandler(uowFactory OrderUoWFactory, clock ports.Clock) PickUpOrderCommandHandler {
	return PickUpOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the pickup command.
//
// A driver already carrying an order is rejected before any claim is
// attempted, and the rejection is reported the same way as a lost race so
// driver apps handle one error for both.
func (h *PickUpOrderCommandHandler) Handle(ctx context.Context, cmd PickUpOrderCommand) error {
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
	busy, err := orderRepo.HasOrderOnTheWay(ctx, cmd.DriverID())
	if err != nil {
		return err
	}
	if busy {
		return order.ErrAlreadyPicked
	}

	if err = orderRepo.AssignDriver(ctx, cmd.OrderID(), cmd.DriverID(), h.clock.Now()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
