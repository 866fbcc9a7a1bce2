package commands

import (
	"context"

	"foodtasker/internal/pkg/errs"
)

// CompleteDeliveryCommandHandler marks an order as Delivered on behalf of
// the driver carrying it. Orders assigned to another driver, or to no driver
// at all, are reported as not found.
type CompleteDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCompleteDeliveryCommandHandler creates a handler for delivery completion.
func NewCompleteDeliveryCommandHandler(uowFactory OrderUoWFactory) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery completion command.
func (h *CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveryCommand) error {
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
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !aggregate.BelongsToDriver(cmd.DriverID()) {
		return errs.NewObjectNotFoundError("order_id", cmd.OrderID())
	}

	aggregate.Deliver()

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
