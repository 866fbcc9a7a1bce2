package commands

import (
	"context"

	"foodtasker/internal/pkg/errs"
)

// MarkOrderReadyCommandHandler moves an order from Cooking to Ready on behalf
// of the restaurant that owns it. Marking an order that already left the
// kitchen is a no-op, so restaurant tablets can retry the call safely.
type MarkOrderReadyCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkOrderReadyCommandHandler creates a handler for kitchen completion.
func NewMarkOrderReadyCommandHandler(uowFactory OrderUoWFactory) MarkOrderReadyCommandHandler {
	return MarkOrderReadyCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the mark-ready command.
// Orders of other restaurants are reported as not found rather than
// forbidden, so the API does not leak order identifiers.
func (h *MarkOrderReadyCommandHandler) Handle(ctx context.Context, cmd MarkOrderReadyCommand) error {
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

	if !aggregate.BelongsToRestaurant(cmd.RestaurantID()) {
		return errs.NewObjectNotFoundError("order_id", cmd.OrderID())
	}

	if !aggregate.MarkReady() {
		return uow.Commit(ctx)
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
