package commands

import (
	"context"
)

// UpdateDriverLocationCommandHandler stores the driver's latest reported
// position so customers can follow their delivery on a map.
type UpdateDriverLocationCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewUpdateDriverLocationCommandHandler creates a handler for location reports.
func NewUpdateDriverLocationCommandHandler(uowFactory DriverUoWFactory) UpdateDriverLocationCommandHandler {
	return UpdateDriverLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the location report.
func (h *UpdateDriverLocationCommandHandler) Handle(ctx context.Context, cmd UpdateDriverLocationCommand) error {
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

	driverRepo := uow.DriverRepository()
	aggregate, err := driverRepo.Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	if err = aggregate.UpdateLocation(cmd.Location()); err != nil {
		return err
	}

	if err = driverRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
