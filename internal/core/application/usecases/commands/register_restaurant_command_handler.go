package commands

import (
	"context"
	"errors"

	"foodtasker/internal/core/domain/model/restaurant"
	"foodtasker/internal/pkg/errs"
)

// RegisterRestaurantCommandHandler onboards restaurants. Registration is an
// upsert: a new identifier creates the restaurant, a known one updates its
// profile in place.
type RegisterRestaurantCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewRegisterRestaurantCommandHandler creates a handler for restaurant onboarding.
func NewRegisterRestaurantCommandHandler(uowFactory RestaurantUoWFactory) RegisterRestaurantCommandHandler {
	return RegisterRestaurantCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
func (h *RegisterRestaurantCommandHandler) Handle(ctx context.Context, cmd RegisterRestaurantCommand) error {
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

	restaurantRepo := uow.RestaurantRepository()
	existing, err := restaurantRepo.Get(ctx, cmd.RestaurantID())
	switch {
	case err == nil:
		if err = existing.UpdateProfile(cmd.Name(), cmd.Phone(), cmd.Address(), cmd.LogoImage()); err != nil {
			return err
		}
		if err = restaurantRepo.Update(ctx, existing); err != nil {
			return err
		}
	case errors.Is(err, errs.ErrObjectNotFound):
		created, newErr := restaurant.NewRestaurant(
			cmd.RestaurantID(), cmd.Name(), cmd.Phone(), cmd.Address(), cmd.LogoImage())
		if newErr != nil {
			return newErr
		}
		if err = restaurantRepo.Add(ctx, created); err != nil {
			return err
		}
	default:
		return err
	}

	return uow.Commit(ctx)
}
