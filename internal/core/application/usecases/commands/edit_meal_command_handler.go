package commands

import (
	"context"

	"foodtasker/internal/pkg/errs"
)

// EditMealCommandHandler revises a menu item on behalf of the restaurant
// that owns it. Meals of other restaurants are reported as not found.
type EditMealCommandHandler struct {
	uowFactory MealUoWFactory
}

// NewEditMealCommandHandler creates a handler for menu revisions.
func NewEditMealCommandHandler(uowFactory MealUoWFactory) EditMealCommandHandler {
	return EditMealCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the edit-meal command.
func (h *EditMealCommandHandler) Handle(ctx context.Context, cmd EditMealCommand) error {
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

	mealRepo := uow.MealRepository()
	aggregate, err := mealRepo.Get(ctx, cmd.MealID())
	if err != nil {
		return err
	}

	if !aggregate.BelongsToRestaurant(cmd.RestaurantID()) {
		return errs.NewObjectNotFoundError("meal_id", cmd.MealID())
	}

	if err = aggregate.Update(cmd.Name(), cmd.ShortDescription(), cmd.Image(), cmd.Price()); err != nil {
		return err
	}

	if err = mealRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
