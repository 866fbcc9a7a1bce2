package commands

import (
	"context"

	"foodtasker/internal/core/domain/model/meal"
)

// AddMealCommandHandler adds a dish to a restaurant's menu.
type AddMealCommandHandler struct {
	uowFactory MealUoWFactory
}

// NewAddMealCommandHandler creates a handler for menu additions.
func NewAddMealCommandHandler(uowFactory MealUoWFactory) AddMealCommandHandler {
	return AddMealCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add-meal command.
func (h *AddMealCommandHandler) Handle(ctx context.Context, cmd AddMealCommand) error {
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

	aggregate, err := meal.NewMeal(
		cmd.MealID(),
		cmd.RestaurantID(),
		cmd.Name(),
		cmd.ShortDescription(),
		cmd.Image(),
		cmd.Price(),
	)
	if err != nil {
		return err
	}

	if err = uow.MealRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
