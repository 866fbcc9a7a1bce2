package commands

import (
	"context"

	"foodtasker/internal/core/ports"
)

// PurgeExpiredTokensCommandHandler deletes access tokens whose expiry has
// passed and reports how many were removed.
type PurgeExpiredTokensCommandHandler struct {
	uowFactory AccessTokenUoWFactory
	clock      ports.Clock
}

// NewPurgeExpiredTokensCommandHandler creates a handler for token cleanup.
func NewPurgeExpiredTokensCommandHandler(
	uowFactory AccessTokenUoWFactory,
	clock ports.Clock,
) PurgeExpiredTokensCommandHandler {
	return PurgeExpiredTokensCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the cleanup command and returns the number of tokens removed.
func (h *PurgeExpiredTokensCommandHandler) Handle(
	ctx context.Context,
	cmd PurgeExpiredTokensCommand,
) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	purged, err := uow.AccessTokenRepository().DeleteExpired(ctx, h.clock.Now())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return purged, nil
}
