package commands

import (
	"errors"

	"foodtasker/internal/pkg/guard"
)

var ErrPurgeExpiredTokensCommandIsNotConstructed = errors.New(
	"PurgeExpiredTokensCommand must be created via NewPurgeExpiredTokensCommand constructor",
)

// PurgeExpiredTokensCommand triggers removal of access tokens that have
// passed their expiry. Runs periodically from the job scheduler.
//
// Example:
//
//	cmd := NewPurgeExpiredTokensCommand()
//	handler := NewPurgeExpiredTokensCommandHandler(uowFactory, clock)
//	purged, err := handler.Handle(ctx, cmd)
type PurgeExpiredTokensCommand struct {
	guard guard.ConstructorGuard
}

// NewPurgeExpiredTokensCommand creates a new command to trigger token cleanup.
// This is a parameterless command.
func NewPurgeExpiredTokensCommand() PurgeExpiredTokensCommand {
	return PurgeExpiredTokensCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrPurgeExpiredTokensCommandIsNotConstructed if validation fails.
func (c *PurgeExpiredTokensCommand) Validate() error {
	return c.guard.Validate(
		ErrPurgeExpiredTokensCommandIsNotConstructed,
	)
}
