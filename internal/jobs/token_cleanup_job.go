package jobs

import (
	"context"
	"log/slog"

	"foodtasker/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// TokenCleanupJob manages the scheduled removal of expired access tokens.
// Runs hourly so dead sessions do not accumulate in storage.
type TokenCleanupJob struct {
	handler commands.PurgeExpiredTokensCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewTokenCleanupJob creates a new job for purging expired tokens.
// Uses PurgeExpiredTokensCommandHandler to delete tokens every hour.
func NewTokenCleanupJob(handler commands.PurgeExpiredTokensCommandHandler, logger *slog.Logger) *TokenCleanupJob {
	return &TokenCleanupJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "token_cleanup_job"),
	}
}

// Start begins the token cleanup job to run at the top of every hour.
func (j *TokenCleanupJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewPurgeExpiredTokensCommand()

		purged, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Token cleanup job failed", "error", err)
			return
		}

		if purged > 0 {
			j.logger.InfoContext(ctx, "Expired tokens purged", "count", purged)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Token cleanup job started (running hourly)")
	return nil
}

// Stop stops the token cleanup job.
func (j *TokenCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Token cleanup job stopped")
}
