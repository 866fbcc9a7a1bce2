// Package jobs provides scheduled background tasks using
// github.com/robfig/cron/v3. Jobs are coordinated through JobManager, which
// the composition root starts on boot and stops on shutdown.
package jobs

import (
	"fmt"
	"log/slog"

	"foodtasker/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	tokenCleanupJob *TokenCleanupJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	purgeExpiredTokensHandler commands.PurgeExpiredTokensCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		tokenCleanupJob: NewTokenCleanupJob(purgeExpiredTokensHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.tokenCleanupJob.Start(); err != nil {
		return fmt.Errorf("failed to start token cleanup job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.tokenCleanupJob.Stop()
}
