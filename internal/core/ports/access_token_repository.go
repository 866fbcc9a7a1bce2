package ports

import (
	"context"
	"time"

	"foodtasker/internal/core/domain/model/auth"
)

// AccessTokenRepository defines the persistence contract for access tokens.
type AccessTokenRepository interface {
	// Add persists a new access token to storage.
	Add(ctx context.Context, token *auth.AccessToken) error

	// GetByToken retrieves an access token by its opaque value.
	// Returns errs.ObjectNotFoundError when no such token exists.
	GetByToken(ctx context.Context, token string) (*auth.AccessToken, error)

	// DeleteExpired removes every token that expired before the given
	// moment and reports how many were removed.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
