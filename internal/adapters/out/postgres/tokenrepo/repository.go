package tokenrepo

import (
	"context"
	"errors"
	"time"

	"foodtasker/internal/core/domain/model/auth"
	"foodtasker/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAccessTokenRepository implements AccessTokenRepository using GORM.
// Tokens are not aggregates in the tracked sense, so no tracker is involved.
type GormAccessTokenRepository struct {
	db *gorm.DB
}

// NewGormAccessTokenRepository creates a new GORM access token repository.
func NewGormAccessTokenRepository(db *gorm.DB) *GormAccessTokenRepository {
	return &GormAccessTokenRepository{db: db}
}

// Add saves a new access token to the database.
func (r *GormAccessTokenRepository) Add(ctx context.Context, token *auth.AccessToken) error {
	if err := token.Validate(); err != nil {
		return err
	}

	dto := fromDomain(token)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetByToken retrieves an access token by its opaque value.
func (r *GormAccessTokenRepository) GetByToken(ctx context.Context, token string) (*auth.AccessToken, error) {
	if token == "" {
		return nil, auth.ErrTokenIsRequired
	}

	var dto AccessTokenDTO
	if err := r.db.WithContext(ctx).First(&dto, "token = ?", token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("token", token)
		}
		return nil, err
	}

	return toDomain(dto)
}

// DeleteExpired removes every token that expired before the given moment.
func (r *GormAccessTokenRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at <= ?", now).
		Delete(&AccessTokenDTO{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
