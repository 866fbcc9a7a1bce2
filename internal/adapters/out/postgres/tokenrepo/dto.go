// Package tokenrepo provides persistence for API access tokens.
package tokenrepo

import (
	"time"

	"foodtasker/internal/core/domain/model/auth"
	"foodtasker/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AccessTokenDTO represents the database structure for persisting tokens.
// The opaque token value is the primary key; ExpiresAt is indexed for the
// periodic purge job.
type AccessTokenDTO struct {
	Token       string    `gorm:"primaryKey"`
	Role        string    `gorm:"index"`
	PrincipalID uuid.UUID `gorm:"type:uuid;index"`
	ExpiresAt   time.Time `gorm:"index"`
}

// TableName specifies the database table name for access tokens.
func (AccessTokenDTO) TableName() string {
	return "access_tokens"
}

func fromDomain(token *auth.AccessToken) AccessTokenDTO {
	return AccessTokenDTO{
		Token:       token.Token(),
		Role:        string(token.Role()),
		PrincipalID: token.PrincipalID().Bytes(),
		ExpiresAt:   token.ExpiresAt(),
	}
}

func toDomain(dto AccessTokenDTO) (*auth.AccessToken, error) {
	principalID, err := kernel.UUIDFromBytes(dto.PrincipalID[:])
	if err != nil {
		return nil, err
	}

	return auth.RestoreAccessToken(dto.Token, auth.Role(dto.Role), principalID, dto.ExpiresAt)
}
