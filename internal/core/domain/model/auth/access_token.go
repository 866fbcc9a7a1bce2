// Package auth models the session collaborator: opaque bearer tokens that
// resolve to a (principal, role) pair with an expiry. Tokens are provisioned
// by the identity layer; the API only resolves and expires them, so the
// resolver can be faked deterministically in tests.
package auth

import (
	"errors"
	"fmt"
	"time"

	"foodtasker/internal/core/domain/model/kernel"
	"foodtasker/internal/pkg/errs"
)

// Role identifies which audience a token belongs to. Every endpoint serves
// exactly one role.
type Role string

const (
	// RoleCustomer tokens belong to buyers using the customer mobile client.
	RoleCustomer Role = "customer"
	// RoleDriver tokens belong to couriers using the driver mobile client.
	RoleDriver Role = "driver"
	// RoleRestaurant tokens belong to restaurant staff.
	RoleRestaurant Role = "restaurant"
)

// Validate checks the role is one of the three known audiences.
func (r Role) Validate() error {
	switch r {
	case RoleCustomer, RoleDriver, RoleRestaurant:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", string(r)))
	}
}

var (
	// ErrAccessTokenIsNotConstructed is returned when an AccessToken instance
	// was not created through NewAccessToken or RestoreAccessToken.
	ErrAccessTokenIsNotConstructed = errors.New("AccessToken must be created via NewAccessToken or RestoreAccessToken")

	// ErrTokenIsRequired is returned when the opaque token string is empty.
	ErrTokenIsRequired = errs.NewValueIsRequiredError("token")
)

// AccessToken is an opaque bearer credential resolving to one principal
// (customer, driver, or restaurant) until it expires.
type AccessToken struct {
	token       string
	role        Role
	principalID kernel.UUID
	expiresAt   time.Time

	isConstructed bool
}

// NewAccessToken creates a token for the given principal and role.
func NewAccessToken(token string, role Role, principalID kernel.UUID, expiresAt time.Time) (*AccessToken, error) {
	if token == "" {
		return nil, ErrTokenIsRequired
	}

	if err := errors.Join(role.Validate(), principalID.Validate()); err != nil {
		return nil, err
	}

	return &AccessToken{
		token:         token,
		role:          role,
		principalID:   principalID,
		expiresAt:     expiresAt,
		isConstructed: true,
	}, nil
}

// RestoreAccessToken reconstructs a token from persistence.
func RestoreAccessToken(token string, role Role, principalID kernel.UUID, expiresAt time.Time) (*AccessToken, error) {
	return NewAccessToken(token, role, principalID, expiresAt)
}

// Validate ensures the AccessToken was created through a constructor.
func (t *AccessToken) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrAccessTokenIsNotConstructed
	}
	return nil
}

// Token returns the opaque token string presented by clients.
func (t *AccessToken) Token() string {
	return t.token
}

// Role returns the audience the token belongs to.
func (t *AccessToken) Role() Role {
	return t.role
}

// PrincipalID returns the identifier of the customer, driver, or restaurant
// the token authenticates.
func (t *AccessToken) PrincipalID() kernel.UUID {
	return t.principalID
}

// ExpiresAt returns the token's expiry instant.
func (t *AccessToken) ExpiresAt() time.Time {
	return t.expiresAt
}

// IsExpired reports whether the token is no longer valid at the given time.
// An expired token authenticates nobody.
func (t *AccessToken) IsExpired(now time.Time) bool {
	return !t.expiresAt.After(now)
}
