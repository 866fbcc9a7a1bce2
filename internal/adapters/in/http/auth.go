package http

import (
	"errors"
	"strings"

	"foodtasker/internal/core/domain/model/auth"
	"foodtasker/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// errAuthenticationFailed covers every way a request can fail to
// authenticate: missing token, unknown token, expired token, or a token
// issued for a different audience. Clients get one code for all of them.
var errAuthenticationFailed = errors.New("authentication failed")

const (
	bearerPrefix     = "Bearer "
	accessTokenParam = "access_token"
)

// extractToken pulls the opaque token from the Authorization header, falling
// back to the access_token query or form field used by the mobile clients.
func extractToken(ctx echo.Context) string {
	header := ctx.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(header, bearerPrefix) {
		return strings.TrimPrefix(header, bearerPrefix)
	}

	if token := ctx.QueryParam(accessTokenParam); token != "" {
		return token
	}

	return ctx.FormValue(accessTokenParam)
}

// authenticate resolves the request's token and checks it against the
// endpoint's audience. Returns the authenticated principal's identifier.
func (s *Server) authenticate(ctx echo.Context, role auth.Role) (kernel.UUID, error) {
	token := extractToken(ctx)
	if token == "" {
		return kernel.UUID{}, errAuthenticationFailed
	}

	accessToken, err := s.tokens.GetByToken(ctx.Request().Context(), token)
	if err != nil {
		return kernel.UUID{}, errAuthenticationFailed
	}

	if accessToken.IsExpired(s.clock.Now()) {
		return kernel.UUID{}, errAuthenticationFailed
	}

	if accessToken.Role() != role {
		return kernel.UUID{}, errAuthenticationFailed
	}

	return accessToken.PrincipalID(), nil
}
