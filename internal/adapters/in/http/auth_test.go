package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"foodtasker/internal/core/domain/model/auth"
	"foodtasker/internal/core/domain/model/kernel"
	"foodtasker/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAccessTokenRepository struct {
	mock.Mock
}

func (m *MockAccessTokenRepository) Add(ctx context.Context, token *auth.AccessToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockAccessTokenRepository) GetByToken(ctx context.Context, token string) (*auth.AccessToken, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.AccessToken), args.Error(1)
}

func (m *MockAccessTokenRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func newEchoContext(t *testing.T, req *http.Request) echo.Context {
	t.Helper()
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func mustAccessToken(t *testing.T, token string, role auth.Role, expiresAt time.Time) (*auth.AccessToken, kernel.UUID) {
	t.Helper()

	principalID := kernel.NewUUID()
	accessToken, err := auth.NewAccessToken(token, role, principalID, expiresAt)
	require.NoError(t, err)

	return accessToken, principalID
}

func TestExtractToken_BearerHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/driver/revenue", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer tok_abc")

	assert.Equal(t, "tok_abc", extractToken(newEchoContext(t, req)))
}

func TestExtractToken_QueryParam(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/driver/revenue?access_token=tok_query", nil)

	assert.Equal(t, "tok_query", extractToken(newEchoContext(t, req)))
}

func TestExtractToken_FormField(t *testing.T) {
	form := url.Values{accessTokenParam: {"tok_form"}}
	req := httptest.NewRequest(http.MethodPost, "/api/driver/location/update",
		strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)

	assert.Equal(t, "tok_form", extractToken(newEchoContext(t, req)))
}

func TestExtractToken_HeaderWinsOverParam(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/driver/revenue?access_token=tok_query", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer tok_header")

	assert.Equal(t, "tok_header", extractToken(newEchoContext(t, req)))
}

func TestAuthenticate_Success(t *testing.T) {
	now := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)
	accessToken, principalID := mustAccessToken(t, "tok_abc", auth.RoleDriver, now.Add(time.Hour))

	tokens := new(MockAccessTokenRepository)
	tokens.On("GetByToken", mock.Anything, "tok_abc").Return(accessToken, nil)

	server := NewServer(Dependencies{Tokens: tokens, Clock: fixedClock{now: now}})

	req := httptest.NewRequest(http.MethodGet, "/api/driver/revenue", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer tok_abc")

	resolved, err := server.authenticate(newEchoContext(t, req), auth.RoleDriver)

	require.NoError(t, err)
	assert.True(t, principalID.IsEqual(resolved))
	tokens.AssertExpectations(t)
}

func TestAuthenticate_MissingToken(t *testing.T) {
	tokens := new(MockAccessTokenRepository)
	server := NewServer(Dependencies{Tokens: tokens, Clock: fixedClock{now: time.Now()}})

	req := httptest.NewRequest(http.MethodGet, "/api/driver/revenue", nil)

	_, err := server.authenticate(newEchoContext(t, req), auth.RoleDriver)

	assert.ErrorIs(t, err, errAuthenticationFailed)
	tokens.AssertNotCalled(t, "GetByToken", mock.Anything, mock.Anything)
}

func TestAuthenticate_UnknownToken(t *testing.T) {
	tokens := new(MockAccessTokenRepository)
	tokens.On("GetByToken", mock.Anything, "tok_ghost").
		Return(nil, errs.NewObjectNotFoundError("token", "tok_ghost"))

	server := NewServer(Dependencies{Tokens: tokens, Clock: fixedClock{now: time.Now()}})

	req := httptest.NewRequest(http.MethodGet, "/api/driver/revenue", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer tok_ghost")

	_, err := server.authenticate(newEchoContext(t, req), auth.RoleDriver)

	assert.ErrorIs(t, err, errAuthenticationFailed)
}

func TestAuthenticate_ExpiredToken(t *testing.T) {
	now := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)
	accessToken, _ := mustAccessToken(t, "tok_old", auth.RoleDriver, now.Add(-time.Minute))

	tokens := new(MockAccessTokenRepository)
	tokens.On("GetByToken", mock.Anything, "tok_old").Return(accessToken, nil)

	server := NewServer(Dependencies{Tokens: tokens, Clock: fixedClock{now: now}})

	req := httptest.NewRequest(http.MethodGet, "/api/driver/revenue", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer tok_old")

	_, err := server.authenticate(newEchoContext(t, req), auth.RoleDriver)

	assert.ErrorIs(t, err, errAuthenticationFailed)
}

func TestAuthenticate_WrongAudience(t *testing.T) {
	now := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)
	accessToken, _ := mustAccessToken(t, "tok_cust", auth.RoleCustomer, now.Add(time.Hour))

	tokens := new(MockAccessTokenRepository)
	tokens.On("GetByToken", mock.Anything, "tok_cust").Return(accessToken, nil)

	server := NewServer(Dependencies{Tokens: tokens, Clock: fixedClock{now: now}})

	req := httptest.NewRequest(http.MethodGet, "/api/driver/revenue", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer tok_cust")

	_, err := server.authenticate(newEchoContext(t, req), auth.RoleDriver)

	assert.ErrorIs(t, err, errAuthenticationFailed)
}
