package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"foodtasker/internal/core/application/usecases/commands"
	"foodtasker/internal/core/domain/model/order"
	"foodtasker/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestRespondSuccess_MergesPayload(t *testing.T) {
	rec := httptest.NewRecorder()
	ctx := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	err := respondSuccess(ctx, map[string]any{"location": "41.2,69.1"})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeEnvelope(t, rec)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "41.2,69.1", body["location"])
}

func TestRespondError_CodeMapping(t *testing.T) {
	tests := map[string]struct {
		err        error
		wantStatus int
		wantCode   string
	}{
		"authentication failure": {
			err:        errAuthenticationFailed,
			wantStatus: http.StatusUnauthorized,
			wantCode:   codeAuthenticationFailed,
		},
		"active order conflict": {
			err:        order.ErrActiveOrderExists,
			wantStatus: http.StatusConflict,
			wantCode:   codeAlreadyHasActiveOrder,
		},
		"pickup race lost": {
			err:        order.ErrAlreadyPicked,
			wantStatus: http.StatusConflict,
			wantCode:   codeAlreadyPicked,
		},
		"payment declined": {
			err:        commands.ErrPaymentFailed,
			wantStatus: http.StatusPaymentRequired,
			wantCode:   codePaymentFailed,
		},
		"wrapped payment failure": {
			err:        fmt.Errorf("%w: %w", commands.ErrPaymentFailed, errors.New("card_declined")),
			wantStatus: http.StatusPaymentRequired,
			wantCode:   codePaymentFailed,
		},
		"missing address": {
			err:        commands.ErrAddressIsRequired,
			wantStatus: http.StatusBadRequest,
			wantCode:   codeMissingAddress,
		},
		"object not found": {
			err:        errs.NewObjectNotFoundError("order_id", "x"),
			wantStatus: http.StatusNotFound,
			wantCode:   codeNotFound,
		},
		"invalid value": {
			err:        errs.NewValueIsInvalidError("quantity"),
			wantStatus: http.StatusBadRequest,
			wantCode:   codeValidationFailed,
		},
		"unexpected error": {
			err:        errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   codeServerError,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			ctx := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			require.NoError(t, respondError(ctx, test.err))
			assert.Equal(t, test.wantStatus, rec.Code)

			body := decodeEnvelope(t, rec)
			assert.Equal(t, "failed", body["status"])
			assert.Equal(t, test.wantCode, body["error"])
		})
	}
}
