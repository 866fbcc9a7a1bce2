package http

import (
	"errors"
	"net/http"

	"foodtasker/internal/core/application/usecases/commands"
	"foodtasker/internal/core/domain/model/order"
	"foodtasker/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Machine-readable error codes carried in the failure envelope. Clients
// branch on these, never on the HTTP status or a human message.
const (
	codeAlreadyHasActiveOrder = "ALREADY_HAS_ACTIVE_ORDER"
	codeMissingAddress        = "MISSING_ADDRESS"
	codePaymentFailed         = "PAYMENT_FAILED"
	codeMealNotFound          = "MEAL_NOT_FOUND"
	codeAlreadyPicked         = "ALREADY_PICKED"
	codeAuthenticationFailed  = "AUTHENTICATION_FAILED"
	codeValidationFailed      = "VALIDATION_FAILED"
	codeNotFound              = "NOT_FOUND"
	codeServerError           = "SERVER_ERROR"
)

// respondSuccess writes the success envelope, merging the given payload keys
// next to "status".
func respondSuccess(ctx echo.Context, payload map[string]any) error {
	body := map[string]any{"status": "success"}
	for key, value := range payload {
		body[key] = value
	}

	return ctx.JSON(http.StatusOK, body)
}

// respondFailure writes the failure envelope with an explicit code.
func respondFailure(ctx echo.Context, status int, code string) error {
	return ctx.JSON(status, map[string]any{
		"status": "failed",
		"error":  code,
	})
}

// respondError maps an application error onto the failure envelope. Checks
// run most specific first; anything unrecognized is a server error.
func respondError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errAuthenticationFailed):
		return respondFailure(ctx, http.StatusUnauthorized, codeAuthenticationFailed)
	case errors.Is(err, order.ErrActiveOrderExists):
		return respondFailure(ctx, http.StatusConflict, codeAlreadyHasActiveOrder)
	case errors.Is(err, order.ErrAlreadyPicked):
		return respondFailure(ctx, http.StatusConflict, codeAlreadyPicked)
	case errors.Is(err, commands.ErrPaymentFailed):
		return respondFailure(ctx, http.StatusPaymentRequired, codePaymentFailed)
	case errors.Is(err, commands.ErrAddressIsRequired):
		return respondFailure(ctx, http.StatusBadRequest, codeMissingAddress)
	case errors.Is(err, errs.ErrObjectNotFound):
		return respondFailure(ctx, http.StatusNotFound, codeNotFound)
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return respondFailure(ctx, http.StatusBadRequest, codeValidationFailed)
	default:
		return respondFailure(ctx, http.StatusInternalServerError, codeServerError)
	}
}
