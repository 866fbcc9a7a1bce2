package stripepay_test

import (
	"context"
	"testing"
	"time"

	"foodtasker/internal/adapters/out/stripepay"
	"foodtasker/internal/core/ports"
	"foodtasker/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func TestCharge_BoundedByConfiguredTimeout(t *testing.T) {
	// A timeout that expires immediately must abort the charge before any
	// provider round trip instead of waiting on the transport.
	gateway := stripepay.NewGateway("sk_test_dummy", time.Nanosecond)

	start := time.Now()
	_, err := gateway.Charge(context.Background(), ports.ChargeRequest{
		AmountCents: 1500,
		Currency:    "usd",
		Token:       "tok_visa",
		Description: "order 42",
	})

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrExternalService)
	require.Less(t, time.Since(start), 5*time.Second)
}
