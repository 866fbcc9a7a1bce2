// Package stripepay charges customer cards through Stripe.
package stripepay

import (
	"context"
	"time"

	"foodtasker/internal/core/ports"
	"foodtasker/internal/pkg/errs"

	stripe "github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/charge"
)

// Gateway is a thin wrapper around stripe-go's charge API implementing
// ports.PaymentGateway. Tokens arrive single-use from the client SDKs; the
// card number itself never touches this process.
type Gateway struct {
	timeout time.Duration
}

// NewGateway initializes the gateway with the given secret API key and a
// per-charge timeout. The key is set process-wide, matching how stripe-go
// manages credentials.
func NewGateway(apiKey string, timeout time.Duration) *Gateway {
	stripe.Key = apiKey
	return &Gateway{timeout: timeout}
}

// Charge captures a card payment, bounded by the configured timeout so a
// stalled provider call cannot hold the checkout transaction open.
// Transport and provider errors are wrapped in errs.ExternalServiceError; a
// charge Stripe reports as failed is returned as-is for the caller to
// inspect via PaymentCharge.Succeeded.
func (g *Gateway) Charge(ctx context.Context, request ports.ChargeRequest) (ports.PaymentCharge, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	params := &stripe.ChargeParams{
		Params:      stripe.Params{Context: ctx},
		Amount:      stripe.Int64(request.AmountCents),
		Currency:    stripe.String(request.Currency),
		Description: stripe.String(request.Description),
	}
	if err := params.SetSource(request.Token); err != nil {
		return ports.PaymentCharge{}, errs.NewExternalServiceErrorWithCause("stripe", err)
	}

	ch, err := charge.New(params)
	if err != nil {
		return ports.PaymentCharge{}, errs.NewExternalServiceErrorWithCause("stripe", err)
	}

	return ports.PaymentCharge{
		ID:     ch.ID,
		Status: string(ch.Status),
	}, nil
}
