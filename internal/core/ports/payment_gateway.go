package ports

import (
	"context"
)

// PaymentCharge is the outcome of a successful call to the payment
// provider. Status mirrors the provider's charge status verbatim.
type PaymentCharge struct {
	ID     string
	Status string
}

// Succeeded reports whether the provider accepted the charge.
func (c PaymentCharge) Succeeded() bool {
	return c.Status != "failed"
}

// ChargeRequest carries everything the payment provider needs to
// capture a card payment. AmountCents is in the smallest currency unit.
type ChargeRequest struct {
	AmountCents int64
	Currency    string
	Token       string
	Description string
}

// PaymentGateway charges customers through an external payment provider.
// Implementations must return errs.ExternalServiceError on transport or
// provider failures so callers can map them uniformly.
type PaymentGateway interface {
	Charge(ctx context.Context, request ChargeRequest) (PaymentCharge, error)
}
