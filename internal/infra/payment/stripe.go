// Package payment holds the Stripe adapter used to create payment intents.
package payment

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"

	"newsdesk/internal/resilience/circuitbreaker"
)

// StripeClient creates payment intents against the Stripe API. Calls run
// through a circuit breaker so a Stripe outage fails fast instead of tying up
// request handlers.
type StripeClient struct {
	cb *circuitbreaker.CircuitBreaker
}

// NewStripeClient configures the global Stripe key and returns a client.
func NewStripeClient(apiKey string) *StripeClient {
	stripe.Key = apiKey
	return &StripeClient{
		cb: circuitbreaker.New(circuitbreaker.StripeAPIConfig()),
	}
}

// CreateIntent creates a card payment intent for the amount in minor units
// and returns its client secret.
func (c *StripeClient) CreateIntent(ctx context.Context, amountMinorUnits int64, currency string) (string, error) {
	result, err := c.cb.Execute(func() (interface{}, error) {
		return paymentintent.New(&stripe.PaymentIntentParams{
			Params:             stripe.Params{Context: ctx},
			Amount:             stripe.Int64(amountMinorUnits),
			Currency:           stripe.String(currency),
			PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		})
	})
	if err != nil {
		return "", fmt.Errorf("create payment intent: %w", err)
	}
	pi := result.(*stripe.PaymentIntent)
	return pi.ClientSecret, nil
}
