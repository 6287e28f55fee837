// Package payment provides the use case for creating payment intents backing
// premium subscription checkout.
package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/sony/gobreaker"

	"newsdesk/internal/domain/entity"
)

// DefaultCurrency is the charge currency when the caller does not name one.
const DefaultCurrency = "usd"

// Sentinel errors for payment use case operations.
var (
	// ErrPaymentUnavailable indicates that the payment provider is currently
	// unreachable, typically because the circuit breaker is open.
	ErrPaymentUnavailable = errors.New("payment provider unavailable")
)

// IntentCreator abstracts the payment provider. Implemented by the Stripe
// adapter in internal/infra/payment.
type IntentCreator interface {
	CreateIntent(ctx context.Context, amountMinorUnits int64, currency string) (clientSecret string, err error)
}

// Intent is the result of a successful intent creation.
type Intent struct {
	ClientSecret     string
	AmountMinorUnits int64
	Currency         string
}

// Service provides payment intent use cases. Stateless: no payment records
// are stored server-side.
type Service struct {
	Client IntentCreator
}

// CreateIntent creates a payment intent for a price in major currency units.
// The amount is converted to minor units by truncation (price 9.999 charges
// 999 cents).
func (s *Service) CreateIntent(ctx context.Context, price float64) (*Intent, error) {
	if price <= 0 {
		return nil, &entity.ValidationError{Field: "price", Message: "must be positive"}
	}

	amount := int64(price * 100)
	secret, err := s.Client.CreateIntent(ctx, amount, DefaultCurrency)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, ErrPaymentUnavailable
		}
		return nil, fmt.Errorf("create intent: %w", err)
	}

	return &Intent{
		ClientSecret:     secret,
		AmountMinorUnits: amount,
		Currency:         DefaultCurrency,
	}, nil
}
