package payment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// SimulatedProvider issues fake intents that always succeed. Used in tests
// and when no Stripe key is configured.
type SimulatedProvider struct{}

func NewSimulatedProvider() *SimulatedProvider {
	return &SimulatedProvider{}
}

func (p *SimulatedProvider) CreateIntent(_ context.Context, amount float64, currency, bookingID string) (*Intent, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("invalid payment amount: %.2f", amount)
	}
	id := "pi_" + uuid.New().String()
	return &Intent{
		ID:           id,
		ClientSecret: id + "_secret",
		Amount:       amount,
		Currency:     currency,
		Status:       "requires_payment_method",
	}, nil
}
