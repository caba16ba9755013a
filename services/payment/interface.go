package payment

import "context"

// Intent is a provider-side payment the customer completes client-side.
type Intent struct {
	ID           string  `json:"id"`
	ClientSecret string  `json:"clientSecret"`
	Amount       float64 `json:"amount"`
	Currency     string  `json:"currency"`
	Status       string  `json:"status"`
}

// PaymentProvider creates payment intents for bookings. The simulated
// implementation backs tests and local development; the Stripe one is used
// in production.
type PaymentProvider interface {
	CreateIntent(ctx context.Context, amount float64, currency, bookingID string) (*Intent, error)
}
