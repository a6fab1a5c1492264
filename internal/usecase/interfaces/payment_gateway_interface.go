package interfaces

import (
	"context"

	"photo_studio/internal/domain/entities"
)

// IPaymentGateway abstracts the card-payment processor (Stripe by default,
// Mercado Pago as an alternate).
//
// Intents are never updated in place: a new selection creates a new intent and
// the previous one is abandoned.
type IPaymentGateway interface {
	CreatePaymentIntent(ctx context.Context, req entities.PaymentIntentRequest) (entities.PaymentIntent, error)
	RetrievePaymentIntent(ctx context.Context, id string) (entities.PaymentIntent, error)
}
