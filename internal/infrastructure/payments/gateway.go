package payments

import (
	"context"
	"fmt"

	"photo_studio/internal/config"
	"photo_studio/internal/domain/entities"
	"photo_studio/internal/usecase/interfaces"
)

// PaymentConfirmer confirms an intent on the server, which only test
// payment methods allow. Browser clients confirm with the publishable key.
type PaymentConfirmer interface {
	ConfirmPaymentIntent(ctx context.Context, id, paymentMethod, returnURL string) (entities.PaymentIntent, error)
}

// NewGateway builds the processor selected by PAYMENT_PROVIDER. Mock mode
// wins over the provider.
func NewGateway(cfg *config.Config) (interfaces.IPaymentGateway, error) {
	if cfg.Payment.Mock {
		return NewMockGateway(), nil
	}
	switch cfg.Payment.Provider {
	case config.ProviderStripe:
		return NewStripeGateway(StripeConfig{
			SecretKey: cfg.Payment.StripeSecretKey,
			APIURL:    cfg.Payment.StripeAPIURL,
			Timeout:   cfg.App.UpstreamTimeout,
		})
	case config.ProviderMercadoPago:
		return NewMercadoPagoGateway(cfg.Payment.MercadoPagoAccessToken)
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownPaymentProvider, cfg.Payment.Provider)
	}
}
