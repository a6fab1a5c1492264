package payments

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"photo_studio/internal/domain/entities"
	"photo_studio/internal/usecase/interfaces"
	"photo_studio/pkg"

	"github.com/rs/zerolog/log"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

var ErrMissingStripeSecretKey = errors.New("missing STRIPE_SECRET_KEY")

type StripeConfig struct {
	SecretKey string
	// APIURL overrides the Stripe API base, e.g. an httptest server.
	APIURL  string
	Timeout time.Duration
}

// StripeGateway talks to Stripe with an explicitly constructed client. It is
// created once at startup and shared by every request.
type StripeGateway struct {
	api     *client.API
	timeout time.Duration
}

var _ interfaces.IPaymentGateway = (*StripeGateway)(nil)
var _ PaymentConfirmer = (*StripeGateway)(nil)

func NewStripeGateway(cfg StripeConfig) (*StripeGateway, error) {
	if strings.TrimSpace(cfg.SecretKey) == "" {
		return nil, ErrMissingStripeSecretKey
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	backendCfg := &stripe.BackendConfig{
		HTTPClient:        &http.Client{},
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     stripeLogger{},
	}
	if cfg.APIURL != "" {
		backendCfg.URL = stripe.String(strings.TrimRight(cfg.APIURL, "/"))
	}
	backend := stripe.GetBackendWithConfig(stripe.APIBackend, backendCfg)

	api := client.New(cfg.SecretKey, &stripe.Backends{API: backend, Connect: backend, Uploads: backend})
	log.Info().Str("component", "payment.gateway").Str("provider", "stripe").Msg("stripe client initialized")
	return &StripeGateway{api: api, timeout: timeout}, nil
}

func (g *StripeGateway) CreatePaymentIntent(ctx context.Context, req entities.PaymentIntentRequest) (entities.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(req.Amount),
		Currency: stripe.String(strings.ToLower(req.Currency)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	reqCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()
	params.Context = reqCtx
	for k, v := range req.Metadata() {
		params.AddMetadata(k, v)
	}
	if req.IdempotencyKey != "" {
		params.SetIdempotencyKey(req.IdempotencyKey)
	}

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return entities.PaymentIntent{}, g.normalizeError(ctx, reqCtx, "create payment intent", err)
	}
	return toPaymentIntent(pi), nil
}

func (g *StripeGateway) RetrievePaymentIntent(ctx context.Context, id string) (entities.PaymentIntent, error) {
	reqCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()
	params := &stripe.PaymentIntentParams{}
	params.Context = reqCtx

	pi, err := g.api.PaymentIntents.Get(id, params)
	if err != nil {
		return entities.PaymentIntent{}, g.normalizeError(ctx, reqCtx, "retrieve payment intent", err)
	}
	return toPaymentIntent(pi), nil
}

// ConfirmPaymentIntent confirms server-side with a saved or test payment
// method (e.g. pm_card_visa). Card and validation failures are returned as
// *entities.ProcessorError.
func (g *StripeGateway) ConfirmPaymentIntent(ctx context.Context, id, paymentMethod, returnURL string) (entities.PaymentIntent, error) {
	params := &stripe.PaymentIntentConfirmParams{
		PaymentMethod: stripe.String(paymentMethod),
	}
	if returnURL != "" {
		params.ReturnURL = stripe.String(returnURL)
	}
	reqCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()
	params.Context = reqCtx

	pi, err := g.api.PaymentIntents.Confirm(id, params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.Type != "" {
			return entities.PaymentIntent{}, &entities.ProcessorError{Type: string(stripeErr.Type), Message: stripeErr.Msg}
		}
		return entities.PaymentIntent{}, g.normalizeError(ctx, reqCtx, "confirm payment intent", err)
	}
	return toPaymentIntent(pi), nil
}

func (g *StripeGateway) normalizeError(parent, reqCtx context.Context, op string, err error) error {
	var netErr net.Error
	timedOut := parent.Err() == nil && errors.Is(reqCtx.Err(), context.DeadlineExceeded)
	if timedOut || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%s: %w", op, &pkg.TimeoutError{After: g.timeout})
	}
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		return fmt.Errorf("%s: %w", op, &pkg.UpstreamError{StatusCode: stripeErr.HTTPStatusCode, ResponseText: stripeErr.Msg})
	}
	return fmt.Errorf("%s: %w: %v", op, pkg.ErrUpstreamTransport, err)
}

func toPaymentIntent(pi *stripe.PaymentIntent) entities.PaymentIntent {
	md := make(map[string]string, len(pi.Metadata))
	for k, v := range pi.Metadata {
		md[k] = v
	}
	return entities.PaymentIntent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       pi.Amount,
		Currency:     string(pi.Currency),
		Status:       entities.PaymentStatus(pi.Status),
		Metadata:     md,
	}
}

// stripeLogger routes stripe-go's own logging through zerolog.
type stripeLogger struct{}

func (stripeLogger) Debugf(format string, v ...interface{}) {
	log.Debug().Str("component", "stripe").Msgf(format, v...)
}

func (stripeLogger) Infof(format string, v ...interface{}) {
	log.Debug().Str("component", "stripe").Msgf(format, v...)
}

func (stripeLogger) Warnf(format string, v ...interface{}) {
	log.Warn().Str("component", "stripe").Msgf(format, v...)
}

func (stripeLogger) Errorf(format string, v ...interface{}) {
	log.Error().Str("component", "stripe").Msgf(format, v...)
}
