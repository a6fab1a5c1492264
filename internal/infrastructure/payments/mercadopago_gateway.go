package payments

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"photo_studio/internal/domain/entities"
	"photo_studio/internal/domain/pricing"
	"photo_studio/internal/usecase/interfaces"
	"photo_studio/pkg"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"github.com/rs/zerolog/log"
)

var (
	ErrMissingMercadoPagoAccessToken   = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
	ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
	ErrInvalidMercadoPagoPaymentID     = errors.New("mercado pago payment id must be numeric")
)

// MercadoPagoGateway maps the intent contract onto Checkout Pro: creating an
// intent opens a preference (its id is the intent id and its init point is
// the client handshake), and retrieval reads the resulting payment by id.
type MercadoPagoGateway struct {
	preferences preference.Client
	payments    payment.Client
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if strings.TrimSpace(accessToken) == "" {
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Error().Err(err).Str("component", "payment.gateway").Str("provider", "mercadopago").Msg("failed creating sdk config")
		return nil, err
	}
	log.Info().Str("component", "payment.gateway").Str("provider", "mercadopago").Msg("mercado pago client initialized")

	return &MercadoPagoGateway{
		preferences: preference.NewClient(cfg),
		payments:    payment.NewClient(cfg),
	}, nil
}

func (g *MercadoPagoGateway) CreatePaymentIntent(ctx context.Context, req entities.PaymentIntentRequest) (entities.PaymentIntent, error) {
	if g == nil || g.preferences == nil {
		return entities.PaymentIntent{}, ErrMercadoPagoGatewayNotConfigured
	}

	md := req.Metadata()
	metadata := make(map[string]any, len(md))
	for k, v := range md {
		metadata[k] = v
	}

	prefReq := preference.Request{
		ExternalReference: req.PhotoUUID,
		Metadata:          metadata,
		Items: []preference.ItemRequest{{
			ID:         req.PackageID,
			Title:      fmt.Sprintf("ID photo %s", req.PhotoUUID),
			Quantity:   1,
			UnitPrice:  pricing.MajorUnits(req.Amount, req.Currency),
			CurrencyID: strings.ToUpper(req.Currency),
		}},
	}
	if req.ReturnURL != "" {
		prefReq.BackURLs = &preference.BackURLsRequest{Success: req.ReturnURL, Pending: req.ReturnURL, Failure: req.ReturnURL}
	}

	resp, err := g.preferences.Create(ctx, prefReq)
	if err != nil {
		log.Error().Err(err).Str("component", "payment.gateway").Str("provider", "mercadopago").Msg("sdk preference create failed")
		return entities.PaymentIntent{}, fmt.Errorf("create preference: %w: %v", pkg.ErrUpstreamTransport, err)
	}

	return entities.PaymentIntent{
		ID:           resp.ID,
		ClientSecret: resp.InitPoint,
		Amount:       req.Amount,
		Currency:     strings.ToLower(req.Currency),
		Status:       entities.PaymentStatusRequiresPaymentMethod,
		Metadata:     md,
	}, nil
}

func (g *MercadoPagoGateway) RetrievePaymentIntent(ctx context.Context, id string) (entities.PaymentIntent, error) {
	if g == nil || g.payments == nil {
		return entities.PaymentIntent{}, ErrMercadoPagoGatewayNotConfigured
	}
	paymentID, err := strconv.Atoi(strings.TrimSpace(id))
	if err != nil {
		return entities.PaymentIntent{}, fmt.Errorf("%w: %q", ErrInvalidMercadoPagoPaymentID, id)
	}

	resp, err := g.payments.Get(ctx, paymentID)
	if err != nil {
		return entities.PaymentIntent{}, fmt.Errorf("get payment: %w: %v", pkg.ErrUpstreamTransport, err)
	}

	currency := strings.ToLower(resp.CurrencyID)
	md := make(map[string]string, len(resp.Metadata)+1)
	for k, v := range resp.Metadata {
		md[metadataKey(k)] = fmt.Sprint(v)
	}
	if md[entities.MetadataPhotoUUID] == "" && resp.ExternalReference != "" {
		md[entities.MetadataPhotoUUID] = resp.ExternalReference
	}

	return entities.PaymentIntent{
		ID:       strconv.Itoa(resp.ID),
		Amount:   pricing.FromMajorUnits(resp.TransactionAmount, currency),
		Currency: currency,
		Status:   mercadoPagoStatus(resp.Status),
		Metadata: md,
	}, nil
}

// Mercado Pago returns metadata keys in snake_case.
var mercadoPagoMetadataKeys = map[string]string{
	"photo_uuid":           entities.MetadataPhotoUUID,
	"printed_photo_number": entities.MetadataPrintedPhotoNumber,
	"amount_in_cents":      entities.MetadataAmountInCents,
	"processor_amount":     entities.MetadataProcessorAmount,
	"package_id":           entities.MetadataPackageID,
}

func metadataKey(k string) string {
	if mapped, ok := mercadoPagoMetadataKeys[k]; ok {
		return mapped
	}
	return k
}

func mercadoPagoStatus(status string) entities.PaymentStatus {
	switch status {
	case "approved":
		return entities.PaymentStatusSucceeded
	case "in_process", "pending", "authorized", "in_mediation":
		return entities.PaymentStatusProcessing
	case "rejected":
		return entities.PaymentStatusRequiresPaymentMethod
	case "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusCanceled
	default:
		return entities.PaymentStatus(status)
	}
}
