package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"photo_studio/internal/domain/entities"
	"photo_studio/internal/domain/pricing"
	"photo_studio/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrMissingIntentFields   = errors.New("amountInCent, currency and photoUuid are required")
	ErrMissingPhotoUUID      = errors.New("photoUuid is required")
	ErrInvalidIntentCurrency = errors.New("currency must be a three-letter ISO 4217 code")
	ErrNonPositiveAmount     = errors.New("payment amount must be greater than zero")
)

// CreatePaymentIntentInput accepts both request shapes. With PackageID set
// the amount is computed server-side and AmountInCent/Currency are ignored;
// otherwise AmountInCent is already in processor-native units.
type CreatePaymentIntentInput struct {
	PhotoUUID             string
	PackageID             string
	AdditionalPhotoNumber int

	AmountInCent       int64
	Currency           string
	PrintedPhotoNumber int
}

type PaymentIntentResult struct {
	Intent    entities.PaymentIntent
	ReturnURL string
	// Quote is set when the amount was computed from the catalog.
	Quote *pricing.Quote
}

// IPaymentIntentUseCase is the server half of the payment intent manager.
// There is no update: every call opens a new intent.
type IPaymentIntentUseCase interface {
	CreatePaymentIntent(ctx context.Context, in CreatePaymentIntentInput) (PaymentIntentResult, error)
}

type PaymentIntentUseCase struct {
	gateway           interfaces.IPaymentGateway
	catalog           ICatalogUseCase
	returnURLTemplate string
	newKey            func() string
}

var _ IPaymentIntentUseCase = (*PaymentIntentUseCase)(nil)

func NewPaymentIntentUseCase(gateway interfaces.IPaymentGateway, catalog ICatalogUseCase, returnURLTemplate string) *PaymentIntentUseCase {
	return &PaymentIntentUseCase{
		gateway:           gateway,
		catalog:           catalog,
		returnURLTemplate: returnURLTemplate,
		newKey:            uuid.NewString,
	}
}

func (u *PaymentIntentUseCase) CreatePaymentIntent(ctx context.Context, in CreatePaymentIntentInput) (PaymentIntentResult, error) {
	in.PhotoUUID = strings.TrimSpace(in.PhotoUUID)
	in.PackageID = strings.TrimSpace(in.PackageID)
	in.Currency = strings.ToLower(strings.TrimSpace(in.Currency))

	req, quote, err := u.buildRequest(ctx, in)
	if err != nil {
		return PaymentIntentResult{}, err
	}
	req.ReturnURL = u.ReturnURL(in.PhotoUUID)
	req.IdempotencyKey = u.newKey()

	logger := log.With().
		Str("component", "payment.usecase").
		Str("photo_uuid", req.PhotoUUID).
		Str("package_id", req.PackageID).
		Str("currency", req.Currency).
		Int64("processor_amount", req.Amount).
		Int("printed_photo_number", req.PrintedPhotoNumber).
		Logger()

	intent, err := u.gateway.CreatePaymentIntent(ctx, req)
	if err != nil {
		logger.Error().Err(err).Msg("create payment intent failed")
		return PaymentIntentResult{}, err
	}
	logger.Info().Str("payment_intent_id", intent.ID).Msg("payment intent created")

	return PaymentIntentResult{Intent: intent, ReturnURL: req.ReturnURL, Quote: quote}, nil
}

// ReturnURL is where the processor redirects after confirmation for orderID.
func (u *PaymentIntentUseCase) ReturnURL(orderID string) string {
	if u.returnURLTemplate == "" || orderID == "" {
		return ""
	}
	return strings.ReplaceAll(u.returnURLTemplate, "{orderId}", url.PathEscape(orderID))
}

func (u *PaymentIntentUseCase) buildRequest(ctx context.Context, in CreatePaymentIntentInput) (entities.PaymentIntentRequest, *pricing.Quote, error) {
	if in.PackageID == "" {
		if in.AmountInCent <= 0 || in.Currency == "" || in.PhotoUUID == "" {
			return entities.PaymentIntentRequest{}, nil, ErrMissingIntentFields
		}
		if !entities.IsValidCurrencyCode(in.Currency) {
			return entities.PaymentIntentRequest{}, nil, ErrInvalidIntentCurrency
		}
		printed := in.PrintedPhotoNumber
		if printed < 0 {
			printed = 0
		}
		return entities.PaymentIntentRequest{
			PhotoUUID:          in.PhotoUUID,
			Amount:             in.AmountInCent,
			Currency:           in.Currency,
			PrintedPhotoNumber: printed,
		}, nil, nil
	}

	if in.PhotoUUID == "" {
		return entities.PaymentIntentRequest{}, nil, ErrMissingPhotoUUID
	}
	q, err := u.catalog.Quote(ctx, in.PackageID, in.AdditionalPhotoNumber)
	if err != nil {
		return entities.PaymentIntentRequest{}, nil, err
	}
	if q.ProcessorAmount <= 0 {
		return entities.PaymentIntentRequest{}, nil, fmt.Errorf("%w: package %s", ErrNonPositiveAmount, q.PackageID)
	}

	if (in.AmountInCent != 0 && in.AmountInCent != q.ProcessorAmount) || (in.Currency != "" && in.Currency != q.Currency) {
		log.Warn().
			Str("component", "payment.usecase").
			Str("photo_uuid", in.PhotoUUID).
			Str("package_id", q.PackageID).
			Int64("client_amount", in.AmountInCent).
			Str("client_currency", in.Currency).
			Int64("processor_amount", q.ProcessorAmount).
			Str("currency", q.Currency).
			Msg("client amount ignored, using catalog price")
	}

	return entities.PaymentIntentRequest{
		PhotoUUID:          in.PhotoUUID,
		Amount:             q.ProcessorAmount,
		Currency:           q.Currency,
		PrintedPhotoNumber: q.TotalUnitCount,
		AmountInCents:      q.TotalAmountInMinorUnits,
		PackageID:          q.PackageID,
	}, &q, nil
}
