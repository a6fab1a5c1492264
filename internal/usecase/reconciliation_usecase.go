package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"photo_studio/internal/domain/entities"
	"photo_studio/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

const defaultMetadataPushTimeout = 10 * time.Second

var (
	ErrMissingVerifyFields  = errors.New("photoUuid and paymentIntentId are required")
	ErrInvalidPaymentIntent = errors.New("invalid payment intent ID")
	ErrPaymentNotSucceeded  = errors.New("payment not succeeded")
	ErrIdentifierMismatch   = errors.New("photoUuid does not match payment intent")
	ErrCurrencyMismatch     = errors.New("payment intent currency does not match order")
)

// PaymentNotSucceededError reports the processor status that blocked the
// release of the final photo. It matches ErrPaymentNotSucceeded.
type PaymentNotSucceededError struct {
	Status entities.PaymentStatus
}

func (e *PaymentNotSucceededError) Error() string {
	return fmt.Sprintf("%s: status=%s", ErrPaymentNotSucceeded, e.Status)
}

func (e *PaymentNotSucceededError) Unwrap() error {
	return ErrPaymentNotSucceeded
}

// IOrderReconciliationUseCase gates the unwatermarked photo on a verified
// payment.
type IOrderReconciliationUseCase interface {
	VerifyPaymentGetPhoto(ctx context.Context, photoUUID, paymentIntentID string) (entities.PaidPhoto, error)
}

type OrderReconciliationUseCase struct {
	gateway         interfaces.IPaymentGateway
	photoAPI        interfaces.IPhotoAPI
	metadataTimeout time.Duration
}

var _ IOrderReconciliationUseCase = (*OrderReconciliationUseCase)(nil)

func NewOrderReconciliationUseCase(gateway interfaces.IPaymentGateway, photoAPI interfaces.IPhotoAPI) *OrderReconciliationUseCase {
	return &OrderReconciliationUseCase{
		gateway:         gateway,
		photoAPI:        photoAPI,
		metadataTimeout: defaultMetadataPushTimeout,
	}
}

func (u *OrderReconciliationUseCase) VerifyPaymentGetPhoto(ctx context.Context, photoUUID, paymentIntentID string) (entities.PaidPhoto, error) {
	photoUUID = strings.TrimSpace(photoUUID)
	paymentIntentID = strings.TrimSpace(paymentIntentID)
	if photoUUID == "" || paymentIntentID == "" {
		return entities.PaidPhoto{}, ErrMissingVerifyFields
	}

	logger := log.With().
		Str("component", "reconcile.usecase").
		Str("photo_uuid", photoUUID).
		Str("payment_intent_id", paymentIntentID).
		Logger()

	intent, err := u.gateway.RetrievePaymentIntent(ctx, paymentIntentID)
	if err != nil {
		logger.Warn().Err(err).Msg("retrieve payment intent failed")
		return entities.PaidPhoto{}, fmt.Errorf("%w: %w", ErrInvalidPaymentIntent, err)
	}

	// Status is checked before the identifier: an unpaid intent is always 402.
	if intent.Status != entities.PaymentStatusSucceeded {
		logger.Info().Str("status", string(intent.Status)).Msg("payment not succeeded")
		return entities.PaidPhoto{}, &PaymentNotSucceededError{Status: intent.Status}
	}
	if intent.PhotoUUID() != photoUUID {
		logger.Warn().Str("bound_photo_uuid", intent.PhotoUUID()).Msg("payment intent bound to another photo")
		return entities.PaidPhoto{}, ErrIdentifierMismatch
	}
	// Intents from before the currency key was bound carry no value to compare.
	if bound := intent.Metadata[entities.MetadataCurrency]; bound != "" && !strings.EqualFold(bound, intent.Currency) {
		logger.Warn().Str("bound_currency", bound).Str("currency", intent.Currency).Msg("payment intent currency differs from bound currency")
		return entities.PaidPhoto{}, ErrCurrencyMismatch
	}

	amountInCents := amountInCentsOf(intent)
	u.pushOrderMetadata(ctx, photoUUID, entities.OrderMetadata{
		PaymentIntentID:    intent.ID,
		AmountInCents:      amountInCents,
		Currency:           intent.Currency,
		PrintedPhotoNumber: intent.PrintedPhotoNumber(),
		PaymentStatus:      string(intent.Status),
	})

	photo, err := u.photoAPI.GetNoWatermarkPhoto(ctx, photoUUID)
	if err != nil {
		logger.Error().Err(err).Msg("get no-watermark photo failed")
		return entities.PaidPhoto{}, fmt.Errorf("get no-watermark photo: %w", err)
	}
	logger.Info().Str("spec_code", photo.SpecCode).Msg("final photo released")

	return entities.PaidPhoto{
		Photo:         photo,
		AmountInCents: amountInCents,
		Currency:      intent.Currency,
		PaymentStatus: intent.Status,
	}, nil
}

// pushOrderMetadata records the payment on the photo. It never fails the
// caller, and it is detached from the inbound request so a client abort does
// not cut it short.
func (u *OrderReconciliationUseCase) pushOrderMetadata(ctx context.Context, photoUUID string, md entities.OrderMetadata) {
	pushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), u.metadataTimeout)
	defer cancel()

	if err := u.photoAPI.UpdateUserMetadata(pushCtx, photoUUID, md); err != nil {
		log.Warn().Err(err).
			Str("component", "reconcile.usecase").
			Str("photo_uuid", photoUUID).
			Str("payment_intent_id", md.PaymentIntentID).
			Msg("update user metadata failed, continuing")
	}
}

// amountInCentsOf prefers the catalog amount bound at creation and falls back
// to the processor amount for intents created with the legacy contract.
func amountInCentsOf(intent entities.PaymentIntent) int64 {
	if v, ok := intent.Metadata[entities.MetadataAmountInCents]; ok {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			return n
		}
	}
	return intent.Amount
}
