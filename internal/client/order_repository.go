package client

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"photo_studio/internal/domain/entities"

	"github.com/gabriel-vasile/mimetype"
)

var ErrNotAnImage = errors.New("file is not an image")

// OrderRepository builds PhotoOrder views from the studio API. Orders are
// never stored; they are rebuilt from the photo API and the processor.
type OrderRepository struct {
	service *StudioService
}

func NewOrderRepository(service *StudioService) *OrderRepository {
	return &OrderRepository{service: service}
}

// CreateOrder uploads image for specCode and returns the unpaid order with
// its watermarked preview. Quality issues do not fail the call.
func (r *OrderRepository) CreateOrder(ctx context.Context, specCode string, image []byte) (entities.PhotoOrder, error) {
	dataURL, err := EncodeDataURL(image)
	if err != nil {
		return entities.PhotoOrder{}, err
	}

	signedURL, err := r.service.GetSignedURL(ctx, specCode, nil)
	if err != nil {
		return entities.PhotoOrder{}, fmt.Errorf("get signed url: %w", err)
	}

	submission, err := r.service.CreateWatermarkPhoto(ctx, signedURL, dataURL)
	if err != nil {
		return entities.PhotoOrder{}, fmt.Errorf("create watermark photo: %w", err)
	}

	return entities.PhotoOrder{
		OrderID:         submission.PhotoUUID,
		SpecCode:        specCode,
		Status:          entities.OrderStatusUnpaid,
		PreviewImageURL: submission.IDPhotoURL,
		OriginalBgURL:   submission.IDPhotoOriginalBgURL,
		Issues:          submission.Issues,
	}, nil
}

// GetOrder reconciles orderID with paymentIntentID. An unpaid intent is not
// an error: the order comes back with its derived status and the message to
// show the customer.
func (r *OrderRepository) GetOrder(ctx context.Context, orderID, paymentIntentID string) (entities.PhotoOrder, error) {
	paid, err := r.service.VerifyPaymentGetPhoto(ctx, orderID, paymentIntentID)
	if err != nil {
		httpErr, ok := AsHTTPError(err)
		if !ok || httpErr.StatusCode != http.StatusPaymentRequired {
			return entities.PhotoOrder{}, err
		}
		paymentStatus := entities.PaymentStatus(httpErr.Body.PaymentStatus)
		status, msg := entities.DeriveOrderStatus(paymentStatus, false)
		return entities.PhotoOrder{
			OrderID:         orderID,
			Status:          status,
			Issues:          []string{},
			PaymentStatus:   string(paymentStatus),
			PaymentIntentID: paymentIntentID,
			CustomerMessage: msg,
		}, nil
	}

	status, msg := entities.DeriveOrderStatus(entities.PaymentStatus(paid.PaymentStatus), true)
	return entities.PhotoOrder{
		OrderID:         paid.OrderID,
		SpecCode:        paid.SpecCode,
		Status:          status,
		FinalImageURL:   paid.FinalImageURL,
		OriginalBgURL:   paid.OriginalBackgroundImageURL,
		Issues:          []string{},
		AmountInCents:   paid.AmountInCents,
		Currency:        paid.Currency,
		PaymentStatus:   paid.PaymentStatus,
		PaymentIntentID: paymentIntentID,
		CustomerMessage: msg,
	}, nil
}

// EncodeDataURL turns raw image bytes into the base64 data URL the upload
// target expects. A string that already is a data URL is passed through.
func EncodeDataURL(image []byte) (string, error) {
	if s := string(image); strings.HasPrefix(s, "data:image/") {
		return s, nil
	}
	mtype := mimetype.Detect(image)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return "", fmt.Errorf("%w: detected %s", ErrNotAnImage, mtype.String())
	}
	return "data:" + mtype.String() + ";base64," + base64.StdEncoding.EncodeToString(image), nil
}
