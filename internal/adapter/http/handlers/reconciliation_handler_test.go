package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"photo_studio/internal/adapter/http/handlers/mocks"
	"photo_studio/internal/domain/entities"
	"photo_studio/internal/usecase"
	"photo_studio/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const verifyPath = "/api/photo/verify-stripe-payment-get-photo"

func newReconciliationRouter(t *testing.T) (*gin.Engine, *mocks.MockIOrderReconciliationUseCase) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIOrderReconciliationUseCase(ctrl)
	r := gin.New()
	r.POST(verifyPath, NewReconciliationHandler(uc).VerifyPaymentGetPhoto)
	return r, uc
}

func TestReconciliationHandler_VerifyPaymentGetPhoto(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r, uc := newReconciliationRouter(t)
		uc.EXPECT().VerifyPaymentGetPhoto(gomock.Any(), "photo-1", "pi_1").Return(entities.PaidPhoto{
			Photo: entities.FinalPhoto{
				PhotoUUID:            "photo-1",
				SpecCode:             "us-passport",
				IDPhotoURL:           "https://cdn/final.jpg",
				IDPhotoOriginalBgURL: "https://cdn/bg.jpg",
			},
			AmountInCents: 1599,
			Currency:      "usd",
			PaymentStatus: entities.PaymentStatusSucceeded,
		}, nil)

		w := performJSON(r, http.MethodPost, verifyPath, `{"photoUuid":"photo-1","paymentIntentId":"pi_1"}`)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["specCode"] != "us-passport" || body["finalImageUrl"] != "https://cdn/final.jpg" || body["originalBackgroundImageUrl"] != "https://cdn/bg.jpg" {
			t.Fatalf("unexpected body %v", body)
		}
		if body["idPhotoTempResultPhotoUrl"] != "https://cdn/final.jpg" || body["paymentStatus"] != "succeeded" {
			t.Fatalf("unexpected aliases %v", body)
		}
	})

	t.Run("payment not succeeded carries status", func(t *testing.T) {
		r, uc := newReconciliationRouter(t)
		uc.EXPECT().VerifyPaymentGetPhoto(gomock.Any(), "photo-1", "pi_1").
			Return(entities.PaidPhoto{}, &usecase.PaymentNotSucceededError{Status: entities.PaymentStatusRequiresPaymentMethod})

		w := performJSON(r, http.MethodPost, verifyPath, `{"orderId":"photo-1","paymentIntentId":"pi_1"}`)

		body := assertEnvelope(t, w, http.StatusPaymentRequired, "Payment not succeeded")
		if body["paymentStatus"] != "requires_payment_method" {
			t.Fatalf("unexpected payment status %v", body["paymentStatus"])
		}
		if _, ok := body["finalImageUrl"]; ok {
			t.Fatalf("asset fields must not be returned: %v", body)
		}
	})

	cases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"missing fields", usecase.ErrMissingVerifyFields, http.StatusBadRequest, "photoUuid and paymentIntentId are required"},
		{"invalid intent", fmt.Errorf("%w: no such payment_intent", usecase.ErrInvalidPaymentIntent), http.StatusBadRequest, "Invalid payment intent ID"},
		{"identifier mismatch", usecase.ErrIdentifierMismatch, http.StatusBadRequest, "photoUuid does not match payment intent"},
		{"currency mismatch", usecase.ErrCurrencyMismatch, http.StatusBadRequest, "payment intent currency does not match order"},
		{"upstream rejection", fmt.Errorf("get no-watermark photo: %w", &pkg.UpstreamError{StatusCode: 404, ResponseText: "photo not found"}), http.StatusBadRequest, "Bad request: photo not found"},
		{"upstream 5xx", fmt.Errorf("get no-watermark photo: %w", &pkg.UpstreamError{StatusCode: 503, ResponseText: "busy"}), http.StatusBadRequest, "Bad request: busy"},
		{"processor timeout", fmt.Errorf("%w: %w", usecase.ErrInvalidPaymentIntent, fmt.Errorf("retrieve payment intent: %w", &pkg.TimeoutError{After: 60 * time.Second})), http.StatusInternalServerError, "Request timed out after 60 seconds"},
		{"photo api timeout", fmt.Errorf("get no-watermark photo: %w", &pkg.TimeoutError{After: 60 * time.Second}), http.StatusInternalServerError, "Request timed out after 60 seconds"},
		{"transport failure", fmt.Errorf("get no-watermark photo: %w", pkg.ErrUpstreamTransport), http.StatusInternalServerError, "Internal server error"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, uc := newReconciliationRouter(t)
			uc.EXPECT().VerifyPaymentGetPhoto(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.PaidPhoto{}, tc.err)

			w := performJSON(r, http.MethodPost, verifyPath, `{"photoUuid":"photo-1","paymentIntentId":"pi_1"}`)

			assertEnvelope(t, w, tc.status, tc.message)
		})
	}
}
