package pkg

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"
)

func TestAppError_ToHTTPError(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	appErr := NewInternalError(cause)

	body := appErr.ToHTTPError()
	if body.Error != "Internal server error" || body.Code != "INTERNAL_ERROR" {
		t.Fatalf("unexpected envelope: %+v", body)
	}
	if appErr.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", appErr.HTTPStatus)
	}
	if !errors.Is(appErr, cause) {
		t.Fatalf("expected AppError to unwrap to its cause")
	}
}

func TestAppError_WithPaymentStatus(t *testing.T) {
	appErr := NewDomainErrorSimple("PAYMENT_NOT_SUCCEEDED", "Payment not succeeded", http.StatusPaymentRequired).
		WithPaymentStatus("processing")

	body := appErr.ToHTTPError()
	if body.PaymentStatus != "processing" {
		t.Fatalf("expected payment status in envelope, got %+v", body)
	}
	if appErr.Error() != "Payment not succeeded" {
		t.Fatalf("unexpected message %q", appErr.Error())
	}
}

func TestAsUpstreamError(t *testing.T) {
	wrapped := fmt.Errorf("get no-watermark photo: %w", &UpstreamError{StatusCode: 404, ResponseText: "photo not found"})

	upstreamErr, ok := AsUpstreamError(wrapped)
	if !ok {
		t.Fatalf("expected upstream error to be found")
	}
	if upstreamErr.StatusCode != 404 || upstreamErr.ResponseText != "photo not found" {
		t.Fatalf("unexpected upstream error: %+v", upstreamErr)
	}

	if _, ok := AsUpstreamError(ErrUpstreamTimeout); ok {
		t.Fatalf("timeout must not be reported as an upstream rejection")
	}
}

func TestTimeoutError(t *testing.T) {
	err := fmt.Errorf("get signed url: %w", &TimeoutError{After: 60 * time.Second})

	if !errors.Is(err, ErrUpstreamTimeout) {
		t.Fatalf("expected timeout sentinel to match")
	}
	var timeoutErr *TimeoutError
	if !errors.As(err, &timeoutErr) || timeoutErr.Seconds() != 60 {
		t.Fatalf("unexpected timeout error: %v", err)
	}
	if errors.Is(err, ErrUpstreamTransport) {
		t.Fatalf("timeout must stay distinct from transport failures")
	}
}
