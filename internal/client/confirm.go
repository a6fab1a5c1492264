package client

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"photo_studio/internal/domain/entities"
)

var ErrMissingPaymentIntent = errors.New("redirect has no payment_intent")

// PaymentConfirmer confirms an intent with a payment method.
type PaymentConfirmer interface {
	ConfirmPaymentIntent(ctx context.Context, id, paymentMethod, returnURL string) (entities.PaymentIntent, error)
}

// ConfirmationError carries the only text that may be shown to the
// customer. The processor failure stays in Err.
type ConfirmationError struct {
	Message string
	Err     error
}

func (e *ConfirmationError) Error() string { return e.Message }
func (e *ConfirmationError) Unwrap() error { return e.Err }

// ReturnURL fills template's {orderId} placeholder.
func ReturnURL(template, orderID string) string {
	return strings.ReplaceAll(template, "{orderId}", url.PathEscape(orderID))
}

// Confirm confirms form with paymentMethod and returns the URL the customer
// lands on, carrying payment_intent. Card and validation failures surface
// the processor message; anything else gets a generic one.
func Confirm(ctx context.Context, confirmer PaymentConfirmer, form PaymentForm, paymentMethod, returnURL string) (string, error) {
	if returnURL == "" {
		returnURL = form.ReturnURL
	}

	intent, err := confirmer.ConfirmPaymentIntent(ctx, form.PaymentIntentID, paymentMethod, returnURL)
	if err != nil {
		msg := entities.UnexpectedPaymentMessage
		var procErr *entities.ProcessorError
		if errors.As(err, &procErr) {
			msg = procErr.CustomerMessage()
		}
		return "", &ConfirmationError{Message: msg, Err: err}
	}

	redirect, err := RedirectURL(returnURL, intent.ID, intent.Status)
	if err != nil {
		return "", &ConfirmationError{Message: entities.UnexpectedPaymentMessage, Err: err}
	}
	return redirect, nil
}

// RedirectURL appends the query parameters the processor adds when it sends
// the customer back.
func RedirectURL(returnURL, paymentIntentID string, status entities.PaymentStatus) (string, error) {
	u, err := url.Parse(returnURL)
	if err != nil {
		return "", fmt.Errorf("parse return url: %w", err)
	}
	q := u.Query()
	q.Set("payment_intent", paymentIntentID)
	if status != "" {
		q.Set("redirect_status", string(status))
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// PaymentIntentFromRedirect reads payment_intent from a return URL.
func PaymentIntentFromRedirect(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse redirect url: %w", err)
	}
	id := u.Query().Get("payment_intent")
	if id == "" {
		return "", ErrMissingPaymentIntent
	}
	return id, nil
}
