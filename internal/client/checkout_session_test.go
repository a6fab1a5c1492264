package client

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"testing"

	request "photo_studio/internal/adapter/http/dto/request"
	response "photo_studio/internal/adapter/http/dto/response"
	"photo_studio/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCreator struct {
	mu         sync.Mutex
	calls      []request.CreatePaymentIntentRequest
	blockFirst bool
	started    chan struct{}
}

func (f *fakeCreator) CreatePaymentIntent(ctx context.Context, p request.CreatePaymentIntentRequest) (response.PaymentIntentResponse, error) {
	f.mu.Lock()
	n := len(f.calls)
	f.calls = append(f.calls, p)
	f.mu.Unlock()

	if n == 0 && f.blockFirst {
		close(f.started)
		<-ctx.Done()
		return response.PaymentIntentResponse{}, ctx.Err()
	}
	id := fmt.Sprintf("pi_%d", n+1)
	return response.PaymentIntentResponse{
		PaymentIntentID: id,
		ClientSecret:    id + "_secret",
		Amount:          999 + int64(p.AdditionalPhotoNumber)*200,
		Currency:        "usd",
	}, nil
}

func (f *fakeCreator) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func TestCheckoutSession_Guards(t *testing.T) {
	creator := &fakeCreator{}
	s := NewCheckoutSession(creator)

	_, changed, err := s.Update(context.Background(), "standard", 0)
	require.NoError(t, err)
	assert.False(t, changed)

	s.SetOrder("photo-1")
	_, changed, err = s.Update(context.Background(), "standard", 0)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Zero(t, creator.callCount())

	_, ok := s.Form()
	assert.False(t, ok)
}

func TestCheckoutSession_NewSelectionSupersedes(t *testing.T) {
	creator := &fakeCreator{}
	s := NewCheckoutSession(creator)
	s.SetOrder("photo-1")
	s.SetProcessorReady(true)

	first, changed, err := s.Update(context.Background(), "standard", 0)
	require.NoError(t, err)
	require.True(t, changed)
	assert.Equal(t, StateIntentCreated, s.State(first.PaymentIntentID))

	// same selection keeps the mounted form
	same, changed, err := s.Update(context.Background(), "standard", 0)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, first.PaymentIntentID, same.PaymentIntentID)
	assert.Equal(t, 1, creator.callCount())

	second, changed, err := s.Update(context.Background(), "standard", 2)
	require.NoError(t, err)
	require.True(t, changed)
	assert.Equal(t, int64(1399), second.Amount)
	assert.Equal(t, "photo-1", creator.calls[1].PhotoUUID)
	assert.Equal(t, StateIntentSuperseded, s.State(first.PaymentIntentID))
	assert.Equal(t, StateIntentCreated, s.State(second.PaymentIntentID))
	assert.Equal(t, StateNoIntent, s.State("pi_unknown"))
}

func TestCheckoutSession_CancelsInFlight(t *testing.T) {
	creator := &fakeCreator{blockFirst: true, started: make(chan struct{})}
	s := NewCheckoutSession(creator)
	s.SetOrder("photo-1")
	s.SetProcessorReady(true)

	errCh := make(chan error, 1)
	go func() {
		_, _, err := s.Update(context.Background(), "standard", 1)
		errCh <- err
	}()
	<-creator.started

	latest, changed, err := s.Update(context.Background(), "standard", 2)
	require.NoError(t, err)
	require.True(t, changed)

	assert.True(t, errors.Is(<-errCh, ErrIntentSuperseded))
	form, ok := s.Form()
	require.True(t, ok)
	assert.Equal(t, latest.PaymentIntentID, form.PaymentIntentID)
	assert.Equal(t, 2, form.AdditionalPhotoNumber)
}

type fakeConfirmer struct {
	err error
}

func (f fakeConfirmer) ConfirmPaymentIntent(_ context.Context, id, _, _ string) (entities.PaymentIntent, error) {
	if f.err != nil {
		return entities.PaymentIntent{}, f.err
	}
	return entities.PaymentIntent{ID: id, Status: entities.PaymentStatusSucceeded}, nil
}

func TestConfirm(t *testing.T) {
	form := PaymentForm{PaymentIntentID: "pi_1", OrderID: "photo-1"}
	returnURL := ReturnURL("https://studio.example/orders/{orderId}", "photo-1")

	redirect, err := Confirm(context.Background(), fakeConfirmer{}, form, "pm_card_visa", returnURL)
	require.NoError(t, err)
	u, err := url.Parse(redirect)
	require.NoError(t, err)
	assert.Equal(t, "/orders/photo-1", u.Path)
	assert.Equal(t, "pi_1", u.Query().Get("payment_intent"))
	assert.Equal(t, "succeeded", u.Query().Get("redirect_status"))

	_, err = Confirm(context.Background(), fakeConfirmer{err: &entities.ProcessorError{Type: entities.ProcessorErrorCard, Message: "Your card was declined."}}, form, "pm", returnURL)
	assert.EqualError(t, err, "Your card was declined.")

	_, err = Confirm(context.Background(), fakeConfirmer{err: errors.New("stripe: connection reset by peer")}, form, "pm", returnURL)
	assert.EqualError(t, err, entities.UnexpectedPaymentMessage)
	var confirmErr *ConfirmationError
	require.True(t, errors.As(err, &confirmErr))
	assert.Contains(t, confirmErr.Err.Error(), "connection reset")
}

func TestPaymentIntentFromRedirect(t *testing.T) {
	id, err := PaymentIntentFromRedirect("https://studio.example/orders/photo-1?payment_intent=pi_9&redirect_status=succeeded")
	require.NoError(t, err)
	assert.Equal(t, "pi_9", id)

	_, err = PaymentIntentFromRedirect("https://studio.example/orders/photo-1")
	assert.True(t, errors.Is(err, ErrMissingPaymentIntent))
}
