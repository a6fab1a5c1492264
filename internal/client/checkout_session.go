package client

import (
	"context"
	"errors"
	"sync"

	request "photo_studio/internal/adapter/http/dto/request"
	response "photo_studio/internal/adapter/http/dto/response"

	"github.com/rs/zerolog/log"
)

// ErrIntentSuperseded is returned to a call whose intent was replaced by a
// newer selection before it completed.
var ErrIntentSuperseded = errors.New("payment intent superseded by a newer selection")

type CheckoutState string

const (
	StateNoIntent         CheckoutState = "no_intent"
	StateIntentCreated    CheckoutState = "intent_created"
	StateIntentSuperseded CheckoutState = "intent_superseded"
)

// IntentCreator opens payment intents. *StudioService implements it.
type IntentCreator interface {
	CreatePaymentIntent(ctx context.Context, payload request.CreatePaymentIntentRequest) (response.PaymentIntentResponse, error)
}

// PaymentForm is the mounted payment form: one intent for one selection.
type PaymentForm struct {
	OrderID               string
	PackageID             string
	AdditionalPhotoNumber int
	PaymentIntentID       string
	ClientSecret          string
	Amount                int64
	Currency              string
	ReturnURL             string
}

// CheckoutSession keeps the payment form in step with the customer's
// selection. Every change creates a new intent; there is no update. A new
// call cancels the one in flight and only the newest call can mount its
// form.
type CheckoutSession struct {
	creator IntentCreator

	mu         sync.Mutex
	orderID    string
	ready      bool
	generation uint64
	cancel     context.CancelFunc
	form       *PaymentForm
	superseded map[string]struct{}
}

func NewCheckoutSession(creator IntentCreator) *CheckoutSession {
	return &CheckoutSession{creator: creator, superseded: map[string]struct{}{}}
}

// SetOrder binds the session to the order returned by photo submission.
func (s *CheckoutSession) SetOrder(orderID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orderID = orderID
}

// SetProcessorReady records that the processor client finished loading.
func (s *CheckoutSession) SetProcessorReady(ready bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ready = ready
}

// Update creates an intent for the selection and mounts it. It returns
// changed=false without calling the API when no order is known yet, the
// processor is not ready, or the selection equals the mounted form.
func (s *CheckoutSession) Update(ctx context.Context, packageID string, additional int) (PaymentForm, bool, error) {
	s.mu.Lock()
	orderID := s.orderID
	switch {
	case orderID == "":
		s.mu.Unlock()
		log.Info().Str("component", "checkout.session").Msg("order id is empty, skipping payment intent")
		return PaymentForm{}, false, nil
	case !s.ready:
		s.mu.Unlock()
		log.Info().Str("component", "checkout.session").Str("order_id", orderID).Msg("payment processor not ready, skipping payment intent")
		return PaymentForm{}, false, nil
	case s.form != nil && s.form.PackageID == packageID && s.form.AdditionalPhotoNumber == additional:
		form := *s.form
		s.mu.Unlock()
		return form, false, nil
	}

	if s.cancel != nil {
		s.cancel()
	}
	s.generation++
	gen := s.generation
	callCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.mu.Unlock()
	defer cancel()

	out, err := s.creator.CreatePaymentIntent(callCtx, request.CreatePaymentIntentRequest{
		PhotoUUID:             orderID,
		PackageID:             packageID,
		AdditionalPhotoNumber: additional,
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		if err == nil {
			s.superseded[out.PaymentIntentID] = struct{}{}
		}
		return PaymentForm{}, false, ErrIntentSuperseded
	}
	s.cancel = nil
	if err != nil {
		return PaymentForm{}, false, err
	}

	if s.form != nil {
		s.superseded[s.form.PaymentIntentID] = struct{}{}
	}
	s.form = &PaymentForm{
		OrderID:               orderID,
		PackageID:             packageID,
		AdditionalPhotoNumber: additional,
		PaymentIntentID:       out.PaymentIntentID,
		ClientSecret:          out.ClientSecret,
		Amount:                out.Amount,
		Currency:              out.Currency,
		ReturnURL:             out.ReturnURL,
	}
	log.Info().
		Str("component", "checkout.session").
		Str("order_id", orderID).
		Str("package_id", packageID).
		Str("payment_intent_id", out.PaymentIntentID).
		Int64("amount", out.Amount).
		Msg("payment form mounted")
	return *s.form, true, nil
}

// Form returns the mounted form, if any.
func (s *CheckoutSession) Form() (PaymentForm, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.form == nil {
		return PaymentForm{}, false
	}
	return *s.form, true
}

// State reports where the session stands for a given intent id.
func (s *CheckoutSession) State(paymentIntentID string) CheckoutState {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.form != nil && s.form.PaymentIntentID == paymentIntentID {
		return StateIntentCreated
	}
	if _, ok := s.superseded[paymentIntentID]; ok {
		return StateIntentSuperseded
	}
	return StateNoIntent
}
