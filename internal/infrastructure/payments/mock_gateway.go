package payments

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"photo_studio/internal/domain/entities"
	"photo_studio/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

const (
	mockIntentPrefix = "pi_mock_"
	mockSecretSuffix = "_secret_mock"

	// MockDeclinedPaymentMethod makes ConfirmPaymentIntent fail like a
	// declined card.
	MockDeclinedPaymentMethod = "pm_card_chargeDeclined"
)

var ErrUnknownMockIntent = errors.New("no such payment intent")

// MockGateway is the PAYMENT_GATEWAY_MOCK processor. It keeps no state: the
// intent id encodes amount, currency and metadata, so any instance can
// retrieve an intent another one created. Retrieved intents are always
// succeeded.
type MockGateway struct{}

var _ interfaces.IPaymentGateway = (*MockGateway)(nil)
var _ PaymentConfirmer = (*MockGateway)(nil)

func NewMockGateway() *MockGateway {
	log.Warn().Str("component", "payment.gateway").Str("provider", "mock").Msg("mock mode enabled; no real charges are made")
	return &MockGateway{}
}

type mockIntentState struct {
	Amount   int64             `json:"a"`
	Currency string            `json:"c"`
	Metadata map[string]string `json:"m"`
}

func (g *MockGateway) CreatePaymentIntent(_ context.Context, req entities.PaymentIntentRequest) (entities.PaymentIntent, error) {
	state := mockIntentState{Amount: req.Amount, Currency: strings.ToLower(req.Currency), Metadata: req.Metadata()}
	raw, err := json.Marshal(state)
	if err != nil {
		return entities.PaymentIntent{}, err
	}
	id := mockIntentPrefix + base64.RawURLEncoding.EncodeToString(raw)

	log.Info().Str("component", "payment.gateway").Str("provider", "mock").Str("photo_uuid", req.PhotoUUID).Msg("mock intent created")
	return entities.PaymentIntent{
		ID:           id,
		ClientSecret: id + mockSecretSuffix,
		Amount:       state.Amount,
		Currency:     state.Currency,
		Status:       entities.PaymentStatusRequiresPaymentMethod,
		Metadata:     state.Metadata,
	}, nil
}

func (g *MockGateway) RetrievePaymentIntent(_ context.Context, id string) (entities.PaymentIntent, error) {
	state, err := decodeMockIntent(id)
	if err != nil {
		return entities.PaymentIntent{}, err
	}
	return entities.PaymentIntent{
		ID:       id,
		Amount:   state.Amount,
		Currency: state.Currency,
		Status:   entities.PaymentStatusSucceeded,
		Metadata: state.Metadata,
	}, nil
}

func (g *MockGateway) ConfirmPaymentIntent(ctx context.Context, id, paymentMethod, _ string) (entities.PaymentIntent, error) {
	if paymentMethod == MockDeclinedPaymentMethod {
		return entities.PaymentIntent{}, &entities.ProcessorError{Type: entities.ProcessorErrorCard, Message: "Your card was declined."}
	}
	return g.RetrievePaymentIntent(ctx, id)
}

func decodeMockIntent(id string) (mockIntentState, error) {
	encoded, ok := strings.CutPrefix(id, mockIntentPrefix)
	if !ok {
		return mockIntentState{}, fmt.Errorf("%w: %s", ErrUnknownMockIntent, id)
	}
	raw, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return mockIntentState{}, fmt.Errorf("%w: %s", ErrUnknownMockIntent, id)
	}
	var state mockIntentState
	if err := json.Unmarshal(raw, &state); err != nil {
		return mockIntentState{}, fmt.Errorf("%w: %s", ErrUnknownMockIntent, id)
	}
	return state, nil
}
