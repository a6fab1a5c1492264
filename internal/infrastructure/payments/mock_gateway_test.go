package payments

import (
	"context"
	"errors"
	"strings"
	"testing"

	"photo_studio/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockGateway_RoundTrip(t *testing.T) {
	g := NewMockGateway()
	created, err := g.CreatePaymentIntent(context.Background(), entities.PaymentIntentRequest{
		PhotoUUID: "p-1", Amount: 1899, Currency: "USD", PrintedPhotoNumber: 5, AmountInCents: 1899,
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(created.ID, mockIntentPrefix))
	assert.Equal(t, created.ID+mockSecretSuffix, created.ClientSecret)
	assert.Equal(t, entities.PaymentStatusRequiresPaymentMethod, created.Status)

	// A different instance can read the intent back.
	got, err := NewMockGateway().RetrievePaymentIntent(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.PaymentStatusSucceeded, got.Status)
	assert.Equal(t, int64(1899), got.Amount)
	assert.Equal(t, "usd", got.Currency)
	assert.Equal(t, "p-1", got.PhotoUUID())
	assert.Equal(t, 5, got.PrintedPhotoNumber())
	assert.Empty(t, got.ClientSecret)
}

func TestMockGateway_UnknownIntent(t *testing.T) {
	g := NewMockGateway()
	for _, id := range []string{"pi_123", "pi_mock_!!!", "pi_mock_bm90LWpzb24"} {
		_, err := g.RetrievePaymentIntent(context.Background(), id)
		assert.True(t, errors.Is(err, ErrUnknownMockIntent), "id %s", id)
	}
}

func TestMockGateway_Confirm(t *testing.T) {
	g := NewMockGateway()
	created, err := g.CreatePaymentIntent(context.Background(), entities.PaymentIntentRequest{PhotoUUID: "p-1", Amount: 999, Currency: "usd"})
	require.NoError(t, err)

	_, err = g.ConfirmPaymentIntent(context.Background(), created.ID, MockDeclinedPaymentMethod, "")
	var processorErr *entities.ProcessorError
	require.True(t, errors.As(err, &processorErr))
	assert.Equal(t, "Your card was declined.", processorErr.CustomerMessage())

	confirmed, err := g.ConfirmPaymentIntent(context.Background(), created.ID, "pm_card_visa", "")
	require.NoError(t, err)
	assert.Equal(t, entities.PaymentStatusSucceeded, confirmed.Status)
}
