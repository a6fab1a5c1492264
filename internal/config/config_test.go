package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("IDPHOTO_API_ENDPOINT", "https://idp.example.com/")
	t.Setenv("IDPHOTO_API_KEY", "key")
	t.Setenv("IDPHOTO_API_SECRET", "secret")
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("PAYMENT_PROVIDER", "")
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("PAYMENT_RETURN_URL_TEMPLATE", "")
	t.Setenv("UPSTREAM_TIMEOUT_SECONDS", "")
	t.Setenv("APP_PORT", "")
	t.Setenv("PER_ADDITIONAL_PHOTO_PRICE_IN_CENT", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	t.Setenv("DEFAULT_SPEC_CODES", "")
}

func TestLoad_Defaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "https://idp.example.com", cfg.PhotoAPI.Endpoint)
	assert.Equal(t, 60*time.Second, cfg.App.UpstreamTimeout)
	assert.Equal(t, ProviderStripe, cfg.Payment.Provider)
	assert.False(t, cfg.Payment.Mock)
	assert.Contains(t, cfg.Payment.ReturnURLTemplate, "{orderId}")
	assert.Equal(t, int64(0), cfg.Studio.PerUnitPriceInCents)
}

func TestLoad_Overrides(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("APP_PORT", "9090")
	t.Setenv("UPSTREAM_TIMEOUT_SECONDS", "5")
	t.Setenv("PER_ADDITIONAL_PHOTO_PRICE_IN_CENT", "300")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("DEFAULT_SPEC_CODES", "us-passport,us-visa")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.App.Port)
	assert.Equal(t, 5*time.Second, cfg.App.UpstreamTimeout)
	assert.Equal(t, int64(300), cfg.Studio.PerUnitPriceInCents)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.App.CORSAllowedOrigins)
	assert.Equal(t, []string{"us-passport", "us-visa"}, cfg.Studio.DefaultSpecCodes)
}

func TestLoad_Validation(t *testing.T) {
	t.Run("missing endpoint", func(t *testing.T) {
		setBaseEnv(t)
		t.Setenv("IDPHOTO_API_ENDPOINT", "")
		_, err := Load()
		assert.True(t, errors.Is(err, ErrMissingPhotoAPIEndpoint))
	})

	t.Run("missing stripe key", func(t *testing.T) {
		setBaseEnv(t)
		t.Setenv("STRIPE_SECRET_KEY", "")
		_, err := Load()
		assert.True(t, errors.Is(err, ErrMissingStripeSecretKey))
	})

	t.Run("mock mode does not need processor keys", func(t *testing.T) {
		setBaseEnv(t)
		t.Setenv("STRIPE_SECRET_KEY", "")
		t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
		t.Setenv("APP_ENV", "development")
		cfg, err := Load()
		require.NoError(t, err)
		assert.True(t, cfg.Payment.Mock)
	})

	t.Run("mock mode refused in production", func(t *testing.T) {
		setBaseEnv(t)
		t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
		_, err := Load()
		assert.True(t, errors.Is(err, ErrMockInProduction))

		t.Setenv("APP_ENV", "production")
		_, err = Load()
		assert.True(t, errors.Is(err, ErrMockInProduction))
	})

	t.Run("mercadopago needs its token", func(t *testing.T) {
		setBaseEnv(t)
		t.Setenv("PAYMENT_PROVIDER", "mercadopago")
		t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "")
		_, err := Load()
		assert.True(t, errors.Is(err, ErrMissingMercadoPagoToken))
	})

	t.Run("unknown provider", func(t *testing.T) {
		setBaseEnv(t)
		t.Setenv("PAYMENT_PROVIDER", "paypal")
		_, err := Load()
		assert.True(t, errors.Is(err, ErrUnknownPaymentProvider))
	})

	t.Run("return url without placeholder", func(t *testing.T) {
		setBaseEnv(t)
		t.Setenv("PAYMENT_RETURN_URL_TEMPLATE", "https://studio.example.com/done")
		_, err := Load()
		assert.True(t, errors.Is(err, ErrInvalidReturnURL))
	})

	t.Run("non-numeric port", func(t *testing.T) {
		setBaseEnv(t)
		t.Setenv("APP_PORT", "http")
		_, err := Load()
		assert.Error(t, err)
	})
}

func TestLoadFile(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("STUDIO_NAME", "")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("STUDIO_NAME=Bronx Photo\n"), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Bronx Photo", cfg.Studio.Name)
	os.Unsetenv("STUDIO_NAME")

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.env"))
	assert.NoError(t, err)
}
