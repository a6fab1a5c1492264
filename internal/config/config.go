package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderStripe      = "stripe"
	ProviderMercadoPago = "mercadopago"

	defaultPort            = 8080
	defaultUpstreamTimeout = 60 * time.Second
	defaultReturnURL       = "http://localhost:3000/order/{orderId}"
)

var (
	ErrMissingPhotoAPIEndpoint = errors.New("missing IDPHOTO_API_ENDPOINT")
	ErrMissingPhotoAPIKey      = errors.New("missing IDPHOTO_API_KEY or IDPHOTO_API_SECRET")
	ErrMissingStripeSecretKey  = errors.New("missing STRIPE_SECRET_KEY")
	ErrMissingMercadoPagoToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
	ErrUnknownPaymentProvider  = errors.New("unknown PAYMENT_PROVIDER")
	ErrInvalidReturnURL        = errors.New("PAYMENT_RETURN_URL_TEMPLATE must contain {orderId}")
	ErrMockInProduction        = errors.New("PAYMENT_GATEWAY_MOCK is not allowed when APP_ENV=production")
)

// Config is read once at startup and handed to every component that needs
// it. Nothing else reads the process environment.
type Config struct {
	App struct {
		Port               int
		Env                string
		LogLevel           string
		CORSAllowedOrigins []string
		// UpstreamTimeout bounds every call to the photo API and the processor.
		UpstreamTimeout time.Duration
	}

	PhotoAPI struct {
		Endpoint  string
		APIKey    string
		APISecret string
	}

	Payment struct {
		Provider               string
		Mock                   bool
		StripeSecretKey        string
		StripePublishableKey   string
		StripeAPIURL           string
		MercadoPagoAccessToken string
		ReturnURLTemplate      string
	}

	Studio struct {
		Name                string
		Description         string
		PerUnitPriceInCents int64
		DefaultSpecCodes    []string
	}

	Catalog struct {
		File             string
		DynamoDBTable    string
		AWSRegion        string
		DynamoDBEndpoint string
	}
}

// LoadFile loads an explicit .env file before reading the environment.
func LoadFile(path string) (*Config, error) {
	if path != "" {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
	}
	return Load()
}

// Load reads and validates the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	var err error

	if cfg.App.Port, err = intFromEnv("APP_PORT", defaultPort); err != nil {
		return nil, err
	}
	cfg.App.Env = getenvDefault("APP_ENV", "production")
	cfg.App.LogLevel = getenvDefault("LOG_LEVEL", "info")
	cfg.App.CORSAllowedOrigins = listFromEnv("CORS_ALLOWED_ORIGINS")

	cfg.PhotoAPI.Endpoint = strings.TrimRight(os.Getenv("IDPHOTO_API_ENDPOINT"), "/")
	cfg.PhotoAPI.APIKey = os.Getenv("IDPHOTO_API_KEY")
	cfg.PhotoAPI.APISecret = os.Getenv("IDPHOTO_API_SECRET")
	timeoutSeconds, err := intFromEnv("UPSTREAM_TIMEOUT_SECONDS", int(defaultUpstreamTimeout/time.Second))
	if err != nil {
		return nil, err
	}
	cfg.App.UpstreamTimeout = time.Duration(timeoutSeconds) * time.Second

	cfg.Payment.Provider = strings.ToLower(getenvDefault("PAYMENT_PROVIDER", ProviderStripe))
	cfg.Payment.Mock = isTruthy(os.Getenv("PAYMENT_GATEWAY_MOCK"))
	cfg.Payment.StripeSecretKey = os.Getenv("STRIPE_SECRET_KEY")
	cfg.Payment.StripePublishableKey = os.Getenv("STRIPE_PUBLISHABLE_KEY")
	cfg.Payment.StripeAPIURL = os.Getenv("STRIPE_API_URL")
	cfg.Payment.MercadoPagoAccessToken = os.Getenv("MERCADOPAGO_ACCESS_TOKEN")
	cfg.Payment.ReturnURLTemplate = getenvDefault("PAYMENT_RETURN_URL_TEMPLATE", defaultReturnURL)

	cfg.Studio.Name = getenvDefault("STUDIO_NAME", "Passport Photo Studio")
	cfg.Studio.Description = os.Getenv("STUDIO_DESCRIPTION")
	perUnit, err := intFromEnv("PER_ADDITIONAL_PHOTO_PRICE_IN_CENT", 0)
	if err != nil {
		return nil, err
	}
	cfg.Studio.PerUnitPriceInCents = int64(perUnit)
	cfg.Studio.DefaultSpecCodes = listFromEnv("DEFAULT_SPEC_CODES")

	cfg.Catalog.File = os.Getenv("CATALOG_FILE")
	cfg.Catalog.DynamoDBTable = os.Getenv("CATALOG_DYNAMODB_TABLE")
	cfg.Catalog.AWSRegion = getenvDefault("AWS_REGION", "us-east-1")
	cfg.Catalog.DynamoDBEndpoint = os.Getenv("DYNAMODB_ENDPOINT")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate enforces the options every deployment needs. Mock mode relaxes
// the processor credentials only and is refused when APP_ENV=production.
func (c *Config) Validate() error {
	if c.Payment.Mock && c.App.Env == "production" {
		return ErrMockInProduction
	}
	if c.PhotoAPI.Endpoint == "" {
		return ErrMissingPhotoAPIEndpoint
	}
	if c.PhotoAPI.APIKey == "" || c.PhotoAPI.APISecret == "" {
		return ErrMissingPhotoAPIKey
	}
	if c.App.UpstreamTimeout <= 0 {
		return fmt.Errorf("UPSTREAM_TIMEOUT_SECONDS must be > 0, got %s", c.App.UpstreamTimeout)
	}
	if c.Studio.PerUnitPriceInCents < 0 {
		return fmt.Errorf("PER_ADDITIONAL_PHOTO_PRICE_IN_CENT must be >= 0, got %d", c.Studio.PerUnitPriceInCents)
	}
	if !strings.Contains(c.Payment.ReturnURLTemplate, "{orderId}") {
		return ErrInvalidReturnURL
	}

	switch c.Payment.Provider {
	case ProviderStripe:
		if !c.Payment.Mock && c.Payment.StripeSecretKey == "" {
			return ErrMissingStripeSecretKey
		}
	case ProviderMercadoPago:
		if !c.Payment.Mock && c.Payment.MercadoPagoAccessToken == "" {
			return ErrMissingMercadoPagoToken
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownPaymentProvider, c.Payment.Provider)
	}
	return nil
}

// IsDevelopment enables human-friendly log output.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development" || c.App.Env == "dev" || c.App.Env == "local"
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func intFromEnv(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func listFromEnv(key string) []string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
