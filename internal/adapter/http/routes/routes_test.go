package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"photo_studio/internal/config"
	"photo_studio/internal/infrastructure/photoapi"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePhotoAPI struct {
	mu       sync.Mutex
	metadata []map[string]any
}

func (f *fakePhotoAPI) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(photoapi.PathGetSignedURL, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, "key", body["apiKey"])
		_ = json.NewEncoder(w).Encode(map[string]string{"signedUrl": "https://upload.example/once"})
	})
	mux.HandleFunc(photoapi.PathUpdateUserMetadata, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.mu.Lock()
		f.metadata = append(f.metadata, body)
		f.mu.Unlock()
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc(photoapi.PathGetNoWatermark, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"photoUuid":            body["photoUuid"],
			"specCode":             "us-passport",
			"idPhotoUrl":           "https://cdn.example/final.jpg",
			"idPhotoOriginalBgUrl": "https://cdn.example/bg.jpg",
		})
	})
	return mux
}

func testConfig(endpoint string) *config.Config {
	cfg := &config.Config{}
	cfg.App.Env = "test"
	cfg.App.UpstreamTimeout = 5 * time.Second
	cfg.PhotoAPI.Endpoint = endpoint
	cfg.PhotoAPI.APIKey = "key"
	cfg.PhotoAPI.APISecret = "secret"
	cfg.Payment.Provider = config.ProviderStripe
	cfg.Payment.Mock = true
	cfg.Payment.ReturnURLTemplate = "http://localhost:3000/order/{orderId}"
	cfg.Studio.Name = "Passport Photo Studio"
	cfg.Studio.PerUnitPriceInCents = 200
	return cfg
}

func newTestRouter(t *testing.T) (*gin.Engine, *fakePhotoAPI) {
	gin.SetMode(gin.TestMode)
	fake := &fakePhotoAPI{}
	srv := httptest.NewServer(fake.handler(t))
	t.Cleanup(srv.Close)

	cfg := testConfig(srv.URL)
	ucs, err := BuildUseCases(context.Background(), cfg)
	require.NoError(t, err)
	return NewRouter(cfg, ucs), fake
}

func do(r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return w, out
}

func TestRouter_Ping(t *testing.T) {
	r, _ := newTestRouter(t)

	w, body := do(r, http.MethodGet, "/api/ping", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", body["message"])
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRouter_Catalog(t *testing.T) {
	r, _ := newTestRouter(t)

	w, body := do(r, http.MethodGet, "/api/catalog", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Passport Photo Studio", body["studioName"])
	assert.Len(t, body["productPackages"], 3)

	w, body = do(r, http.MethodGet, "/api/catalog/quote?packageId=standard&additionalPhotoNumber=3", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1599), body["totalAmountInCents"])
	assert.Equal(t, float64(5), body["totalPhotoNumber"])
}

func TestRouter_OrderFlow(t *testing.T) {
	r, fake := newTestRouter(t)

	w, body := do(r, http.MethodPost, "/api/photo/get-signed-url", map[string]any{"specCode": "us-passport"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://upload.example/once", body["signedUrl"])

	w, body = do(r, http.MethodPost, "/api/stripe/create-payment-intent", map[string]any{
		"photoUuid":             "photo-1",
		"packageId":             "standard",
		"additionalPhotoNumber": 3,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(999+3*200), body["amount"])
	assert.Equal(t, "usd", body["currency"])
	assert.NotEmpty(t, body["clientSecret"])
	intentID, _ := body["paymentIntentId"].(string)
	require.NotEmpty(t, intentID)

	w, body = do(r, http.MethodPost, "/api/photo/verify-stripe-payment-get-photo", map[string]any{
		"photoUuid":       "photo-1",
		"paymentIntentId": intentID,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "us-passport", body["specCode"])
	assert.Equal(t, "https://cdn.example/final.jpg", body["finalImageUrl"])
	assert.Equal(t, "https://cdn.example/bg.jpg", body["originalBackgroundImageUrl"])
	assert.Equal(t, float64(1599), body["amountInCents"])
	assert.Equal(t, "succeeded", body["paymentStatus"])

	fake.mu.Lock()
	defer fake.mu.Unlock()
	require.Len(t, fake.metadata, 1)
	userMetadata, _ := fake.metadata[0]["userMetadata"].(map[string]any)
	assert.Equal(t, float64(5), userMetadata["printedPhotoNumber"])
	assert.Equal(t, intentID, userMetadata["paymentIntentId"])
}

func TestRouter_IdentifierMismatch(t *testing.T) {
	r, _ := newTestRouter(t)

	_, body := do(r, http.MethodPost, "/api/stripe/create-payment-intent", map[string]any{
		"amountInCent": 999, "currency": "usd", "photoUuid": "photo-1",
	})
	intentID, _ := body["paymentIntentId"].(string)

	w, body := do(r, http.MethodPost, "/api/photo/verify-stripe-payment-get-photo", map[string]any{
		"photoUuid":       "photo-2",
		"paymentIntentId": intentID,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "photoUuid does not match payment intent", body["error"])
	assert.NotContains(t, body, "finalImageUrl")
}

func TestRouter_CORS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig("http://127.0.0.1:0")
	cfg.App.CORSAllowedOrigins = []string{"http://localhost:3000"}
	r := NewRouter(cfg, UseCases{})

	req := httptest.NewRequest(http.MethodOptions, "/api/ping", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}
