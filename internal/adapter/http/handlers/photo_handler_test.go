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

func newPhotoRouter(t *testing.T) (*gin.Engine, *mocks.MockIPhotoUseCase) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIPhotoUseCase(ctrl)
	r := gin.New()
	r.POST("/api/photo/get-signed-url", NewPhotoHandler(uc).GetSignedURL)
	return r, uc
}

func TestPhotoHandler_GetSignedURL(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r, uc := newPhotoRouter(t)
		uc.EXPECT().GetSignedURL(gomock.Any(), "us-passport", []string{"png"}).
			Return(entities.SignedUpload{SignedURL: "https://upload/once"}, nil)

		w := performJSON(r, http.MethodPost, "/api/photo/get-signed-url", `{"specCode":" us-passport ","photoTypeList":["png"]}`)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if decodeBody(t, w)["signedUrl"] != "https://upload/once" {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("missing spec code with empty body", func(t *testing.T) {
		r, uc := newPhotoRouter(t)
		uc.EXPECT().GetSignedURL(gomock.Any(), "", gomock.Nil()).Return(entities.SignedUpload{}, usecase.ErrMissingSpecCode)

		w := performJSON(r, http.MethodPost, "/api/photo/get-signed-url", "")

		assertEnvelope(t, w, http.StatusBadRequest, "specCode is required")
	})

	t.Run("malformed body", func(t *testing.T) {
		r, _ := newPhotoRouter(t)

		w := performJSON(r, http.MethodPost, "/api/photo/get-signed-url", "{")

		assertEnvelope(t, w, http.StatusBadRequest, "Invalid request")
	})

	t.Run("upstream rejection keeps status", func(t *testing.T) {
		r, uc := newPhotoRouter(t)
		uc.EXPECT().GetSignedURL(gomock.Any(), "xx", gomock.Any()).
			Return(entities.SignedUpload{}, fmt.Errorf("get signed url: %w", &pkg.UpstreamError{StatusCode: 422, ResponseText: "unknown spec"}))

		w := performJSON(r, http.MethodPost, "/api/photo/get-signed-url", `{"specCode":"xx"}`)

		assertEnvelope(t, w, http.StatusUnprocessableEntity, "Client error: unknown spec")
	})

	t.Run("upstream timeout", func(t *testing.T) {
		r, uc := newPhotoRouter(t)
		uc.EXPECT().GetSignedURL(gomock.Any(), "us-visa", gomock.Any()).
			Return(entities.SignedUpload{}, &pkg.TimeoutError{After: 60 * time.Second})

		w := performJSON(r, http.MethodPost, "/api/photo/get-signed-url", `{"specCode":"us-visa"}`)

		body := assertEnvelope(t, w, http.StatusInternalServerError, "Request timed out after 60 seconds")
		if body["code"] != "UPSTREAM_TIMEOUT" {
			t.Fatalf("unexpected code %v", body["code"])
		}
	})

	t.Run("unexpected error is not leaked", func(t *testing.T) {
		r, uc := newPhotoRouter(t)
		uc.EXPECT().GetSignedURL(gomock.Any(), "us-visa", gomock.Any()).
			Return(entities.SignedUpload{}, errors.New("dial tcp 10.0.0.1: refused"))

		w := performJSON(r, http.MethodPost, "/api/photo/get-signed-url", `{"specCode":"us-visa"}`)

		assertEnvelope(t, w, http.StatusInternalServerError, "Internal server error")
	})
}
