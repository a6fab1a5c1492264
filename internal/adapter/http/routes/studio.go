package routes

import (
	"photo_studio/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPhoto   = "/photo"
	PathStripe  = "/stripe"
	PathCatalog = "/catalog"
)

type studioHandlers struct {
	photo          *handlers.PhotoHandler
	paymentIntent  *handlers.PaymentIntentHandler
	reconciliation *handlers.ReconciliationHandler
	catalog        *handlers.CatalogHandler
}

func addStudioRoutes(rg *gin.RouterGroup, h studioHandlers) {
	photo := rg.Group(PathPhoto)
	{
		photo.POST("/get-signed-url", h.photo.GetSignedURL)
		photo.POST("/verify-stripe-payment-get-photo", h.reconciliation.VerifyPaymentGetPhoto)
	}

	stripe := rg.Group(PathStripe)
	{
		// Served for every provider; the path is kept for existing clients.
		stripe.POST("/create-payment-intent", h.paymentIntent.CreatePaymentIntent)
	}

	catalog := rg.Group(PathCatalog)
	{
		catalog.GET("", h.catalog.GetCatalog)
		catalog.GET("/quote", h.catalog.Quote)
	}
}
