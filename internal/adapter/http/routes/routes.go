package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"time"

	_ "photo_studio/docs"
	"photo_studio/internal/adapter/http/handlers"
	"photo_studio/internal/adapter/http/middleware"
	"photo_studio/internal/adapter/persistence/repository"
	"photo_studio/internal/config"
	"photo_studio/internal/infrastructure/database"
	"photo_studio/internal/infrastructure/payments"
	"photo_studio/internal/infrastructure/photoapi"
	"photo_studio/internal/usecase"
	"photo_studio/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	PathAPI         = "/api"
	shutdownTimeout = 15 * time.Second
)

// UseCases is everything the router serves.
type UseCases struct {
	Photo          usecase.IPhotoUseCase
	PaymentIntent  usecase.IPaymentIntentUseCase
	Reconciliation usecase.IOrderReconciliationUseCase
	Catalog        usecase.ICatalogUseCase
}

// Run serves the API until ctx is cancelled, then drains in-flight requests.
func Run(ctx context.Context, cfg *config.Config) error {
	ucs, err := BuildUseCases(ctx, cfg)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.App.Port),
		Handler:           NewRouter(cfg, ucs),
		ReadHeaderTimeout: 10 * time.Second,
		// Reconciliation may wait on two upstream calls.
		WriteTimeout: 2*cfg.App.UpstreamTimeout + 10*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", server.Addr).Msg("starting http server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to startup the application: %w", err)
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	log.Info().Msg("http server stopped")
	return nil
}

// NewRouter mounts every route on a fresh engine.
func NewRouter(cfg *config.Config, ucs UseCases) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, cfg)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group(PathAPI)
	addPingRoutes(api)
	addStudioRoutes(api, studioHandlers{
		photo:          handlers.NewPhotoHandler(ucs.Photo),
		paymentIntent:  handlers.NewPaymentIntentHandler(ucs.PaymentIntent),
		reconciliation: handlers.NewReconciliationHandler(ucs.Reconciliation),
		catalog:        handlers.NewCatalogHandler(ucs.Catalog),
	})
	return router
}

// BuildUseCases constructs the outbound clients once and shares them.
func BuildUseCases(ctx context.Context, cfg *config.Config) (UseCases, error) {
	photoAPI := photoapi.NewClient(photoapi.Config{
		Endpoint:  cfg.PhotoAPI.Endpoint,
		APIKey:    cfg.PhotoAPI.APIKey,
		APISecret: cfg.PhotoAPI.APISecret,
		Timeout:   cfg.App.UpstreamTimeout,
	})

	gateway, err := payments.NewGateway(cfg)
	if err != nil {
		return UseCases{}, fmt.Errorf("payment gateway: %w", err)
	}
	log.Info().
		Str("provider", cfg.Payment.Provider).
		Bool("mock", cfg.Payment.Mock).
		Msg("payment gateway configured")

	catalogRepo, err := NewCatalogRepository(ctx, cfg)
	if err != nil {
		return UseCases{}, fmt.Errorf("catalog: %w", err)
	}

	catalogUseCase := usecase.NewCatalogUseCase(catalogRepo, usecase.StudioSettings{
		Name:                cfg.Studio.Name,
		Description:         cfg.Studio.Description,
		StripePublicKey:     cfg.Payment.StripePublishableKey,
		PerUnitPriceInCents: cfg.Studio.PerUnitPriceInCents,
		DefaultSpecCodes:    cfg.Studio.DefaultSpecCodes,
	})

	return UseCases{
		Photo:          usecase.NewPhotoUseCase(photoAPI),
		PaymentIntent:  usecase.NewPaymentIntentUseCase(gateway, catalogUseCase, cfg.Payment.ReturnURLTemplate),
		Reconciliation: usecase.NewOrderReconciliationUseCase(gateway, photoAPI),
		Catalog:        catalogUseCase,
	}, nil
}

// NewCatalogRepository picks the catalog source: a YAML file, a DynamoDB
// table, or the built-in catalog, in that order.
func NewCatalogRepository(ctx context.Context, cfg *config.Config) (interfaces.ICatalogRepository, error) {
	switch {
	case cfg.Catalog.File != "":
		log.Info().Str("file", cfg.Catalog.File).Msg("catalog source: yaml")
		return repository.NewYAMLCatalogRepository(cfg.Catalog.File)
	case cfg.Catalog.DynamoDBTable != "":
		ddb, err := database.NewDynamoDBClient(ctx, database.DynamoDBOptions{
			Region:   cfg.Catalog.AWSRegion,
			Endpoint: cfg.Catalog.DynamoDBEndpoint,
		})
		if err != nil {
			return nil, err
		}
		log.Info().Str("table", cfg.Catalog.DynamoDBTable).Msg("catalog source: dynamodb")
		return repository.NewCatalogDynamoRepository(ddb, cfg.Catalog.DynamoDBTable), nil
	default:
		log.Info().Msg("catalog source: built-in")
		return repository.NewStaticCatalogRepository(repository.DefaultCatalog())
	}
}

func setMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(middleware.RequestID())
	router.Use(middleware.AccessLog())
	router.Use(middleware.Recovery())

	origins := cfg.App.CORSAllowedOrigins
	if len(origins) == 0 {
		return
	}
	corsCfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.HeaderRequestID},
		ExposeHeaders: []string{middleware.HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}
	if slices.Contains(origins, "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = origins
	}
	router.Use(cors.New(corsCfg))
}
