package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"photo_studio/internal/domain/entities"
	"photo_studio/internal/domain/pricing"
	"photo_studio/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

var (
	ErrMissingPackageID = errors.New("packageId is required")
	ErrPackageNotFound  = errors.New("package not found")
)

// StudioSettings are the studio-wide catalog fields held in config.
type StudioSettings struct {
	Name                string
	Description         string
	StripePublicKey     string
	PerUnitPriceInCents int64
	DefaultSpecCodes    []string
}

// ICatalogUseCase serves the product catalog and prices selections with the
// amount calculator.
type ICatalogUseCase interface {
	GetCatalog(ctx context.Context) (entities.Catalog, error)
	Quote(ctx context.Context, packageID string, additional int) (pricing.Quote, error)
}

type CatalogUseCase struct {
	repo     interfaces.ICatalogRepository
	settings StudioSettings
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.ICatalogRepository, settings StudioSettings) *CatalogUseCase {
	return &CatalogUseCase{repo: repo, settings: settings}
}

func (u *CatalogUseCase) GetCatalog(ctx context.Context) (entities.Catalog, error) {
	c, err := u.repo.Load(ctx)
	if err != nil {
		return entities.Catalog{}, fmt.Errorf("load catalog: %w", err)
	}

	c.StudioName = u.settings.Name
	c.StudioDescription = u.settings.Description
	c.StripePublicKey = u.settings.StripePublicKey
	c.PerAdditionalPhotoPriceInCent = u.settings.PerUnitPriceInCents
	if len(u.settings.DefaultSpecCodes) > 0 {
		c.DefaultSpecCodes = u.settings.DefaultSpecCodes
	}
	if c.ProductPackages == nil {
		c.ProductPackages = []entities.ProductPackage{}
	}
	if c.BusinessLocations == nil {
		c.BusinessLocations = []entities.BusinessLocation{}
	}
	return c, nil
}

func (u *CatalogUseCase) Quote(ctx context.Context, packageID string, additional int) (pricing.Quote, error) {
	packageID = strings.TrimSpace(packageID)
	if packageID == "" {
		return pricing.Quote{}, ErrMissingPackageID
	}

	c, err := u.repo.Load(ctx)
	if err != nil {
		return pricing.Quote{}, fmt.Errorf("load catalog: %w", err)
	}
	pkg, ok := c.Package(packageID)
	if !ok {
		return pricing.Quote{}, fmt.Errorf("%w: %s", ErrPackageNotFound, packageID)
	}

	q, err := pricing.Compute(pkg, additional, u.settings.PerUnitPriceInCents)
	if err != nil {
		return pricing.Quote{}, err
	}
	if q.Rounded {
		log.Warn().
			Str("component", "catalog.usecase").
			Str("package_id", pkg.ID).
			Str("currency", q.Currency).
			Int64("amount_in_cents", q.TotalAmountInMinorUnits).
			Int64("processor_amount", q.ProcessorAmount).
			Msg("processor amount rounded to whole currency units")
	}
	return q, nil
}
