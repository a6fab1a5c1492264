package repository

import (
	"context"

	"photo_studio/internal/domain/entities"
	"photo_studio/internal/usecase/interfaces"
)

// DefaultCatalog is served when neither CATALOG_FILE nor
// CATALOG_DYNAMODB_TABLE is configured.
func DefaultCatalog() entities.Catalog {
	return entities.Catalog{
		DefaultSpecCodes: []string{"us-passport", "us-visa", "china-passport", "china-visa"},
		BusinessLocations: []entities.BusinessLocation{
			{
				Name:    "Downtown",
				Address: "2142A White Plains RdBronx, NY 10462",
				Phone:   "(718) 518-1887",
				Email:   "mandy@passportphotofast.com",
				Hours: map[string]string{
					"Mon-Fri": "9:00 AM - 7:00 PM",
					"Sat":     "10:00 AM - 6:00 PM",
					"Sun":     "12:00 PM - 5:00 PM",
				},
			},
		},
		ProductPackages: []entities.ProductPackage{
			{ID: "basic", Name: "Basic", PriceCents: 599, Currency: "usd", Description: []string{"Digital photo"}, PrintedPhotoNumber: 2},
			{ID: "standard", Name: "Standard", PriceCents: 999, Currency: "usd", Description: []string{"Digital photo"}, IsPickUp: true, PrintedPhotoNumber: 2},
			{ID: "premium", Name: "Premium", PriceCents: 1399, Currency: "usd", Description: []string{"Digital photo"}, PrintedPhotoNumber: 2},
		},
	}
}

// StaticCatalogRepository serves a catalog validated once at construction.
type StaticCatalogRepository struct {
	catalog entities.Catalog
}

var _ interfaces.ICatalogRepository = (*StaticCatalogRepository)(nil)

func NewStaticCatalogRepository(c entities.Catalog) (*StaticCatalogRepository, error) {
	if err := validateCatalog(c); err != nil {
		return nil, err
	}
	return &StaticCatalogRepository{catalog: cloneCatalog(c)}, nil
}

func (r *StaticCatalogRepository) Load(_ context.Context) (entities.Catalog, error) {
	return cloneCatalog(r.catalog), nil
}
