package repository

import (
	"fmt"
	"os"

	"photo_studio/internal/domain/entities"

	"gopkg.in/yaml.v3"
)

// catalogFile is the CATALOG_FILE layout:
//
//	defaultSpecCodes: [us-passport, us-visa]
//	productPackages:
//	  - id: standard
//	    name: Standard
//	    priceCents: 999
//	    currency: usd
//	    printedPhotoNumber: 2
//	    isPickUp: true
//	businessLocations:
//	  - name: Downtown
//	    address: ...
//	    hours: {Mon-Fri: 9:00 AM - 7:00 PM}
type catalogFile struct {
	DefaultSpecCodes  []string                    `yaml:"defaultSpecCodes"`
	ProductPackages   []entities.ProductPackage   `yaml:"productPackages"`
	BusinessLocations []entities.BusinessLocation `yaml:"businessLocations"`
}

// NewYAMLCatalogRepository reads and validates a catalog file. Sections left
// out of the file fall back to DefaultCatalog.
func NewYAMLCatalogRepository(path string) (*StaticCatalogRepository, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	c, err := parseCatalogYAML(raw)
	if err != nil {
		return nil, fmt.Errorf("parse catalog file %s: %w", path, err)
	}
	return NewStaticCatalogRepository(c)
}

func parseCatalogYAML(raw []byte) (entities.Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return entities.Catalog{}, err
	}

	c := DefaultCatalog()
	if f.DefaultSpecCodes != nil {
		c.DefaultSpecCodes = f.DefaultSpecCodes
	}
	if f.ProductPackages != nil {
		c.ProductPackages = f.ProductPackages
	}
	if f.BusinessLocations != nil {
		c.BusinessLocations = f.BusinessLocations
	}
	return c, nil
}
