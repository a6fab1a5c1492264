package repository

import (
	"errors"
	"fmt"
	"strings"

	"photo_studio/internal/domain/entities"
)

var ErrDuplicatePackageID = errors.New("duplicate package id")

// validateCatalog rejects a catalog with an invalid or repeated package.
func validateCatalog(c entities.Catalog) error {
	seen := make(map[string]struct{}, len(c.ProductPackages))
	for _, p := range c.ProductPackages {
		if err := p.Validate(); err != nil {
			return err
		}
		if _, ok := seen[p.ID]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicatePackageID, p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	for _, l := range c.BusinessLocations {
		if strings.TrimSpace(l.Name) == "" {
			return errors.New("business location without a name")
		}
	}
	return nil
}

// cloneCatalog copies the slices so callers cannot mutate the source.
func cloneCatalog(c entities.Catalog) entities.Catalog {
	out := c
	out.DefaultSpecCodes = append([]string(nil), c.DefaultSpecCodes...)
	out.ProductPackages = make([]entities.ProductPackage, len(c.ProductPackages))
	for i, p := range c.ProductPackages {
		p.Description = append([]string(nil), p.Description...)
		out.ProductPackages[i] = p
	}
	out.BusinessLocations = make([]entities.BusinessLocation, len(c.BusinessLocations))
	for i, l := range c.BusinessLocations {
		hours := make(map[string]string, len(l.Hours))
		for k, v := range l.Hours {
			hours[k] = v
		}
		l.Hours = hours
		out.BusinessLocations[i] = l
	}
	return out
}
