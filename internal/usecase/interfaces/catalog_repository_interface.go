package interfaces

import (
	"context"

	"photo_studio/internal/domain/entities"
)

// ICatalogRepository loads the static product catalog: packages, pick-up
// locations and suggested spec codes. Studio-level fields come from config.
type ICatalogRepository interface {
	Load(ctx context.Context) (entities.Catalog, error)
}
