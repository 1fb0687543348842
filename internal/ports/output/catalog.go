package output

import "admintools/internal/domain/entities"

// CatalogLoader loads the translation catalog wholesale.
type CatalogLoader interface {
	Load(path string) (*entities.Catalog, error)
}
