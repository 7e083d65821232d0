package interfaces

import (
	"context"

	"servicecalc/internal/domain/entities"
)

//go:generate mockgen -source=catalog_repository_interface.go -destination=mocks/catalog_repository_mock.go -package=mocks

// ICatalogRepository abstracts the content store holding the priced
// catalog. The calculation engine only ever reads from it; writes exist
// for the admin/import surface.
//
// Lookups return the zero value with a nil error when nothing matches.
type ICatalogRepository interface {
	GetService(ctx context.Context, id string) (entities.Service, error)
	ListServices(ctx context.Context, category string) ([]entities.Service, error)
	SaveService(ctx context.Context, s entities.Service) (entities.Service, error)
	DeleteService(ctx context.Context, id string) error

	GetUnits(ctx context.Context) (map[string]entities.Unit, error)
	SaveUnit(ctx context.Context, u entities.Unit) error
	DeleteUnit(ctx context.Context, key string) error

	GetCategories(ctx context.Context) (map[string]entities.Category, error)
	SaveCategory(ctx context.Context, c entities.Category) error
	DeleteCategory(ctx context.Context, key string) error
}
