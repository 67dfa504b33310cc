package interfaces

import (
	"context"

	"tiffin_tales/internal/domain/entities"
)

type ICatalogSource interface {
	Catalog(ctx context.Context) (entities.Catalog, error)
}
