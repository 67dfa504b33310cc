package usecase

import (
	"context"
	"fmt"
	"strings"

	"tiffin_tales/internal/domain/entities"
	"tiffin_tales/internal/usecase/interfaces"
)

type ICatalogUseCase interface {
	GetCatalog(ctx context.Context) (entities.Catalog, error)
	GetPlan(ctx context.Context, code string) (entities.Plan, error)
}

type CatalogUseCase struct {
	source interfaces.ICatalogSource
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(source interfaces.ICatalogSource) *CatalogUseCase {
	return &CatalogUseCase{source: source}
}

func (u *CatalogUseCase) GetCatalog(ctx context.Context) (entities.Catalog, error) {
	return u.source.Catalog(ctx)
}

func (u *CatalogUseCase) GetPlan(ctx context.Context, code string) (entities.Plan, error) {
	return lookupPlan(ctx, u.source, code)
}

// lookupPlan finds a plan by its code, ignoring case.
func lookupPlan(ctx context.Context, source interfaces.ICatalogSource, code string) (entities.Plan, error) {
	code = strings.TrimSpace(code)
	if code == "" || source == nil {
		return entities.Plan{}, ErrPlanNotFound
	}
	c, err := source.Catalog(ctx)
	if err != nil {
		return entities.Plan{}, fmt.Errorf("load catalog: %w", err)
	}
	for _, p := range c.Plans {
		if strings.EqualFold(p.Code, code) {
			return p, nil
		}
	}
	return entities.Plan{}, ErrPlanNotFound
}
