package response

import (
	"tiffin_tales/internal/domain/entities"
	"tiffin_tales/pkg"

	"github.com/shopspring/decimal"
)

type PlanResponse struct {
	Code                  string          `json:"code"`
	Name                  string          `json:"name"`
	MonthlyPrice          decimal.Decimal `json:"monthly_price"`
	MonthlyPriceFormatted string          `json:"monthly_price_formatted"`
	PerMealPrice          decimal.Decimal `json:"per_meal_price"`
	PerMealPriceFormatted string          `json:"per_meal_price_formatted"`
	Features              []string        `json:"features"`
	Popular               bool            `json:"popular"`
}

type MenuItemResponse struct {
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Price          decimal.Decimal `json:"price"`
	PriceFormatted string          `json:"price_formatted"`
	Tags           []string        `json:"tags"`
}

type CatalogResponse struct {
	Plans           []PlanResponse     `json:"plans"`
	WeeklyMenu      []entities.DayMenu `json:"weekly_menu"`
	HealthyBowls    []MenuItemResponse `json:"healthy_bowls"`
	WeekendSpecials []string           `json:"weekend_specials"`
}

func FromPlan(p entities.Plan, f *pkg.CurrencyFormatter) PlanResponse {
	return PlanResponse{
		Code:                  p.Code,
		Name:                  p.Name,
		MonthlyPrice:          p.MonthlyPrice,
		MonthlyPriceFormatted: f.Format(p.MonthlyPrice),
		PerMealPrice:          p.PerMealPrice,
		PerMealPriceFormatted: f.Format(p.PerMealPrice),
		Features:              p.Features,
		Popular:               p.Popular,
	}
}

func FromCatalog(c entities.Catalog, f *pkg.CurrencyFormatter) CatalogResponse {
	plans := make([]PlanResponse, len(c.Plans))
	for i, p := range c.Plans {
		plans[i] = FromPlan(p, f)
	}
	bowls := make([]MenuItemResponse, len(c.HealthyBowls))
	for i, b := range c.HealthyBowls {
		bowls[i] = MenuItemResponse{
			Name:           b.Name,
			Description:    b.Description,
			Price:          b.Price,
			PriceFormatted: f.Format(b.Price),
			Tags:           b.Tags,
		}
	}
	return CatalogResponse{
		Plans:           plans,
		WeeklyMenu:      c.WeeklyMenu,
		HealthyBowls:    bowls,
		WeekendSpecials: c.WeekendSpecials,
	}
}
