package catalog

import (
	"context"

	"tiffin_tales/internal/domain/entities"
	"tiffin_tales/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// StaticCatalog serves the published plans and menus. The data changes with
// a deploy, never at runtime.
type StaticCatalog struct {
	catalog entities.Catalog
}

var _ interfaces.ICatalogSource = (*StaticCatalog)(nil)

func NewStaticCatalog() *StaticCatalog {
	return &StaticCatalog{catalog: entities.Catalog{
		Plans:           plans,
		WeeklyMenu:      weeklyMenu,
		HealthyBowls:    healthyBowls,
		WeekendSpecials: weekendSpecials,
	}}
}

// Catalog returns a copy so callers cannot mutate the shared tables.
func (s *StaticCatalog) Catalog(_ context.Context) (entities.Catalog, error) {
	out := entities.Catalog{
		Plans:           make([]entities.Plan, len(s.catalog.Plans)),
		WeeklyMenu:      make([]entities.DayMenu, len(s.catalog.WeeklyMenu)),
		HealthyBowls:    make([]entities.MenuItem, len(s.catalog.HealthyBowls)),
		WeekendSpecials: append([]string(nil), s.catalog.WeekendSpecials...),
	}
	for i, p := range s.catalog.Plans {
		p.Features = append([]string(nil), p.Features...)
		out.Plans[i] = p
	}
	for i, d := range s.catalog.WeeklyMenu {
		d.Items = append([]string(nil), d.Items...)
		out.WeeklyMenu[i] = d
	}
	for i, b := range s.catalog.HealthyBowls {
		b.Tags = append([]string(nil), b.Tags...)
		out.HealthyBowls[i] = b
	}
	return out, nil
}

var plans = []entities.Plan{
	{
		Code:         "basic",
		Name:         "Basic Tiffin",
		MonthlyPrice: decimal.NewFromInt(160),
		PerMealPrice: decimal.NewFromInt(8),
		Features: []string{
			"20 Meals (Mon-Fri)",
			"1 Vegetarian Dish (Dal/Sabzi)",
			"4 Roti or 1 Rice Portion",
			"Small Salad/Raita",
			"Dessert (Once a week)",
			"Add Extra Curry: +$2",
			"Add Extra Roti: +$1",
		},
	},
	{
		Code:         "deluxe",
		Name:         "Deluxe Tiffin",
		MonthlyPrice: decimal.NewFromInt(260),
		PerMealPrice: decimal.NewFromInt(13),
		Features: []string{
			"20 Meals (Mon-Fri)",
			"2 Vegetarian Dishes (Special)",
			"4 Paratha/Roti or Rice Bowl",
			"Large Salad & Raita",
			"Daily Special Items",
			"Complimentary Shake (Promo)",
			"More Variety & Portions",
		},
		Popular: true,
	},
}

var weeklyMenu = []entities.DayMenu{
	{
		Day:   "Monday",
		Title: "Comfort Kickstart",
		Items: []string{"Aloo Gobhi Masala", "Dal Makhni", "Methi Paratha or Rotis (4)", "Rice Bowl", "Boondi Raita", "Fresh Garden Salad"},
	},
	{
		Day:   "Tuesday",
		Title: "Classic Punjabi Thali",
		Items: []string{"RawalPindi Chole Masala", "Bhindi Fry", "Puri or Jeera Rice", "Cucumber Raita", "Salad & Pickle", "Dessert Treat"},
	},
	{
		Day:   "Wednesday",
		Title: "Midweek Treat",
		Items: []string{"Matar Paneer", "Aloo Jeera", "Beetroot Paratha or Rotis (4)", "Rice Bowl", "Mint Raita", "Tangy Salad"},
	},
	{
		Day:   "Thursday",
		Title: "Desi Comfort Bowl",
		Items: []string{"Kadhi Pakora", "Mix Veg", "Rotis (4)", "Jeera Rice", "Onion Raita", "Salad"},
	},
	{
		Day:   "Friday",
		Title: "Special Feast Day",
		Items: []string{"Matar Mushroom", "Aloo/Paneer/Mix Veg Paratha (2)", "Matar Pulaw", "Raita", "Dry-Fruits Kheer"},
	},
}

var healthyBowls = []entities.MenuItem{
	{
		Name:        "Tofu Tikka Salad",
		Description: "Grilled tofu cubes served on a bed of mixed greens with mint yogurt dressing.",
		Price:       decimal.NewFromInt(10),
		Tags:        []string{"High Protein", "Gluten Free"},
	},
	{
		Name:        "Vegetable Power Salad",
		Description: "Cucumber, carrots, beetroot, and bell peppers with zesty lemon-pepper dressing.",
		Price:       decimal.NewFromInt(10),
		Tags:        []string{"Vegan", "Low Calorie"},
	},
	{
		Name:        "Quinoa Protein Bowl",
		Description: "Nutritious mix of quinoa, chickpeas, cucumber, and tomato with olive oil dressing.",
		Price:       decimal.NewFromInt(8),
		Tags:        []string{"Superfood"},
	},
	{
		Name:        "Chickpea (Chana) Salad",
		Description: "Tangy, high-protein blend featuring fresh herbs.",
		Price:       decimal.NewFromInt(10),
		Tags:        []string{"High Protein"},
	},
}

var weekendSpecials = []string{
	"Veg Manchurian Rice",
	"Veg Noodles",
	"White Sauce Pasta",
	"Gol Gappe (Pani Puri)",
	"Dahi Bade",
	"Papdi Chaat",
	"Vada Pav",
}
