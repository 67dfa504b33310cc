package entities

import "github.com/shopspring/decimal"

// Plan is a monthly tiffin subscription.
type Plan struct {
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	MonthlyPrice decimal.Decimal `json:"monthly_price"`
	PerMealPrice decimal.Decimal `json:"per_meal_price"`
	Features     []string        `json:"features"`
	Popular      bool            `json:"popular"`
}

type DayMenu struct {
	Day   string   `json:"day"`
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// MenuItem is an à-la-carte dish such as a healthy bowl.
type MenuItem struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Tags        []string        `json:"tags"`
}

type Catalog struct {
	Plans           []Plan     `json:"plans"`
	WeeklyMenu      []DayMenu  `json:"weekly_menu"`
	HealthyBowls    []MenuItem `json:"healthy_bowls"`
	WeekendSpecials []string   `json:"weekend_specials"`
}
