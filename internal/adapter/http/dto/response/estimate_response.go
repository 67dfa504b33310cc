package response

import (
	"fmt"

	"tiffin_tales/internal/domain/entities"
	"tiffin_tales/pkg"

	"github.com/shopspring/decimal"
)

type EstimateResponse struct {
	Subtotal            decimal.Decimal `json:"subtotal"`
	TaxRate             decimal.Decimal `json:"tax_rate"`
	Tax                 decimal.Decimal `json:"tax"`
	GrandTotal          decimal.Decimal `json:"grand_total"`
	TaxLabel            string          `json:"tax_label"`
	SubtotalFormatted   string          `json:"subtotal_formatted"`
	TaxFormatted        string          `json:"tax_formatted"`
	GrandTotalFormatted string          `json:"grand_total_formatted"`
}

// FromEstimate exposes exact amounts rounded to cents next to their display form.
func FromEstimate(e entities.Estimate, f *pkg.CurrencyFormatter) EstimateResponse {
	return EstimateResponse{
		Subtotal:            e.Subtotal.Round(2),
		TaxRate:             e.TaxRate,
		Tax:                 e.Tax.Round(2),
		GrandTotal:          e.GrandTotal.Round(2),
		TaxLabel:            fmt.Sprintf("Tax (%s)", entities.TaxPercentLabel(e.TaxRate)),
		SubtotalFormatted:   f.Format(e.Subtotal),
		TaxFormatted:        f.Format(e.Tax),
		GrandTotalFormatted: f.Format(e.GrandTotal),
	}
}
