package entities

import "github.com/shopspring/decimal"

// DefaultTaxRate is the combined GST + PST rate applied to every estimate.
var DefaultTaxRate = decimal.RequireFromString("0.12")

// Estimate is the aggregate derived from all order rows.
type Estimate struct {
	Subtotal   decimal.Decimal `json:"subtotal"`
	TaxRate    decimal.Decimal `json:"tax_rate"`
	Tax        decimal.Decimal `json:"tax"`
	GrandTotal decimal.Decimal `json:"grand_total"`
}

// ComputeRowTotal returns people × unit price × days with unset fields
// counted as zero. A negative operand yields zero.
func ComputeRowTotal(row OrderRow) decimal.Decimal {
	people := decimal.Zero
	if row.People != nil {
		people = decimal.NewFromInt(*row.People)
	}
	price := decimal.Zero
	if row.UnitPrice.Valid {
		price = row.UnitPrice.Decimal
	}
	days := decimal.Zero
	if row.Days != nil {
		days = decimal.NewFromInt(*row.Days)
	}

	if people.IsNegative() || price.IsNegative() || days.IsNegative() {
		return decimal.Zero
	}
	return people.Mul(price).Mul(days)
}

// ComputeEstimate sums the row totals and applies taxRate.
func ComputeEstimate(rows []OrderRow, taxRate decimal.Decimal) Estimate {
	subtotal := decimal.Zero
	for _, r := range rows {
		subtotal = subtotal.Add(ComputeRowTotal(r))
	}
	tax := subtotal.Mul(taxRate)
	return Estimate{
		Subtotal:   subtotal,
		TaxRate:    taxRate,
		Tax:        tax,
		GrandTotal: subtotal.Add(tax),
	}
}

// TaxPercentLabel renders the rate as a percentage without trailing zeros,
// e.g. 0.12 -> "12%", 0.075 -> "7.5%".
func TaxPercentLabel(taxRate decimal.Decimal) string {
	return taxRate.Mul(decimal.NewFromInt(100)).String() + "%"
}
