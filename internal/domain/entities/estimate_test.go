package entities

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func row(people *int64, price string, days *int64) OrderRow {
	r := OrderRow{ID: "r", People: people, Days: days}
	if price != "" {
		r.UnitPrice = decimal.NewNullDecimal(dec(price))
	}
	return r
}

func n(v int64) *int64 { return &v }

func TestComputeRowTotal(t *testing.T) {
	tests := []struct {
		name   string
		row    OrderRow
		expect string
	}{
		{"all set", row(n(1), "8", n(20)), "160"},
		{"decimal price", row(n(3), "9.99", n(2)), "59.94"},
		{"days unset", row(n(1), "8", nil), "0"},
		{"people unset", row(nil, "8", n(20)), "0"},
		{"price unset", row(n(2), "", n(5)), "0"},
		{"all unset", row(nil, "", nil), "0"},
		{"zero people", row(n(0), "8", n(20)), "0"},
		{"negative people", row(n(-1), "8", n(20)), "0"},
		{"negative price", row(n(1), "-8", n(20)), "0"},
		{"negative days", row(n(1), "8", n(-3)), "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeRowTotal(tt.row)
			assert.True(t, got.Equal(dec(tt.expect)), "got %s want %s", got, tt.expect)
			assert.False(t, got.IsNegative())
		})
	}
}

func TestComputeEstimate(t *testing.T) {
	t.Run("single row with days", func(t *testing.T) {
		est := ComputeEstimate([]OrderRow{row(n(1), "8", n(20))}, DefaultTaxRate)
		assert.True(t, est.Subtotal.Equal(dec("160")))
		assert.True(t, est.Tax.Equal(dec("19.2")))
		assert.True(t, est.GrandTotal.Equal(dec("179.2")))
	})

	t.Run("two rows", func(t *testing.T) {
		est := ComputeEstimate([]OrderRow{
			row(n(1), "8", n(20)),
			row(n(2), "10", n(5)),
		}, DefaultTaxRate)
		assert.True(t, est.Subtotal.Equal(dec("260")))
		assert.True(t, est.Tax.Equal(dec("31.2")))
		assert.True(t, est.GrandTotal.Equal(dec("291.2")))
	})

	t.Run("empty and nil", func(t *testing.T) {
		for _, rows := range [][]OrderRow{nil, {}} {
			est := ComputeEstimate(rows, DefaultTaxRate)
			assert.True(t, est.Subtotal.IsZero())
			assert.True(t, est.Tax.IsZero())
			assert.True(t, est.GrandTotal.IsZero())
		}
	})

	t.Run("subtotal equals sum of row totals", func(t *testing.T) {
		rows := []OrderRow{
			row(n(3), "12.75", n(7)),
			row(nil, "10", n(5)),
			row(n(4), "0.33", n(30)),
		}
		sum := decimal.Zero
		for _, r := range rows {
			sum = sum.Add(ComputeRowTotal(r))
		}
		est := ComputeEstimate(rows, dec("0.05"))
		assert.True(t, est.Subtotal.Equal(sum))
		assert.True(t, est.Tax.Equal(sum.Mul(dec("0.05"))))
		assert.True(t, est.GrandTotal.Equal(est.Subtotal.Add(est.Tax)))
		assert.True(t, est.TaxRate.Equal(dec("0.05")))
	})
}

func TestTaxPercentLabel(t *testing.T) {
	assert.Equal(t, "12%", TaxPercentLabel(DefaultTaxRate))
	assert.Equal(t, "7.5%", TaxPercentLabel(dec("0.075")))
	assert.Equal(t, "0%", TaxPercentLabel(decimal.Zero))
}
