package request

import (
	"errors"

	"tiffin_tales/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidEstimateValue = errors.New("invalid estimate value")
)

// EstimateRowRequest is one row of a stateless estimate. Omitted or null
// fields are unset.
type EstimateRowRequest struct {
	People    *int64           `json:"people"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
	Days      *int64           `json:"days"`
}

// EstimateRequest computes totals for rows kept by the client.
type EstimateRequest struct {
	Rows []EstimateRowRequest `json:"rows" binding:"required"`
}

// ResolveRows validates the rows and converts them to order rows.
func (r EstimateRequest) ResolveRows() ([]entities.OrderRow, error) {
	rows := make([]entities.OrderRow, 0, len(r.Rows))
	for _, in := range r.Rows {
		if (in.People != nil && *in.People < 0) ||
			(in.Days != nil && *in.Days < 0) ||
			(in.UnitPrice != nil && in.UnitPrice.IsNegative()) {
			return nil, ErrInvalidEstimateValue
		}
		row := entities.OrderRow{People: in.People, Days: in.Days}
		if in.UnitPrice != nil {
			row.UnitPrice = decimal.NewNullDecimal(*in.UnitPrice)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
