package response

import (
	"time"

	"tiffin_tales/internal/domain/entities"
	"tiffin_tales/internal/usecase"
	"tiffin_tales/pkg"

	"github.com/shopspring/decimal"
)

type OrderRowResponse struct {
	ID             string              `json:"id"`
	People         *int64              `json:"people"`
	UnitPrice      decimal.NullDecimal `json:"unit_price"`
	Days           *int64              `json:"days"`
	Total          decimal.Decimal     `json:"total"`
	TotalFormatted string              `json:"total_formatted"`
}

type SessionResponse struct {
	SessionID  string             `json:"session_id"`
	Rows       []OrderRowResponse `json:"rows"`
	Estimate   EstimateResponse   `json:"estimate"`
	CanAddRow  bool               `json:"can_add_row"`
	AddRowHint string             `json:"add_row_hint,omitempty"`
	CanExport  bool               `json:"can_export"`
	ExpiresAt  time.Time          `json:"expires_at"`
}

type AddRowResponse struct {
	SessionResponse
	AddedRowID string `json:"added_row_id"`
}

// UpdateRowResponse reports whether the edit was kept. A rejected edit
// returns the unchanged session with Applied false.
type UpdateRowResponse struct {
	SessionResponse
	Applied bool `json:"applied"`
}

func FromOrderRow(r entities.OrderRow, f *pkg.CurrencyFormatter) OrderRowResponse {
	total := entities.ComputeRowTotal(r)
	return OrderRowResponse{
		ID:             r.ID,
		People:         r.People,
		UnitPrice:      r.UnitPrice,
		Days:           r.Days,
		Total:          total.Round(2),
		TotalFormatted: f.Format(total),
	}
}

func FromSessionSnapshot(snap usecase.SessionSnapshot, f *pkg.CurrencyFormatter) SessionResponse {
	s := snap.Session
	rows := make([]OrderRowResponse, len(s.Rows))
	for i, r := range s.Rows {
		rows[i] = FromOrderRow(r, f)
	}

	res := SessionResponse{
		SessionID: s.ID,
		Rows:      rows,
		Estimate:  FromEstimate(snap.Estimate, f),
		CanAddRow: s.CanAddRow(),
		CanExport: !snap.Estimate.GrandTotal.IsZero(),
		ExpiresAt: s.ExpiresAt,
	}
	if !res.CanAddRow {
		res.AddRowHint = entities.AddRowHint
	}
	return res
}
