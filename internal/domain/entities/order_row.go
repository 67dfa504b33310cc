package entities

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RowField names an editable numeric field of an OrderRow.
type RowField string

const (
	RowFieldPeople    RowField = "people"
	RowFieldUnitPrice RowField = "unit_price"
	RowFieldDays      RowField = "days"
)

var ErrUnknownRowField = errors.New("unknown order row field")

// ParseRowField accepts the canonical names plus the camelCase and short
// aliases used by browser clients.
func ParseRowField(s string) (RowField, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "people":
		return RowFieldPeople, nil
	case "unit_price", "unitprice", "price":
		return RowFieldUnitPrice, nil
	case "days":
		return RowFieldDays, nil
	}
	return "", ErrUnknownRowField
}

// NewRowID generates row identifiers. Tests may replace it.
var NewRowID = uuid.NewString

// OrderRow is one line item of a budget estimate: people × unit price × days.
//
// A nil People/Days or an invalid UnitPrice means "unset": the visitor is
// still typing. Unset counts as zero in totals but is not the same as zero.
type OrderRow struct {
	ID        string              `json:"id"`
	People    *int64              `json:"people"`
	UnitPrice decimal.NullDecimal `json:"unit_price"`
	Days      *int64              `json:"days"`
}

func NewOrderRow(people int64, unitPrice decimal.Decimal) OrderRow {
	return OrderRow{
		ID:        NewRowID(),
		People:    &people,
		UnitPrice: decimal.NewNullDecimal(unitPrice),
	}
}

// HasValidDays reports whether Days is set and strictly positive.
func (r OrderRow) HasValidDays() bool {
	return r.Days != nil && *r.Days > 0
}

// Clone returns a copy that shares no pointers with r.
func (r OrderRow) Clone() OrderRow {
	out := r
	if r.People != nil {
		v := *r.People
		out.People = &v
	}
	if r.Days != nil {
		v := *r.Days
		out.Days = &v
	}
	return out
}

// withField parses raw and returns the row with field replaced.
// ok is false when raw is not a number, is negative, or is a fractional count.
// An empty (or blank) raw value clears the field.
func (r OrderRow) withField(field RowField, raw string) (OrderRow, bool) {
	raw = strings.TrimSpace(raw)
	out := r.Clone()

	if raw == "" {
		switch field {
		case RowFieldPeople:
			out.People = nil
		case RowFieldUnitPrice:
			out.UnitPrice = decimal.NullDecimal{}
		case RowFieldDays:
			out.Days = nil
		}
		return out, true
	}

	v, err := decimal.NewFromString(raw)
	if err != nil || v.IsNegative() {
		return r, false
	}

	switch field {
	case RowFieldUnitPrice:
		out.UnitPrice = decimal.NewNullDecimal(v)
	case RowFieldPeople, RowFieldDays:
		if !v.IsInteger() || v.GreaterThan(maxCount) {
			return r, false
		}
		n := v.IntPart()
		if field == RowFieldPeople {
			out.People = &n
		} else {
			out.Days = &n
		}
	default:
		return r, false
	}
	return out, true
}

var maxCount = decimal.NewFromInt(1_000_000)
