package request

import (
	"errors"
	"strconv"
	"strings"
)

var (
	ErrInvalidRowValue = errors.New("invalid row value")
)

// AddRowRequest optionally seeds the new row's unit price from a plan.
type AddRowRequest struct {
	Plan string `json:"plan"`
}

func (r AddRowRequest) ResolvePlan() string {
	return strings.TrimSpace(r.Plan)
}

// UpdateRowRequest carries the raw text of an edited input. Value may be a
// JSON string, a number or null; null and "" clear the field.
type UpdateRowRequest struct {
	Field string `json:"field" binding:"required"`
	Value any    `json:"value"`
}

func (r UpdateRowRequest) ResolveField() string {
	return strings.TrimSpace(r.Field)
}

func (r UpdateRowRequest) ResolveValue() (string, error) {
	switch v := r.Value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	default:
		return "", ErrInvalidRowValue
	}
}
