package entities

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrRowNotFound   = errors.New("order row not found")
	ErrAddRowBlocked = errors.New("add row blocked: every row needs days greater than zero")
)

// AddRowHint is shown next to the disabled "add row" control.
const AddRowHint = "Please enter valid days (>0) to add another item"

// EstimatorSession owns the ordered row list of one visitor's budget
// estimate. The list is never empty.
//
// Sessions are transient: ExpiresAt slides forward on every change and stores
// drop the session once it has passed.
type EstimatorSession struct {
	ID        string     `json:"id"`
	Rows      []OrderRow `json:"rows"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	ExpiresAt time.Time  `json:"expires_at"`
}

// NewEstimatorSession starts a session with the default row: one person at
// defaultUnitPrice with days left unset.
func NewEstimatorSession(id string, defaultUnitPrice decimal.Decimal, now time.Time, ttl time.Duration) EstimatorSession {
	return EstimatorSession{
		ID:        id,
		Rows:      []OrderRow{NewOrderRow(1, defaultUnitPrice)},
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

// Touch records a change at now and extends the expiry by ttl.
func (s *EstimatorSession) Touch(now time.Time, ttl time.Duration) {
	s.UpdatedAt = now
	s.ExpiresAt = now.Add(ttl)
}

func (s EstimatorSession) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// CanAddRow is false while any row has days unset or not positive.
func (s EstimatorSession) CanAddRow() bool {
	for _, r := range s.Rows {
		if !r.HasValidDays() {
			return false
		}
	}
	return true
}

// AddRow appends {people: 1, unit price: unitPrice, days: unset}.
func (s *EstimatorSession) AddRow(unitPrice decimal.Decimal) (OrderRow, error) {
	if !s.CanAddRow() {
		return OrderRow{}, ErrAddRowBlocked
	}
	row := NewOrderRow(1, unitPrice)
	s.Rows = append(s.Rows, row)
	return row, nil
}

// UpdateRow sets field on the row identified by id from the raw input text.
// Invalid input is not an error: applied is false and nothing changes.
func (s *EstimatorSession) UpdateRow(id string, field RowField, raw string) (applied bool, err error) {
	switch field {
	case RowFieldPeople, RowFieldUnitPrice, RowFieldDays:
	default:
		return false, ErrUnknownRowField
	}

	idx := s.indexOf(id)
	if idx < 0 {
		return false, ErrRowNotFound
	}

	updated, ok := s.Rows[idx].withField(field, raw)
	if !ok {
		return false, nil
	}
	s.Rows[idx] = updated
	return true, nil
}

// RemoveRow deletes the row. Removing the last remaining row replaces it
// with a zeroed row under a new id instead.
func (s *EstimatorSession) RemoveRow(id string) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return ErrRowNotFound
	}

	if len(s.Rows) == 1 {
		s.Rows[0] = NewOrderRow(0, decimal.Zero)
		return nil
	}
	s.Rows = append(s.Rows[:idx], s.Rows[idx+1:]...)
	return nil
}

func (s EstimatorSession) Estimate(taxRate decimal.Decimal) Estimate {
	return ComputeEstimate(s.Rows, taxRate)
}

// Clone returns a deep copy safe to hand to another goroutine.
func (s EstimatorSession) Clone() EstimatorSession {
	out := s
	out.Rows = make([]OrderRow, len(s.Rows))
	for i, r := range s.Rows {
		out.Rows[i] = r.Clone()
	}
	return out
}

func (s EstimatorSession) indexOf(id string) int {
	for i, r := range s.Rows {
		if r.ID == id {
			return i
		}
	}
	return -1
}
