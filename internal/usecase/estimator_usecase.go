package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"tiffin_tales/internal/domain/entities"
	"tiffin_tales/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

var (
	ErrInvalidSessionID = errors.New("invalid session id")
	ErrSessionNotFound  = errors.New("estimator session not found")
	ErrInvalidRowID     = errors.New("invalid row id")
	ErrPlanNotFound     = errors.New("plan not found")

	ErrRowNotFound     = entities.ErrRowNotFound
	ErrAddRowBlocked   = entities.ErrAddRowBlocked
	ErrUnknownRowField = entities.ErrUnknownRowField
)

// EstimatorSettings are the business constants of the estimator.
type EstimatorSettings struct {
	TaxRate          decimal.Decimal
	DefaultUnitPrice decimal.Decimal
	SessionTTL       time.Duration
}

// SessionSnapshot is a session together with its derived estimate.
type SessionSnapshot struct {
	Session  entities.EstimatorSession
	Estimate entities.Estimate
}

// IEstimatorUseCase exposes the budget estimator operations.
//
// Every mutation loads the session, applies the change and saves it back
// while holding that session's lock.
type IEstimatorUseCase interface {
	StartSession(ctx context.Context) (SessionSnapshot, error)
	GetSession(ctx context.Context, sessionID string) (SessionSnapshot, error)
	AddRow(ctx context.Context, sessionID, planCode string) (SessionSnapshot, entities.OrderRow, error)
	UpdateRow(ctx context.Context, sessionID, rowID, field, value string) (SessionSnapshot, bool, error)
	RemoveRow(ctx context.Context, sessionID, rowID string) (SessionSnapshot, error)
	CalculateEstimate(ctx context.Context, rows []entities.OrderRow) entities.Estimate
}

type EstimatorUseCase struct {
	repo     interfaces.ISessionRepository
	catalog  interfaces.ICatalogSource
	settings EstimatorSettings
	locks    *sessionLocks
	now      func() time.Time
}

var _ IEstimatorUseCase = (*EstimatorUseCase)(nil)

func NewEstimatorUseCase(repo interfaces.ISessionRepository, catalog interfaces.ICatalogSource, settings EstimatorSettings) *EstimatorUseCase {
	return &EstimatorUseCase{
		repo:     repo,
		catalog:  catalog,
		settings: settings,
		locks:    newSessionLocks(),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *EstimatorUseCase) StartSession(ctx context.Context) (SessionSnapshot, error) {
	s := entities.NewEstimatorSession(uuid.NewString(), u.settings.DefaultUnitPrice, u.now(), u.settings.SessionTTL)
	if err := u.repo.Save(ctx, s); err != nil {
		log.Errorf("[estimator][usecase] failed saving new session session_id=%s err=%v", s.ID, err)
		return SessionSnapshot{}, err
	}
	log.Debugf("[estimator][usecase] session started session_id=%s", s.ID)
	return u.snapshot(s), nil
}

func (u *EstimatorUseCase) GetSession(ctx context.Context, sessionID string) (SessionSnapshot, error) {
	s, err := u.load(ctx, sessionID)
	if err != nil {
		return SessionSnapshot{}, err
	}
	return u.snapshot(s), nil
}

// AddRow appends a row priced from planCode, or at zero when planCode is empty.
func (u *EstimatorUseCase) AddRow(ctx context.Context, sessionID, planCode string) (SessionSnapshot, entities.OrderRow, error) {
	price := decimal.Zero
	if code := strings.TrimSpace(planCode); code != "" {
		plan, err := lookupPlan(ctx, u.catalog, code)
		if err != nil {
			return SessionSnapshot{}, entities.OrderRow{}, err
		}
		price = plan.PerMealPrice
	}

	var added entities.OrderRow
	snap, err := u.mutate(ctx, sessionID, func(s *entities.EstimatorSession) (bool, error) {
		row, err := s.AddRow(price)
		if err != nil {
			return false, err
		}
		added = row
		return true, nil
	})
	if err != nil {
		return SessionSnapshot{}, entities.OrderRow{}, err
	}
	return snap, added, nil
}

// UpdateRow applies a raw field edit. Input that does not parse as a
// non-negative number is dropped: applied is false and the session is
// returned unchanged.
func (u *EstimatorUseCase) UpdateRow(ctx context.Context, sessionID, rowID, field, value string) (SessionSnapshot, bool, error) {
	rowField, err := entities.ParseRowField(field)
	if err != nil {
		return SessionSnapshot{}, false, err
	}
	rowID = strings.TrimSpace(rowID)
	if rowID == "" {
		return SessionSnapshot{}, false, ErrInvalidRowID
	}

	var applied bool
	snap, err := u.mutate(ctx, sessionID, func(s *entities.EstimatorSession) (bool, error) {
		ok, err := s.UpdateRow(rowID, rowField, value)
		if err != nil {
			return false, err
		}
		applied = ok
		return ok, nil
	})
	if err != nil {
		return SessionSnapshot{}, false, err
	}
	if !applied {
		log.Debugf("[estimator][usecase] edit ignored session_id=%s row_id=%s field=%s", sessionID, rowID, rowField)
	}
	return snap, applied, nil
}

func (u *EstimatorUseCase) RemoveRow(ctx context.Context, sessionID, rowID string) (SessionSnapshot, error) {
	rowID = strings.TrimSpace(rowID)
	if rowID == "" {
		return SessionSnapshot{}, ErrInvalidRowID
	}
	return u.mutate(ctx, sessionID, func(s *entities.EstimatorSession) (bool, error) {
		return true, s.RemoveRow(rowID)
	})
}

// CalculateEstimate is the stateless form used by clients that keep the rows.
func (u *EstimatorUseCase) CalculateEstimate(_ context.Context, rows []entities.OrderRow) entities.Estimate {
	return entities.ComputeEstimate(rows, u.settings.TaxRate)
}

// mutate runs fn on the stored session under its lock. The session is saved
// only when fn reports a change.
func (u *EstimatorUseCase) mutate(ctx context.Context, sessionID string, fn func(s *entities.EstimatorSession) (bool, error)) (SessionSnapshot, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return SessionSnapshot{}, ErrInvalidSessionID
	}

	unlock := u.locks.lock(sessionID)
	defer unlock()

	s, err := u.load(ctx, sessionID)
	if err != nil {
		return SessionSnapshot{}, err
	}

	changed, err := fn(&s)
	if err != nil {
		return SessionSnapshot{}, err
	}
	if changed {
		s.Touch(u.now(), u.settings.SessionTTL)
		if err := u.repo.Save(ctx, s); err != nil {
			log.Errorf("[estimator][usecase] failed saving session session_id=%s err=%v", sessionID, err)
			return SessionSnapshot{}, err
		}
	}
	return u.snapshot(s), nil
}

func (u *EstimatorUseCase) load(ctx context.Context, sessionID string) (entities.EstimatorSession, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.EstimatorSession{}, ErrInvalidSessionID
	}

	s, err := u.repo.Get(ctx, sessionID)
	if err != nil {
		log.Errorf("[estimator][usecase] failed loading session session_id=%s err=%v", sessionID, err)
		return entities.EstimatorSession{}, err
	}
	if s.ID == "" || s.Expired(u.now()) {
		return entities.EstimatorSession{}, ErrSessionNotFound
	}
	return s, nil
}

func (u *EstimatorUseCase) snapshot(s entities.EstimatorSession) SessionSnapshot {
	return SessionSnapshot{Session: s, Estimate: s.Estimate(u.settings.TaxRate)}
}
