package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"tiffin_tales/internal/domain/entities"
	"tiffin_tales/internal/usecase/interfaces"
	"tiffin_tales/pkg"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

var (
	ErrUnsupportedQuoteFormat = errors.New("unsupported quote format")
	ErrExportInProgress       = errors.New("quote export already in progress")
	ErrNothingToExport        = errors.New("nothing to export: grand total is zero")
	ErrQuoteGenerationFailed  = errors.New("quote generation failed")
)

// QuoteGenerationFailedNotice is shown to the visitor when rendering fails.
const QuoteGenerationFailedNotice = "Could not generate PDF. Please try again."

const (
	QuoteTitle      = "Budget Estimate"
	quoteDateLayout = "2006-01-02"
)

var QuoteColumns = []string{"#", "People", "Price/Tiffin", "Days", "Total"}

type QuoteSettings struct {
	Business entities.BusinessIdentity
	TaxRate  decimal.Decimal
	// Filename is the download name without extension.
	Filename string
}

type IQuoteUseCase interface {
	ExportQuote(ctx context.Context, sessionID string, format entities.QuoteFormat) (entities.QuoteFile, error)
}

type QuoteUseCase struct {
	repo      interfaces.ISessionRepository
	renderers map[entities.QuoteFormat]interfaces.IQuoteRenderer
	formatter *pkg.CurrencyFormatter
	guard     *ExportGuard
	settings  QuoteSettings
	now       func() time.Time
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(
	repo interfaces.ISessionRepository,
	formatter *pkg.CurrencyFormatter,
	settings QuoteSettings,
	renderers ...interfaces.IQuoteRenderer,
) *QuoteUseCase {
	byFormat := make(map[entities.QuoteFormat]interfaces.IQuoteRenderer, len(renderers))
	for _, r := range renderers {
		byFormat[r.Format()] = r
	}
	return &QuoteUseCase{
		repo:      repo,
		renderers: byFormat,
		formatter: formatter,
		guard:     NewExportGuard(),
		settings:  settings,
		now:       time.Now,
	}
}

// ExportQuote renders the session's current rows. At most one export per
// session runs at a time; a concurrent call fails with ErrExportInProgress.
// A failure while building or rendering the document, panics included, is
// reported as ErrQuoteGenerationFailed and leaves the session untouched.
func (u *QuoteUseCase) ExportQuote(ctx context.Context, sessionID string, format entities.QuoteFormat) (entities.QuoteFile, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.QuoteFile{}, ErrInvalidSessionID
	}
	if format == "" {
		format = entities.QuoteFormatPDF
	}
	renderer, ok := u.renderers[format]
	if !ok {
		return entities.QuoteFile{}, fmt.Errorf("%w: %s", ErrUnsupportedQuoteFormat, format)
	}

	if !u.guard.TryAcquire(sessionID) {
		log.Warnf("[quote][usecase] export already running session_id=%s", sessionID)
		return entities.QuoteFile{}, ErrExportInProgress
	}
	defer u.guard.Release(sessionID)

	s, err := u.repo.Get(ctx, sessionID)
	if err != nil {
		log.Errorf("[quote][usecase] failed loading session session_id=%s err=%v", sessionID, err)
		return entities.QuoteFile{}, err
	}
	if s.ID == "" || s.Expired(u.now()) {
		return entities.QuoteFile{}, ErrSessionNotFound
	}

	estimate := s.Estimate(u.settings.TaxRate)
	if estimate.GrandTotal.IsZero() {
		log.Infof("[quote][usecase] nothing to export session_id=%s", sessionID)
		return entities.QuoteFile{}, ErrNothingToExport
	}

	content, err := u.render(renderer, s, estimate)
	if err != nil {
		log.Errorf("[quote][usecase] generation failed session_id=%s format=%s err=%v", sessionID, format, err)
		return entities.QuoteFile{}, fmt.Errorf("%w: %v", ErrQuoteGenerationFailed, err)
	}

	log.Infof("[quote][usecase] exported session_id=%s format=%s bytes=%d", sessionID, format, len(content))
	return entities.QuoteFile{
		Filename:    u.settings.Filename + "." + string(format),
		ContentType: renderer.ContentType(),
		Content:     content,
	}, nil
}

func (u *QuoteUseCase) render(renderer interfaces.IQuoteRenderer, s entities.EstimatorSession, estimate entities.Estimate) (content []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			content = nil
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	doc := BuildQuoteDocument(s.Clone(), estimate, u.settings.Business, u.formatter, u.now())
	return renderer.Render(doc)
}

// BuildQuoteDocument lays out the session rows and totals for rendering.
// Unset row fields print as 0.
func BuildQuoteDocument(
	s entities.EstimatorSession,
	estimate entities.Estimate,
	business entities.BusinessIdentity,
	formatter *pkg.CurrencyFormatter,
	generatedAt time.Time,
) entities.QuoteDocument {
	lines := make([]entities.QuoteLine, len(s.Rows))
	for i, r := range s.Rows {
		price := decimal.Zero
		if r.UnitPrice.Valid {
			price = r.UnitPrice.Decimal
		}
		lines[i] = entities.QuoteLine{
			Index:     strconv.Itoa(i + 1),
			People:    countText(r.People),
			UnitPrice: formatter.Format(price),
			Days:      countText(r.Days),
			Total:     formatter.Format(entities.ComputeRowTotal(r)),
		}
	}

	return entities.QuoteDocument{
		Business: business,
		Title:    QuoteTitle,
		Date:     generatedAt.Format(quoteDateLayout),
		Columns:  append([]string(nil), QuoteColumns...),
		Lines:    lines,
		Summary: []entities.QuoteSummaryLine{
			{Label: "Subtotal", Value: formatter.Format(estimate.Subtotal)},
			{Label: fmt.Sprintf("Tax (%s)", entities.TaxPercentLabel(estimate.TaxRate)), Value: formatter.Format(estimate.Tax)},
			{Label: "Total Estimate", Value: formatter.Format(estimate.GrandTotal), Emphasized: true},
		},
		Footer: []string{
			"* This document is an estimate only and does not represent a final invoice.",
			"Prices and availability are subject to change without notice.",
			"Generated via " + business.Website,
		},
	}
}

func countText(v *int64) string {
	if v == nil {
		return "0"
	}
	return strconv.FormatInt(*v, 10)
}
