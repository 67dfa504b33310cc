package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"tiffin_tales/internal/domain/entities"
	mock_interfaces "tiffin_tales/internal/usecase/interfaces/mocks"
	"tiffin_tales/pkg"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func testQuoteSettings() QuoteSettings {
	return QuoteSettings{
		Business: entities.BusinessIdentity{
			Name:        "Tiffin Tales",
			Tagline:     "Pure Veg Tiffin Service",
			ServiceArea: "Fleetwood, Surrey, BC",
			Phone:       "+1-604-618-7770",
			Website:     "tiffintales.ca",
		},
		TaxRate:  entities.DefaultTaxRate,
		Filename: "tiffin-tales-budget",
	}
}

func newTestQuoteUseCase(ctrl *gomock.Controller) (*QuoteUseCase, *mock_interfaces.MockISessionRepository, *mock_interfaces.MockIQuoteRenderer) {
	repo := mock_interfaces.NewMockISessionRepository(ctrl)
	renderer := mock_interfaces.NewMockIQuoteRenderer(ctrl)
	renderer.EXPECT().Format().Return(entities.QuoteFormatPDF).AnyTimes()
	renderer.EXPECT().ContentType().Return("application/pdf").AnyTimes()

	uc := NewQuoteUseCase(repo, pkg.NewCurrencyFormatter("en-CA", "$"), testQuoteSettings(), renderer)
	uc.now = func() time.Time { return fixedNow }
	return uc, repo, renderer
}

func TestQuoteUseCase_ExportQuote(t *testing.T) {
	t.Run("invalid session id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _ := newTestQuoteUseCase(ctrl)

		if _, err := uc.ExportQuote(context.Background(), " ", entities.QuoteFormatPDF); !errors.Is(err, ErrInvalidSessionID) {
			t.Fatalf("expected ErrInvalidSessionID, got %v", err)
		}
	})

	t.Run("unsupported format", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _ := newTestQuoteUseCase(ctrl)

		if _, err := uc.ExportQuote(context.Background(), "sess-1", entities.QuoteFormat("docx")); !errors.Is(err, ErrUnsupportedQuoteFormat) {
			t.Fatalf("expected ErrUnsupportedQuoteFormat, got %v", err)
		}
	})

	t.Run("busy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _ := newTestQuoteUseCase(ctrl)

		uc.guard.TryAcquire("sess-1")
		defer uc.guard.Release("sess-1")

		if _, err := uc.ExportQuote(context.Background(), "sess-1", entities.QuoteFormatPDF); !errors.Is(err, ErrExportInProgress) {
			t.Fatalf("expected ErrExportInProgress, got %v", err)
		}
	})

	t.Run("session not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _ := newTestQuoteUseCase(ctrl)

		repo.EXPECT().Get(gomock.Any(), "sess-1").Return(entities.EstimatorSession{}, nil)

		if _, err := uc.ExportQuote(context.Background(), "sess-1", entities.QuoteFormatPDF); !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
		if uc.guard.Busy("sess-1") {
			t.Fatalf("expected guard released")
		}
	})

	t.Run("zero total skips rendering", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, renderer := newTestQuoteUseCase(ctrl)

		repo.EXPECT().Get(gomock.Any(), "sess-1").Return(storedSession(nil), nil)
		renderer.EXPECT().Render(gomock.Any()).Times(0)

		if _, err := uc.ExportQuote(context.Background(), "sess-1", entities.QuoteFormatPDF); !errors.Is(err, ErrNothingToExport) {
			t.Fatalf("expected ErrNothingToExport, got %v", err)
		}
		if uc.guard.Busy("sess-1") {
			t.Fatalf("expected guard released")
		}
	})

	t.Run("render error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, renderer := newTestQuoteUseCase(ctrl)

		repo.EXPECT().Get(gomock.Any(), "sess-1").Return(storedSession(int64Ptr(20)), nil)
		renderer.EXPECT().Render(gomock.Any()).Return(nil, errors.New("font missing"))

		_, err := uc.ExportQuote(context.Background(), "sess-1", entities.QuoteFormatPDF)
		if !errors.Is(err, ErrQuoteGenerationFailed) {
			t.Fatalf("expected ErrQuoteGenerationFailed, got %v", err)
		}
		if uc.guard.Busy("sess-1") {
			t.Fatalf("expected guard released")
		}
	})

	t.Run("render panic is recovered", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, renderer := newTestQuoteUseCase(ctrl)

		repo.EXPECT().Get(gomock.Any(), "sess-1").Return(storedSession(int64Ptr(20)), nil)
		renderer.EXPECT().Render(gomock.Any()).DoAndReturn(func(entities.QuoteDocument) ([]byte, error) {
			panic("boom")
		})

		_, err := uc.ExportQuote(context.Background(), "sess-1", entities.QuoteFormatPDF)
		if !errors.Is(err, ErrQuoteGenerationFailed) {
			t.Fatalf("expected ErrQuoteGenerationFailed, got %v", err)
		}
		if uc.guard.Busy("sess-1") {
			t.Fatalf("expected guard released")
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, renderer := newTestQuoteUseCase(ctrl)

		repo.EXPECT().Get(gomock.Any(), "sess-1").Return(storedSession(int64Ptr(20)), nil)
		renderer.EXPECT().Render(gomock.Any()).DoAndReturn(func(doc entities.QuoteDocument) ([]byte, error) {
			if doc.Title != "Budget Estimate" || doc.Date != "2026-10-15" {
				t.Fatalf("unexpected header: %q %q", doc.Title, doc.Date)
			}
			if len(doc.Lines) != 1 || doc.Lines[0].Total != "$160.00" || doc.Lines[0].UnitPrice != "$8.00" {
				t.Fatalf("unexpected lines: %+v", doc.Lines)
			}
			want := []entities.QuoteSummaryLine{
				{Label: "Subtotal", Value: "$160.00"},
				{Label: "Tax (12%)", Value: "$19.20"},
				{Label: "Total Estimate", Value: "$179.20", Emphasized: true},
			}
			for i, w := range want {
				if doc.Summary[i] != w {
					t.Fatalf("summary[%d] = %+v, want %+v", i, doc.Summary[i], w)
				}
			}
			if doc.Footer[2] != "Generated via tiffintales.ca" {
				t.Fatalf("unexpected footer: %v", doc.Footer)
			}
			return []byte("%PDF-1.3"), nil
		})

		file, err := uc.ExportQuote(context.Background(), "sess-1", "")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if file.Filename != "tiffin-tales-budget.pdf" || file.ContentType != "application/pdf" || string(file.Content) != "%PDF-1.3" {
			t.Fatalf("unexpected file: %+v", file)
		}
	})

	t.Run("concurrent export is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, renderer := newTestQuoteUseCase(ctrl)

		started := make(chan struct{})
		release := make(chan struct{})
		repo.EXPECT().Get(gomock.Any(), "sess-1").Return(storedSession(int64Ptr(20)), nil)
		renderer.EXPECT().Render(gomock.Any()).DoAndReturn(func(entities.QuoteDocument) ([]byte, error) {
			close(started)
			<-release
			return []byte("%PDF-"), nil
		})

		done := make(chan error, 1)
		go func() {
			_, err := uc.ExportQuote(context.Background(), "sess-1", entities.QuoteFormatPDF)
			done <- err
		}()
		<-started

		if _, err := uc.ExportQuote(context.Background(), "sess-1", entities.QuoteFormatPDF); !errors.Is(err, ErrExportInProgress) {
			t.Fatalf("expected ErrExportInProgress, got %v", err)
		}
		close(release)
		if err := <-done; err != nil {
			t.Fatalf("first export failed: %v", err)
		}
		if uc.guard.Busy("sess-1") {
			t.Fatalf("expected guard released")
		}
	})
}

func TestBuildQuoteDocument_UnsetFieldsPrintZero(t *testing.T) {
	s := entities.EstimatorSession{Rows: []entities.OrderRow{{ID: "r"}}}
	doc := BuildQuoteDocument(s, entities.ComputeEstimate(s.Rows, decimal.RequireFromString("0.05")),
		testQuoteSettings().Business, pkg.NewCurrencyFormatter("en-CA", "$"), fixedNow)

	line := doc.Lines[0]
	if line.Index != "1" || line.People != "0" || line.UnitPrice != "$0.00" || line.Days != "0" || line.Total != "$0.00" {
		t.Fatalf("unexpected line: %+v", line)
	}
	if doc.Summary[1].Label != "Tax (5%)" {
		t.Fatalf("unexpected tax label %q", doc.Summary[1].Label)
	}
	if len(doc.Columns) != 5 {
		t.Fatalf("expected 5 columns, got %v", doc.Columns)
	}
}
