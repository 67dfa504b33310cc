package documents

import (
	"bytes"
	"testing"

	"tiffin_tales/internal/domain/entities"

	"github.com/xuri/excelize/v2"
)

func sampleQuote() entities.QuoteDocument {
	return entities.QuoteDocument{
		Business: entities.BusinessIdentity{
			Name:        "Tiffin Tales",
			Tagline:     "Pure Veg Tiffin Service",
			ServiceArea: "Fleetwood, Surrey, BC",
			Phone:       "+1-604-618-7770",
			Website:     "tiffintales.ca",
		},
		Title:   "Budget Estimate",
		Date:    "2026-10-15",
		Columns: []string{"#", "People", "Price/Tiffin", "Days", "Total"},
		Lines: []entities.QuoteLine{
			{Index: "1", People: "1", UnitPrice: "$8.00", Days: "20", Total: "$160.00"},
			{Index: "2", People: "2", UnitPrice: "$10.00", Days: "5", Total: "$100.00"},
		},
		Summary: []entities.QuoteSummaryLine{
			{Label: "Subtotal", Value: "$260.00"},
			{Label: "Tax (12%)", Value: "$31.20"},
			{Label: "Total Estimate", Value: "$291.20", Emphasized: true},
		},
		Footer: []string{
			"* This document is an estimate only and does not represent a final invoice.",
			"Prices and availability are subject to change without notice.",
			"Generated via tiffintales.ca",
		},
	}
}

func TestPDFQuoteRenderer_Render(t *testing.T) {
	r := NewPDFQuoteRenderer()
	if r.Format() != entities.QuoteFormatPDF {
		t.Fatalf("unexpected format %q", r.Format())
	}
	if r.ContentType() != ContentTypePDF {
		t.Fatalf("unexpected content type %q", r.ContentType())
	}

	out, err := r.Render(sampleQuote())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Fatalf("output is not a PDF, starts with %q", out[:min(8, len(out))])
	}
}

func TestPDFQuoteRenderer_ColumnMismatch(t *testing.T) {
	doc := sampleQuote()
	doc.Columns = doc.Columns[:3]
	if _, err := NewPDFQuoteRenderer().Render(doc); err == nil {
		t.Fatal("expected error for wrong column count")
	}
}

func TestXLSXQuoteRenderer_Render(t *testing.T) {
	r := NewXLSXQuoteRenderer()
	if r.Format() != entities.QuoteFormatXLSX {
		t.Fatalf("unexpected format %q", r.Format())
	}

	out, err := r.Render(sampleQuote())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if len(out) == 0 {
		t.Fatal("Render() returned empty bytes")
	}

	f, err := excelize.OpenReader(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 1 || sheets[0] != quoteSheet {
		t.Fatalf("expected single sheet %q, got %v", quoteSheet, sheets)
	}

	checks := map[string]string{
		"A1":  "Tiffin Tales",
		"A7":  "#",
		"E7":  "Total",
		"E8":  "$160.00",
		"C9":  "$10.00",
		"D11": "Subtotal",
		"E13": "$291.20",
		"A15": "* This document is an estimate only and does not represent a final invoice.",
	}
	for cell, want := range checks {
		got, _ := f.GetCellValue(quoteSheet, cell)
		if got != want {
			t.Errorf("cell %s = %q, want %q", cell, got, want)
		}
	}
}

func TestSanitizeExcelCell(t *testing.T) {
	tests := map[string]string{
		"":        "",
		"$5.00":   "$5.00",
		"-$5.00":  "'-$5.00",
		"=SUM(A)": "'=SUM(A)",
		"@x":      "'@x",
	}
	for in, want := range tests {
		if got := sanitizeExcelCell(in); got != want {
			t.Errorf("sanitizeExcelCell(%q) = %q, want %q", in, got, want)
		}
	}
}
