package documents

import (
	"bytes"
	"fmt"
	"strconv"

	"tiffin_tales/internal/domain/entities"

	"github.com/xuri/excelize/v2"
)

const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const quoteSheet = "Estimate"

var xlsxColumns = []string{"A", "B", "C", "D", "E"}

type XLSXQuoteRenderer struct{}

func NewXLSXQuoteRenderer() *XLSXQuoteRenderer {
	return &XLSXQuoteRenderer{}
}

func (r *XLSXQuoteRenderer) Format() entities.QuoteFormat { return entities.QuoteFormatXLSX }

func (r *XLSXQuoteRenderer) ContentType() string { return ContentTypeXLSX }

// Render writes the quote to a single "Estimate" sheet. Amounts are stored as
// the formatted strings shown in the PDF.
func (r *XLSXQuoteRenderer) Render(doc entities.QuoteDocument) ([]byte, error) {
	if len(doc.Columns) != len(xlsxColumns) {
		return nil, fmt.Errorf("quote xlsx: expected %d columns, got %d", len(xlsxColumns), len(doc.Columns))
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), quoteSheet); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	lastCol := xlsxColumns[len(xlsxColumns)-1]
	widths := []float64{6, 10, 16, 10, 18}
	for i, c := range xlsxColumns {
		if err := f.SetColWidth(quoteSheet, c, c, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", c, err)
		}
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16, Color: "#F57C00"},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}
	subtitleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 10, Color: "#3C3C3C"},
	})
	if err != nil {
		return nil, fmt.Errorf("create subtitle style: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#F57C00"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}
	lineStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Size: 10},
		Alignment: &excelize.Alignment{Horizontal: "right"},
		Border:    thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create line style: %w", err)
	}
	summaryStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary style: %w", err)
	}
	grandStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "#F57C00"},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, fmt.Errorf("create grand total style: %w", err)
	}
	footerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Italic: true, Size: 9, Color: "#787878"},
	})
	if err != nil {
		return nil, fmt.Errorf("create footer style: %w", err)
	}

	// Header block, rows 1-5.
	header := []struct {
		value string
		style int
	}{
		{doc.Business.Name, titleStyle},
		{doc.Business.Tagline, subtitleStyle},
		{doc.Business.ServiceArea, subtitleStyle},
		{"Tel: " + doc.Business.Phone, subtitleStyle},
		{doc.Title + " | Date: " + doc.Date, subtitleStyle},
	}
	for i, h := range header {
		cell := "A" + strconv.Itoa(i+1)
		if err := f.MergeCell(quoteSheet, cell, lastCol+strconv.Itoa(i+1)); err != nil {
			return nil, fmt.Errorf("merge header: %w", err)
		}
		f.SetCellValue(quoteSheet, cell, sanitizeExcelCell(h.value))
		f.SetCellStyle(quoteSheet, cell, cell, h.style)
	}

	rowNum := 7
	for i, name := range doc.Columns {
		f.SetCellValue(quoteSheet, xlsxColumns[i]+strconv.Itoa(rowNum), name)
	}
	f.SetCellStyle(quoteSheet, "A"+strconv.Itoa(rowNum), lastCol+strconv.Itoa(rowNum), headerStyle)

	for _, line := range doc.Lines {
		rowNum++
		rowStr := strconv.Itoa(rowNum)
		values := []string{line.Index, line.People, line.UnitPrice, line.Days, line.Total}
		for i, v := range values {
			f.SetCellValue(quoteSheet, xlsxColumns[i]+rowStr, sanitizeExcelCell(v))
		}
		f.SetCellStyle(quoteSheet, "A"+rowStr, lastCol+rowStr, lineStyle)
	}

	rowNum++
	for _, s := range doc.Summary {
		rowNum++
		rowStr := strconv.Itoa(rowNum)
		style := summaryStyle
		if s.Emphasized {
			style = grandStyle
		}
		f.SetCellValue(quoteSheet, "D"+rowStr, s.Label)
		f.SetCellValue(quoteSheet, "E"+rowStr, sanitizeExcelCell(s.Value))
		f.SetCellStyle(quoteSheet, "D"+rowStr, "E"+rowStr, style)
	}

	rowNum++
	for _, line := range doc.Footer {
		rowNum++
		cell := "A" + strconv.Itoa(rowNum)
		f.SetCellValue(quoteSheet, cell, sanitizeExcelCell(line))
		f.SetCellStyle(quoteSheet, cell, cell, footerStyle)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

// sanitizeExcelCell prefixes values that Excel would evaluate as a formula.
// Negative amounts ("-$5.00") are escaped too.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{Type: side, Color: "#000000", Style: 1}
	}
	return borders
}
