package documents

import (
	"fmt"

	"tiffin_tales/internal/domain/entities"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

const ContentTypePDF = "application/pdf"

var (
	saffron   = &props.Color{Red: 245, Green: 124, Blue: 0}
	white     = &props.Color{Red: 255, Green: 255, Blue: 255}
	darkGrey  = &props.Color{Red: 60, Green: 60, Blue: 60}
	mutedGrey = &props.Color{Red: 120, Green: 120, Blue: 120}
	stripeBg  = &props.Color{Red: 253, Green: 246, Blue: 236}
)

// table column widths on maroto's 12-column grid: #, People, Price, Days, Total
var pdfColumnWidths = []int{1, 2, 3, 2, 4}

type PDFQuoteRenderer struct{}

func NewPDFQuoteRenderer() *PDFQuoteRenderer {
	return &PDFQuoteRenderer{}
}

func (r *PDFQuoteRenderer) Format() entities.QuoteFormat { return entities.QuoteFormatPDF }

func (r *PDFQuoteRenderer) ContentType() string { return ContentTypePDF }

// Render lays out the quote on a single A4 page and returns the PDF bytes.
func (r *PDFQuoteRenderer) Render(doc entities.QuoteDocument) ([]byte, error) {
	if len(doc.Columns) != len(pdfColumnWidths) {
		return nil, fmt.Errorf("quote pdf: expected %d columns, got %d", len(pdfColumnWidths), len(doc.Columns))
	}

	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)

	addQuoteHeader(m, doc)
	addQuoteTable(m, doc)
	addQuoteSummary(m, doc)
	addQuoteFooter(m, doc)

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate quote PDF: %w", err)
	}
	return out.GetBytes(), nil
}

// addQuoteHeader puts the business block on the left and title/date on the right.
func addQuoteHeader(m core.Maroto, doc entities.QuoteDocument) {
	small := props.Text{Size: 9, Align: align.Left, Color: darkGrey}

	m.AddRows(
		row.New(10).Add(
			col.New(7).Add(text.New(doc.Business.Name, props.Text{
				Size:  20,
				Style: fontstyle.Bold,
				Align: align.Left,
				Color: saffron,
			})),
			col.New(5).Add(text.New(doc.Title, props.Text{
				Size:  16,
				Style: fontstyle.Bold,
				Align: align.Right,
			})),
		),
		row.New(6).Add(
			col.New(7).Add(text.New(doc.Business.Tagline, small)),
			col.New(5).Add(text.New("Date: "+doc.Date, props.Text{
				Size:  10,
				Align: align.Right,
				Color: darkGrey,
			})),
		),
		row.New(5).Add(col.New(12).Add(text.New(doc.Business.ServiceArea, small))),
		row.New(5).Add(col.New(12).Add(text.New("Tel: "+doc.Business.Phone, small))),
	)

	m.AddRows(row.New(8))
}

func addQuoteTable(m core.Maroto, doc entities.QuoteDocument) {
	headerCell := &props.Cell{BackgroundColor: saffron}
	headerCols := make([]core.Col, len(doc.Columns))
	for i, name := range doc.Columns {
		headerCols[i] = col.New(pdfColumnWidths[i]).Add(text.New(name, props.Text{
			Size:  10,
			Style: fontstyle.Bold,
			Align: columnAlign(i),
			Color: white,
			Top:   1.5,
		})).WithStyle(headerCell)
	}
	m.AddRows(row.New(8).Add(headerCols...))

	for i, line := range doc.Lines {
		values := []string{line.Index, line.People, line.UnitPrice, line.Days, line.Total}
		cols := make([]core.Col, len(values))
		for j, v := range values {
			c := col.New(pdfColumnWidths[j]).Add(text.New(v, props.Text{
				Size:  10,
				Align: columnAlign(j),
				Top:   1.5,
			}))
			if i%2 == 1 {
				c = c.WithStyle(&props.Cell{BackgroundColor: stripeBg})
			}
			cols[j] = c
		}
		m.AddRows(row.New(8).Add(cols...))
	}

	m.AddRows(row.New(4))
}

// addQuoteSummary right-aligns the totals under the Total column.
func addQuoteSummary(m core.Maroto, doc entities.QuoteDocument) {
	for _, line := range doc.Summary {
		labelStyle := props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right}
		valueStyle := props.Text{Size: 10, Align: align.Right}
		height := 7.0
		if line.Emphasized {
			labelStyle.Size = 12
			valueStyle.Size = 12
			valueStyle.Style = fontstyle.Bold
			valueStyle.Color = saffron
			height = 9
		}
		m.AddRows(
			row.New(height).Add(
				col.New(8).Add(text.New(line.Label, labelStyle)),
				col.New(4).Add(text.New(line.Value, valueStyle)),
			),
		)
	}

	m.AddRows(row.New(12))
}

func addQuoteFooter(m core.Maroto, doc entities.QuoteDocument) {
	for _, line := range doc.Footer {
		m.AddRows(row.New(5).Add(col.New(12).Add(text.New(line, props.Text{
			Size:  8,
			Style: fontstyle.Italic,
			Align: align.Center,
			Color: mutedGrey,
		}))))
	}
}

func columnAlign(i int) align.Type {
	switch i {
	case 0:
		return align.Left
	case len(pdfColumnWidths) - 1:
		return align.Right
	}
	return align.Center
}
