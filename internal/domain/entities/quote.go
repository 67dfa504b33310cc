package entities

// QuoteFormat selects the document renderer.
type QuoteFormat string

const (
	QuoteFormatPDF  QuoteFormat = "pdf"
	QuoteFormatXLSX QuoteFormat = "xlsx"
)

// BusinessIdentity is printed in the quote header and footer.
type BusinessIdentity struct {
	Name        string
	Tagline     string
	ServiceArea string
	Phone       string
	Website     string
}

// QuoteLine is one order row, already formatted for display.
type QuoteLine struct {
	Index     string
	People    string
	UnitPrice string
	Days      string
	Total     string
}

// QuoteSummaryLine is a trailing total row. Emphasized marks the grand total.
type QuoteSummaryLine struct {
	Label      string
	Value      string
	Emphasized bool
}

// QuoteDocument is the layout-independent content of a downloadable quote.
type QuoteDocument struct {
	Business BusinessIdentity
	Title    string
	Date     string
	Columns  []string
	Lines    []QuoteLine
	Summary  []QuoteSummaryLine
	Footer   []string
}

// QuoteFile is a rendered quote ready to be sent as a download.
type QuoteFile struct {
	Filename    string
	ContentType string
	Content     []byte
}
