package pkg

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	DefaultLocale         = "en-CA"
	DefaultCurrencySymbol = "$"
)

// CurrencyFormatter renders money amounts with exactly two fractional digits,
// the locale's digit grouping and a leading currency symbol.
type CurrencyFormatter struct {
	symbol  string
	printer *message.Printer
}

// NewCurrencyFormatter builds a formatter for the given BCP 47 locale.
// An unparsable locale falls back to en-CA.
func NewCurrencyFormatter(locale, symbol string) *CurrencyFormatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.MustParse(DefaultLocale)
	}
	if symbol == "" {
		symbol = DefaultCurrencySymbol
	}
	return &CurrencyFormatter{symbol: symbol, printer: message.NewPrinter(tag)}
}

// Format rounds to cents and renders e.g. "$1,234.50" or "-$5.00".
// The integer and fractional parts are taken from the decimal string, so no
// binary floating point is involved.
func (f *CurrencyFormatter) Format(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	negative := rounded.IsNegative()
	fixed := rounded.Abs().StringFixed(2)

	intPart, fracPart, _ := strings.Cut(fixed, ".")
	grouped := intPart
	if n, err := decimal.NewFromString(intPart); err == nil && n.IsInteger() && len(intPart) <= 18 {
		grouped = f.printer.Sprintf("%d", n.IntPart())
	}

	out := f.symbol + grouped + "." + fracPart
	if negative {
		out = "-" + out
	}
	return out
}

var defaultCurrencyFormatter = NewCurrencyFormatter(DefaultLocale, DefaultCurrencySymbol)

// FormatCurrency formats with the reference configuration (en-CA, "$").
func FormatCurrency(amount decimal.Decimal) string {
	return defaultCurrencyFormatter.Format(amount)
}
