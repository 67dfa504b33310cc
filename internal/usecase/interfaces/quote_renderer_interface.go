package interfaces

import "tiffin_tales/internal/domain/entities"

// IQuoteRenderer turns a quote document into a downloadable file body.
type IQuoteRenderer interface {
	Format() entities.QuoteFormat
	ContentType() string
	Render(doc entities.QuoteDocument) ([]byte, error)
}
