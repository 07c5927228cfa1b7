package theone

import (
	"context"

	"github.com/rs/zerolog"
)

// QuoteService wraps the /quote endpoints
type QuoteService struct {
	service
}

// NewQuoteService creates a quote service. A nil transport uses the default HTTP transport.
func NewQuoteService(apiKey, baseURL string, transport Transport, logger zerolog.Logger) *QuoteService {
	return &QuoteService{service: newService(apiKey, baseURL, transport, logger)}
}

// GetQuoteByID retrieves a single quote
func (s *QuoteService) GetQuoteByID(ctx context.Context, id string) (Quote, error) {
	if err := ValidateID(id, "id"); err != nil {
		return Quote{}, err
	}
	doc, err := s.getFirst(ctx, s.endpoint("quote", id))
	if err != nil {
		return Quote{}, err
	}
	return QuoteFromJSON(doc), nil
}

// GetAllQuotes retrieves one page of quotes in response order
func (s *QuoteService) GetAllQuotes(ctx context.Context, opts ...PageOption) ([]Quote, error) {
	params, err := pageParams(opts)
	if err != nil {
		return nil, err
	}

	docs, err := s.getDocs(ctx, s.endpoint("quote"), params)
	if err != nil {
		return nil, err
	}

	return decodeQuotes(docs), nil
}

func decodeQuotes(docs []map[string]any) []Quote {
	quotes := make([]Quote, 0, len(docs))
	for _, doc := range docs {
		quotes = append(quotes, QuoteFromJSON(doc))
	}
	return quotes
}
