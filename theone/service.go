package theone

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// service holds the immutable configuration shared by MovieService and QuoteService
type service struct {
	apiKey    string
	baseURL   string
	userAgent string
	transport Transport
	logger    zerolog.Logger
}

func newService(apiKey, baseURL string, transport Transport, logger zerolog.Logger) service {
	if transport == nil {
		transport = NewHTTPTransport(nil, logger)
	}
	return service{
		apiKey:    apiKey,
		baseURL:   strings.TrimRight(baseURL, "/"),
		transport: transport,
		logger:    logger,
	}
}

// endpoint joins escaped path segments onto the base URL
func (s *service) endpoint(segments ...string) string {
	var sb strings.Builder
	sb.WriteString(s.baseURL)
	for _, seg := range segments {
		sb.WriteByte('/')
		sb.WriteString(url.PathEscape(seg))
	}
	return sb.String()
}

// getDocs performs an authenticated GET and returns the docs array of a successful response
func (s *service) getDocs(ctx context.Context, endpoint string, params url.Values) ([]map[string]any, error) {
	header := http.Header{}
	header.Set("Authorization", "Bearer "+s.apiKey)
	header.Set("Accept", "application/json")
	if s.userAgent != "" {
		header.Set("User-Agent", s.userAgent)
	}

	resp, err := s.transport.Do(ctx, &Request{
		Method: http.MethodGet,
		URL:    endpoint,
		Header: header,
		Query:  params,
	})
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if !resp.IsSuccess() {
		s.logger.Debug().
			Str("url", endpoint).
			Int("status", resp.StatusCode).
			Msg("The One API returned an error status")
		return nil, classify(resp)
	}

	var payload docsResponse
	if err := resp.Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	s.logger.Debug().
		Str("url", endpoint).
		Int("count", len(payload.Docs)).
		Msg("Retrieved documents from The One API")

	return payload.Docs, nil
}

// getFirst returns the first document of a single-item lookup
func (s *service) getFirst(ctx context.Context, endpoint string) (map[string]any, error) {
	docs, err := s.getDocs(ctx, endpoint, nil)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, notFound(http.StatusOK)
	}
	return docs[0], nil
}

// pageParams validates opts and encodes them as query parameters.
// limit is always present, page and offset only when supplied.
func pageParams(opts []PageOption) (url.Values, error) {
	o, err := resolvePageOptions(opts)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("limit", strconv.Itoa(*o.Limit))
	if o.Page != nil {
		params.Set("page", strconv.Itoa(*o.Page))
	}
	if o.Offset != nil {
		params.Set("offset", strconv.Itoa(*o.Offset))
	}
	return params, nil
}
