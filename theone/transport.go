package theone

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

// Request describes one call handed to a Transport
type Request struct {
	Method string
	URL    string
	Header http.Header
	Query  url.Values
}

// Response is the fully read result of a Transport call
type Response struct {
	StatusCode int
	Body       []byte
}

// Text returns the raw body
func (r *Response) Text() string {
	return string(r.Body)
}

// Decode unmarshals the body into v, keeping numbers as json.Number.
func (r *Response) Decode(v any) error {
	dec := json.NewDecoder(bytes.NewReader(r.Body))
	dec.UseNumber()
	return dec.Decode(v)
}

// IsSuccess reports a 2xx status
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Transport performs a single HTTP round trip.
type Transport interface {
	Do(ctx context.Context, req *Request) (*Response, error)
}

// HTTPTransport implements Transport over net/http
type HTTPTransport struct {
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewHTTPTransport creates a transport using the given http.Client
func NewHTTPTransport(httpClient *http.Client, logger zerolog.Logger) *HTTPTransport {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &HTTPTransport{
		httpClient: httpClient,
		logger:     logger,
	}
}

// Do executes the request and reads the whole body. Errors from the
// underlying http.Client are returned as is.
func (t *HTTPTransport) Do(ctx context.Context, r *Request) (*Response, error) {
	requestURL := r.URL
	if len(r.Query) > 0 {
		requestURL += "?" + r.Query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	for key, values := range r.Header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	start := time.Now()
	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	t.logger.Debug().
		Str("method", r.Method).
		Str("url", requestURL).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("The One API request completed")

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       body,
	}, nil
}
