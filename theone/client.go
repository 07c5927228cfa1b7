package theone

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
)

// Client is the entry point to The One API
type Client struct {
	Movies *MovieService
	Quotes *QuoteService

	baseURL string
	logger  zerolog.Logger
}

var _ API = (*Client)(nil)

// NewClient creates a new client. No request is made until an operation is called.
func NewClient(apiKey string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: API key is required", ErrInvalidConfig)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	transport := o.transport
	if transport == nil {
		httpClient := o.httpClient
		if httpClient == nil {
			httpClient = &http.Client{Timeout: o.timeout}
		}
		transport = NewHTTPTransport(httpClient, logger)
	}

	movies := NewMovieService(apiKey, o.baseURL, transport, logger)
	quotes := NewQuoteService(apiKey, o.baseURL, transport, logger)
	movies.userAgent = o.userAgent
	quotes.userAgent = o.userAgent

	return &Client{
		Movies:  movies,
		Quotes:  quotes,
		baseURL: movies.baseURL,
		logger:  logger,
	}, nil
}

// BaseURL returns the normalized API base URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

// TestConnection verifies the API key by listing a single movie
func (c *Client) TestConnection(ctx context.Context) error {
	if _, err := c.Movies.GetAllMovies(ctx, Limit(1)); err != nil {
		return err
	}
	c.logger.Debug().Str("url", c.baseURL).Msg("Successfully connected to The One API")
	return nil
}

// GetMovieByID fetches a movie by its ID
func (c *Client) GetMovieByID(ctx context.Context, id string) (Movie, error) {
	return c.Movies.GetMovieByID(ctx, id)
}

// GetAllMovies fetches a page of movies
func (c *Client) GetAllMovies(ctx context.Context, opts ...PageOption) ([]Movie, error) {
	return c.Movies.GetAllMovies(ctx, opts...)
}

// GetMovieQuotes fetches a page of quotes for a movie
func (c *Client) GetMovieQuotes(ctx context.Context, movieID string, opts ...PageOption) ([]Quote, error) {
	return c.Movies.GetMovieQuotes(ctx, movieID, opts...)
}

// GetQuoteByID fetches a quote by its ID
func (c *Client) GetQuoteByID(ctx context.Context, id string) (Quote, error) {
	return c.Quotes.GetQuoteByID(ctx, id)
}

// GetAllQuotes fetches a page of quotes
func (c *Client) GetAllQuotes(ctx context.Context, opts ...PageOption) ([]Quote, error) {
	return c.Quotes.GetAllQuotes(ctx, opts...)
}

// GetMovieWithQuotes fetches a movie and then a page of its quotes.
// Arguments are checked before the first request. The first failure is
// returned as is and no partial result is produced.
func (c *Client) GetMovieWithQuotes(ctx context.Context, movieID string, opts ...PageOption) (*MovieWithQuotes, error) {
	if err := ValidateID(movieID, "id"); err != nil {
		return nil, err
	}
	if _, err := resolvePageOptions(opts); err != nil {
		return nil, err
	}

	movie, err := c.Movies.GetMovieByID(ctx, movieID)
	if err != nil {
		return nil, err
	}

	quotes, err := c.Movies.GetMovieQuotes(ctx, movieID, opts...)
	if err != nil {
		return nil, err
	}

	return &MovieWithQuotes{
		Movie:  movie,
		Quotes: quotes,
	}, nil
}
