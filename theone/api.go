package theone

import (
	"context"
)

// API defines the interface for The One API operations
type API interface {
	// TestConnection verifies the client can reach the API with its key
	TestConnection(ctx context.Context) error

	// Movie operations
	GetMovieByID(ctx context.Context, id string) (Movie, error)
	GetAllMovies(ctx context.Context, opts ...PageOption) ([]Movie, error)
	GetMovieQuotes(ctx context.Context, movieID string, opts ...PageOption) ([]Quote, error)
	GetMovieWithQuotes(ctx context.Context, movieID string, opts ...PageOption) (*MovieWithQuotes, error)

	// Quote operations
	GetQuoteByID(ctx context.Context, id string) (Quote, error)
	GetAllQuotes(ctx context.Context, opts ...PageOption) ([]Quote, error)

	// Batch lookups
	GetMoviesByIDs(ctx context.Context, ids []string) ([]Movie, error)
	GetQuotesByIDs(ctx context.Context, ids []string) ([]Quote, error)
}
