package theone

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// MaxConcurrency bounds the number of lookups in flight for a batch call
const MaxConcurrency = 5

// GetMoviesByIDs fetches several movies concurrently, one request per id.
// Results keep the order of ids. The first failure cancels the remaining lookups.
func (c *Client) GetMoviesByIDs(ctx context.Context, ids []string) ([]Movie, error) {
	return fetchAll(ctx, ids, c.Movies.GetMovieByID)
}

// GetQuotesByIDs fetches several quotes concurrently, one request per id.
func (c *Client) GetQuotesByIDs(ctx context.Context, ids []string) ([]Quote, error) {
	return fetchAll(ctx, ids, c.Quotes.GetQuoteByID)
}

func fetchAll[T any](ctx context.Context, ids []string, fetch func(context.Context, string) (T, error)) ([]T, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(MaxConcurrency)

	// Each goroutine writes only its own index
	results := make([]T, len(ids))
	for i, id := range ids {
		g.Go(func() error {
			item, err := fetch(ctx, id)
			if err != nil {
				return err
			}
			results[i] = item
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
