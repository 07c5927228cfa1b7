package theone

import (
	"context"

	"github.com/rs/zerolog"
)

// MovieService wraps the /movie endpoints
type MovieService struct {
	service
}

// NewMovieService creates a movie service. A nil transport uses the default HTTP transport.
func NewMovieService(apiKey, baseURL string, transport Transport, logger zerolog.Logger) *MovieService {
	return &MovieService{service: newService(apiKey, baseURL, transport, logger)}
}

// GetMovieByID retrieves a single movie
func (s *MovieService) GetMovieByID(ctx context.Context, id string) (Movie, error) {
	if err := ValidateID(id, "id"); err != nil {
		return Movie{}, err
	}
	doc, err := s.getFirst(ctx, s.endpoint("movie", id))
	if err != nil {
		return Movie{}, err
	}
	return MovieFromJSON(doc), nil
}

// GetAllMovies retrieves one page of movies in response order
func (s *MovieService) GetAllMovies(ctx context.Context, opts ...PageOption) ([]Movie, error) {
	params, err := pageParams(opts)
	if err != nil {
		return nil, err
	}

	docs, err := s.getDocs(ctx, s.endpoint("movie"), params)
	if err != nil {
		return nil, err
	}

	movies := make([]Movie, 0, len(docs))
	for _, doc := range docs {
		movies = append(movies, MovieFromJSON(doc))
	}
	return movies, nil
}

// GetMovieQuotes retrieves one page of quotes spoken in the given movie
func (s *MovieService) GetMovieQuotes(ctx context.Context, movieID string, opts ...PageOption) ([]Quote, error) {
	if err := ValidateID(movieID, "id"); err != nil {
		return nil, err
	}
	params, err := pageParams(opts)
	if err != nil {
		return nil, err
	}

	docs, err := s.getDocs(ctx, s.endpoint("movie", movieID, "quote"), params)
	if err != nil {
		return nil, err
	}

	return decodeQuotes(docs), nil
}
