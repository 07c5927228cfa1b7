// Package theone provides a client for The One API (https://the-one-api.dev),
// which serves movie and quote data from The Lord of the Rings.
//
// # Architecture
//
// The package is organized into several components:
//
//   - Client: The facade owning one MovieService and one QuoteService
//   - MovieService, QuoteService: One authenticated request per call, decoded into models
//   - Transport: The HTTP collaborator; HTTPTransport is the net/http implementation
//   - Models: Movie and Quote, built field by field from the "docs" envelope
//   - Errors: A small typed taxonomy for auth, not found, service and argument failures
//
// # Usage
//
//	logger := zerolog.New(os.Stderr)
//	client, err := theone.NewClient(os.Getenv("LOTR_API_KEY"), logger,
//		theone.WithTimeout(10*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	movies, err := client.GetAllMovies(ctx, theone.Limit(5), theone.Page(1))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	mq, err := client.GetMovieWithQuotes(ctx, movies[0].ID, theone.Limit(10))
//
// Pagination options are only sent when supplied. Limit defaults to 100.
// Page(0) and Offset(-1) fail locally with ErrInvalidArgument before any request.
//
// # Error Handling
//
// Non-success responses are classified once, at the service boundary:
//
//   - 401: ErrUnauthorized
//   - 404: ErrNotFound
//   - 500: ErrService, with the fixed message "Internal server error. Please try again later."
//   - Any other non-2xx status: ErrService, with the raw response body as message
//
// Empty or blank ids fail locally with ErrInvalidArgument. Transport failures
// are wrapped as "request failed: ..." and carry no typed kind.
//
// All of them are returned as *APIError and match ErrSDK:
//
//	var apiErr *theone.APIError
//	if errors.As(err, &apiErr) && apiErr.IsUnauthorized() {
//		// Handle auth failure
//	}
//	if errors.Is(err, theone.ErrNotFound) {
//		// Handle missing movie
//	}
//
// A Client holds only immutable configuration and is safe for concurrent use.
package theone
