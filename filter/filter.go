package filter

import (
	"github.com/s0up4200/onering/theone"
)

// DefaultCacheSize is the number of compiled expressions kept by the default compiler
const DefaultCacheSize = 64

var defaultCompiler = NewExprCompiler(WithCache(DefaultCacheSize))

// CompileFilter compiles an expression with the shared caching compiler
func CompileFilter(expression string) (CompiledFilter, error) {
	return defaultCompiler.Compile(expression)
}

// FilterMovies returns the movies matching f, preserving order.
// A nil filter matches everything.
func FilterMovies(f Filter, movies []theone.Movie) []theone.Movie {
	return apply(f, movies)
}

// FilterQuotes returns the quotes matching f, preserving order.
func FilterQuotes(f Filter, quotes []theone.Quote) []theone.Quote {
	return apply(f, quotes)
}

func apply[T any](f Filter, records []T) []T {
	if f == nil {
		return records
	}

	matched := make([]T, 0, len(records))
	for _, r := range records {
		if f.Evaluate(r) {
			matched = append(matched, r)
		}
	}
	return matched
}
