package filter

import (
	"fmt"
	"testing"

	"github.com/s0up4200/onering/theone"
)

// generateTestMovies creates test movie data
func generateTestMovies(count int) []theone.Movie {
	movies := make([]theone.Movie, count)

	for i := 0; i < count; i++ {
		movies[i] = theone.Movie{
			ID:                      fmt.Sprintf("m%d", i),
			Name:                    fmt.Sprintf("Movie %d", i),
			RuntimeInMinutes:        intPtr(90 + i%120),
			AcademyAwardNominations: intPtr(i % 14),
			AcademyAwardWins:        intPtr(i % 5),
		}
		if i%3 != 0 {
			movies[i].RottenTomatoesScore = floatPtr(float64(50 + i%50))
		}
	}

	return movies
}

func BenchmarkCompileFilter(b *testing.B) {
	c := NewExprCompiler()
	for i := 0; i < b.N; i++ {
		if _, err := c.Compile(`hasSubstr(Name, "movie") and Wins > 2`); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompileFilterCached(b *testing.B) {
	c := NewExprCompiler(WithCache(16))
	for i := 0; i < b.N; i++ {
		if _, err := c.Compile(`hasSubstr(Name, "movie") and Wins > 2`); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFilterMovies(b *testing.B) {
	movies := generateTestMovies(1000)
	f, err := CompileFilter(`(RottenTomatoes ?? 0) > 75 and Runtime < 180`)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		FilterMovies(f, movies)
	}
}
