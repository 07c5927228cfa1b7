package theone

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeObject(t *testing.T, raw string) map[string]any {
	t.Helper()
	var obj map[string]any
	resp := &Response{StatusCode: 200, Body: []byte(raw)}
	require.NoError(t, resp.Decode(&obj))
	return obj
}

func TestMovieFromJSON(t *testing.T) {
	t.Run("all fields", func(t *testing.T) {
		obj := decodeObject(t, `{
			"_id": "5cd95395de30eff6ebccde5b",
			"name": "The Two Towers",
			"runtimeInMinutes": 179,
			"budgetInMillions": 94,
			"boxOfficeRevenueInMillions": 926,
			"academyAwardNominations": 6,
			"academyAwardWins": 2,
			"rottenTomatoesScore": 96.5
		}`)

		movie := MovieFromJSON(obj)
		assert.Equal(t, "5cd95395de30eff6ebccde5b", movie.ID)
		assert.Equal(t, "The Two Towers", movie.Name)
		require.NotNil(t, movie.RuntimeInMinutes)
		assert.Equal(t, 179, *movie.RuntimeInMinutes)
		require.NotNil(t, movie.BudgetInMillions)
		assert.Equal(t, 94.0, *movie.BudgetInMillions)
		require.NotNil(t, movie.BoxOfficeRevenueInMillions)
		assert.Equal(t, 926.0, *movie.BoxOfficeRevenueInMillions)
		require.NotNil(t, movie.AcademyAwardNominations)
		assert.Equal(t, 6, *movie.AcademyAwardNominations)
		require.NotNil(t, movie.AcademyAwardWins)
		assert.Equal(t, 2, *movie.AcademyAwardWins)
		require.NotNil(t, movie.RottenTomatoesScore)
		assert.Equal(t, 96.5, *movie.RottenTomatoesScore)
	})

	t.Run("missing keys are unset", func(t *testing.T) {
		movie := MovieFromJSON(decodeObject(t, `{"_id":"m1","name":"The Two Towers","runtimeInMinutes":179}`))
		assert.Equal(t, "m1", movie.ID)
		assert.Equal(t, "The Two Towers", movie.Name)
		require.NotNil(t, movie.RuntimeInMinutes)
		assert.Equal(t, 179, *movie.RuntimeInMinutes)
		assert.Nil(t, movie.BudgetInMillions)
		assert.Nil(t, movie.BoxOfficeRevenueInMillions)
		assert.Nil(t, movie.AcademyAwardNominations)
		assert.Nil(t, movie.AcademyAwardWins)
		assert.Nil(t, movie.RottenTomatoesScore)
	})

	t.Run("empty object", func(t *testing.T) {
		assert.Equal(t, Movie{}, MovieFromJSON(map[string]any{}))
		assert.Equal(t, Movie{}, MovieFromJSON(nil))
	})

	t.Run("null and mistyped values are unset", func(t *testing.T) {
		movie := MovieFromJSON(decodeObject(t, `{"_id":42,"name":null,"runtimeInMinutes":"long","academyAwardWins":1.5}`))
		assert.Empty(t, movie.ID)
		assert.Empty(t, movie.Name)
		assert.Nil(t, movie.RuntimeInMinutes)
		assert.Nil(t, movie.AcademyAwardWins)
	})

	t.Run("integers outside the int range are unset", func(t *testing.T) {
		movie := MovieFromJSON(decodeObject(t, `{"runtimeInMinutes":1e30,"academyAwardNominations":-1e30,"academyAwardWins":99999999999999999999}`))
		assert.Nil(t, movie.RuntimeInMinutes)
		assert.Nil(t, movie.AcademyAwardNominations)
		assert.Nil(t, movie.AcademyAwardWins)

		movie = MovieFromJSON(map[string]any{"runtimeInMinutes": 1e30})
		assert.Nil(t, movie.RuntimeInMinutes)
	})

	t.Run("plain float64 input", func(t *testing.T) {
		var obj map[string]any
		require.NoError(t, json.Unmarshal([]byte(`{"runtimeInMinutes":201,"budgetInMillions":281}`), &obj))
		movie := MovieFromJSON(obj)
		require.NotNil(t, movie.RuntimeInMinutes)
		assert.Equal(t, 201, *movie.RuntimeInMinutes)
		require.NotNil(t, movie.BudgetInMillions)
		assert.Equal(t, 281.0, *movie.BudgetInMillions)
	})
}

func TestQuoteFromJSON(t *testing.T) {
	quote := QuoteFromJSON(decodeObject(t, `{
		"character": "5cd99d4bde30eff6ebccfe9e",
		"movie": "5cd95395de30eff6ebccde5d",
		"dialog": "Deagol!",
		"_id": "5cd96e05de30eff6ebcce7e9",
		"id": "5cd96e05de30eff6ebcce7e9"
	}`))

	assert.Equal(t, Quote{
		ID:        "5cd96e05de30eff6ebcce7e9",
		Dialog:    "Deagol!",
		Movie:     "5cd95395de30eff6ebccde5d",
		Character: "5cd99d4bde30eff6ebccfe9e",
	}, quote)

	assert.Equal(t, Quote{ID: "q1"}, QuoteFromJSON(decodeObject(t, `{"_id":"q1"}`)))
}

func TestMovieMarshalUsesWireNames(t *testing.T) {
	runtime := 179
	data, err := json.Marshal(Movie{ID: "m1", Name: "The Two Towers", RuntimeInMinutes: &runtime})
	require.NoError(t, err)

	movie := MovieFromJSON(decodeObject(t, string(data)))
	assert.Equal(t, "m1", movie.ID)
	require.NotNil(t, movie.RuntimeInMinutes)
	assert.Equal(t, 179, *movie.RuntimeInMinutes)
	assert.Nil(t, movie.AcademyAwardWins)
}
