package theone

import (
	"encoding/json"
	"math"
)

// Movie is a film record from the /movie endpoints.
// Numeric fields are nil when the source document omits them.
type Movie struct {
	ID                         string   `json:"_id"`
	Name                       string   `json:"name"`
	RuntimeInMinutes           *int     `json:"runtimeInMinutes"`
	BudgetInMillions           *float64 `json:"budgetInMillions"`
	BoxOfficeRevenueInMillions *float64 `json:"boxOfficeRevenueInMillions"`
	AcademyAwardNominations    *int     `json:"academyAwardNominations"`
	AcademyAwardWins           *int     `json:"academyAwardWins"`
	RottenTomatoesScore        *float64 `json:"rottenTomatoesScore"`
}

// Quote is a line of dialog. Movie and Character hold ids, not nested objects.
type Quote struct {
	ID        string `json:"_id"`
	Dialog    string `json:"dialog"`
	Movie     string `json:"movie"`
	Character string `json:"character"`
}

// MovieWithQuotes pairs a movie with a page of its quotes
type MovieWithQuotes struct {
	Movie  Movie   `json:"movie"`
	Quotes []Quote `json:"quotes"`
}

// MovieFromJSON builds a Movie from a decoded JSON object.
// Keys that are absent, null or of an unexpected type leave the field unset.
func MovieFromJSON(obj map[string]any) Movie {
	return Movie{
		ID:                         stringField(obj, "_id"),
		Name:                       stringField(obj, "name"),
		RuntimeInMinutes:           intField(obj, "runtimeInMinutes"),
		BudgetInMillions:           floatField(obj, "budgetInMillions"),
		BoxOfficeRevenueInMillions: floatField(obj, "boxOfficeRevenueInMillions"),
		AcademyAwardNominations:    intField(obj, "academyAwardNominations"),
		AcademyAwardWins:           intField(obj, "academyAwardWins"),
		RottenTomatoesScore:        floatField(obj, "rottenTomatoesScore"),
	}
}

// QuoteFromJSON builds a Quote from a decoded JSON object.
func QuoteFromJSON(obj map[string]any) Quote {
	return Quote{
		ID:        stringField(obj, "_id"),
		Dialog:    stringField(obj, "dialog"),
		Movie:     stringField(obj, "movie"),
		Character: stringField(obj, "character"),
	}
}

// docsResponse is the envelope shared by every endpoint
type docsResponse struct {
	Docs []map[string]any `json:"docs"`
}

func stringField(obj map[string]any, key string) string {
	if s, ok := obj[key].(string); ok {
		return s
	}
	return ""
}

func floatField(obj map[string]any, key string) *float64 {
	var f float64
	switch v := obj[key].(type) {
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return nil
		}
		f = parsed
	case float64:
		f = v
	case int:
		f = float64(v)
	default:
		return nil
	}
	return &f
}

func intField(obj map[string]any, key string) *int {
	var n int
	switch v := obj[key].(type) {
	case json.Number:
		if parsed, err := v.Int64(); err == nil {
			n = int(parsed)
			break
		}
		f, err := v.Float64()
		if err != nil || !isIntegral(f) {
			return nil
		}
		n = int(f)
	case float64:
		if !isIntegral(v) {
			return nil
		}
		n = int(v)
	case int:
		n = v
	default:
		return nil
	}
	return &n
}

// isIntegral reports whether f is a whole number representable as int
func isIntegral(f float64) bool {
	return f == math.Trunc(f) && f >= math.MinInt && f < -float64(math.MinInt)
}
