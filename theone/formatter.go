package theone

import (
	"fmt"
	"strconv"
	"strings"
)

// ConsoleFormatter provides console output formatting for movies and quotes
type ConsoleFormatter struct{}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{}
}

// FormatMovie formats a single movie with all of its details
func (f *ConsoleFormatter) FormatMovie(movie Movie) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (%s)\n", movie.Name, movie.ID)
	f.writeMovieDetails(&sb, movie, "    ")
	return sb.String()
}

// FormatMovieList formats a list of movies for console display
func (f *ConsoleFormatter) FormatMovieList(movies []Movie) string {
	if len(movies) == 0 {
		return "No movies found"
	}

	var sb strings.Builder

	// Header
	sb.WriteString("\nMovie")
	if len(movies) != 1 {
		sb.WriteString("s")
	}
	fmt.Fprintf(&sb, " (%d):\n\n", len(movies))

	for i, movie := range movies {
		isLast := i == len(movies)-1
		prefix, indent := treeBranch(isLast)

		fmt.Fprintf(&sb, "%s── %s (%s)\n", prefix, movie.Name, movie.ID)
		f.writeMovieDetails(&sb, movie, indent)

		if !isLast {
			sb.WriteString("│\n")
		}
	}

	sb.WriteString("\n")
	return sb.String()
}

// FormatQuoteList formats a list of quotes for console display
func (f *ConsoleFormatter) FormatQuoteList(quotes []Quote) string {
	if len(quotes) == 0 {
		return "No quotes found"
	}

	var sb strings.Builder

	sb.WriteString("\nQuote")
	if len(quotes) != 1 {
		sb.WriteString("s")
	}
	fmt.Fprintf(&sb, " (%d):\n\n", len(quotes))

	f.writeQuotes(&sb, quotes)

	sb.WriteString("\n")
	return sb.String()
}

// FormatMovieWithQuotes formats a movie followed by its quotes
func (f *ConsoleFormatter) FormatMovieWithQuotes(mq *MovieWithQuotes) string {
	var sb strings.Builder
	sb.WriteString(f.FormatMovie(mq.Movie))

	if len(mq.Quotes) == 0 {
		sb.WriteString("\nNo quotes found\n")
		return sb.String()
	}

	fmt.Fprintf(&sb, "\nQuotes (%d):\n\n", len(mq.Quotes))
	f.writeQuotes(&sb, mq.Quotes)
	return sb.String()
}

func (f *ConsoleFormatter) writeMovieDetails(sb *strings.Builder, movie Movie, indent string) {
	fmt.Fprintf(sb, "%sRuntime: %s min\n", indent, formatInt(movie.RuntimeInMinutes))
	fmt.Fprintf(sb, "%sBudget: %s | Box Office: %s\n", indent,
		formatMillions(movie.BudgetInMillions), formatMillions(movie.BoxOfficeRevenueInMillions))
	fmt.Fprintf(sb, "%sAcademy Awards: %s won of %s nominations\n", indent,
		formatInt(movie.AcademyAwardWins), formatInt(movie.AcademyAwardNominations))
	fmt.Fprintf(sb, "%sRotten Tomatoes: %s\n", indent, formatFloat(movie.RottenTomatoesScore))
}

func (f *ConsoleFormatter) writeQuotes(sb *strings.Builder, quotes []Quote) {
	for i, quote := range quotes {
		isLast := i == len(quotes)-1
		prefix, indent := treeBranch(isLast)

		fmt.Fprintf(sb, "%s── %q\n", prefix, strings.TrimSpace(quote.Dialog))
		fmt.Fprintf(sb, "%sID: %s | Movie: %s | Character: %s\n", indent, quote.ID, quote.Movie, quote.Character)
	}
}

func treeBranch(isLast bool) (prefix, indent string) {
	if isLast {
		return "╰", "    "
	}
	return "├", "│   "
}

func formatInt(v *int) string {
	if v == nil {
		return "n/a"
	}
	return strconv.Itoa(*v)
}

func formatFloat(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatMillions(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return "$" + formatFloat(v) + "M"
}
