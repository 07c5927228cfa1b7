package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/onering/filter"
)

// moviesCmd represents the movies command
var moviesCmd = &cobra.Command{
	Use:   "movies",
	Short: "List movies",
	Long: `List the movies known to The One API. Results can be paginated with
--limit, --page and --offset, and narrowed down with a filter expression:

  onering movies --filter 'Wins > 3 and (RottenTomatoes ?? 0) > 90'`,
	Args: cobra.NoArgs,
	RunE: runMovies,
}

// movieCmd represents the movie command
var movieCmd = &cobra.Command{
	Use:   "movie <id>...",
	Short: "Show one or more movies by ID",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runMovie,
}

// movieQuotesCmd represents the movie-quotes command
var movieQuotesCmd = &cobra.Command{
	Use:   "movie-quotes <id>",
	Short: "List the quotes of a movie",
	Args:  cobra.ExactArgs(1),
	RunE:  runMovieQuotes,
}

// movieWithQuotesCmd represents the movie-with-quotes command
var movieWithQuotesCmd = &cobra.Command{
	Use:   "movie-with-quotes <id>",
	Short: "Show a movie together with its quotes",
	Args:  cobra.ExactArgs(1),
	RunE:  runMovieWithQuotes,
}

func init() {
	addPageFlags(moviesCmd)
	addFilterFlags(moviesCmd)

	addPageFlags(movieQuotesCmd)
	addFilterFlags(movieQuotesCmd)

	addPageFlags(movieWithQuotesCmd)

	rootCmd.AddCommand(moviesCmd)
	rootCmd.AddCommand(movieCmd)
	rootCmd.AddCommand(movieQuotesCmd)
	rootCmd.AddCommand(movieWithQuotesCmd)
}

func runMovies(cmd *cobra.Command, args []string) error {
	f, err := getFilter()
	if err != nil {
		return err
	}

	movies, err := client.GetAllMovies(commandContext(cmd), pageOptions(cmd)...)
	if err != nil {
		return fmt.Errorf("failed to get movies: %w", err)
	}

	matched := filter.FilterMovies(f, movies)
	logger.Debug().Int("fetched", len(movies)).Int("matched", len(matched)).Msg("Movies listed")

	if done, err := printJSON(cmd, matched); done {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMovieList(matched))
	return nil
}

func runMovie(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)

	if len(args) == 1 {
		movie, err := client.GetMovieByID(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to get movie %s: %w", args[0], err)
		}
		if done, err := printJSON(cmd, movie); done {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMovie(movie))
		return nil
	}

	movies, err := client.GetMoviesByIDs(ctx, args)
	if err != nil {
		return fmt.Errorf("failed to get movies: %w", err)
	}
	if done, err := printJSON(cmd, movies); done {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMovieList(movies))
	return nil
}

func runMovieQuotes(cmd *cobra.Command, args []string) error {
	f, err := getFilter()
	if err != nil {
		return err
	}

	quotes, err := client.GetMovieQuotes(commandContext(cmd), args[0], pageOptions(cmd)...)
	if err != nil {
		return fmt.Errorf("failed to get quotes for movie %s: %w", args[0], err)
	}

	matched := filter.FilterQuotes(f, quotes)
	if done, err := printJSON(cmd, matched); done {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatQuoteList(matched))
	return nil
}

func runMovieWithQuotes(cmd *cobra.Command, args []string) error {
	mq, err := client.GetMovieWithQuotes(commandContext(cmd), args[0], pageOptions(cmd)...)
	if err != nil {
		return fmt.Errorf("failed to get movie %s with quotes: %w", args[0], err)
	}

	if done, err := printJSON(cmd, mq); done {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMovieWithQuotes(mq))
	return nil
}
