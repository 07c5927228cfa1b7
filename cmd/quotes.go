package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/onering/filter"
)

// quotesCmd represents the quotes command
var quotesCmd = &cobra.Command{
	Use:   "quotes",
	Short: "List quotes",
	Long: `List quotes across all movies. Results can be paginated with --limit,
--page and --offset, and narrowed down with a filter expression:

  onering quotes --limit 500 --filter 'Character == "5cd99d4bde30eff6ebccfe9e"'
  onering quotes --filter 'hasSubstr(Dialog, "precious") and words(Dialog) < 10'

hasSubstr, hasPrefix and hasSuffix ignore case. The contains, startsWith and
endsWith operators are case-sensitive.`,
	Args: cobra.NoArgs,
	RunE: runQuotes,
}

// quoteCmd represents the quote command
var quoteCmd = &cobra.Command{
	Use:   "quote <id>...",
	Short: "Show one or more quotes by ID",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runQuote,
}

func init() {
	addPageFlags(quotesCmd)
	addFilterFlags(quotesCmd)

	rootCmd.AddCommand(quotesCmd)
	rootCmd.AddCommand(quoteCmd)
}

func runQuotes(cmd *cobra.Command, args []string) error {
	f, err := getFilter()
	if err != nil {
		return err
	}

	quotes, err := client.GetAllQuotes(commandContext(cmd), pageOptions(cmd)...)
	if err != nil {
		return fmt.Errorf("failed to get quotes: %w", err)
	}

	matched := filter.FilterQuotes(f, quotes)
	logger.Debug().Int("fetched", len(quotes)).Int("matched", len(matched)).Msg("Quotes listed")

	if done, err := printJSON(cmd, matched); done {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatQuoteList(matched))
	return nil
}

func runQuote(cmd *cobra.Command, args []string) error {
	quotes, err := client.GetQuotesByIDs(commandContext(cmd), args)
	if err != nil {
		return fmt.Errorf("failed to get quotes: %w", err)
	}

	if done, err := printJSON(cmd, quotes); done {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatQuoteList(quotes))
	return nil
}
