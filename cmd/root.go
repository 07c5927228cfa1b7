package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/s0up4200/onering/config"
	"github.com/s0up4200/onering/filter"
	"github.com/s0up4200/onering/theone"
)

var (
	cfgFile   string
	cfg       *config.Config
	logger    zerolog.Logger
	client    theone.API
	compiler  filter.CachingCompiler
	formatter = theone.NewConsoleFormatter()

	version   = "dev"
	buildTime = "unknown"

	// Command flags
	apiKey     string
	baseURL    string
	jsonOutput bool
	filterExpr string
	preset     string
	limit      int
	page       int
	offset     int
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "onering",
	Short: "Browse Lord of the Rings movies and quotes from The One API",
	Long: `onering is a CLI for The One API (https://the-one-api.dev). It lists the
Lord of the Rings movies and their quotes, looks records up by ID and
narrows results down with filter expressions.

The API key is read from --api-key, the LOTR_API_KEY environment variable,
a .env file or the config file, in that order.`,
	PersistentPreRunE: initializeApp,
	SilenceUsage:      true,
}

// SetVersion records build information shown by the version command
func SetVersion(v, built string) {
	version = v
	buildTime = built
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "The One API key (overrides LOTR_API_KEY)")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "API base URL")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print results as JSON")

	// Add subcommands
	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(versionCmd)
}

// initializeApp initializes the configuration and client
func initializeApp(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()

	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile, map[string]*pflag.Flag{
		"api.key":      flags.Lookup("api-key"),
		"api.base_url": flags.Lookup("base-url"),
	})
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	client, err = theone.NewClient(cfg.API.Key, logger,
		theone.WithBaseURL(cfg.API.BaseURL),
		theone.WithTimeout(cfg.API.Timeout),
		theone.WithUserAgent(cfg.API.UserAgent),
	)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	compiler = filter.NewExprCompiler(filter.WithCache(cfg.Filter.CacheSize))

	logger.Debug().Str("base_url", cfg.API.BaseURL).Msg("Client initialized")

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format, colored only on a terminal
	fd := os.Stderr.Fd()
	isTerminal := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isTerminal,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test connection to The One API",
	Long:  `Test the connection to The One API using the configured API key.`,
	Args:  cobra.NoArgs,
	RunE:  runTest,
}

func runTest(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Testing connection to The One API at %s...\n", cfg.API.BaseURL)

	if err := client.TestConnection(commandContext(cmd)); err != nil {
		var apiErr *theone.APIError
		if errors.As(err, &apiErr) && apiErr.IsUnauthorized() {
			return fmt.Errorf("connection failed, check your API key: %w", err)
		}
		return fmt.Errorf("connection failed: %w", err)
	}

	fmt.Fprintln(out, "✓ Connection successful!")
	return nil
}

// versionCmd prints build information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	// No config or API key is needed to print the version
	PersistentPreRun: func(cmd *cobra.Command, args []string) {},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("onering %s (built %s)\n", version, buildTime)
	},
}

// pageOptions forwards only the pagination flags given on the command line
func pageOptions(cmd *cobra.Command) []theone.PageOption {
	var opts []theone.PageOption
	if cmd.Flags().Changed("limit") {
		opts = append(opts, theone.Limit(limit))
	}
	if cmd.Flags().Changed("page") {
		opts = append(opts, theone.Page(page))
	}
	if cmd.Flags().Changed("offset") {
		opts = append(opts, theone.Offset(offset))
	}
	return opts
}

func addPageFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&limit, "limit", "l", theone.DefaultLimit, "maximum number of results")
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&offset, "offset", 0, "number of results to skip")
}

func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	cmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
}

// getFilter compiles the filter expression to use, or returns nil when none was given
func getFilter() (filter.Filter, error) {
	// Priority: command line filter > preset
	expression := filterExpr
	if expression == "" && preset != "" {
		presetExpr, ok := cfg.Filter.Presets[strings.ToLower(preset)]
		if !ok {
			return nil, fmt.Errorf("preset '%s' not found in config", preset)
		}
		expression = presetExpr
	}

	if expression == "" {
		return nil, nil
	}

	logger.Debug().Str("filter", expression).Msg("Compiling filter")

	f, err := compiler.Compile(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}
	return f, nil
}

// printJSON writes v to the command output when --json is set and reports whether it did
func printJSON(cmd *cobra.Command, v any) (bool, error) {
	if !jsonOutput {
		return false, nil
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return true, fmt.Errorf("failed to encode output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return true, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
