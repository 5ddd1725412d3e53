package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/pfrederiksen/nps-explorer/internal/cache"
	"github.com/pfrederiksen/nps-explorer/internal/config"
	"github.com/pfrederiksen/nps-explorer/internal/explorer"
	"github.com/pfrederiksen/nps-explorer/internal/logger"
	"github.com/pfrederiksen/nps-explorer/internal/places"
	"github.com/pfrederiksen/nps-explorer/internal/scraper"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagFormat  string
	flagVerbose bool
)

// app bundles the components every command needs
type app struct {
	cfg     *config.Config
	store   *cache.Store
	scraper *scraper.Scraper
	places  *places.Client
}

func newApp(cfg *config.Config) (*app, error) {
	store, err := cache.New(cfg.CacheDir)
	if err != nil {
		return nil, fmt.Errorf("initializing cache: %w", err)
	}

	sc, err := scraper.New(store, cfg.ScraperOptions())
	if err != nil {
		return nil, fmt.Errorf("initializing scraper: %w", err)
	}

	return &app{
		cfg:     cfg,
		store:   store,
		scraper: sc,
		places:  places.NewClient(cfg.MapQuestAPIKey, cfg.MapQuestBaseURL),
	}, nil
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg := config.Load()

	cmd := &cobra.Command{
		Use:   "nps-explorer",
		Short: "Browse National Park Service sites by state",
		Long: `An interactive explorer for the National Park Service site directory.
Pick a state to list its parks, monuments and historic sites, then pick a site
to see places nearby. Pages are cached on disk so repeated runs stay offline.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := logger.ParseLevel(cfg.LogLevel)
			if flagVerbose {
				level = logger.LevelDebug
			}
			logger.SetDefault(logger.New(level, cmd.ErrOrStderr()))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExplore(cmd, cfg)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&cfg.CacheDir, "cache-dir", cfg.CacheDir, "Directory for cached pages")
	flags.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "Site to scrape")
	flags.DurationVar(&cfg.DirectoryTTL, "directory-ttl", cfg.DirectoryTTL, "How long the saved state directory is reused")
	flags.BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	cmd.AddCommand(
		newStatesCmd(cfg),
		newSitesCmd(cfg),
		newNearbyCmd(cfg),
		newCacheCmd(cfg),
	)

	return cmd
}

// runExplore builds the directory and hands the terminal to an explorer session
func runExplore(cmd *cobra.Command, cfg *config.Config) error {
	a, err := newApp(cfg)
	if err != nil {
		return err
	}

	dir, err := a.scraper.BuildStateDirectory(cmd.Context())
	if err != nil {
		return fmt.Errorf("building state directory: %w", err)
	}

	session := explorer.NewSession(dir, a.scraper, a.places, cmd.OutOrStdout())
	return session.Run(cmd.Context(), cmd.InOrStdin())
}

func addFormatFlag(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
}

func parseFormat() (OutputFormat, error) {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return "", fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}
	return format, nil
}

// run executes cmd and, with --verbose, prints the metrics summary whether or not
// the command failed. Cobra skips post-run hooks after an error.
func run(cmd *cobra.Command) error {
	err := cmd.Execute()
	if flagVerbose {
		logger.DefaultMetrics().WriteSummary(cmd.ErrOrStderr())
	}
	return err
}

// Execute runs the CLI
func Execute() {
	if err := run(NewRootCmd()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
