package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"outlay/internal/config"
	"outlay/internal/engine"
	"outlay/internal/logging"
	"outlay/internal/store"
)

var (
	flagDB      string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "outlay",
	Short: "Personal expense tracker",
	Long:  "Track your expenses locally: record spending, break it down by category, and follow weekly and monthly trends.",
	RunE:  runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDB, "db", "d", "", "Path to the expense database (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
}

// openSource is the shared setup path used by all commands: config,
// logger, and an open record store.
func openSource() (*store.SQLite, config.Config, zerolog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, cfg, zerolog.Nop(), err
	}

	logger := logging.New(logging.Config{Verbose: flagVerbose})

	dbPath := flagDB
	if dbPath == "" {
		dbPath = cfg.General.DBPath
	}
	if dbPath == "" {
		dbPath = config.DefaultDBPath()
	}

	src, err := store.Open(dbPath, logger)
	if err != nil {
		return nil, cfg, logger, err
	}
	return src, cfg, logger, nil
}

// reportSkips logs records dropped by the engine's lenient-skip
// policy. The skips themselves are by design, not errors.
func reportSkips(logger zerolog.Logger, rep engine.SkipReport) {
	if rep.Total() == 0 {
		return
	}
	logger.Warn().
		Int("bad_timestamps", rep.BadTimestamps).
		Int("non_positive_amounts", rep.NonPositiveAmounts).
		Msg("records skipped during aggregation")
}
