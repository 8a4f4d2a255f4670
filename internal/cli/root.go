// Package cli is the dsakit command-line front end: a cobra command tree that
// parses input, calls the bst, dijkstra and coinchange packages and prints
// their results.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/dsakit/internal/config"
	"github.com/katalvlaran/dsakit/internal/logging"
)

// app carries per-invocation state shared by all subcommands.
type app struct {
	configPath string
	logLevel   string

	cfg   *config.Config
	log   zerolog.Logger
	runID string
}

// NewRootCmd builds the full command tree. Each call returns an independent tree.
func NewRootCmd() *cobra.Command {
	root, _ := newRootCmd()

	return root
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{log: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "dsakit",
		Short: "Binary search tree, Dijkstra and coin-change playground",
		Long: "dsakit drives three textbook algorithms from the command line:\n" +
			"a binary search tree, Dijkstra's shortest paths and minimum-coin change.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (yaml, json or toml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (overrides config)")

	root.AddCommand(newBSTCmd(a), newDijkstraCmd(a), newGraphCmd(a), newCoinsCmd(a))

	return root, a
}

// setup loads configuration and builds the run-scoped logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}

	logger, err := logging.Setup(cmd.ErrOrStderr(), cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}

	a.cfg = cfg
	a.runID = uuid.NewString()
	a.log = logger.With().Str("run_id", a.runID).Str("cmd", cmd.CommandPath()).Logger()
	a.log.Debug().Str("config", a.configPath).Msg("configuration loaded")

	return nil
}

// Execute runs the root command and exits with status 1 on failure.
func Execute() {
	root, a := newRootCmd()
	if err := root.Execute(); err != nil {
		a.logFailure(err, os.Stderr)
		os.Exit(1)
	}
}

// logFailure reports err through the run-scoped logger, or through a plain
// logger on fallback when the run failed before setup finished.
func (a *app) logFailure(err error, fallback io.Writer) {
	logger := a.log
	if a.cfg == nil {
		logger, _ = logging.New(fallback, "error")
	}
	logger.Error().Err(err).Msg("dsakit failed")
}
