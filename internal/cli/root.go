// internal/cli/root.go
//
// Command-line entry point.
// Responsibilities:
//   - Root command with the persistent --config, --log-level and --pretty flags.
//   - Load configuration and set up zerolog before any subcommand runs.
//   - Register serve, build-matrix, suggest and simulate.

package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle-solver/internal/config"
)

// app is the state shared by all subcommands.
type app struct {
	configPath string
	logLevel   string
	pretty     bool

	cfg config.Config
}

// NewRootCmd builds the full command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:               "wordle-solver",
		Short:             "Suggests the next Wordle guess from the feedback seen so far",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	f := root.PersistentFlags()
	f.StringVar(&a.configPath, "config", "", "YAML config file (default $WORDLE_CONFIG)")
	f.StringVar(&a.logLevel, "log-level", "", "log level: trace, debug, info, warn, error (default $LOG_LEVEL or info)")
	f.BoolVar(&a.pretty, "pretty", false, "human-readable console logs")

	root.AddCommand(
		newServeCmd(a),
		newBuildMatrixCmd(a),
		newSuggestCmd(a),
		newSimulateCmd(a),
	)
	return root
}

// Execute runs the command tree against os.Args.
func Execute() error {
	return NewRootCmd().ExecuteContext(context.Background())
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("log level %q: %w", cfg.LogLevel, err)
	}
	zerolog.SetGlobalLevel(lvl)
	if a.pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	a.cfg = cfg
	return nil
}
