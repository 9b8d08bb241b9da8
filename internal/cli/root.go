package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/footprint/internal/config"
	"github.com/rshade/footprint/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// baseLogger is the configured logger without a component field, for
// long-running components that tag their own output.
var baseLogger zerolog.Logger //nolint:gochecknoglobals // Set once per command in setupLogging

// NewRootCmd creates the root Cobra command for the footprint CLI.
// It loads .env and configuration, wires up logging and tracing, and adds
// the calculate, benchmarks, tips, serve and config subcommands.
func NewRootCmd(ver string) *cobra.Command {
	return NewRootCmdWithArgs(ver, os.LookupEnv)
}

// NewRootCmdWithArgs creates the root command with an explicit env lookup for testability.
func NewRootCmdWithArgs(ver string, lookupEnv func(string) (string, bool)) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:          "footprint",
		Short:        "Household carbon footprint calculator",
		Long:         "footprint: Estimate a household's annual CO2 emissions and compare it with reference averages",
		Version:      ver,
		Example:      rootCmdExample,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.LoadDotEnv(); err != nil {
				cmd.PrintErrf("Warning: could not load .env: %v\n", err)
			}

			if err := applyConfigOverlay(cmd, lookupEnv); err != nil {
				return err
			}

			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "",
		"overlay config file merged on top of ~/.footprint/config.yaml (env: "+config.EnvConfig+")")
	cmd.AddCommand(
		NewCalculateCmd(), NewBenchmarksCmd(), NewTipsCmd(), NewServeCmd(), newConfigCmd(),
	)

	return cmd
}

// applyConfigOverlay shallow-merges the --config (or FOOTPRINT_CONFIG) file
// onto the global config, then re-applies environment overrides so env
// vars keep precedence over file values.
func applyConfigOverlay(cmd *cobra.Command, lookupEnv func(string) (string, bool)) error {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path, _ = lookupEnv(config.EnvConfig)
	}
	if path == "" {
		return nil
	}

	cfg := config.GetGlobalConfig()
	if err := config.ShallowMergeYAML(cfg, path); err != nil {
		return fmt.Errorf("loading config overlay: %w", err)
	}
	cfg.ApplyEnv()
	return nil
}

const rootCmdExample = `  # Estimate with the default answers
  footprint calculate

  # Answer the survey interactively
  footprint calculate --interactive

  # Estimate from a survey file with one answer changed
  footprint calculate --survey household.yaml --set diet=vegan

  # Machine-readable output
  footprint calculate --miles 4000 --flights 0 --output json

  # Show the reference benchmarks
  footprint benchmarks

  # Serve the HTTP API
  footprint serve --addr :8080

  # Initialize configuration
  footprint config init`

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigShowCmd(), NewConfigValidateCmd())
	return cmd
}
