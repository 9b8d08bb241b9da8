package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/footprint/internal/config"
	"github.com/rshade/footprint/internal/tui"
)

// NewConfigInitCmd creates the config init command for initializing configuration.
func NewConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates ~/.footprint/config.yaml (or $FOOTPRINT_HOME/config.yaml) holding
the default output, logging, server and emission factor settings.

When the file exists, a terminal session is asked to confirm the overwrite;
otherwise --force is required.`,
		Example: `  # Create configuration
  footprint config init

  # Create configuration, overwriting existing
  footprint config init --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(cmd, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")

	return cmd
}

// initConfig writes the built-in defaults to the config path.
func initConfig(cmd *cobra.Command, force bool) error {
	path, err := config.DefaultConfigPath()
	if err != nil {
		return err
	}
	cfg := config.Default()
	cfg.SetConfigPath(path)

	if !force {
		_, statErr := os.Stat(cfg.ConfigPath())
		switch {
		case statErr == nil:
			if !tui.IsTTY() {
				return errors.New("configuration file already exists, use --force to overwrite")
			}
			if res := ConfirmOverwrite(cmd.OutOrStdout(), cmd.InOrStdin(), cfg.ConfigPath()); !res.Accepted {
				cmd.Println("Aborted.")
				return nil
			}
		case !os.IsNotExist(statErr):
			return fmt.Errorf("cannot access config path %s: %w", cfg.ConfigPath(), statErr)
		}
	}

	if err = cfg.Save(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	cmd.Printf("Configuration initialized successfully\n")
	cmd.Printf("Configuration file: %s\n", cfg.ConfigPath())

	return nil
}
