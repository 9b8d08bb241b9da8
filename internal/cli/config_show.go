package cli

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rshade/footprint/internal/config"
)

// NewConfigShowCmd creates the config show command, which prints the
// effective configuration after file, overlay and environment resolution.
func NewConfigShowCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Example: `  footprint config show
  footprint config show --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetGlobalConfig()
			out := cmd.OutOrStdout()

			switch output {
			case "", "yaml":
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(cfg); err != nil {
					return fmt.Errorf("encoding config: %w", err)
				}
				return enc.Close()
			case config.OutputFormatJSON:
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(cfg)
			default:
				return fmt.Errorf("unsupported output format: %s (use yaml or json)", output)
			}
		},
	}

	cmd.Flags().StringVar(&output, "output", "", "Output format (yaml, json)")

	return cmd
}
