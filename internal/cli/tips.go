package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/footprint/internal/engine"
	"github.com/rshade/footprint/internal/footprint"
	"github.com/rshade/footprint/internal/tui"
)

// NewTipsCmd creates the "tips" command, which prints the emission
// reduction tips.
func NewTipsCmd() *cobra.Command {
	var (
		output string
		plain  bool
	)

	cmd := &cobra.Command{
		Use:   "tips",
		Short: "Show tips to reduce your emissions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := resolveOutputFormat(output)
			if err != nil {
				return err
			}
			tips := footprint.Tips()
			if format == engine.OutputTable && tui.DetectOutputMode(false, false, plain) != tui.OutputModePlain {
				_, err = fmt.Fprint(cmd.OutOrStdout(), tui.RenderTips(tips))
				return err
			}
			return engine.RenderTips(cmd.OutOrStdout(), format, tips)
		},
	}

	cmd.Flags().StringVar(&output, "output", "", "Output format (table, json, ndjson)")
	cmd.Flags().BoolVar(&plain, "plain", false, "Disable styled table output")

	return cmd
}
