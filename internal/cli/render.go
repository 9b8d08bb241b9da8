package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/footprint/internal/config"
	"github.com/rshade/footprint/internal/engine"
	"github.com/rshade/footprint/internal/tui"
)

// resolveOutputFormat returns the --output flag value, falling back to the
// configured default, and rejects unsupported formats.
func resolveOutputFormat(flagValue string) (engine.OutputFormat, error) {
	return engine.ParseOutputFormat(config.GetOutputFormat(flagValue))
}

// RenderFootprintOutput routes result to the appropriate renderer based on
// the output format and the detected terminal mode. JSON and NDJSON bypass
// styling entirely; table output is styled on terminals and plain otherwise.
func RenderFootprintOutput(cmd *cobra.Command, outputFormat string, plain bool, result *engine.Result) error {
	fmtType, err := resolveOutputFormat(outputFormat)
	if err != nil {
		return err
	}

	if fmtType == engine.OutputJSON || fmtType == engine.OutputNDJSON {
		return engine.RenderResult(cmd.OutOrStdout(), fmtType, result)
	}

	switch tui.DetectOutputMode(false, false, plain) {
	case tui.OutputModeStyled, tui.OutputModeInteractive:
		chartWidth := config.GetGlobalConfig().Output.ChartWidth
		_, err = fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(result, tui.TerminalWidth(), chartWidth))
		return err
	case tui.OutputModePlain:
		fallthrough
	default:
		return engine.RenderResult(cmd.OutOrStdout(), engine.OutputTable, result)
	}
}
