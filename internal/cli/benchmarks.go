package cli

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/rshade/footprint/internal/config"
	"github.com/rshade/footprint/internal/engine"
	"github.com/rshade/footprint/internal/footprint"
	"github.com/rshade/footprint/internal/tui"
)

// NewBenchmarksCmd creates the "benchmarks" command, which prints the
// reference footprints. With --total the given footprint is charted as the
// "You" row in front of them.
func NewBenchmarksCmd() *cobra.Command {
	var (
		output string
		plain  bool
		total  float64
	)

	cmd := &cobra.Command{
		Use:   "benchmarks",
		Short: "Show the reference annual footprints",
		Example: `  # Reference rows only
  footprint benchmarks

  # Compare a known total
  footprint benchmarks --total 9500

  # Machine-readable
  footprint benchmarks --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var rows footprint.BenchmarkTable
			if cmd.Flags().Changed("total") {
				if total < 0 || math.IsNaN(total) || math.IsInf(total, 0) {
					return wrapInputError(fmt.Errorf("%w: total must be a finite non-negative number",
						footprint.ErrInvalidInput))
				}
				rows = footprint.NewBenchmarkTable(footprint.EmissionsReport{TotalKgCO2: total})
			} else {
				rows = footprint.ReferenceBenchmarks()
			}
			return renderBenchmarksOutput(cmd, output, plain, rows)
		},
	}

	cmd.Flags().StringVar(&output, "output", "", "Output format (table, json, ndjson)")
	cmd.Flags().BoolVar(&plain, "plain", false, "Disable styled table output")
	cmd.Flags().Float64Var(&total, "total", 0, "Your annual footprint in kg CO2 to chart alongside")

	return cmd
}

func renderBenchmarksOutput(cmd *cobra.Command, output string, plain bool, rows footprint.BenchmarkTable) error {
	format, err := resolveOutputFormat(output)
	if err != nil {
		return err
	}
	if format != engine.OutputTable {
		return engine.RenderBenchmarks(cmd.OutOrStdout(), format, rows)
	}

	if tui.DetectOutputMode(false, false, plain) == tui.OutputModePlain {
		return engine.RenderBenchmarks(cmd.OutOrStdout(), format, rows)
	}

	barWidth := tui.ChartBarWidth(tui.TerminalWidth(), config.GetGlobalConfig().Output.ChartWidth)
	_, err = fmt.Fprint(cmd.OutOrStdout(), tui.RenderBarChart(rows, barWidth, true))
	return err
}
