package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/footprint/internal/footprint"
	"github.com/rshade/footprint/internal/greenops"
)

// Chart text.
const (
	ChartTitle     = "Carbon Footprint Comparison"
	ChartAxisLabel = "Annual CO₂ Emissions (kg)"
)

// Chart layout limits.
const (
	minBarWidth = 10
	maxBarWidth = 60
	// chartGutter is the space taken by the label column padding and the
	// value annotation next to each bar.
	chartGutter = 12
)

// barColors maps benchmark labels to their bar color.
//
//nolint:gochecknoglobals // Immutable lookup table.
var barColors = map[string]lipgloss.Color{
	footprint.LabelYou:           ColorYou,
	footprint.LabelUSAverage:     ColorUSAverage,
	footprint.LabelGlobalAverage: ColorGlobalAverage,
	footprint.LabelLowImpactGoal: ColorLowImpactGoal,
}

// BarColor returns the chart color for a benchmark label, muted for unknown labels.
func BarColor(label string) lipgloss.Color {
	if c, ok := barColors[label]; ok {
		return c
	}
	return ColorMuted
}

// ChartBarWidth picks the longest bar length that fits a terminal of the
// given width, clamped to [10, 60] and never wider than preferred.
func ChartBarWidth(terminalWidth, preferred int) int {
	labelWidth := len(footprint.LabelLowImpactGoal)
	w := terminalWidth - labelWidth - chartGutter
	if preferred > 0 {
		w = min(w, preferred)
	}
	return max(minBarWidth, min(w, maxBarWidth))
}

// BarLength scales value to a bar of at most width cells relative to maxValue.
// Non-positive values get an empty bar; any positive value gets at least one cell.
func BarLength(value, maxValue float64, width int) int {
	if value <= 0 || maxValue <= 0 || width <= 0 {
		return 0
	}
	n := int(math.Round(value / maxValue * float64(width)))
	return max(1, min(n, width))
}

// RenderBarChart draws table as a horizontal bar chart, one row per entry in
// table order, each bar annotated with its value in whole kilograms. When
// styled is false no ANSI sequences are emitted.
func RenderBarChart(table footprint.BenchmarkTable, barWidth int, styled bool) string {
	var sb strings.Builder

	title := ChartTitle
	axis := ChartAxisLabel
	if styled {
		title = HeaderStyle.Render(title)
		axis = MutedStyle.Render(axis)
	}
	sb.WriteString(title)
	sb.WriteString("\n")
	sb.WriteString(axis)
	sb.WriteString("\n\n")

	labelWidth := 0
	for _, e := range table {
		labelWidth = max(labelWidth, lipgloss.Width(e.Label))
	}

	highest := table.Max()
	for _, e := range table {
		label := fmt.Sprintf("%-*s", labelWidth, e.Label)
		bar := strings.Repeat(IconBar, BarLength(e.KgCO2, highest, barWidth))
		value := greenops.FormatKg(e.KgCO2)

		if styled {
			label = LabelStyle.Render(label)
			bar = lipgloss.NewStyle().Foreground(BarColor(e.Label)).Render(bar)
			value = ValueStyle.Render(value)
		}

		sb.WriteString(label)
		sb.WriteString("  ")
		sb.WriteString(bar)
		sb.WriteString(" ")
		sb.WriteString(value)
		sb.WriteString("\n")
	}

	return sb.String()
}
