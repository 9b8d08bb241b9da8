package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/footprint/internal/engine"
	"github.com/rshade/footprint/internal/greenops"
)

// Section headings.
const (
	AppTitle        = IconGlobe + " Carbon Footprint Calculator"
	CompareHeading  = "How Do You Compare?"
	BreakdownHeader = "BREAKDOWN"
)

// Summary box width bounds.
const (
	minBoxWidth = 40
	maxBoxWidth = 80
)

// RenderReport renders result for a terminal of the given width: the
// summary box, the comparison chart, and the reduction tips. chartWidth is
// the preferred bar length; zero lets the terminal width decide.
func RenderReport(result *engine.Result, termWidth, chartWidth int) string {
	if result == nil {
		return ErrorStyle.Render("No result to display.") + "\n"
	}

	var sb strings.Builder

	sb.WriteString(RenderSummaryBox(result, termWidth))
	sb.WriteString("\n\n")

	sb.WriteString(HeaderStyle.Render(CompareHeading))
	sb.WriteString("\n\n")
	sb.WriteString(RenderBarChart(result.Benchmarks, ChartBarWidth(termWidth, chartWidth), true))
	sb.WriteString("\n")

	sb.WriteString(RenderTips(result.Tips))

	return sb.String()
}

// RenderSummaryBox renders the headline total, the category breakdown and
// the equivalency line inside a bordered box.
func RenderSummaryBox(result *engine.Result, termWidth int) string {
	var content strings.Builder

	content.WriteString(SuccessStyle.Render(strings.Replace(result.SummaryLine(), "CO2", "CO₂", 1)))
	content.WriteString("\n\n")

	content.WriteString(HeaderStyle.Render(BreakdownHeader))
	content.WriteString("\n")
	for _, line := range engine.BreakdownLines(result.Report.Breakdown) {
		content.WriteString(LabelStyle.Render(fmt.Sprintf("%-12s", line.Label+":")))
		content.WriteString(ValueStyle.Render(fmt.Sprintf("%12s", greenops.FormatFloat(line.KgCO2, result.Precision))))
		content.WriteString("\n")
	}

	if !result.Equivalency.IsEmpty {
		content.WriteString("\n")
		text := result.Equivalency.DisplayText
		if termWidth < lipgloss.Width(text)+BoxStyle.GetHorizontalFrameSize() {
			text = result.Equivalency.CompactText
		}
		content.WriteString(MutedStyle.Render(text))
	}

	boxWidth := max(minBoxWidth, min(termWidth, maxBoxWidth)-BoxStyle.GetHorizontalBorderSize())
	return BoxStyle.Width(boxWidth).Render(content.String())
}

// RenderTips renders the reduction tips as a bulleted list.
func RenderTips(tips []string) string {
	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render(engine.TipsHeading))
	sb.WriteString("\n")
	for _, tip := range tips {
		sb.WriteString(HighlightStyle.Render(IconBullet))
		sb.WriteString(" ")
		sb.WriteString(tip)
		sb.WriteString("\n")
	}
	return sb.String()
}
