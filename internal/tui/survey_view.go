package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/footprint/internal/greenops"
)

// Form text.
const (
	surveyIntro = "Answer a few questions about your lifestyle to estimate your annual carbon emissions."
	surveyHelp  = "↑/↓ move • ←/→ change option • enter next / calculate • esc quit"
)

// View renders the current view.
func (m *SurveyModel) View() string {
	if m.state != SurveyStateEditing {
		return ""
	}

	var sb strings.Builder

	sb.WriteString(HeaderStyle.Render(AppTitle))
	sb.WriteString("\n")
	sb.WriteString(MutedStyle.Render(surveyIntro))
	sb.WriteString("\n")

	section := ""
	for i, f := range m.fields {
		if f.Section != section {
			section = f.Section
			sb.WriteString("\n")
			sb.WriteString(HeaderStyle.Render(section))
			sb.WriteString("\n")
		}
		sb.WriteString(renderSurveyField(f, i == m.focused))
	}

	sb.WriteString("\n")
	sb.WriteString(m.renderRunningTotal())
	sb.WriteString("\n\n")
	sb.WriteString(MutedStyle.Render(surveyHelp))

	return lipgloss.NewStyle().MaxWidth(m.width).Render(sb.String())
}

// renderSurveyField renders one question and its current answer.
func renderSurveyField(f SurveyField, focused bool) string {
	var sb strings.Builder

	indicator := "  "
	questionStyle := LabelStyle
	if focused {
		indicator = IconArrowRight + " "
		questionStyle = HighlightStyle
	}

	sb.WriteString(indicator)
	sb.WriteString(questionStyle.Render(f.Question))
	sb.WriteString("\n    ")

	if f.kind == fieldChoice {
		sb.WriteString(renderChoice(f.options, f.choice, focused))
	} else {
		sb.WriteString(f.input.View())
	}
	sb.WriteString("\n")

	return sb.String()
}

// renderChoice renders an option picker as "‹ Vegetarian ›" when focused.
func renderChoice(options []string, choice int, focused bool) string {
	if !focused {
		return ValueStyle.Render(options[choice])
	}
	return MutedStyle.Render("‹ ") + HighlightStyle.Render(options[choice]) + MutedStyle.Render(" ›")
}

// renderRunningTotal renders the latest estimate or the current input error.
func (m *SurveyModel) renderRunningTotal() string {
	if m.err != nil {
		return ErrorStyle.Render("Error: " + m.err.Error())
	}
	if m.loading && m.result == nil {
		return MutedStyle.Render("Calculating...")
	}
	if m.result == nil {
		return ""
	}

	total := LabelStyle.Render("Estimated total: ") +
		ValueStyle.Render(greenops.FormatFloat(m.result.Report.TotalKgCO2, m.result.Precision)+" kg CO₂")
	if !m.result.Equivalency.IsEmpty {
		total += "  " + MutedStyle.Render(m.result.Equivalency.CompactText)
	}
	return total
}
