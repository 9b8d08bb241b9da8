// Package tui renders footprint reports for the terminal: a lipgloss bar
// chart comparing the household total with reference averages, a summary
// box, reduction tips, and an interactive Bubble Tea survey form.
package tui

import "github.com/charmbracelet/lipgloss"

// Palette.
const (
	ColorHeader    = lipgloss.Color("86")  // cyan
	ColorLabel     = lipgloss.Color("245") // light gray
	ColorValue     = lipgloss.Color("255") // white
	ColorBorder    = lipgloss.Color("62")  // purple
	ColorOK        = lipgloss.Color("42")  // green
	ColorWarning   = lipgloss.Color("214") // orange
	ColorCritical  = lipgloss.Color("196") // red
	ColorMuted     = lipgloss.Color("241") // dark gray
	ColorHighlight = lipgloss.Color("229") // pale yellow
)

// Benchmark bar colors, one per BenchmarkTable row.
const (
	ColorYou           = lipgloss.Color("34")  // green
	ColorUSAverage     = lipgloss.Color("160") // red
	ColorGlobalAverage = lipgloss.Color("33")  // blue
	ColorLowImpactGoal = lipgloss.Color("246") // gray
)

// Glyphs.
const (
	IconBullet     = "•"
	IconArrowRight = "→"
	IconBar        = "█"
	IconCursor     = "▌"
	IconGlobe      = "🌍"
)

// Shared styles.
//
//nolint:gochecknoglobals // lipgloss styles are immutable values shared by all renderers.
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHeader)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorLabel)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorValue).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorCritical).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorOK).
			Bold(true)

	HighlightStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)
)
