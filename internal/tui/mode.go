package tui

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// OutputMode selects how results are rendered.
type OutputMode int

const (
	// OutputModePlain is uncolored text, used for pipes and dumb terminals.
	OutputModePlain OutputMode = iota
	// OutputModeStyled is lipgloss-styled static output.
	OutputModeStyled
	// OutputModeInteractive means stdin and stdout are both terminals, so a
	// Bubble Tea program can run.
	OutputModeInteractive
)

// String returns the mode name.
func (m OutputMode) String() string {
	switch m {
	case OutputModePlain:
		return "plain"
	case OutputModeStyled:
		return "styled"
	case OutputModeInteractive:
		return "interactive"
	default:
		return "unknown"
	}
}

// defaultTerminalWidth is used when the terminal size cannot be queried.
const defaultTerminalWidth = 80

// IsTTY reports whether stdout is a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// isStdinTTY reports whether stdin is a terminal.
func isStdinTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// DetectOutputMode picks the richest mode the environment supports.
// plain and noColor force OutputModePlain; forceColor yields at least
// OutputModeStyled even when stdout is not a terminal. NO_COLOR and
// TERM=dumb are honored.
func DetectOutputMode(forceColor, noColor, plain bool) OutputMode {
	if plain || noColor {
		return OutputModePlain
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok && !forceColor {
		return OutputModePlain
	}
	if strings.EqualFold(os.Getenv("TERM"), "dumb") && !forceColor {
		return OutputModePlain
	}

	if !IsTTY() {
		if forceColor {
			return OutputModeStyled
		}
		return OutputModePlain
	}
	if isStdinTTY() && os.Getenv("CI") == "" {
		return OutputModeInteractive
	}
	return OutputModeStyled
}

// TerminalWidth returns the width of stdout in columns, or 80 when unknown.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultTerminalWidth
	}
	return width
}
