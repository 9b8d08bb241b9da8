package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectOutputMode_Overrides(t *testing.T) {
	assert.Equal(t, OutputModePlain, DetectOutputMode(false, false, true))
	assert.Equal(t, OutputModePlain, DetectOutputMode(true, true, false))

	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, OutputModePlain, DetectOutputMode(false, false, false))
}

func TestDetectOutputMode_NotATerminal(t *testing.T) {
	// go test runs with stdout redirected.
	if IsTTY() {
		t.Skip("stdout is a terminal")
	}
	assert.Equal(t, OutputModePlain, DetectOutputMode(false, false, false))
	assert.Equal(t, OutputModeStyled, DetectOutputMode(true, false, false))
}

func TestTerminalWidth_Fallback(t *testing.T) {
	if IsTTY() {
		t.Skip("stdout is a terminal")
	}
	assert.Equal(t, defaultTerminalWidth, TerminalWidth())
}

func TestOutputMode_String(t *testing.T) {
	assert.Equal(t, "plain", OutputModePlain.String())
	assert.Equal(t, "styled", OutputModeStyled.String())
	assert.Equal(t, "interactive", OutputModeInteractive.String())
	assert.Equal(t, "unknown", OutputMode(9).String())
}
