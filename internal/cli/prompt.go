package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// PromptResult contains the result of a user prompt interaction.
type PromptResult struct {
	// Accepted is true if the user accepted the prompt (typed "y" or "yes")
	Accepted bool
	// Cancelled is true if reading input failed
	Cancelled bool
}

// ConfirmOverwrite asks whether the existing file at path should be replaced.
//
// The prompt defaults to "No" when the user presses Enter without input or
// closes stdin. Valid inputs: "y", "yes" in any case; anything else declines.
func ConfirmOverwrite(writer io.Writer, reader io.Reader, path string) PromptResult {
	fmt.Fprintf(writer, "Configuration file %s already exists.\n", path)
	fmt.Fprint(writer, "? Overwrite it with the defaults? [y/N] ")

	scanner := bufio.NewScanner(reader)
	if !scanner.Scan() {
		if scanner.Err() != nil {
			return PromptResult{Cancelled: true}
		}
		// EOF without error (Ctrl+D)
		return PromptResult{Accepted: false}
	}

	switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
	case "y", "yes":
		return PromptResult{Accepted: true}
	default:
		return PromptResult{Accepted: false}
	}
}
