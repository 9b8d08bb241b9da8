// Command footprint estimates a household's annual carbon footprint.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rshade/footprint/internal/cli"
	"github.com/rshade/footprint/pkg/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(extractExitCode(err))
	}
}

func run() error {
	root := cli.NewRootCmd(version.GetVersion())
	root.SilenceErrors = true
	return root.Execute()
}

// extractExitCode maps err to a process exit code: 0 for nil,
// cli.ExitCodeInvalidInput for rejected survey answers, 1 otherwise.
func extractExitCode(err error) int {
	if err == nil {
		return 0
	}
	var inputErr *cli.InputExitError
	if errors.As(err, &inputErr) {
		return inputErr.ExitCode()
	}
	return 1
}
