package cli

import (
	"errors"

	"github.com/rshade/footprint/internal/footprint"
)

// ExitCodeInvalidInput is returned when survey answers are rejected.
const ExitCodeInvalidInput = 2

// InputExitError marks a failure caused by invalid survey input so main can
// exit with ExitCodeInvalidInput instead of the generic 1.
type InputExitError struct {
	Err error
}

func (e *InputExitError) Error() string {
	return e.Err.Error()
}

func (e *InputExitError) Unwrap() error {
	return e.Err
}

// ExitCode returns the process exit code for this error.
func (e *InputExitError) ExitCode() int {
	return ExitCodeInvalidInput
}

// wrapInputError converts errors wrapping footprint.ErrInvalidInput into
// an InputExitError and passes everything else through.
func wrapInputError(err error) error {
	if err == nil {
		return nil
	}
	var inputErr *InputExitError
	if errors.As(err, &inputErr) {
		return err
	}
	if errors.Is(err, footprint.ErrInvalidInput) {
		return &InputExitError{Err: err}
	}
	return err
}
