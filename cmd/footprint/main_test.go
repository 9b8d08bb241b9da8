package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/footprint/internal/cli"
	"github.com/rshade/footprint/internal/footprint"
	"github.com/rshade/footprint/pkg/version"
)

func TestMainComponents(t *testing.T) {
	t.Run("version available", func(t *testing.T) {
		assert.NotEmpty(t, version.GetVersion())
	})

	t.Run("cli root command", func(t *testing.T) {
		root := cli.NewRootCmd(version.GetVersion())
		assert.NotNil(t, root)
		assert.Equal(t, "footprint", root.Use)

		names := make([]string, 0, len(root.Commands()))
		for _, c := range root.Commands() {
			names = append(names, c.Name())
		}
		assert.Subset(t, names, []string{"calculate", "benchmarks", "tips", "serve", "config"})
	})
}

func TestExtractExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error returns 0", nil, 0},
		{"input error returns 2", &cli.InputExitError{Err: footprint.ErrInvalidInput}, cli.ExitCodeInvalidInput},
		{
			name: "wrapped input error",
			err:  fmt.Errorf("calculate: %w", &cli.InputExitError{Err: footprint.ErrInvalidInput}),
			want: cli.ExitCodeInvalidInput,
		},
		{
			name: "joined input error",
			err:  errors.Join(errors.New("outer"), &cli.InputExitError{Err: footprint.ErrInvalidInput}),
			want: cli.ExitCodeInvalidInput,
		},
		{"bare sentinel is a generic failure", footprint.ErrInvalidInput, 1},
		{"generic error returns 1", errors.New("generic error"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractExitCode(tt.err))
		})
	}
}
