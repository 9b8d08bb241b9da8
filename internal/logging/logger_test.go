package logging

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Level: "warn", Format: FormatJSON}, &buf)

	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewLogger_InvalidLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Level: "loud"}, &buf)

	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
}

func TestNewLoggerWithPath_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "footprint.log")
	result := NewLoggerWithPath(Config{Level: "info", Format: FormatJSON, Output: OutputFile, File: path})
	t.Cleanup(func() { _ = result.Close() })

	require.True(t, result.UsingFile)
	assert.False(t, result.FallbackUsed)
	assert.Equal(t, path, result.FilePath)

	result.Logger.Info().Msg("written to file")
	require.NoError(t, result.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
}

func TestNewLoggerWithPath_FallbackWithoutFile(t *testing.T) {
	result := NewLoggerWithPath(Config{Output: OutputFile})

	assert.False(t, result.UsingFile)
	assert.True(t, result.FallbackUsed)
	assert.NotEmpty(t, result.FallbackReason)
	assert.NoError(t, result.Close())
}

func TestTraceIDContext(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, TraceIDFromContext(ctx))

	generated := GetOrGenerateTraceID(ctx)
	_, err := ulid.Parse(generated)
	require.NoError(t, err)

	ctx = ContextWithTraceID(ctx, generated)
	assert.Equal(t, generated, GetOrGenerateTraceID(ctx))
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Level: "debug", Format: FormatJSON}, &buf)

	ctx := logger.WithContext(context.Background())
	ctx = ContextWithTraceID(ctx, "01HTRACE")

	FromContext(ctx).Info().Msg("hello")
	assert.Contains(t, buf.String(), `"trace_id":"01HTRACE"`)

	// No logger attached: disabled, never panics.
	assert.NotPanics(t, func() {
		FromContext(context.Background()).Info().Msg("dropped")
	})
}

func TestComponentLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := ComponentLogger(NewLogger(Config{Format: FormatJSON}, &buf), "cli")

	logger.Info().Msg("tagged")
	assert.Contains(t, buf.String(), `"component":"cli"`)
}
