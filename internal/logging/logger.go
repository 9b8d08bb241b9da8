// Package logging builds the zerolog loggers used across footprint and
// carries them, together with a per-invocation trace ID, through context.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Output destinations.
const (
	OutputStderr = "stderr"
	OutputStdout = "stdout"
	OutputFile   = "file"
)

// Formats.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
	FormatText    = "text"
)

// Config describes how a logger is built.
type Config struct {
	Level  string // trace, debug, info, warn, error
	Format string // json, console/text
	Output string // stderr, stdout, file
	File   string // path when Output is file
	Caller bool
}

// LogPathResult is the outcome of NewLoggerWithPath. When a file was
// requested but could not be opened the logger falls back to stderr and
// FallbackUsed reports why.
type LogPathResult struct {
	Logger         zerolog.Logger
	UsingFile      bool
	FilePath       string
	FallbackUsed   bool
	FallbackReason string

	file *os.File
}

// Close releases the log file, if one was opened.
func (r *LogPathResult) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// NewLogger builds a logger writing to w.
func NewLogger(cfg Config, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.Level)))
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}

	out := w
	switch strings.ToLower(cfg.Format) {
	case FormatConsole, FormatText:
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	ctx := zerolog.New(out).Level(lvl).With().Timestamp()
	if cfg.Caller {
		ctx = ctx.Caller()
	}
	return ctx.Logger()
}

// NewLoggerWithPath builds a logger from cfg, opening the log file when
// Output is "file".
func NewLoggerWithPath(cfg Config) LogPathResult {
	switch cfg.Output {
	case OutputFile:
		if cfg.File == "" {
			return LogPathResult{
				Logger:         NewLogger(cfg, os.Stderr),
				FallbackUsed:   true,
				FallbackReason: "no log file configured",
			}
		}
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o750); err != nil {
			return LogPathResult{
				Logger:         NewLogger(cfg, os.Stderr),
				FallbackUsed:   true,
				FallbackReason: err.Error(),
			}
		}
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return LogPathResult{
				Logger:         NewLogger(cfg, os.Stderr),
				FallbackUsed:   true,
				FallbackReason: err.Error(),
			}
		}
		return LogPathResult{
			Logger:    NewLogger(cfg, f),
			UsingFile: true,
			FilePath:  cfg.File,
			file:      f,
		}
	case OutputStdout:
		return LogPathResult{Logger: NewLogger(cfg, os.Stdout)}
	default:
		return LogPathResult{Logger: NewLogger(cfg, os.Stderr)}
	}
}

// ComponentLogger returns a child logger tagged with the component name.
func ComponentLogger(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}

// PrintLogPathMessage tells the user where logs are going.
func PrintLogPathMessage(w io.Writer, path string) {
	_, _ = fmt.Fprintf(w, "Logging to %s\n", path)
}

// PrintFallbackWarning tells the user the log file could not be used.
func PrintFallbackWarning(w io.Writer, reason string) {
	_, _ = fmt.Fprintf(w, "Warning: could not open log file (%s), logging to stderr\n", reason)
}
