package logging

import (
	"context"
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

type contextKey string

const traceIDKey contextKey = "trace_id"

// TraceIDField is the log field carrying the trace ID.
const TraceIDField = "trace_id"

// NewTraceID returns a fresh, time-ordered ULID string.
func NewTraceID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String()
}

// ContextWithTraceID stores id in ctx.
func ContextWithTraceID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, traceIDKey, id)
}

// TraceIDFromContext returns the trace ID stored in ctx, or "".
func TraceIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(traceIDKey).(string)
	return id
}

// GetOrGenerateTraceID returns the trace ID from ctx or a new one.
func GetOrGenerateTraceID(ctx context.Context) string {
	if id := TraceIDFromContext(ctx); id != "" {
		return id
	}
	return NewTraceID()
}

// FromContext returns the logger attached to ctx, tagged with the trace ID
// when one is present. Without a logger it returns zerolog's disabled logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx == nil {
		l := zerolog.Nop()
		return &l
	}
	logger := zerolog.Ctx(ctx)
	if id := TraceIDFromContext(ctx); id != "" && logger.GetLevel() != zerolog.Disabled {
		l := logger.With().Str(TraceIDField, id).Logger()
		return &l
	}
	return logger
}
