package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/rshade/footprint/internal/logging"
)

// HeaderRequestID carries the request ID on requests and responses.
const HeaderRequestID = "X-Request-ID"

// maxRequestIDLen bounds client-supplied request IDs.
const maxRequestIDLen = 128

// withRequestID reuses a client-supplied X-Request-ID or generates a UUID,
// echoes it on the response, and stores it as the trace ID on the request
// context.
func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(HeaderRequestID)
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.New().String()
		}
		w.Header().Set(HeaderRequestID, id)

		ctx := logging.ContextWithTraceID(r.Context(), id)
		ctx = s.logger.WithContext(ctx)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// statusRecorder captures the response status for access logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// withAccessLog logs method, path, status and latency for every request.
func (s *Server) withAccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		logging.FromContext(r.Context()).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Str("latency", time.Since(start).String()).
			Msg("request handled")
	})
}

// jsonContentType sets the JSON content type on every response.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}
