// Package server exposes the footprint engine over HTTP.
//
// Routes:
//
//	POST /api/v1/footprint        survey JSON in, report with benchmarks, tips and equivalencies out
//	POST /api/v1/footprint/batch  JSON array of surveys in, one result or error per survey out
//	GET  /api/v1/benchmarks       the fixed reference benchmarks
//	GET  /healthz                 liveness probe
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/rshade/footprint/internal/engine"
)

// Route paths.
const (
	PathFootprint      = "/api/v1/footprint"
	PathFootprintBatch = "/api/v1/footprint/batch"
	PathBenchmarks     = "/api/v1/benchmarks"
	PathHealth         = "/healthz"
)

// Server limits.
const (
	maxBodyBytes      = 64 << 10
	maxBatchBodyBytes = 4 << 20
	shutdownTimeout   = 10 * time.Second
	defaultTimeout    = 5 * time.Second
)

// Server serves footprint estimates over HTTP.
type Server struct {
	engine      *engine.Engine
	logger      zerolog.Logger
	readTimeout time.Duration
}

// Option configures a Server.
type Option func(*Server)

// WithReadTimeout sets the request read timeout.
func WithReadTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.readTimeout = d
		}
	}
}

// New returns a Server backed by eng.
func New(eng *engine.Engine, logger zerolog.Logger, opts ...Option) *Server {
	s := &Server{
		engine:      eng,
		logger:      logger.With().Str("component", "server").Logger(),
		readTimeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the routed handler with request ID and access logging
// middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(PathFootprint, s.handleFootprint)
	mux.HandleFunc(PathFootprintBatch, s.handleFootprintBatch)
	mux.HandleFunc(PathBenchmarks, s.handleBenchmarks)
	mux.HandleFunc(PathHealth, s.handleHealth)
	mux.HandleFunc("/", handleNotFound)

	return s.withRequestID(s.withAccessLog(jsonContentType(mux)))
}

// ListenAndServe listens on addr and serves until ctx is cancelled, then
// shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadTimeout:       s.readTimeout,
		ReadHeaderTimeout: s.readTimeout,
		BaseContext:       func(net.Listener) context.Context { return s.logger.WithContext(ctx) },
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info().Str("addr", ln.Addr().String()).Msg("server listening")
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		s.logger.Info().Msg("server shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
