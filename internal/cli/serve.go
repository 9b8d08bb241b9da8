package cli

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rshade/footprint/internal/config"
	"github.com/rshade/footprint/internal/engine"
	"github.com/rshade/footprint/internal/server"
)

// NewServeCmd creates the "serve" command, which exposes the calculator as
// a JSON HTTP API until interrupted.
func NewServeCmd() *cobra.Command {
	var (
		addr        string
		readTimeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator over HTTP",
		Long: `Serve the calculator as a JSON API.

  POST /api/v1/footprint        survey answers in, report, benchmarks and tips out
  POST /api/v1/footprint/batch  an array of surveys in, one result or error per survey out
  GET  /api/v1/benchmarks       the reference footprints
  GET  /healthz                 liveness probe`,
		Example: `  footprint serve --addr 127.0.0.1:8080`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetGlobalConfig()
			if !cmd.Flags().Changed("addr") {
				addr = cfg.Server.Addr
			}
			if !cmd.Flags().Changed("read-timeout") {
				readTimeout = cfg.Server.ReadTimeout
			}

			calc, err := cfg.Calculator()
			if err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			ln, err := net.Listen("tcp", addr)
			if err != nil {
				return fmt.Errorf("listening on %s: %w", addr, err)
			}

			srv := server.New(engine.New(calc), baseLogger, server.WithReadTimeout(readTimeout))

			cmd.Printf("Listening on http://%s\n", ln.Addr().String())
			return srv.Serve(ctx, ln)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", config.DefaultServerAddr, "Address to listen on")
	cmd.Flags().DurationVar(&readTimeout, "read-timeout", config.DefaultReadTimeout, "Request read timeout")

	return cmd
}
