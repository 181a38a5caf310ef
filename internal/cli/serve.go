package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/svg2pdf/internal/server"
	"github.com/matzehuels/svg2pdf/pkg/config"
	"github.com/matzehuels/svg2pdf/pkg/render"
)

// newServeCmd creates the serve command, the HTTP conversion surface.
func newServeCmd(cfg config.Config) *cobra.Command {
	var (
		addr        string
		backendName string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP conversion server",
		Long: `Run an HTTP server that converts uploaded SVG files to PDF.

Endpoints:
  POST /convert   multipart upload (field "file", optional "dpi") → PDF
  GET  /healthz   liveness probe

The server shuts down gracefully on SIGINT/SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), addr, backendName, cfg)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", cfg.Serve.Addr, "listen address")
	cmd.Flags().StringVar(&backendName, "backend", cfg.Backend,
		"rendering backend: rsvg, inkscape, canvas (default auto-detect)")

	return cmd
}

// runServe starts the HTTP server and blocks until ctx is cancelled or the
// listener fails.
func runServe(ctx context.Context, addr, backendName string, cfg config.Config) error {
	logger := loggerFromContext(ctx)

	backend, err := render.Detect(backendName)
	if err != nil {
		return err
	}
	logger.Infof("Using %s backend", backend.Name())

	srv := server.New(backend, logger, cfg.DPI)
	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpSrv.ListenAndServe()
	}()
	logger.Infof("Listening on %s", addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		logger.Info("Server stopped")
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
