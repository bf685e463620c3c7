package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	config string // path to TOML config file
	dir    string // site directory to serve
	addr   string // listen address
}

// newServeCmd creates the serve command, which serves a generated site
// directory over HTTP for local browsing. The search page relies on
// same-origin fetches, so opening index.html from the filesystem is not
// enough in every browser.
func newServeCmd() *cobra.Command {
	opts := serveOpts{addr: "localhost:8080"}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a generated site over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "TOML config file (default rfsee.toml if present)")
	cmd.Flags().StringVarP(&opts.dir, "dir", "d", "", "site directory (default: out from config)")
	cmd.Flags().StringVarP(&opts.addr, "addr", "a", opts.addr, "listen address")

	return cmd
}

func runServe(ctx context.Context, opts *serveOpts) error {
	logger := loggerFromContext(ctx)

	cfg, err := loadConfig(opts.config)
	if err != nil {
		return err
	}
	dir := orString(opts.dir, cfg.Out)
	if err := requirePath("--dir", dir); err != nil {
		return err
	}
	if _, err := os.Stat(dir); err != nil {
		return err
	}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(requestLogger(ctx))
	r.Use(middleware.Recoverer)
	r.Handle("/*", http.FileServer(http.Dir(dir)))

	srv := &http.Server{
		Addr:              opts.addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	printInfo("Serving %s on http://%s", dir, opts.addr)
	printDetail("press Ctrl+C to stop")

	select {
	case <-ctx.Done():
		logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// requestLogger logs each request at debug level through the context logger.
func requestLogger(ctx context.Context) func(http.Handler) http.Handler {
	logger := loggerFromContext(ctx)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Debug("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"took", time.Since(start).Round(time.Microsecond),
			)
		})
	}
}
