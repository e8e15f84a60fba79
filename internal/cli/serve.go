package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/sketchkit/sketch/pkg/cache"
	"github.com/sketchkit/sketch/pkg/server"
)

// newServeCmd creates the serve command for running the HTTP preview server.
func newServeCmd() *cobra.Command {
	var (
		addr      string
		redisAddr string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP scene preview server",
		Long: `Serve starts an HTTP server that accepts scene files (POST /scenes) and
renders them on demand (GET /scenes/{id}.svg, GET /scenes/{id}.png).
Scenes are held in memory only and are gone when the server stops.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), addr, redisAddr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8414", "listen address")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "redis address for a shared render cache (default: local file cache)")

	return cmd
}

// serveCache picks the render cache backend: redis when requested, otherwise
// the local file cache.
func serveCache(ctx context.Context, redisAddr string) (cache.Cache, error) {
	if redisAddr != "" {
		return cache.NewRedisCache(ctx, redisAddr)
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

func runServe(ctx context.Context, addr, redisAddr string) error {
	logger := loggerFromContext(ctx)

	c, err := serveCache(ctx, redisAddr)
	if err != nil {
		return err
	}
	defer c.Close()

	srv := &http.Server{
		Addr:    addr,
		Handler: server.NewHandler(logger, c),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
