package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/layoutsmith/layoutsmith/internal/server"
	"github.com/layoutsmith/layoutsmith/pkg/cache"
	"github.com/layoutsmith/layoutsmith/pkg/config"
)

// serveCommand creates the serve command exposing synthesis over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr       string
		configPath string
		noCache    bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the synthesis HTTP API",
		Long: `Run the synthesis HTTP API.

Exposes POST /v1/synthesize, which accepts {"example": "..."} and returns
the generated SwiftUI code as JSON, plus GET /healthz for liveness checks.

Settings are read from the config file (default ~/.config/layoutsmith/config.toml)
and may be overridden with flags.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, configPath, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	cmd.Flags().StringVar(&configPath, "config", "", "config file path")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable response caching")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr, configPath string, noCache bool) error {
	cfg, err := c.loadConfig(configPath)
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.Serve.Addr = addr
	}

	store, err := c.serveCache(ctx, cfg, noCache)
	if err != nil {
		return err
	}
	defer store.Close()

	srv := server.New(server.Options{
		Cache:    store,
		CacheTTL: cfg.Serve.TTL(),
		Logger:   c.Logger,
	})

	httpSrv := &http.Server{
		Addr:              cfg.Serve.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpSrv.ListenAndServe()
	}()

	c.Logger.Info("listening", "addr", cfg.Serve.Addr)
	printInfo("Serving synthesis API on %s", cfg.Serve.Addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		c.Logger.Info("server stopped")
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	}
}

// loadConfig resolves the config path and loads it, falling back to defaults.
func (c *CLI) loadConfig(path string) (*config.Config, error) {
	if path == "" {
		resolved, err := config.DefaultPath()
		if err != nil {
			c.Logger.Warn("cannot resolve config path, using defaults", "error", err)
			return config.Default(), nil
		}
		path = resolved
	}
	return config.Load(path)
}

// serveCache builds the cache backend named by the config.
func (c *CLI) serveCache(ctx context.Context, cfg *config.Config, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	switch cfg.Serve.Cache {
	case config.CacheNone:
		return cache.NewNullCache(), nil
	case config.CacheRedis:
		return cache.NewRedisCache(ctx, cfg.Serve.RedisAddr)
	default:
		return newCache(false)
	}
}
