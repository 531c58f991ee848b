package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/layoutsmith/layoutsmith/pkg/config"
)

func TestLoadConfigMissingFile(t *testing.T) {
	c := testCLI()

	cfg, err := c.loadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Serve.Addr != ":8080" {
		t.Errorf("Addr = %q, want default :8080", cfg.Serve.Addr)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	c := testCLI()

	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[serve]\naddr = \":4000\"\ncache = \"none\"\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := c.loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Serve.Addr != ":4000" {
		t.Errorf("Addr = %q, want :4000", cfg.Serve.Addr)
	}
	if cfg.Serve.Cache != config.CacheNone {
		t.Errorf("Cache = %q, want none", cfg.Serve.Cache)
	}
}

func TestServeCacheSelection(t *testing.T) {
	c := testCLI()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	tests := []struct {
		name    string
		backend string
		noCache bool
	}{
		{name: "none backend", backend: config.CacheNone},
		{name: "file backend", backend: config.CacheFile},
		{name: "no-cache flag wins", backend: config.CacheFile, noCache: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Serve.Cache = tt.backend

			store, err := c.serveCache(context.Background(), cfg, tt.noCache)
			if err != nil {
				t.Fatalf("serveCache: %v", err)
			}
			defer store.Close()

			if store == nil {
				t.Fatal("serveCache returned nil cache")
			}
		})
	}
}
