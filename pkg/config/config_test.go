package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Serve.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", cfg.Serve.Addr)
	}
	if cfg.Serve.Cache != CacheFile {
		t.Errorf("Cache = %q, want file", cfg.Serve.Cache)
	}
	if cfg.Serve.TTL() != 24*time.Hour {
		t.Errorf("TTL = %v, want 24h", cfg.Serve.TTL())
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[serve]
addr = ":9090"
cache = "redis"
redis_addr = "localhost:6379"
cache_ttl = "90m"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Serve.Addr != ":9090" {
		t.Errorf("Addr = %q, want :9090", cfg.Serve.Addr)
	}
	if cfg.Serve.Cache != CacheRedis {
		t.Errorf("Cache = %q, want redis", cfg.Serve.Cache)
	}
	if cfg.Serve.RedisAddr != "localhost:6379" {
		t.Errorf("RedisAddr = %q", cfg.Serve.RedisAddr)
	}
	if cfg.Serve.TTL() != 90*time.Minute {
		t.Errorf("TTL = %v, want 90m", cfg.Serve.TTL())
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
[serve]
addr = ":3000"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Serve.Addr != ":3000" {
		t.Errorf("Addr = %q, want :3000", cfg.Serve.Addr)
	}
	if cfg.Serve.Cache != CacheFile {
		t.Errorf("Cache = %q, want default file", cfg.Serve.Cache)
	}
}

func TestLoadInvalidBackend(t *testing.T) {
	path := writeConfig(t, `
[serve]
cache = "memcached"
`)
	if _, err := Load(path); err == nil {
		t.Error("unknown cache backend should fail validation")
	}
}

func TestLoadRedisRequiresAddr(t *testing.T) {
	path := writeConfig(t, `
[serve]
cache = "redis"
`)
	if _, err := Load(path); err == nil {
		t.Error("redis backend without redis_addr should fail validation")
	}
}

func TestLoadMalformedTOML(t *testing.T) {
	path := writeConfig(t, `this is not toml = = =`)
	if _, err := Load(path); err == nil {
		t.Error("malformed TOML should fail")
	}
}
