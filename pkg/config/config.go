// Package config loads the optional layoutsmith configuration file.
//
// The file is TOML, by default at ~/.config/layoutsmith/config.toml:
//
//	[serve]
//	addr = ":8080"
//	cache = "file"       # file, redis, or none
//	redis_addr = "localhost:6379"
//	cache_ttl = "24h"
//
// A missing file yields the defaults; CLI flags override loaded values.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// appName is the directory name used under the XDG config home.
const appName = "layoutsmith"

// Cache backend names accepted in [serve].cache.
const (
	CacheFile  = "file"
	CacheRedis = "redis"
	CacheNone  = "none"
)

// Config is the root of the configuration file.
type Config struct {
	Serve ServeConfig `toml:"serve"`
}

// ServeConfig configures the HTTP API.
type ServeConfig struct {
	Addr      string   `toml:"addr"`
	Cache     string   `toml:"cache"`
	RedisAddr string   `toml:"redis_addr"`
	CacheTTL  duration `toml:"cache_ttl"`
}

// duration wraps time.Duration with TOML text decoding ("24h", "90s", ...).
type duration time.Duration

func (d *duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = duration(parsed)
	return nil
}

// TTL returns the configured cache TTL.
func (s ServeConfig) TTL() time.Duration {
	return time.Duration(s.CacheTTL)
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		Serve: ServeConfig{
			Addr:     ":8080",
			Cache:    CacheFile,
			CacheTTL: duration(24 * time.Hour),
		},
	}
}

// Load reads the config file at path. A missing file is not an error: the
// defaults are returned unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// DefaultPath returns the standard config file location using the XDG
// convention (~/.config/layoutsmith/config.toml).
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

func (c *Config) validate() error {
	switch c.Serve.Cache {
	case CacheFile, CacheRedis, CacheNone:
	default:
		return fmt.Errorf("invalid cache backend: %q (must be one of: file, redis, none)", c.Serve.Cache)
	}
	if c.Serve.Cache == CacheRedis && c.Serve.RedisAddr == "" {
		return fmt.Errorf("redis cache backend requires redis_addr")
	}
	return nil
}
