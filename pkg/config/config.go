// Package config loads vecnet settings from a TOML file.
//
// The default location is $XDG_CONFIG_HOME/vecnet/config.toml (or
// ~/.config/vecnet/config.toml). A missing file at the default location is
// not an error; every setting has a default.
//
//	[cache]
//	backend = "redis"     # file | redis | none
//	ttl = "72h"
//
//	[cache.redis]
//	addr = "localhost:6379"
//	db = 2
//	prefix = "vecnet:"
//
//	[limits]
//	max_vertices = 50000
//	max_payload_bytes = 4194304
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/BurntSushi/toml"

	vecerrors "github.com/matzehuels/vecnet/pkg/errors"
)

// AppName is used for config and cache directory names.
const AppName = "vecnet"

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

var backends = []string{BackendFile, BackendRedis, BackendNone}

// Config is the full settings tree.
type Config struct {
	Cache  CacheConfig `toml:"cache"`
	Limits Limits      `toml:"limits"`
}

// CacheConfig selects and configures the result cache.
type CacheConfig struct {
	Backend string      `toml:"backend"`
	Dir     string      `toml:"dir"` // file backend; empty uses the XDG cache dir
	TTL     Duration    `toml:"ttl"`
	Redis   RedisConfig `toml:"redis"`
}

// RedisConfig locates the Redis server for the redis backend.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	Prefix   string `toml:"prefix"`
}

// Limits caps input sizes before the codec runs. Zero disables a limit.
type Limits struct {
	MaxVertices     int `toml:"max_vertices"`
	MaxSegments     int `toml:"max_segments"`
	MaxRegions      int `toml:"max_regions"`
	MaxPayloadBytes int `toml:"max_payload_bytes"`
}

// Duration is a time.Duration written as a Go duration string ("24h").
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Cache: CacheConfig{
			Backend: BackendFile,
			TTL:     Duration{7 * 24 * time.Hour},
			Redis: RedisConfig{
				Addr:   "localhost:6379",
				Prefix: AppName + ":",
			},
		},
		Limits: Limits{
			MaxVertices:     100_000,
			MaxSegments:     200_000,
			MaxRegions:      10_000,
			MaxPayloadBytes: 16 << 20,
		},
	}
}

// Load reads the config file at path over the defaults and validates the
// result. An empty path means [DefaultPath], where a missing file is
// allowed.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, vecerrors.Wrap(vecerrors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, vecerrors.New(vecerrors.ErrCodeInvalidConfig, "%s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks settings that cannot be caught by the TOML decoder.
func (c Config) Validate() error {
	if !slices.Contains(backends, c.Cache.Backend) {
		return vecerrors.New(vecerrors.ErrCodeInvalidConfig,
			"cache.backend must be one of %v, got %q", backends, c.Cache.Backend)
	}
	if c.Cache.TTL.Duration < 0 {
		return vecerrors.New(vecerrors.ErrCodeInvalidConfig, "cache.ttl must not be negative")
	}
	if c.Cache.Backend == BackendRedis && c.Cache.Redis.Addr == "" {
		return vecerrors.New(vecerrors.ErrCodeInvalidConfig, "cache.redis.addr is required for the redis backend")
	}
	if c.Cache.Redis.DB < 0 {
		return vecerrors.New(vecerrors.ErrCodeInvalidConfig, "cache.redis.db must not be negative")
	}
	if err := vecerrors.ValidateCacheKeyPrefix(c.Cache.Redis.Prefix); err != nil {
		return err
	}
	l := c.Limits
	if l.MaxVertices < 0 || l.MaxSegments < 0 || l.MaxRegions < 0 || l.MaxPayloadBytes < 0 {
		return vecerrors.New(vecerrors.ErrCodeInvalidConfig, "limits must not be negative")
	}
	return nil
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// CacheDir returns the file cache directory: Cache.Dir if set, else the
// XDG cache location (~/.cache/vecnet/).
func (c Config) CacheDir() (string, error) {
	if c.Cache.Dir != "" {
		return c.Cache.Dir, nil
	}
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", AppName), nil
}

func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName), nil
}
