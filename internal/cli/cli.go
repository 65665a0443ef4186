// Package cli implements the vecnet command-line interface.
//
// The commands read and write the two JSON forms of a vector network: the
// dense form a design tool holds in memory, and the sparse form sent to and
// received from an agent. All of them run through a [pipeline.Runner], so
// limits and caching match what the tool envelope does.
//
// # Commands
//
//   - encode: dense network to sparse form
//   - decode: sparse form to dense network
//   - roundtrip: encode, decode and re-encode, reporting differences
//   - inspect: summarize a network and draw its topology
//   - call: serve tool requests over stdin/stdout
//   - cache: manage the result cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// traces codec and cache events.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/vecnet/pkg/buildinfo"
	"github.com/matzehuels/vecnet/pkg/cache"
	"github.com/matzehuels/vecnet/pkg/config"
	"github.com/matzehuels/vecnet/pkg/observability"
	"github.com/matzehuels/vecnet/pkg/pipeline"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level. At debug level the codec and
// cache hooks are routed to the logger.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
	if level <= log.DebugLevel {
		registerLogHooks(c.Logger)
	} else {
		observability.Reset()
	}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "vecnet",
		Short: "vecnet converts vector networks between dense and sparse JSON",
		Long: `vecnet converts vector networks between the dense form a design tool holds
in memory and a compact sparse form suited to agent tool calls.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/vecnet/config.toml)")

	root.AddCommand(c.encodeCommand())
	root.AddCommand(c.decodeCommand())
	root.AddCommand(c.roundtripCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.callCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// loadConfig reads the config file named by --config, or the default one.
func (c *CLI) loadConfig() (config.Config, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return config.Config{}, err
	}
	c.Logger.Debug("loaded config", "backend", cfg.Cache.Backend, "path", c.configPath)
	return cfg, nil
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, err
	}
	ch, err := c.newCache(ctx, cfg, noCache)
	if err != nil {
		return nil, err
	}
	r := pipeline.NewRunner(ch, nil, c.Logger)
	r.Limits = cfg.Limits
	if cfg.Cache.TTL.Duration > 0 {
		r.TTL = cfg.Cache.TTL.Duration
	}
	return r, nil
}

// newCache opens the configured cache backend. An unreachable backend
// degrades to no caching with a warning rather than failing the command.
func (c *CLI) newCache(ctx context.Context, cfg config.Config, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	switch cfg.Cache.Backend {
	case config.BackendNone:
		return cache.NewNullCache(), nil
	case config.BackendRedis:
		rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
			Prefix:   cfg.Cache.Redis.Prefix,
		})
		if err != nil {
			c.Logger.Warn("redis cache unavailable, continuing without cache", "addr", cfg.Cache.Redis.Addr, "err", err)
			return cache.NewNullCache(), nil
		}
		return rc, nil
	default:
		dir, err := cfg.CacheDir()
		if err != nil {
			return cache.NewNullCache(), nil
		}
		fc, err := cache.NewFileCache(dir)
		if err != nil {
			return nil, fmt.Errorf("open cache: %w", err)
		}
		return fc, nil
	}
}

// =============================================================================
// Input / Output
// =============================================================================

// readInput reads the named file, or stdin when path is "" or "-".
func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// writeOutput writes data to the named file, or stdout when path is "".
// It reports whether a file was written.
func writeOutput(path string, data []byte) (bool, error) {
	if path == "" || path == "-" {
		_, err := os.Stdout.Write(data)
		return false, err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, fmt.Errorf("write %s: %w", path, err)
	}
	return true, nil
}

// inputName labels the input in log lines.
func inputName(path string) string {
	if path == "" || path == "-" {
		return "stdin"
	}
	return path
}
