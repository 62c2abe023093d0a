// Package cli implements the chartlabel command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/chartlabel/pkg/buildinfo"
	"github.com/matzehuels/chartlabel/pkg/cache"
	"github.com/matzehuels/chartlabel/pkg/config"
	"github.com/matzehuels/chartlabel/pkg/pipeline"
)

const appName = "chartlabel"

// Levels accepted by [New] and [CLI.SetLogLevel].
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI carries what every subcommand shares: the logger and the loaded config.
type CLI struct {
	Logger *log.Logger

	// Config is loaded from --config (or the XDG default) before any
	// subcommand runs.
	Config config.Config

	configPath string
}

// New returns a CLI logging to w at level, with the built-in config.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
		Config: config.Default(),
	}
}

func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand builds the command tree.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Chartlabel places collision-free value labels on charts",
		Long:         `Chartlabel renders column, line, pie, doughnut and gauge charts with value labels that are moved apart when they would overlap, and joined to their data by leader lines when they move.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.loadConfig(); err != nil {
				return err
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/chartlabel/config.toml)")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.themesCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

func (c *CLI) loadConfig() error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.Config = cfg
	c.Logger.Debug("config loaded", "path", c.configPath, "theme", cfg.Theme, "cache", cfg.Cache.Backend)
	return nil
}

// newRunner returns a pipeline runner over the configured cache backend.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	cc, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	var keyer cache.Keyer
	if p := c.Config.Cache.KeyPrefix; p != "" {
		keyer = cache.NewScopedKeyer(nil, p)
	}
	r := pipeline.NewRunner(cc, keyer, c.Logger)
	r.TTL = c.Config.Cache.TTL
	return r, nil
}

func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	switch c.Config.Cache.Backend {
	case config.BackendNone:
		return cache.NewNullCache(), nil
	case config.BackendRedis:
		return cache.NewRedisCache(ctx, c.Config.Cache.RedisAddr, c.Config.Cache.RedisDB)
	}
	dir, err := cacheDir(c.Config.Cache.Dir)
	if err != nil {
		c.Logger.Warn("no cache directory, caching disabled", "err", err)
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns override when set, else chartlabel/ under the user cache
// directory ($XDG_CACHE_HOME or ~/.cache on Linux).
func cacheDir(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, appName), nil
}

// pipelineOptions builds pipeline options from the loaded config. An empty
// theme selects the configured default.
func (c *CLI) pipelineOptions(theme string) (pipeline.Options, error) {
	if theme == "" {
		theme = c.Config.Theme
	}
	palette, err := c.Config.Palette(theme)
	if err != nil {
		return pipeline.Options{}, err
	}
	return pipeline.Options{
		Theme:   theme,
		Palette: palette,
		Label:   c.Config.LabelOptions(),
		Logger:  c.Logger,
	}, nil
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, strings.ToLower(f))
		}
	}
	return out
}
