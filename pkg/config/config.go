// Package config loads chartlabel's TOML configuration.
//
// The file lives at $XDG_CONFIG_HOME/chartlabel/config.toml (or
// ~/.config/chartlabel/config.toml) unless a path is given explicitly. A
// missing default file means defaults; a missing explicit file is an error.
//
//	[label]
//	font = "bold 14px sans-serif"
//	window_x = 10
//	window_y = 25
//	linear_leaders = true
//
//	[radial]
//	small_threshold = 0.05
//
//	[themes.brand]
//	"--chart-mixbar" = "#003366"
//
//	[cache]
//	backend = "redis"          # file | redis | none
//	redis_addr = "localhost:6379"
//	ttl = "24h"
//
//	[server]
//	addr = ":8080"
package config

import (
	"os"
	"path/filepath"
	"slices"
	"sort"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/chartlabel/pkg/errors"
	"github.com/matzehuels/chartlabel/pkg/label"
	"github.com/matzehuels/chartlabel/pkg/theme"
)

const appName = "chartlabel"

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Config is the decoded configuration file.
type Config struct {
	Label  LabelConfig                  `toml:"label"`
	Radial RadialConfig                 `toml:"radial"`
	Gauge  GaugeConfig                  `toml:"gauge"`
	Theme  string                       `toml:"theme"`
	Themes map[string]map[string]string `toml:"themes"`
	Cache  CacheConfig                  `toml:"cache"`
	Server ServerConfig                 `toml:"server"`
}

// LabelConfig overrides the linear label parameters. Zero fields keep the
// engine defaults.
type LabelConfig struct {
	Font          string  `toml:"font"`
	Padding       float64 `toml:"padding"`
	WindowX       float64 `toml:"window_x"`
	WindowY       float64 `toml:"window_y"`
	Step          float64 `toml:"step"`
	LinearLeaders bool    `toml:"linear_leaders"`
}

// RadialConfig overrides pie and doughnut label parameters.
type RadialConfig struct {
	Font           string  `toml:"font"`
	Offset         float64 `toml:"offset"`
	SmallThreshold float64 `toml:"small_threshold"`
	Displacement   float64 `toml:"displacement"`
}

// GaugeConfig overrides gauge label parameters.
type GaugeConfig struct {
	Font           string  `toml:"font"`
	Slots          int     `toml:"slots"`
	SmallThreshold float64 `toml:"small_threshold"`
}

// CacheConfig selects the artifact cache backend.
type CacheConfig struct {
	Backend   string        `toml:"backend"`
	Dir       string        `toml:"dir"`
	RedisAddr string        `toml:"redis_addr"`
	RedisDB   int           `toml:"redis_db"`
	TTL       time.Duration `toml:"ttl"`

	// KeyPrefix namespaces every key, letting several deployments share
	// one Redis database.
	KeyPrefix string `toml:"key_prefix"`
}

// ServerConfig configures `chartlabel serve`.
type ServerConfig struct {
	Addr         string        `toml:"addr"`
	ReadTimeout  time.Duration `toml:"read_timeout"`
	MaxBodyBytes int64         `toml:"max_body_bytes"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Theme: "light",
		Cache: CacheConfig{Backend: BackendFile, TTL: 24 * time.Hour},
		Server: ServerConfig{
			Addr:         ":8080",
			ReadTimeout:  30 * time.Second,
			MaxBodyBytes: 1 << 20,
		},
	}
}

// DefaultPath returns the XDG config file location.
func DefaultPath() (string, error) {
	if home := os.Getenv("XDG_CONFIG_HOME"); home != "" {
		return filepath.Join(home, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads the configuration at path on top of [Default]. An empty path
// reads the default location and tolerates its absence.
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
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if !explicit {
			return cfg, nil
		}
		return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, errors.New(errors.ErrCodeInvalidConfig, "unknown config key %q in %s", undecoded[0].String(), path)
	}
	return cfg, cfg.Validate()
}

// Decode parses TOML text on top of [Default].
func Decode(text string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(text, &cfg)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, errors.New(errors.ErrCodeInvalidConfig, "unknown config key %q", undecoded[0].String())
	}
	return cfg, cfg.Validate()
}

// Validate reports settings that cannot be honoured.
func (c Config) Validate() error {
	if !slices.Contains([]string{BackendFile, BackendRedis, BackendNone}, c.Cache.Backend) {
		return errors.New(errors.ErrCodeInvalidConfig, "unknown cache backend %q", c.Cache.Backend)
	}
	if c.Cache.Backend == BackendRedis && c.Cache.RedisAddr == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "redis cache needs redis_addr")
	}
	if c.Cache.TTL < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "cache ttl must not be negative")
	}
	for name := range c.Themes {
		if err := errors.ValidateName("theme", name); err != nil {
			return err
		}
	}
	if _, err := c.Palette(c.Theme); err != nil {
		return err
	}
	return nil
}

// LabelOptions merges the file's overrides into the engine defaults.
func (c Config) LabelOptions() label.Options {
	o := label.DefaultOptions()
	set := func(dst *float64, v float64) {
		if v > 0 {
			*dst = v
		}
	}
	if c.Label.Font != "" {
		o.Font = c.Label.Font
	}
	set(&o.Padding, c.Label.Padding)
	set(&o.Window.X, c.Label.WindowX)
	set(&o.Window.Y, c.Label.WindowY)
	set(&o.Step, c.Label.Step)
	o.LinearLeaders = c.Label.LinearLeaders

	if c.Radial.Font != "" {
		o.Radial.Font = c.Radial.Font
	}
	set(&o.Radial.Offset, c.Radial.Offset)
	set(&o.Radial.SmallThreshold, c.Radial.SmallThreshold)
	set(&o.Radial.Displacement, c.Radial.Displacement)

	if c.Gauge.Font != "" {
		o.Gauge.Font = c.Gauge.Font
	}
	if c.Gauge.Slots > 0 {
		o.Gauge.Slots = c.Gauge.Slots
	}
	set(&o.Gauge.SmallThreshold, c.Gauge.SmallThreshold)
	return o
}

// Palette returns the named token table. Configured themes are merged onto
// the builtin palette of the same name, or onto light for new names.
func (c Config) Palette(name string) (theme.Table, error) {
	if name == "" {
		name = c.Theme
	}
	base, builtin := theme.Builtin[name]
	custom, configured := c.Themes[name]
	if !builtin && !configured {
		return nil, errors.New(errors.ErrCodeInvalidTheme, "unknown theme %q (have %v)", name, c.PaletteNames())
	}
	if !builtin {
		base = theme.Light
	}
	return base.Merge(theme.Table(custom)), nil
}

// PaletteNames lists builtin and configured themes, sorted.
func (c Config) PaletteNames() []string {
	seen := map[string]bool{}
	for n := range theme.Builtin {
		seen[n] = true
	}
	for n := range c.Themes {
		seen[n] = true
	}
	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
