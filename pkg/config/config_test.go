package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matzehuels/chartlabel/pkg/errors"
	"github.com/matzehuels/chartlabel/pkg/label"
	"github.com/matzehuels/chartlabel/pkg/theme"
)

func TestDecode(t *testing.T) {
	cfg, err := Decode(`
theme = "dark"

[label]
font = "bold 14px sans-serif"
window_y = 30
linear_leaders = true

[gauge]
slots = 7

[cache]
backend = "redis"
redis_addr = "localhost:6379"
ttl = "2h"
key_prefix = "staging:"
`)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Cache.TTL != 2*time.Hour || cfg.Cache.KeyPrefix != "staging:" {
		t.Errorf("cache = %+v", cfg.Cache)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("server defaults lost: %+v", cfg.Server)
	}

	o := cfg.LabelOptions()
	d := label.DefaultOptions()
	if o.Font != "bold 14px sans-serif" || o.Window.Y != 30 || o.Window.X != d.Window.X {
		t.Errorf("label options = %+v", o)
	}
	if !o.LinearLeaders || o.Gauge.Slots != 7 || o.Radial.Offset != d.Radial.Offset {
		t.Errorf("nested options = %+v / %+v", o.Gauge, o.Radial)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"syntax", `[label`},
		{"unknown key", "[label]\ncolour = 1"},
		{"backend", "[cache]\nbackend = \"memcached\""},
		{"redis addr", "[cache]\nbackend = \"redis\""},
		{"negative ttl", "[cache]\nttl = \"-1h\""},
		{"theme", `theme = "sepia"`},
		{"theme name", "[themes.\"a/b\"]\n\"--chart-bar\" = \"#000\""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.text)
			if err == nil {
				t.Fatal("expected error")
			}
			if errors.GetCode(err) == "" {
				t.Errorf("uncoded error: %v", err)
			}
		})
	}
}

func TestPalette(t *testing.T) {
	cfg, err := Decode(`
[themes.dark]
"--chart-mixbar" = "#ffcc00"

[themes.brand]
"--chart-line" = "#003366"
`)
	if err != nil {
		t.Fatal(err)
	}

	dark, err := cfg.Palette("dark")
	if err != nil {
		t.Fatal(err)
	}
	if got := dark.Resolve(theme.TokenBarLabel); got != "#ffcc00" {
		t.Errorf("override = %q", got)
	}
	if got := dark.Resolve(theme.TokenTitle); got != theme.Dark[theme.TokenTitle] {
		t.Errorf("dark base lost: %q", got)
	}

	brand, err := cfg.Palette("brand")
	if err != nil {
		t.Fatal(err)
	}
	if brand.Resolve(theme.TokenLine) != "#003366" || brand.Resolve(theme.TokenBar) != theme.Light[theme.TokenBar] {
		t.Errorf("brand = %v", brand)
	}

	if _, err := cfg.Palette("sepia"); !errors.Is(err, errors.ErrCodeInvalidTheme) {
		t.Errorf("unknown theme error = %v", err)
	}
	if theme.Dark[theme.TokenBarLabel] == "#ffcc00" {
		t.Error("builtin palette mutated")
	}

	names := cfg.PaletteNames()
	want := []string{"brand", "dark", "light"}
	if len(names) != len(want) {
		t.Fatalf("names = %v", names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names = %v, want %v", names, want)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("missing default file: %v", err)
	}
	if cfg.Cache.Backend != BackendFile {
		t.Errorf("defaults = %+v", cfg.Cache)
	}

	if _, err := Load(filepath.Join(dir, "nope.toml")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing explicit file = %v", err)
	}

	path, _ := DefaultPath()
	if path != filepath.Join(dir, "chartlabel", "config.toml") {
		t.Errorf("DefaultPath = %q", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("[server]\naddr = \":9000\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Addr != ":9000" {
		t.Errorf("addr = %q", cfg.Server.Addr)
	}
}
