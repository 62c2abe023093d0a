// Package cache stores rendered chart artifacts.
//
// A [Cache] is a flat byte store with per-entry TTLs. Keys come from a
// [Keyer], which hashes the chart content together with every option that
// changes the output, so identical requests share one entry and any change
// misses.
//
// Three backends exist:
//
//   - [FileCache]: one file per entry under a directory, an expiry header then the payload (CLI default)
//   - [RedisCache]: a shared Redis instance (server deployments)
//   - [NullCache]: never stores anything (--no-cache)
package cache

import (
	"context"
	"time"
)

// Default TTLs per entry kind.
const (
	TTLLayout   = 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is a byte store keyed by strings.
type Cache interface {
	// Get returns the stored bytes and whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Clearer is implemented by backends that can drop every entry they own.
type Clearer interface {
	Clear(ctx context.Context) (int, error)
}

// LayoutKeyOpts are the inputs that change placed labels.
type LayoutKeyOpts struct {
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Options string  `json:"options"` // hash of label.Options
}

// ArtifactKeyOpts are the inputs that change a rendered file.
type ArtifactKeyOpts struct {
	Format     string  `json:"format"`
	Theme      string  `json:"theme"`
	Scale      float64 `json:"scale,omitempty"`
	Background string  `json:"background,omitempty"`
}

// Keyer derives cache keys.
type Keyer interface {
	LayoutKey(chartHash string, opts LayoutKeyOpts) string
	ArtifactKey(chartHash string, layout LayoutKeyOpts, opts ArtifactKeyOpts) string
}

// DefaultKeyer produces "kind:sha256" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// LayoutKey keys the JSON of a chart's placed labels.
func (DefaultKeyer) LayoutKey(chartHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", chartHash, opts)
}

// ArtifactKey keys a rendered file.
func (DefaultKeyer) ArtifactKey(chartHash string, layout LayoutKeyOpts, opts ArtifactKeyOpts) string {
	return hashKey("artifact:"+opts.Format, chartHash, layout, opts)
}
