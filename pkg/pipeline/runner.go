package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/chartlabel/pkg/cache"
	"github.com/matzehuels/chartlabel/pkg/chart"
	"github.com/matzehuels/chartlabel/pkg/observability"
)

// Runner runs the layout and render stages against a cache. The CLI and the
// HTTP server share it. A Runner holds no per-chart state and may be used
// from many goroutines at once.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// TTL overrides the per-stage entry lifetimes when positive.
	TTL time.Duration
}

// NewRunner returns a Runner. Nil arguments select the null cache, the
// default keyer and the default logger.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	r := &Runner{Cache: c, Keyer: keyer, Logger: logger}
	if r.Cache == nil {
		r.Cache = cache.NewNullCache()
	}
	if r.Keyer == nil {
		r.Keyer = cache.NewDefaultKeyer()
	}
	if r.Logger == nil {
		r.Logger = log.Default()
	}
	return r
}

// prepare validates c and returns its content hash, the root of every
// cache key derived for it.
func (r *Runner) prepare(c *chart.Chart, opts *Options, validate func() error) (string, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if err := validate(); err != nil {
		return "", err
	}
	if err := c.Validate(); err != nil {
		return "", err
	}
	hash, err := cache.HashJSON(c)
	if err != nil {
		return "", fmt.Errorf("hash chart: %w", err)
	}
	return hash, nil
}

// Execute places labels for c and renders every requested format, serving
// either stage from the cache when it can.
func (r *Runner) Execute(ctx context.Context, c *chart.Chart, opts Options) (*Result, error) {
	hash, err := r.prepare(c, &opts, opts.ValidateAndSetDefaults)
	if err != nil {
		return nil, err
	}
	res := &Result{Chart: c, ChartHash: hash}
	res.Stats.Datasets = len(c.Datasets)

	t0 := time.Now()
	l, hit, err := r.layout(ctx, c, hash, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	res.Layout = l
	res.CacheInfo.LayoutHit = hit
	res.Stats.LayoutTime = time.Since(t0)
	res.Stats.Labels = l.Count()
	res.Stats.Displaced = l.Displaced()
	r.Logger.Info("placed labels", "chart", c.Name, "type", c.Type,
		"labels", res.Stats.Labels, "displaced", res.Stats.Displaced, "cached", hit)

	t0 = time.Now()
	res.Artifacts, hit, err = r.render(ctx, c, hash, l, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	res.CacheInfo.RenderHit = hit
	res.Stats.RenderTime = time.Since(t0)
	r.Logger.Debug("rendered", "formats", opts.Formats, "cached", hit, "took", res.Stats.RenderTime)
	return res, nil
}

// Layout places labels for c without rendering.
func (r *Runner) Layout(ctx context.Context, c *chart.Chart, opts Options) (Layout, error) {
	hash, err := r.prepare(c, &opts, opts.ValidateForLayout)
	if err != nil {
		return Layout{}, err
	}
	l, _, err := r.layout(ctx, c, hash, opts)
	return l, err
}

func (r *Runner) layout(ctx context.Context, c *chart.Chart, hash string, opts Options) (l Layout, hit bool, err error) {
	key := r.Keyer.LayoutKey(hash, opts.LayoutKeyOpts(c))
	if !opts.Refresh {
		if data, ok := r.get(ctx, "layout", key); ok {
			if cached, err := UnmarshalLayout(data); err == nil {
				return cached, true, nil
			}
		}
	}

	hooks := observability.Frame()
	start := time.Now()
	hooks.OnLayoutStart(ctx, string(c.Type), len(c.Datasets))
	defer func() {
		hooks.OnLayoutComplete(ctx, string(c.Type), l.Count(), l.Displaced(), time.Since(start), err)
	}()

	l = GenerateLayout(c, opts)
	opts.Logger.Debug("layout computed", "records", l.Records, "labels", l.Count())
	if data, err := MarshalLayout(l); err == nil {
		r.set(ctx, "layout", key, data, r.ttl(cache.TTLLayout))
	}
	return l, false, nil
}

func (r *Runner) render(ctx context.Context, c *chart.Chart, hash string, l Layout, opts Options) (artifacts map[string][]byte, hit bool, err error) {
	layoutKey := opts.LayoutKeyOpts(c)
	keys := make(map[string]string, len(opts.Formats))
	for _, format := range opts.Formats {
		keys[format] = r.Keyer.ArtifactKey(hash, layoutKey, opts.ArtifactKeyOpts(format))
	}

	artifacts = make(map[string][]byte, len(opts.Formats))
	if !opts.Refresh {
		for _, format := range opts.Formats {
			data, ok := r.get(ctx, "artifact", keys[format])
			if !ok {
				break
			}
			artifacts[format] = data
		}
		if len(artifacts) == len(opts.Formats) {
			return artifacts, true, nil
		}
	}

	hooks := observability.Frame()
	start := time.Now()
	hooks.OnRenderStart(ctx, opts.Formats)
	defer func() { hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err) }()

	rendered, err := Render(ctx, c, l, opts)
	if err != nil {
		return nil, false, err
	}
	for format, data := range rendered {
		r.set(ctx, "artifact", keys[format], data, r.ttl(cache.TTLArtifact))
	}
	return rendered, false, nil
}

// get reads a cache entry; backend errors are logged and count as misses.
func (r *Runner) get(ctx context.Context, keyType, key string) ([]byte, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "key", keyType, "err", err)
		return nil, false
	}
	if hit {
		observability.Cache().OnCacheHit(ctx, keyType)
	} else {
		observability.Cache().OnCacheMiss(ctx, keyType)
	}
	return data, hit
}

func (r *Runner) set(ctx context.Context, keyType, key string, data []byte, ttl time.Duration) {
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Warn("cache write failed", "key", keyType, "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}

func (r *Runner) ttl(def time.Duration) time.Duration {
	if r.TTL > 0 {
		return r.TTL
	}
	return def
}

// Close closes the cache.
func (r *Runner) Close() error {
	if r.Cache == nil {
		return nil
	}
	return r.Cache.Close()
}
