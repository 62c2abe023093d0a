// Package observability lets a binary attach metrics or tracing to chartlabel
// without the engine importing any backend.
//
// Three hook families exist: [FrameHooks] for layout and render passes,
// [CacheHooks] for the pipeline's cache lookups, and [HTTPHooks] for the API
// server. Each defaults to a no-op. main installs real implementations once,
// before work starts:
//
//	observability.SetFrameHooks(promFrames{})
//
// and instrumented code reads them at the call site:
//
//	observability.Frame().OnLayoutComplete(ctx, "mixed", placed, displaced, time.Since(start), nil)
package observability

import (
	"context"
	"sync/atomic"
	"time"
)

// FrameHooks observes layout and render passes. displaced counts labels
// that ended up away from their preferred position.
type FrameHooks interface {
	OnLayoutStart(ctx context.Context, chartType string, datasets int)
	OnLayoutComplete(ctx context.Context, chartType string, placed, displaced int, duration time.Duration, err error)
	OnRenderStart(ctx context.Context, formats []string)
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// CacheHooks observes cache traffic. keyType is "layout" or "artifact".
type CacheHooks interface {
	OnCacheHit(ctx context.Context, keyType string)
	OnCacheMiss(ctx context.Context, keyType string)
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// HTTPHooks observes API requests.
type HTTPHooks interface {
	OnRequest(ctx context.Context, method, path string)
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)
}

type NoopFrameHooks struct{}

func (NoopFrameHooks) OnLayoutStart(context.Context, string, int)                               {}
func (NoopFrameHooks) OnLayoutComplete(context.Context, string, int, int, time.Duration, error) {}
func (NoopFrameHooks) OnRenderStart(context.Context, []string)                                  {}
func (NoopFrameHooks) OnRenderComplete(context.Context, []string, time.Duration, error)         {}

type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// hookSet is replaced wholesale on every change, so readers never lock.
type hookSet struct {
	frame FrameHooks
	cache CacheHooks
	http  HTTPHooks
}

var (
	defaults = hookSet{NoopFrameHooks{}, NoopCacheHooks{}, NoopHTTPHooks{}}
	current  atomic.Pointer[hookSet]
)

func init() { Reset() }

func update(fn func(*hookSet)) {
	for {
		old := current.Load()
		next := *old
		fn(&next)
		if current.CompareAndSwap(old, &next) {
			return
		}
	}
}

// SetFrameHooks installs h. A nil h is ignored.
func SetFrameHooks(h FrameHooks) {
	if h != nil {
		update(func(s *hookSet) { s.frame = h })
	}
}

// SetCacheHooks installs h. A nil h is ignored.
func SetCacheHooks(h CacheHooks) {
	if h != nil {
		update(func(s *hookSet) { s.cache = h })
	}
}

// SetHTTPHooks installs h. A nil h is ignored.
func SetHTTPHooks(h HTTPHooks) {
	if h != nil {
		update(func(s *hookSet) { s.http = h })
	}
}

func Frame() FrameHooks { return current.Load().frame }
func Cache() CacheHooks { return current.Load().cache }
func HTTP() HTTPHooks   { return current.Load().http }

// Reset reinstalls the no-op hooks.
func Reset() {
	d := defaults
	current.Store(&d)
}
