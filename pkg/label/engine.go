package label

import (
	"github.com/charmbracelet/log"

	"github.com/matzehuels/chartlabel/pkg/theme"
)

const (
	tokenBar          = theme.TokenBarLabel
	tokenLine         = theme.TokenLineLabel
	tokenOutline      = theme.TokenLabelOutline
	tokenChip         = theme.TokenLabelChip
	tokenLeader       = theme.TokenLeader
	tokenCenterText   = theme.TokenCenterText
	tokenCenterDisk   = theme.TokenCenterDisk
	tokenGaugeRule    = theme.TokenGaugeRule
	tokenGaugeText    = theme.TokenGaugeText
	tokenGaugeOutline = theme.TokenGaugeOutline
	tokenHighlight    = theme.TokenHighlight
)

// Engine lays out and draws labels. It holds no per-frame state and is safe
// for concurrent use as long as each goroutine draws its own frame.
type Engine struct {
	theme  theme.Resolver
	opts   Options
	logger *log.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithOptions replaces the placement parameters. Unset fields keep their
// defaults.
func WithOptions(o Options) Option {
	return func(e *Engine) {
		o.ValidateAndSetDefaults()
		e.opts = o
	}
}

// WithLogger logs per-frame placement counts and skipped inputs at debug
// level.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// New returns an engine that resolves colors through r at draw time.
// A nil resolver falls back to [theme.Light].
func New(r theme.Resolver, opts ...Option) *Engine {
	if r == nil {
		r = theme.Light
	}
	e := &Engine{theme: r, opts: DefaultOptions()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Options returns the engine's placement parameters.
func (e *Engine) Options() Options { return e.opts }

func (e *Engine) color(token, fallback string) string {
	return theme.Or(e.theme, token, fallback)
}

func (e *Engine) outline() string { return e.color(tokenOutline, "#ffffff") }

// labelColor resolves the text color for a bar or line record.
func (e *Engine) labelColor(f *Frame, r GeometryRecord) string {
	if r.Series >= 0 && r.Series < len(f.Series) {
		if tok := f.Series[r.Series].LabelToken; tok != "" {
			if c := e.theme.Resolve(tok); c != "" {
				return c
			}
		}
	}
	if r.Kind == LinePoint {
		return e.color(tokenLine, "#249473")
	}
	return e.color(tokenBar, "#6d5a21")
}

// sliceColor returns the fill color of an arc, used for its external label.
func (e *Engine) sliceColor(f *Frame, r GeometryRecord) string {
	if r.Series >= 0 && r.Series < len(f.Series) {
		cs := f.Series[r.Series].Colors
		if r.Index >= 0 && r.Index < len(cs) && cs[r.Index] != "" {
			return cs[r.Index]
		}
	}
	return e.color(tokenLeader, "#333333")
}

func (e *Engine) debug(msg string, kv ...any) {
	if e.logger != nil {
		e.logger.Debug(msg, kv...)
	}
}
