package pipeline

import (
	"encoding/json"

	"github.com/matzehuels/chartlabel/pkg/chart"
	"github.com/matzehuels/chartlabel/pkg/label"
	"github.com/matzehuels/chartlabel/pkg/render/sink"
	"github.com/matzehuels/chartlabel/pkg/surface"
)

// Layout is the serializable result of the layout stage.
type Layout struct {
	Chart  chart.Type          `json:"chart"`
	Width  float64             `json:"width"`
	Height float64             `json:"height"`
	Labels []label.PlacedLabel `json:"labels"`

	// Gauge is set for gauge charts; its labels are not repeated in Labels.
	Gauge *label.GaugeLayout `json:"gauge,omitempty"`
	// Center is set for doughnuts with centre text.
	Center *label.CenterLabel `json:"center,omitempty"`

	// Records is the number of geometry records the frame produced.
	Records int `json:"records"`
}

// Displaced counts labels moved off their default position.
func (l Layout) Displaced() int {
	n := 0
	for _, p := range l.all() {
		if p.Displaced() {
			n++
		}
	}
	return n
}

// Count returns the number of placed labels, gauge labels included.
func (l Layout) Count() int { return len(l.all()) }

func (l Layout) all() []label.PlacedLabel {
	if l.Gauge == nil {
		return l.Labels
	}
	return append(append([]label.PlacedLabel(nil), l.Labels...), l.Gauge.Labels...)
}

// JSON exports the layout in the placed-label exchange format.
func (l Layout) JSON(theme string) ([]byte, error) {
	opts := []sink.JSONOption{sink.WithJSONChart(string(l.Chart)), sink.WithJSONTheme(theme)}
	if l.Gauge != nil {
		opts = append(opts, sink.WithJSONGauge(*l.Gauge))
	}
	if l.Center != nil {
		opts = append(opts, sink.WithJSONCenter(*l.Center))
	}
	return sink.RenderJSON(l.Width, l.Height, l.Labels, opts...)
}

// MarshalLayout serializes a layout for caching.
func MarshalLayout(l Layout) ([]byte, error) { return json.Marshal(l) }

// UnmarshalLayout restores a cached layout.
func UnmarshalLayout(data []byte) (Layout, error) {
	var l Layout
	err := json.Unmarshal(data, &l)
	return l, err
}

// GenerateLayout draws c on a recording surface with the chart's preset
// plugins and collects what they placed.
func GenerateLayout(c *chart.Chart, opts Options) Layout {
	w, h := opts.Size(c)
	rec := surface.NewRecorder()
	e := newEngine(opts)
	f := chart.Draw(rec, c, drawOptions(e, c, opts, w, h)...)

	l := Layout{
		Chart:   c.Type,
		Width:   w,
		Height:  h,
		Records: len(label.Snapshot(f)),
	}
	switch c.Type {
	case chart.Gauge:
		g := e.LayoutGauge(f)
		l.Gauge = &g
	default:
		l.Labels = f.Placed
	}
	if c.Type == chart.Doughnut && c.CenterText != "" {
		if cl, ok := e.LayoutCenter(f, c.CenterText); ok {
			l.Center = &cl
		}
	}
	if l.Labels == nil {
		l.Labels = []label.PlacedLabel{}
	}
	return l
}

func newEngine(opts Options) *label.Engine {
	return label.New(opts.Palette, label.WithOptions(opts.Label), label.WithLogger(opts.Logger))
}

func drawOptions(e *label.Engine, c *chart.Chart, opts Options, w, h float64) []chart.DrawOption {
	return []chart.DrawOption{
		chart.WithTheme(opts.Palette),
		chart.WithPlugins(chart.Preset(e, c)...),
		chart.WithLogger(opts.Logger),
		chart.WithSize(w, h),
	}
}
