package sink

import (
	"encoding/json"

	"github.com/matzehuels/chartlabel/pkg/label"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	chart  string
	theme  string
	gauge  *label.GaugeLayout
	center *label.CenterLabel
}

// WithJSONChart records the chart type in the output.
func WithJSONChart(kind string) JSONOption { return func(r *jsonRenderer) { r.chart = kind } }

// WithJSONTheme records the palette name in the output.
func WithJSONTheme(name string) JSONOption { return func(r *jsonRenderer) { r.theme = name } }

// WithJSONGauge includes the gauge reference rule.
func WithJSONGauge(g label.GaugeLayout) JSONOption {
	return func(r *jsonRenderer) { r.gauge = &g }
}

// WithJSONCenter includes a doughnut centre annotation.
func WithJSONCenter(c label.CenterLabel) JSONOption {
	return func(r *jsonRenderer) { r.center = &c }
}

type jsonOutput struct {
	Width  float64       `json:"width"`
	Height float64       `json:"height"`
	Chart  string        `json:"chart,omitempty"`
	Theme  string        `json:"theme,omitempty"`
	Labels []jsonLabel   `json:"labels"`
	Rule   *[2]jsonPoint `json:"rule,omitempty"`
	Center *jsonCenter   `json:"center,omitempty"`
}

type jsonLabel struct {
	Series int         `json:"series"`
	Index  int         `json:"index"`
	Kind   string      `json:"kind"`
	Text   string      `json:"text"`
	Anchor jsonPoint   `json:"anchor"`
	Target jsonPoint   `json:"target"`
	Width  float64     `json:"width"`
	Height float64     `json:"height"`
	Side   string      `json:"side,omitempty"`
	Color  string      `json:"color,omitempty"`
	Leader *jsonLeader `json:"leader,omitempty"`
}

type jsonLeader struct {
	Shape  string      `json:"shape"`
	Path   []jsonPoint `json:"path"`
	Bullet float64     `json:"bullet,omitempty"`
	Dashed bool        `json:"dashed,omitempty"`
}

type jsonPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type jsonCenter struct {
	X     float64  `json:"x"`
	Y     float64  `json:"y"`
	Lines []string `json:"lines"`
}

// RenderJSON exports placed labels as a pretty-printed JSON document. It
// does not modify labels and is safe to call concurrently.
func RenderJSON(width, height float64, labels []label.PlacedLabel, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Width:  width,
		Height: height,
		Chart:  r.chart,
		Theme:  r.theme,
		Labels: buildJSONLabels(labels),
	}
	if r.gauge != nil {
		out.Labels = append(out.Labels, buildJSONLabels(r.gauge.Labels)...)
		if r.gauge.HasRule {
			out.Rule = &[2]jsonPoint{
				{r.gauge.Rule[0].X, r.gauge.Rule[0].Y},
				{r.gauge.Rule[1].X, r.gauge.Rule[1].Y},
			}
		}
	}
	if r.center != nil {
		out.Center = &jsonCenter{X: r.center.X, Y: r.center.Y, Lines: r.center.Lines}
	}
	return json.MarshalIndent(out, "", "  ")
}

func buildJSONLabels(labels []label.PlacedLabel) []jsonLabel {
	out := make([]jsonLabel, 0, len(labels))
	for _, p := range labels {
		jl := jsonLabel{
			Series: p.Record.Series,
			Index:  p.Record.Index,
			Kind:   p.Record.Kind.String(),
			Text:   p.Text,
			Anchor: jsonPoint{p.AnchorX, p.AnchorY},
			Target: jsonPoint{p.TargetX, p.TargetY},
			Width:  p.Width,
			Height: p.Height,
			Side:   p.Side.String(),
			Color:  p.Color,
		}
		if p.Leader.Visible() {
			path := make([]jsonPoint, len(p.Leader.Path))
			for i, pt := range p.Leader.Path {
				path[i] = jsonPoint{pt.X, pt.Y}
			}
			jl.Leader = &jsonLeader{
				Shape:  p.Leader.Shape.String(),
				Path:   path,
				Bullet: p.Leader.BulletRadius,
				Dashed: len(p.Leader.Dash) > 0,
			}
		}
		out = append(out, jl)
	}
	return out
}
