package label

import (
	"fmt"
	"slices"

	"github.com/matzehuels/chartlabel/pkg/surface"
)

// Plugin is invoked by the host around its own dataset drawing. Before runs
// after the chart area is laid out but before any series is drawn; After
// runs once every series has been drawn.
type Plugin interface {
	ID() string
	BeforeDatasetsDraw(f *Frame)
	AfterDatasetsDraw(f *Frame)
}

// hooks provides no-op lifecycle methods for plugins to embed.
type hooks struct{}

func (hooks) BeforeDatasetsDraw(*Frame) {}
func (hooks) AfterDatasetsDraw(*Frame)  {}

type nullPoints struct{ hooks }

// NullPoints publishes per-point radius overrides that hide points whose
// value is null.
func NullPoints() Plugin { return nullPoints{} }

func (nullPoints) ID() string { return "hideNullPoints" }

func (nullPoints) BeforeDatasetsDraw(f *Frame) {
	if f == nil {
		return
	}
	f.Points = SuppressNullPoints(f.Series)
}

type valueLabels struct {
	hooks
	e *Engine
}

// ValueLabels places and draws bar and line value labels.
func (e *Engine) ValueLabels() Plugin { return valueLabels{e: e} }

func (valueLabels) ID() string { return "mixedValuePlugin" }

func (p valueLabels) AfterDatasetsDraw(f *Frame) {
	placed := p.e.LayoutLinear(f)
	if len(placed) == 0 {
		return
	}
	p.e.DrawLinear(f.Surface, placed)
	f.Placed = append(f.Placed, placed...)
}

type externalLabels struct {
	hooks
	e *Engine
}

// ExternalLabels places and draws pie and doughnut labels outside the ring.
func (e *Engine) ExternalLabels() Plugin { return externalLabels{e: e} }

func (externalLabels) ID() string { return "externalLabel" }

func (p externalLabels) AfterDatasetsDraw(f *Frame) {
	placed := p.e.LayoutRadial(f)
	if len(placed) == 0 {
		return
	}
	p.e.DrawRadial(f.Surface, placed)
	f.Placed = append(f.Placed, placed...)
}

type gaugeValues struct {
	hooks
	e *Engine
}

// GaugeValues draws the gauge reference rule and value labels.
func (e *Engine) GaugeValues() Plugin { return gaugeValues{e: e} }

func (gaugeValues) ID() string { return "gaugeValuePlugin" }

func (p gaugeValues) AfterDatasetsDraw(f *Frame) {
	g := p.e.LayoutGauge(f)
	if !g.HasRule && len(g.Labels) == 0 {
		return
	}
	p.e.DrawGauge(f.Surface, g)
	f.Placed = append(f.Placed, g.Labels...)
}

type centerLabel struct {
	hooks
	e    *Engine
	text string
}

// CenterLabel draws text in the middle of a doughnut.
func (e *Engine) CenterLabel(text string) Plugin { return centerLabel{e: e, text: text} }

func (p centerLabel) ID() string { return "totalCenter_" + p.text }

func (p centerLabel) AfterDatasetsDraw(f *Frame) {
	cl, ok := p.e.LayoutCenter(f, p.text)
	if !ok {
		return
	}
	p.e.DrawCenter(f.Surface, cl)
}

// Gradient stop offsets of the default point bullet.
var pointStops = []float64{0, 0.690678, 1}

type pointGradient struct {
	hooks
	e *Engine
}

// PointGradient redraws every visible line point as a radial-gradient
// bullet with a light border and soft shadow.
func (e *Engine) PointGradient() Plugin { return pointGradient{e: e} }

func (pointGradient) ID() string { return "pointGradientWithBorder" }

func (p pointGradient) AfterDatasetsDraw(f *Frame) {
	if !f.Sized() {
		return
	}
	s := f.Surface
	for _, r := range Snapshot(f) {
		if r.Kind != LinePoint || !r.Value.Valid || r.Radius <= 0 {
			continue
		}
		s.Save()
		s.BeginPath()
		s.Arc(r.X, r.Y, r.Radius, 0, fullTurn)
		if stops := p.stops(f, r.Series); len(stops) > 0 {
			g := surface.NewRadialGradient(r.X, r.Y, 0, r.X, r.Y, r.Radius)
			for _, st := range stops {
				g = g.AddColorStop(st.Offset, st.Color)
			}
			s.SetFillGradient(g)
		} else {
			s.SetFillColor(p.e.labelColor(f, r))
		}
		s.Fill()
		s.SetShadow(surface.Shadow{Color: "rgba(0,0,0,0.5)", Blur: 4})
		s.SetStrokeColor(p.e.color(tokenOutline, "#ffffff"))
		s.SetLineWidth(1.5)
		s.Stroke()
		s.Restore()
	}
}

// stops returns the series override, or the themed bullet stops for the
// series position.
func (p pointGradient) stops(f *Frame, series int) []surface.ColorStop {
	if st := f.Series[series].Gradient; len(st) > 0 {
		return slices.Clone(st)
	}
	var out []surface.ColorStop
	for i, off := range pointStops {
		tok := fmt.Sprintf("--bg-chart-line%02d-bullet%02d", series+1, i+1)
		c := p.e.theme.Resolve(tok)
		if c == "" {
			return nil
		}
		out = append(out, surface.ColorStop{Offset: off, Color: c})
	}
	return out
}

type highlightColumn struct {
	hooks
	e     *Engine
	label string
	color string
}

// HighlightColumn fills the band behind the category named label before
// the series are drawn. An empty color uses the theme highlight token.
func (e *Engine) HighlightColumn(label, color string) Plugin {
	return highlightColumn{e: e, label: label, color: color}
}

func (p highlightColumn) ID() string { return "highlightX_" + p.label }

func (p highlightColumn) BeforeDatasetsDraw(f *Frame) {
	if !f.Sized() {
		return
	}
	i := slices.Index(f.Labels, p.label)
	if i < 0 || i >= len(f.Columns) {
		return
	}
	w := columnWidth(f, i)
	color := p.color
	if color == "" {
		color = p.e.color(tokenHighlight, "rgba(145,128,80,0.12)")
	}
	s := f.Surface
	s.Save()
	s.SetFillColor(color)
	s.BeginPath()
	s.Rect(f.Columns[i]-w/2, f.Area.Top, w, f.Area.Height())
	s.Fill()
	s.Restore()
}

func columnWidth(f *Frame, i int) float64 {
	switch {
	case i+1 < len(f.Columns):
		return f.Columns[i+1] - f.Columns[i]
	case i > 0:
		return f.Columns[i] - f.Columns[i-1]
	default:
		return f.Area.Width()
	}
}
