package label

import (
	"math"

	"github.com/matzehuels/chartlabel/pkg/surface"
)

// Side is the half-plane a radial label sits in.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return ""
	}
}

// Candidate is a label before and during collision resolution. Anchor is the
// data point; Default is the kind-specific starting position; Target is the
// only position the resolvers move.
type Candidate struct {
	Record GeometryRecord
	Text   string
	Width  float64
	Height float64

	AnchorX, AnchorY   float64
	DefaultX, DefaultY float64
	TargetX, TargetY   float64

	NeedsLeader bool
	Side        Side

	// Radial and gauge labels only.
	Small   bool
	Percent int
}

// leaderEpsilon is the displacement below which a label counts as unmoved.
const leaderEpsilon = 1e-6

// Displaced reports whether the target has moved off the default position.
func (c Candidate) Displaced() bool {
	return math.Abs(c.TargetX-c.DefaultX) > leaderEpsilon ||
		math.Abs(c.TargetY-c.DefaultY) > leaderEpsilon
}

// PlacedLabel is a resolved candidate ready to draw.
type PlacedLabel struct {
	Candidate
	Leader Leader
	Color  string
}

// kindStyle supplies the per-kind parts of candidate building and drawing.
type kindStyle interface {
	font() string
	defaultOffset(r GeometryRecord) (x, y float64)
	measure(s surface.Surface, text string) (w, h float64)
	draw(s surface.Surface, p PlacedLabel)
}

func measureWith(s surface.Surface, font, text string) (float64, float64) {
	s.Save()
	s.SetFont(font)
	m := s.MeasureText(text)
	s.Restore()
	return m.Width, m.Height
}

// outlined strokes text in the outline color and fills it on top.
func outlined(s surface.Surface, text string, x, y float64, fill, outline string, width float64) {
	s.SetStrokeColor(outline)
	s.SetLineWidth(width)
	s.StrokeText(text, x, y)
	s.SetFillColor(fill)
	s.FillText(text, x, y)
}

// barStyle places labels flush on the bar top.
type barStyle struct{ e *Engine }

func (b barStyle) font() string { return b.e.opts.Font }

func (barStyle) defaultOffset(r GeometryRecord) (float64, float64) { return r.X, r.Y }

func (b barStyle) measure(s surface.Surface, text string) (float64, float64) {
	return measureWith(s, b.font(), text)
}

func (b barStyle) draw(s surface.Surface, p PlacedLabel) {
	s.Save()
	s.SetFont(b.font())
	s.SetTextAlign(surface.AlignCenter)
	s.SetTextBaseline(surface.BaselineBottom)
	outlined(s, p.Text, p.TargetX, p.TargetY, p.Color, b.e.outline(), 3)
	s.Restore()
}

// lineStyle places labels Padding pixels above the point and backs them
// with a rounded chip.
type lineStyle struct{ e *Engine }

func (l lineStyle) font() string { return l.e.opts.Font }

func (l lineStyle) defaultOffset(r GeometryRecord) (float64, float64) {
	return r.X, r.Y - l.e.opts.Padding
}

func (l lineStyle) measure(s surface.Surface, text string) (float64, float64) {
	return measureWith(s, l.font(), text)
}

func (l lineStyle) draw(s surface.Surface, p PlacedLabel) {
	s.Save()
	s.SetFont(l.font())
	s.SetTextAlign(surface.AlignCenter)
	s.SetTextBaseline(surface.BaselineBottom)
	outlined(s, p.Text, p.TargetX, p.TargetY, p.Color, l.e.outline(), 3)
	s.Restore()
}

// chip fills the rounded background behind a line label.
func (l lineStyle) chip(s surface.Surface, p PlacedLabel) {
	pad := l.e.opts.ChipPadding
	s.Save()
	s.SetFillColor(l.e.color(tokenChip, "rgba(255,255,255,0.85)"))
	s.BeginPath()
	s.RoundRect(p.TargetX-p.Width/2-pad, p.TargetY-p.Height-pad, p.Width+2*pad, p.Height+2*pad, l.e.opts.ChipRadius)
	s.Fill()
	s.Restore()
}

// arcStyle places external labels along the arc bisector.
type arcStyle struct{ e *Engine }

func (a arcStyle) font() string { return a.e.opts.Radial.Font }

func (a arcStyle) defaultOffset(r GeometryRecord) (float64, float64) {
	return polar(r.X, r.Y, r.OuterRadius+a.e.opts.Radial.Offset, r.MidAngle())
}

func (a arcStyle) measure(s surface.Surface, text string) (float64, float64) {
	return measureWith(s, a.font(), text)
}

func (a arcStyle) draw(s surface.Surface, p PlacedLabel) {
	s.Save()
	s.SetFont(a.font())
	if p.Side == SideLeft {
		s.SetTextAlign(surface.AlignRight)
	} else {
		s.SetTextAlign(surface.AlignLeft)
	}
	s.SetTextBaseline(surface.BaselineMiddle)
	s.SetFillColor(p.Color)
	s.FillText(p.Text, p.TargetX, p.TargetY)
	s.Restore()
}

// gaugeStyle labels gauge arcs inline at mid-radius; small slices are moved
// outside the ring.
type gaugeStyle struct{ e *Engine }

func (g gaugeStyle) font() string { return g.e.opts.Gauge.Font }

func (gaugeStyle) defaultOffset(r GeometryRecord) (float64, float64) {
	return polar(r.X, r.Y, (r.InnerRadius+r.OuterRadius)/2, r.MidAngle())
}

func (g gaugeStyle) measure(s surface.Surface, text string) (float64, float64) {
	return measureWith(s, g.font(), text)
}

func (g gaugeStyle) draw(s surface.Surface, p PlacedLabel) {
	s.Save()
	s.SetFont(g.font())
	s.SetTextAlign(surface.AlignCenter)
	s.SetTextBaseline(surface.BaselineMiddle)
	s.SetShadow(surface.Shadow{})
	outlined(s, p.Text, p.TargetX, p.TargetY, p.Color, g.e.color(tokenGaugeOutline, "#000000"), 3)
	s.Restore()
}

func (e *Engine) style(k Kind) kindStyle {
	switch k {
	case Bar:
		return barStyle{e}
	case LinePoint:
		return lineStyle{e}
	default:
		return arcStyle{e}
	}
}

func polar(cx, cy, r, angle float64) (float64, float64) {
	return cx + math.Cos(angle)*r, cy + math.Sin(angle)*r
}

// candidate measures text and seeds anchor, default and target from st.
func candidate(s surface.Surface, st kindStyle, r GeometryRecord, text string) Candidate {
	w, h := st.measure(s, text)
	dx, dy := st.defaultOffset(r)
	return Candidate{
		Record:   r,
		Text:     text,
		Width:    w,
		Height:   h,
		AnchorX:  r.X,
		AnchorY:  r.Y,
		DefaultX: dx,
		DefaultY: dy,
		TargetX:  dx,
		TargetY:  dy,
	}
}

// BuildLinear returns one candidate per non-null bar or line record, in
// record order. All measurement happens here, before any resolution pass.
func (e *Engine) BuildLinear(s surface.Surface, recs []GeometryRecord) []Candidate {
	var out []Candidate
	for _, r := range recs {
		if r.Kind == Arc || !r.Value.Valid {
			continue
		}
		out = append(out, candidate(s, e.style(r.Kind), r, r.Value.Text()))
	}
	return out
}
