package surface

import "slices"

// GradientKind distinguishes linear from radial gradients.
type GradientKind int

const (
	GradientLinear GradientKind = iota
	GradientRadial
)

// ColorStop is one stop of a gradient; Offset is in [0, 1].
type ColorStop struct {
	Offset float64
	Color  string
}

// Gradient describes a linear (X0,Y0 → X1,Y1) or radial (circle 0 → circle 1)
// color ramp.
type Gradient struct {
	Kind       GradientKind
	X0, Y0, R0 float64
	X1, Y1, R1 float64
	Stops      []ColorStop
}

// NewLinearGradient returns a linear gradient between two points.
func NewLinearGradient(x0, y0, x1, y1 float64) Gradient {
	return Gradient{Kind: GradientLinear, X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// NewRadialGradient returns a radial gradient between two circles.
func NewRadialGradient(x0, y0, r0, x1, y1, r1 float64) Gradient {
	return Gradient{Kind: GradientRadial, X0: x0, Y0: y0, R0: r0, X1: x1, Y1: y1, R1: r1}
}

// AddColorStop appends a stop and returns the gradient for chaining.
func (g Gradient) AddColorStop(offset float64, color string) Gradient {
	g.Stops = append(slices.Clone(g.Stops), ColorStop{Offset: offset, Color: color})
	return g
}

// Shadow is a drop shadow applied to subsequent fills and strokes.
// A zero Shadow disables shadowing.
type Shadow struct {
	Color            string
	Blur             float64
	OffsetX, OffsetY float64
}

// Enabled reports whether the shadow would be visible.
func (s Shadow) Enabled() bool {
	return s.Color != "" && (s.Blur > 0 || s.OffsetX != 0 || s.OffsetY != 0)
}

// Paint is either a flat color or a gradient.
type Paint struct {
	Color    string
	Gradient *Gradient
}

// State is the graphics state saved and restored by Save/Restore.
type State struct {
	Font      string
	Align     TextAlign
	Baseline  TextBaseline
	Fill      Paint
	Stroke    string
	LineWidth float64
	Dash      []float64
	Shadow    Shadow
}

// DefaultFont matches the initial font of an HTML canvas.
const DefaultFont = "10px sans-serif"

// DefaultState returns the initial graphics state.
func DefaultState() State {
	return State{
		Font:      DefaultFont,
		Fill:      Paint{Color: "#000000"},
		Stroke:    "#000000",
		LineWidth: 1,
	}
}

// Stack implements the state half of [Surface]. Concrete surfaces embed it
// and read [Stack.Current] when they paint.
type Stack struct {
	cur   State
	saved []State
}

// NewStack returns a stack holding [DefaultState].
func NewStack() Stack { return Stack{cur: DefaultState()} }

// Current returns the active graphics state.
func (s *Stack) Current() State { return s.cur }

func (s *Stack) Save() {
	st := s.cur
	st.Dash = slices.Clone(st.Dash)
	s.saved = append(s.saved, st)
}

func (s *Stack) Restore() {
	if n := len(s.saved); n > 0 {
		s.cur = s.saved[n-1]
		s.saved = s.saved[:n-1]
	}
}

func (s *Stack) SetFont(font string)             { s.cur.Font = font }
func (s *Stack) SetTextAlign(a TextAlign)        { s.cur.Align = a }
func (s *Stack) SetTextBaseline(b TextBaseline)  { s.cur.Baseline = b }
func (s *Stack) SetFillColor(color string)       { s.cur.Fill = Paint{Color: color} }
func (s *Stack) SetStrokeColor(color string)     { s.cur.Stroke = color }
func (s *Stack) SetLineWidth(w float64)          { s.cur.LineWidth = w }
func (s *Stack) SetLineDash(segments ...float64) { s.cur.Dash = slices.Clone(segments) }
func (s *Stack) SetShadow(sh Shadow)             { s.cur.Shadow = sh }

func (s *Stack) SetFillGradient(g Gradient) {
	s.cur.Fill = Paint{Gradient: &g}
}
