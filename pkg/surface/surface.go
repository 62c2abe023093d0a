// Package surface defines the drawing surface the label engine paints on.
//
// The contract mirrors an immediate-mode 2D canvas: a stack of graphics
// state (font, paint, line style, shadow), a current path built with
// MoveTo/LineTo/Arc, and fill/stroke operations that consume the path.
// Text is measured with the current font before any positional decision is
// made, so every surface must answer MeasureText deterministically.
//
// Concrete surfaces live in [github.com/matzehuels/chartlabel/pkg/render/sink]
// (SVG and raster). [Recorder] captures operations for tests.
package surface

// TextAlign is the horizontal anchoring of drawn text relative to its x.
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

func (a TextAlign) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// TextBaseline is the vertical anchoring of drawn text relative to its y.
type TextBaseline int

const (
	BaselineAlphabetic TextBaseline = iota
	BaselineMiddle
	BaselineBottom
	BaselineTop
)

func (b TextBaseline) String() string {
	switch b {
	case BaselineMiddle:
		return "middle"
	case BaselineBottom:
		return "bottom"
	case BaselineTop:
		return "top"
	default:
		return "alphabetic"
	}
}

// TextMetrics is the measured box of a string in the current font.
type TextMetrics struct {
	Width  float64
	Height float64
}

// Surface is the drawing capability handed to the engine for one frame.
type Surface interface {
	Save()
	Restore()

	SetFont(font string)
	MeasureText(text string) TextMetrics
	SetTextAlign(a TextAlign)
	SetTextBaseline(b TextBaseline)

	SetFillColor(color string)
	SetFillGradient(g Gradient)
	SetStrokeColor(color string)
	SetLineWidth(w float64)
	SetLineDash(segments ...float64)
	SetShadow(s Shadow)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Arc(x, y, r, startAngle, endAngle float64)
	Rect(x, y, w, h float64)
	RoundRect(x, y, w, h, r float64)
	ClosePath()
	Fill()
	Stroke()

	FillText(text string, x, y float64)
	StrokeText(text string, x, y float64)
}

// Area is the plotting rectangle of a chart in surface pixels.
type Area struct {
	Left, Top, Right, Bottom float64
}

// Width returns the horizontal extent of the area.
func (a Area) Width() float64 { return a.Right - a.Left }

// Height returns the vertical extent of the area.
func (a Area) Height() float64 { return a.Bottom - a.Top }

// CenterX returns the horizontal midpoint of the area.
func (a Area) CenterX() float64 { return (a.Left + a.Right) / 2 }

// CenterY returns the vertical midpoint of the area.
func (a Area) CenterY() float64 { return (a.Top + a.Bottom) / 2 }
