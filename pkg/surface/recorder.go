package surface

import (
	"slices"

	"github.com/matzehuels/chartlabel/pkg/fonts"
)

// OpKind identifies a painting operation captured by [Recorder].
type OpKind string

const (
	OpFill       OpKind = "fill"
	OpStroke     OpKind = "stroke"
	OpFillText   OpKind = "fillText"
	OpStrokeText OpKind = "strokeText"
)

// Op is one painting operation together with the state it was painted with.
type Op struct {
	Kind  OpKind
	Text  string
	X, Y  float64
	Path  []Segment
	State State
}

// Recorder is a [Surface] that paints nothing and records every fill,
// stroke and text operation in order.
type Recorder struct {
	Stack
	Path

	Ops []Op

	// Measure overrides text measurement. When nil the embedded fonts are used.
	Measure func(font, text string) TextMetrics
}

// NewRecorder returns an empty recorder with the default graphics state.
func NewRecorder() *Recorder {
	return &Recorder{Stack: NewStack()}
}

func (r *Recorder) MeasureText(text string) TextMetrics {
	if r.Measure != nil {
		return r.Measure(r.Current().Font, text)
	}
	w, h := fonts.Measure(r.Current().Font, text)
	return TextMetrics{Width: w, Height: h}
}

func (r *Recorder) Fill()   { r.recordPath(OpFill) }
func (r *Recorder) Stroke() { r.recordPath(OpStroke) }

func (r *Recorder) FillText(text string, x, y float64) {
	r.Ops = append(r.Ops, Op{Kind: OpFillText, Text: text, X: x, Y: y, State: r.Current()})
}

func (r *Recorder) StrokeText(text string, x, y float64) {
	r.Ops = append(r.Ops, Op{Kind: OpStrokeText, Text: text, X: x, Y: y, State: r.Current()})
}

func (r *Recorder) recordPath(kind OpKind) {
	r.Ops = append(r.Ops, Op{Kind: kind, Path: slices.Clone(r.Segments()), State: r.Current()})
}

// Texts returns the text of every FillText operation in paint order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == OpFillText {
			out = append(out, op.Text)
		}
	}
	return out
}

// Filter returns the operations of the given kind in paint order.
func (r *Recorder) Filter(kind OpKind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// Reset drops recorded operations and restores the default state.
func (r *Recorder) Reset() {
	r.Ops = nil
	r.Stack = NewStack()
	r.BeginPath()
}

var _ Surface = (*Recorder)(nil)
