package label

import (
	"math"
	"unicode/utf8"

	"github.com/matzehuels/chartlabel/pkg/surface"
)

// newRecorder measures every rune as 8x16 pixels so tests do not depend on
// font metrics.
func newRecorder() *surface.Recorder {
	r := surface.NewRecorder()
	r.Measure = func(_, text string) surface.TextMetrics {
		return surface.TextMetrics{Width: 8 * float64(utf8.RuneCountInString(text)), Height: 16}
	}
	return r
}

func newFrame(series ...Series) *Frame {
	return &Frame{
		Surface: newRecorder(),
		Area:    surface.Area{Left: 0, Top: 0, Right: 400, Bottom: 300},
		Series:  series,
	}
}

// vals builds values from ints, floats and nil (null).
func vals(vs ...any) []Value {
	out := make([]Value, len(vs))
	for i, v := range vs {
		switch x := v.(type) {
		case int:
			out[i] = Num(float64(x))
		case float64:
			out[i] = Num(x)
		default:
			out[i] = Null
		}
	}
	return out
}

// arcs lays values out clockwise from start, sharing sweep radians.
func arcs(values []float64, cx, cy, inner, outer, start, sweep float64) []Element {
	total := 0.0
	for _, v := range values {
		total += v
	}
	out := make([]Element, len(values))
	a := start
	for i, v := range values {
		da := sweep * v / total
		out[i] = Element{X: cx, Y: cy, StartAngle: a, EndAngle: a + da, InnerRadius: inner, OuterRadius: outer}
		a += da
	}
	return out
}

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }
