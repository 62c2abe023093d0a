package label_test

import (
	"fmt"

	"github.com/matzehuels/chartlabel/pkg/label"
	"github.com/matzehuels/chartlabel/pkg/surface"
	"github.com/matzehuels/chartlabel/pkg/theme"
)

func ExampleEngine_LayoutLinear() {
	// A bar and a line point share a column: the bar label is lifted off
	// the point, then the line label is lifted above the bar label.
	rec := surface.NewRecorder()
	rec.Measure = func(_, text string) surface.TextMetrics {
		return surface.TextMetrics{Width: 8 * float64(len(text)), Height: 16}
	}
	f := &label.Frame{
		Surface: rec,
		Area:    surface.Area{Right: 400, Bottom: 300},
		Series: []label.Series{
			{Kind: label.Bar, Values: []label.Value{label.Num(10)}, Elements: []label.Element{{X: 100, Y: 200, Width: 30}}},
			{Kind: label.LinePoint, Values: []label.Value{label.Num(12)}, Elements: []label.Element{{X: 100, Y: 210}}},
		},
	}

	e := label.New(theme.Light)
	for _, p := range e.LayoutLinear(f) {
		fmt.Printf("%s %s y=%.0f moved=%v\n", p.Record.Kind, p.Text, p.TargetY, p.NeedsLeader)
	}
	// Output:
	// bar 10 y=202 moved=true
	// line 12 y=160 moved=true
}

func ExampleIsLeft() {
	fmt.Println(label.IsLeft(3.141592653589793))
	fmt.Println(label.IsLeft(0))
	// Output:
	// true
	// false
}
