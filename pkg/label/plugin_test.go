package label

import (
	"reflect"
	"slices"
	"testing"

	"github.com/matzehuels/chartlabel/pkg/surface"
	"github.com/matzehuels/chartlabel/pkg/theme"
)

func mixedFrame() *Frame {
	f := newFrame(
		Series{Kind: Bar, Values: vals(10, 20), Elements: []Element{{X: 50, Y: 200, Width: 30}, {X: 150, Y: 150, Width: 30}}},
		Series{Kind: LinePoint, Values: vals(7, nil), Elements: []Element{{X: 250, Y: 100}, {X: 350, Y: 90}}},
	)
	f.Labels = []string{"Q1", "Q2"}
	return f
}

func TestValueLabelsDrawOrder(t *testing.T) {
	f := mixedFrame()
	New(theme.Light).ValueLabels().AfterDatasetsDraw(f)
	rec := f.Surface.(*surface.Recorder)

	if got, want := rec.Texts(), []string{"10", "20", "7"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("texts = %q, want %q", got, want)
	}

	firstText := slices.IndexFunc(rec.Ops, func(op surface.Op) bool {
		return op.Kind == surface.OpStrokeText || op.Kind == surface.OpFillText
	})
	chips := 0
	for i, op := range rec.Ops {
		if op.Kind == surface.OpFill && len(op.Path) == 1 && op.Path[0].Op == surface.OpRoundRect {
			chips++
			if i > firstText {
				t.Error("chip drawn after text")
			}
		}
	}
	if chips != 1 {
		t.Errorf("got %d chips, want 1 (line labels only)", chips)
	}

	for i, op := range rec.Ops {
		if op.Kind == surface.OpFillText {
			if prev := rec.Ops[i-1]; prev.Kind != surface.OpStrokeText || prev.Text != op.Text {
				t.Errorf("%q not outlined before fill", op.Text)
			}
		}
	}

	texts := rec.Filter(surface.OpFillText)
	if c := texts[0].State.Fill.Color; c != theme.Light[theme.TokenBarLabel] {
		t.Errorf("bar label color = %q", c)
	}
	if c := texts[2].State.Fill.Color; c != theme.Light[theme.TokenLineLabel] {
		t.Errorf("line label color = %q", c)
	}
	if len(f.Placed) != 3 {
		t.Errorf("placed = %d, want 3", len(f.Placed))
	}
}

func TestSeriesLabelToken(t *testing.T) {
	f := mixedFrame()
	f.Series[0].LabelToken = "--stat-individual01"
	placed := New(theme.Light).LayoutLinear(f)
	if placed[0].Color != "#7c108f" {
		t.Errorf("color = %q, want series token color", placed[0].Color)
	}
}

func TestThemeSwitchAppliesNextFrame(t *testing.T) {
	sw := theme.NewSwitch(theme.Light)
	e := New(sw)

	before := e.LayoutLinear(mixedFrame())
	sw.Use(theme.Dark)
	after := e.LayoutLinear(mixedFrame())

	if before[0].Color != theme.Light[theme.TokenBarLabel] {
		t.Errorf("before = %q", before[0].Color)
	}
	if after[0].Color != theme.Dark[theme.TokenBarLabel] {
		t.Errorf("after = %q", after[0].Color)
	}
}

func TestNullPointsPlugin(t *testing.T) {
	f := mixedFrame()
	p := NullPoints()
	p.BeforeDatasetsDraw(f)

	if r := f.PointRadius(1, 1); r != 0 {
		t.Errorf("null point radius = %v, want 0", r)
	}
	if r := f.PointRadius(1, 0); r != DefaultPointRadius {
		t.Errorf("point radius = %v, want %v", r, DefaultPointRadius)
	}
	if f.Series[1].PointRadius.Explicit() {
		t.Error("series radii mutated")
	}
	if rec := f.Surface.(*surface.Recorder); len(rec.Ops) != 0 {
		t.Errorf("null point suppression drew %d ops", len(rec.Ops))
	}
}

func TestPointGradient(t *testing.T) {
	f := mixedFrame()
	NullPoints().BeforeDatasetsDraw(f)
	New(theme.Light).PointGradient().AfterDatasetsDraw(f)

	rec := f.Surface.(*surface.Recorder)
	fills := rec.Filter(surface.OpFill)
	if len(fills) != 1 {
		t.Fatalf("got %d bullets, want 1 (null point hidden)", len(fills))
	}
	g := fills[0].State.Fill.Gradient
	if g == nil || g.Kind != surface.GradientRadial {
		t.Fatal("bullet not filled with a radial gradient")
	}
	if len(g.Stops) != 3 || g.Stops[1].Offset != 0.690678 {
		t.Errorf("stops = %+v", g.Stops)
	}
	if g.Stops[2].Color != theme.Light["--bg-chart-line02-bullet03"] {
		t.Errorf("outer stop = %q, want second series token", g.Stops[2].Color)
	}
	strokes := rec.Filter(surface.OpStroke)
	if len(strokes) != 1 || strokes[0].State.LineWidth != 1.5 || !strokes[0].State.Shadow.Enabled() {
		t.Errorf("border = %+v", strokes)
	}
}

func TestHighlightColumn(t *testing.T) {
	f := mixedFrame()
	f.Columns = []float64{100, 300}
	New(theme.Light).HighlightColumn("Q2", "").BeforeDatasetsDraw(f)

	fills := f.Surface.(*surface.Recorder).Filter(surface.OpFill)
	if len(fills) != 1 {
		t.Fatalf("got %d fills, want 1", len(fills))
	}
	want := surface.Segment{Op: surface.OpRect, X: 200, Y: 0, W: 200, H: 300}
	if got := fills[0].Path[0]; got != want {
		t.Errorf("band = %+v, want %+v", got, want)
	}
	if c := fills[0].State.Fill.Color; c != theme.Light[theme.TokenHighlight] {
		t.Errorf("color = %q", c)
	}

	f2 := mixedFrame()
	f2.Columns = []float64{100, 300}
	New(theme.Light).HighlightColumn("Q9", "").BeforeDatasetsDraw(f2)
	if n := len(f2.Surface.(*surface.Recorder).Ops); n != 0 {
		t.Errorf("unknown label drew %d ops", n)
	}
}

func TestGaugeValuesDrawsRuleFirst(t *testing.T) {
	f := gaugeFrame(1, 9, 90)
	New(theme.Light).GaugeValues().AfterDatasetsDraw(f)
	rec := f.Surface.(*surface.Recorder)

	first := rec.Ops[0]
	if first.Kind != surface.OpStroke || first.State.Stroke != theme.Light[theme.TokenGaugeRule] {
		t.Errorf("first op = %+v, want the reference rule", first)
	}
	dashed := 0
	for _, op := range rec.Filter(surface.OpStroke) {
		if len(op.State.Dash) > 0 {
			dashed++
		}
	}
	if dashed != 1 {
		t.Errorf("got %d dashed leaders, want 1", dashed)
	}
	if got := rec.Texts(); !reflect.DeepEqual(got, []string{"1", "9", "90"}) {
		t.Errorf("texts = %q", got)
	}
}

func TestPluginIDs(t *testing.T) {
	e := New(theme.Light)
	ids := []string{
		NullPoints().ID(),
		e.ValueLabels().ID(),
		e.ExternalLabels().ID(),
		e.GaugeValues().ID(),
		e.CenterLabel("총").ID(),
		e.PointGradient().ID(),
		e.HighlightColumn("Q1", "").ID(),
	}
	want := []string{
		"hideNullPoints", "mixedValuePlugin", "externalLabel", "gaugeValuePlugin",
		"totalCenter_총", "pointGradientWithBorder", "highlightX_Q1",
	}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("ids = %q, want %q", ids, want)
	}
}
