package label

import (
	"math"
	"reflect"
	"testing"

	"github.com/matzehuels/chartlabel/pkg/surface"
	"github.com/matzehuels/chartlabel/pkg/theme"
)

func TestBuildLinearKeepsZero(t *testing.T) {
	bars := Series{
		Kind:   Bar,
		Values: vals(10, 0, 5),
		Elements: []Element{
			{X: 50, Y: 100, Width: 30, Base: 250},
			{X: 150, Y: 250, Width: 30, Base: 250},
			{X: 250, Y: 175, Width: 30, Base: 250},
		},
	}
	f := newFrame(bars)
	f.Labels = []string{"Jan", "Feb", "Mar"}

	cands := New(theme.Light).BuildLinear(f.Surface, Snapshot(f))
	if len(cands) != 3 {
		t.Fatalf("got %d candidates, want 3", len(cands))
	}
	wantText := []string{"10", "0", "5"}
	for i, c := range cands {
		if c.Text != wantText[i] {
			t.Errorf("candidate %d text = %q, want %q", i, c.Text, wantText[i])
		}
		el := bars.Elements[i]
		if c.TargetX != el.X || c.TargetY != el.Y {
			t.Errorf("candidate %d target = (%v, %v), want bar top (%v, %v)", i, c.TargetX, c.TargetY, el.X, el.Y)
		}
		if c.Record.Label != f.Labels[i] {
			t.Errorf("candidate %d label = %q, want %q", i, c.Record.Label, f.Labels[i])
		}
	}
	if cands[0].Width != 16 {
		t.Errorf("width = %v, want 16", cands[0].Width)
	}
}

func TestNullValuesProduceNoCandidates(t *testing.T) {
	line := func() Series {
		return Series{
			Kind:     LinePoint,
			Values:   vals(3, nil, 7),
			Elements: []Element{{X: 50, Y: 120}, {X: 150, Y: 200}, {X: 250, Y: 80}},
		}
	}
	f := newFrame(line(), line())

	f.Points = SuppressNullPoints(f.Series)
	for si := range f.Series {
		if r := f.Points.RadiusAt(si, 1, -1); r != 0 {
			t.Errorf("series %d radius at null = %v, want 0", si, r)
		}
		if r := f.Points.HoverAt(si, 1, -1); r != 0 {
			t.Errorf("series %d hover radius at null = %v, want 0", si, r)
		}
		if r := f.Points.RadiusAt(si, 0, -1); r != DefaultPointRadius {
			t.Errorf("series %d radius = %v, want %v", si, r, DefaultPointRadius)
		}
		if f.Series[si].PointRadius.Explicit() {
			t.Errorf("series %d radius list was mutated", si)
		}
	}

	cands := New(theme.Light).BuildLinear(f.Surface, Snapshot(f))
	if len(cands) != 4 {
		t.Fatalf("got %d candidates, want 4", len(cands))
	}
	for _, c := range cands {
		if c.Record.Index == 1 {
			t.Errorf("candidate generated for null value at series %d", c.Record.Series)
		}
	}
}

func TestSuppressNullPointsExplicitRadii(t *testing.T) {
	s := Series{
		Kind:        LinePoint,
		Values:      vals(1, nil, 3),
		PointRadius: Radii{PerPoint: []float64{2, 4, 5}},
		HoverRadius: Radii{Scalar: 10},
	}
	o := SuppressNullPoints([]Series{{Kind: Bar}, s})

	if _, ok := o.Radius[0]; ok {
		t.Error("bar series got point overrides")
	}
	if got, want := o.Radius[1], []float64{2, 0, 5}; !reflect.DeepEqual(got, want) {
		t.Errorf("radius = %v, want %v", got, want)
	}
	if got, want := o.Hover[1], []float64{10, 0, 10}; !reflect.DeepEqual(got, want) {
		t.Errorf("hover = %v, want %v", got, want)
	}
}

func TestResolveLinear(t *testing.T) {
	tests := []struct {
		name    string
		series  []Series
		wantY   []float64
		leaders []bool
	}{
		{
			name: "bar label clears point and line label clears bar label",
			series: []Series{
				{Kind: Bar, Values: vals(10), Elements: []Element{{X: 100, Y: 200, Width: 30}}},
				{Kind: LinePoint, Values: vals(12), Elements: []Element{{X: 100, Y: 210}}},
			},
			wantY:   []float64{202, 160},
			leaders: []bool{true, true},
		},
		{
			name: "later line label yields",
			series: []Series{
				{Kind: LinePoint, Values: vals(1), Elements: []Element{{X: 100, Y: 150}}},
				{Kind: LinePoint, Values: vals(2), Elements: []Element{{X: 100, Y: 150}}},
			},
			wantY:   []float64{140, 100},
			leaders: []bool{false, true},
		},
		{
			name: "later bar label yields",
			series: []Series{
				{Kind: Bar, Values: vals(1), Elements: []Element{{X: 100, Y: 150, Width: 20}}},
				{Kind: Bar, Values: vals(2), Elements: []Element{{X: 104, Y: 160, Width: 20}}},
			},
			wantY:   []float64{150, 120},
			leaders: []bool{false, true},
		},
		{
			name: "separate columns do not interact",
			series: []Series{
				{Kind: LinePoint, Values: vals(1), Elements: []Element{{X: 100, Y: 150}}},
				{Kind: LinePoint, Values: vals(2), Elements: []Element{{X: 110, Y: 150}}},
			},
			wantY:   []float64{140, 140},
			leaders: []bool{false, false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(theme.Light)
			placed := e.LayoutLinear(newFrame(tt.series...))
			if len(placed) != len(tt.wantY) {
				t.Fatalf("got %d labels, want %d", len(placed), len(tt.wantY))
			}
			for i, p := range placed {
				if !approx(p.TargetY, tt.wantY[i]) {
					t.Errorf("label %d y = %v, want %v", i, p.TargetY, tt.wantY[i])
				}
				if p.NeedsLeader != tt.leaders[i] {
					t.Errorf("label %d NeedsLeader = %v, want %v", i, p.NeedsLeader, tt.leaders[i])
				}
				if p.NeedsLeader != p.Displaced() {
					t.Errorf("label %d NeedsLeader disagrees with displacement", i)
				}
			}
			w := e.Options().Window
			for i := range placed {
				for j := i + 1; j < len(placed); j++ {
					a, b := placed[i], placed[j]
					if w.SameColumn(a.TargetX, b.TargetX) && math.Abs(a.TargetY-b.TargetY) < w.Y {
						t.Errorf("labels %d and %d overlap: y %v vs %v", i, j, a.TargetY, b.TargetY)
					}
				}
			}
		})
	}
}

// Each pass keeps its own pair kinds apart. A bar label raised in the last
// pass can land near a line label settled earlier.
func TestResolveLinearPassesAreIndependent(t *testing.T) {
	placed := New(theme.Light).LayoutLinear(newFrame(
		Series{Kind: Bar, Values: vals(1), Elements: []Element{{X: 100, Y: 100, Width: 20}}},
		Series{Kind: Bar, Values: vals(2), Elements: []Element{{X: 104, Y: 105, Width: 20}}},
		Series{Kind: LinePoint, Values: vals(3), Elements: []Element{{X: 102, Y: 130}}},
	))
	if len(placed) != 3 {
		t.Fatalf("got %d labels, want 3", len(placed))
	}
	want := []float64{100, 65, 60}
	for i, p := range placed {
		if !approx(p.TargetY, want[i]) {
			t.Errorf("label %d y = %v, want %v", i, p.TargetY, want[i])
		}
	}
}

func TestBarLabelIgnoresHiddenPoint(t *testing.T) {
	f := newFrame(
		Series{Kind: Bar, Values: vals(10), Elements: []Element{{X: 100, Y: 200, Width: 30}}},
		Series{Kind: LinePoint, Values: vals(nil), Elements: []Element{{X: 100, Y: 210}}},
	)
	NullPoints().BeforeDatasetsDraw(f)

	placed := New(theme.Light).LayoutLinear(f)
	if len(placed) != 1 {
		t.Fatalf("got %d labels, want 1", len(placed))
	}
	if placed[0].TargetY != 200 || placed[0].NeedsLeader {
		t.Errorf("bar label moved to %v for a hidden point", placed[0].TargetY)
	}
}

func TestLayoutLinearIdempotent(t *testing.T) {
	f := newFrame(
		Series{Kind: Bar, Values: vals(10, 20, nil), Elements: []Element{{X: 50, Y: 200}, {X: 150, Y: 150}, {X: 250, Y: 250}}},
		Series{Kind: LinePoint, Values: vals(11, 21, 4), Elements: []Element{{X: 50, Y: 205}, {X: 150, Y: 140}, {X: 250, Y: 230}}},
		Series{Kind: LinePoint, Values: vals(12, nil, 5), Elements: []Element{{X: 50, Y: 208}, {X: 150, Y: 300}, {X: 250, Y: 232}}},
	)
	e := New(theme.Light)
	first := e.LayoutLinear(f)
	second := e.LayoutLinear(f)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("layout differs between runs:\n%+v\n%+v", first, second)
	}
}

func TestLayoutLinearLeaders(t *testing.T) {
	f := newFrame(
		Series{Kind: LinePoint, Values: vals(1), Elements: []Element{{X: 100, Y: 150}}},
		Series{Kind: LinePoint, Values: vals(2), Elements: []Element{{X: 100, Y: 150}}},
	)

	off := New(theme.Light).LayoutLinear(f)
	if off[1].Leader.Visible() {
		t.Error("leader drawn with linear leaders disabled")
	}

	on := New(theme.Light, WithOptions(Options{LinearLeaders: true})).LayoutLinear(f)
	l := on[1].Leader
	if l.Shape != LeaderStraight {
		t.Fatalf("shape = %v, want straight", l.Shape)
	}
	want := []Point{{100, 150}, {100, 100}}
	if !reflect.DeepEqual(l.Path, want) {
		t.Errorf("path = %v, want %v", l.Path, want)
	}
	if on[0].Leader.Visible() {
		t.Error("undisplaced label has a leader")
	}
}

func TestLayoutLinearUnsized(t *testing.T) {
	f := newFrame(Series{Kind: Bar, Values: vals(1), Elements: []Element{{X: 1, Y: 1}}})
	f.Area = surface.Area{}
	if got := New(theme.Light).LayoutLinear(f); got != nil {
		t.Errorf("got %d labels on an unsized frame", len(got))
	}
}

func TestSnapshotSkipsMissingGeometry(t *testing.T) {
	f := newFrame(
		Series{Kind: Bar, Values: vals(1, 2, 3), Elements: []Element{{X: 1, Y: 1}, {X: math.NaN(), Y: 2}}},
		Series{Kind: LinePoint, Values: vals(1), Elements: []Element{{X: 5, Y: 5}}, Hidden: true},
	)
	recs := Snapshot(f)
	if len(recs) != 1 || recs[0].Index != 0 {
		t.Errorf("records = %+v, want only the first bar", recs)
	}
}
