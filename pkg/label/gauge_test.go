package label

import (
	"math"
	"reflect"
	"testing"

	"github.com/matzehuels/chartlabel/pkg/theme"
)

func gaugeFrame(values ...any) *Frame {
	vs := vals(values...)
	sizes := make([]float64, len(vs))
	for i, v := range vs {
		sizes[i] = math.Max(v.V, 1)
	}
	return newFrame(Series{
		Kind:     Arc,
		Values:   vs,
		Elements: arcs(sizes, 200, 200, 60, 100, -math.Pi, math.Pi),
	})
}

func TestLayoutGauge(t *testing.T) {
	f := gaugeFrame(1, 1, 1, 1, 96, 50)
	g := New(theme.Light).LayoutGauge(f)

	if len(g.Labels) != 5 {
		t.Fatalf("got %d labels, want 5 (first five slots)", len(g.Labels))
	}
	for i, p := range g.Labels[:4] {
		if !p.Small || !p.NeedsLeader {
			t.Errorf("slot %d small=%v leader=%v, want both", i, p.Small, p.NeedsLeader)
		}
		if p.Percent != 1 {
			t.Errorf("slot %d percent = %d, want 1", i, p.Percent)
		}
		x, y := polar(200, 200, 130, p.Record.MidAngle())
		if !approx(p.TargetX, x) || !approx(p.TargetY, y) {
			t.Errorf("slot %d text at (%v, %v), want (%v, %v)", i, p.TargetX, p.TargetY, x, y)
		}
		l := p.Leader
		if l.Shape != LeaderStraight || l.BulletRadius != 3 || !reflect.DeepEqual(l.Dash, []float64{4, 4}) {
			t.Errorf("slot %d leader = %+v", i, l)
		}
		ex, ey := polar(200, 200, 120, p.Record.MidAngle())
		if end := l.Path[1]; !approx(end.X, ex) || !approx(end.Y, ey) {
			t.Errorf("slot %d leader ends at %v", i, end)
		}
	}

	inline := g.Labels[4]
	if inline.Small || inline.NeedsLeader || inline.Leader.Visible() {
		t.Errorf("large slot small=%v leader=%v", inline.Small, inline.NeedsLeader)
	}
	x, y := polar(200, 200, 80, inline.Record.MidAngle())
	if !approx(inline.TargetX, x) || !approx(inline.TargetY, y) {
		t.Errorf("inline text at (%v, %v), want (%v, %v)", inline.TargetX, inline.TargetY, x, y)
	}

	wantRule := [2]Point{{88, 200}, {312, 200}}
	if !g.HasRule || g.Rule != wantRule {
		t.Errorf("rule = %v, want %v", g.Rule, wantRule)
	}
}

func TestLayoutGaugeZeroTotal(t *testing.T) {
	g := New(theme.Light).LayoutGauge(gaugeFrame(0, 0, 0, 0, 0))
	if len(g.Labels) != 0 {
		t.Errorf("got %d labels for a zero total", len(g.Labels))
	}
	if !g.HasRule {
		t.Error("rule missing")
	}
}

func TestLayoutGaugeSkipsEmpty(t *testing.T) {
	g := New(theme.Light).LayoutGauge(gaugeFrame(0, nil, 5, 5, 5))
	if len(g.Labels) != 3 {
		t.Fatalf("got %d labels, want 3", len(g.Labels))
	}
	for _, p := range g.Labels {
		if p.Record.Index < 2 {
			t.Errorf("slot %d labelled", p.Record.Index)
		}
	}
}
