package label

import (
	"math"
	"slices"

	"github.com/matzehuels/chartlabel/pkg/surface"
)

// LeaderShape is the geometry of a leader line.
type LeaderShape int

const (
	LeaderNone LeaderShape = iota
	// LeaderStraight is a single segment from the data point to the label.
	LeaderStraight
	// LeaderElbow runs out along the arc bisector, then vertically to the
	// label's y.
	LeaderElbow
	// LeaderDiagonal runs out along the arc bisector, then diagonally to the
	// label.
	LeaderDiagonal
)

func (s LeaderShape) String() string {
	switch s {
	case LeaderStraight:
		return "straight"
	case LeaderElbow:
		return "elbow"
	case LeaderDiagonal:
		return "diagonal"
	default:
		return "none"
	}
}

// Point is a surface coordinate.
type Point struct {
	X, Y float64
}

// Leader connects a displaced label to its data point. Path is drawn as a
// polyline; a bullet of BulletRadius is drawn at Path[0] when positive.
type Leader struct {
	Shape LeaderShape
	Path  []Point

	BulletRadius  float64
	BulletOutline string // stroked around the bullet when set

	Color string
	Width float64
	Dash  []float64
}

// Visible reports whether the leader has anything to draw.
func (l Leader) Visible() bool {
	return l.Shape != LeaderNone && len(l.Path) >= 2
}

// straightLeader joins a linear label's anchor to the bottom of its text.
func (e *Engine) straightLeader(c Candidate) Leader {
	return Leader{
		Shape: LeaderStraight,
		Path:  []Point{{c.AnchorX, c.AnchorY}, {c.TargetX, c.TargetY}},
		Color: e.color(tokenLeader, "#333333"),
		Width: 1,
	}
}

// radialLeader starts with a bullet at mid-ring, runs out past the outer
// radius and then either drops vertically to the label or, when the label
// was pushed sideways, heads straight for it.
func (e *Engine) radialLeader(c Candidate) Leader {
	r, o := c.Record, e.opts.Radial
	mid := r.MidAngle()
	sx, sy := polar(r.X, r.Y, (r.InnerRadius+r.OuterRadius)/2, mid)
	ox, oy := polar(r.X, r.Y, r.OuterRadius+o.LeaderGap, mid)

	l := Leader{
		BulletRadius: o.BulletRadius,
		Color:        e.color(tokenLeader, "#333333"),
		Width:        1.5,
	}
	if math.Abs(c.TargetX-c.DefaultX) > leaderEpsilon {
		l.Shape = LeaderDiagonal
		l.Path = []Point{{sx, sy}, {ox, oy}, {c.TargetX, c.TargetY}}
	} else {
		l.Shape = LeaderElbow
		l.Path = []Point{{sx, sy}, {ox, oy}, {ox, c.TargetY}}
	}
	return l
}

// gaugeLeader is the dashed spoke from a bullet inside the ring to just
// outside it.
func (e *Engine) gaugeLeader(c Candidate) Leader {
	r, o := c.Record, e.opts.Gauge
	mid := r.MidAngle()
	bx, by := polar(r.X, r.Y, (r.InnerRadius+r.OuterRadius)/o.BulletDivisor, mid)
	ex, ey := polar(r.X, r.Y, r.OuterRadius+o.LeaderOffset, mid)
	return Leader{
		Shape:         LeaderStraight,
		Path:          []Point{{bx, by}, {ex, ey}},
		BulletRadius:  o.BulletRadius,
		BulletOutline: e.color(tokenOutline, "#ffffff"),
		Color:         e.color(tokenLeader, "#333333"),
		Width:         1.5,
		Dash:          slices.Clone(o.Dash),
	}
}

// drawLeader paints the bullet, then the line.
func drawLeader(s surface.Surface, l Leader) {
	if !l.Visible() {
		return
	}
	s.Save()
	start := l.Path[0]
	if l.BulletRadius > 0 {
		s.BeginPath()
		s.Arc(start.X, start.Y, l.BulletRadius, 0, fullTurn)
		if l.BulletOutline != "" {
			s.SetStrokeColor(l.BulletOutline)
			s.SetLineWidth(2)
			s.Stroke()
		}
		s.SetFillColor(l.Color)
		s.Fill()
	}
	s.SetStrokeColor(l.Color)
	s.SetLineWidth(l.Width)
	s.SetLineDash(l.Dash...)
	s.BeginPath()
	s.MoveTo(start.X, start.Y)
	for _, p := range l.Path[1:] {
		s.LineTo(p.X, p.Y)
	}
	s.Stroke()
	s.Restore()
}
