package label

import "math"

// pointReach is how far below a bar label's baseline a line point still
// collides with the text.
const pointReach = 10

// ResolveLinear runs the four linear passes over cands and returns the
// resolved candidates in their original order. obstacles are the line
// points bar labels must clear; records with a zero radius are ignored.
//
// Pass order is fixed and each pass is greedy: earlier labels win.
func (e *Engine) ResolveLinear(cands []Candidate, obstacles []GeometryRecord) []Candidate {
	out := make([]Candidate, len(cands))
	copy(out, cands)

	var bars, lines []*Candidate
	for i := range out {
		switch out[i].Record.Kind {
		case Bar:
			bars = append(bars, &out[i])
		case LinePoint:
			lines = append(lines, &out[i])
		}
	}

	w, step := e.opts.Window, e.opts.Step

	// bar label vs. visible point
	for _, b := range bars {
		for _, p := range obstacles {
			if p.Kind != LinePoint || p.Radius <= 0 {
				continue
			}
			if e.hitsPoint(*b, p) {
				b.TargetY = p.Y - p.Radius - e.opts.PointClearance
			}
		}
	}

	// line label vs. bar label
	for _, l := range lines {
		for _, b := range bars {
			if w.Overlaps(l.TargetX, l.TargetY, b.TargetX, b.TargetY) {
				l.TargetY = w.raiseClear(l.TargetY, b.TargetY, step)
			}
		}
	}

	// line vs. line, then bar vs. bar: the later label yields
	for _, group := range [][]*Candidate{lines, bars} {
		for i := range group {
			for j := i + 1; j < len(group); j++ {
				a, b := group[i], group[j]
				if w.Overlaps(a.TargetX, a.TargetY, b.TargetX, b.TargetY) {
					b.TargetY = w.raiseClear(b.TargetY, a.TargetY, step)
				}
			}
		}
	}

	for i := range out {
		out[i].NeedsLeader = out[i].Displaced()
	}
	return out
}

// hitsPoint reports whether bar label c would cover point p.
func (e *Engine) hitsPoint(c Candidate, p GeometryRecord) bool {
	if !e.opts.Window.SameColumn(c.TargetX, p.X) {
		return false
	}
	reach := p.Radius + e.opts.PointMargin
	dx := math.Abs(c.TargetX - p.X)
	dy := math.Abs(c.TargetY - p.Y)
	return dx < c.Width/2+reach && dy < reach+pointReach
}

// LayoutLinear places value labels for every bar and line series of f.
// It returns nil when the frame is not sized.
func (e *Engine) LayoutLinear(f *Frame) []PlacedLabel {
	if !f.Sized() {
		e.debug("linear layout skipped", "reason", "frame not sized")
		return nil
	}
	recs := Snapshot(f)
	var obstacles []GeometryRecord
	for _, r := range recs {
		if r.Kind == LinePoint {
			obstacles = append(obstacles, r)
		}
	}
	resolved := e.ResolveLinear(e.BuildLinear(f.Surface, recs), obstacles)

	placed := make([]PlacedLabel, 0, len(resolved))
	displaced := 0
	for _, c := range resolved {
		p := PlacedLabel{Candidate: c, Color: e.labelColor(f, c.Record)}
		if c.NeedsLeader {
			displaced++
			if e.opts.LinearLeaders {
				p.Leader = e.straightLeader(c)
			}
		}
		placed = append(placed, p)
	}
	e.debug("linear layout", "records", len(recs), "labels", len(placed), "displaced", displaced)
	return placed
}
