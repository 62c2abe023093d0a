package label

import (
	"math"
	"strconv"
	"strings"
)

const fullTurn = 2 * math.Pi

// normalizeAngle maps a to [0, 2π).
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, fullTurn)
	if a < 0 {
		a += fullTurn
	}
	return a
}

// IsLeft reports whether a bisecting angle points into the left half-plane,
// the open interval (π/2, 3π/2).
func IsLeft(angle float64) bool {
	a := normalizeAngle(angle)
	return a > math.Pi/2 && a < 1.5*math.Pi
}

// arcTotal sums the positive values of an arc series up to limit entries
// (all when limit <= 0). Negative values have no sweep and count as zero.
func arcTotal(s Series, limit int) float64 {
	total := 0.0
	for i, v := range s.Values {
		if limit > 0 && i >= limit {
			break
		}
		if v.Valid && v.V > 0 {
			total += v.V
		}
	}
	return total
}

// firstArcSeries returns the index of the first visible arc series, or -1.
func firstArcSeries(f *Frame) int {
	for i, s := range f.Series {
		if s.Kind == Arc && !s.Hidden {
			return i
		}
	}
	return -1
}

func seriesRecords(recs []GeometryRecord, series int) []GeometryRecord {
	var out []GeometryRecord
	for _, r := range recs {
		if r.Series == series {
			out = append(out, r)
		}
	}
	return out
}

// radialText composes "label value (p%)", reversed for left-side labels so
// the percentage sits nearest the ring.
func radialText(label, value string, percent int, left bool) string {
	pct := "(" + strconv.Itoa(percent) + "%)"
	parts := []string{label, value, pct}
	if left {
		parts = []string{pct, value, label}
	}
	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(p)
	}
	return b.String()
}

type placedBox struct {
	x, y  float64
	small bool
}

// LayoutRadial places external labels for the first arc series of f.
// Labels are resolved in arc order. A zero or negative total places nothing.
func (e *Engine) LayoutRadial(f *Frame) []PlacedLabel {
	if !f.Sized() {
		e.debug("radial layout skipped", "reason", "frame not sized")
		return nil
	}
	si := firstArcSeries(f)
	if si < 0 {
		return nil
	}
	total := arcTotal(f.Series[si], 0)
	if !(total > 0) || math.IsInf(total, 0) {
		e.debug("radial layout skipped", "reason", "zero total", "series", si)
		return nil
	}
	cands := e.BuildRadial(f, seriesRecords(Snapshot(f), si), total)
	resolved := e.ResolveRadial(cands)

	placed := make([]PlacedLabel, 0, len(resolved))
	displaced := 0
	for _, c := range resolved {
		p := PlacedLabel{Candidate: c, Color: e.sliceColor(f, c.Record)}
		if c.NeedsLeader {
			displaced++
			p.Leader = e.radialLeader(c)
		}
		placed = append(placed, p)
	}
	e.debug("radial layout", "labels", len(placed), "displaced", displaced, "total", total)
	return placed
}

// BuildRadial returns one external-label candidate per non-null arc record.
// total must be positive.
func (e *Engine) BuildRadial(f *Frame, recs []GeometryRecord, total float64) []Candidate {
	st := arcStyle{e}
	var out []Candidate
	for _, r := range recs {
		if r.Kind != Arc || !r.Value.Valid {
			continue
		}
		share := r.Value.V / total
		pct := int(math.Round(share * 100))
		left := IsLeft(r.MidAngle())

		c := candidate(f.Surface, st, r, radialText(r.Label, r.Value.Text(), pct, left))
		c.AnchorX, c.AnchorY = polar(r.X, r.Y, (r.InnerRadius+r.OuterRadius)/2, r.MidAngle())
		c.Small = share < e.opts.Radial.SmallThreshold
		c.Percent = pct
		c.Side = SideRight
		if left {
			c.Side = SideLeft
		}
		out = append(out, c)
	}
	return out
}

// ResolveRadial resolves external labels in order. Large slices keep their
// default position. Each small label is pushed down by a fraction of the
// label height for every earlier label it collides with; if its text box
// then still sits over the ring it is moved sideways, away from the centre.
func (e *Engine) ResolveRadial(cands []Candidate) []Candidate {
	o := e.opts.Radial
	out := make([]Candidate, len(cands))
	copy(out, cands)

	placed := make([]placedBox, 0, len(out))
	for i := range out {
		c := &out[i]
		if !c.Small {
			placed = append(placed, placedBox{c.TargetX, c.TargetY, false})
			continue
		}

		h := o.LabelHeight
		offset := 0.0
		for _, p := range placed {
			limit := h
			if p.small {
				limit = o.SmallRatio * h
			}
			if math.Abs(c.DefaultX-p.x) < o.XWindow && math.Abs(c.DefaultY-p.y) < limit {
				offset += o.ShiftRatio * h
			}
		}
		c.TargetY = c.DefaultY + offset

		if e.onRing(*c) {
			if c.Side == SideLeft {
				c.TargetX -= o.Displacement
			} else {
				c.TargetX += o.Displacement
			}
		}
		placed = append(placed, placedBox{c.TargetX, c.TargetY, true})
	}

	for i := range out {
		out[i].NeedsLeader = out[i].Displaced()
	}
	return out
}

// onRing reports whether the centre of c's text box lies within the ring
// plus margin.
func (e *Engine) onRing(c Candidate) bool {
	cx := c.TargetX + c.Width/2
	if c.Side == SideLeft {
		cx = c.TargetX - c.Width/2
	}
	r := c.Record
	return math.Hypot(cx-r.X, c.TargetY-r.Y) < r.OuterRadius+e.opts.Radial.BodyMargin
}
