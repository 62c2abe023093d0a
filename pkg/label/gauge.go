package label

import "math"

// GaugeLayout is the resolved label set of a gauge chart.
type GaugeLayout struct {
	// Rule is the static reference line under the gauge; HasRule is false
	// when the gauge has no arc geometry.
	Rule    [2]Point
	HasRule bool
	Labels  []PlacedLabel
}

// LayoutGauge labels the first Slots arcs of the first arc series. Thin
// slices are labelled outside the ring with a bullet and dashed leader;
// the rest are labelled inline at mid-radius. Null and zero values are not
// labelled, and a zero total labels nothing.
func (e *Engine) LayoutGauge(f *Frame) GaugeLayout {
	var g GaugeLayout
	if !f.Sized() {
		e.debug("gauge layout skipped", "reason", "frame not sized")
		return g
	}
	si := firstArcSeries(f)
	if si < 0 {
		return g
	}
	o := e.opts.Gauge
	recs := seriesRecords(Snapshot(f), si)
	if len(recs) > 0 {
		r := recs[0]
		reach := r.OuterRadius + o.RuleOverhang
		g.Rule = [2]Point{{r.X - reach, r.Y}, {r.X + reach, r.Y}}
		g.HasRule = true
	}

	total := arcTotal(f.Series[si], o.Slots)
	if !(total > 0) || math.IsInf(total, 0) {
		e.debug("gauge layout skipped", "reason", "zero total", "series", si)
		return g
	}

	st := gaugeStyle{e}
	for _, r := range recs {
		if r.Index >= o.Slots || !r.Value.Valid || r.Value.V == 0 {
			continue
		}
		share := r.Value.V / total
		c := candidate(f.Surface, st, r, r.Value.Text())
		c.Percent = int(math.Round(share * 100))
		c.Small = share < o.SmallThreshold
		if c.Small {
			c.TargetX, c.TargetY = polar(r.X, r.Y, r.OuterRadius+o.TextOffset, r.MidAngle())
		}
		c.NeedsLeader = c.Displaced()

		p := PlacedLabel{Candidate: c, Color: e.color(tokenGaugeText, "#ffffff")}
		if c.NeedsLeader {
			p.Leader = e.gaugeLeader(c)
		}
		g.Labels = append(g.Labels, p)
	}
	e.debug("gauge layout", "labels", len(g.Labels), "total", total)
	return g
}
