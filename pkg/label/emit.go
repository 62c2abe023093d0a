package label

import "github.com/matzehuels/chartlabel/pkg/surface"

// DrawLinear paints resolved bar and line labels in z-order: line label
// chips, leaders, bar texts, then line texts, so line labels always sit on
// top of bar labels.
func (e *Engine) DrawLinear(s surface.Surface, placed []PlacedLabel) {
	ls := lineStyle{e}
	for _, p := range placed {
		if p.Record.Kind == LinePoint {
			ls.chip(s, p)
		}
	}
	for _, p := range placed {
		drawLeader(s, p.Leader)
	}
	for _, kind := range []Kind{Bar, LinePoint} {
		st := e.style(kind)
		for _, p := range placed {
			if p.Record.Kind == kind {
				st.draw(s, p)
			}
		}
	}
}

// DrawRadial paints external labels in arc order, each with its leader.
func (e *Engine) DrawRadial(s surface.Surface, placed []PlacedLabel) {
	st := arcStyle{e}
	for _, p := range placed {
		drawLeader(s, p.Leader)
		st.draw(s, p)
	}
}

// DrawGauge paints the reference rule, then each label with its leader.
func (e *Engine) DrawGauge(s surface.Surface, g GaugeLayout) {
	if g.HasRule {
		s.Save()
		s.SetStrokeColor(e.color(tokenGaugeRule, "rgba(0,0,0,0.40)"))
		s.SetLineWidth(1)
		s.BeginPath()
		s.MoveTo(g.Rule[0].X, g.Rule[0].Y)
		s.LineTo(g.Rule[1].X, g.Rule[1].Y)
		s.Stroke()
		s.Restore()
	}
	st := gaugeStyle{e}
	for _, p := range g.Labels {
		drawLeader(s, p.Leader)
		st.draw(s, p)
	}
}
