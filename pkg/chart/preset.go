package chart

import "github.com/matzehuels/chartlabel/pkg/label"

// Preset returns the plugins a chart of c's type registers, in run order.
func Preset(e *label.Engine, c *Chart) []label.Plugin {
	var ps []label.Plugin
	switch c.Type {
	case Column:
		ps = append(ps, highlight(e, c)...)
		ps = append(ps, e.ValueLabels())
	case Line, Mixed:
		ps = append(ps, label.NullPoints())
		ps = append(ps, highlight(e, c)...)
		ps = append(ps, e.PointGradient(), e.ValueLabels())
	case Pie:
		ps = append(ps, e.ExternalLabels())
	case Doughnut:
		ps = append(ps, e.ExternalLabels())
		if c.CenterText != "" {
			ps = append(ps, e.CenterLabel(c.CenterText))
		}
	case Gauge:
		ps = append(ps, e.GaugeValues())
	}
	return ps
}

func highlight(e *label.Engine, c *Chart) []label.Plugin {
	if c.Highlight == "" {
		return nil
	}
	return []label.Plugin{e.HighlightColumn(c.Highlight, "")}
}
