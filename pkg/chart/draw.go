package chart

import (
	"fmt"
	"math"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/chartlabel/pkg/label"
	"github.com/matzehuels/chartlabel/pkg/surface"
	"github.com/matzehuels/chartlabel/pkg/theme"
)

const (
	axisFont  = "11px sans-serif"
	titleFont = "bold 16px sans-serif"
	lineWidth = 2
	// arcSteps is the number of segments used for a ring's inner edge.
	arcSteps = 48
)

// DrawOption configures [Draw].
type DrawOption func(*drawer)

type drawer struct {
	theme   theme.Resolver
	plugins []label.Plugin
	logger  *log.Logger
	width   float64
	height  float64
}

// WithTheme resolves series, axis and title colors through r.
func WithTheme(r theme.Resolver) DrawOption { return func(d *drawer) { d.theme = r } }

// WithPlugins registers lifecycle plugins, run in order.
func WithPlugins(p ...label.Plugin) DrawOption {
	return func(d *drawer) { d.plugins = append(d.plugins, p...) }
}

// WithLogger logs plugin runs at debug level.
func WithLogger(l *log.Logger) DrawOption { return func(d *drawer) { d.logger = l } }

// WithSize overrides the chart's canvas size.
func WithSize(w, h float64) DrawOption {
	return func(d *drawer) { d.width, d.height = w, h }
}

// Draw lays out and draws c on s, running the plugin hooks around the
// dataset pass. The returned frame holds the geometry and placed labels.
func Draw(s surface.Surface, c *Chart, opts ...DrawOption) *label.Frame {
	d := drawer{theme: theme.Light}
	d.width, d.height = c.Size()
	for _, opt := range opts {
		opt(&d)
	}

	l := Measure(c, d.width, d.height)
	f := NewFrame(s, c, l, d.theme)

	if !c.Type.Radial() {
		d.axes(s, c, l)
	}
	for _, p := range d.plugins {
		d.debug("before datasets draw", "plugin", p.ID())
		p.BeforeDatasetsDraw(f)
	}
	if c.Type.Radial() {
		d.arcs(s, f)
	} else {
		d.bars(s, c, f)
		d.lines(s, c, f)
	}
	for _, p := range d.plugins {
		d.debug("after datasets draw", "plugin", p.ID())
		p.AfterDatasetsDraw(f)
	}
	d.title(s, c, l)
	d.debug("chart drawn", "chart", c.Name, "type", c.Type, "labels", len(f.Placed))
	return f
}

func (d *drawer) debug(msg string, kv ...any) {
	if d.logger != nil {
		d.logger.Debug(msg, kv...)
	}
}

func (d *drawer) color(token, fallback string) string {
	return theme.Or(d.theme, token, fallback)
}

// seriesColor returns the dataset color, or a themed default by kind.
func (d *drawer) seriesColor(c *Chart, si int, kind label.Kind) string {
	if col := c.Datasets[si].Color; col != "" {
		return col
	}
	if kind == label.LinePoint {
		if col := d.theme.Resolve(fmt.Sprintf("--stat-individual%02d", si+1)); col != "" {
			return col
		}
		return d.color(theme.TokenLine, "#249473")
	}
	return d.color(theme.TokenBar, "#918050")
}

func (d *drawer) axes(s surface.Surface, c *Chart, l Layout) {
	s.Save()
	defer s.Restore()

	s.SetFont(axisFont)
	s.SetLineWidth(1)
	s.SetStrokeColor(d.color(theme.TokenGrid, "rgba(0,0,0,0.08)"))
	s.SetFillColor(d.color(theme.TokenAxisText, "#666666"))

	s.SetTextAlign(surface.AlignRight)
	s.SetTextBaseline(surface.BaselineMiddle)
	for _, v := range l.Scale.Ticks() {
		y := l.Scale.Pixel(v)
		s.BeginPath()
		s.MoveTo(l.Area.Left, y)
		s.LineTo(l.Area.Right, y)
		s.Stroke()
		s.FillText(strconv.FormatFloat(v, 'f', -1, 64), l.Area.Left-6, y)
	}

	s.SetTextAlign(surface.AlignCenter)
	s.SetTextBaseline(surface.BaselineTop)
	for i, x := range l.Columns {
		if i < len(c.Labels) {
			s.FillText(c.Labels[i], x, l.Area.Bottom+6)
		}
	}
}

func (d *drawer) bars(s surface.Surface, c *Chart, f *label.Frame) {
	for si, ser := range f.Series {
		if ser.Hidden || ser.Kind != label.Bar {
			continue
		}
		s.Save()
		s.SetFillColor(d.seriesColor(c, si, label.Bar))
		for i, el := range ser.Elements {
			if !ser.Values[i].Valid || math.IsNaN(el.Y) {
				continue
			}
			top, h := math.Min(el.Y, el.Base), math.Abs(el.Base-el.Y)
			s.BeginPath()
			s.Rect(el.X-el.Width/2, top, el.Width, h)
			s.Fill()
		}
		s.Restore()
	}
}

func (d *drawer) lines(s surface.Surface, c *Chart, f *label.Frame) {
	for si, ser := range f.Series {
		if ser.Hidden || ser.Kind != label.LinePoint {
			continue
		}
		col := d.seriesColor(c, si, label.LinePoint)
		s.Save()
		s.SetStrokeColor(col)
		s.SetLineWidth(lineWidth)
		s.BeginPath()
		pen := false
		for i, el := range ser.Elements {
			if !ser.Values[i].Valid {
				pen = false
				continue
			}
			if pen {
				s.LineTo(el.X, el.Y)
			} else {
				s.MoveTo(el.X, el.Y)
				pen = true
			}
		}
		s.Stroke()

		s.SetFillColor(col)
		s.SetStrokeColor("#ffffff")
		s.SetLineWidth(1)
		for i, el := range ser.Elements {
			r := f.PointRadius(si, i)
			if !(r > 0) {
				continue
			}
			s.BeginPath()
			s.Arc(el.X, el.Y, r, 0, fullTurn)
			s.Fill()
			s.Stroke()
		}
		s.Restore()
	}
}

func (d *drawer) arcs(s surface.Surface, f *label.Frame) {
	for _, ser := range f.Series {
		if ser.Hidden {
			continue
		}
		for i, el := range ser.Elements {
			if !(el.EndAngle > el.StartAngle) {
				continue
			}
			s.Save()
			s.SetFillColor(ser.Colors[i])
			s.SetStrokeColor("#ffffff")
			s.SetLineWidth(lineWidth)
			s.BeginPath()
			if el.InnerRadius > 0 {
				s.Arc(el.X, el.Y, el.OuterRadius, el.StartAngle, el.EndAngle)
				for k := arcSteps; k >= 0; k-- {
					a := el.StartAngle + (el.EndAngle-el.StartAngle)*float64(k)/arcSteps
					s.LineTo(el.X+el.InnerRadius*math.Cos(a), el.Y+el.InnerRadius*math.Sin(a))
				}
			} else {
				s.MoveTo(el.X, el.Y)
				s.Arc(el.X, el.Y, el.OuterRadius, el.StartAngle, el.EndAngle)
			}
			s.ClosePath()
			s.Fill()
			s.Stroke()
			s.Restore()
		}
	}
}

func (d *drawer) title(s surface.Surface, c *Chart, l Layout) {
	if c.Title == "" {
		return
	}
	s.Save()
	s.SetFont(titleFont)
	s.SetFillColor(d.color(theme.TokenTitle, "#121212"))
	s.SetTextAlign(surface.AlignCenter)
	s.SetTextBaseline(surface.BaselineTop)
	s.FillText(c.Title, l.Width/2, padRadial/2)
	s.Restore()
}
