package chart

import (
	"fmt"
	"math"

	"github.com/matzehuels/chartlabel/pkg/label"
	"github.com/matzehuels/chartlabel/pkg/surface"
	"github.com/matzehuels/chartlabel/pkg/theme"
)

// Plot area padding in CSS pixels.
const (
	padLeft    = 48
	padRight   = 16
	padTop     = 24
	padBottom  = 32
	padRadial  = 16
	titleSpace = 28

	tickCount = 6
	// barGroup is the share of a category band covered by its bars.
	barGroup = 0.7
)

// Arc chart proportions.
const (
	pieRadiusShare   = 0.3 // of the area width; leaves room for external labels
	doughnutHole     = 0.55
	gaugeHole        = 0.6
	gaugeCenterShare = 0.75
	fullTurn         = 2 * math.Pi
)

// Layout is the resolved geometry of a chart on a canvas.
type Layout struct {
	Width, Height float64
	Area          surface.Area
	// Scale is unset on arc charts.
	Scale   Scale
	Columns []float64
}

// Measure computes the plot area, value scale and column centres.
func Measure(c *Chart, width, height float64) Layout {
	l := Layout{Width: width, Height: height}
	top := float64(padTop)
	if c.Title != "" {
		top += titleSpace
	}
	if c.Type.Radial() {
		l.Area = surface.Area{Left: padRadial, Top: top, Right: width - padRadial, Bottom: height - padRadial}
		return l
	}
	l.Area = surface.Area{Left: padLeft, Top: top, Right: width - padRight, Bottom: height - padBottom}

	lo, hi := 0.0, 0.0
	for _, d := range c.Datasets {
		if d.Hidden {
			continue
		}
		for _, v := range d.Data {
			if v.Valid {
				lo, hi = math.Min(lo, v.V), math.Max(hi, v.V)
			}
		}
	}
	l.Scale = niceScale(lo, hi, tickCount)
	l.Scale.Top, l.Scale.Bottom = l.Area.Top, l.Area.Bottom

	n := len(c.Labels)
	for _, d := range c.Datasets {
		n = max(n, len(d.Data))
	}
	if n > 0 {
		band := l.Area.Width() / float64(n)
		l.Columns = make([]float64, n)
		for i := range l.Columns {
			l.Columns[i] = l.Area.Left + (float64(i)+0.5)*band
		}
	}
	return l
}

// NewFrame lays the chart out on s and returns the engine's view of it.
func NewFrame(s surface.Surface, c *Chart, l Layout, r theme.Resolver) *label.Frame {
	f := &label.Frame{
		Surface: s,
		Area:    l.Area,
		Labels:  c.Labels,
		Series:  c.series(),
		Columns: l.Columns,
	}
	if c.Type.Radial() {
		arcGeometry(c, f)
		arcColors(f, r)
	} else {
		linearGeometry(f, l)
	}
	return f
}

func linearGeometry(f *label.Frame, l Layout) {
	var bars []int
	for i, s := range f.Series {
		if s.Kind == label.Bar && !s.Hidden {
			bars = append(bars, i)
		}
	}
	band := 0.0
	if len(l.Columns) > 0 {
		band = l.Area.Width() / float64(len(l.Columns))
	}
	bw := 0.0
	if len(bars) > 0 {
		bw = band * barGroup / float64(len(bars))
	}
	base := l.Scale.Pixel(0)

	for si := range f.Series {
		s := &f.Series[si]
		if s.Hidden {
			continue
		}
		slot := -1
		for k, b := range bars {
			if b == si {
				slot = k
			}
		}
		s.Elements = make([]label.Element, min(len(s.Values), len(l.Columns)))
		for i := range s.Elements {
			v := s.Values[i]
			x := l.Columns[i]
			switch s.Kind {
			case label.Bar:
				x += -band*barGroup/2 + (float64(slot)+0.5)*bw
				y := math.NaN()
				if v.Valid {
					y = l.Scale.Pixel(v.V)
				}
				s.Elements[i] = label.Element{X: x, Y: y, Width: bw, Base: base}
			case label.LinePoint:
				// Missing points sit on the baseline so they still occupy a
				// marker slot until null points are suppressed.
				y := base
				if v.Valid {
					y = l.Scale.Pixel(v.V)
				}
				s.Elements[i] = label.Element{X: x, Y: y}
			}
		}
	}
}

func arcGeometry(c *Chart, f *label.Frame) {
	a := f.Area
	cx, cy := a.CenterX(), a.CenterY()
	var outer, hole, start, span float64
	switch c.Type {
	case Gauge:
		cy = a.Top + a.Height()*gaugeCenterShare
		outer = math.Min(a.Width()/2-60, a.Height()*0.7)
		hole, start, span = gaugeHole, math.Pi, math.Pi
	default:
		outer = math.Min(a.Width()*pieRadiusShare, a.Height()/2-24)
		start, span = -math.Pi/2, fullTurn
		if c.Type == Doughnut {
			hole = doughnutHole
		}
	}
	outer = math.Max(outer, 10)
	inner := outer * hole

	var visible []int
	for i, s := range f.Series {
		if !s.Hidden {
			visible = append(visible, i)
		}
	}
	if len(visible) == 0 {
		return
	}
	ring := (outer - inner) / float64(len(visible))
	for k, si := range visible {
		s := &f.Series[si]
		ro := outer - float64(k)*ring
		ri := ro - ring

		total := 0.0
		for _, v := range s.Values {
			if v.Valid && v.V > 0 {
				total += v.V
			}
		}
		s.Elements = make([]label.Element, len(s.Values))
		angle := start
		for i, v := range s.Values {
			sweep := 0.0
			if total > 0 && v.Valid && v.V > 0 {
				sweep = v.V / total * span
			}
			s.Elements[i] = label.Element{
				X: cx, Y: cy,
				StartAngle: angle, EndAngle: angle + sweep,
				InnerRadius: ri, OuterRadius: ro,
			}
			angle += sweep
		}
	}
}

// sliceTokens is the number of --chart-sliceNN colors in a palette.
const sliceTokens = 4

func arcColors(f *label.Frame, r theme.Resolver) {
	for si := range f.Series {
		s := &f.Series[si]
		colors := make([]string, len(s.Values))
		for i := range colors {
			if i < len(s.Colors) && s.Colors[i] != "" {
				colors[i] = s.Colors[i]
				continue
			}
			colors[i] = theme.Or(r, fmt.Sprintf("--chart-slice%02d", i%sliceTokens+1), "#999999")
		}
		s.Colors = colors
	}
}
