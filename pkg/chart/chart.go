package chart

import (
	"math"
	"slices"

	"github.com/matzehuels/chartlabel/pkg/errors"
	"github.com/matzehuels/chartlabel/pkg/label"
	"github.com/matzehuels/chartlabel/pkg/surface"
)

// Type selects the chart's geometry and its preset plugins.
type Type string

const (
	Column   Type = "column"
	Line     Type = "line"
	Mixed    Type = "mixed"
	Pie      Type = "pie"
	Doughnut Type = "doughnut"
	Gauge    Type = "gauge"
)

// Types lists every supported chart type.
var Types = []Type{Column, Line, Mixed, Pie, Doughnut, Gauge}

// ParseType maps a name to a Type. "bar" is accepted for Column.
func ParseType(s string) (Type, bool) {
	if s == "bar" {
		return Column, true
	}
	t := Type(s)
	return t, slices.Contains(Types, t)
}

// Radial reports whether the chart is drawn as arcs.
func (t Type) Radial() bool {
	return t == Pie || t == Doughnut || t == Gauge
}

// Default canvas size in CSS pixels.
const (
	DefaultWidth  = 640
	DefaultHeight = 400
)

// Dataset is one series of a chart.
type Dataset struct {
	Label string
	// Kind is Bar or LinePoint on category charts; arc charts ignore it.
	Kind   label.Kind
	Data   []label.Value
	Hidden bool

	// Color is the series fill or stroke; empty picks a theme color.
	Color string
	// Colors are per-point fills for arc charts.
	Colors []string

	LabelToken  string
	PointRadius label.Radii
	HoverRadius label.Radii
	Gradient    []surface.ColorStop
}

// Chart is a complete chart description.
type Chart struct {
	Name   string
	Type   Type
	Title  string
	Labels []string

	Datasets []Dataset

	// CenterText is drawn in a doughnut's hole.
	CenterText string
	// Highlight names a category whose column band is tinted.
	Highlight string

	Width, Height float64
}

// Size returns the canvas size, applying defaults for unset dimensions.
func (c *Chart) Size() (w, h float64) {
	w, h = c.Width, c.Height
	if !(w > 0) {
		w = DefaultWidth
	}
	if !(h > 0) {
		h = DefaultHeight
	}
	return w, h
}

// Validate checks the chart for problems that would make it undrawable.
// Data problems the engine tolerates (nulls, zero totals, short series) are
// not reported.
func (c *Chart) Validate() error {
	if _, ok := ParseType(string(c.Type)); !ok {
		return errors.New(errors.ErrCodeInvalidChart, "unknown chart type %q", c.Type)
	}
	if len(c.Datasets) == 0 {
		return errors.New(errors.ErrCodeInvalidChart, "chart %q has no datasets", c.Name)
	}
	if err := errors.ValidateDimension("width", c.Width); err != nil {
		return err
	}
	if err := errors.ValidateDimension("height", c.Height); err != nil {
		return err
	}
	for i, d := range c.Datasets {
		if !c.Type.Radial() && d.Kind == label.Arc {
			return errors.New(errors.ErrCodeInvalidChart, "dataset %d: arc series on a %s chart", i, c.Type)
		}
		for j, v := range d.Data {
			if v.Valid && (math.IsNaN(v.V) || math.IsInf(v.V, 0)) {
				return errors.New(errors.ErrCodeInvalidChart, "dataset %d: value %d is not finite", i, j)
			}
			if v.Valid && v.V < 0 && c.Type.Radial() {
				return errors.New(errors.ErrCodeInvalidChart, "dataset %d: value %d is negative on a %s chart", i, j, c.Type)
			}
		}
	}
	return nil
}

// series converts the datasets into engine series, without geometry.
func (c *Chart) series() []label.Series {
	out := make([]label.Series, len(c.Datasets))
	for i, d := range c.Datasets {
		kind := d.Kind
		switch {
		case c.Type.Radial():
			kind = label.Arc
		case c.Type == Column:
			kind = label.Bar
		case c.Type == Line:
			kind = label.LinePoint
		}
		out[i] = label.Series{
			Label:       d.Label,
			Kind:        kind,
			Values:      slices.Clone(d.Data),
			Hidden:      d.Hidden,
			Colors:      slices.Clone(d.Colors),
			LabelToken:  d.LabelToken,
			PointRadius: d.PointRadius,
			HoverRadius: d.HoverRadius,
			Gradient:    slices.Clone(d.Gradient),
		}
	}
	return out
}
