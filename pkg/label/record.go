package label

import (
	"math"
	"strconv"

	"github.com/matzehuels/chartlabel/pkg/surface"
)

// Kind is the primitive a geometry record was read from.
type Kind int

const (
	Bar Kind = iota
	LinePoint
	Arc
)

func (k Kind) String() string {
	switch k {
	case Bar:
		return "bar"
	case LinePoint:
		return "line"
	case Arc:
		return "arc"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// ParseKind maps a dataset type name to a Kind.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "bar", "column":
		return Bar, true
	case "line":
		return LinePoint, true
	case "arc", "pie", "doughnut", "gauge":
		return Arc, true
	}
	return 0, false
}

// Value is a nullable data value. The zero Value is null.
type Value struct {
	V     float64
	Valid bool
}

// Num returns a non-null value.
func Num(v float64) Value { return Value{V: v, Valid: true} }

// Null is the missing value.
var Null = Value{}

// Text renders the value in its shortest decimal form. Null renders as "".
func (v Value) Text() string {
	if !v.Valid {
		return ""
	}
	return strconv.FormatFloat(v.V, 'f', -1, 64)
}

// Element is the rendered geometry of one data point as reported by the host.
// Bars use X, Y (top), Width and Base; line points use X and Y; arcs use X and
// Y as the centre together with the angle and radius fields.
type Element struct {
	X, Y        float64
	Width, Base float64

	StartAngle, EndAngle     float64
	InnerRadius, OuterRadius float64
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Radii is a point radius given either as one scalar or per index.
type Radii struct {
	Scalar   float64
	PerPoint []float64
}

// Explicit reports whether a per-index list is present.
func (r Radii) Explicit() bool { return r.PerPoint != nil }

// At returns the radius for index i, falling back to the scalar and then def.
func (r Radii) At(i int, def float64) float64 {
	if r.PerPoint != nil {
		if i >= 0 && i < len(r.PerPoint) {
			return r.PerPoint[i]
		}
		return def
	}
	if r.Scalar > 0 {
		return r.Scalar
	}
	return def
}

// Series is one dataset as seen by the engine.
type Series struct {
	Label    string
	Kind     Kind
	Values   []Value
	Elements []Element
	Hidden   bool

	// Colors are per-point fill colors; radial labels are drawn in the color
	// of their slice.
	Colors []string

	// LabelToken overrides the theme token used for this series' value
	// labels.
	LabelToken string

	PointRadius Radii
	HoverRadius Radii

	// Gradient overrides the point gradient stops for this series.
	Gradient []surface.ColorStop
}

// Frame is the host's view of one draw pass.
type Frame struct {
	Surface surface.Surface
	Area    surface.Area

	// Labels are the category labels, indexed like series values.
	Labels []string
	Series []Series

	// Columns holds the pixel centre of every category on the x axis.
	Columns []float64

	// Points is published by [NullPoints] before the host draws its series.
	Points PointOverrides

	// Placed collects every label drawn by the after-draw plugins.
	Placed []PlacedLabel
}

// Sized reports whether the frame has a surface and a non-empty area.
func (f *Frame) Sized() bool {
	return f != nil && f.Surface != nil && f.Area.Width() > 0 && f.Area.Height() > 0
}

// Label returns the category label at i, or "".
func (f *Frame) Label(i int) string {
	if i >= 0 && i < len(f.Labels) {
		return f.Labels[i]
	}
	return ""
}

// hostPointRadius is the host's point radius when a series sets none.
const hostPointRadius = 3

// PointRadius returns the effective radius of a line point, honouring the
// frame's overrides.
func (f *Frame) PointRadius(series, index int) float64 {
	if r, ok := f.Points.radius(series, index); ok {
		return r
	}
	if series < 0 || series >= len(f.Series) {
		return 0
	}
	return f.Series[series].PointRadius.At(index, hostPointRadius)
}

// GeometryRecord is one normalised data point of the current frame.
type GeometryRecord struct {
	Series, Index int
	Kind          Kind
	X, Y          float64
	Width         float64
	Radius        float64

	StartAngle, EndAngle     float64
	InnerRadius, OuterRadius float64

	Value Value
	Label string
}

// MidAngle returns the bisecting angle of an arc record.
func (r GeometryRecord) MidAngle() float64 { return (r.StartAngle + r.EndAngle) / 2 }

// Snapshot reads the frame's geometry into records, in series then point
// order. Points without geometry, or with non-finite geometry, are skipped.
// Null-valued points with geometry are kept so they can act as obstacles.
func Snapshot(f *Frame) []GeometryRecord {
	if f == nil {
		return nil
	}
	var out []GeometryRecord
	for si, s := range f.Series {
		if s.Hidden {
			continue
		}
		for i, v := range s.Values {
			if i >= len(s.Elements) {
				break
			}
			el := s.Elements[i]
			if !finite(el.X, el.Y) {
				continue
			}
			rec := GeometryRecord{
				Series: si,
				Index:  i,
				Kind:   s.Kind,
				X:      el.X,
				Y:      el.Y,
				Value:  v,
				Label:  f.Label(i),
			}
			switch s.Kind {
			case Bar:
				rec.Width = el.Width
			case LinePoint:
				rec.Radius = f.PointRadius(si, i)
			case Arc:
				if !finite(el.StartAngle, el.EndAngle, el.InnerRadius, el.OuterRadius) {
					continue
				}
				rec.StartAngle, rec.EndAngle = el.StartAngle, el.EndAngle
				rec.InnerRadius, rec.OuterRadius = el.InnerRadius, el.OuterRadius
			}
			out = append(out, rec)
		}
	}
	return out
}
