package label

import "slices"

// Radii used when a line series leaves its point radius unset.
const (
	DefaultPointRadius = 6
	DefaultHoverRadius = 8
)

// PointOverrides are per-series, per-index point radii computed for one
// frame. The host draws line points with these instead of the radii on the
// series.
type PointOverrides struct {
	Radius map[int][]float64
	Hover  map[int][]float64
}

func (o PointOverrides) radius(series, index int) (float64, bool) {
	rs, ok := o.Radius[series]
	if !ok || index < 0 || index >= len(rs) {
		return 0, false
	}
	return rs[index], true
}

// RadiusAt returns the overridden radius, or def when none is set.
func (o PointOverrides) RadiusAt(series, index int, def float64) float64 {
	if r, ok := o.radius(series, index); ok {
		return r
	}
	return def
}

// HoverAt returns the overridden hover radius, or def when none is set.
func (o PointOverrides) HoverAt(series, index int, def float64) float64 {
	rs, ok := o.Hover[series]
	if !ok || index < 0 || index >= len(rs) {
		return def
	}
	return rs[index]
}

// SuppressNullPoints expands every line series' point and hover radius into
// a per-index list and zeroes the entries whose value is null. Non-null
// entries keep the series radius. Series are not modified.
func SuppressNullPoints(series []Series) PointOverrides {
	o := PointOverrides{Radius: map[int][]float64{}, Hover: map[int][]float64{}}
	for si, s := range series {
		if s.Kind != LinePoint {
			continue
		}
		o.Radius[si] = expand(s.Values, s.PointRadius, DefaultPointRadius)
		o.Hover[si] = expand(s.Values, s.HoverRadius, DefaultHoverRadius)
	}
	return o
}

func expand(values []Value, r Radii, def float64) []float64 {
	var base []float64
	if r.Explicit() {
		base = slices.Clone(r.PerPoint)
	} else {
		scalar := r.Scalar
		if scalar <= 0 {
			scalar = def
		}
		base = make([]float64, len(values))
		for i := range base {
			base[i] = scalar
		}
	}
	out := make([]float64, len(values))
	for i, v := range values {
		switch {
		case !v.Valid:
			out[i] = 0
		case i < len(base):
			out[i] = base[i]
		default:
			out[i] = def
		}
	}
	return out
}
