package chart

import "math"

// Scale maps data values onto the vertical pixel range of the plot area.
type Scale struct {
	Min, Max, Step float64
	Top, Bottom    float64
}

// Pixel returns the y coordinate of v.
func (s Scale) Pixel(v float64) float64 {
	if s.Max == s.Min {
		return s.Bottom
	}
	return s.Bottom - (v-s.Min)/(s.Max-s.Min)*(s.Bottom-s.Top)
}

// Ticks returns the tick values from Min to Max inclusive.
func (s Scale) Ticks() []float64 {
	if !(s.Step > 0) {
		return nil
	}
	var out []float64
	for v := s.Min; v <= s.Max+s.Step/2; v += s.Step {
		out = append(out, math.Round(v/s.Step)*s.Step)
	}
	return out
}

// headroom keeps the tallest value below the top tick so labels above it
// stay inside the canvas.
const headroom = 1.08

// niceScale returns a scale spanning lo..hi (always including zero) with
// round tick steps.
func niceScale(lo, hi float64, ticks int) Scale {
	lo, hi = math.Min(lo, 0), math.Max(hi, 0)
	if hi > 0 {
		hi *= headroom
	}
	if lo < 0 {
		lo *= headroom
	}
	if hi-lo < 1e-9 {
		hi = lo + 1
	}
	step := niceNum((hi-lo)/float64(max(ticks-1, 1)), true)
	return Scale{
		Min:  math.Floor(lo/step) * step,
		Max:  math.Ceil(hi/step) * step,
		Step: step,
	}
}

// niceNum rounds x to 1, 2, 5 or 10 times a power of ten.
func niceNum(x float64, round bool) float64 {
	exp := math.Floor(math.Log10(x))
	f := x / math.Pow(10, exp)
	var nf float64
	switch {
	case round && f < 1.5, !round && f <= 1:
		nf = 1
	case round && f < 3, !round && f <= 2:
		nf = 2
	case round && f < 7, !round && f <= 5:
		nf = 5
	default:
		nf = 10
	}
	return nf * math.Pow(10, exp)
}
