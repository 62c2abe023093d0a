package label

import "github.com/matzehuels/chartlabel/pkg/surface"

// CenterLabel is the annotation drawn in the hole of a doughnut.
type CenterLabel struct {
	X, Y  float64
	Lines []string
	// LineHeight separates the lines when the text was split.
	LineHeight float64
	// DiskRadius is the radius of the backing disk; zero draws none.
	DiskRadius float64

	Color     string
	DiskColor string
}

// LayoutCenter lays out text at the centre of the first arc series, or at
// the centre of the plotting area when there is none. Text wider than
// WrapRatio times the inner radius is split at its middle character.
func (e *Engine) LayoutCenter(f *Frame, text string) (CenterLabel, bool) {
	if !f.Sized() || text == "" {
		return CenterLabel{}, false
	}
	o := e.opts.Center
	cl := CenterLabel{
		X:          f.Area.CenterX(),
		Y:          f.Area.CenterY(),
		LineHeight: o.LineHeight,
		Color:      e.color(tokenCenterText, "#121212"),
		DiskColor:  e.color(tokenCenterDisk, "#f5f5f0"),
	}
	inner := 0.0
	if si := firstArcSeries(f); si >= 0 {
		if recs := seriesRecords(Snapshot(f), si); len(recs) > 0 {
			cl.X, cl.Y, inner = recs[0].X, recs[0].Y, recs[0].InnerRadius
		}
	}
	if inner > o.DiskInset {
		cl.DiskRadius = inner - o.DiskInset
	}

	w, _ := measureWith(f.Surface, o.Font, text)
	runes := []rune(text)
	if w > o.WrapRatio*inner && len(runes) > 1 {
		mid := len(runes) / 2
		cl.Lines = []string{string(runes[:mid]), string(runes[mid:])}
	} else {
		cl.Lines = []string{text}
	}
	return cl, true
}

// LineY returns the baseline of line i, centring the block on Y.
func (cl CenterLabel) LineY(i int) float64 {
	n := float64(len(cl.Lines))
	return cl.Y + (float64(i)-(n-1)/2)*cl.LineHeight
}

// DrawCenter paints the backing disk with a soft shadow, then the text.
func (e *Engine) DrawCenter(s surface.Surface, cl CenterLabel) {
	s.Save()
	if cl.DiskRadius > 0 {
		s.Save()
		s.SetShadow(surface.Shadow{Color: "rgba(0,0,0,0.15)", Blur: 8, OffsetY: 2})
		s.SetFillColor(cl.DiskColor)
		s.BeginPath()
		s.Arc(cl.X, cl.Y, cl.DiskRadius, 0, fullTurn)
		s.Fill()
		s.Restore()
	}
	s.SetFont(e.opts.Center.Font)
	s.SetFillColor(cl.Color)
	s.SetTextAlign(surface.AlignCenter)
	s.SetTextBaseline(surface.BaselineMiddle)
	for i, line := range cl.Lines {
		s.FillText(line, cl.X, cl.LineY(i))
	}
	s.Restore()
}
