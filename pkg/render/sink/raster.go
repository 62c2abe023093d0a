package sink

import (
	"bytes"
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/matzehuels/chartlabel/pkg/fonts"
	"github.com/matzehuels/chartlabel/pkg/surface"
)

// RasterOption configures a [Raster] surface.
type RasterOption func(*Raster)

// WithScale renders at a device pixel ratio. Coordinates stay in CSS pixels.
func WithScale(scale float64) RasterOption {
	return func(r *Raster) {
		if scale > 0 {
			r.scale = scale
		}
	}
}

// WithRasterBackground clears the canvas to color first.
func WithRasterBackground(c string) RasterOption {
	return func(r *Raster) { r.background = c }
}

// Raster is a [surface.Surface] backed by a gg context. Scaling is applied to
// coordinates and font sizes directly so glyphs are rasterised at the device
// resolution rather than resampled.
type Raster struct {
	surface.Stack
	surface.Path

	dc         *gg.Context
	scale      float64
	background string
	faces      map[fonts.Spec]font.Face
}

// NewRaster returns a transparent canvas of width x height CSS pixels.
func NewRaster(width, height float64, opts ...RasterOption) *Raster {
	r := &Raster{
		Stack: surface.NewStack(),
		scale: 1,
		faces: map[fonts.Spec]font.Face{},
	}
	for _, opt := range opts {
		opt(r)
	}
	w := max(1, int(math.Ceil(width*r.scale)))
	h := max(1, int(math.Ceil(height*r.scale)))
	r.dc = gg.NewContext(w, h)
	if r.background != "" {
		r.dc.SetColor(mustColor(r.background))
		r.dc.Clear()
	}
	return r
}

// Image returns the rendered image.
func (r *Raster) Image() image.Image { return r.dc.Image() }

// PNG encodes the canvas.
func (r *Raster) PNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := r.dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *Raster) MeasureText(text string) surface.TextMetrics {
	w, h := fonts.Measure(r.Current().Font, text)
	return surface.TextMetrics{Width: w, Height: h}
}

func (r *Raster) Fill() {
	if len(r.Segments()) == 0 {
		return
	}
	st := r.Current()
	if st.Shadow.Enabled() {
		r.replay(st.Shadow.OffsetX, st.Shadow.OffsetY)
		r.dc.SetColor(mustColor(st.Shadow.Color))
		r.dc.Fill()
	}
	r.replay(0, 0)
	if st.Fill.Gradient != nil {
		r.dc.SetFillStyle(r.pattern(*st.Fill.Gradient))
	} else {
		r.dc.SetColor(mustColor(st.Fill.Color))
	}
	r.dc.Fill()
}

func (r *Raster) Stroke() {
	if len(r.Segments()) == 0 {
		return
	}
	st := r.Current()
	r.dc.SetLineWidth(st.LineWidth * r.scale)
	dash := make([]float64, len(st.Dash))
	for i, d := range st.Dash {
		dash[i] = d * r.scale
	}
	r.dc.SetDash(dash...)
	if st.Shadow.Enabled() {
		r.replay(st.Shadow.OffsetX, st.Shadow.OffsetY)
		r.dc.SetColor(mustColor(st.Shadow.Color))
		r.dc.Stroke()
	}
	r.replay(0, 0)
	r.dc.SetColor(mustColor(st.Stroke))
	r.dc.Stroke()
	r.dc.SetDash()
}

func (r *Raster) FillText(text string, x, y float64) {
	st := r.Current()
	c := st.Fill.Color
	if g := st.Fill.Gradient; g != nil && len(g.Stops) > 0 {
		c = g.Stops[0].Color
	}
	if st.Shadow.Enabled() {
		r.text(st, mustColor(st.Shadow.Color), text, x+st.Shadow.OffsetX, y+st.Shadow.OffsetY)
	}
	r.text(st, mustColor(c), text, x, y)
}

// StrokeText approximates an outline by stamping the text in the stroke
// color around a ring of half the line width.
func (r *Raster) StrokeText(text string, x, y float64) {
	st := r.Current()
	c := mustColor(st.Stroke)
	d := st.LineWidth / 2
	for i := 0; i < 8; i++ {
		a := float64(i) * math.Pi / 4
		r.text(st, c, text, x+d*math.Cos(a), y+d*math.Sin(a))
	}
}

func (r *Raster) text(st surface.State, c color.Color, text string, x, y float64) {
	face, err := r.face(st.Font)
	if err != nil {
		return
	}
	ax := 0.0
	switch st.Align {
	case surface.AlignCenter:
		ax = 0.5
	case surface.AlignRight:
		ax = 1
	}
	r.dc.SetFontFace(face)
	r.dc.SetColor(c)
	r.dc.DrawStringAnchored(text, x*r.scale, baselineY(st, y)*r.scale, ax, 0)
}

func (r *Raster) face(css string) (font.Face, error) {
	spec := fonts.Parse(css)
	spec.Size *= r.scale
	if f, ok := r.faces[spec]; ok {
		return f, nil
	}
	f, err := fonts.NewFace(spec)
	if err != nil {
		return nil, err
	}
	r.faces[spec] = f
	return f, nil
}

// replay rebuilds the recorded path on the gg context, scaled and shifted.
func (r *Raster) replay(dx, dy float64) {
	s := r.scale
	dc := r.dc
	dc.ClearPath()
	for _, sg := range r.Segments() {
		x, y := (sg.X+dx)*s, (sg.Y+dy)*s
		switch sg.Op {
		case surface.OpMoveTo:
			dc.MoveTo(x, y)
		case surface.OpLineTo:
			dc.LineTo(x, y)
		case surface.OpArc:
			if sg.R > 0 {
				dc.DrawArc(x, y, sg.R*s, sg.Start, sg.End)
			}
		case surface.OpRect:
			dc.DrawRectangle(x, y, sg.W*s, sg.H*s)
		case surface.OpRoundRect:
			dc.DrawRoundedRectangle(x, y, sg.W*s, sg.H*s, sg.R*s)
		case surface.OpClose:
			dc.ClosePath()
		}
	}
}

func (r *Raster) pattern(g surface.Gradient) gg.Pattern {
	s := r.scale
	var p gg.Gradient
	if g.Kind == surface.GradientRadial {
		p = gg.NewRadialGradient(g.X0*s, g.Y0*s, g.R0*s, g.X1*s, g.Y1*s, g.R1*s)
	} else {
		p = gg.NewLinearGradient(g.X0*s, g.Y0*s, g.X1*s, g.Y1*s)
	}
	for _, st := range g.Stops {
		p.AddColorStop(st.Offset, mustColor(st.Color))
	}
	return p
}

// mustColor parses c, painting unknown colors transparent.
func mustColor(c string) color.Color {
	parsed, err := ParseColor(c)
	if err != nil {
		return color.Transparent
	}
	return parsed
}

var _ surface.Surface = (*Raster)(nil)
