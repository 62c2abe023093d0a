package sink

import (
	"bytes"
	"encoding/base64"
	"encoding/xml"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/chartlabel/pkg/fonts"
	"github.com/matzehuels/chartlabel/pkg/surface"
)

// SVGOption configures an [SVG] surface.
type SVGOption func(*SVG)

// WithBackground fills the whole canvas with color before anything is drawn.
func WithBackground(color string) SVGOption { return func(s *SVG) { s.background = color } }

// WithTitle adds an accessible <title> element.
func WithTitle(title string) SVGOption { return func(s *SVG) { s.title = title } }

// embeddedFamily names the Go fonts inside the document. The family from the
// font string follows it as a fallback.
const embeddedFamily = "Go"

// SVG is a [surface.Surface] that serialises every operation as an SVG
// element. Text is measured with the embedded Go fonts and each weight used
// is embedded as an @font-face rule, so viewers draw the measured glyphs.
type SVG struct {
	surface.Stack
	surface.Path

	width, height float64
	background    string
	title         string

	defs    bytes.Buffer
	body    bytes.Buffer
	nextID  int
	shadows map[surface.Shadow]string

	regular, bold bool // weights drawn so far
}

// NewSVG returns an empty canvas of the given size in pixels.
func NewSVG(width, height float64, opts ...SVGOption) *SVG {
	s := &SVG{
		Stack:   surface.NewStack(),
		width:   width,
		height:  height,
		shadows: map[surface.Shadow]string{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Bytes returns the complete document.
func (s *SVG) Bytes() []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%.0f" height="%.0f">`+"\n",
		num(s.width), num(s.height), s.width, s.height)
	if s.title != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", escapeXML(s.title))
	}
	if s.defs.Len() > 0 || s.regular || s.bold {
		buf.WriteString("  <defs>\n")
		s.writeFontFaces(&buf)
		buf.Write(s.defs.Bytes())
		buf.WriteString("  </defs>\n")
	}
	if s.background != "" {
		fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", escapeXML(s.background))
	}
	buf.Write(s.body.Bytes())
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (s *SVG) MeasureText(text string) surface.TextMetrics {
	w, h := fonts.Measure(s.Current().Font, text)
	return surface.TextMetrics{Width: w, Height: h}
}

func (s *SVG) Fill() {
	d := pathData(s.Segments())
	if d == "" {
		return
	}
	st := s.Current()
	fmt.Fprintf(&s.body, `  <path d="%s" fill="%s"%s/>`+"\n", d, s.paint(st.Fill), s.filter(st.Shadow))
}

func (s *SVG) Stroke() {
	d := pathData(s.Segments())
	if d == "" {
		return
	}
	st := s.Current()
	fmt.Fprintf(&s.body, `  <path d="%s" fill="none" stroke="%s" stroke-width="%s"%s%s/>`+"\n",
		d, escapeXML(st.Stroke), num(st.LineWidth), dashAttr(st.Dash), s.filter(st.Shadow))
}

func (s *SVG) FillText(text string, x, y float64) {
	st := s.Current()
	s.useFont(st.Font)
	fmt.Fprintf(&s.body, `  <text %s fill="%s"%s>%s</text>`+"\n",
		textAttrs(st, x, y), s.paint(st.Fill), s.filter(st.Shadow), escapeXML(text))
}

func (s *SVG) StrokeText(text string, x, y float64) {
	st := s.Current()
	s.useFont(st.Font)
	fmt.Fprintf(&s.body, `  <text %s fill="none" stroke="%s" stroke-width="%s" stroke-linejoin="round">%s</text>`+"\n",
		textAttrs(st, x, y), escapeXML(st.Stroke), num(st.LineWidth), escapeXML(text))
}

func (s *SVG) useFont(css string) {
	if fonts.Parse(css).Bold {
		s.bold = true
	} else {
		s.regular = true
	}
}

// writeFontFaces embeds the TrueType data of every weight drawn.
func (s *SVG) writeFontFaces(buf *bytes.Buffer) {
	if !s.regular && !s.bold {
		return
	}
	buf.WriteString("    <style>\n")
	face := func(weight string, ttf []byte) {
		fmt.Fprintf(buf, `      @font-face { font-family: "%s"; font-weight: %s; src: url(data:font/ttf;base64,%s) format("truetype"); }`+"\n",
			embeddedFamily, weight, base64.StdEncoding.EncodeToString(ttf))
	}
	if s.regular {
		face("normal", fonts.RegularTTF())
	}
	if s.bold {
		face("bold", fonts.BoldTTF())
	}
	buf.WriteString("    </style>\n")
}

// paint returns a fill attribute value, registering gradients in defs.
func (s *SVG) paint(p surface.Paint) string {
	if p.Gradient == nil {
		return escapeXML(p.Color)
	}
	g := p.Gradient
	s.nextID++
	id := "g" + strconv.Itoa(s.nextID)
	if g.Kind == surface.GradientRadial {
		fmt.Fprintf(&s.defs, `    <radialGradient id="%s" gradientUnits="userSpaceOnUse" cx="%s" cy="%s" r="%s" fx="%s" fy="%s" fr="%s">`+"\n",
			id, num(g.X1), num(g.Y1), num(g.R1), num(g.X0), num(g.Y0), num(g.R0))
	} else {
		fmt.Fprintf(&s.defs, `    <linearGradient id="%s" gradientUnits="userSpaceOnUse" x1="%s" y1="%s" x2="%s" y2="%s">`+"\n",
			id, num(g.X0), num(g.Y0), num(g.X1), num(g.Y1))
	}
	for _, st := range g.Stops {
		fmt.Fprintf(&s.defs, `      <stop offset="%s" stop-color="%s"/>`+"\n", num(st.Offset), escapeXML(st.Color))
	}
	if g.Kind == surface.GradientRadial {
		s.defs.WriteString("    </radialGradient>\n")
	} else {
		s.defs.WriteString("    </linearGradient>\n")
	}
	return "url(#" + id + ")"
}

// filter returns a filter attribute for an enabled shadow. Identical shadows
// share one definition.
func (s *SVG) filter(sh surface.Shadow) string {
	if !sh.Enabled() {
		return ""
	}
	id, ok := s.shadows[sh]
	if !ok {
		s.nextID++
		id = "shadow" + strconv.Itoa(s.nextID)
		s.shadows[sh] = id
		fmt.Fprintf(&s.defs, `    <filter id="%s" x="-50%%" y="-50%%" width="200%%" height="200%%"><feDropShadow dx="%s" dy="%s" stdDeviation="%s" flood-color="%s"/></filter>`+"\n",
			id, num(sh.OffsetX), num(sh.OffsetY), num(sh.Blur/2), escapeXML(sh.Color))
	}
	return ` filter="url(#` + id + `)"`
}

func textAttrs(st surface.State, x, y float64) string {
	spec := fonts.Parse(st.Font)
	anchor := "start"
	switch st.Align {
	case surface.AlignCenter:
		anchor = "middle"
	case surface.AlignRight:
		anchor = "end"
	}
	weight := ""
	if spec.Bold {
		weight = ` font-weight="bold"`
	}
	family := embeddedFamily + ", sans-serif"
	if spec.Family != "" {
		family = embeddedFamily + ", " + spec.Family
	}
	return fmt.Sprintf(`x="%s" y="%s" text-anchor="%s" font-family="%s" font-size="%s"%s`,
		num(x), num(baselineY(st, y)), anchor, escapeXML(family), num(spec.Size), weight)
}

// baselineY converts y for the state's text baseline into an alphabetic
// baseline, so every renderer positions text the same way.
func baselineY(st surface.State, y float64) float64 {
	asc, desc := fonts.Metrics(st.Font)
	switch st.Baseline {
	case surface.BaselineTop:
		return y + asc
	case surface.BaselineMiddle:
		return y + (asc-desc)/2
	case surface.BaselineBottom:
		return y - desc
	default:
		return y
	}
}

func dashAttr(dash []float64) string {
	if len(dash) == 0 {
		return ""
	}
	parts := make([]string, len(dash))
	for i, d := range dash {
		parts[i] = num(d)
	}
	return ` stroke-dasharray="` + strings.Join(parts, " ") + `"`
}

// pathData converts recorded segments into SVG path data.
func pathData(segs []surface.Segment) string {
	var b strings.Builder
	has := false
	cmd := func(format string, args ...any) {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, format, args...)
	}
	for _, sg := range segs {
		switch sg.Op {
		case surface.OpMoveTo:
			cmd("M%s %s", num(sg.X), num(sg.Y))
			has = true
		case surface.OpLineTo:
			if has {
				cmd("L%s %s", num(sg.X), num(sg.Y))
			} else {
				cmd("M%s %s", num(sg.X), num(sg.Y))
			}
			has = true
		case surface.OpArc:
			writeArc(cmd, sg, has)
			has = true
		case surface.OpRect:
			cmd("M%s %s h%s v%s h%s Z", num(sg.X), num(sg.Y), num(sg.W), num(sg.H), num(-sg.W))
			has = true
		case surface.OpRoundRect:
			writeRoundRect(cmd, sg)
			has = true
		case surface.OpClose:
			if has {
				cmd("Z")
			}
		}
	}
	return b.String()
}

func writeArc(cmd func(string, ...any), sg surface.Segment, has bool) {
	if sg.R <= 0 {
		return
	}
	sx, sy := sg.X+sg.R*math.Cos(sg.Start), sg.Y+sg.R*math.Sin(sg.Start)
	if has {
		cmd("L%s %s", num(sx), num(sy))
	} else {
		cmd("M%s %s", num(sx), num(sy))
	}
	sweep := sg.End - sg.Start
	r := num(sg.R)
	if sweep >= 2*math.Pi-1e-9 {
		ox, oy := sg.X-sg.R*math.Cos(sg.Start), sg.Y-sg.R*math.Sin(sg.Start)
		cmd("A%s %s 0 1 1 %s %s A%s %s 0 1 1 %s %s", r, r, num(ox), num(oy), r, r, num(sx), num(sy))
		return
	}
	sweep = math.Mod(sweep, 2*math.Pi)
	if sweep < 0 {
		sweep += 2 * math.Pi
	}
	large := 0
	if sweep > math.Pi {
		large = 1
	}
	ex, ey := sg.X+sg.R*math.Cos(sg.Start+sweep), sg.Y+sg.R*math.Sin(sg.Start+sweep)
	cmd("A%s %s 0 %d 1 %s %s", r, r, large, num(ex), num(ey))
}

func writeRoundRect(cmd func(string, ...any), sg surface.Segment) {
	x, y, w, h := sg.X, sg.Y, sg.W, sg.H
	r := math.Max(0, math.Min(sg.R, math.Min(w/2, h/2)))
	rs := num(r)
	cmd("M%s %s H%s A%s %s 0 0 1 %s %s V%s A%s %s 0 0 1 %s %s H%s A%s %s 0 0 1 %s %s V%s A%s %s 0 0 1 %s %s Z",
		num(x+r), num(y),
		num(x+w-r), rs, rs, num(x+w), num(y+r),
		num(y+h-r), rs, rs, num(x+w-r), num(y+h),
		num(x+r), rs, rs, num(x), num(y+h-r),
		num(y+r), rs, rs, num(x+r), num(y))
}

// num formats v with at most two decimals and no trailing zeros.
func num(v float64) string {
	r := math.Round(v*100) / 100
	if r == 0 {
		r = 0 // drop negative zero
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

var _ surface.Surface = (*SVG)(nil)
