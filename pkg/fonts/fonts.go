// Package fonts provides the embedded fonts used for label measurement,
// raster drawing and the @font-face rules of SVG output.
//
// The Go fonts from golang.org/x/image are compiled into the binary, so text
// metrics are identical on every host. Fonts are selected with CSS-style
// shorthand strings such as "bold 1.2rem Arial" or "18px sans-serif"; the
// family is recorded but every family maps onto Go Regular or Go Bold.
package fonts

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

const (
	// DefaultSize is the pixel size used when a font string has no size.
	DefaultSize = 10.0

	// remPixels converts rem/em units, matching a 16px root font size.
	remPixels = 16.0
)

// Spec is a parsed font shorthand.
type Spec struct {
	Size   float64
	Bold   bool
	Family string
}

// String renders the font back into CSS shorthand.
func (s Spec) String() string {
	var b strings.Builder
	if s.Bold {
		b.WriteString("bold ")
	}
	b.WriteString(strconv.FormatFloat(s.Size, 'f', -1, 64))
	b.WriteString("px")
	if s.Family != "" {
		b.WriteString(" ")
		b.WriteString(s.Family)
	}
	return b.String()
}

// Parse reads a CSS font shorthand. Unknown tokens before the size are
// ignored; everything after the size is the family list.
func Parse(css string) Spec {
	spec := Spec{Size: DefaultSize}
	fields := strings.Fields(css)
	for i, f := range fields {
		switch strings.ToLower(f) {
		case "bold", "bolder", "600", "700", "800", "900":
			spec.Bold = true
			continue
		}
		if size, ok := parseSize(f); ok {
			spec.Size = size
			spec.Family = strings.Join(fields[i+1:], " ")
			break
		}
	}
	return spec
}

func parseSize(tok string) (float64, bool) {
	units := []struct {
		suffix string
		scale  float64
	}{
		{"px", 1},
		{"rem", remPixels},
		{"em", remPixels},
		{"pt", 4.0 / 3.0},
	}
	lower := strings.ToLower(tok)
	for _, u := range units {
		if !strings.HasSuffix(lower, u.suffix) {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSuffix(lower, u.suffix), 64)
		if err != nil || v <= 0 {
			return 0, false
		}
		return v * u.scale, true
	}
	return 0, false
}

// RegularTTF returns the Go Regular TrueType data.
func RegularTTF() []byte { return goregular.TTF }

// BoldTTF returns the Go Bold TrueType data.
func BoldTTF() []byte { return gobold.TTF }

// Parsed fonts and sized faces are computed once and shared.
var (
	parseOnce sync.Once
	regular   *opentype.Font
	bold      *opentype.Font
	parseErr  error
	facesMu   sync.Mutex
	faces     = map[faceKey]font.Face{}
)

type faceKey struct {
	bold bool
	size float64
}

func parsed() error {
	parseOnce.Do(func() {
		if regular, parseErr = opentype.Parse(goregular.TTF); parseErr != nil {
			return
		}
		bold, parseErr = opentype.Parse(gobold.TTF)
	})
	return parseErr
}

// Face returns a font face for spec. Faces are cached per weight and size
// and are not safe for concurrent drawing; measurement goes through
// [Measure], which serialises access.
func Face(spec Spec) (font.Face, error) {
	facesMu.Lock()
	defer facesMu.Unlock()
	return faceLocked(spec)
}

func faceLocked(spec Spec) (font.Face, error) {
	key := faceKey{bold: spec.Bold, size: spec.Size}
	if f, ok := faces[key]; ok {
		return f, nil
	}
	f, err := NewFace(spec)
	if err != nil {
		return nil, err
	}
	faces[key] = f
	return f, nil
}

// NewFace returns an uncached face for spec. Surfaces that draw glyphs use
// their own faces so they can run concurrently.
func NewFace(spec Spec) (font.Face, error) {
	if err := parsed(); err != nil {
		return nil, fmt.Errorf("parse embedded font: %w", err)
	}
	src := regular
	if spec.Bold {
		src = bold
	}
	f, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    spec.Size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("new face %s: %w", spec, err)
	}
	return f, nil
}

// Measure returns the advance width and line height of text in the font
// described by css. A font that cannot be loaded measures as zero.
func Measure(css, text string) (width, height float64) {
	facesMu.Lock()
	defer facesMu.Unlock()
	f, err := faceLocked(Parse(css))
	if err != nil {
		return 0, 0
	}
	m := f.Metrics()
	width = float64(font.MeasureString(f, text)) / 64
	height = float64(m.Ascent+m.Descent) / 64
	return width, height
}

// Metrics returns the ascent and descent of the font described by css.
func Metrics(css string) (ascent, descent float64) {
	facesMu.Lock()
	defer facesMu.Unlock()
	f, err := faceLocked(Parse(css))
	if err != nil {
		return 0, 0
	}
	m := f.Metrics()
	return float64(m.Ascent) / 64, float64(m.Descent) / 64
}
