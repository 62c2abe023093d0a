package sink

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var namedColors = map[string]color.Color{
	"black":       color.Black,
	"white":       color.White,
	"transparent": color.Transparent,
	"none":        color.Transparent,
	"red":         color.NRGBA{R: 0xff, A: 0xff},
	"green":       color.NRGBA{G: 0x80, A: 0xff},
	"blue":        color.NRGBA{B: 0xff, A: 0xff},
	"gray":        color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff},
	"grey":        color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff},
}

// ParseColor reads the CSS color forms the theme tables use: named colors,
// #rgb, #rrggbb, #rrggbbaa, rgb() and rgba().
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return color.Transparent, nil
	}
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "#") {
		return parseHex(s)
	}
	if fn, args, ok := cssFunc(s); ok && (fn == "rgb" || fn == "rgba") {
		return parseRGBA(args)
	}
	return nil, fmt.Errorf("unsupported color %q", s)
}

func parseHex(s string) (color.Color, error) {
	if len(s) == 9 {
		c, err := colorful.Hex(s[:7])
		if err != nil {
			return nil, fmt.Errorf("parse color %q: %w", s, err)
		}
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return nil, fmt.Errorf("parse alpha %q: %w", s, err)
		}
		return withAlpha(c, float64(a)/255), nil
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("parse color %q: %w", s, err)
	}
	return c.Clamped(), nil
}

func parseRGBA(args []string) (color.Color, error) {
	if len(args) != 3 && len(args) != 4 {
		return nil, fmt.Errorf("rgb color needs 3 or 4 components, got %d", len(args))
	}
	var ch [3]float64
	for i := range ch {
		v, err := strconv.ParseFloat(strings.TrimSuffix(args[i], "%"), 64)
		if err != nil {
			return nil, fmt.Errorf("parse channel %q: %w", args[i], err)
		}
		if strings.HasSuffix(args[i], "%") {
			v = v * 255 / 100
		}
		ch[i] = clamp(v/255, 0, 1)
	}
	alpha := 1.0
	if len(args) == 4 {
		v, err := strconv.ParseFloat(args[3], 64)
		if err != nil {
			return nil, fmt.Errorf("parse alpha %q: %w", args[3], err)
		}
		alpha = clamp(v, 0, 1)
	}
	return withAlpha(colorful.Color{R: ch[0], G: ch[1], B: ch[2]}, alpha), nil
}

// cssFunc splits "name(a, b, c)" into its name and trimmed arguments.
func cssFunc(s string) (string, []string, bool) {
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return "", nil, false
	}
	args := strings.Split(s[open+1:len(s)-1], ",")
	for i := range args {
		args[i] = strings.TrimSpace(args[i])
	}
	return strings.TrimSpace(s[:open]), args, true
}

func withAlpha(c colorful.Color, a float64) color.Color {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(a*255 + 0.5)}
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}
