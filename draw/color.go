package draw

import (
	"fmt"
	"image/color"
	"strings"
)

// Color represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type Color struct {
	R, G, B, A float64
}

// Common colors.
var (
	Black = Color{R: 0, G: 0, B: 0, A: 1}
	White = Color{R: 1, G: 1, B: 1, A: 1}
	Red   = Color{R: 1, G: 0, B: 0, A: 1}
	Green = Color{R: 0, G: 1, B: 0, A: 1}
)

// RGB creates an opaque color from RGB components (0-1).
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// NRGBA converts to a standard library color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

// Hex returns the color as "#rrggbb", or "#rrggbbaa" when not opaque.
func (c Color) Hex() string {
	n := c.NRGBA()
	if n.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

// ParseHex parses a hex color string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with or without '#'.
func ParseHex(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")

	var r, g, b, a uint32
	a = 255

	var err error
	switch len(hex) {
	case 3: // RGB
		err = parseHex(hex, 1, &r, &g, &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		err = parseHex(hex, 1, &r, &g, &b, &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		err = parseHex(hex, 2, &r, &g, &b)
	case 8: // RRGGBBAA
		err = parseHex(hex, 2, &r, &g, &b, &a)
	default:
		return Color{}, fmt.Errorf("draw: invalid hex color %q", s)
	}
	if err != nil {
		return Color{}, fmt.Errorf("draw: invalid hex color %q: %w", s, err)
	}

	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, nil
}

// parseHex reads consecutive groups of width hex digits into vals.
func parseHex(s string, width int, vals ...*uint32) error {
	for i, v := range vals {
		*v = 0
		for _, c := range []byte(s[i*width : (i+1)*width]) {
			*v *= 16
			switch {
			case '0' <= c && c <= '9':
				*v += uint32(c - '0')
			case 'a' <= c && c <= 'f':
				*v += uint32(c - 'a' + 10)
			case 'A' <= c && c <= 'F':
				*v += uint32(c - 'A' + 10)
			default:
				return fmt.Errorf("bad digit %q", c)
			}
		}
	}
	return nil
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
