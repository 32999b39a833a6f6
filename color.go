package sketch

import (
	"fmt"
	"image/color"
	"strings"
)

// Color is an 8-bit RGBA paint color, not premultiplied.
// A color with A == 0 disables the pass it is used for.
type Color struct {
	R, G, B, A uint8
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// Visible reports whether drawing with c has any effect.
func (c Color) Visible() bool {
	return c.A > 0
}

// Floats returns the components scaled to [0, 1].
func (c Color) Floats() (r, g, b, a float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255, float64(c.A) / 255
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// String returns the color as #rrggbbaa.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// RGB creates an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA8 creates a color from all four components.
func RGBA8(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Gray creates an opaque gray level.
func Gray(v uint8) Color {
	return Color{R: v, G: v, B: v, A: 255}
}

// GrayAlpha creates a gray level with alpha.
func GrayAlpha(v, a uint8) Color {
	return Color{R: v, G: v, B: v, A: a}
}

// FromColor converts a standard color.Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// ParseHex parses a color in one of the forms "RGB", "RGBA", "RRGGBB" or
// "RRGGBBAA", with an optional leading '#'. The word "none" yields
// Transparent.
func ParseHex(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "none") {
		return Transparent, nil
	}
	hex := strings.TrimPrefix(s, "#")

	var v [4]uint8
	v[3] = 255
	switch len(hex) {
	case 3, 4:
		for i := range len(hex) {
			d, ok := hexDigit(hex[i])
			if !ok {
				return Color{}, fmt.Errorf("sketch: bad hex color %q", s)
			}
			v[i] = d * 17
		}
	case 6, 8:
		for i := 0; i < len(hex); i += 2 {
			hi, ok1 := hexDigit(hex[i])
			lo, ok2 := hexDigit(hex[i+1])
			if !ok1 || !ok2 {
				return Color{}, fmt.Errorf("sketch: bad hex color %q", s)
			}
			v[i/2] = hi<<4 | lo
		}
	default:
		return Color{}, fmt.Errorf("sketch: bad hex color %q", s)
	}
	return Color{R: v[0], G: v[1], B: v[2], A: v[3]}, nil
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// Common colors
var (
	Black       = Gray(0)
	White       = Gray(255)
	Transparent = Color{}
)
