package geom

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an opaque 8-bit sRGB color.
type Color struct {
	R, G, B uint8
}

// Common colors used by the chart layouts.
var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
)

// RGB returns the color with the given channels.
func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b} }

// ParseColor parses a "#rgb" or "#rrggbb" hex string.
func ParseColor(s string) (Color, error) {
	c, err := colorful.Hex(strings.TrimSpace(s))
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return FromColorful(c), nil
}

// MustParseColor is like [ParseColor] but panics on malformed input.
// It is intended for package-level palettes and tests.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// FromColorful converts a go-colorful color, clamping out-of-gamut values
// and rounding each channel to the nearest 8-bit step.
func FromColorful(c colorful.Color) Color {
	r, g, b := c.Clamped().RGB255()
	return Color{R: r, G: g, B: b}
}

// Colorful returns c in go-colorful's [0,1] float representation.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// Hex returns the lowercase "#rrggbb" form of c.
func (c Color) Hex() string { return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B) }

func (c Color) String() string { return c.Hex() }

// IsLight reports whether dark text reads better than light text on c.
func (c Color) IsLight() bool {
	l, _, _ := c.Colorful().Lab()
	return l > 0.6
}

// Contrast returns black or white, whichever is legible on c.
func (c Color) Contrast() Color {
	if c.IsLight() {
		return Black
	}
	return White
}

// MarshalText implements [encoding.TextMarshaler].
func (c Color) MarshalText() ([]byte, error) { return []byte(c.Hex()), nil }

// UnmarshalText implements [encoding.TextUnmarshaler].
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ColorPtr returns a pointer to c, for optional color fields.
func ColorPtr(c Color) *Color { return &c }
