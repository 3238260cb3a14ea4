package swatch

import (
	"fmt"
	"image/color"
	"math"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1] and is not premultiplied.
type RGBA struct {
	R, G, B, A float64
}

// Verify at compile time that RGBA implements color.Color.
var _ color.Color = RGBA{}

// RGBA implements color.Color.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// NRGBA converts c to an 8-bit non-premultiplied color.
func (c RGBA) NRGBA() color.NRGBA {
	r, g, b, a := c.Levels()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// Levels returns the components scaled to [0, 255], rounded to the
// nearest integer.
func (c RGBA) Levels() (r, g, b, a uint8) {
	return level(c.R), level(c.G), level(c.B), level(c.A)
}

// Hex formats the color as #rrggbb, ignoring alpha.
func (c RGBA) Hex() string {
	r, g, b, _ := c.Levels()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// Clamped returns c with every component restricted to [0, 1].
func (c RGBA) Clamped() RGBA {
	return RGBA{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B), A: clamp01(c.A)}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return RGBA{
		R: float64(n.R) / 65535,
		G: float64(n.G) / 65535,
		B: float64(n.B) / 65535,
		A: float64(n.A) / 65535,
	}
}

// RGB creates an opaque color from components in [0, 1].
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// FromLevels creates an opaque color from components on the 0-255 scale.
func FromLevels(r, g, b float64) RGBA {
	return RGB(clamp255(r)/255, clamp255(g)/255, clamp255(b)/255)
}

func level(x float64) uint8 {
	return uint8(math.Round(clamp255(x * 255)))
}

// clamp255 restricts a value to [0, 255]. NaN maps to 0.
func clamp255(x float64) float64 {
	if !(x > 0) {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// clamp01 restricts a value to [0, 1]. NaN maps to 0.
func clamp01(x float64) float64 {
	if !(x > 0) {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Transparent = RGBA{}
)
