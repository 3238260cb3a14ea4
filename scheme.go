package swatch

import (
	"fmt"
	"log/slog"
)

// Canvas dimensions of the hue scheme.
const (
	CanvasWidth  = 600
	CanvasHeight = 460
)

// Swatch is a rectangle filled with a single converted color.
type Swatch struct {
	Sample     Sample
	X, Y, W, H float64
}

// HueScheme returns the three-swatch hue scheme in draw order: a
// sea-green field covering the whole canvas, then two overlapping blue
// and magenta rectangles at full saturation and half lightness.
func HueScheme() []Swatch {
	return []Swatch{
		{Sample: HSL(160, 100, 50), X: 0, Y: 0, W: CanvasWidth, H: CanvasHeight},
		{Sample: HSL(230, 100, 50), X: 145, Y: 95, W: 375, H: 200},
		{Sample: HSL(300, 100, 50), X: 85, Y: 155, W: 375, H: 200},
	}
}

// Palette converts each swatch's sample, in draw order.
func Palette(conv Converter, swatches []Swatch) ([]RGBA, error) {
	colors := make([]RGBA, len(swatches))
	for i, s := range swatches {
		c, err := conv.Convert(s.Sample)
		if err != nil {
			return nil, fmt.Errorf("swatch %d %v: %w", i, s.Sample, err)
		}
		colors[i] = c
	}
	return colors, nil
}

// Render draws HueScheme on a new CanvasWidth×CanvasHeight canvas.
func Render(conv Converter) (*Canvas, error) {
	return RenderScheme(conv, CanvasWidth, CanvasHeight, HueScheme())
}

// RenderScheme creates a width×height canvas, disables stroking, and for
// each swatch in order converts its sample, sets the fill and draws its
// rectangle. The returned canvas is final. Any error aborts the pass.
func RenderScheme(conv Converter, width, height int, swatches []Swatch) (*Canvas, error) {
	c, err := NewCanvas(width, height)
	if err != nil {
		return nil, err
	}
	c.NoStroke()

	log := Logger()
	for i, s := range swatches {
		col, err := conv.Convert(s.Sample)
		if err != nil {
			return nil, fmt.Errorf("swatch %d %v: %w", i, s.Sample, err)
		}
		r, g, b, _ := col.Levels()
		c.Fill(float64(r), float64(g), float64(b))
		if err := c.Rect(s.X, s.Y, s.W, s.H); err != nil {
			return nil, fmt.Errorf("swatch %d: %w", i, err)
		}
		log.Debug("swatch: drew swatch",
			"index", i,
			"sample", s.Sample.String(),
			"color", col.Hex(),
			slog.Group("rect", "x", s.X, "y", s.Y, "w", s.W, "h", s.H))
	}

	c.NoLoop()
	log.Info("swatch: render complete", "swatches", len(swatches), "width", width, "height", height)
	return c, nil
}
