// Package swatch renders perceptually uniform color swatches.
//
// # Overview
//
// swatch converts HSLuv (hue, saturation, lightness) samples to RGB and
// paints them as solid rectangles on an in-memory canvas, in the manner
// of a p5.js sketch: an owned Canvas carries the current fill and stroke,
// and each Rect call paints over whatever was drawn before it.
//
// # Quick Start
//
//	import "github.com/gogpu/swatch"
//
//	// Draw the built-in hue scheme and save it
//	c, err := swatch.Render(swatch.HSLuv)
//	if err != nil {
//	    return err
//	}
//	err = c.Save("scheme.png")
//
// # Color Models
//
// Samples are interpreted by a Converter. HSLuv is the reference
// converter; ColorfulHSLuv is an independent HSLuv implementation and
// PlainHSL interprets the same numbers as ordinary HSL, which is useful
// for seeing how uneven standard HSL lightness is across hues.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// A pixel belongs to a rectangle when its center lies inside it, so
// rectangles on integer coordinates cover exactly w×h pixels.
package swatch
