package swatch

import (
	"errors"
	"fmt"
	"image"
	"math"
)

var (
	// ErrInvalidSize is returned by NewCanvas for non-positive dimensions
	// or a pixmap that does not match them.
	ErrInvalidSize = errors.New("swatch: invalid canvas size")

	// ErrInvalidRect is returned for rectangles with NaN or infinite geometry.
	ErrInvalidRect = errors.New("swatch: invalid rectangle")

	// ErrCanvasFinal is returned when drawing on a canvas after NoLoop.
	ErrCanvasFinal = errors.New("swatch: canvas is final")
)

// Canvas is an owned drawing surface with a current fill and stroke, in
// the style of a p5.js sketch. Shapes replace the pixels they cover, so
// later shapes paint over earlier ones.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	pixmap *Pixmap

	fill         RGBA
	stroke       RGBA
	strokeWeight float64
	noStroke     bool

	final bool
}

// NewCanvas creates a canvas of the given size. Unless WithBackground is
// given the canvas starts out transparent. The initial fill is white and
// the initial stroke is black with weight 1.
func NewCanvas(width, height int, opts ...CanvasOption) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d (both must be > 0)", ErrInvalidSize, width, height)
	}

	var o canvasOptions
	for _, opt := range opts {
		opt(&o)
	}

	pm := o.pixmap
	if pm == nil {
		pm = NewPixmap(width, height)
	} else if pm.Width() != width || pm.Height() != height {
		return nil, fmt.Errorf("%w: pixmap is %dx%d, canvas is %dx%d",
			ErrInvalidSize, pm.Width(), pm.Height(), width, height)
	}
	if o.background != nil {
		pm.Clear(*o.background)
	}

	Logger().Debug("swatch: canvas created", "width", width, "height", height)

	return &Canvas{
		pixmap:       pm,
		fill:         White,
		stroke:       Black,
		strokeWeight: 1,
	}, nil
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.pixmap.Width() }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.pixmap.Height() }

// Pixmap returns the underlying pixel buffer.
func (c *Canvas) Pixmap() *Pixmap { return c.pixmap }

// Image returns the canvas as an image.Image.
func (c *Canvas) Image() image.Image { return c.pixmap }

// Fill sets the fill color from components on the 0-255 scale.
func (c *Canvas) Fill(r, g, b float64) {
	c.fill = FromLevels(r, g, b)
}

// SetFill sets the fill color. Alpha is ignored; fills are opaque.
func (c *Canvas) SetFill(col RGBA) {
	col.A = 1
	c.fill = col.Clamped()
}

// FillColor returns the current fill color.
func (c *Canvas) FillColor() RGBA { return c.fill }

// Stroke sets the stroke color from components on the 0-255 scale and
// enables stroking.
func (c *Canvas) Stroke(r, g, b float64) {
	c.stroke = FromLevels(r, g, b)
	c.noStroke = false
}

// StrokeWeight sets the stroke width in pixels. Negative or NaN widths
// are treated as zero.
func (c *Canvas) StrokeWeight(w float64) {
	if !(w > 0) {
		w = 0
	}
	c.strokeWeight = w
}

// NoStroke disables shape outlines.
func (c *Canvas) NoStroke() {
	c.noStroke = true
}

// Background clears the whole canvas to an opaque color given on the
// 0-255 scale.
func (c *Canvas) Background(r, g, b float64) error {
	if c.final {
		return ErrCanvasFinal
	}
	c.pixmap.Clear(FromLevels(r, g, b))
	return nil
}

// Rect fills the axis-aligned rectangle with its top-left corner at (x, y)
// and size (w, h) using the current fill, then outlines it with the
// current stroke unless NoStroke is in effect. A pixel is covered when its
// center lies inside the rectangle. Negative sizes extend the rectangle
// left or up from (x, y).
func (c *Canvas) Rect(x, y, w, h float64) error {
	if c.final {
		return ErrCanvasFinal
	}
	if !finite(x) || !finite(y) || !finite(w) || !finite(h) {
		return fmt.Errorf("%w: (%v, %v, %v, %v)", ErrInvalidRect, x, y, w, h)
	}
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}

	c.fillBox(x, y, x+w, y+h, c.fill)

	if c.noStroke || c.strokeWeight == 0 {
		return nil
	}
	hw := c.strokeWeight / 2
	c.fillBox(x-hw, y-hw, x+w+hw, y+hw, c.stroke)     // top
	c.fillBox(x-hw, y+h-hw, x+w+hw, y+h+hw, c.stroke) // bottom
	c.fillBox(x-hw, y+hw, x+hw, y+h-hw, c.stroke)     // left
	c.fillBox(x+w-hw, y+hw, x+w+hw, y+h-hw, c.stroke) // right
	return nil
}

// fillBox fills the pixels whose centers lie in [x0, x1) × [y0, y1).
func (c *Canvas) fillBox(x0, y0, x1, y1 float64, col RGBA) {
	px0, px1 := pixelSpan(x0, x1, c.Width())
	py0, py1 := pixelSpan(y0, y1, c.Height())
	c.pixmap.FillRect(px0, py0, px1, py1, col)
}

// pixelSpan maps [a, b) to the half-open range of pixel indices whose centers
// it contains, clamped to [0, limit].
func pixelSpan(a, b float64, limit int) (int, int) {
	clampf := func(v float64) int {
		v = math.Ceil(v - 0.5)
		if v < 0 {
			return 0
		}
		if v > float64(limit) {
			return limit
		}
		return int(v)
	}
	return clampf(a), clampf(b)
}

// NoLoop marks the canvas as final. The image is static from this point
// and further drawing returns ErrCanvasFinal.
func (c *Canvas) NoLoop() {
	c.final = true
}

// Final reports whether NoLoop has been called.
func (c *Canvas) Final() bool { return c.final }
