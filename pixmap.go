package swatch

import (
	"image"
	"image/color"
)

// Pixmap represents a rectangular pixel buffer.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // NRGBA format, 4 bytes per pixel
}

// NewPixmap creates a new transparent pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (NRGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel sets the color of a single pixel.
// Out-of-bounds coordinates are ignored.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0], p.data[i+1], p.data[i+2], p.data[i+3] = c.Levels()
}

// GetPixel returns the color of a single pixel.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := (y*p.width + x) * 4
	return RGBA{
		R: float64(p.data[i+0]) / 255,
		G: float64(p.data[i+1]) / 255,
		B: float64(p.data[i+2]) / 255,
		A: float64(p.data[i+3]) / 255,
	}
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	p.FillRect(0, 0, p.width, p.height, c)
}

// FillRect replaces every pixel in [x0, x1) × [y0, y1) with c.
// The rectangle is clipped to the pixmap; empty rectangles are a no-op.
func (p *Pixmap) FillRect(x0, y0, x1, y1 int, c RGBA) {
	x0, x1 = max(x0, 0), min(x1, p.width)
	y0, y1 = max(y0, 0), min(y1, p.height)
	if x0 >= x1 || y0 >= y1 {
		return
	}

	r, g, b, a := c.Levels()

	// Fill the first row pixel by pixel, then copy it down.
	stride := p.width * 4
	first := p.data[y0*stride+x0*4 : y0*stride+x1*4]
	for i := 0; i < len(first); i += 4 {
		first[i+0] = r
		first[i+1] = g
		first[i+2] = b
		first[i+3] = a
	}
	for y := y0 + 1; y < y1; y++ {
		copy(p.data[y*stride+x0*4:y*stride+x1*4], first)
	}
}

// ToImage copies the pixmap into an image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y).NRGBA()
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
