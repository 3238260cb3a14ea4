package swatch

// CanvasOption configures a Canvas during creation.
//
// Example:
//
//	// Transparent canvas
//	c, err := swatch.NewCanvas(600, 460)
//
//	// Draw into an existing pixmap, cleared to white
//	pm := swatch.NewPixmap(600, 460)
//	c, err := swatch.NewCanvas(600, 460, swatch.WithPixmap(pm), swatch.WithBackground(swatch.White))
type CanvasOption func(*canvasOptions)

type canvasOptions struct {
	pixmap     *Pixmap
	background *RGBA
}

// WithPixmap makes the canvas draw into pm instead of allocating a new
// buffer. The pixmap dimensions must match the canvas dimensions.
func WithPixmap(pm *Pixmap) CanvasOption {
	return func(o *canvasOptions) {
		o.pixmap = pm
	}
}

// WithBackground clears the new canvas to c.
func WithBackground(c RGBA) CanvasOption {
	return func(o *canvasOptions) {
		o.background = &c
	}
}
