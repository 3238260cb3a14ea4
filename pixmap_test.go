package swatch

import (
	"image"
	"testing"
)

var (
	red   = RGB(1, 0, 0)
	green = RGB(0, 1, 0)
	blue  = RGB(0, 0, 1)
)

func sameLevels(a, b RGBA) bool {
	ar, ag, ab, aa := a.Levels()
	br, bg, bb, ba := b.Levels()
	return ar == br && ag == bg && ab == bb && aa == ba
}

func TestPixmapSetGetPixel(t *testing.T) {
	pm := NewPixmap(10, 10)
	pm.SetPixel(3, 7, red)

	if got := pm.GetPixel(3, 7); !sameLevels(got, red) {
		t.Errorf("GetPixel(3, 7) = %+v, want %+v", got, red)
	}
	if got := pm.GetPixel(0, 0); got != Transparent {
		t.Errorf("new pixmap pixel = %+v, want transparent", got)
	}

	i := (7*10 + 3) * 4
	d := pm.Data()
	if d[i] != 255 || d[i+1] != 0 || d[i+2] != 0 || d[i+3] != 255 {
		t.Errorf("raw data = %v, want [255 0 0 255]", d[i:i+4])
	}
}

// TestPixmapSetPixel_OutOfBounds verifies out-of-bounds coordinates are silently ignored.
func TestPixmapSetPixel_OutOfBounds(t *testing.T) {
	pm := NewPixmap(10, 10)
	pm.Clear(Black)

	original := make([]uint8, len(pm.Data()))
	copy(original, pm.Data())

	oob := []struct{ x, y int }{
		{-1, 5}, {10, 5}, {5, -1}, {5, 10},
		{-100, -100}, {100, 100},
	}
	for _, c := range oob {
		pm.SetPixel(c.x, c.y, red)
		if got := pm.GetPixel(c.x, c.y); got != Transparent {
			t.Errorf("GetPixel(%d, %d) = %+v, want transparent", c.x, c.y, got)
		}
	}

	for i, v := range pm.Data() {
		if v != original[i] {
			t.Fatalf("out-of-bounds write modified data at index %d: got %d, want %d", i, v, original[i])
		}
	}
}

func TestPixmapFillRect(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		pixels         int // number of pixels that should be filled
	}{
		{"inside", 10, 10, 20, 15, 50},
		{"full pixmap", 0, 0, 100, 50, 5000},
		{"single pixel", 5, 5, 6, 6, 1},
		{"clipped left and top", -10, -10, 5, 5, 25},
		{"clipped right and bottom", 95, 45, 120, 80, 25},
		{"fully outside", 200, 200, 300, 300, 0},
		{"empty width", 20, 10, 20, 30, 0},
		{"inverted", 30, 10, 20, 30, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pm := NewPixmap(100, 50)
			pm.Clear(Black)

			pm.FillRect(tt.x0, tt.y0, tt.x1, tt.y1, green)

			filled := 0
			for y := 0; y < pm.Height(); y++ {
				for x := 0; x < pm.Width(); x++ {
					inside := x >= tt.x0 && x < tt.x1 && y >= tt.y0 && y < tt.y1
					isGreen := sameLevels(pm.GetPixel(x, y), green)
					if isGreen {
						filled++
					}
					if inside != isGreen {
						t.Fatalf("pixel (%d, %d): filled=%v, want %v", x, y, isGreen, inside)
					}
				}
			}
			if filled != tt.pixels {
				t.Errorf("expected %d filled pixels, got %d", tt.pixels, filled)
			}
		})
	}
}

func TestPixmapClear(t *testing.T) {
	pm := NewPixmap(7, 3)
	pm.Clear(blue)
	for y := 0; y < 3; y++ {
		for x := 0; x < 7; x++ {
			if got := pm.GetPixel(x, y); !sameLevels(got, blue) {
				t.Fatalf("pixel (%d, %d) = %+v, want blue", x, y, got)
			}
		}
	}
}

func TestPixmapImage(t *testing.T) {
	pm := NewPixmap(4, 2)
	pm.SetPixel(1, 1, red)

	var _ image.Image = pm
	if got := pm.Bounds(); got != image.Rect(0, 0, 4, 2) {
		t.Errorf("Bounds() = %v, want (0,0)-(4,2)", got)
	}

	img := pm.ToImage()
	if got := img.NRGBAAt(1, 1); got.R != 255 || got.G != 0 || got.B != 0 || got.A != 255 {
		t.Errorf("ToImage().NRGBAAt(1, 1) = %v, want opaque red", got)
	}

	// The image is a copy.
	pm.SetPixel(1, 1, blue)
	if got := img.NRGBAAt(1, 1); got.B != 0 {
		t.Errorf("ToImage() shares memory with the pixmap")
	}

	r, g, b, a := pm.At(1, 1).RGBA()
	if r != 0 || g != 0 || b != 65535 || a != 65535 {
		t.Errorf("At(1, 1).RGBA() = (%d, %d, %d, %d), want opaque blue", r, g, b, a)
	}
}

func BenchmarkPixmapFillRect(b *testing.B) {
	pm := NewPixmap(CanvasWidth, CanvasHeight)
	b.ReportAllocs()
	for b.Loop() {
		pm.FillRect(0, 0, CanvasWidth, CanvasHeight, green)
	}
}
