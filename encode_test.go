package swatch

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		want    Format
		wantErr bool
	}{
		{"png", PNG, false},
		{".PNG", PNG, false},
		{"jpg", JPEG, false},
		{"jpeg", JPEG, false},
		{"bmp", BMP, false},
		{".tif", TIFF, false},
		{"tiff", TIFF, false},
		{"gif", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"out/scheme.png", PNG, false},
		{"scheme", PNG, false},
		{"scheme.JPG", JPEG, false},
		{"a.b/scheme.tiff", TIFF, false},
		{"scheme.webp", 0, true},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if (err != nil) != tt.wantErr {
			t.Errorf("FormatFromPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("FormatFromPath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestEncodeLossless(t *testing.T) {
	decoders := map[Format]func(io.Reader) (image.Image, error){
		PNG:  png.Decode,
		BMP:  bmp.Decode,
		TIFF: tiff.Decode,
	}

	c, colors := renderHueScheme(t)
	for f, decode := range decoders {
		t.Run(f.String(), func(t *testing.T) {
			var buf bytes.Buffer
			if err := c.Encode(&buf, f); err != nil {
				t.Fatalf("Encode(%v) = %v", f, err)
			}
			img, err := decode(&buf)
			if err != nil {
				t.Fatalf("decode %v: %v", f, err)
			}
			if got := img.Bounds().Size(); got != image.Pt(CanvasWidth, CanvasHeight) {
				t.Fatalf("decoded size = %v, want %dx%d", got, CanvasWidth, CanvasHeight)
			}
			for i, p := range []image.Point{{10, 10}, {150, 100}, {150, 160}} {
				if got := FromColor(img.At(p.X, p.Y)); !sameLevels(got, colors[i]) {
					t.Errorf("decoded pixel %v = %s, want %s", p, got.Hex(), colors[i].Hex())
				}
			}
		})
	}
}

func TestEncodeJPEG(t *testing.T) {
	c, _ := renderHueScheme(t)
	var buf bytes.Buffer
	if err := c.EncodeJPEG(&buf, 80); err != nil {
		t.Fatalf("EncodeJPEG() = %v", err)
	}
	cfg, err := jpeg.DecodeConfig(&buf)
	if err != nil {
		t.Fatalf("DecodeConfig() = %v", err)
	}
	if cfg.Width != CanvasWidth || cfg.Height != CanvasHeight {
		t.Errorf("JPEG is %dx%d, want %dx%d", cfg.Width, cfg.Height, CanvasWidth, CanvasHeight)
	}
}

func TestEncodeUnknownFormat(t *testing.T) {
	c := newTestCanvas(t, 2, 2)
	if err := c.Encode(io.Discard, Format(99)); err == nil {
		t.Error("Encode(unknown format) = nil, want error")
	}
}

func TestSave(t *testing.T) {
	c, colors := renderHueScheme(t)
	path := filepath.Join(t.TempDir(), "scheme.png")

	if err := c.Save(path); err != nil {
		t.Fatalf("Save() = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() = %v", err)
	}
	if got := FromColor(img.At(150, 160)); !sameLevels(got, colors[2]) {
		t.Errorf("saved pixel = %s, want %s", got.Hex(), colors[2].Hex())
	}
}

func TestSave_Errors(t *testing.T) {
	c := newTestCanvas(t, 2, 2)
	if err := c.Save(filepath.Join(t.TempDir(), "scheme.webp")); err == nil {
		t.Error("Save(.webp) = nil, want error")
	}
	if err := c.Save(filepath.Join(t.TempDir(), "missing", "scheme.png")); err == nil {
		t.Error("Save(missing dir) = nil, want error")
	}
}
