package swatch

import (
	"fmt"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format is an output image encoding.
type Format int

const (
	// PNG is lossless and the default.
	PNG Format = iota
	JPEG
	BMP
	TIFF
)

// DefaultJPEGQuality is used by Encode for JPEG output.
const DefaultJPEGQuality = 95

// String returns the lower-case format name.
func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case JPEG:
		return "jpeg"
	case BMP:
		return "bmp"
	case TIFF:
		return "tiff"
	default:
		return "unknown"
	}
}

// ParseFormat parses a format name or file extension, with or without
// the leading dot.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), ".")) {
	case "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPEG, nil
	case "bmp":
		return BMP, nil
	case "tif", "tiff":
		return TIFF, nil
	}
	return 0, fmt.Errorf("swatch: unknown image format %q", name)
}

// FormatFromPath picks the format from the file extension of path.
// Paths without an extension are PNG.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return PNG, nil
	}
	return ParseFormat(ext)
}

// Encode writes the canvas to w in the given format.
func (c *Canvas) Encode(w io.Writer, f Format) error {
	img := c.pixmap.ToImage()
	switch f {
	case PNG:
		return png.Encode(w, img)
	case JPEG:
		return c.EncodeJPEG(w, DefaultJPEGQuality)
	case BMP:
		return bmp.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	}
	return fmt.Errorf("swatch: unsupported format %v", f)
}

// EncodeJPEG writes the canvas as JPEG with the given quality (1-100).
func (c *Canvas) EncodeJPEG(w io.Writer, quality int) error {
	return jpeg.Encode(w, c.pixmap.ToImage(), &jpeg.Options{Quality: quality})
}

// Save writes the canvas to path, choosing the format from its extension.
func (c *Canvas) Save(path string) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	return c.SaveAs(path, f)
}

// SaveAs writes the canvas to path in format f.
func (c *Canvas) SaveAs(path string, f Format) (err error) {
	file, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()
	return c.Encode(file, f)
}
