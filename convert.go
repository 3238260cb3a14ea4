package swatch

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/crazy3lf/colorconv"
	"github.com/hsluv/hsluv-go"
	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidSample is returned when a hue, saturation or lightness value
// is outside its valid range.
var ErrInvalidSample = errors.New("swatch: invalid color sample")

// Sample is a color in a cylindrical (hue, saturation, lightness) space.
// Hue is in degrees [0, 360); saturation and lightness are in [0, 100].
type Sample struct {
	Hue        float64
	Saturation float64
	Lightness  float64
}

// HSL is shorthand for Sample{h, s, l}.
func HSL(h, s, l float64) Sample {
	return Sample{Hue: h, Saturation: s, Lightness: l}
}

// Validate reports whether every component of s is finite and in range.
func (s Sample) Validate() error {
	switch {
	case !finite(s.Hue) || s.Hue < 0 || s.Hue >= 360:
		return fmt.Errorf("%w: hue %v not in [0, 360)", ErrInvalidSample, s.Hue)
	case !finite(s.Saturation) || s.Saturation < 0 || s.Saturation > 100:
		return fmt.Errorf("%w: saturation %v not in [0, 100]", ErrInvalidSample, s.Saturation)
	case !finite(s.Lightness) || s.Lightness < 0 || s.Lightness > 100:
		return fmt.Errorf("%w: lightness %v not in [0, 100]", ErrInvalidSample, s.Lightness)
	}
	return nil
}

// String returns the sample as "(h, s, l)".
func (s Sample) String() string {
	return fmt.Sprintf("(%g, %g, %g)", s.Hue, s.Saturation, s.Lightness)
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Converter maps a Sample to an opaque RGB color.
// Implementations must be pure: the same sample always yields the same color.
type Converter interface {
	Convert(s Sample) (RGBA, error)
}

// ConverterFunc adapts an ordinary function to the Converter interface.
type ConverterFunc func(s Sample) (RGBA, error)

// Convert calls f(s).
func (f ConverterFunc) Convert(s Sample) (RGBA, error) {
	return f(s)
}

// Model selects a color model for interpreting samples.
type Model int

const (
	// ModelHSLuv is HSLuv using the reference hsluv implementation.
	ModelHSLuv Model = iota

	// ModelColorfulHSLuv is HSLuv using go-colorful's implementation.
	ModelColorfulHSLuv

	// ModelHSL is the standard, non-perceptual HSL model.
	ModelHSL
)

// String returns the model name accepted by ParseModel.
func (m Model) String() string {
	switch m {
	case ModelHSLuv:
		return "hsluv"
	case ModelColorfulHSLuv:
		return "colorful"
	case ModelHSL:
		return "hsl"
	default:
		return "unknown"
	}
}

// Converter returns the converter for m.
func (m Model) Converter() Converter {
	switch m {
	case ModelColorfulHSLuv:
		return ConverterFunc(colorfulHSLuv)
	case ModelHSL:
		return ConverterFunc(plainHSL)
	default:
		return ConverterFunc(referenceHSLuv)
	}
}

// ParseModel parses a model name as returned by Model.String.
func ParseModel(name string) (Model, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "hsluv":
		return ModelHSLuv, nil
	case "colorful":
		return ModelColorfulHSLuv, nil
	case "hsl":
		return ModelHSL, nil
	}
	return 0, fmt.Errorf("swatch: unknown color model %q", name)
}

// Default converters, one per model.
var (
	HSLuv         = ModelHSLuv.Converter()
	ColorfulHSLuv = ModelColorfulHSLuv.Converter()
	PlainHSL      = ModelHSL.Converter()
)

func referenceHSLuv(s Sample) (RGBA, error) {
	if err := s.Validate(); err != nil {
		return RGBA{}, err
	}
	r, g, b := hsluv.HsluvToRGB(s.Hue, s.Saturation, s.Lightness)
	return RGB(r, g, b).Clamped(), nil
}

func colorfulHSLuv(s Sample) (RGBA, error) {
	if err := s.Validate(); err != nil {
		return RGBA{}, err
	}
	c := colorful.HSLuv(s.Hue, s.Saturation/100, s.Lightness/100)
	return RGB(c.R, c.G, c.B).Clamped(), nil
}

func plainHSL(s Sample) (RGBA, error) {
	if err := s.Validate(); err != nil {
		return RGBA{}, err
	}
	r, g, b, err := colorconv.HSLToRGB(s.Hue, s.Saturation/100, s.Lightness/100)
	if err != nil {
		return RGBA{}, fmt.Errorf("%w: %v", ErrInvalidSample, err)
	}
	return RGB(float64(r)/255, float64(g)/255, float64(b)/255), nil
}
