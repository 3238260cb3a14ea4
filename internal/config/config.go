// Package config builds the swatches command configuration from
// environment variables and command-line flags.
package config

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gogpu/swatch"
)

// Environment variables read by Load.
const (
	EnvOutput      = "SWATCH_OUTPUT"
	EnvFormat      = "SWATCH_FORMAT"
	EnvModel       = "SWATCH_MODEL"
	EnvJPEGQuality = "SWATCH_JPEG_QUALITY"
	EnvLogLevel    = "SWATCH_LOG_LEVEL"
)

// Config is the resolved command configuration.
type Config struct {
	Output      string
	Format      swatch.Format
	Model       swatch.Model
	JPEGQuality int
	LogLevel    slog.Level
	Palette     bool
}

// Load resolves the configuration. Values come from built-in defaults,
// overridden by getenv, overridden by args. When no format is given the
// output file extension decides it.
func Load(name string, args []string, getenv func(string) string, errOut io.Writer) (Config, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(errOut)

	var (
		output   = fs.String("output", getEnv(getenv, EnvOutput, "scheme-hue.png"), "output file")
		format   = fs.String("format", getenv(EnvFormat), "image format: png, jpeg, bmp or tiff (default from output extension)")
		model    = fs.String("model", getEnv(getenv, EnvModel, "hsluv"), "color model: hsluv, colorful or hsl")
		logLevel = fs.String("log-level", getEnv(getenv, EnvLogLevel, "info"), "log level: debug, info, warn or error")
		palette  = fs.Bool("palette", false, "print the converted colors instead of writing an image")
	)
	quality, err := getEnvInt(getenv, EnvJPEGQuality, swatch.DefaultJPEGQuality)
	if err != nil {
		return Config{}, err
	}
	fs.IntVar(&quality, "quality", quality, "JPEG quality (1-100)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	cfg := Config{
		Output:      *output,
		JPEGQuality: quality,
		Palette:     *palette,
	}
	if cfg.Output == "" {
		return Config{}, fmt.Errorf("output path must not be empty")
	}
	if cfg.JPEGQuality < 1 || cfg.JPEGQuality > 100 {
		return Config{}, fmt.Errorf("jpeg quality %d not in [1, 100]", cfg.JPEGQuality)
	}

	if *format != "" {
		cfg.Format, err = swatch.ParseFormat(*format)
	} else {
		cfg.Format, err = swatch.FormatFromPath(cfg.Output)
	}
	if err != nil {
		return Config{}, err
	}
	if cfg.Model, err = swatch.ParseModel(*model); err != nil {
		return Config{}, err
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(*logLevel)); err != nil {
		return Config{}, fmt.Errorf("log level: %w", err)
	}
	return cfg, nil
}

func getEnv(getenv func(string) string, key, fallback string) string {
	if v := getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(getenv func(string) string, key string, fallback int) (int, error) {
	v := getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
