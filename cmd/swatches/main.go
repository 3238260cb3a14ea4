// Command swatches renders the HSLuv hue scheme to an image file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/gogpu/swatch"
	"github.com/gogpu/swatch/internal/config"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	os.Exit(run(os.Args[1:], os.Getenv, os.Stdout, os.Stderr))
}

func run(args []string, getenv func(string) string, stdout, stderr io.Writer) int {
	cfg, err := config.Load("swatches", args, getenv, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 2
	}

	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	swatch.SetLogger(log)
	defer swatch.SetLogger(nil)

	conv := cfg.Model.Converter()

	if cfg.Palette {
		colors, err := swatch.Palette(conv, swatch.HueScheme())
		if err != nil {
			log.Error("palette failed", "err", err)
			return 1
		}
		for i, s := range swatch.HueScheme() {
			fmt.Fprintf(stdout, "%v\t%s\n", s.Sample, colors[i].Hex())
		}
		return 0
	}

	c, err := swatch.Render(conv)
	if err != nil {
		log.Error("render failed", "model", cfg.Model, "err", err)
		return 1
	}
	if err := save(c, cfg); err != nil {
		log.Error("save failed", "output", cfg.Output, "err", err)
		return 1
	}

	log.Info("scheme saved",
		"output", cfg.Output,
		"format", cfg.Format,
		"model", cfg.Model,
		"width", c.Width(),
		"height", c.Height())
	return 0
}

func save(c *swatch.Canvas, cfg config.Config) (err error) {
	if cfg.Format != swatch.JPEG {
		return c.SaveAs(cfg.Output, cfg.Format)
	}
	f, err := os.Create(cfg.Output)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return c.EncodeJPEG(f, cfg.JPEGQuality)
}
