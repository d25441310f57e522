// Command bezierplot samples a curve described by a scene file and plots it
// as SVG or PNG.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"honnef.co/go/bezier"
	"honnef.co/go/bezier/internal/scene"
	"honnef.co/go/bezier/render"
)

func main() {
	var (
		scenePath = flag.String("scene", "", "scene file (YAML); the built-in scene is used if empty")
		output    = flag.String("o", "output.svg", "output file, .svg or .png")
		detail    = flag.Int("detail", -1, "samples per segment, overriding the scene")
		width     = flag.Int("width", 0, "image width, overriding the scene")
		height    = flag.Int("height", 0, "image height, overriding the scene")
		controls  = flag.Bool("controls", true, "draw control points")
		verbose   = flag.Bool("v", false, "log debug output")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	bezier.SetLogger(logger)

	sc, err := scene.LoadOptional(*scenePath)
	if err != nil {
		log.Fatalf("Failed to load scene: %v", err)
	}
	if *detail >= 0 {
		sc.Detail = *detail
	}

	c, err := sc.Build()
	if err != nil {
		log.Fatalf("Failed to build curve: %v", err)
	}

	opts := render.DefaultOptions()
	if sc.Width > 0 {
		opts.Width = sc.Width
	}
	if sc.Height > 0 {
		opts.Height = sc.Height
	}
	if *width > 0 {
		opts.Width = *width
	}
	if *height > 0 {
		opts.Height = *height
	}
	if !*controls {
		opts.ControlSize = 0
	}

	s := render.FromCurve(c)
	if err := write(*output, s, opts); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	logger.Info("plotted curve",
		"output", *output,
		"handles", c.Len(),
		"visible", c.VisibleSegments(),
		"lines", len(s.Lines))
}

func write(path string, s render.Scene[float64], opts render.Options) (err error) {
	var enc func(f *os.File) error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".svg":
		enc = func(f *os.File) error { return render.SVG(f, s, opts) }
	case ".png":
		enc = func(f *os.File) error { return render.PNG(f, s, opts) }
	default:
		return fmt.Errorf("unsupported output format %q", ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return enc(f)
}
