// Command sketchdemo draws every sketch primitive and writes the result to a
// PNG file, or shows it in a window with -device opengl (cgo builds only).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/raster"
	"github.com/gogpu/sketch/recording"
)

func main() {
	var (
		configPath = flag.String("config", "", "TOML or YAML config file")
		device     = flag.String("device", "", "device name, overrides the config")
		output     = flag.String("output", "sketch.png", "output file")
		watch      = flag.Bool("watch", false, "render again whenever the config file changes")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	sketch.SetLogger(logger)

	cfg, err := loadConfig(*configPath, *device)
	if err != nil {
		log.Fatal(err)
	}
	if err := render(cfg, *output); err != nil {
		log.Fatalf("Failed to render: %v", err)
	}

	if !*watch {
		return
	}
	if *configPath == "" {
		log.Fatal("-watch needs -config")
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := watchConfig(ctx, *configPath, *device, *output); err != nil {
		log.Fatal(err)
	}
}

// loadConfig reads and validates path, or returns the defaults if path is
// empty. A non-empty device overrides the configured one.
func loadConfig(path, device string) (sketch.Config, error) {
	cfg := sketch.DefaultConfig()
	if path != "" {
		var err error
		if cfg, err = sketch.LoadConfig(path); err != nil {
			return cfg, err
		}
	}
	if device != "" {
		cfg.Device = device
	}
	return cfg, cfg.Validate()
}

// windowed is implemented by devices that present frames on screen.
type windowed interface {
	Run(draw func() error) error
	Close()
}

func render(cfg sketch.Config, output string) error {
	switch cfg.Device {
	case "raster":
		d, err := newRaster(cfg)
		if err != nil {
			return err
		}
		if err := drawScene(sketch.New(d, sketch.WithConfig(cfg)), cfg); err != nil {
			return err
		}
		return d.SavePNG(output)

	case "recording":
		rec := recording.NewRecorder(cfg.Width, cfg.Height)
		if err := drawScene(sketch.New(rec, sketch.WithConfig(cfg)), cfg); err != nil {
			return err
		}
		r := rec.FinishRecording()
		slog.Info("scene recorded",
			"commands", len(r.Commands()),
			"vertex arrays", r.Resources().VertexArrayCount(),
			"index arrays", r.Resources().IndexArrayCount())

		d, err := newRaster(cfg)
		if err != nil {
			return err
		}
		if err := r.Playback(d); err != nil {
			return err
		}
		return d.SavePNG(output)
	}

	dev, err := openDevice(cfg)
	if err != nil {
		return fmt.Errorf("%w (available: %v)", err, sketch.Devices())
	}
	win, ok := dev.(windowed)
	if !ok {
		return fmt.Errorf("device %q has no output", cfg.Device)
	}
	defer win.Close()

	s := sketch.New(dev, sketch.WithConfig(cfg))
	return win.Run(func() error {
		return drawScene(s, cfg)
	})
}

// newRaster opens the registered raster device, or builds one directly when
// the 3D camera is wanted.
func newRaster(cfg sketch.Config) (*raster.Device, error) {
	if cfg.Perspective {
		return raster.New(cfg.Width, cfg.Height, raster.WithPerspective()), nil
	}
	dev, err := sketch.OpenDevice("raster", cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	return dev.(*raster.Device), nil
}

// drawScene lays the primitives out on a 4x3 grid of cells.
func drawScene(s *sketch.Sketch, cfg sketch.Config) error {
	w, h := float64(cfg.Width), float64(cfg.Height)
	cw, ch := w/4, h/3
	r := math.Min(cw, ch) * 0.35

	fill, stroke := s.FillColor(), s.StrokeColor()
	mode := s.EllipseMode()
	var errs []error

	s.Background(cfg.BackgroundColor())

	// Row 1: the same circle drawn once per ellipse mode.
	modes := []sketch.EllipseMode{sketch.Center, sketch.Radius, sketch.Corner, sketch.Corners}
	for i, m := range modes {
		cx, cy := cw*(float64(i)+0.5), ch*0.5
		var a, b, c, d float64
		switch m {
		case sketch.Center:
			a, b, c, d = cx, cy, 2*r, 2*r
		case sketch.Radius:
			a, b, c, d = cx, cy, r, r
		case sketch.Corner:
			a, b, c, d = cx-r, cy-r, 2*r, 2*r
		case sketch.Corners:
			a, b, c, d = cx-r, cy-r, cx+r, cy+r
		}
		errs = append(errs, s.SetEllipseMode(m))
		errs = append(errs, s.Ellipse(a, b, c, d))
	}
	errs = append(errs, s.SetEllipseMode(mode))

	// Row 2: triangle, quad, line fan, point grid.
	y := ch * 1.5
	errs = append(errs, s.Triangle(cw*0.5, y-r, cw*0.5+r, y+r, cw*0.5-r, y+r))
	errs = append(errs, s.Quad(cw*1.5-r, y-r*0.6, cw*1.5+r*0.8, y-r, cw*1.5+r, y+r, cw*1.5-r*0.7, y+r*0.8))
	for i := range 12 {
		a := 2 * math.Pi * float64(i) / 12
		errs = append(errs, s.Line(cw*2.5, y, cw*2.5+r*math.Cos(a), y+r*math.Sin(a)))
	}
	for i := range 5 {
		for j := range 5 {
			errs = append(errs, s.Point(cw*3.5-r+float64(i)*r/2, y-r+float64(j)*r/2))
		}
	}

	// Row 3: spheres at rising detail, lit fill then wireframe.
	details := [][2]int{{6, 6}, {12, 12}, {sketch.DefaultSphereDetail, sketch.DefaultSphereDetail}}
	s.Lights()
	for i, d := range details {
		errs = append(errs, s.SphereDetail(d[0], d[1]))
		s.PushMatrix()
		s.Translate(cw*(float64(i)+0.5), ch*2.5, 0)
		s.RotateX(0.4)
		s.RotateY(0.3 * float64(i))
		errs = append(errs, s.Sphere(r))
		errs = append(errs, s.PopMatrix())
	}
	s.NoLights()

	s.NoFill()
	errs = append(errs, s.SphereDetailUniform(10))
	s.PushMatrix()
	s.Translate(cw*3.5, ch*2.5, 0)
	s.RotateZ(math.Pi / 8)
	errs = append(errs, s.Sphere(r))
	errs = append(errs, s.PopMatrix())

	s.Fill(fill)
	s.Stroke(stroke)
	errs = append(errs, s.SphereDetail(cfg.SphereURes, cfg.SphereVRes))
	return errors.Join(errs...)
}

// watchConfig renders again each time the config file is written, until ctx
// is cancelled. The directory is watched so editors that replace the file
// are handled.
func watchConfig(ctx context.Context, path, device, output string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	target := filepath.Clean(path)
	slog.Info("watching config", "path", target)

	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watch error", "error", err)
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			cfg, err := loadConfig(path, device)
			if err != nil {
				slog.Warn("config rejected", "error", err)
				continue
			}
			if err := render(cfg, output); err != nil {
				slog.Warn("render failed", "error", err)
				continue
			}
			slog.Info("re-rendered", "output", output)
		}
	}
}
