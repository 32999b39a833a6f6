package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/sketch"
)

func TestRender(t *testing.T) {
	for _, device := range []string{"raster", "recording"} {
		t.Run(device, func(t *testing.T) {
			cfg := sketch.DefaultConfig()
			cfg.Width, cfg.Height = 160, 120
			cfg.Device = device

			out := filepath.Join(t.TempDir(), "demo.png")
			if err := render(cfg, out); err != nil {
				t.Fatalf("render: %v", err)
			}

			f, err := os.Open(out)
			if err != nil {
				t.Fatal(err)
			}
			defer f.Close()
			img, err := png.Decode(f)
			if err != nil {
				t.Fatal(err)
			}
			if b := img.Bounds(); b.Dx() != 160 || b.Dy() != 120 {
				t.Errorf("size = %dx%d, want 160x120", b.Dx(), b.Dy())
			}
		})
	}
}

func TestRenderPerspective(t *testing.T) {
	cfg := sketch.DefaultConfig()
	cfg.Width, cfg.Height = 80, 60
	cfg.Perspective = true

	if err := render(cfg, filepath.Join(t.TempDir(), "p.png")); err != nil {
		t.Fatalf("render: %v", err)
	}
}

func TestRenderUnknownDevice(t *testing.T) {
	cfg := sketch.DefaultConfig()
	cfg.Device = "plotter"
	if err := render(cfg, filepath.Join(t.TempDir(), "x.png")); err == nil {
		t.Error("unknown device should fail")
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sketch.toml")
	data := "width = 200\nheight = 100\nellipse_mode = \"corner\"\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path, "recording")
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Width != 200 || cfg.Height != 100 || cfg.EllipseMode != "corner" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Device != "recording" {
		t.Errorf("Device = %q, want the override", cfg.Device)
	}

	if err := os.WriteFile(path, []byte("width = -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := loadConfig(path, ""); err == nil {
		t.Error("invalid config should be rejected")
	}
}
