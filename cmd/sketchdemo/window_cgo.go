//go:build cgo

package main

import (
	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/opengl"
)

// openDevice opens the device named in cfg. The OpenGL window is built
// directly so it gets the configured camera.
func openDevice(cfg sketch.Config) (sketch.Device, error) {
	if cfg.Device != "opengl" {
		return sketch.OpenDevice(cfg.Device, cfg.Width, cfg.Height)
	}
	w, err := opengl.NewWindow(cfg.Width, cfg.Height, windowOptions(cfg))
	if err != nil {
		return nil, err
	}
	return w.Device(), nil
}

func windowOptions(cfg sketch.Config) opengl.WindowOptions {
	return opengl.WindowOptions{
		Title:       "sketchdemo",
		Perspective: cfg.Perspective,
	}
}
