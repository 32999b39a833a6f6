//go:build !cgo

package main

import "github.com/gogpu/sketch"

// openDevice opens the device named in cfg. Without cgo there is no OpenGL
// window.
func openDevice(cfg sketch.Config) (sketch.Device, error) {
	return sketch.OpenDevice(cfg.Device, cfg.Width, cfg.Height)
}
