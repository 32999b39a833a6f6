// Package sketch provides immediate-mode drawing primitives for creative
// coding, in the spirit of Processing.
//
// # Overview
//
// A [Sketch] keeps the paint state (fill and stroke color) and the shape
// detail settings (ellipse segments, sphere resolution) and turns shape
// requests into vertex arrays and draw calls on a [Device]. The device plays
// the part of a fixed-function graphics API: it owns the matrix stack, the
// polygon mode and the enabled capabilities.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/sketch"
//		"github.com/gogpu/sketch/raster"
//	)
//
//	dev := raster.New(400, 400)
//	s := sketch.New(dev)
//
//	s.Background(sketch.Gray(200))
//	s.Fill(sketch.RGB(255, 0, 0))
//	_ = s.Ellipse(200, 200, 120, 80)
//
//	_ = dev.SavePNG("out.png")
//
// # Devices
//
// Three devices ship with the module:
//   - raster: software rendering into an *image.RGBA
//   - recording: captures calls as commands for inspection and playback
//   - opengl: fixed-function OpenGL 2.1 with a GLFW window runner (cgo only)
//
// Devices register themselves by name in init, following the database/sql
// driver pattern. Use [OpenDevice] to create one by name.
//
// # Coordinate System
//
// Pixel coordinates with the origin at the top-left, x to the right and y
// down. Positive z points towards the viewer.
package sketch

// Version is the current version of the library.
const Version = "0.1.0"
