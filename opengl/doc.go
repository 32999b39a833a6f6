// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package opengl implements sketch.Device on the OpenGL 2.1 fixed-function
// pipeline, with a GLFW window to draw into.
//
// Importing the package registers the "opengl" device. Opening it creates a
// window, so it must happen on the main goroutine:
//
//	import _ "github.com/gogpu/sketch/opengl"
//
//	dev, err := sketch.OpenDevice("opengl", 640, 480)
//
// The package needs cgo; without it the device is not registered.
package opengl
