// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build cgo

package opengl

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/sketch"
)

func init() {
	// GLFW event handling must run on the main thread.
	runtime.LockOSThread()

	// The registered device uses pixel coordinates; call NewWindow with
	// Perspective for the 3D camera.
	sketch.RegisterDevice("opengl", func(width, height int) (sketch.Device, error) {
		w, err := NewWindow(width, height, WindowOptions{Title: "sketch"})
		if err != nil {
			return nil, err
		}
		return w.Device(), nil
	})
}

// WindowOptions configures NewWindow.
type WindowOptions struct {
	Title       string
	Perspective bool // use the 3D camera instead of pixel coordinates
	Hidden      bool // create the window without showing it
}

// Window is a GLFW window with a current OpenGL 2.1 context.
type Window struct {
	win *glfw.Window
	dev *Device
}

// NewWindow opens a fixed-size window and makes its context current on the
// calling thread, which must be the main thread.
func NewWindow(width, height int, opts WindowOptions) (*Window, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("opengl: invalid size %dx%d", width, height)
	}
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("opengl: init glfw: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.DepthBits, 24)
	glfw.WindowHint(glfw.Samples, 4)
	if opts.Hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	win, err := glfw.CreateWindow(width, height, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("opengl: create window: %w", err)
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("opengl: init gl: %w", err)
	}
	gl.Enable(gl.MULTISAMPLE)

	w := &Window{win: win}
	w.dev = New(width, height, opts.Perspective)
	w.dev.win = w

	// The framebuffer can be larger than the window on HiDPI screens.
	fbw, fbh := win.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbw), int32(fbh))

	sketch.Logger().Info("opengl: window opened",
		"width", width, "height", height,
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)))
	return w, nil
}

// Device returns the device drawing into the window.
func (w *Window) Device() *Device {
	return w.dev
}

// Run calls draw once per frame until the window is closed or draw fails.
func (w *Window) Run(draw func() error) error {
	for !w.win.ShouldClose() {
		if err := draw(); err != nil {
			return err
		}
		w.win.SwapBuffers()
		glfw.PollEvents()
	}
	return nil
}

// Close destroys the window and shuts GLFW down.
func (w *Window) Close() {
	w.win.Destroy()
	glfw.Terminate()
	sketch.Logger().Info("opengl: window closed")
}
