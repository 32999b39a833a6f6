// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster implements sketch.Device in software.
//
// The device keeps the fixed-function state a sketch relies on (modelview
// stack, current color, polygon mode, enabled capabilities) and paints into
// an *image.RGBA with golang.org/x/image/vector, which gives anti-aliased
// coverage for every filled shape.
//
// There is no depth buffer. Within one draw call, faces are painted from
// back to front; separate draw calls are painted in call order.
package raster

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/gogpu/sketch"
)

// ErrIndexOutOfRange is returned by DrawElements when an index does not
// address a vertex.
var ErrIndexOutOfRange = errors.New("raster: index out of range")

func init() {
	sketch.RegisterDevice("raster", func(width, height int) (sketch.Device, error) {
		if width <= 0 || height <= 0 {
			return nil, fmt.Errorf("raster: invalid size %dx%d", width, height)
		}
		return New(width, height), nil
	})
}

// capSet is a bit set of enabled capabilities.
type capSet uint8

func (s capSet) has(c sketch.Capability) bool { return s&(1<<c) != 0 }

// Device renders sketch draw calls into an RGBA image.
//
// A Device is not safe for concurrent use.
type Device struct {
	img *image.RGBA
	ras *vector.Rasterizer

	color sketch.Color
	mode  sketch.PolygonMode

	caps    capSet
	attribs []capSet

	model mgl64.Mat4
	stack []mgl64.Mat4

	perspective bool
	view        mgl64.Mat4
	proj        mgl64.Mat4

	lineWidth float64
	pointSize float64
	ambient   float64
}

var _ sketch.Device = (*Device)(nil)

// Option configures a Device.
type Option func(*Device)

// WithPerspective switches from the default pixel-space orthographic
// projection to Processing's default perspective camera: a π/3 field of
// view with the eye placed so that the z = 0 plane maps to the same pixels
// as in orthographic mode.
func WithPerspective() Option {
	return func(d *Device) { d.perspective = true }
}

// WithLineWidth sets the width in pixels of lines and outlines.
func WithLineWidth(w float64) Option {
	return func(d *Device) {
		if w > 0 {
			d.lineWidth = w
		}
	}
}

// WithPointSize sets the side in pixels of the square drawn for a point.
func WithPointSize(s float64) Option {
	return func(d *Device) {
		if s > 0 {
			d.pointSize = s
		}
	}
}

// WithImage makes the device draw onto img instead of a new image.
// The surface size is taken from img.
func WithImage(img *image.RGBA) Option {
	return func(d *Device) { d.img = img }
}

// New creates a device with a transparent width×height surface.
func New(width, height int, opts ...Option) *Device {
	d := &Device{
		color:     sketch.White,
		mode:      sketch.PolygonFill,
		model:     mgl64.Ident4(),
		stack:     make([]mgl64.Mat4, 0, 8),
		view:      mgl64.Ident4(),
		proj:      mgl64.Ident4(),
		lineWidth: 1,
		pointSize: 1,
		ambient:   0.25,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.img == nil {
		d.img = image.NewRGBA(image.Rect(0, 0, width, height))
	}
	d.ras = vector.NewRasterizer(1, 1)

	if d.perspective {
		w, h := float64(d.Width()), float64(d.Height())
		fov := math.Pi / 3
		eyeZ := (h / 2) / math.Tan(fov/2)
		d.view = mgl64.LookAtV(
			mgl64.Vec3{w / 2, h / 2, eyeZ},
			mgl64.Vec3{w / 2, h / 2, 0},
			mgl64.Vec3{0, 1, 0})
		d.proj = mgl64.Perspective(fov, w/h, eyeZ/10, eyeZ*10)
	}
	return d
}

// Width returns the surface width in pixels.
func (d *Device) Width() int {
	return d.img.Bounds().Dx()
}

// Height returns the surface height in pixels.
func (d *Device) Height() int {
	return d.img.Bounds().Dy()
}

// Image returns the surface the device draws on.
func (d *Device) Image() *image.RGBA {
	return d.img
}

// Color returns the current drawing color.
func (d *Device) Color() sketch.Color {
	return d.color
}

// PolygonMode returns the current polygon mode.
func (d *Device) PolygonMode() sketch.PolygonMode {
	return d.mode
}

// Enabled reports whether capability c is on.
func (d *Device) Enabled(c sketch.Capability) bool {
	return d.caps.has(c)
}

// Matrix returns the current modelview matrix.
func (d *Device) Matrix() mgl64.Mat4 {
	return d.model
}

// Clear implements sketch.Device.
func (d *Device) Clear(c sketch.Color) {
	draw.Draw(d.img, d.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// SetColor implements sketch.Device.
func (d *Device) SetColor(c sketch.Color) {
	d.color = c
}

// SetPolygonMode implements sketch.Device.
func (d *Device) SetPolygonMode(m sketch.PolygonMode) {
	d.mode = m
}

// Enable implements sketch.Device.
func (d *Device) Enable(c sketch.Capability) {
	d.caps |= 1 << c
}

// Disable implements sketch.Device.
func (d *Device) Disable(c sketch.Capability) {
	d.caps &^= 1 << c
}

// PushAttrib implements sketch.Device.
func (d *Device) PushAttrib() {
	d.attribs = append(d.attribs, d.caps)
}

// PopAttrib implements sketch.Device.
func (d *Device) PopAttrib() error {
	if len(d.attribs) == 0 {
		return fmt.Errorf("raster: PopAttrib: %w", sketch.ErrStackUnderflow)
	}
	d.caps = d.attribs[len(d.attribs)-1]
	d.attribs = d.attribs[:len(d.attribs)-1]
	return nil
}

// PushMatrix implements sketch.Device.
func (d *Device) PushMatrix() {
	d.stack = append(d.stack, d.model)
}

// PopMatrix implements sketch.Device.
func (d *Device) PopMatrix() error {
	if len(d.stack) == 0 {
		return fmt.Errorf("raster: PopMatrix: %w", sketch.ErrStackUnderflow)
	}
	d.model = d.stack[len(d.stack)-1]
	d.stack = d.stack[:len(d.stack)-1]
	return nil
}

// Translate implements sketch.Device.
func (d *Device) Translate(x, y, z float64) {
	d.model = d.model.Mul4(mgl64.Translate3D(x, y, z))
}

// Scale implements sketch.Device.
func (d *Device) Scale(x, y, z float64) {
	d.model = d.model.Mul4(mgl64.Scale3D(x, y, z))
}

// Rotate implements sketch.Device. A zero axis leaves the matrix unchanged.
func (d *Device) Rotate(angle float64, axis mgl64.Vec3) {
	if axis.Len() == 0 {
		return
	}
	d.model = d.model.Mul4(mgl64.HomogRotate3D(angle, axis.Normalize()))
}
