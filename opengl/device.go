// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build cgo

package opengl

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/gogpu/sketch"
)

// ErrIndexOutOfRange is returned by DrawElements when an index does not
// address a vertex.
var ErrIndexOutOfRange = errors.New("opengl: index out of range")

var primitives = [...]uint32{
	sketch.Points:    gl.POINTS,
	sketch.Lines:     gl.LINES,
	sketch.LineLoop:  gl.LINE_LOOP,
	sketch.Triangles: gl.TRIANGLES,
	sketch.Quads:     gl.QUADS,
	sketch.QuadStrip: gl.QUAD_STRIP,
	sketch.Polygon:   gl.POLYGON,
}

var capabilities = [...]uint32{
	sketch.CapPolygonOffsetFill: gl.POLYGON_OFFSET_FILL,
	sketch.CapLighting:          gl.LIGHTING,
}

// Device draws with the OpenGL context current on the calling thread.
// All methods must be called from that thread.
type Device struct {
	width, height int
	win           *Window

	// GL reports stack errors only through glGetError; depths are tracked
	// here so PopMatrix and PopAttrib can fail synchronously.
	matrixDepth int
	attribDepth int
}

// New sets up the current context for sketching: a width×height viewport,
// a y-down projection matching the raster device, depth testing, and a
// headlight for CapLighting. perspective selects the 3D camera.
func New(width, height int, perspective bool) *Device {
	d := &Device{width: width, height: height}

	gl.Viewport(0, 0, int32(width), int32(height))

	w, h := float64(width), float64(height)
	fov := math.Pi / 3
	eyeZ := (h / 2) / math.Tan(fov/2)

	gl.MatrixMode(gl.PROJECTION)
	var proj mgl64.Mat4
	if perspective {
		proj = mgl64.Scale3D(1, -1, 1).Mul4(mgl64.Perspective(fov, w/h, eyeZ/10, eyeZ*10))
	} else {
		proj = mgl64.Ortho(0, w, h, 0, -eyeZ*10, eyeZ*10)
	}
	gl.LoadMatrixd(&proj[0])

	gl.MatrixMode(gl.MODELVIEW)
	gl.LoadIdentity()

	// Light position is in eye space when set under an identity modelview.
	headlight := [4]float32{0, 0, 1, 0}
	ambient := [4]float32{0.25, 0.25, 0.25, 1}
	gl.Lightfv(gl.LIGHT0, gl.POSITION, &headlight[0])
	gl.LightModelfv(gl.LIGHT_MODEL_AMBIENT, &ambient[0])
	gl.Enable(gl.LIGHT0)
	gl.Enable(gl.COLOR_MATERIAL)
	gl.ColorMaterial(gl.FRONT_AND_BACK, gl.AMBIENT_AND_DIFFUSE)
	gl.Enable(gl.NORMALIZE)

	if perspective {
		view := mgl64.LookAtV(
			mgl64.Vec3{w / 2, h / 2, eyeZ},
			mgl64.Vec3{w / 2, h / 2, 0},
			mgl64.Vec3{0, 1, 0})
		gl.LoadMatrixd(&view[0])
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.PolygonOffset(1, 1)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	return d
}

// Width returns the viewport width in pixels.
func (d *Device) Width() int { return d.width }

// Height returns the viewport height in pixels.
func (d *Device) Height() int { return d.height }

// Window returns the window the device draws into, or nil if the device
// was created with New on a context owned by the caller.
func (d *Device) Window() *Window { return d.win }

// Run calls draw once per frame until the device's window is closed.
func (d *Device) Run(draw func() error) error {
	if d.win == nil {
		return errors.New("opengl: device has no window")
	}
	return d.win.Run(draw)
}

// Close closes the device's window, if it has one.
func (d *Device) Close() {
	if d.win != nil {
		d.win.Close()
	}
}

// Clear implements sketch.Device. The depth buffer is cleared too.
func (d *Device) Clear(c sketch.Color) {
	r, g, b, a := c.Floats()
	gl.ClearColor(float32(r), float32(g), float32(b), float32(a))
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// SetColor implements sketch.Device.
func (d *Device) SetColor(c sketch.Color) {
	gl.Color4ub(c.R, c.G, c.B, c.A)
}

// SetPolygonMode implements sketch.Device.
func (d *Device) SetPolygonMode(m sketch.PolygonMode) {
	mode := uint32(gl.FILL)
	if m == sketch.PolygonLine {
		mode = gl.LINE
	}
	gl.PolygonMode(gl.FRONT_AND_BACK, mode)
}

// Enable implements sketch.Device.
func (d *Device) Enable(c sketch.Capability) {
	if int(c) < len(capabilities) {
		gl.Enable(capabilities[c])
	}
}

// Disable implements sketch.Device.
func (d *Device) Disable(c sketch.Capability) {
	if int(c) < len(capabilities) {
		gl.Disable(capabilities[c])
	}
}

// PushAttrib implements sketch.Device.
func (d *Device) PushAttrib() {
	gl.PushAttrib(gl.ENABLE_BIT)
	d.attribDepth++
}

// PopAttrib implements sketch.Device.
func (d *Device) PopAttrib() error {
	if d.attribDepth == 0 {
		return fmt.Errorf("opengl: PopAttrib: %w", sketch.ErrStackUnderflow)
	}
	gl.PopAttrib()
	d.attribDepth--
	return nil
}

// PushMatrix implements sketch.Device.
func (d *Device) PushMatrix() {
	gl.PushMatrix()
	d.matrixDepth++
}

// PopMatrix implements sketch.Device.
func (d *Device) PopMatrix() error {
	if d.matrixDepth == 0 {
		return fmt.Errorf("opengl: PopMatrix: %w", sketch.ErrStackUnderflow)
	}
	gl.PopMatrix()
	d.matrixDepth--
	return nil
}

// Translate implements sketch.Device.
func (d *Device) Translate(x, y, z float64) {
	gl.Translated(x, y, z)
}

// Scale implements sketch.Device.
func (d *Device) Scale(x, y, z float64) {
	gl.Scaled(x, y, z)
}

// Rotate implements sketch.Device. A zero axis leaves the matrix unchanged.
func (d *Device) Rotate(angle float64, axis mgl64.Vec3) {
	if axis.Len() == 0 {
		return
	}
	gl.Rotated(mgl64.RadToDeg(angle), axis.X(), axis.Y(), axis.Z())
}

// DrawArrays implements sketch.Device.
func (d *Device) DrawArrays(p sketch.Primitive, vertices []mgl64.Vec3) error {
	mode, err := primitive(p)
	if err != nil || len(vertices) == 0 {
		return err
	}

	gl.EnableClientState(gl.VERTEX_ARRAY)
	gl.VertexPointer(3, gl.DOUBLE, 0, gl.Ptr(&vertices[0][0]))
	gl.DrawArrays(mode, 0, int32(len(vertices)))
	gl.DisableClientState(gl.VERTEX_ARRAY)

	return checkError("DrawArrays")
}

// DrawElements implements sketch.Device.
func (d *Device) DrawElements(p sketch.Primitive, vertices, normals []mgl64.Vec3, indices []uint32) error {
	mode, err := primitive(p)
	if err != nil {
		return err
	}
	if normals != nil && len(normals) != len(vertices) {
		return fmt.Errorf("opengl: DrawElements: %d normals for %d vertices", len(normals), len(vertices))
	}
	for i, ix := range indices {
		if int(ix) >= len(vertices) {
			return fmt.Errorf("%w: index %d at %d, %d vertices", ErrIndexOutOfRange, ix, i, len(vertices))
		}
	}
	if len(indices) == 0 {
		return nil
	}

	gl.EnableClientState(gl.VERTEX_ARRAY)
	gl.VertexPointer(3, gl.DOUBLE, 0, gl.Ptr(&vertices[0][0]))
	if normals != nil {
		gl.EnableClientState(gl.NORMAL_ARRAY)
		gl.NormalPointer(gl.DOUBLE, 0, gl.Ptr(&normals[0][0]))
	}
	gl.DrawElements(mode, int32(len(indices)), gl.UNSIGNED_INT, gl.Ptr(&indices[0]))
	if normals != nil {
		gl.DisableClientState(gl.NORMAL_ARRAY)
	}
	gl.DisableClientState(gl.VERTEX_ARRAY)

	return checkError("DrawElements")
}

// Image reads the viewport's color buffer back into an image, top row
// first. On HiDPI screens it is larger than Width×Height.
func (d *Device) Image() *image.RGBA {
	var vp [4]int32
	gl.GetIntegerv(gl.VIEWPORT, &vp[0])
	w, h := int(vp[2]), int(vp[3])

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == 0 || h == 0 {
		return img
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, vp[2], vp[3], gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(&img.Pix[0]))

	// GL rows start at the bottom.
	row := make([]byte, img.Stride)
	for top, bottom := 0, h-1; top < bottom; top, bottom = top+1, bottom-1 {
		t := img.Pix[top*img.Stride : (top+1)*img.Stride]
		b := img.Pix[bottom*img.Stride : (bottom+1)*img.Stride]
		copy(row, t)
		copy(t, b)
		copy(b, row)
	}
	return img
}

func primitive(p sketch.Primitive) (uint32, error) {
	if int(p) >= len(primitives) {
		return 0, fmt.Errorf("opengl: unsupported primitive %v", p)
	}
	return primitives[p], nil
}

func checkError(op string) error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("opengl: %s: GL error 0x%04x", op, code)
	}
	return nil
}
