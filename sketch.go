package sketch

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Sketch holds the paint and shape-detail state and issues draw calls on a
// Device.
//
// A Sketch is not safe for concurrent use; like the device beneath it, it
// belongs to the goroutine that renders.
type Sketch struct {
	dev Device

	fill   Color
	stroke Color

	ellipseMode EllipseMode
	circle      *CircleMesh
	sphere      *SphereMesh
}

// New creates a Sketch drawing on dev. By default the fill is white, the
// stroke black, ellipses use Center mode with 50 segments and spheres are
// 30x30.
func New(dev Device, opts ...Option) *Sketch {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Options only let valid detail values through.
	circle, _ := circleMesh(o.ellipseDetail)
	sphere, _ := sphereMesh(o.sphereU, o.sphereV)

	return &Sketch{
		dev:         dev,
		fill:        o.fill,
		stroke:      o.stroke,
		ellipseMode: o.ellipseMode,
		circle:      circle,
		sphere:      sphere,
	}
}

// Device returns the device the sketch draws on.
func (s *Sketch) Device() Device {
	return s.dev
}

// Background clears the device to c.
func (s *Sketch) Background(c Color) {
	s.dev.Clear(c)
}

// Fill sets the color used to fill shapes.
func (s *Sketch) Fill(c Color) {
	s.fill = c
}

// NoFill disables filling.
func (s *Sketch) NoFill() {
	s.fill = Transparent
}

// FillColor returns the current fill color.
func (s *Sketch) FillColor() Color {
	return s.fill
}

// Stroke sets the color used for lines, points and outlines.
func (s *Sketch) Stroke(c Color) {
	s.stroke = c
}

// NoStroke disables lines, points and outlines.
func (s *Sketch) NoStroke() {
	s.stroke = Transparent
}

// StrokeColor returns the current stroke color.
func (s *Sketch) StrokeColor() Color {
	return s.stroke
}

// PushMatrix saves the device's current transformation.
func (s *Sketch) PushMatrix() {
	s.dev.PushMatrix()
}

// PopMatrix restores the transformation saved by the matching PushMatrix.
func (s *Sketch) PopMatrix() error {
	return s.dev.PopMatrix()
}

// Translate moves the origin.
func (s *Sketch) Translate(x, y, z float64) {
	s.dev.Translate(x, y, z)
}

// Scale scales the coordinate axes.
func (s *Sketch) Scale(x, y, z float64) {
	s.dev.Scale(x, y, z)
}

// RotateX rotates around the x axis by angle radians.
func (s *Sketch) RotateX(angle float64) {
	s.dev.Rotate(angle, mgl64.Vec3{1, 0, 0})
}

// RotateY rotates around the y axis by angle radians.
func (s *Sketch) RotateY(angle float64) {
	s.dev.Rotate(angle, mgl64.Vec3{0, 1, 0})
}

// RotateZ rotates around the z axis by angle radians. In 2D this is the
// usual rotation.
func (s *Sketch) RotateZ(angle float64) {
	s.dev.Rotate(angle, mgl64.Vec3{0, 0, 1})
}

// Lights turns on device lighting for filled shapes.
func (s *Sketch) Lights() {
	s.dev.Enable(CapLighting)
}

// NoLights turns device lighting off.
func (s *Sketch) NoLights() {
	s.dev.Disable(CapLighting)
}

// SetEllipseMode changes how Ellipse interprets its arguments.
// An unknown mode returns ErrInvalidEllipseMode and leaves the mode as is.
func (s *Sketch) SetEllipseMode(m EllipseMode) error {
	if !m.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidEllipseMode, uint8(m))
	}
	s.ellipseMode = m
	return nil
}

// EllipseMode returns the current ellipse mode.
func (s *Sketch) EllipseMode() EllipseMode {
	return s.ellipseMode
}

// EllipseDetail sets the number of segments used to draw ellipses.
// n must be at least 3.
func (s *Sketch) EllipseDetail(n int) error {
	m, err := circleMesh(n)
	if err != nil {
		return err
	}
	s.circle = m
	return nil
}

// EllipseSegments returns the current number of ellipse segments.
func (s *Sketch) EllipseSegments() int {
	return s.circle.Segments()
}

// SphereDetail sets the sphere resolution: ures points from pole to pole
// and vres meridians around. The default is 30x30, a vertex every 12
// degrees. Both values must be at least 2.
func (s *Sketch) SphereDetail(ures, vres int) error {
	m, err := sphereMesh(ures, vres)
	if err != nil {
		return err
	}
	s.sphere = m
	return nil
}

// SphereDetailUniform sets both sphere resolutions to res.
func (s *Sketch) SphereDetailUniform(res int) error {
	return s.SphereDetail(res, res)
}

// SphereResolution returns the current sphere resolution.
func (s *Sketch) SphereResolution() (ures, vres int) {
	return s.sphere.URes, s.sphere.VRes
}
