package sketch

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Line draws a 2D line segment with the stroke color.
func (s *Sketch) Line(x0, y0, x1, y1 float64) error {
	return s.Line3D(x0, y0, 0, x1, y1, 0)
}

// Line3D draws a line segment with the stroke color.
func (s *Sketch) Line3D(x0, y0, z0, x1, y1, z1 float64) error {
	if !s.stroke.Visible() {
		return nil
	}
	s.dev.SetColor(s.stroke)
	return s.dev.DrawArrays(Lines, []mgl64.Vec3{{x0, y0, z0}, {x1, y1, z1}})
}

// Point draws a 2D point with the stroke color.
func (s *Sketch) Point(x, y float64) error {
	return s.Point3D(x, y, 0)
}

// Point3D draws a point with the stroke color.
func (s *Sketch) Point3D(x, y, z float64) error {
	if !s.stroke.Visible() {
		return nil
	}
	s.dev.SetColor(s.stroke)
	return s.dev.DrawArrays(Points, []mgl64.Vec3{{x, y, z}})
}

// Triangle draws a 2D triangle, filled and then outlined.
func (s *Sketch) Triangle(x0, y0, x1, y1, x2, y2 float64) error {
	return s.Triangle3D(x0, y0, 0, x1, y1, 0, x2, y2, 0)
}

// Triangle3D draws a triangle, filled and then outlined.
func (s *Sketch) Triangle3D(x0, y0, z0, x1, y1, z1, x2, y2, z2 float64) error {
	return s.fillAndOutline(Triangles, []mgl64.Vec3{
		{x0, y0, z0},
		{x1, y1, z1},
		{x2, y2, z2},
	})
}

// Quad draws a 2D quadrilateral, filled and then outlined. The vertices
// are given in order around the shape.
func (s *Sketch) Quad(x0, y0, x1, y1, x2, y2, x3, y3 float64) error {
	return s.fillAndOutline(Quads, []mgl64.Vec3{
		{x0, y0, 0},
		{x1, y1, 0},
		{x2, y2, 0},
		{x3, y3, 0},
	})
}

// fillAndOutline draws vtx once in fill mode with the fill color and once in
// line mode with the stroke color, skipping invisible passes.
func (s *Sketch) fillAndOutline(p Primitive, vtx []mgl64.Vec3) error {
	var errs []error
	if s.fill.Visible() {
		s.dev.SetColor(s.fill)
		s.dev.SetPolygonMode(PolygonFill)
		errs = append(errs, s.dev.DrawArrays(p, vtx))
	}
	if s.stroke.Visible() {
		s.dev.SetColor(s.stroke)
		s.dev.SetPolygonMode(PolygonLine)
		errs = append(errs, s.dev.DrawArrays(p, vtx))
	}
	return errors.Join(errs...)
}

// Ellipse draws an ellipse. With the default Center mode, x, y is the
// center and w, h are the diameters; see EllipseMode for the others.
func (s *Sketch) Ellipse(x, y, w, h float64) error {
	switch s.ellipseMode {
	case Center:
		x -= w / 2
		y -= h / 2
	case Radius:
		x -= w
		y -= h
		w *= 2
		h *= 2
	case Corners:
		w -= x
		h -= y
	}

	if !s.fill.Visible() && !s.stroke.Visible() {
		return nil
	}

	s.dev.PushMatrix()
	s.dev.Translate(x, y, 0)
	s.dev.Scale(w, h, 1)
	s.dev.Translate(0.5, 0.5, 0)

	var errs []error
	vtx := s.circle.Vertices
	if s.fill.Visible() {
		s.dev.SetColor(s.fill)
		s.dev.SetPolygonMode(PolygonFill)
		errs = append(errs, s.dev.DrawArrays(Polygon, vtx))
	}
	if s.stroke.Visible() {
		s.dev.SetColor(s.stroke)
		errs = append(errs, s.dev.DrawArrays(LineLoop, vtx))
	}

	errs = append(errs, s.dev.PopMatrix())
	return errors.Join(errs...)
}

// Sphere draws a sphere of the given radius centered at the origin. Move it
// into place with Translate.
func (s *Sketch) Sphere(radius float64) error {
	if !s.fill.Visible() && !s.stroke.Visible() {
		return nil
	}

	m := s.sphere
	idx := m.Indices[:m.IndexCount()]

	s.dev.PushMatrix()
	s.dev.Scale(radius, radius, radius)

	var errs []error
	if s.fill.Visible() {
		s.dev.SetColor(s.fill)
		s.dev.SetPolygonMode(PolygonFill)
		s.dev.Enable(CapPolygonOffsetFill)
		errs = append(errs, s.dev.DrawElements(QuadStrip, m.Vertices, m.Vertices, idx))
		s.dev.Disable(CapPolygonOffsetFill)
	}
	if s.stroke.Visible() {
		s.dev.PushAttrib()
		s.dev.Disable(CapLighting)
		s.dev.SetColor(s.stroke)
		s.dev.SetPolygonMode(PolygonLine)
		errs = append(errs, s.dev.DrawElements(QuadStrip, m.Vertices, m.Vertices, idx))
		errs = append(errs, s.dev.PopAttrib())
	}

	errs = append(errs, s.dev.PopMatrix())
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("sketch: sphere: %w", err)
	}
	return nil
}
