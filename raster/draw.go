// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"slices"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gogpu/sketch"
)

// vertex is a transformed input vertex.
type vertex struct {
	eye    mgl64.Vec3 // eye-space position
	screen mgl64.Vec2 // pixel position
	ok     bool       // false if the vertex is behind the eye
}

// face is one assembled polygon of a draw call.
type face struct {
	idx    []uint32
	depth  float64    // mean eye-space z; smaller is farther
	center mgl64.Vec3 // eye-space centroid
	normal mgl64.Vec3 // eye-space normal sum, zero if unknown
}

// DrawArrays implements sketch.Device.
func (d *Device) DrawArrays(p sketch.Primitive, vertices []mgl64.Vec3) error {
	idx := make([]uint32, len(vertices))
	for i := range idx {
		idx[i] = uint32(i)
	}
	return d.draw(p, vertices, nil, idx)
}

// DrawElements implements sketch.Device.
func (d *Device) DrawElements(p sketch.Primitive, vertices, normals []mgl64.Vec3, indices []uint32) error {
	if normals != nil && len(normals) != len(vertices) {
		return fmt.Errorf("raster: DrawElements: %d normals for %d vertices", len(normals), len(vertices))
	}
	for i, ix := range indices {
		if int(ix) >= len(vertices) {
			return fmt.Errorf("%w: index %d at %d, %d vertices", ErrIndexOutOfRange, ix, i, len(vertices))
		}
	}
	return d.draw(p, vertices, normals, indices)
}

func (d *Device) draw(p sketch.Primitive, vertices, normals []mgl64.Vec3, indices []uint32) error {
	if !d.color.Visible() || len(indices) == 0 {
		return nil
	}

	mv := d.view.Mul4(d.model)
	xf := make([]vertex, len(vertices))
	for i, v := range vertices {
		xf[i] = d.project(mv, v)
	}

	switch p {
	case sketch.Points:
		for _, ix := range indices {
			if v := xf[ix]; v.ok {
				d.point(v.screen)
			}
		}
	case sketch.Lines:
		for i := 0; i+1 < len(indices); i += 2 {
			d.edge(xf[indices[i]], xf[indices[i+1]])
		}
	case sketch.LineLoop:
		d.loop(xf, indices)
	case sketch.Triangles, sketch.Quads, sketch.QuadStrip, sketch.Polygon:
		lit := d.caps.has(sketch.CapLighting)
		var nmat mgl64.Mat3
		if normals != nil || lit {
			nmat = mv.Mat3().Inv().Transpose()
		}
		faces := d.assemble(p, indices, xf, normals, nmat)
		if normals == nil && lit {
			// Without normals every vertex takes the default (0, 0, 1).
			n := nmat.Mul3x1(mgl64.Vec3{0, 0, 1})
			for i := range faces {
				faces[i].normal = n
			}
		}
		d.paint(faces, xf, normals != nil)
	default:
		return fmt.Errorf("raster: unsupported primitive %v", p)
	}
	return nil
}

// project maps a model-space vertex to eye space and pixels.
func (d *Device) project(mv mgl64.Mat4, v mgl64.Vec3) vertex {
	eye := mv.Mul4x1(v.Vec4(1)).Vec3()
	if !d.perspective {
		return vertex{eye: eye, screen: mgl64.Vec2{eye.X(), eye.Y()}, ok: true}
	}
	clip := d.proj.Mul4x1(eye.Vec4(1))
	if clip.W() <= 1e-9 {
		return vertex{eye: eye}
	}
	w, h := float64(d.Width()), float64(d.Height())
	return vertex{
		eye: eye,
		screen: mgl64.Vec2{
			(clip.X()/clip.W() + 1) / 2 * w,
			(clip.Y()/clip.W() + 1) / 2 * h,
		},
		ok: true,
	}
}

// assemble groups indices into polygons according to p and drops any
// polygon with a vertex behind the eye.
func (d *Device) assemble(p sketch.Primitive, indices []uint32, xf []vertex, normals []mgl64.Vec3, nmat mgl64.Mat3) []face {
	var groups [][]uint32
	switch p {
	case sketch.Triangles:
		for i := 0; i+2 < len(indices); i += 3 {
			groups = append(groups, indices[i:i+3])
		}
	case sketch.Quads:
		for i := 0; i+3 < len(indices); i += 4 {
			groups = append(groups, indices[i:i+4])
		}
	case sketch.QuadStrip:
		for i := 0; i+3 < len(indices); i += 2 {
			groups = append(groups, []uint32{indices[i], indices[i+1], indices[i+3], indices[i+2]})
		}
	case sketch.Polygon:
		if len(indices) >= 3 {
			groups = append(groups, indices)
		}
	}

	faces := make([]face, 0, len(groups))
	skipped := 0
	for _, g := range groups {
		f := face{idx: g}
		visible := true
		for _, ix := range g {
			v := xf[ix]
			if !v.ok {
				visible = false
				break
			}
			f.center = f.center.Add(v.eye)
			if normals != nil {
				f.normal = f.normal.Add(nmat.Mul3x1(normals[ix]))
			}
		}
		if !visible {
			skipped++
			continue
		}
		f.center = f.center.Mul(1 / float64(len(g)))
		f.depth = f.center.Z()
		faces = append(faces, f)
	}
	if skipped > 0 {
		sketch.Logger().Debug("raster: faces behind the eye skipped", "primitive", p, "count", skipped)
	}

	slices.SortStableFunc(faces, func(a, b face) int {
		switch {
		case a.depth < b.depth:
			return -1
		case a.depth > b.depth:
			return 1
		}
		return 0
	})
	return faces
}

// toViewer returns the unit direction from an eye-space point to the eye.
func (d *Device) toViewer(p mgl64.Vec3) mgl64.Vec3 {
	if !d.perspective {
		return mgl64.Vec3{0, 0, 1}
	}
	if p.Len() == 0 {
		return mgl64.Vec3{0, 0, 1}
	}
	return p.Mul(-1).Normalize()
}

// paint fills or outlines faces in order. With normals, outlines of faces
// turned away from the viewer or with no defined normal are skipped. Lit
// fills are shaded by a headlight.
func (d *Device) paint(faces []face, xf []vertex, haveNormals bool) {
	lit := d.caps.has(sketch.CapLighting)
	pts := make([]mgl64.Vec2, 0, 8)

	for _, f := range faces {
		pts = pts[:0]
		for _, ix := range f.idx {
			pts = append(pts, xf[ix].screen)
		}

		if d.mode == sketch.PolygonLine {
			if haveNormals {
				n := f.normal
				if n.Len() < 1e-12 || n.Dot(d.toViewer(f.center)) <= 0 {
					continue
				}
			}
			for i := range pts {
				d.segment(pts[i], pts[(i+1)%len(pts)])
			}
			continue
		}

		c := d.color
		if lit {
			c = d.shade(c, f)
		}
		d.fillPolygon(pts, c)
	}
}

// shade applies Lambert lighting from a light at the eye.
func (d *Device) shade(c sketch.Color, f face) sketch.Color {
	k := d.ambient
	if n := f.normal; n.Len() > 1e-12 {
		k += (1 - d.ambient) * math.Max(0, n.Normalize().Dot(d.toViewer(f.center)))
	}
	scale := func(v uint8) uint8 {
		return uint8(math.Round(float64(v) * k))
	}
	return sketch.Color{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
}

// loop strokes a closed polyline through indices.
func (d *Device) loop(xf []vertex, indices []uint32) {
	n := len(indices)
	if n == 1 {
		if v := xf[indices[0]]; v.ok {
			d.point(v.screen)
		}
		return
	}
	for i := range n {
		d.edge(xf[indices[i]], xf[indices[(i+1)%n]])
	}
}

// edge strokes a segment between two transformed vertices.
func (d *Device) edge(a, b vertex) {
	if a.ok && b.ok {
		d.segment(a.screen, b.screen)
	}
}

// segment strokes a line of the device line width as a thin quad.
func (d *Device) segment(a, b mgl64.Vec2) {
	dir := b.Sub(a)
	l := dir.Len()
	if l < 1e-9 {
		d.point(a)
		return
	}
	hw := d.lineWidth / 2
	n := mgl64.Vec2{-dir.Y(), dir.X()}.Mul(hw / l)
	d.fillPolygon([]mgl64.Vec2{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)}, d.color)
}

// point paints a square of the device point size centered on p.
func (d *Device) point(p mgl64.Vec2) {
	h := d.pointSize / 2
	d.fillPolygon([]mgl64.Vec2{
		{p.X() - h, p.Y() - h},
		{p.X() + h, p.Y() - h},
		{p.X() + h, p.Y() + h},
		{p.X() - h, p.Y() + h},
	}, d.color)
}

// fillPolygon paints the anti-aliased interior of pts with c, composited
// over the existing pixels. Only the polygon's bounding box is rasterized.
func (d *Device) fillPolygon(pts []mgl64.Vec2, c sketch.Color) {
	if len(pts) < 3 || !c.Visible() {
		return
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX, maxX = math.Min(minX, p.X()), math.Max(maxX, p.X())
		minY, maxY = math.Min(minY, p.Y()), math.Max(maxY, p.Y())
	}
	// Non-finite coordinates have no pixel position to clip against.
	for _, v := range [4]float64{minX, minY, maxX, maxY} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return
		}
	}
	r := image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	).Intersect(d.img.Bounds())
	if r.Empty() {
		return
	}

	// x/image/vector overflows its fixed-point path on coordinates far
	// outside the rectangle it is reset to.
	pts = clipPolygon(pts,
		float64(r.Min.X-1), float64(r.Min.Y-1),
		float64(r.Max.X+1), float64(r.Max.Y+1))
	if len(pts) < 3 {
		return
	}

	ox, oy := float64(r.Min.X), float64(r.Min.Y)
	d.ras.Reset(r.Dx(), r.Dy())
	d.ras.MoveTo(float32(pts[0].X()-ox), float32(pts[0].Y()-oy))
	for _, p := range pts[1:] {
		d.ras.LineTo(float32(p.X()-ox), float32(p.Y()-oy))
	}
	d.ras.ClosePath()

	src := image.NewUniform(color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A})
	d.ras.Draw(d.img, r, src, image.Point{})
}

// clipPlane is one edge of a clip rectangle: points with p[axis] on the
// kept side of bound are inside.
type clipPlane struct {
	axis  int
	bound float64
	above bool
}

func (c clipPlane) inside(p mgl64.Vec2) bool {
	if c.above {
		return p[c.axis] >= c.bound
	}
	return p[c.axis] <= c.bound
}

func (c clipPlane) intersect(a, b mgl64.Vec2) mgl64.Vec2 {
	t := (c.bound - a[c.axis]) / (b[c.axis] - a[c.axis])
	p := a.Add(b.Sub(a).Mul(t))
	p[c.axis] = c.bound
	return p
}

// clipPolygon clips pts to the rectangle [minX, maxX]x[minY, maxY] with
// Sutherland-Hodgman. Convex input gives convex output; the result is
// empty when the polygon misses the rectangle.
func clipPolygon(pts []mgl64.Vec2, minX, minY, maxX, maxY float64) []mgl64.Vec2 {
	planes := [4]clipPlane{
		{axis: 0, bound: minX, above: true},
		{axis: 0, bound: maxX},
		{axis: 1, bound: minY, above: true},
		{axis: 1, bound: maxY},
	}

	out := pts
	for _, c := range planes {
		if len(out) == 0 {
			break
		}
		in := out
		out = make([]mgl64.Vec2, 0, len(in)+1)
		prev := in[len(in)-1]
		for _, cur := range in {
			curIn, prevIn := c.inside(cur), c.inside(prev)
			if curIn != prevIn {
				out = append(out, c.intersect(prev, cur))
			}
			if curIn {
				out = append(out, cur)
			}
			prev = cur
		}
	}
	return out
}
