package sketch

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// fakeDevice logs every call as a short string.
type fakeDevice struct {
	calls       []string
	vertices    [][]mgl64.Vec3
	indices     [][]uint32
	matrixDepth int
	attribDepth int
	drawErr     error
}

func (d *fakeDevice) log(format string, args ...any) {
	d.calls = append(d.calls, fmt.Sprintf(format, args...))
}

func (d *fakeDevice) Clear(c Color)                { d.log("Clear %v", c) }
func (d *fakeDevice) SetColor(c Color)             { d.log("SetColor %v", c) }
func (d *fakeDevice) SetPolygonMode(m PolygonMode) { d.log("PolygonMode %v", m) }
func (d *fakeDevice) Enable(c Capability)          { d.log("Enable %v", c) }
func (d *fakeDevice) Disable(c Capability)         { d.log("Disable %v", c) }

func (d *fakeDevice) PushAttrib() {
	d.attribDepth++
	d.log("PushAttrib")
}

func (d *fakeDevice) PopAttrib() error {
	d.log("PopAttrib")
	if d.attribDepth == 0 {
		return ErrStackUnderflow
	}
	d.attribDepth--
	return nil
}

func (d *fakeDevice) PushMatrix() {
	d.matrixDepth++
	d.log("PushMatrix")
}

func (d *fakeDevice) PopMatrix() error {
	d.log("PopMatrix")
	if d.matrixDepth == 0 {
		return ErrStackUnderflow
	}
	d.matrixDepth--
	return nil
}

func (d *fakeDevice) Translate(x, y, z float64) { d.log("Translate %g %g %g", x, y, z) }
func (d *fakeDevice) Scale(x, y, z float64)     { d.log("Scale %g %g %g", x, y, z) }

func (d *fakeDevice) Rotate(angle float64, axis mgl64.Vec3) {
	d.log("Rotate %g %g %g %g", angle, axis[0], axis[1], axis[2])
}

func (d *fakeDevice) DrawArrays(p Primitive, vertices []mgl64.Vec3) error {
	d.log("DrawArrays %v %d", p, len(vertices))
	d.vertices = append(d.vertices, vertices)
	return d.drawErr
}

func (d *fakeDevice) DrawElements(p Primitive, vertices, normals []mgl64.Vec3, indices []uint32) error {
	d.log("DrawElements %v %d %d normals=%t", p, len(vertices), len(indices), normals != nil)
	d.vertices = append(d.vertices, vertices)
	d.indices = append(d.indices, indices)
	return d.drawErr
}

func (d *fakeDevice) reset() {
	d.calls = nil
	d.vertices = nil
	d.indices = nil
}

func checkCalls(t *testing.T, d *fakeDevice, want ...string) {
	t.Helper()
	if !slices.Equal(d.calls, want) {
		t.Errorf("calls:\n  %s\nwant:\n  %s", strings.Join(d.calls, "\n  "), strings.Join(want, "\n  "))
	}
}

const (
	white = "#ffffffff"
	black = "#000000ff"
)

func TestNewDefaults(t *testing.T) {
	s := New(&fakeDevice{})

	if s.FillColor() != White {
		t.Errorf("fill = %v, want white", s.FillColor())
	}
	if s.StrokeColor() != Black {
		t.Errorf("stroke = %v, want black", s.StrokeColor())
	}
	if s.EllipseMode() != Center {
		t.Errorf("ellipse mode = %v, want center", s.EllipseMode())
	}
	if n := s.EllipseSegments(); n != DefaultEllipseDetail {
		t.Errorf("ellipse segments = %d, want %d", n, DefaultEllipseDetail)
	}
	if u, v := s.SphereResolution(); u != 30 || v != 30 {
		t.Errorf("sphere resolution = %dx%d, want 30x30", u, v)
	}
}

func TestNewOptions(t *testing.T) {
	red := RGB(255, 0, 0)
	s := New(&fakeDevice{},
		WithFill(red),
		WithStroke(Transparent),
		WithEllipseMode(Corners),
		WithEllipseDetail(12),
		WithSphereDetail(8, 6),
	)

	if s.FillColor() != red || s.StrokeColor() != Transparent {
		t.Errorf("colors = %v, %v", s.FillColor(), s.StrokeColor())
	}
	if s.EllipseMode() != Corners {
		t.Errorf("ellipse mode = %v, want corners", s.EllipseMode())
	}
	if s.EllipseSegments() != 12 {
		t.Errorf("ellipse segments = %d, want 12", s.EllipseSegments())
	}
	if u, v := s.SphereResolution(); u != 8 || v != 6 {
		t.Errorf("sphere resolution = %dx%d, want 8x6", u, v)
	}
}

func TestNewIgnoresInvalidOptions(t *testing.T) {
	s := New(&fakeDevice{},
		WithEllipseMode(EllipseMode(9)),
		WithEllipseDetail(2),
		WithSphereDetail(1, 10),
	)
	if s.EllipseMode() != Center || s.EllipseSegments() != DefaultEllipseDetail {
		t.Errorf("ellipse = %v/%d, want defaults", s.EllipseMode(), s.EllipseSegments())
	}
	if u, v := s.SphereResolution(); u != 30 || v != 30 {
		t.Errorf("sphere resolution = %dx%d, want 30x30", u, v)
	}
}

func TestBackgroundAndTransforms(t *testing.T) {
	d := &fakeDevice{}
	s := New(d)

	s.Background(Gray(200))
	s.PushMatrix()
	s.Translate(1, 2, 3)
	s.Scale(2, 2, 1)
	s.RotateX(0.5)
	s.RotateY(0.25)
	s.RotateZ(1)
	if err := s.PopMatrix(); err != nil {
		t.Fatal(err)
	}
	s.Lights()
	s.NoLights()

	checkCalls(t, d,
		"Clear #c8c8c8ff",
		"PushMatrix",
		"Translate 1 2 3",
		"Scale 2 2 1",
		"Rotate 0.5 1 0 0",
		"Rotate 0.25 0 1 0",
		"Rotate 1 0 0 1",
		"PopMatrix",
		"Enable Lighting",
		"Disable Lighting",
	)

	if err := s.PopMatrix(); !errors.Is(err, ErrStackUnderflow) {
		t.Errorf("unbalanced PopMatrix = %v, want ErrStackUnderflow", err)
	}
}

func TestLineAndPoint(t *testing.T) {
	d := &fakeDevice{}
	s := New(d)

	if err := s.Line(1, 2, 3, 4); err != nil {
		t.Fatal(err)
	}
	if err := s.Point3D(5, 6, 7); err != nil {
		t.Fatal(err)
	}
	checkCalls(t, d,
		"SetColor "+black, "DrawArrays Lines 2",
		"SetColor "+black, "DrawArrays Points 1",
	)
	if want := []mgl64.Vec3{{1, 2, 0}, {3, 4, 0}}; !slices.Equal(d.vertices[0], want) {
		t.Errorf("line vertices = %v, want %v", d.vertices[0], want)
	}
	if want := []mgl64.Vec3{{5, 6, 7}}; !slices.Equal(d.vertices[1], want) {
		t.Errorf("point vertices = %v, want %v", d.vertices[1], want)
	}

	// The fill color never applies to lines and points.
	d.reset()
	s.NoStroke()
	s.Fill(RGB(1, 2, 3))
	_ = s.Line3D(0, 0, 0, 1, 1, 1)
	_ = s.Point(1, 1)
	checkCalls(t, d)
}

func TestTriangleAndQuadPasses(t *testing.T) {
	tests := []struct {
		name   string
		fill   Color
		stroke Color
		want   []string
	}{
		{
			name: "fill and stroke", fill: White, stroke: Black,
			want: []string{
				"SetColor " + white, "PolygonMode Fill", "DrawArrays Triangles 3",
				"SetColor " + black, "PolygonMode Line", "DrawArrays Triangles 3",
			},
		},
		{
			name: "no fill", fill: Transparent, stroke: Black,
			want: []string{"SetColor " + black, "PolygonMode Line", "DrawArrays Triangles 3"},
		},
		{
			name: "no stroke", fill: White, stroke: Transparent,
			want: []string{"SetColor " + white, "PolygonMode Fill", "DrawArrays Triangles 3"},
		},
		{name: "neither", fill: Transparent, stroke: Transparent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &fakeDevice{}
			s := New(d, WithFill(tt.fill), WithStroke(tt.stroke))
			if err := s.Triangle(0, 0, 10, 0, 0, 10); err != nil {
				t.Fatal(err)
			}
			checkCalls(t, d, tt.want...)
		})
	}
}

func TestQuadVertices(t *testing.T) {
	d := &fakeDevice{}
	s := New(d, WithStroke(Transparent))
	if err := s.Quad(0, 0, 4, 0, 4, 3, 0, 3); err != nil {
		t.Fatal(err)
	}
	checkCalls(t, d, "SetColor "+white, "PolygonMode Fill", "DrawArrays Quads 4")
	want := []mgl64.Vec3{{0, 0, 0}, {4, 0, 0}, {4, 3, 0}, {0, 3, 0}}
	if !slices.Equal(d.vertices[0], want) {
		t.Errorf("vertices = %v, want %v", d.vertices[0], want)
	}
}

func TestTriangle3DVertices(t *testing.T) {
	d := &fakeDevice{}
	s := New(d, WithStroke(Transparent))
	if err := s.Triangle3D(1, 2, 3, 4, 5, 6, 7, 8, 9); err != nil {
		t.Fatal(err)
	}
	want := []mgl64.Vec3{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	if !slices.Equal(d.vertices[0], want) {
		t.Errorf("vertices = %v, want %v", d.vertices[0], want)
	}
}

func TestDrawErrorsJoined(t *testing.T) {
	boom := errors.New("boom")
	d := &fakeDevice{drawErr: boom}
	s := New(d)

	if err := s.Quad(0, 0, 1, 0, 1, 1, 0, 1); !errors.Is(err, boom) {
		t.Errorf("Quad error = %v, want boom", err)
	}
	// Both passes still ran.
	if n := len(d.vertices); n != 2 {
		t.Errorf("draw calls = %d, want 2", n)
	}
}

// Every mode below describes the same 20x10 ellipse centered at (50, 50).
func TestEllipseModes(t *testing.T) {
	tests := []struct {
		mode       EllipseMode
		x, y, w, h float64
	}{
		{Center, 50, 50, 20, 10},
		{Radius, 50, 50, 10, 5},
		{Corner, 40, 45, 20, 10},
		{Corners, 40, 45, 60, 55},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			d := &fakeDevice{}
			s := New(d)
			if err := s.SetEllipseMode(tt.mode); err != nil {
				t.Fatal(err)
			}
			if err := s.Ellipse(tt.x, tt.y, tt.w, tt.h); err != nil {
				t.Fatal(err)
			}
			checkCalls(t, d,
				"PushMatrix",
				"Translate 40 45 0",
				"Scale 20 10 1",
				"Translate 0.5 0.5 0",
				"SetColor "+white,
				"PolygonMode Fill",
				"DrawArrays Polygon 50",
				"SetColor "+black,
				"DrawArrays LineLoop 50",
				"PopMatrix",
			)
			if d.matrixDepth != 0 {
				t.Errorf("matrix depth = %d after Ellipse", d.matrixDepth)
			}
		})
	}
}

func TestEllipseInvisible(t *testing.T) {
	d := &fakeDevice{}
	s := New(d)
	s.NoFill()
	s.NoStroke()
	if err := s.Ellipse(0, 0, 10, 10); err != nil {
		t.Fatal(err)
	}
	checkCalls(t, d)
}

func TestEllipseStrokeOnly(t *testing.T) {
	d := &fakeDevice{}
	s := New(d)
	s.NoFill()
	if err := s.EllipseDetail(6); err != nil {
		t.Fatal(err)
	}
	if err := s.Ellipse(0, 0, 10, 10); err != nil {
		t.Fatal(err)
	}
	checkCalls(t, d,
		"PushMatrix",
		"Translate -5 -5 0",
		"Scale 10 10 1",
		"Translate 0.5 0.5 0",
		"SetColor "+black,
		"DrawArrays LineLoop 6",
		"PopMatrix",
	)
}

func TestSetEllipseModeInvalid(t *testing.T) {
	s := New(&fakeDevice{})
	if err := s.SetEllipseMode(Corner); err != nil {
		t.Fatal(err)
	}
	if err := s.SetEllipseMode(EllipseMode(4)); !errors.Is(err, ErrInvalidEllipseMode) {
		t.Errorf("err = %v, want ErrInvalidEllipseMode", err)
	}
	if s.EllipseMode() != Corner {
		t.Errorf("mode = %v, want corner to be kept", s.EllipseMode())
	}
}

func TestEllipseDetail(t *testing.T) {
	d := &fakeDevice{}
	s := New(d, WithStroke(Transparent))

	if err := s.EllipseDetail(8); err != nil {
		t.Fatal(err)
	}
	if err := s.EllipseDetail(2); !errors.Is(err, ErrInvalidDetail) {
		t.Errorf("EllipseDetail(2) = %v, want ErrInvalidDetail", err)
	}
	if s.EllipseSegments() != 8 {
		t.Errorf("segments = %d, want 8 to be kept", s.EllipseSegments())
	}

	if err := s.Ellipse(0, 0, 1, 1); err != nil {
		t.Fatal(err)
	}
	if got := len(d.vertices[0]); got != 8 {
		t.Errorf("ellipse drawn with %d vertices, want 8", got)
	}
}

func TestMeshesShared(t *testing.T) {
	a := New(&fakeDevice{}, WithEllipseDetail(17), WithSphereDetail(7, 9))
	b := New(&fakeDevice{})
	if err := b.EllipseDetail(17); err != nil {
		t.Fatal(err)
	}
	if err := b.SphereDetail(7, 9); err != nil {
		t.Fatal(err)
	}
	if a.circle != b.circle {
		t.Error("sketches with equal ellipse detail should share a mesh")
	}
	if a.sphere != b.sphere {
		t.Error("sketches with equal sphere detail should share a mesh")
	}
}

func TestSphere(t *testing.T) {
	d := &fakeDevice{}
	s := New(d)
	if err := s.SphereDetail(4, 5); err != nil {
		t.Fatal(err)
	}
	if err := s.Sphere(2); err != nil {
		t.Fatal(err)
	}

	checkCalls(t, d,
		"PushMatrix",
		"Scale 2 2 2",
		"SetColor "+white,
		"PolygonMode Fill",
		"Enable PolygonOffsetFill",
		"DrawElements QuadStrip 20 32 normals=true",
		"Disable PolygonOffsetFill",
		"PushAttrib",
		"Disable Lighting",
		"SetColor "+black,
		"PolygonMode Line",
		"DrawElements QuadStrip 20 32 normals=true",
		"PopAttrib",
		"PopMatrix",
	)
	if d.matrixDepth != 0 || d.attribDepth != 0 {
		t.Errorf("stacks unbalanced: matrix %d, attrib %d", d.matrixDepth, d.attribDepth)
	}
}

func TestSphereSinglePass(t *testing.T) {
	d := &fakeDevice{}
	s := New(d, WithSphereDetail(3, 3))

	s.NoStroke()
	if err := s.Sphere(1); err != nil {
		t.Fatal(err)
	}
	if slices.Contains(d.calls, "PushAttrib") {
		t.Error("no stroke pass expected")
	}

	d.reset()
	s.Stroke(Black)
	s.NoFill()
	if err := s.Sphere(1); err != nil {
		t.Fatal(err)
	}
	if slices.Contains(d.calls, "Enable PolygonOffsetFill") {
		t.Error("no fill pass expected")
	}

	d.reset()
	s.NoStroke()
	if err := s.Sphere(1); err != nil {
		t.Fatal(err)
	}
	checkCalls(t, d)
}

func TestSphereErrorStillRestores(t *testing.T) {
	boom := errors.New("boom")
	d := &fakeDevice{drawErr: boom}
	s := New(d, WithSphereDetail(3, 3))

	err := s.Sphere(1)
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	if !strings.HasPrefix(err.Error(), "sketch: sphere:") {
		t.Errorf("err = %q, want sphere context", err)
	}
	if d.matrixDepth != 0 || d.attribDepth != 0 {
		t.Errorf("stacks unbalanced: matrix %d, attrib %d", d.matrixDepth, d.attribDepth)
	}
}

func TestSphereDetailInvalid(t *testing.T) {
	s := New(&fakeDevice{})
	if err := s.SphereDetailUniform(12); err != nil {
		t.Fatal(err)
	}
	for _, res := range [][2]int{{1, 12}, {12, 1}, {0, 0}, {-3, 5}} {
		if err := s.SphereDetail(res[0], res[1]); !errors.Is(err, ErrInvalidDetail) {
			t.Errorf("SphereDetail(%d, %d) = %v, want ErrInvalidDetail", res[0], res[1], err)
		}
	}
	if u, v := s.SphereResolution(); u != 12 || v != 12 {
		t.Errorf("resolution = %dx%d, want 12x12 to be kept", u, v)
	}
}

func TestDevice(t *testing.T) {
	d := &fakeDevice{}
	if New(d).Device() != d {
		t.Error("Device() should return the device passed to New")
	}
}
