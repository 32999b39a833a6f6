package sketch

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gogpu/sketch/internal/meshcache"
)

// CircleMesh is a regular polygon approximating a circle of diameter 1
// centered at the origin in the z = 0 plane.
// A CircleMesh is shared between sketches and must not be modified.
type CircleMesh struct {
	Vertices []mgl64.Vec3
}

// NewCircleMesh builds a circle with n segments. Vertex i lies at angle
// 2πi/n. n must be at least 3.
func NewCircleMesh(n int) (*CircleMesh, error) {
	if n < 3 {
		return nil, fmt.Errorf("%w: ellipse needs at least 3 segments, got %d", ErrInvalidDetail, n)
	}
	vtx := make([]mgl64.Vec3, n)
	for i := range n {
		ang := 2 * math.Pi * float64(i) / float64(n)
		vtx[i] = mgl64.Vec3{math.Cos(ang) / 2, math.Sin(ang) / 2, 0}
	}
	return &CircleMesh{Vertices: vtx}, nil
}

// Segments returns the number of polygon sides.
func (m *CircleMesh) Segments() int {
	return len(m.Vertices)
}

// SphereMesh is a unit-radius sphere tessellated into quad strips.
// Vertices double as normals. A SphereMesh is shared between sketches and
// must not be modified.
type SphereMesh struct {
	URes, VRes int
	Vertices   []mgl64.Vec3
	Indices    []uint32
}

// NewSphereMesh builds a sphere with ures points from pole to pole along
// each meridian and vres meridians around the full revolution. The first and
// last meridians coincide so every strip closes. Both values must be at
// least 2.
func NewSphereMesh(ures, vres int) (*SphereMesh, error) {
	if ures < 2 || vres < 2 {
		return nil, fmt.Errorf("%w: sphere resolution %dx%d, both must be at least 2", ErrInvalidDetail, ures, vres)
	}

	vtx := make([]mgl64.Vec3, 0, ures*vres)
	for itheta := range vres {
		theta := 2 * math.Pi / float64(vres-1) * float64(itheta)
		sinTheta, cosTheta := math.Sincos(theta)
		for iphi := range ures {
			phi := math.Pi / float64(ures-1) * float64(iphi)
			sinPhi, cosPhi := math.Sincos(phi)
			vtx = append(vtx, mgl64.Vec3{sinPhi * cosTheta, cosPhi, sinPhi * sinTheta})
		}
	}

	idx := make([]uint32, 0, ures*(vres-1)*2)
	for icol := range vres - 1 {
		for irow := range ures {
			idx = append(idx,
				uint32(icol*ures+irow),
				uint32((icol+1)*ures+irow))
		}
	}

	return &SphereMesh{URes: ures, VRes: vres, Vertices: vtx, Indices: idx}, nil
}

// IndexCount returns the number of indices drawn per sphere.
func (m *SphereMesh) IndexCount() int {
	return m.URes * (m.VRes - 1) * 2
}

type sphereKey struct{ u, v int }

// Meshes are shared process-wide; a handful of detail levels is typical.
var (
	circleMeshes = meshcache.New[int, *CircleMesh](32)
	sphereMeshes = meshcache.New[sphereKey, *SphereMesh](32)
)

// circleMesh returns the shared circle mesh for n segments.
func circleMesh(n int) (*CircleMesh, error) {
	if n < 3 {
		return NewCircleMesh(n)
	}
	return circleMeshes.GetOrCreate(n, func() *CircleMesh {
		Logger().Debug("sketch: building ellipse mesh", "segments", n)
		m, _ := NewCircleMesh(n)
		return m
	}), nil
}

// sphereMesh returns the shared sphere mesh for the given resolution.
func sphereMesh(ures, vres int) (*SphereMesh, error) {
	if ures < 2 || vres < 2 {
		return NewSphereMesh(ures, vres)
	}
	return sphereMeshes.GetOrCreate(sphereKey{ures, vres}, func() *SphereMesh {
		Logger().Debug("sketch: building sphere mesh", "ures", ures, "vres", vres)
		m, _ := NewSphereMesh(ures, vres)
		return m
	}), nil
}
