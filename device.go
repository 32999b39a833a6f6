package sketch

import "github.com/go-gl/mathgl/mgl64"

// Primitive selects how a vertex array is assembled into shapes.
type Primitive uint8

const (
	Points    Primitive = iota // one point per vertex
	Lines                      // independent segments, two vertices each
	LineLoop                   // closed polyline
	Triangles                  // independent triangles
	Quads                      // independent quadrilaterals
	QuadStrip                  // connected quadrilaterals, two new vertices each
	Polygon                    // one convex polygon
)

var primitiveNames = [...]string{
	Points:    "Points",
	Lines:     "Lines",
	LineLoop:  "LineLoop",
	Triangles: "Triangles",
	Quads:     "Quads",
	QuadStrip: "QuadStrip",
	Polygon:   "Polygon",
}

// String returns the primitive name.
func (p Primitive) String() string {
	if int(p) < len(primitiveNames) {
		return primitiveNames[p]
	}
	return "Unknown"
}

// PolygonMode selects whether polygonal primitives are filled or outlined.
type PolygonMode uint8

const (
	PolygonFill PolygonMode = iota
	PolygonLine
)

// String returns the polygon mode name.
func (m PolygonMode) String() string {
	switch m {
	case PolygonFill:
		return "Fill"
	case PolygonLine:
		return "Line"
	default:
		return "Unknown"
	}
}

// Capability is a device feature toggled with Enable and Disable.
type Capability uint8

const (
	// CapPolygonOffsetFill pushes filled polygons slightly back in depth so
	// outlines drawn on top of them are not hidden.
	CapPolygonOffsetFill Capability = iota

	// CapLighting shades filled polygons using the normals passed to
	// DrawElements. Polygons drawn without normals face +z in model space.
	CapLighting
)

// String returns the capability name.
func (c Capability) String() string {
	switch c {
	case CapPolygonOffsetFill:
		return "PolygonOffsetFill"
	case CapLighting:
		return "Lighting"
	default:
		return "Unknown"
	}
}

// Device is the fixed-function drawing surface a Sketch renders through.
//
// The device owns the modelview matrix stack, the current color, the polygon
// mode and the set of enabled capabilities. PushAttrib saves the enabled
// capabilities; PopAttrib restores them.
//
// Vertex slices passed to DrawArrays and DrawElements are only read during
// the call; implementations that keep them must copy.
type Device interface {
	// Clear fills the whole surface with c.
	Clear(c Color)

	// SetColor sets the color used by subsequent draw calls.
	SetColor(c Color)

	// SetPolygonMode selects fill or outline rendering of polygons.
	SetPolygonMode(m PolygonMode)

	Enable(c Capability)
	Disable(c Capability)

	PushAttrib()
	PopAttrib() error

	PushMatrix()
	PopMatrix() error
	Translate(x, y, z float64)
	Scale(x, y, z float64)
	// Rotate rotates by angle radians around axis.
	Rotate(angle float64, axis mgl64.Vec3)

	// DrawArrays draws vertices in order as primitive p.
	DrawArrays(p Primitive, vertices []mgl64.Vec3) error

	// DrawElements draws vertices[indices[i]] as primitive p. normals is
	// either nil or parallel to vertices.
	DrawElements(p Primitive, vertices, normals []mgl64.Vec3, indices []uint32) error
}
