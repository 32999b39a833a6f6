package recording

import (
	"slices"
	"unsafe"

	"github.com/go-gl/mathgl/mgl64"
)

// ResourcePool stores the arrays referenced by recording commands.
// Every array is copied on Add so the recording stays immutable.
//
// ResourcePool is not safe for concurrent use while recording.
type ResourcePool struct {
	vertices [][]mgl64.Vec3
	indices  [][]uint32

	// Last pooled copy per source slice, used to store an array that is
	// passed repeatedly only once.
	lastVertex map[vertexKey]VertexRef
	lastIndex  map[indexKey]IndexRef
}

type vertexKey struct {
	data *mgl64.Vec3
	n    int
}

type indexKey struct {
	data *uint32
	n    int
}

// NewResourcePool creates an empty resource pool.
func NewResourcePool() *ResourcePool {
	return &ResourcePool{
		vertices:   make([][]mgl64.Vec3, 0, 64),
		indices:    make([][]uint32, 0, 8),
		lastVertex: make(map[vertexKey]VertexRef),
		lastIndex:  make(map[indexKey]IndexRef),
	}
}

// AddVertices copies v into the pool and returns its reference. A nil
// slice yields InvalidRef. If v is the same slice as a previous call and
// still holds the same values, the earlier copy is reused.
func (p *ResourcePool) AddVertices(v []mgl64.Vec3) VertexRef {
	if v == nil {
		return VertexRef(InvalidRef)
	}
	key := vertexKey{data: unsafe.SliceData(v), n: len(v)}
	if ref, ok := p.lastVertex[key]; ok && slices.Equal(p.vertices[ref], v) {
		return ref
	}
	p.vertices = append(p.vertices, slices.Clone(v))
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	ref := VertexRef(uint32(len(p.vertices) - 1))
	p.lastVertex[key] = ref
	return ref
}

// Vertices returns the array for ref, or nil if ref is invalid.
func (p *ResourcePool) Vertices(ref VertexRef) []mgl64.Vec3 {
	if !ref.IsValid() || int(ref) >= len(p.vertices) {
		return nil
	}
	return p.vertices[ref]
}

// VertexArrayCount returns the number of pooled vertex arrays.
func (p *ResourcePool) VertexArrayCount() int {
	return len(p.vertices)
}

// AddIndices copies idx into the pool and returns its reference, reusing an
// earlier copy the same way AddVertices does.
func (p *ResourcePool) AddIndices(idx []uint32) IndexRef {
	if idx == nil {
		return IndexRef(InvalidRef)
	}
	key := indexKey{data: unsafe.SliceData(idx), n: len(idx)}
	if ref, ok := p.lastIndex[key]; ok && slices.Equal(p.indices[ref], idx) {
		return ref
	}
	p.indices = append(p.indices, slices.Clone(idx))
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	ref := IndexRef(uint32(len(p.indices) - 1))
	p.lastIndex[key] = ref
	return ref
}

// Indices returns the array for ref, or nil if ref is invalid.
func (p *ResourcePool) Indices(ref IndexRef) []uint32 {
	if !ref.IsValid() || int(ref) >= len(p.indices) {
		return nil
	}
	return p.indices[ref]
}

// IndexArrayCount returns the number of pooled index arrays.
func (p *ResourcePool) IndexArrayCount() int {
	return len(p.indices)
}
