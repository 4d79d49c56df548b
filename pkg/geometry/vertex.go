// Package geometry synthesizes triangulated vertex and index buffers for 2D
// and 3D primitives.
//
// Every generator appends to caller-owned buffers and never clears or
// reorders what is already there. Unindexed generators emit flat triangle
// lists (consecutive triples); indexed generators append vertices and then
// indices relative to the vertex count before the call. Angles are in
// degrees. Inputs are not validated: zero radii, zero-length axes or
// non-positive slice counts produce degenerate output.
package geometry

import (
	"slices"

	"github.com/xuanchaix/CustomGameEngineWithGames-sub006/pkg/math"
)

// VertexPCU is a position-color-UV vertex.
type VertexPCU struct {
	Position math.Vec3
	Color    Rgba8
	UV       math.Vec2
}

// VertexPCUTBN extends VertexPCU with a tangent-space basis for lit rendering.
type VertexPCUTBN struct {
	Position  math.Vec3
	Color     Rgba8
	UV        math.Vec2
	Tangent   math.Vec3
	Bitangent math.Vec3
	Normal    math.Vec3
}

// Vertex is the set of vertex formats the generators can emit.
type Vertex interface {
	VertexPCU | VertexPCUTBN
}

// Mesh bundles a vertex buffer with an optional index buffer.
type Mesh[V Vertex] struct {
	Vertices []V
	Indices  []uint32
}

// Indexed reports whether the mesh carries an index buffer.
func (m *Mesh[V]) Indexed() bool {
	return len(m.Indices) > 0
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh[V]) TriangleCount() int {
	if m.Indexed() {
		return len(m.Indices) / 3
	}
	return len(m.Vertices) / 3
}

// Flatten returns the mesh as a flat triangle list, expanding the index
// buffer if there is one. The result never aliases m.Vertices.
func (m *Mesh[V]) Flatten() []V {
	if !m.Indexed() {
		return slices.Clone(m.Vertices)
	}
	out := make([]V, len(m.Indices))
	for i, idx := range m.Indices {
		out[i] = m.Vertices[idx]
	}
	return out
}

// corner is a format-independent vertex used while emitting shapes.
type corner struct {
	pos     math.Vec3
	uv      math.Vec2
	normal  math.Vec3
	tangent math.Vec3
}

// makeVertex converts a corner into the requested vertex format.
// The bitangent completes the frame as normal x tangent.
func makeVertex[V Vertex](c corner, color Rgba8) V {
	var v V
	switch out := any(&v).(type) {
	case *VertexPCU:
		*out = VertexPCU{Position: c.pos, Color: color, UV: c.uv}
	case *VertexPCUTBN:
		*out = VertexPCUTBN{
			Position:  c.pos,
			Color:     color,
			UV:        c.uv,
			Tangent:   c.tangent,
			Bitangent: c.normal.Cross(c.tangent),
			Normal:    c.normal,
		}
	}
	return v
}

// position returns a pointer to the position field of v.
func position[V Vertex](v *V) *math.Vec3 {
	switch p := any(v).(type) {
	case *VertexPCU:
		return &p.Position
	case *VertexPCUTBN:
		return &p.Position
	}
	return nil
}

// PositionOf returns the position of any vertex format.
func PositionOf[V Vertex](v V) math.Vec3 {
	return *position(&v)
}
