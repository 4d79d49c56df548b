package geometry

import (
	"github.com/xuanchaix/CustomGameEngineWithGames-sub006/pkg/math"
)

// TransformVertexArrayXY3D scales, rotates about Z and then translates the XY
// position of every vertex. Z, color and UV are left untouched.
func TransformVertexArrayXY3D[V Vertex](verts []V, uniformScale, rotationDegrees float32, translation math.Vec2) {
	i := math.Vec2FromPolarDegrees(rotationDegrees, uniformScale)
	TransformVertexArrayXYBasis3D(verts, i, i.Rotated90(), translation)
}

// TransformVertexArrayXYBasis3D maps every XY position into the frame with
// the given i and j axes and origin translation.
func TransformVertexArrayXYBasis3D[V Vertex](verts []V, iBasis, jBasis, translation math.Vec2) {
	for n := range verts {
		p := position(&verts[n])
		xy := translation.Add(iBasis.Scale(p.X)).Add(jBasis.Scale(p.Y))
		p.X, p.Y = xy.X, xy.Y
	}
}

// TransformVertexArray3D applies the affine matrix m to every position. For
// lit vertices the tangent and bitangent are transformed by m and the normal
// by the inverse transpose of m, all renormalized.
func TransformVertexArray3D[V Vertex](verts []V, m math.Mat4) {
	nm := m.NormalMatrix()
	for n := range verts {
		switch v := any(&verts[n]).(type) {
		case *VertexPCU:
			v.Position = m.TransformVec3(v.Position)
		case *VertexPCUTBN:
			v.Position = m.TransformVec3(v.Position)
			v.Normal = nm.TransformDirection(v.Normal).Normalize()
			v.Tangent = m.TransformDirection(v.Tangent).Normalize()
			v.Bitangent = m.TransformDirection(v.Bitangent).Normalize()
		}
	}
}

// GetVertexBounds2D returns the XY bounding rect of verts, or the zero rect
// when verts is empty.
func GetVertexBounds2D[V Vertex](verts []V) math.AABB2 {
	if len(verts) == 0 {
		return math.AABB2{}
	}
	first := PositionOf(verts[0]).XY()
	bounds := math.AABB2{Mins: first, Maxs: first}
	for _, v := range verts[1:] {
		p := PositionOf(v)
		bounds.Mins.X = min(bounds.Mins.X, p.X)
		bounds.Mins.Y = min(bounds.Mins.Y, p.Y)
		bounds.Maxs.X = max(bounds.Maxs.X, p.X)
		bounds.Maxs.Y = max(bounds.Maxs.Y, p.Y)
	}
	return bounds
}

// GetVertexBounds3D returns the bounding box of verts, or the zero box when
// verts is empty.
func GetVertexBounds3D[V Vertex](verts []V) math.AABB3 {
	if len(verts) == 0 {
		return math.AABB3{}
	}
	first := PositionOf(verts[0])
	bounds := math.AABB3{Mins: first, Maxs: first}
	for _, v := range verts[1:] {
		p := PositionOf(v)
		bounds.Mins = math.Vec3{X: min(bounds.Mins.X, p.X), Y: min(bounds.Mins.Y, p.Y), Z: min(bounds.Mins.Z, p.Z)}
		bounds.Maxs = math.Vec3{X: max(bounds.Maxs.X, p.X), Y: max(bounds.Maxs.Y, p.Y), Z: max(bounds.Maxs.Z, p.Z)}
	}
	return bounds
}
