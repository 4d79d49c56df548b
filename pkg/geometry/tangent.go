package geometry

import (
	"github.com/xuanchaix/CustomGameEngineWithGames-sub006/pkg/math"
)

// TangentFlags selects which parts of the tangent-space basis
// CalculateTangentSpaceVectors rewrites.
type TangentFlags uint8

const (
	ComputeNormals TangentFlags = 1 << iota
	ComputeTangents

	ComputeAll = ComputeNormals | ComputeTangents
)

// CalculateTangentSpaceVectors rewrites the normal, tangent and bitangent of
// every vertex referenced by indices, triangle by triangle in index order.
// With neither flag set the buffers are left untouched.
//
// Each corner of a triangle is solved from its own two incident edges. A
// vertex shared by several triangles keeps the result of the last triangle
// that references it; nothing is averaged. Triangles must have non-zero UV
// area. Vertices and indices are never added or removed.
func CalculateTangentSpaceVectors(verts []VertexPCUTBN, indices []uint32, flags TangentFlags) {
	if flags&ComputeAll == 0 {
		return
	}
	for tri := 0; tri+2 < len(indices); tri += 3 {
		ids := [3]uint32{indices[tri], indices[tri+1], indices[tri+2]}
		for k := 0; k < 3; k++ {
			v := &verts[ids[k]]
			a := verts[ids[(k+1)%3]]
			b := verts[ids[(k+2)%3]]

			e1 := a.Position.Sub(v.Position)
			e2 := b.Position.Sub(v.Position)

			if flags&ComputeNormals != 0 {
				v.Normal = e1.Cross(e2).Normalize()
			}
			if flags&ComputeTangents != 0 {
				du1, dv1 := a.UV.X-v.UV.X, a.UV.Y-v.UV.Y
				du2, dv2 := b.UV.X-v.UV.X, b.UV.Y-v.UV.Y
				r := 1 / (du1*dv2 - du2*dv1)
				raw := e1.Scale(dv2).Sub(e2.Scale(dv1)).Scale(r)
				v.Tangent = orthogonalize(raw, v.Normal)
			}
			v.Bitangent = v.Normal.Cross(v.Tangent)
		}
	}
}

// orthogonalize removes the n component from t and renormalizes (Gram-Schmidt).
func orthogonalize(t, n math.Vec3) math.Vec3 {
	return t.Sub(n.Scale(n.Dot(t))).Normalize()
}
