package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xuanchaix/CustomGameEngineWithGames-sub006/pkg/math"
)

func TestTangentSpaceSingleTriangle(t *testing.T) {
	verts := []VertexPCUTBN{
		{Position: math.Vec3{}, UV: math.Vec2{}},
		{Position: math.Vec3{X: 1}, UV: math.Vec2{X: 1}},
		{Position: math.Vec3{Y: 1}, UV: math.Vec2{Y: 1}},
	}
	CalculateTangentSpaceVectors(verts, []uint32{0, 1, 2}, ComputeAll)

	for i, v := range verts {
		assertVec3Near(t, WorldUp, v.Normal, eps, "vertex %d normal", i)
		assertVec3Near(t, math.Vec3{X: 1}, v.Tangent, eps, "vertex %d tangent", i)
		assertVec3Near(t, math.Vec3{Y: 1}, v.Bitangent, eps, "vertex %d bitangent", i)
	}
}

func TestTangentSpaceOrthonormal(t *testing.T) {
	// skewed UVs leave the raw tangent off the surface plane
	verts := []VertexPCUTBN{
		{Position: math.Vec3{}, UV: math.Vec2{}},
		{Position: math.Vec3{X: 2, Z: 0.5}, UV: math.Vec2{X: 1, Y: 0.2}},
		{Position: math.Vec3{Y: 1, Z: 1}, UV: math.Vec2{X: 0.1, Y: 1}},
	}
	CalculateTangentSpaceVectors(verts, []uint32{0, 1, 2}, ComputeAll)

	for i, v := range verts {
		assert.InDelta(t, 1, v.Normal.Length(), eps, "vertex %d", i)
		assert.InDelta(t, 1, v.Tangent.Length(), eps, "vertex %d", i)
		assert.InDelta(t, 0, v.Normal.Dot(v.Tangent), eps, "vertex %d", i)
		assertVec3Near(t, v.Normal.Cross(v.Tangent), v.Bitangent, eps)
	}
}

func TestTangentSpaceLastTriangleWins(t *testing.T) {
	// two triangles folded along the shared edge 0-1
	verts := []VertexPCUTBN{
		{Position: math.Vec3{}, UV: math.Vec2{}},
		{Position: math.Vec3{X: 1}, UV: math.Vec2{X: 1}},
		{Position: math.Vec3{Y: 1}, UV: math.Vec2{Y: 1}},
		{Position: math.Vec3{Z: 1}, UV: math.Vec2{Y: 1}},
	}
	indices := []uint32{0, 1, 2, 0, 3, 1}
	CalculateTangentSpaceVectors(verts, indices, ComputeNormals)

	// vertices 0 and 1 take the normal of the second triangle, not an average
	second := math.Vec3{Z: 1}.Cross(math.Vec3{X: 1}).Normalize()
	assertVec3Near(t, second, verts[0].Normal, eps)
	assertVec3Near(t, second, verts[1].Normal, eps)
	assertVec3Near(t, WorldUp, verts[2].Normal, eps)
	assertVec3Near(t, second, verts[3].Normal, eps)
}

func TestTangentSpaceFlags(t *testing.T) {
	seed := math.Vec3{X: 9, Y: 9, Z: 9}
	fresh := func() []VertexPCUTBN {
		return []VertexPCUTBN{
			{Position: math.Vec3{}, UV: math.Vec2{}, Normal: seed, Tangent: seed},
			{Position: math.Vec3{X: 1}, UV: math.Vec2{X: 1}, Normal: seed, Tangent: seed},
			{Position: math.Vec3{Y: 1}, UV: math.Vec2{Y: 1}, Normal: seed, Tangent: seed},
		}
	}

	t.Run("normals only", func(t *testing.T) {
		verts := fresh()
		CalculateTangentSpaceVectors(verts, []uint32{0, 1, 2}, ComputeNormals)
		assertVec3Near(t, WorldUp, verts[0].Normal, eps)
		assert.Equal(t, seed, verts[0].Tangent)
	})

	t.Run("no flags", func(t *testing.T) {
		verts := fresh()
		want := append([]VertexPCUTBN(nil), verts...)
		CalculateTangentSpaceVectors(verts, []uint32{0, 1, 2}, 0)
		assert.Equal(t, want, verts)
	})

	t.Run("tangents only", func(t *testing.T) {
		verts := fresh()
		verts[0].Normal = WorldUp
		CalculateTangentSpaceVectors(verts, []uint32{0, 1, 2}, ComputeTangents)
		assert.Equal(t, WorldUp, verts[0].Normal)
		assertVec3Near(t, math.Vec3{X: 1}, verts[0].Tangent, eps)
	})
}

func TestTangentSpaceKeepsBufferSizes(t *testing.T) {
	var verts []VertexPCUTBN
	var indices []uint32
	AddVertsForIndexedSphere3D(&verts, &indices, math.Vec3{}, 1, White, 6, 8)
	AddVertsForIndexedAABB3D(&verts, &indices, math.AABB3{Mins: math.Vec3{X: 2}, Maxs: math.Vec3{X: 3, Y: 1, Z: 1}}, White)
	nv, ni := len(verts), len(indices)
	wantIndices := append([]uint32(nil), indices...)

	CalculateTangentSpaceVectors(verts, indices, ComputeAll)

	require.Len(t, verts, nv)
	require.Equal(t, wantIndices, indices)
	assert.Equal(t, ni, len(indices))

	// the box faces are planar, so solved normals match the generated ones
	box := verts[nv-24:]
	var ref []VertexPCUTBN
	AddVertsForAABB3D(&ref, math.AABB3{Mins: math.Vec3{X: 2}, Maxs: math.Vec3{X: 3, Y: 1, Z: 1}}, White)
	for f := 0; f < 6; f++ {
		assertVec3Near(t, ref[6*f].Normal, box[4*f].Normal, eps, "face %d", f)
		assertVec3Near(t, ref[6*f].Tangent, box[4*f].Tangent, eps, "face %d", f)
	}
}
