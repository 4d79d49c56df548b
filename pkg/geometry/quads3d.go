package geometry

import (
	"github.com/xuanchaix/CustomGameEngineWithGames-sub006/pkg/math"
)

// boxFaces lists each face as bl, br, tr, tl indices into the corner order
// of math.AABB3.Corners, wound counter-clockwise seen from outside.
var boxFaces = [6][4]int{
	{1, 3, 7, 5}, // +X
	{2, 0, 4, 6}, // -X
	{3, 2, 6, 7}, // +Y
	{0, 1, 5, 4}, // -Y
	{6, 4, 5, 7}, // +Z
	{0, 2, 3, 1}, // -Z
}

func (e emitter[V]) box(c [8]math.Vec3, uvs math.AABB2) {
	e.reserve(0, len(boxFaces))
	for _, f := range boxFaces {
		e.faceQuad(c[f[0]], c[f[1]], c[f[2]], c[f[3]], uvs)
	}
}

// roundedQuad splits the quad at the midpoint of its bottom and top edges
// into two fans. Outer edge vertices get normals tilted sideways so the quad
// shades like a rounded panel.
func (e emitter[V]) roundedQuad(bl, br, tr, tl math.Vec3, uvs math.AABB2) {
	e.reserve(4, 0)

	n := tr.Sub(bl).Cross(tl.Sub(br)).Normalize()
	right := br.Sub(bl).Normalize()
	left := right.Scale(-1)
	midB := bl.Lerp(br, 0.5)
	midT := tl.Lerp(tr, 0.5)
	uMid := math.Lerp(uvs.Mins.X, uvs.Maxs.X, 0.5)

	cBL := corner{pos: bl, uv: uvs.Mins, normal: left, tangent: n}
	cTL := corner{pos: tl, uv: math.Vec2{X: uvs.Mins.X, Y: uvs.Maxs.Y}, normal: left, tangent: n}
	cMB := corner{pos: midB, uv: math.Vec2{X: uMid, Y: uvs.Mins.Y}, normal: n, tangent: right}
	cMT := corner{pos: midT, uv: math.Vec2{X: uMid, Y: uvs.Maxs.Y}, normal: n, tangent: right}
	cBR := corner{pos: br, uv: math.Vec2{X: uvs.Maxs.X, Y: uvs.Mins.Y}, normal: right, tangent: n.Scale(-1)}
	cTR := corner{pos: tr, uv: uvs.Maxs, normal: right, tangent: n.Scale(-1)}

	// left fan around the bottom midpoint
	e.tri(cMB, cMT, cTL)
	e.tri(cMB, cTL, cBL)
	// right fan around the top midpoint
	e.tri(cMT, cMB, cBR)
	e.tri(cMT, cBR, cTR)
}

// AddVertsForQuad3D appends a quad as (bl, br, tr) and (bl, tr, tl).
func AddVertsForQuad3D[V Vertex](verts *[]V, bl, br, tr, tl math.Vec3, color Rgba8, uvs ...math.AABB2) {
	e := flat(verts, color)
	e.reserve(0, 1)
	e.faceQuad(bl, br, tr, tl, uvRect(uvs))
}

// AddVertsForIndexedQuad3D appends the four corners and six indices.
func AddVertsForIndexedQuad3D[V Vertex](verts *[]V, indices *[]uint32, bl, br, tr, tl math.Vec3, color Rgba8, uvs ...math.AABB2) {
	e := indexed(verts, indices, color)
	e.reserve(0, 1)
	e.faceQuad(bl, br, tr, tl, uvRect(uvs))
}

// AddVertsForRoundedQuad3D appends a quad whose side edges shade as if rounded.
func AddVertsForRoundedQuad3D[V Vertex](verts *[]V, bl, br, tr, tl math.Vec3, color Rgba8, uvs ...math.AABB2) {
	flat(verts, color).roundedQuad(bl, br, tr, tl, uvRect(uvs))
}

// AddVertsForIndexedRoundedQuad3D is the indexed form of AddVertsForRoundedQuad3D.
func AddVertsForIndexedRoundedQuad3D[V Vertex](verts *[]V, indices *[]uint32, bl, br, tr, tl math.Vec3, color Rgba8, uvs ...math.AABB2) {
	indexed(verts, indices, color).roundedQuad(bl, br, tr, tl, uvRect(uvs))
}

// AddVertsForAABB3D appends six outward-facing quads, each spanning the
// full UV rect.
func AddVertsForAABB3D[V Vertex](verts *[]V, box math.AABB3, color Rgba8, uvs ...math.AABB2) {
	flat(verts, color).box(box.Corners(), uvRect(uvs))
}

// AddVertsForIndexedAABB3D appends 24 vertices and 36 indices.
func AddVertsForIndexedAABB3D[V Vertex](verts *[]V, indices *[]uint32, box math.AABB3, color Rgba8, uvs ...math.AABB2) {
	indexed(verts, indices, color).box(box.Corners(), uvRect(uvs))
}

// AddVertsForOBB3D appends six outward-facing quads of an oriented box.
func AddVertsForOBB3D[V Vertex](verts *[]V, box math.OBB3, color Rgba8, uvs ...math.AABB2) {
	flat(verts, color).box(box.Corners(), uvRect(uvs))
}

// AddVertsForIndexedOBB3D is the indexed form of AddVertsForOBB3D.
func AddVertsForIndexedOBB3D[V Vertex](verts *[]V, indices *[]uint32, box math.OBB3, color Rgba8, uvs ...math.AABB2) {
	indexed(verts, indices, color).box(box.Corners(), uvRect(uvs))
}
