package geometry

import (
	"slices"

	"github.com/xuanchaix/CustomGameEngineWithGames-sub006/pkg/math"
)

// World axes. X is forward, Y is left, Z is up.
var (
	WorldForward = math.Vec3{X: 1}
	WorldLeft    = math.Vec3{Y: 1}
	WorldUp      = math.Vec3{Z: 1}
)

// upColinearThreshold is the |forward·up| above which the world-up
// reference is swapped for world-left when deriving a side vector.
const upColinearThreshold = 0.999

// PerpendicularBasis returns left and up vectors that complete a right-handed
// frame with the unit vector forward, so that left x up == forward.
func PerpendicularBasis(forward math.Vec3) (left, up math.Vec3) {
	ref := WorldUp
	if math.Abs(forward.Dot(WorldUp)) > upColinearThreshold {
		ref = WorldLeft
	}
	left = ref.Cross(forward).Normalize()
	up = forward.Cross(left)
	return left, up
}

// uvRect returns the optional UV rect argument or the unit square.
func uvRect(uvs []math.AABB2) math.AABB2 {
	if len(uvs) > 0 {
		return uvs[0]
	}
	return math.UnitAABB2
}

// emitter appends triangles in one of two modes: flat triples when indices
// is nil, otherwise indexed relative to the vertex count at emit time.
type emitter[V Vertex] struct {
	verts   *[]V
	indices *[]uint32
	color   Rgba8
}

func flat[V Vertex](verts *[]V, color Rgba8) emitter[V] {
	return emitter[V]{verts: verts, color: color}
}

func indexed[V Vertex](verts *[]V, indices *[]uint32, color Rgba8) emitter[V] {
	return emitter[V]{verts: verts, indices: indices, color: color}
}

// reserve grows the buffers for the given number of triangles and quads.
func (e emitter[V]) reserve(tris, quads int) {
	if e.indices == nil {
		*e.verts = slices.Grow(*e.verts, 3*tris+6*quads)
		return
	}
	*e.verts = slices.Grow(*e.verts, 3*tris+4*quads)
	*e.indices = slices.Grow(*e.indices, 3*tris+6*quads)
}

func (e emitter[V]) push(cs ...corner) uint32 {
	base := uint32(len(*e.verts))
	for _, c := range cs {
		*e.verts = append(*e.verts, makeVertex[V](c, e.color))
	}
	return base
}

// tri emits one triangle in the given winding.
func (e emitter[V]) tri(a, b, c corner) {
	base := e.push(a, b, c)
	if e.indices != nil {
		*e.indices = append(*e.indices, base, base+1, base+2)
	}
}

// quad emits (bl, br, tr) and (bl, tr, tl). Indexed mode shares the diagonal.
func (e emitter[V]) quad(bl, br, tr, tl corner) {
	if e.indices == nil {
		e.push(bl, br, tr, bl, tr, tl)
		return
	}
	base := e.push(bl, br, tr, tl)
	*e.indices = append(*e.indices, base, base+1, base+2, base, base+2, base+3)
}

// faceQuad emits a planar quad with a shared face normal and the UV rect
// mapped bl=mins, tr=maxs. The normal comes from the diagonals so a quad
// with one collapsed edge (a sphere pole cell) still gets a valid normal.
func (e emitter[V]) faceQuad(bl, br, tr, tl math.Vec3, uvs math.AABB2) {
	n := tr.Sub(bl).Cross(tl.Sub(br)).Normalize()
	t := br.Sub(bl).Add(tr.Sub(tl)).Normalize()
	e.quad(
		corner{pos: bl, uv: uvs.Mins, normal: n, tangent: t},
		corner{pos: br, uv: math.Vec2{X: uvs.Maxs.X, Y: uvs.Mins.Y}, normal: n, tangent: t},
		corner{pos: tr, uv: uvs.Maxs, normal: n, tangent: t},
		corner{pos: tl, uv: math.Vec2{X: uvs.Mins.X, Y: uvs.Maxs.Y}, normal: n, tangent: t},
	)
}

// faceTri emits a triangle whose normal is the face normal and whose
// tangent follows the first edge.
func (e emitter[V]) faceTri(a, b, c math.Vec3, uvA, uvB, uvC math.Vec2) {
	n := b.Sub(a).Cross(c.Sub(a)).Normalize()
	t := b.Sub(a).Normalize()
	e.tri(
		corner{pos: a, uv: uvA, normal: n, tangent: t},
		corner{pos: b, uv: uvB, normal: n, tangent: t},
		corner{pos: c, uv: uvC, normal: n, tangent: t},
	)
}

// radialRing returns numSlices+1 unit vectors obtained by rotating left around
// forward in steps of 360/numSlices degrees. The last entry repeats the first
// so consecutive pairs close the loop exactly.
func radialRing(forward, left math.Vec3, numSlices int) []math.Vec3 {
	step := math.QuatFromAxisAngle(forward, 360/float32(numSlices)).Normalize()
	ring := make([]math.Vec3, numSlices+1)
	ring[0] = left
	for i := 1; i < numSlices; i++ {
		ring[i] = step.Rotate(ring[i-1])
	}
	ring[numSlices] = left
	return ring
}

// discUV maps a unit direction at angle degrees onto the rim of the ellipse
// inscribed in uvs.
func discUV(uvs math.AABB2, degrees float32) math.Vec2 {
	return uvs.PointAtUV(math.Vec2{
		X: 0.5 + 0.5*math.CosDegrees(degrees),
		Y: 0.5 + 0.5*math.SinDegrees(degrees),
	})
}
