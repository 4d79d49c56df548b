package geometry

import (
	"github.com/xuanchaix/CustomGameEngineWithGames-sub006/pkg/math"
)

// Tessellation constants for the 2D shapes.
const (
	DiscSlices    = 20
	SectorSlices  = 20
	CapsuleSlices = 32 // split evenly between the two end caps
	RingSlices    = 20
)

// arrowHeadDegrees is the angle of each arrow-head stroke from the shaft.
const arrowHeadDegrees = 135

func corner2D(p math.Vec2, uv math.Vec2) corner {
	return corner{pos: p.XY0(), uv: uv, normal: WorldUp, tangent: WorldForward}
}

// AddVertsForDisc2D appends a DiscSlices-triangle fan centered on center.
func AddVertsForDisc2D[V Vertex](verts *[]V, center math.Vec2, radius float32, color Rgba8, uvs ...math.AABB2) {
	AddVertsForDiscSlices2D(verts, center, radius, color, DiscSlices, uvs...)
}

// AddVertsForDiscSlices2D appends a fan of numSlices triangles, each starting at
// center and sweeping counter-clockwise.
func AddVertsForDiscSlices2D[V Vertex](verts *[]V, center math.Vec2, radius float32, color Rgba8, numSlices int, uvs ...math.AABB2) {
	uv := uvRect(uvs)
	e := flat(verts, color)
	e.reserve(numSlices, 0)

	step := 360 / float32(numSlices)
	for i := 0; i < numSlices; i++ {
		a0 := step * float32(i)
		a1 := step * float32(i+1)
		e.tri(
			corner2D(center, uv.Center()),
			corner2D(center.Add(math.Vec2FromPolarDegrees(a0, radius)), discUV(uv, a0)),
			corner2D(center.Add(math.Vec2FromPolarDegrees(a1, radius)), discUV(uv, a1)),
		)
	}
}

// AddVertsForRing2D appends an annulus of the given thickness centered on
// the circle of radius radius.
func AddVertsForRing2D[V Vertex](verts *[]V, center math.Vec2, radius, thickness float32, color Rgba8) {
	e := flat(verts, color)
	e.reserve(0, RingSlices)

	inner := radius - thickness*0.5
	outer := radius + thickness*0.5
	step := 360 / float32(RingSlices)
	for i := 0; i < RingSlices; i++ {
		a0 := step * float32(i)
		a1 := step * float32(i+1)
		in0 := center.Add(math.Vec2FromPolarDegrees(a0, inner))
		out0 := center.Add(math.Vec2FromPolarDegrees(a0, outer))
		in1 := center.Add(math.Vec2FromPolarDegrees(a1, inner))
		out1 := center.Add(math.Vec2FromPolarDegrees(a1, outer))
		e.tri(corner2D(in0, math.Vec2{}), corner2D(out0, math.Vec2{}), corner2D(out1, math.Vec2{}))
		e.tri(corner2D(in0, math.Vec2{}), corner2D(out1, math.Vec2{}), corner2D(in1, math.Vec2{}))
	}
}

// AddVertsForSector2D appends a wedge fan from tip spanning apertureDegrees
// centered on forwardDegrees.
func AddVertsForSector2D[V Vertex](verts *[]V, tip math.Vec2, forwardDegrees, apertureDegrees, radius float32, color Rgba8, uvs ...math.AABB2) {
	uv := uvRect(uvs)
	e := flat(verts, color)
	e.reserve(SectorSlices, 0)

	start := forwardDegrees - apertureDegrees*0.5
	step := apertureDegrees / SectorSlices
	for i := 0; i < SectorSlices; i++ {
		a0 := start + step*float32(i)
		a1 := start + step*float32(i+1)
		e.tri(
			corner2D(tip, uv.Center()),
			corner2D(tip.Add(math.Vec2FromPolarDegrees(a0, radius)), discUV(uv, a0)),
			corner2D(tip.Add(math.Vec2FromPolarDegrees(a1, radius)), discUV(uv, a1)),
		)
	}
}

// AddVertsForCapsule2D appends a stadium around the bone from boneStart to
// boneEnd: a half-fan pivoted at each end plus one quad on each side of the
// bone. The bone must have non-zero length.
func AddVertsForCapsule2D[V Vertex](verts *[]V, boneStart, boneEnd math.Vec2, radius float32, color Rgba8) {
	e := flat(verts, color)
	half := CapsuleSlices / 2
	e.reserve(2*half, 2)

	bone := boneEnd.Sub(boneStart)
	dir := bone.Scale(1 / bone.Length())
	heading := dir.OrientationDegrees()
	left := dir.Rotated90().Scale(radius)

	var zero math.Vec2
	side := func(bl, br, tr, tl math.Vec2) {
		e.tri(corner2D(bl, zero), corner2D(br, zero), corner2D(tr, zero))
		e.tri(corner2D(bl, zero), corner2D(tr, zero), corner2D(tl, zero))
	}
	side(boneStart.Sub(left), boneEnd.Sub(left), boneEnd, boneStart)
	side(boneStart, boneEnd, boneEnd.Add(left), boneStart.Add(left))

	fan := func(pivot math.Vec2, from float32) {
		step := 180 / float32(half)
		for i := 0; i < half; i++ {
			a0 := from + step*float32(i)
			a1 := from + step*float32(i+1)
			e.tri(
				corner2D(pivot, zero),
				corner2D(pivot.Add(math.Vec2FromPolarDegrees(a0, radius)), zero),
				corner2D(pivot.Add(math.Vec2FromPolarDegrees(a1, radius)), zero),
			)
		}
	}
	fan(boneEnd, heading-90)
	fan(boneStart, heading+90)
}

// AddVertsForLineSegment2D appends one quad along start->end with square
// caps extended by half the thickness past each endpoint.
func AddVertsForLineSegment2D[V Vertex](verts *[]V, start, end math.Vec2, thickness float32, color Rgba8, uvs ...math.AABB2) {
	uv := uvRect(uvs)
	e := flat(verts, color)
	e.reserve(2, 0)

	seg := end.Sub(start)
	h := thickness * 0.5
	fwd := seg.Scale(h / seg.Length())
	left := fwd.Rotated90()

	bl := corner2D(start.Sub(fwd).Sub(left), uv.Mins)
	br := corner2D(end.Add(fwd).Sub(left), math.Vec2{X: uv.Maxs.X, Y: uv.Mins.Y})
	tr := corner2D(end.Add(fwd).Add(left), uv.Maxs)
	tl := corner2D(start.Sub(fwd).Add(left), math.Vec2{X: uv.Mins.X, Y: uv.Maxs.Y})
	e.tri(bl, br, tr)
	e.tri(bl, tr, tl)
}

// AddVertsForArrow2D appends a shaft from tail to tip and a V-shaped head
// of two strokes of length arrowSize at ±135° from the shaft.
func AddVertsForArrow2D[V Vertex](verts *[]V, tail, tip math.Vec2, arrowSize, thickness float32, color Rgba8) {
	AddVertsForLineSegment2D(verts, tail, tip, thickness, color)

	shaft := tip.Sub(tail)
	dir := shaft.Scale(1 / shaft.Length())
	AddVertsForLineSegment2D(verts, tip, tip.Add(dir.RotatedDegrees(arrowHeadDegrees).Scale(arrowSize)), thickness, color)
	AddVertsForLineSegment2D(verts, tip, tip.Add(dir.RotatedDegrees(-arrowHeadDegrees).Scale(arrowSize)), thickness, color)
}

// box2D emits the fixed six-vertex layout BL, BR, TL, TR, TL, BR.
func box2D[V Vertex](verts *[]V, c [4]math.Vec2, color Rgba8, uv math.AABB2) {
	e := flat(verts, color)
	e.reserve(2, 0)

	bl := corner2D(c[0], uv.Mins)
	br := corner2D(c[1], math.Vec2{X: uv.Maxs.X, Y: uv.Mins.Y})
	tl := corner2D(c[2], math.Vec2{X: uv.Mins.X, Y: uv.Maxs.Y})
	tr := corner2D(c[3], uv.Maxs)
	e.tri(bl, br, tl)
	e.tri(tr, tl, br)
}

// AddVertsForAABB2D appends the two triangles covering box.
func AddVertsForAABB2D[V Vertex](verts *[]V, box math.AABB2, color Rgba8, uvs ...math.AABB2) {
	box2D(verts, [4]math.Vec2{
		box.Mins,
		{X: box.Maxs.X, Y: box.Mins.Y},
		{X: box.Mins.X, Y: box.Maxs.Y},
		box.Maxs,
	}, color, uvRect(uvs))
}

// AddVertsForOBB2D appends the two triangles covering an oriented box,
// mapping its local min/max corners to the UV rect like AddVertsForAABB2D.
func AddVertsForOBB2D[V Vertex](verts *[]V, box math.OBB2, color Rgba8, uvs ...math.AABB2) {
	box2D(verts, box.Corners(), color, uvRect(uvs))
}

// AddVertsForConvexPoly2D appends a fan from points[0]. Fewer than three
// points append nothing.
func AddVertsForConvexPoly2D[V Vertex](verts *[]V, points []math.Vec2, color Rgba8) {
	if len(points) < 3 {
		return
	}
	e := flat(verts, color)
	e.reserve(len(points)-2, 0)

	var zero math.Vec2
	for i := 1; i < len(points)-1; i++ {
		e.tri(corner2D(points[0], zero), corner2D(points[i], zero), corner2D(points[i+1], zero))
	}
}
