package geometry

import (
	"github.com/chewxy/math32"

	"github.com/xuanchaix/CustomGameEngineWithGames-sub006/pkg/math"
)

// wireThicknessDivisor sets the default wire thickness as a fraction of the
// shape's diagonal.
const wireThicknessDivisor = 200

func wireThickness(thickness, diagonal float32) float32 {
	if thickness > 0 {
		return thickness
	}
	return diagonal / wireThicknessDivisor
}

// boxEdges pairs corner indices (see math.AABB3.Corners) that differ in
// exactly one axis bit.
var boxEdges = [12][2]int{
	{0, 1}, {2, 3}, {4, 5}, {6, 7}, // along X
	{0, 2}, {1, 3}, {4, 6}, {5, 7}, // along Y
	{0, 4}, {1, 5}, {2, 6}, {3, 7}, // along Z
}

func (e emitter[V]) wiredBox(c [8]math.Vec3, thickness float32) {
	t := wireThickness(thickness, c[0].Distance(c[7]))
	for _, edge := range boxEdges {
		e.line(c[edge[0]], c[edge[1]], t)
	}
}

// AddVertsForWiredQuad3D appends the four edges of a quad as line cylinders.
// A non-positive thickness uses 1/200 of the bl-tr diagonal.
func AddVertsForWiredQuad3D[V Vertex](verts *[]V, bl, br, tr, tl math.Vec3, color Rgba8, thickness float32) {
	e := flat(verts, color)
	t := wireThickness(thickness, bl.Distance(tr))
	e.line(bl, br, t)
	e.line(br, tr, t)
	e.line(tr, tl, t)
	e.line(tl, bl, t)
}

// AddVertsForWiredAABB3D appends the twelve edges of box.
func AddVertsForWiredAABB3D[V Vertex](verts *[]V, box math.AABB3, color Rgba8, thickness float32) {
	flat(verts, color).wiredBox(box.Corners(), thickness)
}

// AddVertsForWiredOBB3D appends the twelve edges of an oriented box.
func AddVertsForWiredOBB3D[V Vertex](verts *[]V, box math.OBB3, color Rgba8, thickness float32) {
	flat(verts, color).wiredBox(box.Corners(), thickness)
}

// AddVertsForWiredSphere3D appends the latitude rings and meridians of a
// sphere grid. Rings at the poles are skipped since they collapse to a point.
func AddVertsForWiredSphere3D[V Vertex](verts *[]V, center math.Vec3, radius float32, color Rgba8, latSlices, lonSlices int, thickness float32) {
	e := flat(verts, color)
	t := wireThickness(thickness, 2*radius)

	latStep := 180 / float32(latSlices)
	lonStep := 360 / float32(lonSlices)
	for i := 0; i < latSlices; i++ {
		latTop := 90 - latStep*float32(i)
		latBottom := latTop - latStep
		for j := 0; j < lonSlices; j++ {
			lonLeft := lonStep * float32(j)
			lonRight := lonLeft + lonStep
			if i > 0 {
				e.line(spherePoint(center, radius, latTop, lonLeft), spherePoint(center, radius, latTop, lonRight), t)
			}
			e.line(spherePoint(center, radius, latTop, lonLeft), spherePoint(center, radius, latBottom, lonLeft), t)
		}
	}
}

// rimOffsets returns numSlices+1 radial offsets of length radius around the
// start->end axis.
func rimOffsets(start, end math.Vec3, radius float32, numSlices int) []math.Vec3 {
	axis := end.Sub(start)
	forward := axis.Scale(1 / axis.Length())
	left, _ := PerpendicularBasis(forward)
	ring := radialRing(forward, left, numSlices)
	for i := range ring {
		ring[i] = ring[i].Scale(radius)
	}
	return ring
}

func solidDiagonal(start, end math.Vec3, radius float32) float32 {
	l := start.Distance(end)
	return math32.Sqrt(l*l + 4*radius*radius)
}

// AddVertsForWiredCylinder3D appends both rims and one side line per slice.
func AddVertsForWiredCylinder3D[V Vertex](verts *[]V, start, end math.Vec3, radius float32, color Rgba8, numSlices int, thickness float32) {
	e := flat(verts, color)
	t := wireThickness(thickness, solidDiagonal(start, end, radius))
	ring := rimOffsets(start, end, radius, numSlices)
	for s := 0; s < numSlices; s++ {
		e.line(start.Add(ring[s]), start.Add(ring[s+1]), t)
		e.line(end.Add(ring[s]), end.Add(ring[s+1]), t)
		e.line(start.Add(ring[s]), end.Add(ring[s]), t)
	}
}

// AddVertsForWiredCone3D appends the base rim and one line per slice from
// the rim to the apex.
func AddVertsForWiredCone3D[V Vertex](verts *[]V, start, apex math.Vec3, radius float32, color Rgba8, numSlices int, thickness float32) {
	e := flat(verts, color)
	t := wireThickness(thickness, solidDiagonal(start, apex, radius))
	ring := rimOffsets(start, apex, radius, numSlices)
	for s := 0; s < numSlices; s++ {
		e.line(start.Add(ring[s]), start.Add(ring[s+1]), t)
		e.line(start.Add(ring[s]), apex, t)
	}
}
