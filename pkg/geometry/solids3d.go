package geometry

import (
	"slices"

	"github.com/xuanchaix/CustomGameEngineWithGames-sub006/pkg/math"
)

const (
	// LineSlices is the side count of the cylinder drawn for a 3D line.
	LineSlices = 8

	// arrowHeadFraction is the share of an arrow's length taken by its head.
	arrowHeadFraction = 0.3
	// arrowHeadRadiusScale is the head radius relative to the shaft radius.
	arrowHeadRadiusScale = 2
)

// spherePoint returns the point at the given latitude (+90 is the north pole)
// and longitude on a sphere.
func spherePoint(center math.Vec3, radius, latDegrees, lonDegrees float32) math.Vec3 {
	cosLat := math.CosDegrees(latDegrees)
	return center.Add(math.Vec3{
		X: cosLat * math.CosDegrees(lonDegrees),
		Y: cosLat * math.SinDegrees(lonDegrees),
		Z: math.SinDegrees(latDegrees),
	}.Scale(radius))
}

func (e emitter[V]) sphere(center math.Vec3, radius float32, latSlices, lonSlices int, uvs math.AABB2) {
	e.reserve(0, latSlices*lonSlices)

	latStep := 180 / float32(latSlices)
	lonStep := 360 / float32(lonSlices)
	for i := 0; i < latSlices; i++ {
		latTop := 90 - latStep*float32(i)
		latBottom := latTop - latStep
		vTop := math.RangeMap(latTop, -90, 90, uvs.Mins.Y, uvs.Maxs.Y)
		vBottom := math.RangeMap(latBottom, -90, 90, uvs.Mins.Y, uvs.Maxs.Y)

		for j := 0; j < lonSlices; j++ {
			lonLeft := lonStep * float32(j)
			lonRight := lonLeft + lonStep
			cell := math.AABB2{
				Mins: math.Vec2{X: math.Lerp(uvs.Mins.X, uvs.Maxs.X, float32(j)/float32(lonSlices)), Y: vBottom},
				Maxs: math.Vec2{X: math.Lerp(uvs.Mins.X, uvs.Maxs.X, float32(j+1)/float32(lonSlices)), Y: vTop},
			}
			e.faceQuad(
				spherePoint(center, radius, latBottom, lonLeft),
				spherePoint(center, radius, latBottom, lonRight),
				spherePoint(center, radius, latTop, lonRight),
				spherePoint(center, radius, latTop, lonLeft),
				cell,
			)
		}
	}
}

// cylinder emits side quads and both end caps. left is the radial direction
// of slice 0 and must be perpendicular to the axis.
func (e emitter[V]) cylinder(start, end, left math.Vec3, radius float32, numSlices int, uvs math.AABB2) {
	e.reserve(2*numSlices, numSlices)

	axis := end.Sub(start)
	forward := axis.Scale(1 / axis.Length())
	back := forward.Scale(-1)
	ring := radialRing(forward, left, numSlices)
	step := 360 / float32(numSlices)

	for s := 0; s < numSlices; s++ {
		r0 := ring[s].Scale(radius)
		r1 := ring[s+1].Scale(radius)
		a0 := step * float32(s)
		a1 := step * float32(s+1)

		e.tri(
			corner{pos: start, uv: uvs.Center(), normal: back, tangent: left},
			corner{pos: start.Add(r1), uv: discUV(uvs, a1), normal: back, tangent: left},
			corner{pos: start.Add(r0), uv: discUV(uvs, a0), normal: back, tangent: left},
		)

		side := math.AABB2{
			Mins: math.Vec2{X: math.Lerp(uvs.Mins.X, uvs.Maxs.X, float32(s)/float32(numSlices)), Y: uvs.Mins.Y},
			Maxs: math.Vec2{X: math.Lerp(uvs.Mins.X, uvs.Maxs.X, float32(s+1)/float32(numSlices)), Y: uvs.Maxs.Y},
		}
		e.faceQuad(start.Add(r0), start.Add(r1), end.Add(r1), end.Add(r0), side)

		e.tri(
			corner{pos: end, uv: uvs.Center(), normal: forward, tangent: left},
			corner{pos: end.Add(r0), uv: discUV(uvs, a0), normal: forward, tangent: left},
			corner{pos: end.Add(r1), uv: discUV(uvs, a1), normal: forward, tangent: left},
		)
	}
}

// cone emits a base cap at start and triangular sides meeting at apex.
func (e emitter[V]) cone(start, apex, left math.Vec3, radius float32, numSlices int, uvs math.AABB2) {
	e.reserve(2*numSlices, 0)

	axis := apex.Sub(start)
	forward := axis.Scale(1 / axis.Length())
	back := forward.Scale(-1)
	ring := radialRing(forward, left, numSlices)
	step := 360 / float32(numSlices)

	for s := 0; s < numSlices; s++ {
		r0 := ring[s].Scale(radius)
		r1 := ring[s+1].Scale(radius)
		a0 := step * float32(s)
		a1 := step * float32(s+1)

		e.tri(
			corner{pos: start, uv: uvs.Center(), normal: back, tangent: left},
			corner{pos: start.Add(r1), uv: discUV(uvs, a1), normal: back, tangent: left},
			corner{pos: start.Add(r0), uv: discUV(uvs, a0), normal: back, tangent: left},
		)

		u0 := math.Lerp(uvs.Mins.X, uvs.Maxs.X, float32(s)/float32(numSlices))
		u1 := math.Lerp(uvs.Mins.X, uvs.Maxs.X, float32(s+1)/float32(numSlices))
		e.faceTri(
			start.Add(r0), start.Add(r1), apex,
			math.Vec2{X: u0, Y: uvs.Mins.Y},
			math.Vec2{X: u1, Y: uvs.Mins.Y},
			math.Vec2{X: (u0 + u1) * 0.5, Y: uvs.Maxs.Y},
		)
	}
}

func (e emitter[V]) arrow(start, end math.Vec3, radius float32, numSlices int) {
	neck := start.Lerp(end, 1-arrowHeadFraction)
	axis := end.Sub(start)
	left, _ := PerpendicularBasis(axis.Scale(1 / axis.Length()))
	e.cylinder(start, neck, left, radius, numSlices, math.UnitAABB2)
	e.cone(neck, end, left, radius*arrowHeadRadiusScale, numSlices, math.UnitAABB2)
}

func (e emitter[V]) line(start, end math.Vec3, thickness float32) {
	axis := end.Sub(start)
	left, _ := PerpendicularBasis(axis.Scale(1 / axis.Length()))
	e.cylinder(start, end, left, thickness*0.5, LineSlices, math.UnitAABB2)
}

// AddVertsForSphere3D appends a latitude x longitude grid of quads running
// from the north pole (+90°) to the south pole (-90°). Pole rows are quads
// with one collapsed edge.
func AddVertsForSphere3D[V Vertex](verts *[]V, center math.Vec3, radius float32, color Rgba8, latSlices, lonSlices int, uvs ...math.AABB2) {
	flat(verts, color).sphere(center, radius, latSlices, lonSlices, uvRect(uvs))
}

// AddVertsForIndexedSphere3D appends a shared (latSlices+1) x (lonSlices+1)
// vertex grid. Row 0 and the last row sit on the poles; the first and last
// latitude bands emit one triangle per cell meeting at the pole instead of a
// quad. With a single latitude band both caps are emitted.
func AddVertsForIndexedSphere3D[V Vertex](verts *[]V, indices *[]uint32, center math.Vec3, radius float32, color Rgba8, latSlices, lonSlices int, uvs ...math.AABB2) {
	uv := uvRect(uvs)
	cols := lonSlices + 1
	base := uint32(len(*verts))
	*verts = slices.Grow(*verts, (latSlices+1)*cols)
	*indices = slices.Grow(*indices, 6*latSlices*lonSlices)

	latStep := 180 / float32(latSlices)
	lonStep := 360 / float32(lonSlices)
	for r := 0; r <= latSlices; r++ {
		lat := 90 - latStep*float32(r)
		v := math.RangeMap(lat, -90, 90, uv.Mins.Y, uv.Maxs.Y)
		for c := 0; c < cols; c++ {
			lon := lonStep * float32(c)
			p := spherePoint(center, radius, lat, lon)
			*verts = append(*verts, makeVertex[V](corner{
				pos:     p,
				uv:      math.Vec2{X: math.Lerp(uv.Mins.X, uv.Maxs.X, float32(c)/float32(lonSlices)), Y: v},
				normal:  p.Sub(center).Scale(1 / radius),
				tangent: math.Vec3{X: -math.SinDegrees(lon), Y: math.CosDegrees(lon)},
			}, color))
		}
	}

	at := func(r, c int) uint32 {
		return base + uint32(r*cols+c)
	}
	for i := 0; i < latSlices; i++ {
		first := i == 0
		last := i == latSlices-1
		for j := 0; j < lonSlices; j++ {
			tl, tr := at(i, j), at(i, j+1)
			bl, br := at(i+1, j), at(i+1, j+1)
			if first {
				*indices = append(*indices, tl, bl, br)
			}
			if last {
				*indices = append(*indices, bl, tr, tl)
			}
			if !first && !last {
				*indices = append(*indices, bl, br, tr, bl, tr, tl)
			}
		}
	}
}

// AddVertsForCylinder3D appends a cylinder from start to end. The slice-0
// side vector comes from PerpendicularBasis.
func AddVertsForCylinder3D[V Vertex](verts *[]V, start, end math.Vec3, radius float32, color Rgba8, numSlices int, uvs ...math.AABB2) {
	axis := end.Sub(start)
	left, _ := PerpendicularBasis(axis.Scale(1 / axis.Length()))
	flat(verts, color).cylinder(start, end, left, radius, numSlices, uvRect(uvs))
}

// AddVertsForIndexedCylinder3D is the indexed form of AddVertsForCylinder3D.
func AddVertsForIndexedCylinder3D[V Vertex](verts *[]V, indices *[]uint32, start, end math.Vec3, radius float32, color Rgba8, numSlices int, uvs ...math.AABB2) {
	axis := end.Sub(start)
	left, _ := PerpendicularBasis(axis.Scale(1 / axis.Length()))
	indexed(verts, indices, color).cylinder(start, end, left, radius, numSlices, uvRect(uvs))
}

// AddVertsForCylinderZ3D appends an upright cylinder whose slice 0 faces +X.
func AddVertsForCylinderZ3D[V Vertex](verts *[]V, centerXY math.Vec2, minZ, maxZ, radius float32, color Rgba8, numSlices int, uvs ...math.AABB2) {
	start := math.Vec3{X: centerXY.X, Y: centerXY.Y, Z: minZ}
	end := math.Vec3{X: centerXY.X, Y: centerXY.Y, Z: maxZ}
	flat(verts, color).cylinder(start, end, WorldForward, radius, numSlices, uvRect(uvs))
}

// AddVertsForIndexedCylinderZ3D is the indexed form of AddVertsForCylinderZ3D.
func AddVertsForIndexedCylinderZ3D[V Vertex](verts *[]V, indices *[]uint32, centerXY math.Vec2, minZ, maxZ, radius float32, color Rgba8, numSlices int, uvs ...math.AABB2) {
	start := math.Vec3{X: centerXY.X, Y: centerXY.Y, Z: minZ}
	end := math.Vec3{X: centerXY.X, Y: centerXY.Y, Z: maxZ}
	indexed(verts, indices, color).cylinder(start, end, WorldForward, radius, numSlices, uvRect(uvs))
}

// AddVertsForCone3D appends a cone with its base disc at start and its tip
// at apex.
func AddVertsForCone3D[V Vertex](verts *[]V, start, apex math.Vec3, radius float32, color Rgba8, numSlices int, uvs ...math.AABB2) {
	axis := apex.Sub(start)
	left, _ := PerpendicularBasis(axis.Scale(1 / axis.Length()))
	flat(verts, color).cone(start, apex, left, radius, numSlices, uvRect(uvs))
}

// AddVertsForIndexedCone3D is the indexed form of AddVertsForCone3D.
func AddVertsForIndexedCone3D[V Vertex](verts *[]V, indices *[]uint32, start, apex math.Vec3, radius float32, color Rgba8, numSlices int, uvs ...math.AABB2) {
	axis := apex.Sub(start)
	left, _ := PerpendicularBasis(axis.Scale(1 / axis.Length()))
	indexed(verts, indices, color).cone(start, apex, left, radius, numSlices, uvRect(uvs))
}

// AddVertsForArrow3D appends a cylinder shaft and a cone head covering the
// last 30% of the arrow at twice the shaft radius.
func AddVertsForArrow3D[V Vertex](verts *[]V, start, end math.Vec3, radius float32, color Rgba8, numSlices int) {
	flat(verts, color).arrow(start, end, radius, numSlices)
}

// AddVertsForIndexedArrow3D is the indexed form of AddVertsForArrow3D.
func AddVertsForIndexedArrow3D[V Vertex](verts *[]V, indices *[]uint32, start, end math.Vec3, radius float32, color Rgba8, numSlices int) {
	indexed(verts, indices, color).arrow(start, end, radius, numSlices)
}

// AddVertsForLineSegment3D appends a LineSlices-sided cylinder whose
// diameter is thickness.
func AddVertsForLineSegment3D[V Vertex](verts *[]V, start, end math.Vec3, thickness float32, color Rgba8) {
	flat(verts, color).line(start, end, thickness)
}

// AddVertsForIndexedLineSegment3D is the indexed form of AddVertsForLineSegment3D.
func AddVertsForIndexedLineSegment3D[V Vertex](verts *[]V, indices *[]uint32, start, end math.Vec3, thickness float32, color Rgba8) {
	indexed(verts, indices, color).line(start, end, thickness)
}
