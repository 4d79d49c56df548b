package catalog

import (
	"cmp"
	"slices"

	"github.com/pkg/errors"

	"github.com/xuanchaix/CustomGameEngineWithGames-sub006/pkg/geometry"
	"github.com/xuanchaix/CustomGameEngineWithGames-sub006/pkg/math"
)

// Kind names a shape generator.
type Kind string

// Shape kinds.
const (
	KindDisc        Kind = "disc"
	KindRing        Kind = "ring"
	KindSector      Kind = "sector"
	KindCapsule     Kind = "capsule"
	KindLine2D      Kind = "line2d"
	KindArrow2D     Kind = "arrow2d"
	KindAABB2       Kind = "aabb2"
	KindOBB2        Kind = "obb2"
	KindPoly        Kind = "poly"
	KindQuad        Kind = "quad"
	KindRoundedQuad Kind = "rounded_quad"
	KindAABB3       Kind = "aabb3"
	KindOBB3        Kind = "obb3"
	KindSphere      Kind = "sphere"
	KindCylinder    Kind = "cylinder"
	KindCylinderZ   Kind = "cylinder_z"
	KindCone        Kind = "cone"
	KindArrow3D     Kind = "arrow3d"
	KindLine3D      Kind = "line3d"
)

// Defaults used when a shape leaves its slice counts at zero.
const (
	DefaultSlices    = 16
	DefaultLatSlices = 16
	DefaultLonSlices = 32
)

type mesh = geometry.Mesh[geometry.VertexPCUTBN]

// emitFunc appends an already validated shape to m.
type emitFunc func(m *mesh, color geometry.Rgba8, uv math.AABB2)

// KindInfo describes what a kind accepts.
type KindInfo struct {
	Kind    Kind
	Is3D    bool
	Indexed bool // supports indexed: true
	Wired   bool // supports wired: true
	Params  []string

	prepare func(s *Shape) (emitFunc, error)
}

var kinds = map[Kind]*KindInfo{}

func register(info KindInfo) {
	kinds[info.Kind] = &info
}

// Kinds returns every registered kind sorted by name.
func Kinds() []KindInfo {
	out := make([]KindInfo, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, *k)
	}
	slices.SortFunc(out, func(a, b KindInfo) int {
		return cmp.Compare(a.Kind, b.Kind)
	})
	return out
}

// Lookup returns the info for k.
func Lookup(k Kind) (KindInfo, bool) {
	info, ok := kinds[k]
	if !ok {
		return KindInfo{}, false
	}
	return *info, true
}

// params reads shape fields and keeps the first error, so a prepare
// function can read everything and check once.
type params struct {
	err error
}

func (p *params) fail(err error) {
	if p.err == nil {
		p.err = err
	}
}

func (p *params) vec2(v []float32, field string) math.Vec2 {
	out, err := vec2(v, field)
	p.fail(err)
	return out
}

func (p *params) vec3(v []float32, field string) math.Vec3 {
	out, err := vec3(v, field)
	p.fail(err)
	return out
}

func (p *params) positive(v float32, field string) float32 {
	if v <= 0 {
		p.fail(errors.Errorf("%s must be positive, got %v", field, v))
	}
	return v
}

func (p *params) count(v, def int, field string) int {
	if v == 0 {
		return def
	}
	if v < 0 {
		p.fail(errors.Errorf("%s must be positive, got %d", field, v))
	}
	return v
}

func (p *params) distinct2(a, b math.Vec2, field string) {
	if a == b {
		p.fail(errors.Errorf("%s: start and end coincide", field))
	}
}

func (p *params) distinct3(a, b math.Vec3, field string) {
	if a == b {
		p.fail(errors.Errorf("%s: start and end coincide", field))
	}
}

func init() {
	register(KindInfo{Kind: KindDisc, Params: []string{"center", "radius", "slices"}, prepare: prepareDisc})
	register(KindInfo{Kind: KindRing, Params: []string{"center", "radius", "thickness"}, prepare: prepareRing})
	register(KindInfo{Kind: KindSector, Params: []string{"center", "forward", "aperture", "radius"}, prepare: prepareSector})
	register(KindInfo{Kind: KindCapsule, Params: []string{"start", "end", "radius"}, prepare: prepareCapsule})
	register(KindInfo{Kind: KindLine2D, Params: []string{"start", "end", "thickness"}, prepare: prepareLine2D})
	register(KindInfo{Kind: KindArrow2D, Params: []string{"start", "end", "size", "thickness"}, prepare: prepareArrow2D})
	register(KindInfo{Kind: KindAABB2, Params: []string{"mins", "maxs"}, prepare: prepareAABB2})
	register(KindInfo{Kind: KindOBB2, Params: []string{"center", "i_basis", "half_dims"}, prepare: prepareOBB2})
	register(KindInfo{Kind: KindPoly, Params: []string{"points"}, prepare: preparePoly})

	register(KindInfo{Kind: KindQuad, Is3D: true, Indexed: true, Wired: true, Params: []string{"points"}, prepare: prepareQuad})
	register(KindInfo{Kind: KindRoundedQuad, Is3D: true, Indexed: true, Params: []string{"points"}, prepare: prepareRoundedQuad})
	register(KindInfo{Kind: KindAABB3, Is3D: true, Indexed: true, Wired: true, Params: []string{"mins", "maxs"}, prepare: prepareAABB3})
	register(KindInfo{Kind: KindOBB3, Is3D: true, Indexed: true, Wired: true, Params: []string{"center", "i_basis", "j_basis", "half_dims"}, prepare: prepareOBB3})
	register(KindInfo{Kind: KindSphere, Is3D: true, Indexed: true, Wired: true, Params: []string{"center", "radius", "lat_slices", "lon_slices"}, prepare: prepareSphere})
	register(KindInfo{Kind: KindCylinder, Is3D: true, Indexed: true, Wired: true, Params: []string{"start", "end", "radius", "slices"}, prepare: prepareCylinder})
	register(KindInfo{Kind: KindCylinderZ, Is3D: true, Indexed: true, Wired: true, Params: []string{"center", "min_z", "max_z", "radius", "slices"}, prepare: prepareCylinderZ})
	register(KindInfo{Kind: KindCone, Is3D: true, Indexed: true, Wired: true, Params: []string{"start", "end", "radius", "slices"}, prepare: prepareCone})
	register(KindInfo{Kind: KindArrow3D, Is3D: true, Indexed: true, Params: []string{"start", "end", "radius", "slices"}, prepare: prepareArrow3D})
	register(KindInfo{Kind: KindLine3D, Is3D: true, Indexed: true, Params: []string{"start", "end", "thickness"}, prepare: prepareLine3D})
}

func prepareDisc(s *Shape) (emitFunc, error) {
	var p params
	c := p.vec2(s.Center, "center")
	r := p.positive(s.Radius, "radius")
	n := p.count(s.Slices, geometry.DiscSlices, "slices")
	return func(m *mesh, col geometry.Rgba8, uv math.AABB2) {
		geometry.AddVertsForDiscSlices2D(&m.Vertices, c, r, col, n, uv)
	}, p.err
}

func prepareRing(s *Shape) (emitFunc, error) {
	var p params
	c := p.vec2(s.Center, "center")
	r := p.positive(s.Radius, "radius")
	t := p.positive(s.Thickness, "thickness")
	return func(m *mesh, col geometry.Rgba8, _ math.AABB2) {
		geometry.AddVertsForRing2D(&m.Vertices, c, r, t, col)
	}, p.err
}

func prepareSector(s *Shape) (emitFunc, error) {
	var p params
	tip := p.vec2(s.Center, "center")
	aperture := p.positive(s.Aperture, "aperture")
	r := p.positive(s.Radius, "radius")
	forward := s.Forward
	return func(m *mesh, col geometry.Rgba8, uv math.AABB2) {
		geometry.AddVertsForSector2D(&m.Vertices, tip, forward, aperture, r, col, uv)
	}, p.err
}

func prepareCapsule(s *Shape) (emitFunc, error) {
	var p params
	a := p.vec2(s.Start, "start")
	b := p.vec2(s.End, "end")
	p.distinct2(a, b, "bone")
	r := p.positive(s.Radius, "radius")
	return func(m *mesh, col geometry.Rgba8, _ math.AABB2) {
		geometry.AddVertsForCapsule2D(&m.Vertices, a, b, r, col)
	}, p.err
}

func prepareLine2D(s *Shape) (emitFunc, error) {
	var p params
	a := p.vec2(s.Start, "start")
	b := p.vec2(s.End, "end")
	p.distinct2(a, b, "line")
	t := p.positive(s.Thickness, "thickness")
	return func(m *mesh, col geometry.Rgba8, uv math.AABB2) {
		geometry.AddVertsForLineSegment2D(&m.Vertices, a, b, t, col, uv)
	}, p.err
}

func prepareArrow2D(s *Shape) (emitFunc, error) {
	var p params
	a := p.vec2(s.Start, "start")
	b := p.vec2(s.End, "end")
	p.distinct2(a, b, "arrow")
	size := p.positive(s.Size, "size")
	t := p.positive(s.Thickness, "thickness")
	return func(m *mesh, col geometry.Rgba8, _ math.AABB2) {
		geometry.AddVertsForArrow2D(&m.Vertices, a, b, size, t, col)
	}, p.err
}

func prepareAABB2(s *Shape) (emitFunc, error) {
	var p params
	box := math.AABB2{Mins: p.vec2(s.Mins, "mins"), Maxs: p.vec2(s.Maxs, "maxs")}
	return func(m *mesh, col geometry.Rgba8, uv math.AABB2) {
		geometry.AddVertsForAABB2D(&m.Vertices, box, col, uv)
	}, p.err
}

func prepareOBB2(s *Shape) (emitFunc, error) {
	var p params
	box := math.OBB2{
		Center:         p.vec2(s.Center, "center"),
		IBasis:         p.vec2(s.IBasis, "i_basis").Normalize(),
		HalfDimensions: p.vec2(s.HalfDims, "half_dims"),
	}
	if p.err == nil && box.IBasis == (math.Vec2{}) {
		p.fail(errors.New("i_basis must be non-zero"))
	}
	return func(m *mesh, col geometry.Rgba8, uv math.AABB2) {
		geometry.AddVertsForOBB2D(&m.Vertices, box, col, uv)
	}, p.err
}

func preparePoly(s *Shape) (emitFunc, error) {
	var p params
	if len(s.Points) < 3 {
		p.fail(errors.Errorf("points: want at least 3, got %d", len(s.Points)))
	}
	pts := make([]math.Vec2, len(s.Points))
	for i, v := range s.Points {
		pts[i] = p.vec2(v, "points")
	}
	return func(m *mesh, col geometry.Rgba8, _ math.AABB2) {
		geometry.AddVertsForConvexPoly2D(&m.Vertices, pts, col)
	}, p.err
}

// quadCorners reads bl, br, tr, tl from points.
func quadCorners(p *params, s *Shape) [4]math.Vec3 {
	var c [4]math.Vec3
	if len(s.Points) != 4 {
		p.fail(errors.Errorf("points: want bl, br, tr, tl, got %d points", len(s.Points)))
		return c
	}
	for i := range c {
		c[i] = p.vec3(s.Points[i], "points")
	}
	return c
}

func prepareQuad(s *Shape) (emitFunc, error) {
	var p params
	c := quadCorners(&p, s)
	indexed, wired, thickness := s.Indexed, s.Wired, s.Thickness
	return func(m *mesh, col geometry.Rgba8, uv math.AABB2) {
		switch {
		case wired:
			geometry.AddVertsForWiredQuad3D(&m.Vertices, c[0], c[1], c[2], c[3], col, thickness)
		case indexed:
			geometry.AddVertsForIndexedQuad3D(&m.Vertices, &m.Indices, c[0], c[1], c[2], c[3], col, uv)
		default:
			geometry.AddVertsForQuad3D(&m.Vertices, c[0], c[1], c[2], c[3], col, uv)
		}
	}, p.err
}

func prepareRoundedQuad(s *Shape) (emitFunc, error) {
	var p params
	c := quadCorners(&p, s)
	indexed := s.Indexed
	return func(m *mesh, col geometry.Rgba8, uv math.AABB2) {
		if indexed {
			geometry.AddVertsForIndexedRoundedQuad3D(&m.Vertices, &m.Indices, c[0], c[1], c[2], c[3], col, uv)
			return
		}
		geometry.AddVertsForRoundedQuad3D(&m.Vertices, c[0], c[1], c[2], c[3], col, uv)
	}, p.err
}

func prepareAABB3(s *Shape) (emitFunc, error) {
	var p params
	box := math.AABB3{Mins: p.vec3(s.Mins, "mins"), Maxs: p.vec3(s.Maxs, "maxs")}
	indexed, wired, thickness := s.Indexed, s.Wired, s.Thickness
	return func(m *mesh, col geometry.Rgba8, uv math.AABB2) {
		switch {
		case wired:
			geometry.AddVertsForWiredAABB3D(&m.Vertices, box, col, thickness)
		case indexed:
			geometry.AddVertsForIndexedAABB3D(&m.Vertices, &m.Indices, box, col, uv)
		default:
			geometry.AddVertsForAABB3D(&m.Vertices, box, col, uv)
		}
	}, p.err
}

func prepareOBB3(s *Shape) (emitFunc, error) {
	var p params
	center := p.vec3(s.Center, "center")
	i := p.vec3(s.IBasis, "i_basis").Normalize()
	j := p.vec3(s.JBasis, "j_basis").Normalize()
	half := p.vec3(s.HalfDims, "half_dims")
	if p.err == nil && math.Abs(i.Dot(j)) > 1e-3 {
		p.fail(errors.New("i_basis and j_basis must be perpendicular"))
	}
	box := math.NewOBB3(center, i, j, half)
	indexed, wired, thickness := s.Indexed, s.Wired, s.Thickness
	return func(m *mesh, col geometry.Rgba8, uv math.AABB2) {
		switch {
		case wired:
			geometry.AddVertsForWiredOBB3D(&m.Vertices, box, col, thickness)
		case indexed:
			geometry.AddVertsForIndexedOBB3D(&m.Vertices, &m.Indices, box, col, uv)
		default:
			geometry.AddVertsForOBB3D(&m.Vertices, box, col, uv)
		}
	}, p.err
}

func prepareSphere(s *Shape) (emitFunc, error) {
	var p params
	c := p.vec3(s.Center, "center")
	r := p.positive(s.Radius, "radius")
	lat := p.count(s.LatSlices, DefaultLatSlices, "lat_slices")
	lon := p.count(s.LonSlices, DefaultLonSlices, "lon_slices")
	indexed, wired, thickness := s.Indexed, s.Wired, s.Thickness
	return func(m *mesh, col geometry.Rgba8, uv math.AABB2) {
		switch {
		case wired:
			geometry.AddVertsForWiredSphere3D(&m.Vertices, c, r, col, lat, lon, thickness)
		case indexed:
			geometry.AddVertsForIndexedSphere3D(&m.Vertices, &m.Indices, c, r, col, lat, lon, uv)
		default:
			geometry.AddVertsForSphere3D(&m.Vertices, c, r, col, lat, lon, uv)
		}
	}, p.err
}

func prepareCylinder(s *Shape) (emitFunc, error) {
	var p params
	a := p.vec3(s.Start, "start")
	b := p.vec3(s.End, "end")
	p.distinct3(a, b, "axis")
	r := p.positive(s.Radius, "radius")
	n := p.count(s.Slices, DefaultSlices, "slices")
	indexed, wired, thickness := s.Indexed, s.Wired, s.Thickness
	return func(m *mesh, col geometry.Rgba8, uv math.AABB2) {
		switch {
		case wired:
			geometry.AddVertsForWiredCylinder3D(&m.Vertices, a, b, r, col, n, thickness)
		case indexed:
			geometry.AddVertsForIndexedCylinder3D(&m.Vertices, &m.Indices, a, b, r, col, n, uv)
		default:
			geometry.AddVertsForCylinder3D(&m.Vertices, a, b, r, col, n, uv)
		}
	}, p.err
}

func prepareCylinderZ(s *Shape) (emitFunc, error) {
	var p params
	c := p.vec2(s.Center, "center")
	if s.MaxZ <= s.MinZ {
		p.fail(errors.Errorf("max_z (%v) must exceed min_z (%v)", s.MaxZ, s.MinZ))
	}
	minZ, maxZ := s.MinZ, s.MaxZ
	r := p.positive(s.Radius, "radius")
	n := p.count(s.Slices, DefaultSlices, "slices")
	indexed, wired, thickness := s.Indexed, s.Wired, s.Thickness
	return func(m *mesh, col geometry.Rgba8, uv math.AABB2) {
		switch {
		case wired:
			start := math.Vec3{X: c.X, Y: c.Y, Z: minZ}
			end := math.Vec3{X: c.X, Y: c.Y, Z: maxZ}
			geometry.AddVertsForWiredCylinder3D(&m.Vertices, start, end, r, col, n, thickness)
		case indexed:
			geometry.AddVertsForIndexedCylinderZ3D(&m.Vertices, &m.Indices, c, minZ, maxZ, r, col, n, uv)
		default:
			geometry.AddVertsForCylinderZ3D(&m.Vertices, c, minZ, maxZ, r, col, n, uv)
		}
	}, p.err
}

func prepareCone(s *Shape) (emitFunc, error) {
	var p params
	a := p.vec3(s.Start, "start")
	b := p.vec3(s.End, "end")
	p.distinct3(a, b, "axis")
	r := p.positive(s.Radius, "radius")
	n := p.count(s.Slices, DefaultSlices, "slices")
	indexed, wired, thickness := s.Indexed, s.Wired, s.Thickness
	return func(m *mesh, col geometry.Rgba8, uv math.AABB2) {
		switch {
		case wired:
			geometry.AddVertsForWiredCone3D(&m.Vertices, a, b, r, col, n, thickness)
		case indexed:
			geometry.AddVertsForIndexedCone3D(&m.Vertices, &m.Indices, a, b, r, col, n, uv)
		default:
			geometry.AddVertsForCone3D(&m.Vertices, a, b, r, col, n, uv)
		}
	}, p.err
}

func prepareArrow3D(s *Shape) (emitFunc, error) {
	var p params
	a := p.vec3(s.Start, "start")
	b := p.vec3(s.End, "end")
	p.distinct3(a, b, "arrow")
	r := p.positive(s.Radius, "radius")
	n := p.count(s.Slices, DefaultSlices, "slices")
	indexed := s.Indexed
	return func(m *mesh, col geometry.Rgba8, _ math.AABB2) {
		if indexed {
			geometry.AddVertsForIndexedArrow3D(&m.Vertices, &m.Indices, a, b, r, col, n)
			return
		}
		geometry.AddVertsForArrow3D(&m.Vertices, a, b, r, col, n)
	}, p.err
}

func prepareLine3D(s *Shape) (emitFunc, error) {
	var p params
	a := p.vec3(s.Start, "start")
	b := p.vec3(s.End, "end")
	p.distinct3(a, b, "line")
	t := p.positive(s.Thickness, "thickness")
	indexed := s.Indexed
	return func(m *mesh, col geometry.Rgba8, _ math.AABB2) {
		if indexed {
			geometry.AddVertsForIndexedLineSegment3D(&m.Vertices, &m.Indices, a, b, t, col)
			return
		}
		geometry.AddVertsForLineSegment3D(&m.Vertices, a, b, t, col)
	}, p.err
}
