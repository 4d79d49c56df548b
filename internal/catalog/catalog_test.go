package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xuanchaix/CustomGameEngineWithGames-sub006/pkg/geometry"
	"github.com/xuanchaix/CustomGameEngineWithGames-sub006/pkg/math"
)

func TestLoadShowcase(t *testing.T) {
	c, err := Load(filepath.Join("testdata", "shapes.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "showcase", c.Name)
	require.Len(t, c.Shapes, 6)

	items, err := c.Build()
	require.NoError(t, err)
	require.Len(t, items, 6)

	byName := make(map[string]Item)
	for _, it := range items {
		byName[it.Name] = it
	}

	floor := byName["floor"].Mesh
	assert.Len(t, floor.Vertices, 6)
	assert.False(t, floor.Indexed())
	assert.Equal(t, geometry.Gray, floor.Vertices[0].Color)

	marker := byName["marker"].Mesh
	assert.Len(t, marker.Vertices, 3*geometry.DiscSlices)
	assert.Equal(t, geometry.Rgba8{R: 255, G: 128, A: 255}, marker.Vertices[0].Color)
	assert.Equal(t, math.Vec3{X: 2, Y: 1}, marker.Vertices[0].Position)

	ball := byName["ball"].Mesh
	assert.True(t, ball.Indexed())
	assert.Len(t, ball.Vertices, 9*17)
	for _, v := range ball.Vertices[17 : len(ball.Vertices)-17] {
		assert.InDelta(t, 1, v.Normal.Length(), 1e-4)
		assert.InDelta(t, 0, v.Normal.Dot(v.Tangent), 1e-4)
	}

	crate := byName["crate"].Mesh
	require.Len(t, crate.Vertices, 36)
	assert.Equal(t, math.Vec2{X: 0.5, Y: 0.5}, crate.Vertices[2].UV)
	center := geometry.GetVertexBounds2D(crate.Vertices).Center()
	assert.InDelta(t, 3, center.X, 1e-4)
	assert.InDelta(t, 0, center.Y, 1e-4)

	assert.Len(t, byName["crate_outline"].Mesh.Vertices, 12*geometry.LineSlices*12)
	assert.Len(t, byName["pointer"].Mesh.Vertices, 8*12+8*6)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"empty", "name: x\n", "no shapes"},
		{"bad yaml", "shapes: [", "decoding yaml"},
		{"unknown kind", "shapes:\n  - kind: torus\n", `unknown kind "torus"`},
		{"missing radius", "shapes:\n  - kind: disc\n    center: [0, 0]\n", "radius must be positive"},
		{"short vector", "shapes:\n  - kind: disc\n    center: [0]\n    radius: 1\n", "center: want 2 components"},
		{"indexed 2d", "shapes:\n  - kind: disc\n    center: [0, 0]\n    radius: 1\n    indexed: true\n", "no indexed form"},
		{"wired arrow", "shapes:\n  - kind: arrow3d\n    start: [0, 0, 0]\n    end: [1, 0, 0]\n    radius: 1\n    wired: true\n", "no wired form"},
		{"degenerate axis", "shapes:\n  - kind: cylinder\n    start: [1, 1, 1]\n    end: [1, 1, 1]\n    radius: 1\n", "coincide"},
		{"bad color", "shapes:\n  - kind: aabb2\n    mins: [0, 0]\n    maxs: [1, 1]\n    color: mauve\n", `unknown color "mauve"`},
		{"few points", "shapes:\n  - kind: poly\n    points: [[0, 0], [1, 0]]\n", "at least 3"},
		{"duplicate", "shapes:\n  - {name: a, kind: aabb2, mins: [0, 0], maxs: [1, 1]}\n  - {name: a, kind: aabb2, mins: [0, 0], maxs: [1, 1]}\n", "duplicate shape name"},
		{"bad translate", "shapes:\n  - kind: aabb2\n    mins: [0, 0]\n    maxs: [1, 1]\n    transform: {translate: [1]}\n", "transform.translate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(errors.Cause(err)))
}

func TestDefaultNames(t *testing.T) {
	c, err := Parse([]byte("shapes:\n  - kind: aabb2\n    mins: [0, 0]\n    maxs: [1, 1]\n  - kind: disc\n    center: [0, 0]\n    radius: 1\n"))
	require.NoError(t, err)
	assert.Equal(t, "aabb2_0", c.Shapes[0].Name)
	assert.Equal(t, "disc_1", c.Shapes[1].Name)
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want geometry.Rgba8
	}{
		{"", geometry.White},
		{"Red", geometry.Red},
		{"#102030", geometry.Rgba8{R: 0x10, G: 0x20, B: 0x30, A: 255}},
		{"#10203040", geometry.Rgba8{R: 0x10, G: 0x20, B: 0x30, A: 0x40}},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, bad := range []string{"#12", "#zzzzzz", "102030"} {
		_, err := ParseColor(bad)
		assert.Error(t, err, bad)
	}
}

func TestEveryKindBuilds(t *testing.T) {
	samples := map[Kind]Shape{
		KindDisc:        {Center: []float32{0, 0}, Radius: 1},
		KindRing:        {Center: []float32{0, 0}, Radius: 1, Thickness: 0.1},
		KindSector:      {Center: []float32{0, 0}, Forward: 90, Aperture: 45, Radius: 1},
		KindCapsule:     {Start: []float32{0, 0}, End: []float32{1, 0}, Radius: 0.2},
		KindLine2D:      {Start: []float32{0, 0}, End: []float32{1, 0}, Thickness: 0.1},
		KindArrow2D:     {Start: []float32{0, 0}, End: []float32{1, 0}, Size: 0.2, Thickness: 0.05},
		KindAABB2:       {Mins: []float32{0, 0}, Maxs: []float32{1, 1}},
		KindOBB2:        {Center: []float32{0, 0}, IBasis: []float32{1, 1}, HalfDims: []float32{1, 2}},
		KindPoly:        {Points: [][]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}},
		KindQuad:        {Points: [][]float32{{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1}}},
		KindRoundedQuad: {Points: [][]float32{{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1}}},
		KindAABB3:       {Mins: []float32{0, 0, 0}, Maxs: []float32{1, 1, 1}},
		KindOBB3:        {Center: []float32{0, 0, 0}, IBasis: []float32{1, 0, 0}, JBasis: []float32{0, 1, 0}, HalfDims: []float32{1, 1, 1}},
		KindSphere:      {Center: []float32{0, 0, 0}, Radius: 1},
		KindCylinder:    {Start: []float32{0, 0, 0}, End: []float32{0, 0, 1}, Radius: 0.5},
		KindCylinderZ:   {Center: []float32{0, 0}, MinZ: 0, MaxZ: 2, Radius: 0.5},
		KindCone:        {Start: []float32{0, 0, 0}, End: []float32{0, 0, 1}, Radius: 0.5},
		KindArrow3D:     {Start: []float32{0, 0, 0}, End: []float32{1, 0, 0}, Radius: 0.1},
		KindLine3D:      {Start: []float32{0, 0, 0}, End: []float32{1, 0, 0}, Thickness: 0.1},
	}

	require.Len(t, Kinds(), len(samples))
	for _, info := range Kinds() {
		s, ok := samples[info.Kind]
		require.True(t, ok, "no sample for %s", info.Kind)
		s.Kind = info.Kind
		s.Name = string(info.Kind)

		t.Run(string(info.Kind), func(t *testing.T) {
			m, err := s.Build()
			require.NoError(t, err)
			assert.NotEmpty(t, m.Vertices)
			assert.Zero(t, m.TriangleCount()*3-len(m.Flatten()))

			if info.Indexed {
				s.Indexed = true
				im, err := s.Build()
				require.NoError(t, err)
				assert.True(t, im.Indexed())
				assert.Zero(t, len(im.Indices)%3)
				s.Indexed = false
			}
			if info.Wired {
				s.Wired = true
				wm, err := s.Build()
				require.NoError(t, err)
				assert.NotEmpty(t, wm.Vertices)
			}
		})
	}
}

func TestTangentsOnUnindexed(t *testing.T) {
	s := Shape{Name: "q", Kind: KindQuad, Tangents: true, Points: [][]float32{{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1}}}
	m, err := s.Build()
	require.NoError(t, err)
	require.Len(t, m.Vertices, 6)
	for _, v := range m.Vertices {
		assert.InDelta(t, -1, v.Normal.Y, 1e-5)
		assert.InDelta(t, 1, v.Tangent.X, 1e-5)
	}
}

func TestTransformMatrix(t *testing.T) {
	tr := Transform{Scale: 2, Yaw: 90, Translate: []float32{1, 2, 3}}
	p := tr.Matrix().TransformVec3(math.Vec3{X: 1})
	assert.InDelta(t, 1, p.X, 1e-5)
	assert.InDelta(t, 4, p.Y, 1e-5)
	assert.InDelta(t, 3, p.Z, 1e-5)
}
