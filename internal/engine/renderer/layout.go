package renderer

import (
	"github.com/xuanchaix/CustomGameEngineWithGames-sub006/internal/engine/debug"
	"github.com/xuanchaix/CustomGameEngineWithGames-sub006/pkg/geometry"
)

// Interleaved layout of a packed VertexPCUTBN, in float32 components:
// position 3, color 4, uv 2, tangent 3, bitangent 3, normal 3.
const (
	VertexFloats = 18
	VertexStride = VertexFloats * 4

	offsetPosition  = 0
	offsetColor     = 3
	offsetUV        = 7
	offsetTangent   = 9
	offsetBitangent = 12
	offsetNormal    = 15
)

// Line overlays pack position 3 and color 4.
const (
	LineFloats = 7
	LineStride = LineFloats * 4
)

// PackVertices interleaves verts into the GPU layout with normalized colors.
func PackVertices(verts []geometry.VertexPCUTBN) []float32 {
	out := make([]float32, 0, len(verts)*VertexFloats)
	for _, v := range verts {
		c := v.Color.Floats()
		out = append(out,
			v.Position.X, v.Position.Y, v.Position.Z,
			c[0], c[1], c[2], c[3],
			v.UV.X, v.UV.Y,
			v.Tangent.X, v.Tangent.Y, v.Tangent.Z,
			v.Bitangent.X, v.Bitangent.Y, v.Bitangent.Z,
			v.Normal.X, v.Normal.Y, v.Normal.Z,
		)
	}
	return out
}

// PackLines interleaves overlay vertices into the line layout.
func PackLines(lines []debug.LineVertex) []float32 {
	out := make([]float32, 0, len(lines)*LineFloats)
	for _, l := range lines {
		out = append(out, l.X, l.Y, l.Z, l.R, l.G, l.B, l.A)
	}
	return out
}
