package debug

import (
	"github.com/xuanchaix/CustomGameEngineWithGames-sub006/pkg/math"
)

// LineVertex is a colored endpoint of a GL_LINES overlay.
type LineVertex struct {
	X, Y, Z    float32
	R, G, B, A float32
}

// BoundsVertexCount is the number of vertices for a bounds wireframe (12 edges x 2).
const BoundsVertexCount = 24

// DefaultBoundsPadding is the padding applied around selection bounds.
const DefaultBoundsPadding = 0.05

// boundsEdges lists corner pairs of math.AABB3.Corners that share an edge.
var boundsEdges = [12][2]int{
	{0, 1}, {1, 3}, {3, 2}, {2, 0}, // bottom
	{4, 5}, {5, 7}, {7, 6}, {6, 4}, // top
	{0, 4}, {1, 5}, {2, 6}, {3, 7}, // verticals
}

// BoundsLines returns line vertices outlining box grown by padding on every side.
func BoundsLines(box math.AABB3, padding float32, color [4]float32) []LineVertex {
	pad := math.Vec3{X: padding, Y: padding, Z: padding}
	box = math.AABB3{Mins: box.Mins.Sub(pad), Maxs: box.Maxs.Add(pad)}
	corners := box.Corners()

	out := make([]LineVertex, 0, BoundsVertexCount)
	for _, e := range boundsEdges {
		out = append(out, lineVertex(corners[e[0]], color), lineVertex(corners[e[1]], color))
	}
	return out
}

// GridLines returns a square grid on the XY plane centered on the origin.
// The X and Y axis lines are tinted red and green.
func GridLines(halfCells int, spacing float32) []LineVertex {
	if halfCells <= 0 || spacing <= 0 {
		return nil
	}
	grid := [4]float32{0.35, 0.35, 0.35, 1}
	xAxis := [4]float32{0.8, 0.2, 0.2, 1}
	yAxis := [4]float32{0.2, 0.8, 0.2, 1}
	extent := float32(halfCells) * spacing

	out := make([]LineVertex, 0, 4*(2*halfCells+1))
	for i := -halfCells; i <= halfCells; i++ {
		d := float32(i) * spacing
		cx, cy := grid, grid
		if i == 0 {
			cx, cy = yAxis, xAxis
		}
		// line of constant X, then constant Y
		out = append(out,
			lineVertex(math.Vec3{X: d, Y: -extent}, cx), lineVertex(math.Vec3{X: d, Y: extent}, cx),
			lineVertex(math.Vec3{X: -extent, Y: d}, cy), lineVertex(math.Vec3{X: extent, Y: d}, cy),
		)
	}
	return out
}

func lineVertex(p math.Vec3, c [4]float32) LineVertex {
	return LineVertex{X: p.X, Y: p.Y, Z: p.Z, R: c[0], G: c[1], B: c[2], A: c[3]}
}
