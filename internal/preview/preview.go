// Package preview rasterizes generated meshes into flat-shaded PNG thumbnails
// without a GPU context.
package preview

import (
	"image"
	"image/color"
	"image/draw"
	"sort"

	"github.com/pkg/errors"
	"golang.org/x/image/vector"

	"github.com/xuanchaix/CustomGameEngineWithGames-sub006/internal/engine/debug"
	"github.com/xuanchaix/CustomGameEngineWithGames-sub006/pkg/geometry"
	"github.com/xuanchaix/CustomGameEngineWithGames-sub006/pkg/math"
)

// View selects the orthographic projection.
type View int

const (
	// ViewTop looks down -Z: X right, Y up.
	ViewTop View = iota
	// ViewSide looks along +Y: X right, Z up.
	ViewSide
	// ViewFront looks along -X: Y left, Z up.
	ViewFront
)

// ParseView maps a view name to a View.
func ParseView(name string) (View, error) {
	switch name {
	case "", "top":
		return ViewTop, nil
	case "side":
		return ViewSide, nil
	case "front":
		return ViewFront, nil
	}
	return ViewTop, errors.Errorf("unknown view %q", name)
}

// Options configures Render.
type Options struct {
	Width, Height int
	Margin        int
	View          View
	Background    color.RGBA
	// Shade darkens triangles facing away from the viewer.
	Shade bool
}

// DefaultOptions returns a 512x512 top view on a dark background.
func DefaultOptions() Options {
	return Options{
		Width:      512,
		Height:     512,
		Margin:     16,
		View:       ViewTop,
		Background: color.RGBA{R: 24, G: 24, B: 28, A: 255},
		Shade:      true,
	}
}

// triangle is a projected triangle ready to fill.
type triangle struct {
	pts   [3]math.Vec2
	depth float32
	fill  color.NRGBA
}

// Render projects every triangle of the meshes and fills them back to front,
// fitting the combined bounds into the image with a uniform scale. Runs of
// equally colored triangles are filled as one path.
func Render(meshes []*geometry.Mesh[geometry.VertexPCUTBN], opts Options) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	var tris []triangle
	var projected []geometry.VertexPCU
	for _, m := range meshes {
		flat := m.Flatten()
		for i := 0; i+2 < len(flat); i += 3 {
			tri := opts.project(flat[i : i+3])
			tris = append(tris, tri)
			for _, p := range tri.pts {
				projected = append(projected, geometry.VertexPCU{Position: p.XY0()})
			}
		}
	}
	if len(tris) == 0 {
		return dst
	}

	sort.SliceStable(tris, func(a, b int) bool { return tris[a].depth < tris[b].depth })

	fit := opts.fit(geometry.GetVertexBounds2D(projected))
	z := vector.NewRasterizer(opts.Width, opts.Height)
	for start := 0; start < len(tris); {
		// consecutive triangles of one fill share a single path so that
		// their common edges get full coverage instead of two partial passes
		end := start + 1
		for end < len(tris) && tris[end].fill == tris[start].fill {
			end++
		}

		z.Reset(opts.Width, opts.Height)
		for _, tri := range tris[start:end] {
			a, b, c := fit(tri.pts[0]), fit(tri.pts[1]), fit(tri.pts[2])
			if cross2(b.Sub(a), c.Sub(a)) < 0 {
				b, c = c, b
			}
			z.MoveTo(a.X, a.Y)
			z.LineTo(b.X, b.Y)
			z.LineTo(c.X, c.Y)
			z.ClosePath()
		}
		z.Draw(dst, dst.Bounds(), image.NewUniform(tris[start].fill), image.Point{})
		start = end
	}
	return dst
}

// cross2 returns the z component of the cross product of a and b.
func cross2(a, b math.Vec2) float32 {
	return a.X*b.Y - a.Y*b.X
}

// Save renders the meshes and writes them to path as PNG.
func Save(path string, meshes []*geometry.Mesh[geometry.VertexPCUTBN], opts Options) error {
	return debug.WritePNG(path, Render(meshes, opts))
}

// project maps a triangle onto the view plane. Larger depth is nearer the viewer.
func (o Options) project(v []geometry.VertexPCUTBN) triangle {
	var tri triangle
	for i := range tri.pts {
		p := v[i].Position
		switch o.View {
		case ViewSide:
			tri.pts[i] = math.Vec2{X: p.X, Y: p.Z}
			tri.depth -= p.Y
		case ViewFront:
			tri.pts[i] = math.Vec2{X: -p.Y, Y: p.Z}
			tri.depth += p.X
		default:
			tri.pts[i] = math.Vec2{X: p.X, Y: p.Y}
			tri.depth += p.Z
		}
	}
	facing := o.viewDir().Dot(v[0].Normal)

	c := v[0].Color
	tri.fill = color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
	if o.Shade {
		tri.fill = shade(tri.fill, facing)
	}
	return tri
}

// viewDir points from the scene toward the viewer.
func (o Options) viewDir() math.Vec3 {
	switch o.View {
	case ViewSide:
		return math.Vec3{Y: -1}
	case ViewFront:
		return math.Vec3{X: 1}
	}
	return math.Vec3{Z: 1}
}

// fit returns a mapping from view-plane coordinates to pixel coordinates.
func (o Options) fit(bounds math.AABB2) func(math.Vec2) math.Vec2 {
	dims := bounds.Dimensions()
	availW := float32(o.Width - 2*o.Margin)
	availH := float32(o.Height - 2*o.Margin)

	scale := float32(1)
	switch {
	case dims.X > 0 && dims.Y > 0:
		scale = min(availW/dims.X, availH/dims.Y)
	case dims.X > 0:
		scale = availW / dims.X
	case dims.Y > 0:
		scale = availH / dims.Y
	}

	center := bounds.Center()
	cx, cy := float32(o.Width)/2, float32(o.Height)/2
	return func(p math.Vec2) math.Vec2 {
		// image rows grow downward
		return math.Vec2{
			X: cx + (p.X-center.X)*scale,
			Y: cy - (p.Y-center.Y)*scale,
		}
	}
}

// shade scales the color by a lambert term with an ambient floor.
func shade(c color.NRGBA, facing float32) color.NRGBA {
	k := 0.35 + 0.65*max(facing, 0)
	return color.NRGBA{
		R: uint8(float32(c.R) * k),
		G: uint8(float32(c.G) * k),
		B: uint8(float32(c.B) * k),
		A: c.A,
	}
}
