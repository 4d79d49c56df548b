package preview

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xuanchaix/CustomGameEngineWithGames-sub006/pkg/geometry"
	"github.com/xuanchaix/CustomGameEngineWithGames-sub006/pkg/math"
)

type mesh = geometry.Mesh[geometry.VertexPCUTBN]

func square(c geometry.Rgba8, z float32) *mesh {
	m := &mesh{}
	geometry.AddVertsForAABB2D(&m.Vertices, math.AABB2{Maxs: math.Vec2{X: 2, Y: 2}}, c)
	geometry.TransformVertexArray3D(m.Vertices, math.Translate(0, 0, z))
	return m
}

func testOptions() Options {
	opts := DefaultOptions()
	opts.Width, opts.Height = 64, 64
	opts.Shade = false
	return opts
}

func TestRenderEmpty(t *testing.T) {
	opts := testOptions()
	img := Render(nil, opts)
	assert.Equal(t, opts.Background, img.RGBAAt(32, 32))
}

func TestRenderFitsBounds(t *testing.T) {
	opts := testOptions()
	img := Render([]*mesh{square(geometry.Red, 0)}, opts)

	assert.Equal(t, color.RGBA{R: 255, A: 255}, img.RGBAAt(32, 32))
	assert.Equal(t, color.RGBA{R: 255, A: 255}, img.RGBAAt(opts.Margin+1, opts.Margin+1))
	assert.Equal(t, opts.Background, img.RGBAAt(2, 2))
	assert.Equal(t, opts.Background, img.RGBAAt(61, 61))
}

func TestRenderSharedEdgesHaveNoSeam(t *testing.T) {
	opts := testOptions()
	img := Render([]*mesh{square(geometry.Red, 0)}, opts)

	// these pixels sit on the diagonal shared by the square's two triangles
	for _, p := range [][2]int{{20, 20}, {32, 32}, {40, 40}, {24, 30}} {
		assert.Equal(t, color.RGBA{R: 255, A: 255}, img.RGBAAt(p[0], p[1]), "pixel %v", p)
	}

	disc := &mesh{}
	geometry.AddVertsForDisc2D(&disc.Vertices, math.Vec2{}, 1, geometry.Green)
	img = Render([]*mesh{disc}, opts)
	for _, p := range [][2]int{{32, 32}, {36, 29}, {28, 36}, {40, 32}} {
		assert.Equal(t, color.RGBA{G: 255, A: 255}, img.RGBAAt(p[0], p[1]), "pixel %v", p)
	}
}

func TestRenderPaintsNearestLast(t *testing.T) {
	opts := testOptions()
	img := Render([]*mesh{square(geometry.Red, 1), square(geometry.Blue, 0)}, opts)
	assert.Equal(t, color.RGBA{R: 255, A: 255}, img.RGBAAt(32, 32))

	opts.View = ViewSide
	side := Render([]*mesh{square(geometry.Red, 1), square(geometry.Blue, 0)}, opts)
	// seen edge-on the squares collapse to lines, so the center stays clear
	assert.Equal(t, opts.Background, side.RGBAAt(32, 20))
}

func TestRenderShading(t *testing.T) {
	opts := testOptions()
	opts.Shade = true
	img := Render([]*mesh{square(geometry.White, 0)}, opts)
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, img.RGBAAt(32, 32))

	// a face pointing down is drawn at the ambient floor
	down := square(geometry.White, 0)
	geometry.TransformVertexArray3D(down.Vertices, math.RotateX(180))
	img = Render([]*mesh{down}, opts)
	got := img.RGBAAt(32, 32)
	assert.Less(t, got.R, uint8(100))
	assert.Equal(t, got.R, got.G)
}

func TestParseView(t *testing.T) {
	tests := []struct {
		name    string
		want    View
		wantErr bool
	}{
		{"", ViewTop, false},
		{"top", ViewTop, false},
		{"side", ViewSide, false},
		{"front", ViewFront, false},
		{"iso", ViewTop, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseView(tt.name)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "preview.png")
	require.NoError(t, Save(path, []*mesh{square(geometry.Green, 0)}, testOptions()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
}
