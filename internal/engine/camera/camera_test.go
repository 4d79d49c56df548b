package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/xuanchaix/CustomGameEngineWithGames-sub006/pkg/math"
)

const eps = 1e-4

func assertVecNear(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], eps, "component %d of %v", i, got)
	}
}

func TestPositionZUp(t *testing.T) {
	c := NewOrbitCamera()
	c.Target = mgl32.Vec3{1, 0, 0}
	c.Distance = 5

	c.Yaw, c.Pitch = 0, 0
	assertVecNear(t, mgl32.Vec3{6, 0, 0}, c.Position())

	c.Yaw = 90
	assertVecNear(t, mgl32.Vec3{1, 5, 0}, c.Position())

	c.Pitch = 89.999
	assert.InDelta(t, 5, c.Position().Z(), eps)
}

func TestViewMatrixLooksAtTarget(t *testing.T) {
	c := NewOrbitCamera()
	c.Target = mgl32.Vec3{2, -3, 1}
	c.Distance = 7

	got := c.ViewMatrix().Mul4x1(c.Target.Vec4(1))
	assertVecNear(t, mgl32.Vec3{0, 0, -7}, got.Vec3())
}

func TestProjectionMatrix(t *testing.T) {
	c := NewOrbitCamera()
	c.FOV = 60
	m := c.ProjectionMatrix(2)

	f := float32(1.7320508) // 1/tan(30)
	assert.InDelta(t, f, m.At(1, 1), eps)
	assert.InDelta(t, f/2, m.At(0, 0), eps)
}

func TestHandleDrag(t *testing.T) {
	c := NewOrbitCamera()
	c.Yaw, c.Pitch = 0, 0

	c.HandleDrag(10, 0)
	assert.InDelta(t, -3, c.Yaw, eps)

	c.HandleDrag(0, 1000)
	assert.Equal(t, c.MaxPitch, c.Pitch)
	c.HandleDrag(0, -5000)
	assert.Equal(t, c.MinPitch, c.Pitch)

	c.Yaw = 170
	c.HandleDrag(-50, 0)
	assert.InDelta(t, -175, c.Yaw, eps)
}

func TestHandleZoom(t *testing.T) {
	c := NewOrbitCamera()
	c.Distance = 8

	c.HandleZoom(1)
	assert.InDelta(t, 8/1.1, c.Distance, eps)
	c.HandleZoom(-1)
	assert.InDelta(t, 8, c.Distance, eps)

	c.HandleZoom(1000)
	assert.Equal(t, c.MinDistance, c.Distance)
	c.HandleZoom(-1000)
	assert.Equal(t, c.MaxDistance, c.Distance)
}

func TestFitToBounds(t *testing.T) {
	c := NewOrbitCamera()
	c.FOV = 60
	c.FitToBounds(math.AABB3{
		Mins: math.Vec3{X: -1, Y: -1, Z: 0},
		Maxs: math.Vec3{X: 1, Y: 1, Z: 2},
	})

	assertVecNear(t, mgl32.Vec3{0, 0, 1}, c.Target)
	// radius sqrt(3) over sin(30)
	assert.InDelta(t, 2*1.7320508, c.Distance, eps)

	c.FitToBounds(math.AABB3{})
	assertVecNear(t, mgl32.Vec3{}, c.Target)
	assert.InDelta(t, 2, c.Distance, eps)
}
