// Package camera provides the orbit camera used by the mesh viewer.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/xuanchaix/CustomGameEngineWithGames-sub006/pkg/math"
)

// OrbitCamera orbits a target point in a Z-up world. Yaw is measured around +Z
// from +X, pitch is the elevation above the XY plane. Both are in degrees.
type OrbitCamera struct {
	Target   mgl32.Vec3
	Distance float32
	Yaw      float32
	Pitch    float32
	FOV      float32 // vertical field of view, degrees

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32 // degrees per pixel
	ZoomStep        float32 // distance factor per wheel notch
}

// NewOrbitCamera creates an orbit camera looking at the origin from the
// front-left, slightly above.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Distance:        8,
		Yaw:             -135,
		Pitch:           30,
		FOV:             60,
		MinDistance:     0.1,
		MaxDistance:     1000,
		MinPitch:        -89,
		MaxPitch:        89,
		DragSensitivity: 0.3,
		ZoomStep:        1.1,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() mgl32.Vec3 {
	yaw := mgl32.DegToRad(c.Yaw)
	pitch := mgl32.DegToRad(c.Pitch)
	offset := mgl32.Vec3{
		math32.Cos(pitch) * math32.Cos(yaw),
		math32.Cos(pitch) * math32.Sin(yaw),
		math32.Sin(pitch),
	}
	return c.Target.Add(offset.Mul(c.Distance))
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position(), c.Target, mgl32.Vec3{0, 0, 1})
}

// ProjectionMatrix returns a perspective projection for the given aspect
// ratio. The clip planes follow the orbit distance.
func (c *OrbitCamera) ProjectionMatrix(aspect float32) mgl32.Mat4 {
	near := max(c.Distance*0.01, 0.001)
	far := c.Distance * 100
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), aspect, near, far)
}

// HandleDrag orbits by a mouse drag delta in pixels. Dragging right spins
// the scene right; dragging down raises the camera.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.Yaw -= deltaX * c.DragSensitivity
	c.Pitch = mgl32.Clamp(c.Pitch+deltaY*c.DragSensitivity, c.MinPitch, c.MaxPitch)

	// keep yaw bounded so long sessions do not lose precision
	if c.Yaw > 180 {
		c.Yaw -= 360
	} else if c.Yaw < -180 {
		c.Yaw += 360
	}
}

// HandleZoom scales the distance by ZoomStep per notch; positive notches zoom in.
func (c *OrbitCamera) HandleZoom(notches float32) {
	c.Distance = mgl32.Clamp(c.Distance/math32.Pow(c.ZoomStep, notches), c.MinDistance, c.MaxDistance)
}

// FitToBounds centers the camera on box and backs off until the bounding
// sphere fills the vertical field of view.
func (c *OrbitCamera) FitToBounds(box math.AABB3) {
	center := box.Center()
	c.Target = mgl32.Vec3{center.X, center.Y, center.Z}

	radius := box.Maxs.Sub(box.Mins).Length() * 0.5
	if radius <= 0 {
		radius = 1
	}
	dist := radius / math32.Sin(mgl32.DegToRad(c.FOV)*0.5)
	c.Distance = mgl32.Clamp(dist, c.MinDistance, c.MaxDistance)
}
