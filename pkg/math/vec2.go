// Package math provides math types and functions for game development.
package math

import "github.com/chewxy/math32"

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float32
}

// Vec2FromPolarDegrees returns the vector of the given length pointing at degrees.
func Vec2FromPolarDegrees(degrees, length float32) Vec2 {
	return Vec2{length * CosDegrees(degrees), length * SinDegrees(degrees)}
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Scale returns v * scalar.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Dot returns the dot product.
func (v Vec2) Dot(other Vec2) float32 {
	return v.X*other.X + v.Y*other.Y
}

// Length returns the magnitude.
func (v Vec2) Length() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns a unit vector.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Distance returns the distance to another point.
func (v Vec2) Distance(other Vec2) float32 {
	return v.Sub(other).Length()
}

// Rotated90 returns v rotated a quarter turn counter-clockwise.
func (v Vec2) Rotated90() Vec2 {
	return Vec2{-v.Y, v.X}
}

// RotatedDegrees returns v rotated counter-clockwise by degrees.
func (v Vec2) RotatedDegrees(degrees float32) Vec2 {
	c, s := CosDegrees(degrees), SinDegrees(degrees)
	return Vec2{v.X*c - v.Y*s, v.X*s + v.Y*c}
}

// OrientationDegrees returns the heading of v in degrees.
func (v Vec2) OrientationDegrees() float32 {
	return Atan2Degrees(v.Y, v.X)
}

// Lerp interpolates between v and other.
func (v Vec2) Lerp(other Vec2, t float32) Vec2 {
	return Vec2{Lerp(v.X, other.X, t), Lerp(v.Y, other.Y, t)}
}

// XY0 lifts v into 3D with z = 0.
func (v Vec2) XY0() Vec3 {
	return Vec3{v.X, v.Y, 0}
}
