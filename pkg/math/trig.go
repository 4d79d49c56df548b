package math

import "github.com/chewxy/math32"

// DegreesToRadians converts an angle in degrees to radians.
func DegreesToRadians(degrees float32) float32 {
	return degrees * (math32.Pi / 180)
}

// RadiansToDegrees converts an angle in radians to degrees.
func RadiansToDegrees(radians float32) float32 {
	return radians * (180 / math32.Pi)
}

// CosDegrees returns the cosine of an angle given in degrees.
func CosDegrees(degrees float32) float32 {
	return math32.Cos(DegreesToRadians(degrees))
}

// SinDegrees returns the sine of an angle given in degrees.
func SinDegrees(degrees float32) float32 {
	return math32.Sin(DegreesToRadians(degrees))
}

// Atan2Degrees returns atan2(y, x) in degrees.
func Atan2Degrees(y, x float32) float32 {
	return RadiansToDegrees(math32.Atan2(y, x))
}

// Lerp interpolates between a and b.
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// RangeMap maps v from [inStart, inEnd] into [outStart, outEnd] without clamping.
func RangeMap(v, inStart, inEnd, outStart, outEnd float32) float32 {
	return outStart + (v-inStart)/(inEnd-inStart)*(outEnd-outStart)
}

// Abs returns |v|.
func Abs(v float32) float32 {
	return math32.Abs(v)
}
