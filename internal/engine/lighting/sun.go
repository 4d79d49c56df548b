// Package lighting provides the directional light used for lit mesh previews.
package lighting

import (
	"github.com/chewxy/math32"
)

// Sun is a directional light with an ambient term, laid out for uniform upload.
type Sun struct {
	Direction [3]float32 // unit vector pointing towards the light
	Color     [3]float32
	Ambient   [3]float32
}

// SunDirection converts azimuth and elevation angles to a light direction.
// Azimuth rotates around +Z starting at +X, elevation is measured from the
// XY plane. Both are in degrees. The result points towards the sun.
func SunDirection(azimuth, elevation float32) [3]float32 {
	az := azimuth * math32.Pi / 180
	el := elevation * math32.Pi / 180
	return [3]float32{
		math32.Cos(el) * math32.Cos(az),
		math32.Cos(el) * math32.Sin(az),
		math32.Sin(el),
	}
}

// DefaultSun lights the scene from the front-left and above, so the three
// visible faces of a box seen from the default camera get distinct shades.
func DefaultSun() Sun {
	return Sun{
		Direction: SunDirection(-150, 50),
		Color:     [3]float32{0.85, 0.85, 0.8},
		Ambient:   [3]float32{0.25, 0.25, 0.3},
	}
}

// Lambert returns the lit intensity of a surface with the given normal,
// the same term the lit shader evaluates per fragment.
func (s Sun) Lambert(normal [3]float32) [3]float32 {
	d := normal[0]*s.Direction[0] + normal[1]*s.Direction[1] + normal[2]*s.Direction[2]
	d = max(d, 0)
	return [3]float32{
		min(s.Ambient[0]+s.Color[0]*d, 1),
		min(s.Ambient[1]+s.Color[1]*d, 1),
		min(s.Ambient[2]+s.Color[2]*d, 1),
	}
}
