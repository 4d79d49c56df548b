package geometry

// Rgba8 is an 8-bit-per-channel color.
type Rgba8 struct {
	R, G, B, A uint8
}

// Preset colors.
var (
	White   = Rgba8{255, 255, 255, 255}
	Black   = Rgba8{0, 0, 0, 255}
	Red     = Rgba8{255, 0, 0, 255}
	Green   = Rgba8{0, 255, 0, 255}
	Blue    = Rgba8{0, 0, 255, 255}
	Yellow  = Rgba8{255, 255, 0, 255}
	Cyan    = Rgba8{0, 255, 255, 255}
	Magenta = Rgba8{255, 0, 255, 255}
	Gray    = Rgba8{128, 128, 128, 255}
)

// Floats returns the color as normalized float components.
func (c Rgba8) Floats() [4]float32 {
	return [4]float32{
		float32(c.R) / 255.0,
		float32(c.G) / 255.0,
		float32(c.B) / 255.0,
		float32(c.A) / 255.0,
	}
}

// Array returns the raw channels, the layout glTF COLOR_0 expects.
func (c Rgba8) Array() [4]uint8 {
	return [4]uint8{c.R, c.G, c.B, c.A}
}
