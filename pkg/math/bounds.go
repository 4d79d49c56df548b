package math

// AABB2 is an axis-aligned rectangle. It doubles as a UV rect.
type AABB2 struct {
	Mins, Maxs Vec2
}

// UnitAABB2 is the [0,1]x[0,1] rect, the default UV mapping.
var UnitAABB2 = AABB2{Maxs: Vec2{1, 1}}

// Center returns the midpoint of the rect.
func (b AABB2) Center() Vec2 {
	return b.Mins.Add(b.Maxs).Scale(0.5)
}

// Dimensions returns the width and height of the rect.
func (b AABB2) Dimensions() Vec2 {
	return b.Maxs.Sub(b.Mins)
}

// PointAtUV returns the point at normalized coordinates uv inside the rect.
func (b AABB2) PointAtUV(uv Vec2) Vec2 {
	return Vec2{Lerp(b.Mins.X, b.Maxs.X, uv.X), Lerp(b.Mins.Y, b.Maxs.Y, uv.Y)}
}

// AABB3 is an axis-aligned box.
type AABB3 struct {
	Mins, Maxs Vec3
}

// Center returns the midpoint of the box.
func (b AABB3) Center() Vec3 {
	return b.Mins.Add(b.Maxs).Scale(0.5)
}

// Corners returns the 8 corners. Bit 0 of the index selects max X,
// bit 1 max Y, bit 2 max Z.
func (b AABB3) Corners() [8]Vec3 {
	var c [8]Vec3
	for i := range c {
		c[i] = Vec3{b.Mins.X, b.Mins.Y, b.Mins.Z}
		if i&1 != 0 {
			c[i].X = b.Maxs.X
		}
		if i&2 != 0 {
			c[i].Y = b.Maxs.Y
		}
		if i&4 != 0 {
			c[i].Z = b.Maxs.Z
		}
	}
	return c
}

// OBB2 is an oriented rectangle. IBasis must be unit length; the J basis is
// IBasis rotated 90 degrees counter-clockwise.
type OBB2 struct {
	Center         Vec2
	IBasis         Vec2
	HalfDimensions Vec2
}

// JBasis returns the second axis of the box.
func (b OBB2) JBasis() Vec2 {
	return b.IBasis.Rotated90()
}

// Corners returns the corners in bottom-left, bottom-right, top-left,
// top-right order relative to the box's own axes.
func (b OBB2) Corners() [4]Vec2 {
	i := b.IBasis.Scale(b.HalfDimensions.X)
	j := b.JBasis().Scale(b.HalfDimensions.Y)
	return [4]Vec2{
		b.Center.Sub(i).Sub(j),
		b.Center.Add(i).Sub(j),
		b.Center.Sub(i).Add(j),
		b.Center.Add(i).Add(j),
	}
}

// OBB3 is an oriented box with an orthonormal I/J/K basis.
type OBB3 struct {
	Center         Vec3
	IBasis         Vec3
	JBasis         Vec3
	KBasis         Vec3
	HalfDimensions Vec3
}

// NewOBB3 builds a box from two basis vectors, deriving K as I x J.
func NewOBB3(center, iBasis, jBasis, halfDimensions Vec3) OBB3 {
	return OBB3{
		Center:         center,
		IBasis:         iBasis,
		JBasis:         jBasis,
		KBasis:         iBasis.Cross(jBasis),
		HalfDimensions: halfDimensions,
	}
}

// Matrix returns the local-to-world transform of the box's frame.
func (b OBB3) Matrix() Mat4 {
	return MakeBasis(b.IBasis, b.JBasis, b.KBasis, b.Center)
}

// Corners returns the 8 corners using the same bit order as AABB3.Corners.
func (b OBB3) Corners() [8]Vec3 {
	local := AABB3{Mins: b.HalfDimensions.Scale(-1), Maxs: b.HalfDimensions}.Corners()
	m := b.Matrix()
	for n := range local {
		local[n] = m.TransformVec3(local[n])
	}
	return local
}
