package math

import (
	"testing"
)

func TestVec2Add(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 4}
	got := a.Add(b)
	want := Vec2{4, 6}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
	}
}

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	got := v.Length()
	want := float32(5)
	if got != want {
		t.Errorf("Vec2.Length() = %v, want %v", got, want)
	}
}

func TestVec2Normalize(t *testing.T) {
	v := Vec2{3, 4}
	n := v.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec2.Normalize().Length() = %v, want ~1", l)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec2RotatedDegrees(t *testing.T) {
	tests := []struct {
		name    string
		in      Vec2
		degrees float32
		want    Vec2
	}{
		{"quarter", Vec2{1, 0}, 90, Vec2{0, 1}},
		{"half", Vec2{1, 2}, 180, Vec2{-1, -2}},
		{"minus 135", Vec2{1, 0}, -135, Vec2{-0.70710677, -0.70710677}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.RotatedDegrees(tt.degrees)
			if got.Distance(tt.want) > 0.0001 {
				t.Errorf("Vec2.RotatedDegrees() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVec2Rotated90(t *testing.T) {
	got := Vec2{3, 1}.Rotated90()
	want := Vec2{-1, 3}
	if got != want {
		t.Errorf("Vec2.Rotated90() = %v, want %v", got, want)
	}
}

func TestVec2FromPolarDegrees(t *testing.T) {
	v := Vec2FromPolarDegrees(45, 2)
	if abs(v.Length()-2) > 0.0001 {
		t.Errorf("Vec2FromPolarDegrees length = %v, want 2", v.Length())
	}
	if abs(v.OrientationDegrees()-45) > 0.001 {
		t.Errorf("Vec2FromPolarDegrees orientation = %v, want 45", v.OrientationDegrees())
	}
}

func TestVec3Lerp(t *testing.T) {
	got := Vec3{0, 0, 0}.Lerp(Vec3{10, 20, 30}, 0.5)
	want := Vec3{5, 10, 15}
	if got != want {
		t.Errorf("Vec3.Lerp() = %v, want %v", got, want)
	}
}

func TestRangeMap(t *testing.T) {
	got := RangeMap(-45, -90, 90, 0, 1)
	if abs(got-0.25) > 0.00001 {
		t.Errorf("RangeMap() = %v, want 0.25", got)
	}
}
