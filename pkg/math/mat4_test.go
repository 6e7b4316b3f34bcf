package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	id := Identity()
	result := m.Mul(id)

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(5, 10, 15)

	// Translation should be in column 4 (indices 12, 13, 14)
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
}

func TestScale(t *testing.T) {
	m := Scale(2, 3, 4)

	if m[0] != 2 || m[5] != 3 || m[10] != 4 {
		t.Errorf("Scale diagonal: got (%f, %f, %f), want (2, 3, 4)", m[0], m[5], m[10])
	}
}

func TestTransformPoint(t *testing.T) {
	// Translate by (10, 20, 30)
	m := Translate(10, 20, 30)
	p := [3]float32{1, 2, 3}
	result := m.TransformPoint(p)

	expected := [3]float32{11, 22, 33}
	if result != expected {
		t.Errorf("TransformPoint: got %v, want %v", result, expected)
	}
}

func TestTransformVec3(t *testing.T) {
	m := Translate(1, 0, -1)
	got := m.TransformVec3(Vec3{2, 3, 4})
	want := Vec3{3, 3, 3}
	if got != want {
		t.Errorf("TransformVec3: got %v, want %v", got, want)
	}
}

func TestRotateY(t *testing.T) {
	// 90 degrees around Y maps +X to -Z
	m := RotateY(float32(math.Pi / 2))
	got := m.TransformVec3(Vec3{1, 0, 0})
	want := Vec3{0, 0, -1}

	if !approxVec3(got, want, 1e-6) {
		t.Errorf("RotateY(pi/2) * (1,0,0) = %v, want %v", got, want)
	}
}

func TestTranslateRotateCombined(t *testing.T) {
	// Rotate first, then translate: T * R
	m := Translate(10, 0, 0).Mul(RotateY(float32(math.Pi / 2)))
	got := m.TransformVec3(Vec3{1, 0, 0})
	want := Vec3{10, 0, -1}

	if !approxVec3(got, want, 1e-6) {
		t.Errorf("T*R * (1,0,0) = %v, want %v", got, want)
	}
}

func TestTransformDirection(t *testing.T) {
	// Directions ignore translation
	m := Translate(10, 20, 30)
	got := m.TransformDirection(Vec3{1, 2, 3})
	want := Vec3{1, 2, 3}
	if got != want {
		t.Errorf("TransformDirection: got %v, want %v", got, want)
	}
}

func approxVec3(a, b Vec3, eps float32) bool {
	return absf(a.X-b.X) < eps && absf(a.Y-b.Y) < eps && absf(a.Z-b.Z) < eps
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
