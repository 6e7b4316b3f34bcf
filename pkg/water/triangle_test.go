package water

import (
	"errors"
	"testing"

	"github.com/Faultbox/waterline/pkg/math"
)

// flatTri is a right triangle at y=0 covering (0,0)-(2,0)-(0,2) in XZ.
var flatTri = Triangle{
	{X: 0, Y: 0, Z: 0},
	{X: 2, Y: 0, Z: 0},
	{X: 0, Y: 0, Z: 2},
}

// edgeFlagCombos enumerates all edge-inclusion settings.
var edgeFlagCombos = [][3]bool{
	{false, false, false},
	{true, false, false},
	{false, true, false},
	{false, false, true},
	{true, true, false},
	{true, false, true},
	{false, true, true},
	{true, true, true},
}

func TestTriangle_ContainsXZ_StrictInside(t *testing.T) {
	p := math.Vec3{X: 0.5, Y: 99, Z: 0.5} // Y is ignored

	for _, flags := range edgeFlagCombos {
		if !flatTri.ContainsXZ(p, flags[0], flags[1], flags[2]) {
			t.Errorf("ContainsXZ(%v, %v) = false, want true for interior point", p, flags)
		}
	}
}

func TestTriangle_ContainsXZ_StrictOutside(t *testing.T) {
	points := []math.Vec3{
		{X: 5, Z: 5},
		{X: -0.1, Z: 0.5},
		{X: 0.5, Z: -0.1},
		{X: 1.5, Z: 1.5}, // beyond the hypotenuse
	}

	for _, p := range points {
		for _, flags := range edgeFlagCombos {
			if flatTri.ContainsXZ(p, flags[0], flags[1], flags[2]) {
				t.Errorf("ContainsXZ(%v, %v) = true, want false for exterior point", p, flags)
			}
		}
	}
}

func TestTriangle_ContainsXZ_EdgePolicy(t *testing.T) {
	onEdge0 := math.Vec3{X: 1, Z: 0} // on t[0]->t[1]
	onEdge1 := math.Vec3{X: 1, Z: 1} // on t[1]->t[2]
	onEdge2 := math.Vec3{X: 0, Z: 1} // on t[2]->t[0]

	// The locator policy includes only edge 1.
	if flatTri.ContainsXZ(onEdge0, false, true, false) {
		t.Error("point on edge 0 should be excluded under (false, true, false)")
	}
	if !flatTri.ContainsXZ(onEdge1, false, true, false) {
		t.Error("point on edge 1 should be included under (false, true, false)")
	}
	if flatTri.ContainsXZ(onEdge2, false, true, false) {
		t.Error("point on edge 2 should be excluded under (false, true, false)")
	}

	// Each edge's own flag controls its inclusion.
	if !flatTri.ContainsXZ(onEdge0, true, false, false) {
		t.Error("point on edge 0 should be included when onEdge0 is set")
	}
	if !flatTri.ContainsXZ(onEdge2, false, false, true) {
		t.Error("point on edge 2 should be included when onEdge2 is set")
	}
}

func TestTriangle_ContainsXZ_OnEdgeLineOutsideSegment(t *testing.T) {
	// On the line through edge 0, but beyond the triangle. Inclusion flags
	// must not turn edge-line points outside the triangle into hits.
	p := math.Vec3{X: 5, Z: 0}
	if flatTri.ContainsXZ(p, true, true, true) {
		t.Error("point on edge line but outside segment should not be contained")
	}
}

func TestTriangle_ContainsXZ_Corner(t *testing.T) {
	// An exact corner lies on two edges; under the locator policy at most
	// one edge is inclusive, so corners are never claimed.
	for _, corner := range flatTri {
		if flatTri.ContainsXZ(corner, false, true, false) {
			t.Errorf("corner %v should be excluded under (false, true, false)", corner)
		}
	}
}

func TestTriangle_ContainsXZ_ReversedWinding(t *testing.T) {
	reversed := Triangle{flatTri[2], flatTri[1], flatTri[0]}
	p := math.Vec3{X: 0.5, Z: 0.5}

	if !reversed.ContainsXZ(p, false, false, false) {
		t.Error("interior point should be contained regardless of winding")
	}
	if reversed.ContainsXZ(math.Vec3{X: 5, Z: 5}, true, true, true) {
		t.Error("exterior point should not be contained regardless of winding")
	}
}

func TestTriangle_HeightAt_Flat(t *testing.T) {
	tri := Triangle{
		{X: 0, Y: 3, Z: 0},
		{X: 2, Y: 3, Z: 0},
		{X: 0, Y: 3, Z: 2},
	}

	h, err := tri.HeightAt(0.5, 0.5)
	if err != nil {
		t.Fatalf("HeightAt() error: %v", err)
	}
	if h != 3 {
		t.Errorf("HeightAt() = %v, want 3", h)
	}
}

func TestTriangle_HeightAt_Sloped(t *testing.T) {
	// Plane y = x.
	tri := Triangle{
		{X: 0, Y: 0, Z: 0},
		{X: 2, Y: 2, Z: 0},
		{X: 0, Y: 0, Z: 2},
	}

	h, err := tri.HeightAt(0.5, 0.5)
	if err != nil {
		t.Fatalf("HeightAt() error: %v", err)
	}
	if h < 0.499 || h > 0.501 {
		t.Errorf("HeightAt() = %v, want 0.5", h)
	}
}

func TestTriangle_HeightAt_WindingIndependent(t *testing.T) {
	tri := Triangle{
		{X: 0, Y: 1, Z: 0},
		{X: 2, Y: 2, Z: 0},
		{X: 0, Y: 1, Z: 2},
	}
	reversed := Triangle{tri[2], tri[1], tri[0]}

	h1, err := tri.HeightAt(0.5, 0.5)
	if err != nil {
		t.Fatalf("HeightAt() error: %v", err)
	}
	h2, err := reversed.HeightAt(0.5, 0.5)
	if err != nil {
		t.Fatalf("HeightAt() reversed error: %v", err)
	}
	if h1 != h2 {
		t.Errorf("HeightAt() winding dependent: %v vs %v", h1, h2)
	}
}

func TestTriangle_HeightAt_VerticalPlane(t *testing.T) {
	tri := Triangle{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0.5, Y: 1, Z: 0},
	}

	_, err := tri.HeightAt(0.5, 0)
	if !errors.Is(err, ErrDegeneratePlane) {
		t.Errorf("HeightAt() on vertical triangle: err = %v, want ErrDegeneratePlane", err)
	}
}

func TestTriangle_HeightAt_ZeroArea(t *testing.T) {
	tri := Triangle{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 2, Y: 0, Z: 0},
	}

	_, err := tri.HeightAt(1, 0)
	if !errors.Is(err, ErrDegeneratePlane) {
		t.Errorf("HeightAt() on collinear triangle: err = %v, want ErrDegeneratePlane", err)
	}
}
