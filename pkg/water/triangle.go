// Package water answers geometric queries against a deforming triangulated
// water surface: triangle location under a point, surface height by plane
// interpolation, and k-nearest surface vertices.
package water

import (
	"errors"

	"github.com/Faultbox/waterline/pkg/math"
)

// Surface query errors.
var (
	ErrOutsideSurface  = errors.New("point outside surface footprint")
	ErrDegeneratePlane = errors.New("degenerate surface plane")
)

// Triangle is an ordered triple of world-space vertex positions. Winding
// order is preserved from the source mesh. Positions are stored directly
// (not indices) so queries touch no other data.
type Triangle [3]math.Vec3

// ContainsXZ reports whether the horizontal projection of p lies within the
// horizontal projection of the triangle. Edge i runs from t[i] to t[(i+1)%3];
// a point exactly on edge i counts as inside only when onEdgeI is true.
// Adjacent triangles share edges, so callers must apply one consistent edge
// policy or a boundary point can be claimed by both triangles or neither.
func (t Triangle) ContainsXZ(p math.Vec3, onEdge0, onEdge1, onEdge2 bool) bool {
	s0 := edgeSign(t[0], t[1], p)
	s1 := edgeSign(t[1], t[2], p)
	s2 := edgeSign(t[2], t[0], p)

	if s0 == 0 && !onEdge0 {
		return false
	}
	if s1 == 0 && !onEdge1 {
		return false
	}
	if s2 == 0 && !onEdge2 {
		return false
	}

	// Inside iff no two edges disagree on the side, for either winding.
	hasPos := s0 > 0 || s1 > 0 || s2 > 0
	hasNeg := s0 < 0 || s1 < 0 || s2 < 0
	return !(hasPos && hasNeg)
}

// edgeSign returns the side of the directed edge a->b that p falls on in the
// XZ plane: the 2D cross product (b-a) x (p-a). Zero means p is on the
// edge's line.
func edgeSign(a, b, p math.Vec3) float32 {
	return (b.X-a.X)*(p.Z-a.Z) - (b.Z-a.Z)*(p.X-a.X)
}

// HeightAt returns the elevation of the triangle's plane at the given
// horizontal position. The plane normal is canonicalized to face upward, so
// the result does not depend on winding. Returns ErrDegeneratePlane for a
// vertical or zero-area triangle, where the plane has no single height.
func (t Triangle) HeightAt(x, z float32) (float32, error) {
	e1 := t[1].Sub(t[0])
	e2 := t[2].Sub(t[0])
	n := e1.Cross(e2).Normalize()
	if n.Y < 0 {
		n = n.Scale(-1)
	}
	if n.Y == 0 {
		return 0, ErrDegeneratePlane
	}

	// Solve n . (P - t[0]) = 0 for P = (x, height, z).
	return (-x*n.X - z*n.Z + t[0].Dot(n)) / n.Y, nil
}
