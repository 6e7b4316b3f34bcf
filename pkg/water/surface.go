package water

import (
	"fmt"

	"github.com/Faultbox/waterline/pkg/math"
	"github.com/Faultbox/waterline/pkg/minheap"
)

// Surface holds the world-space snapshot of a triangulated water surface and
// answers point queries against it. The snapshot is rebuilt with Refresh once
// per simulation step; all queries between two refreshes see the same data.
//
// Surface is not safe for concurrent use: Refresh must not interleave with
// queries, and Locate mutates an internal cache even on read paths.
type Surface struct {
	vertices  []math.Vec3
	triangles []Triangle

	// lastHit caches the index of the triangle returned by the previous
	// Locate. Queries that move continuously between steps usually stay in
	// the same triangle, skipping the full scan. -1 means no entry.
	lastHit int

	boundsMin math.Vec3
	boundsMax math.Vec3

	// density is an opaque configuration value for buoyancy consumers.
	density float32
}

// New creates an empty surface. Queries against it fail with
// ErrOutsideSurface until the first Refresh.
func New(density float32) *Surface {
	return &Surface{
		lastHit: -1,
		density: density,
	}
}

// Refresh replaces the surface snapshot from the source mesh: localVerts are
// mapped to world space through localToWorld, then triangles are rebuilt from
// consecutive index triples over the transformed vertices. When the mesh
// topology is unchanged since the previous refresh (the common case for a
// deforming fixed-topology sheet) both internal slices are reused in place.
// The last-hit triangle cache is invalidated.
func (s *Surface) Refresh(localVerts []math.Vec3, indices []uint32, localToWorld math.Mat4) {
	if len(s.vertices) != len(localVerts) {
		s.vertices = make([]math.Vec3, len(localVerts))
	}
	for i, v := range localVerts {
		s.vertices[i] = localToWorld.TransformVec3(v)
	}

	triCount := len(indices) / 3
	if len(s.triangles) != triCount {
		s.triangles = make([]Triangle, triCount)
	}
	for i := 0; i < triCount; i++ {
		s.triangles[i] = Triangle{
			s.vertices[indices[i*3]],
			s.vertices[indices[i*3+1]],
			s.vertices[indices[i*3+2]],
		}
	}

	s.updateBounds()
	s.lastHit = -1
}

func (s *Surface) updateBounds() {
	s.boundsMin = math.Vec3{X: 1e10, Y: 1e10, Z: 1e10}
	s.boundsMax = math.Vec3{X: -1e10, Y: -1e10, Z: -1e10}
	for _, v := range s.vertices {
		if v.X < s.boundsMin.X {
			s.boundsMin.X = v.X
		}
		if v.Y < s.boundsMin.Y {
			s.boundsMin.Y = v.Y
		}
		if v.Z < s.boundsMin.Z {
			s.boundsMin.Z = v.Z
		}
		if v.X > s.boundsMax.X {
			s.boundsMax.X = v.X
		}
		if v.Y > s.boundsMax.Y {
			s.boundsMax.Y = v.Y
		}
		if v.Z > s.boundsMax.Z {
			s.boundsMax.Z = v.Z
		}
	}
	if len(s.vertices) == 0 {
		s.boundsMin = math.Vec3{}
		s.boundsMax = math.Vec3{}
	}
}

// Edge policy for triangle location: only edge 1 is boundary-inclusive. Two
// triangles sharing that edge cannot both claim a point on it, because the
// shared edge has a different index in at least one of them.
const (
	locateOnEdge0 = false
	locateOnEdge1 = true
	locateOnEdge2 = false
)

// Locate returns the surface triangle whose horizontal projection contains p.
// The previously returned triangle is tried first; on a miss the triangle
// array is scanned in storage order and the first match becomes the new
// cache entry. Returns ErrOutsideSurface when no triangle contains p.
func (s *Surface) Locate(p math.Vec3) (Triangle, error) {
	if s.lastHit >= 0 && s.lastHit < len(s.triangles) {
		if tri := s.triangles[s.lastHit]; tri.ContainsXZ(p, locateOnEdge0, locateOnEdge1, locateOnEdge2) {
			return tri, nil
		}
	}

	for i, tri := range s.triangles {
		if tri.ContainsXZ(p, locateOnEdge0, locateOnEdge1, locateOnEdge2) {
			s.lastHit = i
			return tri, nil
		}
	}

	return Triangle{}, ErrOutsideSurface
}

// HeightAt returns the elevation of the water surface at p's horizontal
// position. Returns ErrOutsideSurface when p is outside the surface
// footprint, or ErrDegeneratePlane when the containing triangle is vertical.
func (s *Surface) HeightAt(p math.Vec3) (float32, error) {
	tri, err := s.Locate(p)
	if err != nil {
		return 0, err
	}
	return tri.HeightAt(p.X, p.Z)
}

// Underwater reports whether p is below the water surface at its horizontal
// position. Errors propagate from HeightAt; a point outside the footprint is
// neither above nor below the surface.
func (s *Surface) Underwater(p math.Vec3) (bool, error) {
	h, err := s.HeightAt(p)
	if err != nil {
		return false, err
	}
	return h-p.Y > 0, nil
}

// NearestVertices returns the k surface vertices nearest to p by horizontal
// distance, in ascending order. All snapshot vertices are ranked, so k may be
// up to the vertex count; a larger k fails with a wrapped minheap.ErrEmpty.
func (s *Surface) NearestVertices(p math.Vec3, k int) ([]math.Vec3, error) {
	target := p.XZ()
	h := minheap.New(func(a, b math.Vec3) bool {
		return a.XZ().DistanceSq(target) < b.XZ().DistanceSq(target)
	}, len(s.vertices))

	for _, v := range s.vertices {
		h.Push(v)
	}

	nearest := make([]math.Vec3, 0, k)
	for i := 0; i < k; i++ {
		v, err := h.Pop()
		if err != nil {
			return nil, fmt.Errorf("nearest vertices: want %d of %d: %w", k, len(s.vertices), err)
		}
		nearest = append(nearest, v)
	}
	return nearest, nil
}

// Density returns the configured water density. The value is opaque to this
// package and only carried for buoyancy consumers.
func (s *Surface) Density() float32 {
	return s.density
}

// Vertices returns the current snapshot's world-space vertices. The slice is
// owned by the surface and valid until the next Refresh.
func (s *Surface) Vertices() []math.Vec3 {
	return s.vertices
}

// Triangles returns the current snapshot's world-space triangles. The slice
// is owned by the surface and valid until the next Refresh.
func (s *Surface) Triangles() []Triangle {
	return s.triangles
}

// Bounds returns the axis-aligned bounding box of the current snapshot.
func (s *Surface) Bounds() (min, max math.Vec3) {
	return s.boundsMin, s.boundsMax
}
