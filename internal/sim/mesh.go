// Package sim provides the source mesh and step loop driving the water
// surface queries: a fixed-topology grid sheet deformed by waves each step.
package sim

import (
	"github.com/Faultbox/waterline/pkg/math"
)

// GridMesh is a rectangular water sheet triangulated into two triangles per
// tile. Topology is fixed after construction; only vertex heights change
// between steps, so the surface cache can reuse its slices on every refresh.
type GridMesh struct {
	Vertices []math.Vec3 // Local space, row-major: (TilesZ+1) rows of (TilesX+1)
	Indices  []uint32
	TilesX   int
	TilesZ   int
	TileSize float32
}

// NewGridMesh creates a flat grid at local y=0 spanning
// [0, tilesX*tileSize] x [0, tilesZ*tileSize].
func NewGridMesh(tilesX, tilesZ int, tileSize float32) *GridMesh {
	vertsX := tilesX + 1
	vertsZ := tilesZ + 1

	vertices := make([]math.Vec3, 0, vertsX*vertsZ)
	for z := 0; z < vertsZ; z++ {
		for x := 0; x < vertsX; x++ {
			vertices = append(vertices, math.Vec3{
				X: float32(x) * tileSize,
				Z: float32(z) * tileSize,
			})
		}
	}

	indices := make([]uint32, 0, tilesX*tilesZ*6)
	for z := 0; z < tilesZ; z++ {
		for x := 0; x < tilesX; x++ {
			bl := uint32(z*vertsX + x)
			br := bl + 1
			tl := bl + uint32(vertsX)
			tr := tl + 1

			// Two triangles per tile, split along the BL->TR diagonal
			indices = append(indices,
				bl, br, tl,
				tl, br, tr,
			)
		}
	}

	return &GridMesh{
		Vertices: vertices,
		Indices:  indices,
		TilesX:   tilesX,
		TilesZ:   tilesZ,
		TileSize: tileSize,
	}
}

// Width returns the sheet extent along X in local units.
func (m *GridMesh) Width() float32 {
	return float32(m.TilesX) * m.TileSize
}

// Depth returns the sheet extent along Z in local units.
func (m *GridMesh) Depth() float32 {
	return float32(m.TilesZ) * m.TileSize
}
