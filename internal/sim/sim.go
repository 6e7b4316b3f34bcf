package sim

import (
	"fmt"
	gomath "math"
	"math/rand"

	"github.com/Faultbox/waterline/internal/config"
	"github.com/Faultbox/waterline/internal/logger"
	"github.com/Faultbox/waterline/pkg/math"
	"github.com/Faultbox/waterline/pkg/water"
)

// Simulation owns the deforming water sheet and runs the per-step cycle:
// deform the mesh, refresh the surface snapshot, then answer queries for a
// fixed set of probe points.
type Simulation struct {
	cfg       *config.Config
	mesh      *GridMesh
	waves     *Waves
	surface   *water.Surface
	transform math.Mat4
	probes    []math.Vec3

	elapsed float32
	step    int
}

// New creates a simulation from config. The sheet is centered on the origin
// at the configured rest water level.
func New(cfg *config.Config) (*Simulation, error) {
	if cfg.Surface.TilesX < 1 || cfg.Surface.TilesZ < 1 {
		return nil, fmt.Errorf("surface grid must be at least 1x1, got %dx%d",
			cfg.Surface.TilesX, cfg.Surface.TilesZ)
	}
	if cfg.Surface.TileSize <= 0 {
		return nil, fmt.Errorf("tile size must be positive, got %f", cfg.Surface.TileSize)
	}

	mesh := NewGridMesh(cfg.Surface.TilesX, cfg.Surface.TilesZ, cfg.Surface.TileSize)

	s := &Simulation{
		cfg:       cfg,
		mesh:      mesh,
		waves:     NewWaves(cfg.Waves),
		surface:   water.New(cfg.Surface.Density),
		transform: math.Translate(-mesh.Width()/2, cfg.Surface.Level, -mesh.Depth()/2),
	}

	s.surface.Refresh(mesh.Vertices, mesh.Indices, s.transform)
	s.placeProbes(cfg.Simulation.Seed, cfg.Simulation.Probes)

	return s, nil
}

// placeProbes samples query points strictly inside the surface footprint at
// the rest water level. Placement is seeded so runs are reproducible.
func (s *Simulation) placeProbes(seed int64, count int) {
	rng := rand.New(rand.NewSource(seed))
	min, max := s.surface.Bounds()

	s.probes = make([]math.Vec3, count)
	for i := range s.probes {
		fx := 0.05 + 0.9*rng.Float32()
		fz := 0.05 + 0.9*rng.Float32()
		s.probes[i] = math.Vec3{
			X: min.X + fx*(max.X-min.X),
			Y: s.cfg.Surface.Level,
			Z: min.Z + fz*(max.Z-min.Z),
		}
	}
}

// Surface exposes the query surface, e.g. for a buoyancy consumer or a
// debug overlay.
func (s *Simulation) Surface() *water.Surface {
	return s.surface
}

// Probes returns the fixed probe points queried each step.
func (s *Simulation) Probes() []math.Vec3 {
	return s.probes
}

// Step advances time, deforms the sheet, refreshes the surface snapshot and
// answers the probe queries against it.
func (s *Simulation) Step() {
	s.elapsed += float32(s.cfg.Simulation.StepTime.Seconds())
	s.step++

	s.waves.Apply(s.mesh, s.elapsed)
	s.surface.Refresh(s.mesh.Vertices, s.mesh.Indices, s.transform)

	submerged := 0
	outside := 0
	minH := float32(gomath.MaxFloat32)
	maxH := float32(-gomath.MaxFloat32)

	for _, p := range s.probes {
		h, err := s.surface.HeightAt(p)
		if err != nil {
			// A probe outside the footprint skips the step, it does not
			// abort it.
			outside++
			logger.Sugar.Debugw("probe outside surface", "x", p.X, "z", p.Z)
			continue
		}

		under := h-p.Y > 0
		if under {
			submerged++
		}
		if h < minH {
			minH = h
		}
		if h > maxH {
			maxH = h
		}
		logger.Sugar.Debugw("probe height",
			"x", p.X, "z", p.Z, "height", h, "submerged", under)
	}

	if len(s.probes) > 0 {
		nearest, err := s.surface.NearestVertices(s.probes[0], 3)
		if err != nil {
			logger.Sugar.Warnw("nearest vertices failed", "err", err)
		} else {
			logger.Sugar.Debugw("nearest vertices to first probe",
				"count", len(nearest), "first", nearest[0])
		}
	}

	if s.step%30 == 0 && outside < len(s.probes) {
		logger.Sugar.Infow("simulation step",
			"step", s.step,
			"min_height", minH,
			"max_height", maxH,
			"submerged", submerged,
			"probes", len(s.probes),
		)
	}
}

// Run executes the configured number of steps.
func (s *Simulation) Run() error {
	for i := 0; i < s.cfg.Simulation.Steps; i++ {
		s.Step()
	}

	logger.Sugar.Infow("simulation finished",
		"steps", s.step,
		"density", s.surface.Density(),
	)
	return nil
}
