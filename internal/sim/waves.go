package sim

import (
	gomath "math"

	"github.com/Faultbox/waterline/internal/config"
	"github.com/Faultbox/waterline/pkg/math"
)

// Waves displaces grid vertices with two sine fields: a primary wave running
// along the configured direction and a half-amplitude secondary wave running
// across it at a different frequency. Displacement is a pure function of
// position and time, so a step can be replayed deterministically.
type Waves struct {
	amplitude float32
	k         float32 // angular wavenumber, 2*pi/wavelength
	speed     float32
	dir       math.Vec2
}

// NewWaves creates a wave field from config. A non-positive wavelength falls
// back to 1 to keep the wavenumber finite.
func NewWaves(cfg config.WavesConfig) *Waves {
	wavelength := cfg.Wavelength
	if wavelength <= 0 {
		wavelength = 1
	}

	rad := float64(cfg.DirectionDeg) * gomath.Pi / 180
	return &Waves{
		amplitude: cfg.Amplitude,
		k:         2 * gomath.Pi / wavelength,
		speed:     cfg.Speed,
		dir: math.Vec2{
			X: float32(gomath.Cos(rad)),
			Y: float32(gomath.Sin(rad)),
		},
	}
}

// HeightAt returns the wave displacement at a local position and time.
func (w *Waves) HeightAt(x, z, t float32) float32 {
	if w.amplitude == 0 {
		return 0
	}

	along := x*w.dir.X + z*w.dir.Y
	across := z*w.dir.X - x*w.dir.Y

	primary := gomath.Sin(float64(along*w.k - t*w.speed))
	secondary := gomath.Sin(float64(across*w.k*1.7 + t*w.speed*0.8))

	return w.amplitude * float32(primary+0.5*secondary)
}

// Apply sets the height of every mesh vertex to the wave displacement at
// time t. Horizontal positions are left untouched.
func (w *Waves) Apply(mesh *GridMesh, t float32) {
	for i := range mesh.Vertices {
		v := &mesh.Vertices[i]
		v.Y = w.HeightAt(v.X, v.Z, t)
	}
}
