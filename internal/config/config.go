// Package config handles simulation configuration loading and management.
package config

import "time"

// Config holds all simulation settings.
type Config struct {
	Surface    SurfaceConfig    `yaml:"surface"`
	Waves      WavesConfig      `yaml:"waves"`
	Simulation SimulationConfig `yaml:"simulation"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// SurfaceConfig holds the water sheet dimensions and physical properties.
type SurfaceConfig struct {
	TilesX   int     `yaml:"tiles_x"`   // Tiles along X
	TilesZ   int     `yaml:"tiles_z"`   // Tiles along Z
	TileSize float32 `yaml:"tile_size"` // Tile edge length in world units
	Level    float32 `yaml:"level"`     // Rest water level (world Y)
	Density  float32 `yaml:"density"`   // Passed through to buoyancy consumers
}

// WavesConfig holds wave deformation settings.
type WavesConfig struct {
	Amplitude    float32 `yaml:"amplitude"`
	Wavelength   float32 `yaml:"wavelength"`
	Speed        float32 `yaml:"speed"`
	DirectionDeg float32 `yaml:"direction_deg"` // Primary wave direction in the XZ plane
}

// SimulationConfig holds the demo loop settings.
type SimulationConfig struct {
	Steps    int           `yaml:"steps"`
	StepTime time.Duration `yaml:"step_time"`
	Probes   int           `yaml:"probes"` // Query points sampled inside the surface footprint
	Seed     int64         `yaml:"seed"`   // Probe placement seed
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Surface: SurfaceConfig{
			TilesX:   16,
			TilesZ:   16,
			TileSize: 1.0,
			Level:    0,
			Density:  1000,
		},
		Waves: WavesConfig{
			Amplitude:    0.25,
			Wavelength:   6.0,
			Speed:        1.2,
			DirectionDeg: 30,
		},
		Simulation: SimulationConfig{
			Steps:    300,
			StepTime: 33 * time.Millisecond,
			Probes:   8,
			Seed:     42,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
