package config

import "flag"

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	flagSteps   = flag.Int("steps", 0, "Number of simulation steps")
	flagProbes  = flag.Int("probes", 0, "Number of query probes")
	flagDensity = flag.Float64("density", 0, "Water density")
	flagLevel   = flag.Float64("level", 0, "Rest water level (world Y)")
	flagStill   = flag.Bool("still", false, "Disable wave deformation")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagSteps > 0 {
		cfg.Simulation.Steps = *flagSteps
	}
	if *flagProbes > 0 {
		cfg.Simulation.Probes = *flagProbes
	}
	if *flagDensity > 0 {
		cfg.Surface.Density = float32(*flagDensity)
	}
	if flagChanged("level") {
		cfg.Surface.Level = float32(*flagLevel)
	}
	if *flagStill {
		cfg.Waves.Amplitude = 0
	}
}

// flagChanged reports whether the named flag was set on the command line,
// so a zero value can still override the config file.
func flagChanged(name string) bool {
	changed := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			changed = true
		}
	})
	return changed
}
