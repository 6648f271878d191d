// Package config handles viewer configuration loading.
package config

// Config holds all viewer settings.
type Config struct {
	View    ViewConfig    `yaml:"view"`
	Input   InputConfig   `yaml:"input"`
	Logging LoggingConfig `yaml:"logging"`
}

// ViewConfig holds globe presentation settings.
type ViewConfig struct {
	// RadiusScale scales the globe radius relative to the largest disc
	// that fits the canvas. 1.0 touches the edges.
	RadiusScale float64 `yaml:"radius_scale"`
	// Backside draws back-hemisphere coastlines dim instead of hiding them.
	Backside bool `yaml:"backside"`
	// Graticule overlays meridians and parallels.
	Graticule bool `yaml:"graticule"`
	// GraticuleSpacingDeg is the grid spacing in degrees.
	GraticuleSpacingDeg float64 `yaml:"graticule_spacing_deg"`
}

// InputConfig holds drag and idle-spin settings.
type InputConfig struct {
	// Sensitivity scales drag distance to rotation angle. 1.0 rotates
	// a quarter turn per radius of drag.
	Sensitivity float64 `yaml:"sensitivity"`
	// SpinDegPerSec rotates the idle globe. 0 disables the spin.
	SpinDegPerSec float64 `yaml:"spin_deg_per_sec"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		View: ViewConfig{
			RadiusScale:         0.92,
			Backside:            true,
			Graticule:           false,
			GraticuleSpacingDeg: 30,
		},
		Input: InputConfig{
			Sensitivity:   1.0,
			SpinDegPerSec: 0,
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "",
		},
	}
}
