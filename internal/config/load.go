package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file. An empty
// path looks for ./goglobe.yaml and falls back to defaults when absent;
// an explicit path must exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if path == "" {
		path = "goglobe.yaml"
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return nil, fmt.Errorf("loading config from %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.View.RadiusScale <= 0 || c.View.RadiusScale > 1 {
		return fmt.Errorf("view.radius_scale must be in (0, 1], got %g", c.View.RadiusScale)
	}
	if c.Input.Sensitivity <= 0 {
		return fmt.Errorf("input.sensitivity must be positive, got %g", c.Input.Sensitivity)
	}
	if c.View.GraticuleSpacingDeg <= 0 {
		return fmt.Errorf("view.graticule_spacing_deg must be positive, got %g", c.View.GraticuleSpacingDeg)
	}
	return nil
}
