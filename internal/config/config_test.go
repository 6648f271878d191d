package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	if cfg.View.RadiusScale <= 0 || cfg.View.RadiusScale > 1 {
		t.Errorf("default radius_scale out of range: %g", cfg.View.RadiusScale)
	}
	if cfg.Input.Sensitivity <= 0 {
		t.Errorf("default sensitivity must be positive: %g", cfg.Input.Sensitivity)
	}
	if err := cfg.validate(); err != nil {
		t.Errorf("defaults must validate: %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	old, _ := os.Getwd()
	defer os.Chdir(old)
	os.Chdir(dir)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load with no file: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadExplicitMissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("explicit missing config path must fail")
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goglobe.yaml")
	body := `view:
  radius_scale: 0.5
  graticule: true
input:
  sensitivity: 2.5
  spin_deg_per_sec: 10
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.View.RadiusScale != 0.5 {
		t.Errorf("radius_scale: got %g", cfg.View.RadiusScale)
	}
	if !cfg.View.Graticule {
		t.Error("graticule should be enabled")
	}
	if cfg.Input.Sensitivity != 2.5 || cfg.Input.SpinDegPerSec != 10 {
		t.Errorf("input: got %+v", cfg.Input)
	}
	// Untouched fields keep their defaults.
	if cfg.View.GraticuleSpacingDeg != Default().View.GraticuleSpacingDeg {
		t.Errorf("graticule_spacing_deg should keep default, got %g", cfg.View.GraticuleSpacingDeg)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goglobe.yaml")
	if err := os.WriteFile(path, []byte("view:\n  radius_scale: 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("radius_scale > 1 must be rejected")
	}
}
