package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Scenario != "well" {
		t.Errorf("expected scenario well, got %s", cfg.Scenario)
	}
	if cfg.Orbital < 1 {
		t.Error("orbital should be positive")
	}
	if cfg.XMin >= cfg.XMax {
		t.Error("airy window should be a valid interval")
	}
	if cfg.FrameRate <= 0 || cfg.PhaseDelta <= 0 {
		t.Error("animation defaults should be positive")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("well", "excited")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Orbital != 4 {
		t.Errorf("expected orbital 4, got %d", cfg.Orbital)
	}

	cfg = GetPreset("linear", "high")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.EnergyShift != 1.5 {
		t.Errorf("expected energy shift 1.5, got %f", cfg.EnergyShift)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("well", "nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if cfg := GetPreset("nonexistent", "ground"); cfg != nil {
		t.Error("expected nil for nonexistent scenario")
	}
}

func TestListPresets(t *testing.T) {
	for _, scenario := range []string{"well", "linear", "airy", "oscillator", "barrier"} {
		if len(ListPresets(scenario)) == 0 {
			t.Errorf("expected presets for %s", scenario)
		}
	}
	if ListPresets("nonexistent") != nil {
		t.Error("expected nil for nonexistent scenario")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.Scenario = "barrier"
	cfg.Regime = "tunnel"
	cfg.Density = true

	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Scenario != "barrier" || loaded.Regime != "tunnel" || !loaded.Density {
		t.Errorf("round trip lost fields: %+v", loaded)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
