package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultOrbital     = 1
	DefaultEnergyShift = 0.0
	DefaultRegime      = "over"
	DefaultXMin        = -5.0
	DefaultXMax        = 5.0
	DefaultFrameRate   = 60
	DefaultPhaseDelta  = 0.05
)

type Config struct {
	Scenario    string  `yaml:"scenario"`
	Orbital     int     `yaml:"orbital"`
	EnergyShift float64 `yaml:"energy_shift"`
	Regime      string  `yaml:"regime"`
	XMin        float64 `yaml:"x_min"`
	XMax        float64 `yaml:"x_max"`
	FrameRate   int     `yaml:"frame_rate"`
	PhaseDelta  float64 `yaml:"phase_delta"`
	Density     bool    `yaml:"density"`
}

func DefaultConfig() *Config {
	return &Config{
		Scenario:    "well",
		Orbital:     DefaultOrbital,
		EnergyShift: DefaultEnergyShift,
		Regime:      DefaultRegime,
		XMin:        DefaultXMin,
		XMax:        DefaultXMax,
		FrameRate:   DefaultFrameRate,
		PhaseDelta:  DefaultPhaseDelta,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
