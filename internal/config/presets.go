package config

var Presets = map[string]map[string]*Config{
	"well": {
		"ground": {
			Scenario: "well", Orbital: 1,
		},
		"excited": {
			Scenario: "well", Orbital: 4,
		},
		"highest": {
			Scenario: "well", Orbital: 8,
		},
	},
	"linear": {
		"low": {
			Scenario: "linear", EnergyShift: 0.0,
		},
		"high": {
			Scenario: "linear", EnergyShift: 1.5,
		},
	},
	"airy": {
		"default": {
			Scenario: "airy", XMin: -5.0, XMax: 5.0,
		},
		"wide": {
			Scenario: "airy", XMin: -8.0, XMax: 4.0,
		},
	},
	"oscillator": {
		"default": {
			Scenario: "oscillator", FrameRate: 60, PhaseDelta: 0.05,
		},
		"slow": {
			Scenario: "oscillator", FrameRate: 30, PhaseDelta: 0.02,
		},
	},
	"barrier": {
		"over": {
			Scenario: "barrier", Regime: "over",
		},
		"tunneling": {
			Scenario: "barrier", Regime: "tunnel",
		},
	},
}

func GetPreset(scenario, preset string) *Config {
	scenarioPresets, ok := Presets[scenario]
	if !ok {
		return nil
	}
	cfg, ok := scenarioPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(scenario string) []string {
	scenarioPresets, ok := Presets[scenario]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(scenarioPresets))
	for name := range scenarioPresets {
		names = append(names, name)
	}
	return names
}
