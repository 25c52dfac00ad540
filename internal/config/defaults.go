package config

import (
	_ "embed"
)

//go:embed defaults/retris.yaml
var defaultRetrisYAML []byte

// Default returns the default game configuration: a 10×20 field with 4
// hidden spawn rows, classic DAS/ARR feel, and the 137-based scoring.
func Default() Config {
	return Config{
		Field: FieldConfig{
			Width:         10,
			VisibleHeight: 20,
			SpawnRows:     4,
		},
		Timing: TimingConfig{
			SpawnVelocity:   2.0,
			SpeedupPerLevel: 1.0,
			SoftDropFactor:  5.0,
			DASDelay:        0.133,
			ARRRate:         20.0,
		},
		Transition: TransitionConfig{
			Duration:            1.5,
			CascadeBaseVelocity: 800.0,
			CascadeColumnFactor: 0.15,
		},
		Scoring: ScoringConfig{
			BasePoints:    137,
			LinesPerLevel: 10,
		},
	}
}

// DefaultYAML returns the embedded default YAML config.
func DefaultYAML() []byte {
	return defaultRetrisYAML
}
