// Package config provides YAML-based game configuration loading for retris.
package config

// Config contains all tunable parameters for the game.
type Config struct {
	Field      FieldConfig      `yaml:"field"`
	Timing     TimingConfig     `yaml:"timing"`
	Transition TransitionConfig `yaml:"transition"`
	Scoring    ScoringConfig    `yaml:"scoring"`
}

// FieldConfig defines the playfield dimensions in cells.
type FieldConfig struct {
	Width         int `yaml:"width"`
	VisibleHeight int `yaml:"visible_height"`
	SpawnRows     int `yaml:"spawn_rows"` // hidden rows above the visible field
}

// TimingConfig defines piece movement timing. Rates are in cells per
// second, delays in seconds; the simulation converts per tick.
type TimingConfig struct {
	SpawnVelocity   float64 `yaml:"spawn_velocity"`    // fall speed of a fresh piece at level 0
	SpeedupPerLevel float64 `yaml:"speedup_per_level"` // added to spawn velocity per level
	SoftDropFactor  float64 `yaml:"soft_drop_factor"`  // fall speed multiplier while soft drop is held
	DASDelay        float64 `yaml:"das_delay"`         // delay before horizontal auto-repeat starts
	ARRRate         float64 `yaml:"arr_rate"`          // auto-repeat speed once DAS elapses
}

// TransitionConfig defines the level-up cascade animation.
type TransitionConfig struct {
	Duration            float64 `yaml:"duration"`              // seconds
	CascadeBaseVelocity float64 `yaml:"cascade_base_velocity"` // reference fall speed of column 0
	CascadeColumnFactor float64 `yaml:"cascade_column_factor"` // per-column velocity reduction
}

// ScoringConfig defines the scoring formula inputs.
type ScoringConfig struct {
	BasePoints    uint64 `yaml:"base_points"`
	LinesPerLevel uint32 `yaml:"lines_per_level"`
}
