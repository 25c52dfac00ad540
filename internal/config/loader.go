package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.retris/config.yaml -> ./configs/retris.yaml
// -> embedded default. Only an explicit customPath that fails to load is an
// error; the fallback chain otherwise degrades silently to the defaults.
func Load(customPath string) (Config, error) {
	var cfg Config

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return normalize(cfg), nil
	}

	if userPath := userConfigPath(); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return normalize(cfg), nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "retris.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return normalize(cfg), nil
		}
	}

	if err := yaml.Unmarshal(defaultRetrisYAML, &cfg); err != nil {
		return Default(), nil // fallback to hardcoded if embed fails
	}
	return normalize(cfg), nil
}

// userConfigPath returns the path to the user config file, or empty if the
// home directory is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".retris", "config.yaml")
}

// normalize fills zero-valued fields from the defaults so a partial YAML
// file cannot produce a degenerate simulation (zero-width field, frozen
// gravity, division by zero in the repeat timers).
func normalize(cfg Config) Config {
	def := Default()

	if cfg.Field.Width <= 0 {
		cfg.Field.Width = def.Field.Width
	}
	if cfg.Field.VisibleHeight <= 0 {
		cfg.Field.VisibleHeight = def.Field.VisibleHeight
	}
	if cfg.Field.SpawnRows <= 0 {
		cfg.Field.SpawnRows = def.Field.SpawnRows
	}
	if cfg.Timing.SpawnVelocity <= 0 {
		cfg.Timing.SpawnVelocity = def.Timing.SpawnVelocity
	}
	if cfg.Timing.SpeedupPerLevel < 0 {
		cfg.Timing.SpeedupPerLevel = def.Timing.SpeedupPerLevel
	}
	if cfg.Timing.SoftDropFactor <= 0 {
		cfg.Timing.SoftDropFactor = def.Timing.SoftDropFactor
	}
	if cfg.Timing.DASDelay <= 0 {
		cfg.Timing.DASDelay = def.Timing.DASDelay
	}
	if cfg.Timing.ARRRate <= 0 {
		cfg.Timing.ARRRate = def.Timing.ARRRate
	}
	if cfg.Transition.Duration <= 0 {
		cfg.Transition.Duration = def.Transition.Duration
	}
	if cfg.Transition.CascadeBaseVelocity <= 0 {
		cfg.Transition.CascadeBaseVelocity = def.Transition.CascadeBaseVelocity
	}
	if cfg.Transition.CascadeColumnFactor <= 0 {
		cfg.Transition.CascadeColumnFactor = def.Transition.CascadeColumnFactor
	}
	if cfg.Scoring.BasePoints == 0 {
		cfg.Scoring.BasePoints = def.Scoring.BasePoints
	}
	if cfg.Scoring.LinesPerLevel == 0 {
		cfg.Scoring.LinesPerLevel = def.Scoring.LinesPerLevel
	}
	return cfg
}
