package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded default YAML does not parse: %v", err)
	}

	if cfg != Default() {
		t.Errorf("embedded default = %+v, hardcoded default = %+v", cfg, Default())
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	body := `
field:
  width: 12
  visible_height: 22
  spawn_rows: 4
timing:
  spawn_velocity: 3.0
`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}

	if cfg.Field.Width != 12 || cfg.Field.VisibleHeight != 22 {
		t.Errorf("custom field dimensions not applied: %+v", cfg.Field)
	}
	if cfg.Timing.SpawnVelocity != 3.0 {
		t.Errorf("custom spawn velocity not applied: %v", cfg.Timing.SpawnVelocity)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err == nil {
		t.Error("Load with a missing explicit path should fail")
	}
}

func TestLoadPartialConfigNormalized(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.yaml")
	if err := os.WriteFile(path, []byte("field:\n  width: 8\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Field.Width != 8 {
		t.Errorf("explicit width lost: %d", cfg.Field.Width)
	}
	def := Default()
	if cfg.Field.VisibleHeight != def.Field.VisibleHeight {
		t.Errorf("missing visible_height should default to %d, got %d", def.Field.VisibleHeight, cfg.Field.VisibleHeight)
	}
	if cfg.Timing.ARRRate != def.Timing.ARRRate {
		t.Errorf("missing arr_rate should default to %v, got %v", def.Timing.ARRRate, cfg.Timing.ARRRate)
	}
	if cfg.Scoring.BasePoints != def.Scoring.BasePoints {
		t.Errorf("missing base_points should default to %d, got %d", def.Scoring.BasePoints, cfg.Scoring.BasePoints)
	}
}

func TestLoadMalformedCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("field: [not a map"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load with malformed explicit config should fail")
	}
}
