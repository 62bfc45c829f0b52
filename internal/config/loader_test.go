package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestLoadPlatformerCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	data := `
physics:
  gravity: 80.0
  move_speed: 20.0
  jump_impulse: -30.0
  max_fall_speed: 50.0
  drag: 12.0
coins:
  pickup_radius: 2.5
  value: 25
  spin_rate: 4.0
audio:
  enabled: false
  volume: 0.3
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadPlatformer(path)
	if err != nil {
		t.Fatalf("LoadPlatformer failed: %v", err)
	}

	if cfg.Physics.Gravity != 80.0 {
		t.Errorf("Gravity = %f, expected 80.0", cfg.Physics.Gravity)
	}
	if cfg.Physics.JumpImpulse != -30.0 {
		t.Errorf("JumpImpulse = %f, expected -30.0", cfg.Physics.JumpImpulse)
	}
	if cfg.Coins.Value != 25 {
		t.Errorf("Coins.Value = %d, expected 25", cfg.Coins.Value)
	}
	if cfg.Audio.Enabled {
		t.Error("Audio.Enabled should be false")
	}
}

func TestLoadPlatformerMissingCustomPath(t *testing.T) {
	_, err := LoadPlatformer(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("expected error for missing custom config path")
	}
}

func TestLoadPlatformerInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(path, []byte("physics: [not: a: map"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	_, err := LoadPlatformer(path)
	if err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestEmbeddedDefaultParses(t *testing.T) {
	var cfg PlatformerConfig
	if err := yaml.Unmarshal(defaultPlatformerYAML, &cfg); err != nil {
		t.Fatalf("embedded default YAML failed to parse: %v", err)
	}

	// The embedded YAML and the hardcoded fallback must agree.
	if cfg != DefaultPlatformerConfig() {
		t.Errorf("embedded defaults = %+v, fallback = %+v", cfg, DefaultPlatformerConfig())
	}
}

func TestDefaultPlatformerConfigSane(t *testing.T) {
	cfg := DefaultPlatformerConfig()

	if cfg.Physics.Gravity <= 0 {
		t.Error("gravity must be positive")
	}
	if cfg.Physics.JumpImpulse >= 0 {
		t.Error("jump impulse must be negative (upward)")
	}
	if cfg.Physics.MaxFallSpeed <= 0 {
		t.Error("max fall speed must be positive")
	}
	if cfg.Coins.Value <= 0 {
		t.Error("coin value must be positive")
	}
	if cfg.Audio.Volume < 0 || cfg.Audio.Volume > 1 {
		t.Errorf("audio volume %f out of range", cfg.Audio.Volume)
	}
}
