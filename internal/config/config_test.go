package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("Expected defaults, got error: %v", err)
	}
	if cfg.Movement.Speed != 160 {
		t.Errorf("Expected speed 160, got %v", cfg.Movement.Speed)
	}
	if cfg.Interaction.Radius != 50 {
		t.Errorf("Expected interaction radius 50, got %v", cfg.Interaction.Radius)
	}
	if cfg.FrameInterval() != 60*time.Millisecond {
		t.Errorf("Expected 60ms frame interval, got %v", cfg.FrameInterval())
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"movement": {"speed": 200}, "window": {"background": "#000000"}}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Movement.Speed != 200 {
		t.Errorf("Expected speed 200, got %v", cfg.Movement.Speed)
	}
	// Untouched fields keep their defaults
	if cfg.Movement.DiagonalFactor != 0.707 {
		t.Errorf("Expected diagonal factor 0.707, got %v", cfg.Movement.DiagonalFactor)
	}
	if cfg.Joystick.Radius != 50 {
		t.Errorf("Expected joystick radius 50, got %v", cfg.Joystick.Radius)
	}
	if bg := cfg.BackgroundColor(); bg.R != 0 || bg.G != 0 || bg.B != 0 {
		t.Errorf("Expected black background, got %v", bg)
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"movement": {"speed": -1}}`), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("Expected error for negative speed")
	}

	if err := os.WriteFile(path, []byte(`{not json`), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("Expected error for malformed JSON")
	}
}

func TestDefaultBackgroundColor(t *testing.T) {
	bg := DefaultConfig().BackgroundColor()
	if bg.R != 0x87 || bg.G != 0xce || bg.B != 0xeb {
		t.Errorf("Expected sky blue, got %v", bg)
	}
}
