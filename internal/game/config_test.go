package game

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing config file should not error: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ascendant.yaml")
	data := []byte("seed: 12345\ntrapDensity: 0.1\nchestCount: 3\nmaxGenRetries: 5\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Seed != 12345 {
		t.Errorf("Seed = %d, want 12345", cfg.Seed)
	}
	if cfg.TrapDensity != 0.1 {
		t.Errorf("TrapDensity = %v, want 0.1", cfg.TrapDensity)
	}
	if cfg.ChestCount != 3 {
		t.Errorf("ChestCount = %d, want 3", cfg.ChestCount)
	}
	if cfg.MaxGenRetries != 5 {
		t.Errorf("MaxGenRetries = %d, want 5", cfg.MaxGenRetries)
	}
	// Unset fields keep their defaults.
	if cfg.Width != DefaultConfig().Width || cfg.Height != DefaultConfig().Height {
		t.Errorf("dimensions = %dx%d, want defaults", cfg.Width, cfg.Height)
	}
	if cfg.Depth != 1 {
		t.Errorf("Depth = %d, want 1", cfg.Depth)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("seed: [not a number"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("expected a parse error for invalid YAML")
	}
}

func TestLoadConfigClamps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ascendant.yaml")
	if err := os.WriteFile(path, []byte("depth: 0\nmaxGenRetries: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Depth != 1 {
		t.Errorf("Depth = %d, want clamp to 1", cfg.Depth)
	}
	if cfg.MaxGenRetries != 1 {
		t.Errorf("MaxGenRetries = %d, want clamp to 1", cfg.MaxGenRetries)
	}
}
