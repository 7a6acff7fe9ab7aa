package game

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/samdwyer/ascendant/internal/world"
)

// Config holds game configuration options, loadable from a YAML file.
type Config struct {
	// Floor grid dimensions.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Seed for random number generation. Used for reproducible floor
	// generation. A seed of 0 means a random seed will be generated.
	Seed int64 `yaml:"seed"`

	// Depth the run starts on.
	Depth int `yaml:"depth"`

	// TrapDensity overrides the depth-scaled default when > 0.
	TrapDensity float64 `yaml:"trapDensity"`

	// ChestCount overrides the depth-scaled default when > 0.
	ChestCount int `yaml:"chestCount"`

	// MaxGenRetries bounds regeneration attempts after a recoverable
	// generation failure before giving up.
	MaxGenRetries uint `yaml:"maxGenRetries"`
}

// DefaultConfig returns the standard run configuration.
func DefaultConfig() Config {
	return Config{
		Width:         world.DefaultWidth,
		Height:        world.DefaultHeight,
		Depth:         1,
		MaxGenRetries: 3,
	}
}

// LoadConfig reads a YAML config file over the defaults. A missing file is
// not an error; the defaults are returned unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.MaxGenRetries == 0 {
		cfg.MaxGenRetries = 1
	}
	if cfg.Depth < 1 {
		cfg.Depth = 1
	}

	return cfg, nil
}
