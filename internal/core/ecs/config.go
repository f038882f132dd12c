package ecs

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EngineConfig is the top-level on-disk configuration for a running engine
// instance: world tuning plus the fixed-timestep simulation rate.
type EngineConfig struct {
	World             WorldConfig `yaml:"world"`
	FixedTimestepHz   float64     `yaml:"fixed_timestep_hz"`
	MaxFixedStepsFrame int        `yaml:"max_fixed_steps_per_frame"`
}

// DefaultEngineConfig returns the configuration a fresh cmd/sageconsole
// instance boots with absent an on-disk override.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		World:              DefaultWorldConfig(),
		FixedTimestepHz:    60,
		MaxFixedStepsFrame: 5,
	}
}

// LoadEngineConfig reads and parses a YAML config file, filling any zero
// field from DefaultEngineConfig so a partial override file is valid.
func LoadEngineConfig(path string) (EngineConfig, error) {
	cfg := DefaultEngineConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return EngineConfig{}, fmt.Errorf("ecs: read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return EngineConfig{}, fmt.Errorf("ecs: parse config %q: %w", path, err)
	}
	if cfg.FixedTimestepHz <= 0 {
		cfg.FixedTimestepHz = 60
	}
	if cfg.MaxFixedStepsFrame <= 0 {
		cfg.MaxFixedStepsFrame = 5
	}
	return cfg, nil
}

// Save writes cfg to path as YAML, overwriting any existing file.
func (cfg EngineConfig) Save(path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("ecs: marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("ecs: write config %q: %w", path, err)
	}
	return nil
}

// FixedTimestepSeconds returns the fixed-update interval implied by
// FixedTimestepHz, defaulting sanely if unset.
func (cfg EngineConfig) FixedTimestepSeconds() float64 {
	if cfg.FixedTimestepHz <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / cfg.FixedTimestepHz
}
