// Package config holds the tunable game constants and loads them from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/plus3/coinfall/board"
	"github.com/plus3/coinfall/piece"
	"github.com/plus3/coinfall/score"
	"github.com/plus3/coinfall/shape"
	"gopkg.in/yaml.v3"
)

// Config describes one game session.
type Config struct {
	Rows               int           `yaml:"rows"`
	Cols               int           `yaml:"cols"`
	DropInterval       time.Duration `yaml:"drop_interval"`
	MonoProbability    float64       `yaml:"mono_probability"`
	SpawnPool          []string      `yaml:"spawn_pool"`
	MilestoneThreshold int           `yaml:"milestone_threshold"`
	ParticlesPerCell   int           `yaml:"particles_per_cell"`
	BlockSize          int           `yaml:"block_size"`
	Seed               uint64        `yaml:"seed"`
	LogLevel           string        `yaml:"log_level"`
	Audio              Audio         `yaml:"audio"`
}

// Audio configures background music and sound cues.
type Audio struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// Default returns the standard 20×10 game with a 500ms drop interval.
func Default() Config {
	return Config{
		Rows:               board.DefaultRows,
		Cols:               board.DefaultCols,
		DropInterval:       500 * time.Millisecond,
		MonoProbability:    piece.DefaultMonoProbability,
		SpawnPool:          shape.Names(shape.DefaultPool),
		MilestoneThreshold: score.DefaultMilestone,
		ParticlesPerCell:   20,
		BlockSize:          24,
		LogLevel:           "info",
		Audio: Audio{
			Enabled: true,
			Volume:  0.3,
		},
	}
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate reports every out-of-range field.
func (c Config) Validate() error {
	var errs []error

	if c.Rows < 4 {
		errs = append(errs, fmt.Errorf("rows must be at least 4, got %d", c.Rows))
	}
	if c.Cols < 4 {
		errs = append(errs, fmt.Errorf("cols must be at least 4, got %d", c.Cols))
	}
	if c.DropInterval <= 0 {
		errs = append(errs, fmt.Errorf("drop_interval must be positive, got %s", c.DropInterval))
	}
	if c.MonoProbability < 0 || c.MonoProbability > 1 {
		errs = append(errs, fmt.Errorf("mono_probability must be within [0,1], got %g", c.MonoProbability))
	}
	if _, err := shape.ParsePool(c.SpawnPool); err != nil {
		errs = append(errs, fmt.Errorf("spawn_pool: %w", err))
	}
	if c.MilestoneThreshold <= 0 {
		errs = append(errs, fmt.Errorf("milestone_threshold must be positive, got %d", c.MilestoneThreshold))
	}
	if c.ParticlesPerCell < 0 {
		errs = append(errs, fmt.Errorf("particles_per_cell must not be negative, got %d", c.ParticlesPerCell))
	}
	if c.BlockSize <= 0 {
		errs = append(errs, fmt.Errorf("block_size must be positive, got %d", c.BlockSize))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume must be within [0,1], got %g", c.Audio.Volume))
	}

	return errors.Join(errs...)
}

// Pool returns the parsed spawn pool. It falls back to the default pool if
// the configured one is invalid.
func (c Config) Pool() []shape.Kind {
	pool, err := shape.ParsePool(c.SpawnPool)
	if err != nil {
		return shape.DefaultPool
	}
	return pool
}
