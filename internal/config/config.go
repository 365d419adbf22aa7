// Package config provides YAML-based game configuration loading and
// difficulty management for the blocks game.
package config

import (
	"fmt"
	"time"
)

// BlocksConfig contains all configuration for the blocks game.
type BlocksConfig struct {
	Timing     BlocksTiming     `yaml:"timing"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BlocksTiming defines gravity timing for the blocks game.
type BlocksTiming struct {
	DropIntervalMS    int     `yaml:"drop_interval_ms"`     // Starting time between automatic drops
	MinDropIntervalMS int     `yaml:"min_drop_interval_ms"` // Floor for the speed ramp
	SpeedupFactor     float64 `yaml:"speedup_factor"`       // Interval multiplier per threshold
	SpeedupEvery      int     `yaml:"speedup_every"`        // Score step between speed-ups
}

// DropInterval returns the starting drop interval.
func (t BlocksTiming) DropInterval() time.Duration {
	return time.Duration(t.DropIntervalMS) * time.Millisecond
}

// MinDropInterval returns the lowest interval the ramp may reach.
func (t BlocksTiming) MinDropInterval() time.Duration {
	return time.Duration(t.MinDropIntervalMS) * time.Millisecond
}

// DifficultyConfig selects how the speed ramp behaves.
type DifficultyConfig struct {
	Enabled bool             `yaml:"enabled"` // false keeps the starting interval forever
	Preset  DifficultyPreset `yaml:"preset"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the difficulty presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset validates a preset name. Empty input selects normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	if name == "" {
		return DifficultyNormal, nil
	}
	for _, p := range Presets() {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
