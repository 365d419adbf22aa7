package config

import (
	_ "embed"
)

//go:embed defaults/blocks.yaml
var defaultBlocksYAML []byte

// DefaultBlocksConfig returns the hardcoded blocks configuration.
// It mirrors defaults/blocks.yaml and is used if the embedded file is unusable.
func DefaultBlocksConfig() BlocksConfig {
	return BlocksConfig{
		Timing: BlocksTiming{
			DropIntervalMS:    750,
			MinDropIntervalMS: 100,
			SpeedupFactor:     0.8,
			SpeedupEvery:      1000,
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Preset:  DifficultyNormal,
		},
	}
}
