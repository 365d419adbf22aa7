package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// ConfigDirName is the per-user directory holding configs and screenshots.
const ConfigDirName = ".blocks"

// LoadBlocks loads the blocks game configuration.
// Search order: customPath -> ~/.blocks/configs/blocks.yaml -> ./configs/blocks.yaml -> embedded default
// A search-path file that exists but does not load is skipped with a warning
// on logger; a nil logger discards warnings.
func LoadBlocks(customPath string, logger *log.Logger) (BlocksConfig, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	// A custom path must load; search-path files fall through to defaults.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BlocksConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseBlocks(data)
		if err != nil {
			return BlocksConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath("blocks.yaml"), filepath.Join("configs", "blocks.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			logger.Warn("config ignored", "path", path, "error", err)
			continue
		}
		cfg, err := parseBlocks(data)
		if err != nil {
			logger.Warn("config ignored", "path", path, "error", err)
			continue
		}
		return cfg, nil
	}

	cfg, err := parseBlocks(defaultBlocksYAML)
	if err != nil {
		return DefaultBlocksConfig(), nil
	}
	return cfg, nil
}

// parseBlocks decodes YAML on top of the defaults so partial files work.
func parseBlocks(data []byte) (BlocksConfig, error) {
	cfg := DefaultBlocksConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate reports values that would make the game unplayable.
func (c BlocksConfig) Validate() error {
	var errs []error
	t := c.Timing
	if t.DropIntervalMS <= 0 {
		errs = append(errs, fmt.Errorf("timing.drop_interval_ms must be positive, got %d", t.DropIntervalMS))
	}
	if t.MinDropIntervalMS <= 0 {
		errs = append(errs, fmt.Errorf("timing.min_drop_interval_ms must be positive, got %d", t.MinDropIntervalMS))
	}
	if t.SpeedupFactor <= 0 || t.SpeedupFactor > 1 {
		errs = append(errs, fmt.Errorf("timing.speedup_factor must be in (0, 1], got %g", t.SpeedupFactor))
	}
	if t.SpeedupEvery <= 0 {
		errs = append(errs, fmt.Errorf("timing.speedup_every must be positive, got %d", t.SpeedupEvery))
	}
	if c.Difficulty.Preset != "" {
		if _, err := ParsePreset(string(c.Difficulty.Preset)); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ConfigDirName, "configs", filename)
}

// ApplyBlocksPreset modifies the config based on a difficulty preset.
// Easy and hard set their own starting interval; normal and fixed keep the
// configured one.
func ApplyBlocksPreset(cfg *BlocksConfig, preset DifficultyPreset) {
	cfg.Difficulty.Preset = preset
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true

	switch preset {
	case DifficultyEasy:
		cfg.Timing.DropIntervalMS = 1000
	case DifficultyHard:
		cfg.Timing.DropIntervalMS = 500
	}
}
