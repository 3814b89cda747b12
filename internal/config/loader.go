package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadArkanoid loads the arkanoid rules.
// Search order: customPath -> ~/.arcade/configs/arkanoid.yaml -> ./configs/arkanoid.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a file only needs the keys it
// changes. The result is validated; an invalid file is an error.
func LoadArkanoid(customPath string) (ArkanoidConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ArkanoidConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseArkanoid(data)
		if err != nil {
			return ArkanoidConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("arkanoid.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseArkanoid(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/arkanoid.yaml"); err == nil {
		if cfg, err := parseArkanoid(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseArkanoid(defaultArkanoidYAML)
	if err != nil {
		return DefaultArkanoidConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseArkanoid decodes YAML over the hardcoded defaults and validates it.
func parseArkanoid(data []byte) (ArkanoidConfig, error) {
	cfg := DefaultArkanoidConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ArkanoidConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return ArkanoidConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyArkanoidPreset modifies the config based on a difficulty preset.
func ApplyArkanoidPreset(cfg *ArkanoidConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.ReserveBalls = 7
		cfg.Paddle.Width = 70
		cfg.Paddle.ExtendedWidth = 100
	case DifficultyHard:
		cfg.Gameplay.ReserveBalls = 3
		cfg.Paddle.Width = 50
		cfg.Paddle.ExtendedWidth = 80
		cfg.Gifts.Chance = 50
	}
}
