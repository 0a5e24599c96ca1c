package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppDir is the per-user directory holding configs and the score database.
const AppDir = ".buggy"

// LoadRacer loads Buggy Racer configuration.
// Search order: customPath -> ~/.buggy/configs/racer.yaml -> ./configs/racer.yaml -> embedded default
//
// Files are decoded over the defaults, so a file only needs the keys it changes.
func LoadRacer(customPath string) (RacerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RacerConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseRacer(data)
		if err != nil {
			return RacerConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("racer.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseRacer(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "racer.yaml")); err == nil {
		if cfg, err := parseRacer(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseRacer(GetDefaultYAML("racer"))
	if err != nil {
		return DefaultRacerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseRacer decodes data over the defaults and validates the vehicle tuning.
func parseRacer(data []byte) (RacerConfig, error) {
	cfg := DefaultRacerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RacerConfig{}, err
	}
	if err := cfg.Params().Validate(); err != nil {
		return RacerConfig{}, err
	}
	switch cfg.Camera.Mode {
	case "", "chase", "overhead", "trackside":
	default:
		return RacerConfig{}, fmt.Errorf("unknown camera mode %q", cfg.Camera.Mode)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, AppDir, "configs", filename)
}

// DefaultDBPath returns the default score database location.
func DefaultDBPath() string {
	return filepath.Join("~", AppDir, "scores.db")
}

// ApplyRacerPreset modifies the config based on a difficulty preset.
func ApplyRacerPreset(cfg *RacerConfig, preset DifficultyPreset) {
	cfg.Difficulty.Enabled = !IsFixedPreset(preset)
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	// Adjust session rules based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Session.AutoCenter = true
		cfg.Session.DurationSeconds = 240
	case DifficultyHard:
		cfg.Session.AutoCenter = false
		cfg.Session.DurationSeconds = 120
	}
}
