package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the configuration for a variant ("dasher" or "dasher_endless").
// Search order: customPath -> ~/.dasher/configs/<variant>.yaml ->
// ./configs/<variant>.yaml -> embedded default.
// Only an explicit customPath can fail; every other source falls through.
func Load(variant, customPath string) (DasherConfig, error) {
	var cfg DasherConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := variant + ".yaml"

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		cfg = DasherConfig{}
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg = DasherConfig{}
	embedded := GetDefaultYAML(variant)
	if embedded == nil {
		return DefaultConfigFor(variant), nil
	}
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return DefaultConfigFor(variant), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dasher", "configs", filename)
}

// ApplyDasherPreset modifies the config based on a difficulty preset.
func ApplyDasherPreset(cfg *DasherConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		cfg.Difficulty.InitialLevel = 0
		return
	}

	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	if cfg.Difficulty.Scaling.SpeedMultiplier == 0 {
		// Single-pass configs ship without scaling; give presets something to scale.
		cfg.Difficulty.Scaling.SpeedMultiplier = 0.5
	}
	if cfg.Difficulty.Progression.Type == "" {
		cfg.Difficulty.Progression.Type = "none"
	}
	cfg.Difficulty.Enabled = true

	switch preset {
	case DifficultyEasy:
		cfg.Collision.Padding += 10
	case DifficultyHard:
		cfg.Collision.Padding = max(cfg.Collision.Padding-20, 0)
	}
}
