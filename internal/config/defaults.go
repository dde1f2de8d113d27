package config

import (
	_ "embed"
)

//go:embed defaults/dasher.yaml
var defaultDasherYAML []byte

//go:embed defaults/dasher_endless.yaml
var defaultEndlessYAML []byte

// Variant identifiers. Each has its own embedded default YAML.
const (
	VariantDasher  = "dasher"
	VariantEndless = "dasher_endless"
)

func defaultLayers() []DasherLayer {
	return []DasherLayer{
		{Name: "far", Width: 256, Height: 192, Speed: 20, Scale: 2, Pattern: "skyline"},
		{Name: "middle", Width: 256, Height: 192, Speed: 40, Scale: 2, Pattern: "towers"},
		{Name: "fore", Width: 352, Height: 192, Speed: 60, Scale: 2, Pattern: "street"},
	}
}

// DefaultDasherConfig returns the default single-pass configuration:
// five nebulae, a finish line and no recycling.
func DefaultDasherConfig() DasherConfig {
	return DasherConfig{
		Screen: DasherScreen{
			Width:  512,
			Height: 380,
		},
		Physics: DasherPhysics{
			Gravity:     1300,
			JumpImpulse: -600,
		},
		Player: DasherPlayer{
			X:         192,
			FrameRate: 12,
			Sheet:     SpriteSheet{Width: 768, Height: 128, Columns: 6, Rows: 1, Frames: 6},
		},
		Obstacles: DasherObstacles{
			Count:     5,
			Velocity:  -230,
			Spacing:   900,
			Respawn:   false,
			FrameRate: 16,
			Sheet:     SpriteSheet{Width: 800, Height: 800, Columns: 8, Rows: 8, Frames: 8},
		},
		Layers: defaultLayers(),
		Collision: DasherCollision{
			Padding: 50,
		},
		Finish: DasherFinish{
			Enabled: true,
			Margin:  800,
		},
		Difficulty: DifficultyConfig{
			Enabled: false,
			Progression: ProgressionConfig{
				Type: "none",
			},
		},
	}
}

// DefaultEndlessConfig returns the default endless configuration:
// three recycled nebulae, no finish line, time-based speed ramp.
func DefaultEndlessConfig() DasherConfig {
	cfg := DefaultDasherConfig()
	cfg.Obstacles.Count = 3
	cfg.Obstacles.Respawn = true
	cfg.Finish = DasherFinish{Enabled: false}
	cfg.Difficulty = DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression: ProgressionConfig{
			Type:  "time",
			MaxAt: 120,
		},
		Scaling: ScalingConfig{
			SpeedMultiplier: 1.0,
		},
	}
	return cfg
}

// DefaultConfigFor returns the hardcoded defaults for a variant.
func DefaultConfigFor(variant string) DasherConfig {
	if variant == VariantEndless {
		return DefaultEndlessConfig()
	}
	return DefaultDasherConfig()
}

// GetDefaultYAML returns the embedded default YAML for a variant.
func GetDefaultYAML(variant string) []byte {
	switch variant {
	case VariantDasher:
		return defaultDasherYAML
	case VariantEndless:
		return defaultEndlessYAML
	default:
		return nil
	}
}
