// Package config provides YAML-based game configuration loading and
// difficulty management for the dasher.
package config

// DasherConfig contains all configuration for a Dasher session.
// Distances are world pixels, speeds pixels per second, +y points down.
type DasherConfig struct {
	Screen     DasherScreen     `yaml:"screen"`
	Physics    DasherPhysics    `yaml:"physics"`
	Player     DasherPlayer     `yaml:"player"`
	Obstacles  DasherObstacles  `yaml:"obstacles"`
	Layers     []DasherLayer    `yaml:"layers"`
	Collision  DasherCollision  `yaml:"collision"`
	Finish     DasherFinish     `yaml:"finish"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// DasherScreen is the logical world size. The floor is its bottom edge.
type DasherScreen struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// DasherPhysics defines vertical motion of the player.
type DasherPhysics struct {
	Gravity     float64 `yaml:"gravity"`      // Downward acceleration, px/s^2
	JumpImpulse float64 `yaml:"jump_impulse"` // Added to velocity on jump (negative = up)
}

// SpriteSheet describes the pixel geometry of a sprite sheet texture.
// Frames are laid out left to right along the first row.
type SpriteSheet struct {
	Width   int `yaml:"width"`
	Height  int `yaml:"height"`
	Columns int `yaml:"columns"`
	Rows    int `yaml:"rows"`
	Frames  int `yaml:"frames"` // Frames used for animation, <= Columns
}

// FrameWidth returns the width of one frame.
func (s SpriteSheet) FrameWidth() int {
	if s.Columns <= 0 {
		return 0
	}
	return s.Width / s.Columns
}

// FrameHeight returns the height of one frame.
func (s SpriteSheet) FrameHeight() int {
	if s.Rows <= 0 {
		return 0
	}
	return s.Height / s.Rows
}

// DasherPlayer defines the player sprite.
type DasherPlayer struct {
	X         float64     `yaml:"x"`          // Fixed horizontal position (left edge)
	Sheet     SpriteSheet `yaml:"sheet"`      // Sprite sheet geometry
	FrameRate float64     `yaml:"frame_rate"` // Animation frames per second
}

// DasherObstacles defines the nebula field.
type DasherObstacles struct {
	Count     int         `yaml:"count"`      // Fixed number of obstacles
	Velocity  float64     `yaml:"velocity"`   // Horizontal speed, negative = left
	Spacing   float64     `yaml:"spacing"`    // Distance between consecutive spawns
	Respawn   bool        `yaml:"respawn"`    // Recycle obstacles that leave the screen
	Sheet     SpriteSheet `yaml:"sheet"`      // Sprite sheet geometry
	FrameRate float64     `yaml:"frame_rate"` // Animation frames per second
}

// DasherLayer defines one parallax background band.
type DasherLayer struct {
	Name    string  `yaml:"name"`    // far, middle, fore
	Width   int     `yaml:"width"`   // Texture width in pixels
	Height  int     `yaml:"height"`  // Texture height in pixels
	Speed   float64 `yaml:"speed"`   // Leftward scroll speed
	Scale   float64 `yaml:"scale"`   // Draw scale
	Pattern string  `yaml:"pattern"` // Terminal skyline pattern: skyline, towers, street
}

// DasherCollision defines hit detection leniency.
type DasherCollision struct {
	Padding float64 `yaml:"padding"` // Inset applied to every obstacle rectangle
}

// DasherFinish defines the win threshold.
type DasherFinish struct {
	Enabled bool    `yaml:"enabled"`
	Margin  float64 `yaml:"margin"` // Added to the last obstacle's spawn x
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a session.
type ProgressionConfig struct {
	Type  string  `yaml:"type"`   // "distance", "time", or "none"
	MaxAt float64 `yaml:"max_at"` // Pixels or seconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to obstacle speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ParsePreset maps a CLI value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
