package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to the host surface and frame pacing.
type RuntimeConfig struct {
	ScreenW  int // Surface width in characters (terminal) or pixels (window)
	ScreenH  int // Surface height in characters (terminal) or pixels (window)
	TickRate int // Target frames per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score (distance travelled)
	GameOver bool // Whether the game has ended, won or lost
	Won      bool // Whether the ending was a win
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State GameState
}
