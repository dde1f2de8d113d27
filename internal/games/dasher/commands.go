package dasher

import "github.com/vovakirdan/tui-dasher/internal/core"

// TextureID names a texture owned by the frontend. The core only knows
// texture sizes (from config); pixels are the frontend's business.
type TextureID int

const (
	TexturePlayer TextureID = iota
	TextureObstacle
	TextureFar
	TextureMiddle
	TextureFore
)

// String returns the texture name used in logs and frontends.
func (t TextureID) String() string {
	switch t {
	case TexturePlayer:
		return "player"
	case TextureObstacle:
		return "obstacle"
	case TextureFar:
		return "far"
	case TextureMiddle:
		return "middle"
	case TextureFore:
		return "fore"
	default:
		return "unknown"
	}
}

// layerTexture maps a layer name from config to its texture.
func layerTexture(name string, i int) TextureID {
	switch name {
	case "far":
		return TextureFar
	case "middle":
		return TextureMiddle
	case "fore":
		return TextureFore
	}
	return TextureFar + TextureID(i%3)
}

// CommandKind tags a render command.
type CommandKind int

const (
	CmdClear  CommandKind = iota // Fill the surface with Color
	CmdRegion                    // Draw Src of Texture at Dst, scaled, tinted
	CmdText                      // Draw Text at Dst with font Size
)

// Command is one draw call for the frontend. Only the fields relevant to
// Kind are set.
type Command struct {
	Kind    CommandKind
	Texture TextureID
	Src     core.Rect
	Dst     core.Vec2
	Scale   float64
	Color   core.Color
	Text    string
	Size    int
	Layer   string // Pattern of the band for CmdRegion layer draws
}

// Stats are per-session counters shown in the HUD and logged at the end.
type Stats struct {
	Elapsed  float64 // Seconds simulated while playing
	Distance float64 // Pixels the world scrolled
	Jumps    int
	Frames   int
}

// Frame is the result of one StepFrame call.
type Frame struct {
	Result   Result
	Commands []Command
	Stats    Stats
}

// Result is the session outcome. Lost and Won are terminal.
type Result int

const (
	ResultPlaying Result = iota
	ResultLost
	ResultWon
)

// String returns a human-readable name for the result.
func (r Result) String() string {
	switch r {
	case ResultPlaying:
		return "playing"
	case ResultLost:
		return "lost"
	case ResultWon:
		return "won"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transition is possible.
func (r Result) Terminal() bool {
	return r == ResultLost || r == ResultWon
}

// transition returns next if r can move to it, otherwise r.
// Terminal results never change.
func (r Result) transition(next Result) Result {
	if r.Terminal() {
		return r
	}
	return next
}
