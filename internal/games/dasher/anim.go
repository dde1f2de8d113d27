package dasher

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-dasher/internal/config"
	"github.com/vovakirdan/tui-dasher/internal/core"
)

var (
	// ErrInvalidFrameCount is returned when a sprite sheet has no frames.
	ErrInvalidFrameCount = errors.New("dasher: frame count must be positive")
	// ErrInvalidInterval is returned when a frame interval is not positive.
	ErrInvalidInterval = errors.New("dasher: frame interval must be positive")
)

// AnimFrame is the animation state of one sprite: which part of its sheet
// is displayed, where it is in the world, and how long until the next frame.
type AnimFrame struct {
	Src      core.Rect // Sub-rectangle of the sprite sheet currently displayed
	Pos      core.Vec2 // World-space top-left
	Index    int       // Next frame to display, in [0, frameCount)
	Interval float64   // Seconds per frame
	Elapsed  float64   // Seconds accumulated since the last frame advance
}

// NewAnimFrame builds frame 0 of a sheet. Frame size is the sheet size
// divided by its grid; an empty grid or non-positive interval is rejected.
func NewAnimFrame(sheet config.SpriteSheet, interval float64) (AnimFrame, error) {
	if sheet.Columns <= 0 || sheet.Rows <= 0 || sheet.Frames <= 0 {
		return AnimFrame{}, fmt.Errorf("%w: %dx%d grid with %d frames", ErrInvalidFrameCount, sheet.Columns, sheet.Rows, sheet.Frames)
	}
	if !(interval > 0) {
		return AnimFrame{}, fmt.Errorf("%w: %v", ErrInvalidInterval, interval)
	}

	return AnimFrame{
		Src: core.NewRect(0, 0,
			float64(sheet.Width/sheet.Columns),
			float64(sheet.Height/sheet.Rows)),
		Interval: interval,
	}, nil
}

// Advance accumulates dt and, when gate is open and a full interval has
// passed, moves the source rectangle to the pending frame and steps the
// index, wrapping at frameCount.
func (a *AnimFrame) Advance(frameCount int, dt float64, gate bool) {
	a.Elapsed += dt
	if !gate || a.Elapsed < a.Interval {
		return
	}

	a.Elapsed = 0
	a.Src.X = float64(a.Index) * a.Src.W
	a.Index++
	if a.Index >= frameCount {
		a.Index = 0
	}
}

// Bounds returns the unpadded world-space rectangle of the sprite.
func (a AnimFrame) Bounds() core.Rect {
	return core.NewRect(a.Pos.X, a.Pos.Y, a.Src.W, a.Src.H)
}

// DisplayedFrame returns the sheet column currently shown.
func (a AnimFrame) DisplayedFrame() int {
	if a.Src.W <= 0 {
		return 0
	}
	return int(a.Src.X / a.Src.W)
}
