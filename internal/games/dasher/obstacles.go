package dasher

import (
	"fmt"

	"github.com/vovakirdan/tui-dasher/internal/config"
	"github.com/vovakirdan/tui-dasher/internal/core"
)

// Obstacle is one nebula: its animation state plus the slot index that
// staggers its spawn position.
type Obstacle struct {
	Frame AnimFrame
	Index int
}

// Field owns a fixed set of obstacles for the whole session. The backing
// slice is allocated once; obstacles are recycled, never freed.
type Field struct {
	obstacles  []Obstacle
	rects      []core.Rect
	frames     int     // Animation frames in the sheet
	screenW    float64 // Respawn base
	spacing    float64
	respawn    bool
	finishLine float64
}

// NewField places count obstacles on the floor at screenW + spacing*i.
// The finish line starts at the last spawn position plus margin.
func NewField(cfg config.DasherObstacles, screen config.DasherScreen, finishMargin float64) (*Field, error) {
	if cfg.Count < 1 || cfg.Count > config.MaxObstacles {
		return nil, fmt.Errorf("dasher: obstacle count %d outside 1..%d", cfg.Count, config.MaxObstacles)
	}
	if !(cfg.FrameRate > 0) {
		return nil, fmt.Errorf("%w: obstacle frame rate %v", ErrInvalidInterval, cfg.FrameRate)
	}

	f := &Field{
		obstacles: make([]Obstacle, cfg.Count),
		rects:     make([]core.Rect, cfg.Count),
		frames:    cfg.Sheet.Frames,
		screenW:   float64(screen.Width),
		spacing:   cfg.Spacing,
		respawn:   cfg.Respawn,
	}

	for i := range f.obstacles {
		frame, err := NewAnimFrame(cfg.Sheet, 1.0/cfg.FrameRate)
		if err != nil {
			return nil, fmt.Errorf("obstacle %d: %w", i, err)
		}
		frame.Pos = core.Vec2{
			X: f.spawnX(i),
			Y: float64(screen.Height) - frame.Src.H,
		}
		f.obstacles[i] = Obstacle{Frame: frame, Index: i}
	}

	f.finishLine = f.obstacles[len(f.obstacles)-1].Frame.Pos.X + finishMargin
	return f, nil
}

func (f *Field) spawnX(i int) float64 {
	return f.screenW + f.spacing*float64(i)
}

// AdvanceAll moves every obstacle, and the finish line, by velocity*dt.
func (f *Field) AdvanceAll(dt, velocity float64) {
	for i := range f.obstacles {
		f.obstacles[i].Frame.Pos.X += velocity * dt
	}
	f.finishLine += velocity * dt
}

// Animate advances every obstacle's animation; obstacles are never gated.
func (f *Field) Animate(dt float64) {
	for i := range f.obstacles {
		f.obstacles[i].Frame.Advance(f.frames, dt, true)
	}
}

// RespawnIfOffscreen moves obstacles whose right edge has passed the left
// screen boundary back to their spawn slot. It is a no-op when respawn is
// disabled. Returns the number of obstacles recycled.
func (f *Field) RespawnIfOffscreen() int {
	if !f.respawn {
		return 0
	}
	n := 0
	for i := range f.obstacles {
		o := &f.obstacles[i]
		if o.Frame.Pos.X <= -o.Frame.Src.W {
			o.Frame.Pos.X = f.spawnX(o.Index)
			n++
		}
	}
	return n
}

// FinishLine returns the current x of the win threshold.
func (f *Field) FinishLine() float64 {
	return f.finishLine
}

// Len returns the fixed number of obstacles.
func (f *Field) Len() int {
	return len(f.obstacles)
}

// At returns a copy of obstacle i.
func (f *Field) At(i int) Obstacle {
	return f.obstacles[i]
}

// Rects returns the unpadded bounds of every obstacle.
// The returned slice is reused by the next call.
func (f *Field) Rects() []core.Rect {
	for i, o := range f.obstacles {
		f.rects[i] = o.Frame.Bounds()
	}
	return f.rects
}
