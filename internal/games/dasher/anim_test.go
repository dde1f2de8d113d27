package dasher

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/tui-dasher/internal/config"
)

var playerSheet = config.SpriteSheet{Width: 768, Height: 128, Columns: 6, Rows: 1, Frames: 6}

func TestNewAnimFrame(t *testing.T) {
	a, err := NewAnimFrame(playerSheet, 1.0/12.0)
	if err != nil {
		t.Fatalf("NewAnimFrame() failed: %v", err)
	}
	if a.Src.W != 128 || a.Src.H != 128 {
		t.Errorf("frame size = %vx%v, expected 128x128", a.Src.W, a.Src.H)
	}
	if a.Index != 0 || a.Elapsed != 0 || a.Src.X != 0 {
		t.Errorf("new frame should start at 0, got %+v", a)
	}
}

func TestNewAnimFrameRejectsBadGeometry(t *testing.T) {
	tests := []struct {
		name     string
		sheet    config.SpriteSheet
		interval float64
		want     error
	}{
		{"zero columns", config.SpriteSheet{Width: 10, Height: 10, Rows: 1, Frames: 1}, 0.1, ErrInvalidFrameCount},
		{"zero frames", config.SpriteSheet{Width: 10, Height: 10, Columns: 1, Rows: 1}, 0.1, ErrInvalidFrameCount},
		{"zero interval", playerSheet, 0, ErrInvalidInterval},
		{"negative interval", playerSheet, -1, ErrInvalidInterval},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewAnimFrame(tc.sheet, tc.interval)
			if !errors.Is(err, tc.want) {
				t.Errorf("NewAnimFrame() error = %v, expected %v", err, tc.want)
			}
		})
	}
}

func TestAdvanceGateClosedOnlyAccumulates(t *testing.T) {
	a, _ := NewAnimFrame(playerSheet, 0.1)
	a.Index = 3
	a.Src.X = 2 * a.Src.W
	before := a

	for _, dt := range []float64{0, 0.05, 0.2, 1, 10} {
		a.Advance(6, dt, false)
		if a.Index != before.Index || a.Src != before.Src {
			t.Fatalf("gated Advance(dt=%v) changed frame: %+v", dt, a)
		}
	}
	if math.Abs(a.Elapsed-11.25) > 1e-9 {
		t.Errorf("Elapsed = %v, expected 11.25", a.Elapsed)
	}
}

func TestAdvanceStepsOncePerInterval(t *testing.T) {
	a, _ := NewAnimFrame(playerSheet, 0.1)

	a.Advance(6, 0.05, true)
	if a.Index != 0 {
		t.Errorf("Index advanced before interval elapsed: %d", a.Index)
	}

	a.Advance(6, 0.05, true)
	if a.Index != 1 || a.Elapsed != 0 {
		t.Errorf("after one interval: Index=%d Elapsed=%v, expected 1 and 0", a.Index, a.Elapsed)
	}
	if a.Src.X != 0 {
		t.Errorf("Src.X = %v, expected the pending frame 0", a.Src.X)
	}

	a.Advance(6, 0.2, true)
	if a.Index != 2 || a.Src.X != 128 {
		t.Errorf("second advance: Index=%d Src.X=%v, expected 2 and 128", a.Index, a.Src.X)
	}
}

func TestAdvanceIsCyclic(t *testing.T) {
	const frames = 6
	a, _ := NewAnimFrame(playerSheet, 0.1)
	a.Advance(frames, 0.1, true) // move off frame 0 first
	start := a.Index

	for i := 0; i < frames; i++ {
		a.Advance(frames, 0.5, true)
		if a.Index < 0 || a.Index >= frames {
			t.Fatalf("Index %d escaped [0, %d)", a.Index, frames)
		}
		if got := a.DisplayedFrame(); got < 0 || got >= frames {
			t.Fatalf("displayed frame %d escaped [0, %d)", got, frames)
		}
	}
	if a.Index != start {
		t.Errorf("after %d advances Index = %d, expected %d", frames, a.Index, start)
	}
}

func TestBounds(t *testing.T) {
	a, _ := NewAnimFrame(playerSheet, 0.1)
	a.Pos.X, a.Pos.Y = 192, 252
	b := a.Bounds()
	if b.X != 192 || b.Y != 252 || b.W != 128 || b.H != 128 {
		t.Errorf("Bounds() = %+v", b)
	}
}
