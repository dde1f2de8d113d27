package dasher

import "github.com/vovakirdan/tui-dasher/internal/core"

// Body is the player's vertical motion state.
// Screen coordinates: +y is down, so jumps are negative impulses.
type Body struct {
	Velocity float64
}

// Grounded reports whether a sprite whose resting top-left y is floor
// is standing on (or below) the floor.
func Grounded(pos core.Vec2, floor float64) bool {
	return pos.Y >= floor
}

// Integrate zeroes the velocity on the ground and applies gravity in the air.
func (b *Body) Integrate(dt, gravity float64, grounded bool) {
	if grounded {
		b.Velocity = 0
		return
	}
	b.Velocity += gravity * dt
}

// ApplyJump adds the impulse when a jump was requested this frame and the
// body is grounded. Integrate runs first, so the impulse always starts
// from zero and mid-air requests are ignored.
func (b *Body) ApplyJump(impulse float64, requested, grounded bool) bool {
	if !requested || !grounded {
		return false
	}
	b.Velocity += impulse
	return true
}

// IntegratePosition moves pos by the current velocity.
func (b *Body) IntegratePosition(pos *core.Vec2, dt float64) {
	pos.Y += b.Velocity * dt
}

// Land snaps a body that fell through the floor back onto it.
func Land(pos *core.Vec2, floor float64) {
	if pos.Y > floor {
		pos.Y = floor
	}
}
