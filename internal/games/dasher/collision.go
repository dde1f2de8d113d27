package dasher

import "github.com/vovakirdan/tui-dasher/internal/core"

// Padded shrinks an obstacle rectangle by padding on every side, trimming
// the transparent margin around the visible sprite.
func Padded(r core.Rect, padding float64) core.Rect {
	return r.Inset(padding)
}

// Overlaps tests the unpadded player rectangle against a padded obstacle.
func Overlaps(player, obstacle core.Rect, padding float64) bool {
	return Padded(obstacle, padding).Intersects(player)
}

// Judge decides whether the player has hit any obstacle. A hit is
// permanent for the session.
type Judge struct {
	hit bool
}

// Evaluate reports whether the player overlaps any padded obstacle now
// or has done so at any earlier evaluation.
func (j *Judge) Evaluate(player core.Rect, obstacles []core.Rect, padding float64) bool {
	if j.hit {
		return true
	}
	for _, o := range obstacles {
		if Overlaps(player, o, padding) {
			j.hit = true
			return true
		}
	}
	return false
}

// Hit reports whether a collision has been recorded.
func (j *Judge) Hit() bool {
	return j.hit
}
