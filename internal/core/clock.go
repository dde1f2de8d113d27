package core

import "time"

// FrameClock measures the time between consecutive frames.
type FrameClock struct {
	last    time.Time
	nominal float64 // Seconds per frame, used for the first frame
}

// NewFrameClock returns a clock whose first frame lasts 1/tickRate seconds.
// A non-positive tickRate means 60.
func NewFrameClock(tickRate int) FrameClock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return FrameClock{nominal: 1.0 / float64(tickRate)}
}

// Delta returns the seconds since the previous call. The first call gets
// the nominal frame time; a clock that ran backwards yields 0.
func (c *FrameClock) Delta(now time.Time) float64 {
	if c.last.IsZero() {
		c.last = now
		return c.nominal
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	if dt < 0 {
		return 0
	}
	return dt
}
