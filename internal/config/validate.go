package config

import (
	"errors"
	"fmt"
)

// MaxObstacles bounds the fixed obstacle arena.
const MaxObstacles = 16

// Validate reports configuration errors that would make a session
// impossible to construct: empty sprite sheets, non-positive frame rates,
// a degenerate world, or an obstacle count outside the arena.
// All problems are returned joined.
func (c DasherConfig) Validate() error {
	var errs []error

	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen: size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height))
	}
	if err := c.Player.Sheet.validate("player.sheet"); err != nil {
		errs = append(errs, err)
	}
	if c.Player.FrameRate <= 0 {
		errs = append(errs, fmt.Errorf("player.frame_rate: must be positive, got %v", c.Player.FrameRate))
	}
	if err := c.Obstacles.Sheet.validate("obstacles.sheet"); err != nil {
		errs = append(errs, err)
	}
	if c.Obstacles.FrameRate <= 0 {
		errs = append(errs, fmt.Errorf("obstacles.frame_rate: must be positive, got %v", c.Obstacles.FrameRate))
	}
	if c.Obstacles.Count < 1 || c.Obstacles.Count > MaxObstacles {
		errs = append(errs, fmt.Errorf("obstacles.count: must be in 1..%d, got %d", MaxObstacles, c.Obstacles.Count))
	}
	if c.Collision.Padding < 0 {
		errs = append(errs, fmt.Errorf("collision.padding: must not be negative, got %v", c.Collision.Padding))
	}
	for i, l := range c.Layers {
		if l.Width <= 0 || l.Scale <= 0 {
			errs = append(errs, fmt.Errorf("layers[%d] (%s): width and scale must be positive", i, l.Name))
		}
	}

	return errors.Join(errs...)
}

func (s SpriteSheet) validate(field string) error {
	if s.Columns <= 0 || s.Rows <= 0 {
		return fmt.Errorf("%s: columns and rows must be positive, got %dx%d", field, s.Columns, s.Rows)
	}
	if s.Frames <= 0 || s.Frames > s.Columns {
		return fmt.Errorf("%s: frames must be in 1..%d, got %d", field, s.Columns, s.Frames)
	}
	if s.Width < s.Columns || s.Height < s.Rows {
		return fmt.Errorf("%s: %dx%d sheet is too small for %dx%d frames", field, s.Width, s.Height, s.Columns, s.Rows)
	}
	return nil
}
