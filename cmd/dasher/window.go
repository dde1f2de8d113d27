package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dasher/internal/platform/window"
)

var (
	flagWindowConfig     string
	flagWindowDifficulty string
)

var windowCmd = &cobra.Command{
	Use:   "window [variant]",
	Short: "Play in a desktop window",
	Long: `Start a run in a desktop window at the world's native 512x380 size,
scaled up 2x.

Controls:
  Space/Up  - Jump (hold to jump again on landing)
  P         - Pause
  Esc/Q     - Quit

Examples:
  dasher window
  dasher window dasher_endless --fps 120`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindow,
}

func init() {
	addGameFlags(windowCmd, &flagWindowConfig, &flagWindowDifficulty)
}

func runWindow(_ *cobra.Command, args []string) error {
	variant, err := resolveVariant(args)
	if err != nil {
		return err
	}
	game, err := newGame(variant, flagWindowConfig, flagWindowDifficulty)
	if err != nil {
		return err
	}
	return window.Run(game, flagFPS, logger)
}
