package main

import (
	"bytes"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-dasher/internal/core"
	"github.com/vovakirdan/tui-dasher/internal/platform/tui"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play in the terminal",
	Long: `Start a run in the terminal. The variant defaults to dasher.

Controls:
  Space/Up/W  - Jump
  P/Esc       - Pause
  Ctrl+S      - Save a screenshot to ~/.dasher/screenshots
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Start at lowest difficulty, wider hit margin
  normal - Start at 30% difficulty
  hard   - Start at 70% difficulty, tighter hit margin
  fixed  - No progression

Examples:
  dasher play
  dasher play dasher_endless --difficulty hard
  dasher play --config ./my-dasher.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd, &flagConfig, &flagDifficulty)
}

func runPlay(_ *cobra.Command, args []string) error {
	variant, err := resolveVariant(args)
	if err != nil {
		return err
	}
	game, err := newGame(variant, flagConfig, flagDifficulty)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	// The program owns the terminal; hold log lines until it exits.
	var held bytes.Buffer
	sessionLog := logger.With()
	sessionLog.SetOutput(&held)

	runErr := tui.Run(game, cfg, sessionLog)
	os.Stderr.Write(held.Bytes()) //nolint:errcheck // Best-effort log flush
	return runErr
}
