// Package dasher implements a parallax side-scrolling runner: the player
// jumps animated nebulae scrolling in from the right until they either hit
// one or cross the finish line.
package dasher

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-dasher/internal/config"
	"github.com/vovakirdan/tui-dasher/internal/core"
	"github.com/vovakirdan/tui-dasher/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names keep the
// config's own difficulty.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game adapts a Session to the registry.Game interface and adds what the
// session itself does not know about: pausing, the HUD and the banner.
type Game struct {
	variant string
	title   string
	runtime core.RuntimeConfig
	session *Session
	frame   Frame
	banner  *Banner
	paused  bool
}

// New creates a game for a variant ("dasher" or "dasher_endless").
func New(variant string) *Game {
	title := "Dasher"
	if variant == config.VariantEndless {
		title = "Dasher Endless"
	}
	return &Game{variant: variant, title: title}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.variant
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Reset loads the variant's config and starts a new session.
func (g *Game) Reset(runtime core.RuntimeConfig) error {
	g.runtime = runtime

	cfg, err := config.Load(g.variant, configPath)
	if err != nil {
		return err
	}
	if difficultyPreset != "" {
		config.ApplyDasherPreset(&cfg, difficultyPreset)
	}

	session, err := NewSession(cfg)
	if err != nil {
		return fmt.Errorf("%s: %w", g.variant, err)
	}

	g.session = session
	g.frame = session.Snapshot()
	g.banner = nil
	g.paused = false
	return nil
}

// Step advances the game by dt seconds.
func (g *Game) Step(dt float64, in core.InputFrame) core.StepResult {
	if g.session == nil {
		return core.StepResult{State: g.State()}
	}

	if g.session.ShouldTerminate() {
		if g.banner != nil {
			g.banner.Update(dt)
		}
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.frame = g.session.StepFrame(dt, in.Has(core.ActionJump))
	if g.frame.Result.Terminal() {
		g.banner = NewBanner(1)
	}

	return core.StepResult{State: g.State()}
}

// Render draws the current frame and HUD to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}

	cfg := g.session.Config()
	r := Raster{
		WorldW:   float64(cfg.Screen.Width),
		WorldH:   float64(cfg.Screen.Height),
		TextLift: int(math.Round(g.BannerLift() * float64(dst.Height()/2))),
	}
	r.Draw(dst, g.frame.Commands)

	// Draw HUD
	stats := g.frame.Stats
	left := fmt.Sprintf(" Dist: %d  Time: %.1fs ", int(stats.Distance), stats.Elapsed)
	dst.DrawText(2, 0, left, core.ColorBrightWhite)

	var right string
	if cfg.Finish.Enabled {
		togo := math.Max(g.session.FinishLine()-g.session.Player().Bounds().Right(), 0)
		right = fmt.Sprintf(" Finish: %d ", int(togo))
	} else {
		right = fmt.Sprintf(" Spd: %d ", int(math.Abs(g.session.ObstacleSpeed())))
	}
	dst.DrawText(dst.Width()-len(right)-2, 0, right, core.ColorBrightWhite)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorDefault)

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title, core.ColorBrightWhite)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle, core.ColorGray)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    int(g.session.Stats().Distance),
		GameOver: g.session.ShouldTerminate(),
		Won:      g.session.Result() == ResultWon,
		Paused:   g.paused,
	}
}

// Frame returns the commands and stats of the last step.
func (g *Game) Frame() Frame {
	return g.frame
}

// Session returns the running session, or nil before Reset.
func (g *Game) Session() *Session {
	return g.session
}

// BannerLift returns how far the outcome banner is raised, as a fraction
// of half the screen height. It is 0 while playing and once settled.
func (g *Game) BannerLift() float64 {
	if g.banner == nil {
		return 0
	}
	return g.banner.Lift()
}

// Summary returns key/value pairs describing the session for logging.
func (g *Game) Summary() []any {
	if g.session == nil {
		return []any{"variant", g.variant}
	}
	stats := g.session.Stats()
	return []any{
		"variant", g.variant,
		"result", g.session.Result().String(),
		"elapsed", fmt.Sprintf("%.2fs", stats.Elapsed),
		"distance", int(stats.Distance),
		"jumps", stats.Jumps,
	}
}

// Register the variants with the registry
func init() {
	registry.Register(config.VariantDasher, func() registry.Game {
		return New(config.VariantDasher)
	})
	registry.Register(config.VariantEndless, func() registry.Game {
		return New(config.VariantEndless)
	})
}
