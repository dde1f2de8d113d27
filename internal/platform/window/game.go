// Package window runs dasher in a desktop window with ebitengine. It
// executes the same draw commands as the terminal frontend at native
// pixel size, using generated textures.
package window

import (
	"fmt"
	"image"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-dasher/internal/core"
	"github.com/vovakirdan/tui-dasher/internal/games/dasher"
)

// Game is an ebiten.Game driving one dasher session.
type Game struct {
	game    *dasher.Game
	logger  *log.Logger
	width   int
	height  int
	clock   core.FrameClock
	sources map[texKey]*image.RGBA
	images  map[texKey]*ebiten.Image
	texts   map[string]*ebiten.Image
	ended   bool
}

// New resets game and prepares its textures.
func New(game *dasher.Game, tickRate int, logger *log.Logger) (*Game, error) {
	if logger == nil {
		logger = log.Default()
	}

	if err := game.Reset(core.RuntimeConfig{TickRate: tickRate}); err != nil {
		return nil, fmt.Errorf("start %s: %w", game.ID(), err)
	}
	session := game.Session()
	cfg := session.Config()
	logger.Info("session started", game.Summary()...)

	sources := map[texKey]*image.RGBA{
		{id: dasher.TexturePlayer}:   PlayerSheet(cfg.Player.Sheet),
		{id: dasher.TextureObstacle}: NebulaSheet(cfg.Obstacles.Sheet),
	}
	for _, l := range session.Layers() {
		sources[texKey{id: l.Texture, pattern: l.Pattern}] = BandTexture(l.Pattern, l.TextureWidth, l.TextureH)
	}

	return &Game{
		game:    game,
		logger:  logger,
		width:   cfg.Screen.Width,
		height:  cfg.Screen.Height,
		clock:   core.NewFrameClock(tickRate),
		sources: sources,
		images:  make(map[texKey]*ebiten.Image, len(sources)),
		texts:   make(map[string]*ebiten.Image),
	}, nil
}

// Update advances the session by the wall time since the last update.
func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ) {
		if !g.ended {
			g.logger.Info("session quit", g.game.Summary()...)
			g.ended = true
		}
		return ebiten.Termination
	}

	in := core.NewInputFrame()
	if ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyUp) {
		in.Set(core.ActionJump)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		in.Set(core.ActionPause)
	}

	res := g.game.Step(g.clock.Delta(time.Now()), in)
	if res.State.GameOver && !g.ended {
		g.logger.Info("session ended", g.game.Summary()...)
		g.ended = true
	}
	return nil
}

// Draw executes the frame's commands, then the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	lift := g.game.BannerLift() * float64(g.height) / 2

	for _, c := range g.game.Frame().Commands {
		switch c.Kind {
		case dasher.CmdClear:
			screen.Fill(toRGBA(c.Color))
		case dasher.CmdRegion:
			op := regionOp(c)
			img := g.texture(op.key)
			if img == nil {
				continue
			}
			opts := &ebiten.DrawImageOptions{GeoM: op.geoM()}
			screen.DrawImage(img.SubImage(op.src).(*ebiten.Image), opts)
		case dasher.CmdText:
			g.drawText(screen, c.Text, textOp(c, lift))
		}
	}

	stats := g.game.Frame().Stats
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("Dist %d  Time %.1fs  Jumps %d", int(stats.Distance), stats.Elapsed, stats.Jumps), 4, 4)
	if g.game.State().Paused {
		g.drawText(screen, "PAUSED", drawOp{scale: 2, x: float64(g.width)/2 - 36, y: float64(g.height)/2 - 16})
	}
}

// Layout keeps the world's logical size; ebiten scales it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// texture returns the ebiten image for key, uploading it on first use.
func (g *Game) texture(key texKey) *ebiten.Image {
	if img, ok := g.images[key]; ok {
		return img
	}
	src, ok := g.sources[key]
	if !ok {
		return nil
	}
	img := ebiten.NewImageFromImage(src)
	g.images[key] = img
	return img
}

// drawText renders text with the debug font into a cached image and draws
// it scaled.
func (g *Game) drawText(screen *ebiten.Image, text string, op drawOp) {
	img, ok := g.texts[text]
	if !ok {
		img = ebiten.NewImage(len(text)*6+2, debugGlyphH)
		ebitenutil.DebugPrint(img, text)
		g.texts[text] = img
	}
	screen.DrawImage(img, &ebiten.DrawImageOptions{GeoM: op.geoM()})
}

// Run opens a window and plays game until it is closed or Escape is pressed.
func Run(game *dasher.Game, tickRate int, logger *log.Logger) error {
	g, err := New(game, tickRate, logger)
	if err != nil {
		return err
	}

	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowSize(g.width*2, g.height*2)
	if tickRate > 0 {
		ebiten.SetTPS(tickRate)
	}
	return ebiten.RunGame(g)
}
