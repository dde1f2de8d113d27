package dasher

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-dasher/internal/config"
	"github.com/vovakirdan/tui-dasher/internal/core"
)

// Message texts and sizes for the terminal states.
const (
	LostMessage = "Game Over!"
	WonMessage  = "YOU WON!"
	lostSize    = 44
	wonSize     = 66
)

// Session owns every piece of per-run state and advances it one frame at a
// time. It is a pure function of (state, dt, jump): no clocks, no I/O.
// A Session is not safe for concurrent use.
type Session struct {
	cfg        config.DasherConfig
	player     AnimFrame
	body       Body
	floor      float64
	layers     []Layer
	field      *Field
	judge      Judge
	difficulty *config.DifficultyManager
	result     Result
	stats      Stats
	velocity   float64
	cmds       []Command
}

// NewSession validates cfg and builds a session with the player resting on
// the floor, every band at offset 0 and obstacles in their spawn slots.
func NewSession(cfg config.DasherConfig) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("dasher: invalid config: %w", err)
	}

	player, err := NewAnimFrame(cfg.Player.Sheet, 1.0/cfg.Player.FrameRate)
	if err != nil {
		return nil, fmt.Errorf("player: %w", err)
	}
	floor := float64(cfg.Screen.Height) - player.Src.H
	player.Pos = core.Vec2{X: cfg.Player.X, Y: floor}

	margin := 0.0
	if cfg.Finish.Enabled {
		margin = cfg.Finish.Margin
	}
	field, err := NewField(cfg.Obstacles, cfg.Screen, margin)
	if err != nil {
		return nil, err
	}

	layers := make([]Layer, len(cfg.Layers))
	for i, l := range cfg.Layers {
		layers[i] = NewLayer(l, layerTexture(l.Name, i))
	}

	return &Session{
		cfg:        cfg,
		player:     player,
		floor:      floor,
		layers:     layers,
		field:      field,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		velocity:   cfg.Obstacles.Velocity,
		cmds:       make([]Command, 0, 2*len(layers)+field.Len()+2),
	}, nil
}

// StepFrame advances the world by dt seconds and returns the draw commands
// for the frame. Once the session is lost or won the world is frozen and
// only the backdrop and the outcome message are drawn.
// The returned Commands slice is reused by the next call.
func (s *Session) StepFrame(dt float64, jump bool) Frame {
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		dt = 0
	}
	if !s.result.Terminal() {
		s.update(dt, jump)
	}
	return s.Snapshot()
}

// Snapshot returns the draw commands for the current state without
// advancing it. The returned Commands slice is reused by the next call.
func (s *Session) Snapshot() Frame {
	return Frame{
		Result:   s.result,
		Commands: s.render(),
		Stats:    s.stats,
	}
}

// update runs the pipeline: bands, player, obstacles, collision, finish.
func (s *Session) update(dt float64, jump bool) {
	for i := range s.layers {
		s.layers[i].Advance(dt)
	}

	// Player: grounded is decided from last frame's position so a jump
	// cannot be queued mid-air.
	grounded := Grounded(s.player.Pos, s.floor)
	s.body.Integrate(dt, s.cfg.Physics.Gravity, grounded)
	if s.body.ApplyJump(s.cfg.Physics.JumpImpulse, jump, grounded) {
		s.stats.Jumps++
	}
	s.player.Advance(s.cfg.Player.Sheet.Frames, dt, grounded)
	s.body.IntegratePosition(&s.player.Pos, dt)
	Land(&s.player.Pos, s.floor)

	// Obstacles and the finish line share one velocity.
	s.velocity = s.difficulty.Speed(s.cfg.Obstacles.Velocity, s.stats.Distance, s.stats.Elapsed)
	s.field.AdvanceAll(dt, s.velocity)
	s.field.Animate(dt)
	s.field.RespawnIfOffscreen()

	s.stats.Elapsed += dt
	s.stats.Distance += math.Abs(s.velocity) * dt
	s.stats.Frames++

	playerRect := s.player.Bounds()
	if s.judge.Evaluate(playerRect, s.field.Rects(), s.cfg.Collision.Padding) {
		s.result = s.result.transition(ResultLost)
		return
	}
	if s.cfg.Finish.Enabled && playerRect.Right() >= s.field.FinishLine() {
		s.result = s.result.transition(ResultWon)
	}
}

// render emits the frame's draw commands into the reused buffer.
func (s *Session) render() []Command {
	cmds := s.cmds[:0]
	cmds = append(cmds, Command{Kind: CmdClear, Color: core.ColorBlack})

	for _, l := range s.layers {
		for _, x := range l.Tiles() {
			cmds = append(cmds, Command{
				Kind:    CmdRegion,
				Texture: l.Texture,
				Src:     core.NewRect(0, 0, float64(l.TextureWidth), float64(l.TextureH)),
				Dst:     core.Vec2{X: x, Y: 0},
				Scale:   l.Scale,
				Color:   core.ColorWhite,
				Layer:   l.Pattern,
			})
		}
	}

	w, h := float64(s.cfg.Screen.Width), float64(s.cfg.Screen.Height)
	switch s.result {
	case ResultLost:
		cmds = append(cmds, Command{
			Kind:  CmdText,
			Text:  LostMessage,
			Dst:   core.Vec2{X: w / 4, Y: h / 2},
			Size:  lostSize,
			Color: core.ColorBrightWhite,
		})
	case ResultWon:
		cmds = append(cmds, Command{
			Kind:  CmdText,
			Text:  WonMessage,
			Dst:   core.Vec2{X: w / 4, Y: h / 2},
			Size:  wonSize,
			Color: core.ColorBrightGreen,
		})
	default:
		for i := 0; i < s.field.Len(); i++ {
			o := s.field.At(i)
			cmds = append(cmds, Command{
				Kind:    CmdRegion,
				Texture: TextureObstacle,
				Src:     o.Frame.Src,
				Dst:     o.Frame.Pos,
				Scale:   1,
				Color:   core.ColorWhite,
			})
		}
		cmds = append(cmds, Command{
			Kind:    CmdRegion,
			Texture: TexturePlayer,
			Src:     s.player.Src,
			Dst:     s.player.Pos,
			Scale:   1,
			Color:   core.ColorWhite,
		})
	}

	s.cmds = cmds
	return cmds
}

// Result returns the current outcome.
func (s *Session) Result() Result {
	return s.result
}

// ShouldTerminate reports whether the session has reached a terminal result.
func (s *Session) ShouldTerminate() bool {
	return s.result.Terminal()
}

// Stats returns the session counters.
func (s *Session) Stats() Stats {
	return s.stats
}

// Player returns the player's animation state.
func (s *Session) Player() AnimFrame {
	return s.player
}

// Velocity returns the player's vertical velocity.
func (s *Session) Velocity() float64 {
	return s.body.Velocity
}

// ObstacleSpeed returns the horizontal obstacle velocity of the last frame.
func (s *Session) ObstacleSpeed() float64 {
	return s.velocity
}

// Floor returns the player's resting top-left y.
func (s *Session) Floor() float64 {
	return s.floor
}

// FinishLine returns the current win threshold x.
func (s *Session) FinishLine() float64 {
	return s.field.FinishLine()
}

// Field returns the obstacle field.
func (s *Session) Field() *Field {
	return s.field
}

// Layers returns a copy of the background bands.
func (s *Session) Layers() []Layer {
	out := make([]Layer, len(s.layers))
	copy(out, s.layers)
	return out
}

// Config returns the configuration the session was built from.
func (s *Session) Config() config.DasherConfig {
	return s.cfg
}
