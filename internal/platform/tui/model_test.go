package tui

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dasher/internal/core"
)

// recordingGame remembers what the model fed it.
type recordingGame struct {
	resetErr error
	dts      []float64
	jumps    int
	overAt   int // Step count at which the game ends; 0 for never
	state    core.GameState
}

func (g *recordingGame) ID() string    { return "recording" }
func (g *recordingGame) Title() string { return "Recording" }

func (g *recordingGame) Reset(core.RuntimeConfig) error { return g.resetErr }

func (g *recordingGame) Step(dt float64, in core.InputFrame) core.StepResult {
	g.dts = append(g.dts, dt)
	if in.Has(core.ActionJump) {
		g.jumps++
	}
	if g.overAt > 0 && len(g.dts) >= g.overAt {
		g.state.GameOver = true
	}
	return core.StepResult{State: g.state}
}

func (g *recordingGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "frame", core.ColorWhite)
}

func (g *recordingGame) State() core.GameState { return g.state }

func (g *recordingGame) Summary() []any {
	return []any{"steps", len(g.dts)}
}

func newTestModel(t *testing.T, g *recordingGame) (Model, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	m, err := NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 50}, log.New(&buf))
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	return m, &buf
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestNewModelResetError(t *testing.T) {
	g := &recordingGame{resetErr: errors.New("bad config")}
	if _, err := NewModel(g, core.DefaultConfig(), log.New(&bytes.Buffer{})); err == nil {
		t.Error("NewModel should surface Reset errors")
	}
}

func TestModelMeasuresFrameDelta(t *testing.T) {
	g := &recordingGame{}
	m, buf := newTestModel(t, g)

	if !strings.Contains(buf.String(), "session started") {
		t.Errorf("start not logged: %q", buf.String())
	}

	start := time.Unix(100, 0)
	m, _ = update(t, m, TickMsg(start))
	m, _ = update(t, m, TickMsg(start.Add(50*time.Millisecond)))
	_, _ = update(t, m, TickMsg(start.Add(40*time.Millisecond)))

	want := []float64{0.02, 0.05, 0}
	if len(g.dts) != len(want) {
		t.Fatalf("got %d steps, expected %d", len(g.dts), len(want))
	}
	for i := range want {
		if math.Abs(g.dts[i]-want[i]) > 1e-9 {
			t.Errorf("step %d: dt = %v, expected %v", i, g.dts[i], want[i])
		}
	}
}

func TestModelJumpLastsOneFrame(t *testing.T) {
	g := &recordingGame{}
	m, _ := newTestModel(t, g)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	now := time.Unix(0, 0)
	m, _ = update(t, m, TickMsg(now))
	_, _ = update(t, m, TickMsg(now.Add(time.Millisecond)))

	if g.jumps != 1 {
		t.Errorf("jumps = %d, expected 1", g.jumps)
	}
}

func TestModelLogsEndOnce(t *testing.T) {
	g := &recordingGame{overAt: 2}
	m, buf := newTestModel(t, g)

	now := time.Unix(0, 0)
	for i := 0; i < 4; i++ {
		m, _ = update(t, m, TickMsg(now.Add(time.Duration(i)*time.Millisecond)))
	}
	if !m.State().GameOver {
		t.Fatal("model should report game over")
	}
	if n := strings.Count(buf.String(), "session ended"); n != 1 {
		t.Errorf("session end logged %d times:\n%s", n, buf.String())
	}

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if strings.Contains(buf.String(), "session quit") {
		t.Error("quit after the end should not log again")
	}
}

func TestModelQuit(t *testing.T) {
	g := &recordingGame{}
	m, buf := newTestModel(t, g)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c should quit the program")
	}
	if !strings.Contains(buf.String(), "session quit") || !strings.Contains(buf.String(), "steps=0") {
		t.Errorf("quit not logged with summary: %q", buf.String())
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelViewAndResize(t *testing.T) {
	g := &recordingGame{}
	m, _ := newTestModel(t, g)

	view := m.View()
	if !strings.Contains(view, "frame") || !strings.Contains(view, "jump") {
		t.Errorf("view should hold the game and the help line:\n%s", view)
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	if m.screen.Width() != 60 || m.screen.Height() != 19 {
		t.Errorf("screen = %dx%d, expected 60x19", m.screen.Width(), m.screen.Height())
	}
	if len(g.dts) != 0 {
		t.Error("resize must not step the game")
	}
}
