package dasher

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-dasher/internal/config"
	"github.com/vovakirdan/tui-dasher/internal/core"
	"github.com/vovakirdan/tui-dasher/internal/registry"
)

// isolate keeps user and working-directory configs out of the test and
// restores the CLI overrides afterwards.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())
	t.Cleanup(func() {
		SetConfigPath("")
		SetDifficultyPreset("")
	})
}

// writeConfig writes the embedded dasher YAML with one substitution.
func writeConfig(t *testing.T, old, new string) string {
	t.Helper()
	data := strings.Replace(string(config.GetDefaultYAML(config.VariantDasher)), old, new, 1)
	path := filepath.Join(t.TempDir(), "dasher.yaml")
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func jumpInput() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionJump)
	return in
}

func pauseInput() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	return in
}

func TestVariantsRegistered(t *testing.T) {
	tests := []struct {
		id    string
		title string
	}{
		{config.VariantDasher, "Dasher"},
		{config.VariantEndless, "Dasher Endless"},
	}

	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			g, err := registry.Create(tc.id)
			if err != nil {
				t.Fatalf("Create() failed: %v", err)
			}
			if g.ID() != tc.id || g.Title() != tc.title {
				t.Errorf("got %s/%q", g.ID(), g.Title())
			}
		})
	}
}

func TestGameResetLoadsVariant(t *testing.T) {
	isolate(t)

	tests := []struct {
		variant   string
		obstacles int
		finish    bool
	}{
		{config.VariantDasher, 5, true},
		{config.VariantEndless, 3, false},
	}

	for _, tc := range tests {
		t.Run(tc.variant, func(t *testing.T) {
			g := New(tc.variant)
			if err := g.Reset(core.DefaultConfig()); err != nil {
				t.Fatalf("Reset() failed: %v", err)
			}
			cfg := g.Session().Config()
			if cfg.Obstacles.Count != tc.obstacles || cfg.Finish.Enabled != tc.finish {
				t.Errorf("loaded %d obstacles, finish=%v", cfg.Obstacles.Count, cfg.Finish.Enabled)
			}
			if len(g.Frame().Commands) == 0 {
				t.Error("Reset should prepare a frame to draw")
			}
			if g.Session().Stats().Frames != 0 {
				t.Error("Reset should not advance the session")
			}
		})
	}
}

func TestGameResetBadConfig(t *testing.T) {
	isolate(t)

	SetConfigPath(filepath.Join(t.TempDir(), "missing.yaml"))
	if err := New(config.VariantDasher).Reset(core.DefaultConfig()); err == nil {
		t.Error("Reset with a missing config file should fail")
	}

	SetConfigPath(writeConfig(t, "frame_rate: 12", "frame_rate: 0"))
	if err := New(config.VariantDasher).Reset(core.DefaultConfig()); err == nil {
		t.Error("Reset with an invalid config should fail")
	}
}

func TestGameStepAndPause(t *testing.T) {
	isolate(t)

	g := New(config.VariantDasher)
	if err := g.Reset(core.DefaultConfig()); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}

	res := g.Step(1.0/60, jumpInput())
	if res.State.GameOver || res.State.Score == 0 {
		t.Fatalf("unexpected state after first step: %+v", res.State)
	}
	if g.Session().Velocity() != -600 {
		t.Errorf("jump not applied, velocity = %v", g.Session().Velocity())
	}

	res = g.Step(1.0/60, pauseInput())
	if !res.State.Paused {
		t.Fatal("pause should toggle on")
	}
	score := res.State.Score
	for i := 0; i < 10; i++ {
		res = g.Step(1.0/60, core.NewInputFrame())
	}
	if res.State.Score != score {
		t.Errorf("paused game advanced: %d -> %d", score, res.State.Score)
	}

	res = g.Step(1.0/60, pauseInput())
	if res.State.Paused {
		t.Fatal("pause should toggle off")
	}
	res = g.Step(1.0/60, core.NewInputFrame())
	if res.State.Score <= score {
		t.Error("unpaused game should advance")
	}
}

func TestGameWinShowsBanner(t *testing.T) {
	isolate(t)
	SetConfigPath(writeConfig(t, "margin: 800", "margin: -10000"))

	g := New(config.VariantDasher)
	if err := g.Reset(core.DefaultConfig()); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	if g.BannerLift() != 0 {
		t.Error("no banner while playing")
	}

	res := g.Step(1.0/60, core.NewInputFrame())
	if !res.State.GameOver || !res.State.Won {
		t.Fatalf("expected a win, got %+v", res.State)
	}
	if g.BannerLift() != 1 {
		t.Errorf("banner should start raised, lift = %v", g.BannerLift())
	}

	for i := 0; i < 120; i++ {
		g.Step(1.0/60, pauseInput())
	}
	if g.BannerLift() > 1e-3 {
		t.Errorf("banner should settle, lift = %v", g.BannerLift())
	}
	if g.State().Paused {
		t.Error("a finished game cannot be paused")
	}

	dst := core.NewScreen(80, 24)
	g.Render(dst)
	if !strings.Contains(dst.String(), spaced(WonMessage)) {
		t.Errorf("win banner missing:\n%s", dst.String())
	}
}

func TestGameRenderHUD(t *testing.T) {
	isolate(t)

	tests := []struct {
		variant string
		right   string
	}{
		{config.VariantDasher, "Finish:"},
		{config.VariantEndless, "Spd: 230"},
	}

	for _, tc := range tests {
		t.Run(tc.variant, func(t *testing.T) {
			g := New(tc.variant)
			if err := g.Reset(core.DefaultConfig()); err != nil {
				t.Fatalf("Reset() failed: %v", err)
			}
			g.Step(1.0/60, core.NewInputFrame())

			dst := core.NewScreen(80, 24)
			g.Render(dst)
			top := dst.Row(0)
			if !strings.Contains(top, "Dist:") || !strings.Contains(top, tc.right) {
				t.Errorf("HUD row = %q", top)
			}
		})
	}
}

func TestGamePausedMessage(t *testing.T) {
	isolate(t)

	g := New(config.VariantDasher)
	if err := g.Reset(core.DefaultConfig()); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	g.Step(1.0/60, pauseInput())

	dst := core.NewScreen(80, 24)
	g.Render(dst)
	if !strings.Contains(dst.String(), "PAUSED") {
		t.Error("paused game should show the pause box")
	}
}

func TestGameSummary(t *testing.T) {
	isolate(t)

	g := New(config.VariantEndless)
	if got := g.Summary(); len(got) != 2 {
		t.Errorf("summary before Reset = %v", got)
	}
	if err := g.Reset(core.DefaultConfig()); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	g.Step(1.0/60, jumpInput())

	got := g.Summary()
	if len(got)%2 != 0 {
		t.Fatalf("summary has odd length: %v", got)
	}
	fields := map[any]any{}
	for i := 0; i < len(got); i += 2 {
		fields[got[i]] = got[i+1]
	}
	if fields["result"] != "playing" || fields["jumps"] != 1 {
		t.Errorf("summary = %v", got)
	}
}

// chdir changes the working directory for the duration of the test
// (stand-in for testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
