package dasher

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-dasher/internal/config"
	"github.com/vovakirdan/tui-dasher/internal/core"
)

func testRaster() Raster {
	return Raster{WorldW: 512, WorldH: 380}
}

func TestRasterDrawsPlayer(t *testing.T) {
	s := newTestSession(t, nil)
	f := s.StepFrame(1.0/60, false)

	dst := core.NewScreen(80, 24)
	testRaster().Draw(dst, f.Commands)

	// Player box: x 192..320 -> cells 30..50, head at row floor(252*24/380).
	if got := dst.Get(35, 15); got != PlayerHead {
		t.Errorf("expected player head at (35,15), got %q\n%s", got, dst.String())
	}
	if got := dst.GetCell(35, 17); got.Rune != PlayerBody || got.Color != core.ColorYellow {
		t.Errorf("expected player body at (35,17), got %+v", got)
	}
}

func TestRasterDrawsObstacle(t *testing.T) {
	cmds := []Command{
		{Kind: CmdClear, Color: core.ColorBlack},
		{
			Kind:    CmdRegion,
			Texture: TextureObstacle,
			Src:     core.NewRect(300, 0, 100, 100),
			Dst:     core.Vec2{X: 256, Y: 280},
			Scale:   1,
		},
	}
	dst := core.NewScreen(80, 24)
	testRaster().Draw(dst, cmds)

	// Box 40..55 x 17..24; its center holds the frame-3 glyph.
	if got := dst.GetCell(47, 20); got.Rune != nebulaGlyphs[3] || got.Color != core.ColorMagenta {
		t.Errorf("expected nebula glyph at center, got %+v\n%s", got, dst.String())
	}
	if got := dst.Get(40, 17); got != ClearChar {
		t.Errorf("ellipse corner should stay clear, got %q", got)
	}
}

func TestRasterOutcomeText(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.DasherConfig)
		text   string
	}{
		{
			name: "lost",
			mutate: func(c *config.DasherConfig) {
				c.Player.X = 448
				c.Collision.Padding = 0
			},
			text: LostMessage,
		},
		{
			name:   "won",
			mutate: func(c *config.DasherConfig) { c.Finish.Margin = -10000 },
			text:   spaced(WonMessage),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSession(t, tc.mutate)
			f := s.StepFrame(1.0/60, false)

			dst := core.NewScreen(80, 24)
			testRaster().Draw(dst, f.Commands)

			out := dst.String()
			if !strings.Contains(out, tc.text) {
				t.Errorf("screen does not contain %q\n%s", tc.text, out)
			}
			if strings.ContainsRune(out, PlayerHead) {
				t.Error("player drawn after the session ended")
			}
		})
	}
}

func TestRasterTextLift(t *testing.T) {
	cmd := Command{Kind: CmdText, Text: "HI", Dst: core.Vec2{X: 128, Y: 190}, Size: 20}

	find := func(lift int) int {
		dst := core.NewScreen(40, 20)
		Raster{WorldW: 512, WorldH: 380, TextLift: lift}.Draw(dst, []Command{cmd})
		for y := 0; y < dst.Height(); y++ {
			if strings.Contains(dst.Row(y), "HI") {
				return y
			}
		}
		return -1
	}

	rest := find(0)
	if rest != 10 {
		t.Fatalf("text row = %d, expected 10", rest)
	}
	if got := find(4); got != rest-4 {
		t.Errorf("lifted text row = %d, expected %d", got, rest-4)
	}
}

func TestRasterBandScrollsWithOffset(t *testing.T) {
	band := func(x float64) *core.Screen {
		dst := core.NewScreen(80, 24)
		testRaster().Draw(dst, []Command{{
			Kind:    CmdRegion,
			Texture: TextureFar,
			Src:     core.NewRect(0, 0, 256, 192),
			Dst:     core.Vec2{X: x, Y: 0},
			Scale:   2,
			Layer:   "skyline",
		}})
		return dst
	}

	const shift = 5
	cell := 512.0 / 80
	a := band(0)
	b := band(-cell * shift)

	for y := 0; y < 24; y++ {
		for x := 0; x < 60; x++ {
			if a.Get(x+shift, y) != b.Get(x, y) {
				t.Fatalf("band did not shift by %d cells at (%d,%d)", shift, x, y)
			}
		}
	}

	drawn := false
	for x := 0; x < 80; x++ {
		if a.Get(x, 23) == bandStyles["skyline"].glyph {
			drawn = true
			break
		}
	}
	if !drawn {
		t.Error("skyline band drew nothing on the bottom row")
	}
}

func TestSpaced(t *testing.T) {
	if got := spaced("YOU WON!"); got != "Y O U   W O N !" {
		t.Errorf("spaced() = %q", got)
	}
}

func TestBandProfile(t *testing.T) {
	for _, pattern := range []string{"skyline", "towers", "street", "unknown"} {
		style := bandStyleFor(pattern)
		gaps := 0
		for u := 0.0; u < 256; u += 4 {
			h := BandProfile(pattern, u)
			if h == 0 {
				gaps++
				continue
			}
			if h < style.minH || h > style.maxH {
				t.Errorf("%s: height %v at %v outside [%v, %v]", pattern, h, u, style.minH, style.maxH)
			}
			// Columns in the same block share a height.
			block := float64(int(u/style.block)) * style.block
			if BandProfile(pattern, block) != h {
				t.Errorf("%s: block at %v is not flat", pattern, block)
			}
		}
		if style.gapMod == 0 && gaps > 0 {
			t.Errorf("%s: unexpected gaps", pattern)
		}
	}

	if BandColor("towers") != core.ColorBlue || BandColor("nope") != core.ColorGray {
		t.Error("BandColor mismatch")
	}
	if BandProfile("skyline", -1) != 0 {
		t.Error("negative column should be empty")
	}
}
