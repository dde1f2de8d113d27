package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-dasher/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawText(0, 0, "red", core.ColorRed)
	s.DrawText(4, 0, "blue", core.ColorBlue)
	s.DrawText(0, 1, "plain", core.ColorDefault)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, expected 2", len(lines))
	}
	for _, want := range []string{"red", "blue", "plain"} {
		if !strings.Contains(out, want) {
			t.Errorf("output lost %q: %q", want, out)
		}
	}
}

func TestRenderScreenEveryColorStyled(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorBlack; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("color %d has no style", c)
		}
	}
}
