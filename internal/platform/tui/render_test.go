package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.DrawTextColored(2, 0, "██", core.ColorCyan)
	s.DrawTextColored(0, 1, "[]", core.ColorOrange)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	for _, want := range []string{"ab", "██", "[]"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestEveryColorHasStyle(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorBrightWhite; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("color %d has no style", c)
		}
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	got := styleFor(core.Color(200)).Render("x")
	if got != "x" {
		t.Errorf("unknown color should render plain, got %q", got)
	}
}
