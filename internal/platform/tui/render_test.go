package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/gridblast/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 3)
	s.DrawText(0, 0, "score")
	s.DrawTextColored(2, 1, "██", core.ColorBrightCyan)
	s.DrawTextColored(4, 1, "··", core.ColorGray)
	s.SetColored(9, 2, 'x', core.Color(200))

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("rendered %d lines, expected 3", len(lines))
	}

	for y, line := range lines {
		if got, want := ansi.Strip(line), s.Row(y); got != want {
			t.Errorf("row %d = %q, expected %q", y, got, want)
		}
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	if got := styleFor(core.ColorCount).Render("a"); got != "a" {
		t.Errorf("unknown colour rendered %q, expected plain text", got)
	}
}
