package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/cardstorm/internal/core"
)

func TestRenderScreenPlainRowsPassThrough(t *testing.T) {
	s := core.NewScreen(8, 2)
	s.DrawText(0, 0, "hello")

	out := RenderScreen(s)

	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("rendered %d lines, want 2", len(lines))
	}
	if lines[0] != "hello   " {
		t.Fatalf("row 0 = %q, want the raw cells", lines[0])
	}
	if lines[1] != strings.Repeat(" ", 8) {
		t.Fatalf("row 1 = %q, want blanks", lines[1])
	}
}

func TestRenderScreenKeepsColoredRunesInOrder(t *testing.T) {
	s := core.NewScreen(6, 1)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd")

	out := RenderScreen(s)

	// Styling depends on the terminal profile; the cell content and its
	// order must survive either way.
	for _, want := range []string{"ab", "cd"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output %q lost the run %q", out, want)
		}
	}
	if strings.Index(out, "ab") > strings.Index(out, "cd") {
		t.Fatalf("runs out of order: %q", out)
	}
}
