package tui

import (
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/matrix-pong/internal/core"
)

var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func plain(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}

func TestRenderMatrixLayout(t *testing.T) {
	m := core.NewMatrix()
	m.SetPixel(0, 7, core.ColorPlayer) // top-left
	m.SetPixel(15, 0, core.ColorBall)  // bottom-right
	m.SetPixel(3, 3, core.ColorBackground)

	lines := strings.Split(plain(RenderMatrix(m, "#")), "\n")
	if len(lines) != core.MatrixHeight {
		t.Fatalf("got %d lines, expected %d", len(lines), core.MatrixHeight)
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != core.MatrixWidth {
			t.Errorf("line %d width = %d, expected %d", i, w, core.MatrixWidth)
		}
	}

	if lines[0][0] != '#' {
		t.Errorf("top-left = %q, expected lit", lines[0][0])
	}
	if lines[7][15] != '#' {
		t.Errorf("bottom-right = %q, expected lit", lines[7][15])
	}
	// Row 3 is the fifth line from the top
	if lines[4][3] != '#' {
		t.Errorf("background pixel = %q, expected drawn", lines[4][3])
	}
	if lines[4][4] != ' ' {
		t.Errorf("black pixel = %q, expected blank", lines[4][4])
	}
}

func TestRenderMatrixDefaultPixel(t *testing.T) {
	m := core.NewMatrix()
	m.SetPixel(1, 0, core.ColorBorder)

	lines := strings.Split(plain(RenderMatrix(m, "")), "\n")
	last := lines[len(lines)-1]
	if w := lipgloss.Width(last); w != 2*core.MatrixWidth {
		t.Errorf("row width = %d, expected %d", w, 2*core.MatrixWidth)
	}
	if !strings.HasPrefix(last, "  "+DefaultPixel) {
		t.Errorf("bottom row = %q, expected blank pixel then %q", last, DefaultPixel)
	}
}

func TestRenderSegments(t *testing.T) {
	seg := &core.SevenSegment{}
	seg.ShowDigit(0, 8)
	seg.ShowDigit(1, 1)

	got := strings.Split(plain(RenderSegments(seg)), "\n")
	want := []string{
		" _      ",
		"|_|    |",
		"|_|    |",
	}
	if len(got) != len(want) {
		t.Fatalf("got %d rows, expected %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d = %q, expected %q", i, got[i], want[i])
		}
	}
}

func TestRenderSegmentsBlank(t *testing.T) {
	seg := &core.SevenSegment{}

	// Unlit digits draw every segment dimmed
	got := strings.Split(plain(RenderSegments(seg)), "\n")
	if got[1] != "|_|  |_|" {
		t.Errorf("middle row = %q, expected dimmed eights", got[1])
	}
}

func TestRenderConsole(t *testing.T) {
	out := plain(RenderConsole([]string{"Player 1 Score: 3", "Game Paused"}))

	for _, want := range []string{"serial", "Player 1 Score: 3", "Game Paused"} {
		if !strings.Contains(out, want) {
			t.Errorf("console missing %q:\n%s", want, out)
		}
	}
}
