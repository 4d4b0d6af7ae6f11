package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/matrix-pong/internal/core"
)

// DefaultPixel is the glyph drawn for one LED.
const DefaultPixel = "██"

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorBlack:      lipgloss.NewStyle(),
	core.ColorBackground: lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
	core.ColorBorder:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorPlayer:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBall:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorScore:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorRally:      lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
}

var (
	segmentOnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	segmentOffStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	consoleTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
)

// RenderMatrix converts the LED matrix to a styled string, top row first.
// Groups adjacent pixels with the same color to minimize ANSI escape sequences.
func RenderMatrix(m *core.Matrix, pixel string) string {
	if pixel == "" {
		pixel = DefaultPixel
	}
	blank := strings.Repeat(" ", lipgloss.Width(pixel))

	var sb strings.Builder
	sb.Grow(m.Width()*m.Height()*len(pixel)*2 + m.Height())

	for y := m.Height() - 1; y >= 0; y-- {
		if y < m.Height()-1 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < m.Width() {
			startColor := m.Pixel(x, y)

			var run strings.Builder
			for x < m.Width() && m.Pixel(x, y) == startColor {
				if startColor == core.ColorBlack {
					run.WriteString(blank)
				} else {
					run.WriteString(pixel)
				}
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorBlack]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// segmentArt returns the three text rows of one seven-segment digit.
// Unlit digits render their segments dimmed.
func segmentArt(pattern uint8, lit bool) [3]string {
	seg := func(bit uint, on string) string {
		off := strings.Repeat(" ", len(on))
		if !lit {
			return segmentOffStyle.Render(on)
		}
		if pattern&(1<<bit) != 0 {
			return segmentOnStyle.Render(on)
		}
		return segmentOffStyle.Render(off)
	}

	return [3]string{
		" " + seg(0, "_") + " ",
		seg(5, "|") + seg(6, "_") + seg(1, "|"),
		seg(4, "|") + seg(3, "_") + seg(2, "|"),
	}
}

// RenderSegments draws both seven-segment digits side by side.
func RenderSegments(s *core.SevenSegment) string {
	p1, lit1 := s.Pattern(0)
	p2, lit2 := s.Pattern(1)
	left := segmentArt(p1, lit1)
	right := segmentArt(p2, lit2)

	rows := make([]string, 3)
	for i := range rows {
		rows[i] = left[i] + "  " + right[i]
	}
	return strings.Join(rows, "\n")
}

// RenderConsole draws the serial console lines in a bordered panel.
func RenderConsole(lines []string) string {
	body := make([]string, 0, len(lines)+1)
	body = append(body, consoleTitleStyle.Render("serial"))
	body = append(body, lines...)
	return panelStyle.Render(strings.Join(body, "\n"))
}
