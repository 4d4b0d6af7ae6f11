// Package tui provides the Bubble Tea integration for matrix-pong.
// It emulates the LED matrix, seven-segment display and serial console in the
// terminal and runs the game loop driver on a fixed poll tick.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger one game loop poll.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after pollMS.
func tickCmd(pollMS int64) tea.Cmd {
	if pollMS <= 0 {
		pollMS = 10
	}
	return tea.Tick(time.Duration(pollMS)*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
