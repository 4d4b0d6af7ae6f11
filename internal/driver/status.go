package driver

import (
	"fmt"

	"github.com/vovakirdan/matrix-pong/internal/game"
)

// Console messages shown next to the matrix.
const (
	TitleLine    = "PONG"
	StartPrompt  = "Press a button or 's'/'S' to start"
	PausedLine   = "Game Paused"
	GameOverLine = "GAME OVER"
	NewGameLine  = "Press a button or 's'/'S' to start a new game"
)

// Status is a read-only view of the driver for the platform layer.
type Status struct {
	Mode       Mode
	Score1     int
	Score2     int
	Rally1     int
	Rally2     int
	WinScore   int
	SpeedIndex int
	SpeedMS    int64
	Overlay    game.OverlayState
	Frame      int
	Winner     game.Player
	Lines      []string // Console text, top to bottom
}

// Status reports the current mode, scores and console text.
func (d *Driver) Status() Status {
	p1, p2 := d.engine.Scores()
	r1, r2 := d.engine.Rallies()

	st := Status{
		Mode:       d.mode,
		Score1:     p1,
		Score2:     p2,
		Rally1:     r1,
		Rally2:     r2,
		WinScore:   d.engine.WinScore(),
		SpeedIndex: d.speed,
		SpeedMS:    d.SpeedMS(),
		Overlay:    d.overlay.State(),
		Frame:      d.frame,
		Winner:     game.NoPlayer,
	}

	switch d.mode {
	case ModeStartScreen:
		st.Lines = []string{TitleLine, StartPrompt}
	case ModePlaying, ModePaused:
		st.Lines = d.scoreLines(p1, p2)
		if d.mode == ModePaused {
			st.Lines = append(st.Lines, PausedLine)
		}
	case ModeGameOver:
		st.Winner = d.engine.Winner()
		st.Lines = append(d.scoreLines(p1, p2), GameOverLine, NewGameLine)
	}
	return st
}

func (d *Driver) scoreLines(p1, p2 int) []string {
	return []string{
		fmt.Sprintf("Game Speed: %d", d.SpeedMS()),
		fmt.Sprintf("Player 1 Score: %d", p1),
		fmt.Sprintf("Player 2 Score: %d", p2),
	}
}
