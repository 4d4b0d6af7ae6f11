package game

import "github.com/vovakirdan/matrix-pong/internal/core"

// Matrix layout of the playfield.
const (
	BoardOffsetX = 2 // Board column 0 is matrix column 2
	BoardOffsetY = 0
)

// Columns outside the playfield.
var (
	borderColumns = [2]int{1, core.MatrixWidth - 2}
	rallyColumns  = [2]int{0, core.MatrixWidth - 1}
)

// RallyColumn returns the matrix column of a player's rally strip.
func RallyColumn(p Player) int {
	return rallyColumns[p]
}

// drawCell paints a board cell.
func drawCell(dst core.Sink, x, y int, c core.Color) {
	dst.SetPixel(x+BoardOffsetX, y+BoardOffsetY, c)
}

// clearMatrix turns every matrix pixel off.
func clearMatrix(dst core.Sink) {
	for x := 0; x < core.MatrixWidth; x++ {
		for y := 0; y < core.MatrixHeight; y++ {
			dst.SetPixel(x, y, core.ColorBlack)
		}
	}
}

// drawBoard paints the empty playfield and its border columns.
func drawBoard(dst core.Sink) {
	for x := 0; x < BoardWidth; x++ {
		for y := 0; y < BoardHeight; y++ {
			drawCell(dst, x, y, core.ColorBackground)
		}
	}
	for _, col := range borderColumns {
		for y := 0; y < core.MatrixHeight; y++ {
			dst.SetPixel(col, y, core.ColorBorder)
		}
	}
}

func drawPaddle(dst core.Sink, p Paddle, c core.Color) {
	for y := p.Y; y < p.Y+PaddleHeight; y++ {
		drawCell(dst, p.X, y, c)
	}
}

func clearRallyStrip(dst core.Sink, p Player) {
	for y := 0; y < core.MatrixHeight; y++ {
		dst.SetPixel(rallyColumns[p], y, core.ColorBlack)
	}
}

func drawRallyStrip(dst core.Sink, p Player, rally int) {
	clearRallyStrip(dst, p)
	for y := 0; y < rally && y < core.MatrixHeight; y++ {
		dst.SetPixel(rallyColumns[p], y, core.ColorRally)
	}
}

// applyOutcome issues the render writes for one ball tick.
func applyOutcome(dst core.Sink, s State, out Outcome) {
	if out.Scored() {
		clearRallyStrip(dst, Player1)
		clearRallyStrip(dst, Player2)
	}
	if out.Bouncer != NoPlayer {
		if out.RallyWrapped {
			clearRallyStrip(dst, out.Bouncer)
		} else {
			dst.SetPixel(rallyColumns[out.Bouncer], s.Rallies[out.Bouncer]-1, core.ColorRally)
		}
	}
	drawCell(dst, out.From.X, out.From.Y, core.ColorBackground)
	drawCell(dst, out.To.X, out.To.Y, core.ColorBall)
}

// drawState repaints the whole playfield from s.
func drawState(dst core.Sink, s State) {
	clearMatrix(dst)
	drawBoard(dst)
	for i, p := range s.Paddles {
		drawPaddle(dst, p, core.ColorPlayer)
		drawRallyStrip(dst, Player(i), s.Rallies[i])
	}
	drawCell(dst, s.Ball.X, s.Ball.Y, core.ColorBall)
}
