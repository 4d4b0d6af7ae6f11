// Package game implements the Pong simulation on a 12x8 grid: paddle motion,
// ball physics, scoring and rally bookkeeping, plus the score overlay and the
// start screen art. It draws through core.Sink and never touches a terminal.
package game

import "github.com/vovakirdan/matrix-pong/internal/core"

// Board dimensions in logical cells.
const (
	BoardWidth   = 12
	BoardHeight  = 8
	PaddleHeight = 2

	Player1X = 0
	Player2X = BoardWidth - 1

	SpawnX = BoardWidth/2 - 1
	SpawnY = BoardHeight / 2

	DefaultWinScore = 9
	RallyModulus    = 9
)

// Player identifies a side of the board.
type Player int

// Players. NoPlayer marks "nobody" in tick outcomes.
const (
	NoPlayer Player = iota - 1
	Player1
	Player2
)

// String returns a human-readable name for the player.
func (p Player) String() string {
	switch p {
	case Player1:
		return "P1"
	case Player2:
		return "P2"
	default:
		return "none"
	}
}

// Opponent returns the other player.
func (p Player) Opponent() Player {
	if p == Player1 {
		return Player2
	}
	return Player1
}

// Direction is a vertical paddle move. Up increases y.
type Direction int

const (
	Down Direction = -1
	Up   Direction = 1
)

// Paddle is a two-cell vertical paddle. Y is the lower cell.
type Paddle struct {
	X int
	Y int
}

// Occupies reports whether the paddle covers row y.
func (p Paddle) Occupies(y int) bool {
	return y == p.Y || y == p.Y+1
}

// Ball is the ball cell and its per-tick velocity, each component in {-1, 0, 1}.
type Ball struct {
	X, Y   int
	DX, DY int
}

// Pos returns the ball cell.
func (b Ball) Pos() core.Point {
	return core.Point{X: b.X, Y: b.Y}
}

// State is the authoritative simulation state of one match.
type State struct {
	Paddles [2]Paddle
	Ball    Ball
	Scores  [2]int
	Rallies [2]int
}

// newState returns a state with paddles centred, scores zeroed and the ball
// at the spawn cell with no velocity.
func newState() State {
	start := BoardHeight/2 - 1
	return State{
		Paddles: [2]Paddle{
			{X: Player1X, Y: start},
			{X: Player2X, Y: start},
		},
		Ball: Ball{X: SpawnX, Y: SpawnY},
	}
}

// InBounds reports whether the ball and both paddles are inside the board.
func (s State) InBounds() bool {
	if !core.InRange(s.Ball.X, 0, BoardWidth-1) || !core.InRange(s.Ball.Y, 0, BoardHeight-1) {
		return false
	}
	for _, p := range s.Paddles {
		if !core.InRange(p.Y, 0, BoardHeight-PaddleHeight) {
			return false
		}
	}
	return true
}
