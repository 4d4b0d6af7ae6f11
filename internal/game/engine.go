package game

import (
	"math/rand"

	"github.com/vovakirdan/matrix-pong/internal/core"
)

// Engine owns the state of one match and mirrors every change onto a Sink.
type Engine struct {
	state    State
	sink     core.Sink
	rng      Rand
	winScore int
	ticks    uint64
}

// NewEngine creates an engine drawing onto sink. winScore outside 1-9 falls
// back to DefaultWinScore, since the score glyphs only cover single digits.
func NewEngine(sink core.Sink, winScore int) *Engine {
	if winScore < 1 || winScore > 9 {
		winScore = DefaultWinScore
	}
	return &Engine{
		state:    newState(),
		sink:     sink,
		rng:      rand.New(rand.NewSource(1)),
		winScore: winScore,
	}
}

// InitGame starts a fresh match: clears the display, draws the border,
// centres the paddles, zeroes scores and rallies, and serves a new ball.
func (e *Engine) InitGame(seed int64) {
	e.InitGameWithRand(rand.New(rand.NewSource(seed)))
}

// InitGameWithRand is InitGame with an explicit random source.
func (e *Engine) InitGameWithRand(rng Rand) {
	e.rng = rng
	e.ticks = 0
	e.state = newState()
	e.state.Ball = spawnBall(e.rng)
	drawState(e.sink, e.state)
}

// MovePaddle moves a paddle one cell. Returns false if the move was rejected,
// in which case nothing changes.
func (e *Engine) MovePaddle(p Player, dir Direction) bool {
	if p != Player1 && p != Player2 {
		return false
	}
	if dir != Up && dir != Down {
		return false
	}
	y, ok := checkPaddleMove(e.state, p, dir)
	if !ok {
		return false
	}
	drawPaddle(e.sink, e.state.Paddles[p], core.ColorBackground)
	e.state.Paddles[p].Y = y
	drawPaddle(e.sink, e.state.Paddles[p], core.ColorPlayer)
	return true
}

// AdvanceBall runs one ball tick and returns what happened.
func (e *Engine) AdvanceBall() Outcome {
	next, out := nextBall(e.state, e.rng)
	e.state = next
	e.ticks++
	applyOutcome(e.sink, e.state, out)
	return out
}

// IsGameOver reports whether either player has reached the winning score.
func (e *Engine) IsGameOver() bool {
	return e.state.Scores[Player1] == e.winScore || e.state.Scores[Player2] == e.winScore
}

// Winner returns the player who reached the winning score, or NoPlayer.
func (e *Engine) Winner() Player {
	switch {
	case e.state.Scores[Player1] == e.winScore:
		return Player1
	case e.state.Scores[Player2] == e.winScore:
		return Player2
	default:
		return NoPlayer
	}
}

// Scores returns both players' scores.
func (e *Engine) Scores() (int, int) {
	return e.state.Scores[Player1], e.state.Scores[Player2]
}

// Rallies returns both players' rally counters.
func (e *Engine) Rallies() (int, int) {
	return e.state.Rallies[Player1], e.state.Rallies[Player2]
}

// WinScore returns the score that ends the match.
func (e *Engine) WinScore() int {
	return e.winScore
}

// State returns a copy of the current state.
func (e *Engine) State() State {
	return e.state
}

// Ticks returns the number of ball ticks since InitGame.
func (e *Engine) Ticks() uint64 {
	return e.ticks
}
