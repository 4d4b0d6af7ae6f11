package game

// Snapshot contains the complete state of a match.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick     uint64
	BallX    int
	BallY    int
	BallDX   int
	BallDY   int
	Paddle1Y int
	Paddle2Y int
	Score1   int
	Score2   int
	Rally1   int
	Rally2   int
}

// Snapshot returns the current match state.
func (e *Engine) Snapshot() Snapshot {
	s := e.state
	return Snapshot{
		Tick:     e.ticks,
		BallX:    s.Ball.X,
		BallY:    s.Ball.Y,
		BallDX:   s.Ball.DX,
		BallDY:   s.Ball.DY,
		Paddle1Y: s.Paddles[Player1].Y,
		Paddle2Y: s.Paddles[Player2].Y,
		Score1:   s.Scores[Player1],
		Score2:   s.Scores[Player2],
		Rally1:   s.Rallies[Player1],
		Rally2:   s.Rallies[Player2],
	}
}

// ApplySnapshot replaces the match state and repaints the display.
// Used to set up scenarios and to restore saved positions.
func (e *Engine) ApplySnapshot(snap Snapshot) {
	s := newState()
	s.Ball = Ball{X: snap.BallX, Y: snap.BallY, DX: snap.BallDX, DY: snap.BallDY}
	s.Paddles[Player1].Y = snap.Paddle1Y
	s.Paddles[Player2].Y = snap.Paddle2Y
	s.Scores = [2]int{snap.Score1, snap.Score2}
	s.Rallies = [2]int{snap.Rally1, snap.Rally2}

	e.state = s
	e.ticks = snap.Tick
	drawState(e.sink, e.state)
}
