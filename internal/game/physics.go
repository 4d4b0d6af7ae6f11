package game

import "github.com/vovakirdan/matrix-pong/internal/core"

// Rand is the random source used for ball directions. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Outcome describes what happened during one ball tick.
// It carries everything the renderer needs to apply the visual diff.
type Outcome struct {
	From         core.Point // Ball cell before the tick
	To           core.Point // Ball cell after the tick
	WallBounce   bool
	Scorer       Player // Player who scored, NoPlayer otherwise
	Bouncer      Player // Player whose paddle returned the ball, NoPlayer otherwise
	RallyWrapped bool   // Bouncer's rally counter wrapped back to 1
}

// Scored reports whether a point was scored this tick.
func (o Outcome) Scored() bool {
	return o.Scorer != NoPlayer
}

// randomDX picks a horizontal direction, never zero.
func randomDX(rng Rand) int {
	if rng.Intn(2) == 0 {
		return 1
	}
	return -1
}

// randomDY picks a vertical direction for a ball sitting on row y.
// Boundary rows only get directions that keep the next cell on the board.
func randomDY(rng Rand, y int) int {
	switch y {
	case BoardHeight - 1:
		return -rng.Intn(2)
	case 0:
		return rng.Intn(2)
	default:
		return rng.Intn(3) - 1
	}
}

// spawnBall places the ball at the spawn cell with a fresh velocity.
func spawnBall(rng Rand) Ball {
	return Ball{
		X:  SpawnX,
		Y:  SpawnY,
		DX: randomDX(rng),
		DY: randomDY(rng, SpawnY),
	}
}

// nextBall computes the state after one ball tick. It is pure apart from
// drawing from rng.
func nextBall(s State, rng Rand) (State, Outcome) {
	b := s.Ball
	out := Outcome{
		From:    b.Pos(),
		Scorer:  NoPlayer,
		Bouncer: NoPlayer,
	}

	nx := b.X + b.DX
	ny := b.Y + b.DY

	// Single reflection off the top or bottom wall
	if ny < 0 || ny > BoardHeight-1 {
		b.DY = -b.DY
		ny = b.Y + b.DY
		out.WallBounce = true
	}

	// Goals are judged on the unreflected horizontal candidate
	switch {
	case nx < 0:
		out.Scorer = Player2
	case nx >= BoardWidth:
		out.Scorer = Player1
	}
	if out.Scorer != NoPlayer {
		s.Scores[out.Scorer]++
		s.Rallies = [2]int{}
		spawn := spawnBall(rng)
		nx, ny = spawn.X, spawn.Y
		b.DX, b.DY = spawn.DX, spawn.DY
	}

	// Paddle returns, recomputed from the pre-tick cell
	for _, p := range []Player{Player1, Player2} {
		pad := s.Paddles[p]
		if nx != pad.X || !pad.Occupies(ny) {
			continue
		}
		b.DY = randomDY(rng, b.Y)
		b.DX = -b.DX
		nx = b.X + b.DX
		ny = b.Y + b.DY

		s.Rallies[p]++
		if s.Rallies[p]%RallyModulus == 0 {
			s.Rallies[p] = 1
			out.RallyWrapped = true
		}
		out.Bouncer = p
	}

	b.X, b.Y = nx, ny
	s.Ball = b
	out.To = b.Pos()
	return s, out
}

// checkPaddleMove returns the new paddle row for a move, or false when the
// move is rejected. A paddle may not move onto a ball sitting in either goal
// column, and may not leave the board.
func checkPaddleMove(s State, p Player, dir Direction) (int, bool) {
	candidate := s.Paddles[p].Y + int(dir)

	b := s.Ball
	if (b.X == Player1X || b.X == Player2X) && (b.Y == candidate || b.Y == candidate+1) {
		return 0, false
	}
	if candidate < 0 || candidate > BoardHeight-PaddleHeight {
		return 0, false
	}
	return candidate, true
}
