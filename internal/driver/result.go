package driver

import (
	"time"

	"github.com/vovakirdan/matrix-pong/internal/game"
)

// MatchResult summarises a finished match.
type MatchResult struct {
	Winner     game.Player
	Score1     int
	Score2     int
	BestRally1 int
	BestRally2 int
	SpeedMS    int64         // Ball interval in use when the match ended
	Duration   time.Duration // Play time, pauses excluded
	Ticks      uint64
	Seed       int64
	Source     string
}

// Recorder persists finished matches. Errors are logged by the driver and
// never interrupt play.
type Recorder interface {
	RecordMatch(r MatchResult) error
}

// RecorderFunc adapts a function to Recorder.
type RecorderFunc func(r MatchResult) error

// RecordMatch calls f(r).
func (f RecorderFunc) RecordMatch(r MatchResult) error {
	return f(r)
}
