// Package driver runs the match state machine: start screen, play, pause and
// game over. It polls the clock and input once per Step and never blocks.
package driver

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/matrix-pong/internal/core"
	"github.com/vovakirdan/matrix-pong/internal/game"
)

// Mode is the top-level state of the driver.
type Mode int

const (
	ModeStartScreen Mode = iota
	ModePlaying
	ModePaused
	ModeGameOver
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeStartScreen:
		return "StartScreen"
	case ModePlaying:
		return "Playing"
	case ModePaused:
		return "Paused"
	case ModeGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Options wires a Driver to its collaborators.
// Clock, Input and Sink are required; the rest may be nil.
type Options struct {
	Config   core.RuntimeConfig
	Clock    core.Clock
	Input    core.Input
	Sink     core.Sink
	Segments core.SegmentDisplay
	Recorder Recorder
	Logger   *log.Logger
	Source   string // Recorded with each match, e.g. "local" or "ssh:alice"
}

// drainer is implemented by inputs that can drop stale events.
type drainer interface {
	DrainPresses()
}

// blanker is implemented by segment displays that can be switched off.
type blanker interface {
	Blank()
}

// Driver owns one Engine and its Overlay and advances them from polled input.
type Driver struct {
	cfg      core.RuntimeConfig
	clock    core.Clock
	input    core.Input
	sink     core.Sink
	segments core.SegmentDisplay
	recorder Recorder
	logger   *log.Logger
	source   string

	engine  *game.Engine
	overlay *game.Overlay
	mode    Mode

	// Start screen
	frame     int
	lastFrame int64

	// Playing
	held       [core.NumButtons]bool
	lastRepeat [core.NumButtons]int64
	lastBall   int64
	speed      int
	pausedAt   int64
	bestRally  [2]int
	matchStart int64
	pausedFor  int64
	seed       int64
	matches    int
	recorded   bool
}

// New creates a driver showing the start screen.
func New(opts Options) *Driver {
	cfg := opts.Config
	if len(cfg.Speeds) == 0 {
		cfg.Speeds = core.DefaultConfig().Speeds
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	source := opts.Source
	if source == "" {
		source = "local"
	}

	d := &Driver{
		cfg:      cfg,
		clock:    opts.Clock,
		input:    opts.Input,
		sink:     opts.Sink,
		segments: opts.Segments,
		recorder: opts.Recorder,
		logger:   logger,
		source:   source,
		engine:   game.NewEngine(opts.Sink, cfg.WinScore),
		overlay:  game.NewOverlay(opts.Sink, cfg.ScoreOverlayMS),
		speed:    clampSpeed(cfg.InitialSpeed, len(cfg.Speeds)),
	}
	d.enterStartScreen(d.clock.NowMS())
	return d
}

// Step runs one iteration of the loop for the current mode.
func (d *Driver) Step() {
	now := d.clock.NowMS()

	switch d.mode {
	case ModeStartScreen:
		d.stepStartScreen(now)
	case ModePlaying:
		d.stepPlaying(now)
	case ModePaused:
		d.stepPaused(now)
	case ModeGameOver:
		d.stepGameOver(now)
	}
}

// Mode returns the current mode.
func (d *Driver) Mode() Mode {
	return d.mode
}

// Engine exposes the running engine, mainly for tests and snapshots.
func (d *Driver) Engine() *game.Engine {
	return d.engine
}

// SpeedMS returns the current ball tick interval.
func (d *Driver) SpeedMS() int64 {
	return d.cfg.SpeedMS(d.speed)
}

func (d *Driver) enterStartScreen(now int64) {
	d.mode = ModeStartScreen
	d.frame = 0
	d.lastFrame = now
	if b, ok := d.segments.(blanker); ok {
		b.Blank()
	}
	game.DrawTitle(d.sink)
}

func (d *Driver) stepStartScreen(now int64) {
	// Releases only settle held flags here
	for {
		b, ok := d.input.PollRelease()
		if !ok {
			break
		}
		if b.Valid() {
			d.held[b] = false
		}
	}

	if _, ok := d.input.PollPress(); ok {
		d.startMatch(now)
		return
	}
	if r, ok := d.input.PollChar(); ok && (r == 's' || r == 'S') {
		d.startMatch(now)
		return
	}

	if now-d.lastFrame > d.cfg.StartFrameMS {
		game.DrawStartFrame(d.sink, d.frame)
		d.frame = game.NextStartFrame(d.frame)
		d.lastFrame = now
	}
}

func (d *Driver) startMatch(now int64) {
	d.seed = d.cfg.Seed
	if d.seed == 0 {
		d.seed = time.Now().UnixNano()
	} else {
		d.seed += int64(d.matches)
	}
	d.matches++

	d.engine.InitGame(d.seed)
	d.overlay.Reset(0, 0)

	if q, ok := d.input.(drainer); ok {
		q.DrainPresses()
	}

	d.held = [core.NumButtons]bool{}
	for i := range d.lastRepeat {
		d.lastRepeat[i] = now
	}
	d.lastBall = now
	d.matchStart = now
	d.pausedFor = 0
	d.bestRally = [2]int{}
	d.speed = clampSpeed(d.cfg.InitialSpeed, len(d.cfg.Speeds))
	d.recorded = false
	d.mode = ModePlaying

	d.logger.Info("match started", "seed", d.seed, "speed_ms", d.SpeedMS(), "source", d.source)
}

func (d *Driver) stepPlaying(now int64) {
	press, pressed := d.input.PollPress()
	released, hasRelease := d.input.PollRelease()
	pressed = pressed && press.Valid()
	hasRelease = hasRelease && released.Valid()

	if d.overlay.Expire(now) {
		d.logger.Debug("score overlay cleared")
	}

	if d.overlay.Active() {
		// Board is frozen, but held flags keep tracking the buttons
		if pressed {
			d.held[press] = true
		}
		if hasRelease {
			d.held[released] = false
		}
	} else {
		for b := core.Button3; b >= core.Button0; b-- {
			if d.held[b] && now-d.lastRepeat[b] >= d.cfg.AutoRepeatMS {
				d.buttonAction(b)
				d.lastRepeat[b] = now
			}
			if hasRelease && released == b {
				d.held[b] = false
			}
			if pressed && press == b {
				// A tap whose release arrived in the same poll is not held
				d.held[b] = !(hasRelease && released == b)
				d.buttonAction(b)
				d.lastRepeat[b] = now
			}
		}

		if now-d.lastBall >= d.SpeedMS() {
			d.advance(now)
			d.lastBall = now
		}

		// A point scored this step already froze the board
		if !d.overlay.Active() {
			if r, ok := d.input.PollChar(); ok {
				d.handleChar(now, r)
			}
		}
	}

	if d.mode == ModePlaying && d.engine.IsGameOver() {
		d.enterGameOver(now)
	}
}

// buttonAction maps buttons 3,2,1,0 to P1 up, P1 down, P2 up, P2 down.
func (d *Driver) buttonAction(b core.Button) {
	switch b {
	case core.Button3:
		d.engine.MovePaddle(game.Player1, game.Up)
	case core.Button2:
		d.engine.MovePaddle(game.Player1, game.Down)
	case core.Button1:
		d.engine.MovePaddle(game.Player2, game.Up)
	case core.Button0:
		d.engine.MovePaddle(game.Player2, game.Down)
	}
}

func (d *Driver) handleChar(now int64, r rune) {
	switch r {
	case 'w', 'W':
		d.engine.MovePaddle(game.Player1, game.Up)
	case 's', 'S', 'd', 'D':
		d.engine.MovePaddle(game.Player1, game.Down)
	case 'o', 'O':
		d.engine.MovePaddle(game.Player2, game.Up)
	case 'k', 'K', 'l', 'L':
		d.engine.MovePaddle(game.Player2, game.Down)
	case '1', '2', '3', '4':
		idx := int(r - '1')
		if idx < len(d.cfg.Speeds) {
			d.speed = idx
			d.logger.Info("game speed changed", "speed_ms", d.SpeedMS())
		}
	case 'p', 'P':
		d.mode = ModePaused
		d.pausedAt = now
		d.logger.Info("game paused")
	}
}

func (d *Driver) advance(now int64) {
	out := d.engine.AdvanceBall()

	if out.Bouncer != game.NoPlayer {
		r1, r2 := d.engine.Rallies()
		rallies := [2]int{r1, r2}
		if out.RallyWrapped {
			// The counter passed 8 before wrapping
			rallies[out.Bouncer] = game.RallyModulus
			d.logger.Debug("rally wrapped", "player", out.Bouncer)
		}
		if rallies[out.Bouncer] > d.bestRally[out.Bouncer] {
			d.bestRally[out.Bouncer] = rallies[out.Bouncer]
		}
	}

	if out.Scored() {
		p1, p2 := d.engine.Scores()
		d.logger.Info("point scored", "scorer", out.Scorer, "p1", p1, "p2", p2)
		d.overlay.Observe(now, p1, p2)
	}
}

func (d *Driver) stepPaused(now int64) {
	r, ok := d.input.PollChar()
	if !ok || (r != 'p' && r != 'P') {
		return
	}

	paused := now - d.pausedAt
	d.lastBall += paused
	for i := range d.lastRepeat {
		d.lastRepeat[i] += paused
	}
	d.overlay.Shift(paused)
	d.pausedFor += paused
	d.mode = ModePlaying

	d.logger.Info("game resumed", "paused_ms", paused)
}

func (d *Driver) enterGameOver(now int64) {
	d.mode = ModeGameOver
	p1, p2 := d.engine.Scores()

	if d.segments != nil {
		d.segments.ShowDigit(0, p1)
		d.segments.ShowDigit(1, p2)
	}

	result := d.result(now)
	d.logger.Info("game over", "winner", result.Winner, "p1", p1, "p2", p2, "duration", result.Duration)

	if d.recorder != nil && !d.recorded {
		if err := d.recorder.RecordMatch(result); err != nil {
			d.logger.Warn("could not record match", "error", err)
		}
		d.recorded = true
	}
}

func (d *Driver) stepGameOver(now int64) {
	p1, p2 := d.engine.Scores()
	d.overlay.Draw(p1, p2)

	if _, ok := d.input.PollPress(); ok {
		d.enterStartScreen(now)
		return
	}
	if r, ok := d.input.PollChar(); ok && (r == 's' || r == 'S') {
		d.enterStartScreen(now)
	}
}

func (d *Driver) result(now int64) MatchResult {
	p1, p2 := d.engine.Scores()
	return MatchResult{
		Winner:     d.engine.Winner(),
		Score1:     p1,
		Score2:     p2,
		BestRally1: d.bestRally[game.Player1],
		BestRally2: d.bestRally[game.Player2],
		SpeedMS:    d.SpeedMS(),
		Duration:   time.Duration(now-d.matchStart-d.pausedFor) * time.Millisecond,
		Ticks:      d.engine.Ticks(),
		Seed:       d.seed,
		Source:     d.source,
	}
}

func clampSpeed(idx, n int) int {
	if idx < 0 || idx >= n {
		return 0
	}
	return idx
}
