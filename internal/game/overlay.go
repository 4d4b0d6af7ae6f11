package game

import "github.com/vovakirdan/matrix-pong/internal/core"

// DefaultOverlayMS is how long the score overlay stays up after a point.
const DefaultOverlayMS = 1500

// 3x5 digit glyphs. Bit n sits at glyph row n/3 (row 0 on top) and glyph
// column n%3 counted from the right.
var digitGlyphs = [10]uint16{
	0b0111101101101111, // 0
	0b0010010010010010, // 1
	0b0111100111001111, // 2
	0b0111001111001111, // 3
	0b0001001111101101, // 4
	0b0111001111100111, // 5
	0b0111101111100111, // 6
	0b0001001001001111, // 7
	0b0111101111101111, // 8
	0b0111001111101111, // 9
}

// Matrix regions reserved for the overlay digits.
var scoreRegions = [2]core.Rect{
	core.NewRect(4, 2, 3, 5),
	core.NewRect(9, 2, 3, 5),
}

// ScoreRegion returns the matrix rectangle that shows a player's score.
func ScoreRegion(p Player) core.Rect {
	return scoreRegions[p]
}

// OverlayState is the state of the score overlay.
type OverlayState int

const (
	OverlayNormal OverlayState = iota
	OverlayShowingScore
)

// String returns a human-readable name for the overlay state.
func (s OverlayState) String() string {
	if s == OverlayShowingScore {
		return "ShowingScore"
	}
	return "Normal"
}

// Overlay shows both scores as large digits for a fixed window after every
// score change, then restores the regions. While it is showing the caller
// must not mutate the board.
type Overlay struct {
	sink     core.Sink
	duration int64
	state    OverlayState
	since    int64
	last     [2]int
}

// NewOverlay creates an overlay drawing onto sink for durationMS after each
// score change.
func NewOverlay(sink core.Sink, durationMS int64) *Overlay {
	if durationMS <= 0 {
		durationMS = DefaultOverlayMS
	}
	return &Overlay{sink: sink, duration: durationMS}
}

// Reset forgets any active window and records the current scores as seen.
func (o *Overlay) Reset(p1, p2 int) {
	o.state = OverlayNormal
	o.since = 0
	o.last = [2]int{p1, p2}
}

// Observe compares the scores with the last observed pair. On a change it
// enters ShowingScore at now, draws both digits and returns true.
func (o *Overlay) Observe(now int64, p1, p2 int) bool {
	if p1 == o.last[0] && p2 == o.last[1] {
		return false
	}
	o.last = [2]int{p1, p2}
	o.state = OverlayShowingScore
	o.since = now
	o.Draw(p1, p2)
	return true
}

// Expire leaves ShowingScore once the window has elapsed, clearing both
// regions. Returns true on that transition.
func (o *Overlay) Expire(now int64) bool {
	if o.state != OverlayShowingScore || now-o.since < o.duration {
		return false
	}
	o.state = OverlayNormal
	o.Clear()
	return true
}

// Shift moves the activation time forward, used when the game was paused.
func (o *Overlay) Shift(ms int64) {
	if o.state == OverlayShowingScore {
		o.since += ms
	}
}

// Active reports whether the overlay is showing.
func (o *Overlay) Active() bool {
	return o.state == OverlayShowingScore
}

// State returns the current overlay state.
func (o *Overlay) State() OverlayState {
	return o.state
}

// Draw renders both digits without touching the timer.
func (o *Overlay) Draw(p1, p2 int) {
	drawDigit(o.sink, scoreRegions[Player1], p1)
	drawDigit(o.sink, scoreRegions[Player2], p2)
}

// Clear paints both score regions back to the playfield background.
func (o *Overlay) Clear() {
	for _, r := range scoreRegions {
		for x := r.X; x < r.Right(); x++ {
			for y := r.Y; y < r.Top(); y++ {
				o.sink.SetPixel(x, y, core.ColorBackground)
			}
		}
	}
}

func drawDigit(dst core.Sink, r core.Rect, digit int) {
	if digit < 0 || digit > 9 {
		return
	}
	glyph := digitGlyphs[digit]
	for bit := 0; bit < r.W*r.H; bit++ {
		row, col := bit/r.W, bit%r.W
		x := r.Right() - 1 - col
		y := r.Top() - 1 - row
		c := core.ColorBlack
		if glyph&(1<<bit) != 0 {
			c = core.ColorScore
		}
		dst.SetPixel(x, y, c)
	}
}
