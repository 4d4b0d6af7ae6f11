package game

import (
	"testing"

	"github.com/vovakirdan/matrix-pong/internal/core"
)

func TestOverlayObserve(t *testing.T) {
	m := core.NewMatrix()
	o := NewOverlay(m, DefaultOverlayMS)
	o.Reset(0, 0)

	if o.Observe(100, 0, 0) {
		t.Fatal("unchanged scores must not open the overlay")
	}
	if o.Active() {
		t.Fatal("overlay should start in Normal")
	}

	if !o.Observe(100, 1, 0) {
		t.Fatal("score change should open the overlay")
	}
	if o.State() != OverlayShowingScore {
		t.Errorf("state = %v, expected ShowingScore", o.State())
	}
	if o.Observe(200, 1, 0) {
		t.Error("same scores observed twice must not restart the window")
	}
}

func TestOverlayExpiry(t *testing.T) {
	m := core.NewMatrix()
	o := NewOverlay(m, DefaultOverlayMS)
	o.Reset(0, 0)
	o.Observe(1000, 1, 0)

	if o.Expire(1000 + DefaultOverlayMS - 1) {
		t.Fatal("overlay expired one millisecond early")
	}
	if !o.Active() {
		t.Fatal("overlay should still be showing")
	}
	if !o.Expire(1000 + DefaultOverlayMS) {
		t.Fatal("overlay did not expire at the window boundary")
	}
	if o.Active() {
		t.Error("overlay should be back to Normal")
	}

	for _, r := range scoreRegions {
		for x := r.X; x < r.Right(); x++ {
			for y := r.Y; y < r.Top(); y++ {
				if got := m.Pixel(x, y); got != core.ColorBackground {
					t.Errorf("pixel (%d,%d) = %v after expiry, expected background", x, y, got)
				}
			}
		}
	}

	if o.Expire(1000 + 2*DefaultOverlayMS) {
		t.Error("Expire should only report the transition once")
	}
}

func TestOverlayShift(t *testing.T) {
	o := NewOverlay(core.NewMatrix(), 1500)
	o.Reset(0, 0)
	o.Observe(0, 0, 1)
	o.Shift(1000)

	if o.Expire(2000) {
		t.Error("shifted overlay expired early")
	}
	if !o.Expire(2500) {
		t.Error("shifted overlay did not expire")
	}

	// Shifting an idle overlay is a no-op
	o.Shift(500)
	if o.Active() {
		t.Error("shift must not reopen the overlay")
	}
}

func TestOverlayDefaultDuration(t *testing.T) {
	o := NewOverlay(core.NewMatrix(), 0)
	o.Reset(0, 0)
	o.Observe(0, 1, 0)

	if o.Expire(DefaultOverlayMS - 1) {
		t.Error("zero duration should fall back to the default window")
	}
}

func TestOverlayGlyphs(t *testing.T) {
	m := core.NewMatrix()
	o := NewOverlay(m, DefaultOverlayMS)
	o.Draw(1, 7)

	tests := []struct {
		name string
		x, y int
		want core.Color
	}{
		// "1" in player 1's region: middle column lit, outer columns off
		{"p1 middle top", 5, 6, core.ColorScore},
		{"p1 middle bottom", 5, 2, core.ColorScore},
		{"p1 left", 4, 4, core.ColorBlack},
		{"p1 right", 6, 4, core.ColorBlack},

		// "7" in player 2's region: full top row and the right column
		{"p2 top left", 9, 6, core.ColorScore},
		{"p2 top middle", 10, 6, core.ColorScore},
		{"p2 top right", 11, 6, core.ColorScore},
		{"p2 right bottom", 11, 2, core.ColorScore},
		{"p2 left below top", 9, 5, core.ColorBlack},
		{"p2 middle bottom", 10, 2, core.ColorBlack},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := m.Pixel(tc.x, tc.y); got != tc.want {
				t.Errorf("pixel (%d,%d) = %v, expected %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestOverlayIgnoresOutOfRangeDigit(t *testing.T) {
	m := core.NewMatrix()
	m.SetPixel(5, 4, core.ColorBall)
	drawDigit(m, scoreRegions[Player1], 10)

	if got := m.Pixel(5, 4); got != core.ColorBall {
		t.Errorf("out-of-range digit touched the matrix: %v", got)
	}
}

func TestScoreRegionsInsideBorders(t *testing.T) {
	for _, p := range []Player{Player1, Player2} {
		r := ScoreRegion(p)
		for _, bx := range borderColumns {
			if bx >= r.X && bx < r.Right() {
				t.Errorf("%v score region overlaps border column %d", p, bx)
			}
		}
		if r.Top() > core.MatrixHeight {
			t.Errorf("%v score region leaves the matrix", p)
		}
	}
}
