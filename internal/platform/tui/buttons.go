package tui

import "github.com/vovakirdan/matrix-pong/internal/core"

// ButtonTracker turns a terminal's key stream into press and release events.
// Terminals only report key downs, repeated while the key is held, so a
// button counts as released once no repeat has arrived for releaseAfter ms.
type ButtonTracker struct {
	releaseAfter int64
	down         [core.NumButtons]bool
	lastSeen     [core.NumButtons]int64
}

// NewButtonTracker creates a tracker with the given release window.
func NewButtonTracker(releaseAfterMS int64) *ButtonTracker {
	if releaseAfterMS <= 0 {
		releaseAfterMS = 90
	}
	return &ButtonTracker{releaseAfter: releaseAfterMS}
}

// Key records a key event for b at now. Returns true when it starts a new
// press; repeats of a held key only extend the hold.
func (t *ButtonTracker) Key(b core.Button, now int64) bool {
	if !b.Valid() {
		return false
	}
	t.lastSeen[b] = now
	if t.down[b] {
		return false
	}
	t.down[b] = true
	return true
}

// Expired returns the buttons whose hold lapsed by now, marking them up.
func (t *ButtonTracker) Expired(now int64) []core.Button {
	var released []core.Button
	for b := core.Button0; b < core.NumButtons; b++ {
		if t.down[b] && now-t.lastSeen[b] >= t.releaseAfter {
			t.down[b] = false
			released = append(released, b)
		}
	}
	return released
}

// Held reports whether b is currently down.
func (t *ButtonTracker) Held(b core.Button) bool {
	return b.Valid() && t.down[b]
}
