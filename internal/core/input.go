package core

// Button identifies one of the four push buttons.
type Button int

// Push buttons. The game maps them to paddle actions:
// 3 = P1 up, 2 = P1 down, 1 = P2 up, 0 = P2 down.
const (
	Button0 Button = iota
	Button1
	Button2
	Button3
	NumButtons
)

// Valid reports whether b is one of the four buttons.
func (b Button) Valid() bool {
	return b >= Button0 && b < NumButtons
}

// String returns a human-readable name for the button.
func (b Button) String() string {
	switch b {
	case Button0:
		return "B0"
	case Button1:
		return "B1"
	case Button2:
		return "B2"
	case Button3:
		return "B3"
	default:
		return "Unknown"
	}
}

// Input is the polled event source consumed by the game loop.
// Every poll consumes the event it returns; repeated polls without new input
// report false.
type Input interface {
	PollPress() (Button, bool)
	PollRelease() (Button, bool)
	PollChar() (rune, bool)
}

// DefaultQueueCap bounds each event queue. Older events are dropped first.
const DefaultQueueCap = 16

// InputQueue is a bounded FIFO implementation of Input.
// The platform pushes key events into it; the game loop polls it.
type InputQueue struct {
	capacity int
	presses  []Button
	releases []Button
	chars    []rune
}

// NewInputQueue creates an empty queue holding at most capacity events of each kind.
func NewInputQueue(capacity int) *InputQueue {
	if capacity <= 0 {
		capacity = DefaultQueueCap
	}
	return &InputQueue{capacity: capacity}
}

// PushPress queues a button press. Invalid buttons are ignored.
func (q *InputQueue) PushPress(b Button) {
	if !b.Valid() {
		return
	}
	q.presses = pushBounded(q.presses, b, q.capacity)
}

// PushRelease queues a button release. Invalid buttons are ignored.
func (q *InputQueue) PushRelease(b Button) {
	if !b.Valid() {
		return
	}
	q.releases = pushBounded(q.releases, b, q.capacity)
}

// PushChar queues a serial character.
func (q *InputQueue) PushChar(r rune) {
	q.chars = pushBounded(q.chars, r, q.capacity)
}

// PollPress returns the oldest queued press.
func (q *InputQueue) PollPress() (Button, bool) {
	var b Button
	var ok bool
	q.presses, b, ok = popFront(q.presses)
	return b, ok
}

// PollRelease returns the oldest queued release.
func (q *InputQueue) PollRelease() (Button, bool) {
	var b Button
	var ok bool
	q.releases, b, ok = popFront(q.releases)
	return b, ok
}

// PollChar returns the oldest queued serial character.
func (q *InputQueue) PollChar() (rune, bool) {
	var r rune
	var ok bool
	q.chars, r, ok = popFront(q.chars)
	return r, ok
}

// DrainPresses discards pending button presses and serial characters.
// Releases are kept so held-button state can still settle.
func (q *InputQueue) DrainPresses() {
	q.presses = q.presses[:0]
	q.chars = q.chars[:0]
}

// Len returns the total number of queued events.
func (q *InputQueue) Len() int {
	return len(q.presses) + len(q.releases) + len(q.chars)
}

func pushBounded[T any](s []T, v T, capacity int) []T {
	if len(s) >= capacity {
		s = s[1:]
	}
	return append(s, v)
}

func popFront[T any](s []T) ([]T, T, bool) {
	var zero T
	if len(s) == 0 {
		return s, zero, false
	}
	v := s[0]
	return s[1:], v, true
}
