package core

// SegmentDisplay shows one decimal digit per player.
type SegmentDisplay interface {
	ShowDigit(player int, value int)
}

// Segment bit order: a=bit0 (top), b, c, d (bottom), e, f, g=bit6 (middle).
var segmentPatterns = [10]uint8{63, 6, 91, 79, 102, 109, 125, 7, 127, 111}

// SegmentPattern returns the seven-segment bit pattern for a digit.
// Values outside 0-9 yield a blank pattern.
func SegmentPattern(digit int) uint8 {
	if digit < 0 || digit > 9 {
		return 0
	}
	return segmentPatterns[digit]
}

// SevenSegment emulates a two-digit seven-segment display.
type SevenSegment struct {
	patterns [2]uint8
	values   [2]int
	lit      [2]bool
}

// ShowDigit latches the pattern for player 0 or 1.
func (s *SevenSegment) ShowDigit(player int, value int) {
	if player < 0 || player > 1 {
		return
	}
	s.patterns[player] = SegmentPattern(value)
	s.values[player] = value
	s.lit[player] = value >= 0 && value <= 9
}

// Blank turns both digits off.
func (s *SevenSegment) Blank() {
	*s = SevenSegment{}
}

// Pattern returns the latched pattern for a player and whether it is lit.
func (s *SevenSegment) Pattern(player int) (uint8, bool) {
	if player < 0 || player > 1 {
		return 0, false
	}
	return s.patterns[player], s.lit[player]
}

// Value returns the digit last shown for a player.
func (s *SevenSegment) Value(player int) int {
	if player < 0 || player > 1 {
		return 0
	}
	return s.values[player]
}

var _ SegmentDisplay = (*SevenSegment)(nil)
