package core

// Color is one entry of the fixed matrix palette.
// The platform layer decides how each entry is actually displayed.
type Color uint8

// Matrix palette.
const (
	ColorBlack      Color = iota // Unlit pixel outside the playfield
	ColorBackground              // Empty playfield square
	ColorBorder                  // Playfield border columns
	ColorPlayer                  // Paddles, title text (green)
	ColorBall                    // Ball, title text (red)
	ColorScore                   // Score overlay digits
	ColorRally                   // Rally indicator marks
)

// String returns a short name for the color, used in logs and tests.
func (c Color) String() string {
	switch c {
	case ColorBlack:
		return "black"
	case ColorBackground:
		return "background"
	case ColorBorder:
		return "border"
	case ColorPlayer:
		return "player"
	case ColorBall:
		return "ball"
	case ColorScore:
		return "score"
	case ColorRally:
		return "rally"
	default:
		return "unknown"
	}
}

// IsLit reports whether the color is drawn as a visible pixel.
func (c Color) IsLit() bool {
	return c != ColorBlack && c != ColorBackground
}
