package game

import "github.com/vovakirdan/matrix-pong/internal/core"

// Start screen animation.
const (
	StartFrames     = 12
	startBallX      = 14
	startBallY      = 4
	dynamicColStart = 13
	dynamicCols     = 3
)

// "PONG" title, one byte per column. Bits 7..1 are rows 7..1, bit 0 picks the
// colour (1 = ball red, 0 = player green).
var titleColumns = [core.MatrixWidth]uint8{
	126, 72, 120, 127, 67, 127, 126, 64, 126, 127, 67, 79, 0, 2, 82, 64,
}

// DrawTitle paints the static start screen.
func DrawTitle(dst core.Sink) {
	for x, data := range titleColumns {
		c := core.ColorPlayer
		if data&0x01 != 0 {
			c = core.ColorBall
		}
		dst.SetPixel(x, 0, core.ColorBlack)
		for y := core.MatrixHeight - 1; y >= 1; y-- {
			if data&(1<<y) != 0 {
				dst.SetPixel(x, y, c)
			} else {
				dst.SetPixel(x, y, core.ColorBlack)
			}
		}
	}
	dst.SetPixel(startBallX, startBallY, core.ColorBall)
}

// DrawStartFrame paints one frame of the bouncing ball vignette in the three
// rightmost columns. Frames outside 0-11 are ignored and report false.
func DrawStartFrame(dst core.Sink, frame int) bool {
	if frame < 0 || frame >= StartFrames {
		return false
	}

	var cols [dynamicCols]core.Column

	// Fixed inner paddle pixels
	cols[1][6] = core.ColorPlayer
	cols[1][1] = core.ColorPlayer

	// Outer paddle pixels swing with the frame
	if frame < 3 || frame >= 9 {
		cols[2][6] = core.ColorPlayer
	} else {
		cols[0][6] = core.ColorPlayer
	}
	if frame < 6 {
		cols[0][1] = core.ColorPlayer
	} else {
		cols[2][1] = core.ColorPlayer
	}

	cols[1][startBallRow(frame)] = core.ColorBall

	for i, col := range cols {
		for y, c := range col {
			dst.SetPixel(dynamicColStart+i, y, c)
		}
	}
	return true
}

func startBallRow(frame int) int {
	switch frame {
	case 5, 11:
		return 5
	case 0, 4, 6, 10:
		return 4
	case 1, 3, 7, 9:
		return 3
	default:
		return 2
	}
}

// NextStartFrame returns the frame after f.
func NextStartFrame(f int) int {
	return (f + 1) % StartFrames
}
