package core

import (
	"strings"
)

// Sink accepts pixel writes in matrix coordinates. Writes are fire-and-forget
// and the last write to a pixel wins.
type Sink interface {
	SetPixel(x, y int, c Color)
}

// Column is one matrix column, indexed by row (row 0 is the bottom row).
type Column [MatrixHeight]Color

// Matrix is an emulated 16x8 LED matrix. It decouples the game from the
// display, allowing the simulation to draw pixels while the platform handles
// actual output.
type Matrix struct {
	cells [MatrixWidth][MatrixHeight]Color
}

// NewMatrix creates a matrix with every pixel off.
func NewMatrix() *Matrix {
	return &Matrix{}
}

// Width returns the matrix width in pixels.
func (m *Matrix) Width() int {
	return MatrixWidth
}

// Height returns the matrix height in pixels.
func (m *Matrix) Height() int {
	return MatrixHeight
}

// Clear turns every pixel off.
func (m *Matrix) Clear() {
	m.cells = [MatrixWidth][MatrixHeight]Color{}
}

// SetPixel sets the color at (x, y).
// Out-of-bounds coordinates are silently ignored.
func (m *Matrix) SetPixel(x, y int, c Color) {
	if x < 0 || x >= MatrixWidth || y < 0 || y >= MatrixHeight {
		return
	}
	m.cells[x][y] = c
}

// Pixel returns the color at (x, y).
// Returns ColorBlack for out-of-bounds coordinates.
func (m *Matrix) Pixel(x, y int) Color {
	if x < 0 || x >= MatrixWidth || y < 0 || y >= MatrixHeight {
		return ColorBlack
	}
	return m.cells[x][y]
}

// SetColumn replaces a whole column.
func (m *Matrix) SetColumn(x int, col Column) {
	if x < 0 || x >= MatrixWidth {
		return
	}
	m.cells[x] = col
}

// Fill sets every pixel in r to c.
func (m *Matrix) Fill(r Rect, c Color) {
	for x := r.X; x < r.Right(); x++ {
		for y := r.Y; y < r.Top(); y++ {
			m.SetPixel(x, y, c)
		}
	}
}

// String renders the matrix top row first, one rune per pixel.
// Used for screenshots and test diagnostics.
func (m *Matrix) String() string {
	var sb strings.Builder
	sb.Grow((MatrixWidth + 1) * MatrixHeight)

	for y := MatrixHeight - 1; y >= 0; y-- {
		for x := 0; x < MatrixWidth; x++ {
			sb.WriteRune(pixelRune(m.cells[x][y]))
		}
		if y > 0 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}

func pixelRune(c Color) rune {
	switch c {
	case ColorBorder:
		return '|'
	case ColorPlayer:
		return 'P'
	case ColorBall:
		return 'o'
	case ColorScore:
		return '#'
	case ColorRally:
		return '+'
	default:
		return '.'
	}
}

var _ Sink = (*Matrix)(nil)
