// Package core provides the collaborator contracts and small value types shared
// by the simulation and the platform layer. It has no external dependencies
// (especially no Bubble Tea) to keep game logic pure and testable.
package core

// Matrix dimensions. The playfield occupies a 12-column window of the matrix;
// the remaining columns hold the border, rally strips and start screen art.
const (
	MatrixWidth  = 16
	MatrixHeight = 8
)

// Point is an integer cell coordinate.
type Point struct {
	X, Y int
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Rect represents an axis-aligned block of cells.
type Rect struct {
	X, Y int // Bottom-left cell
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Top returns the y-coordinate just past the top edge.
func (r Rect) Top() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Top()
}

// InRange reports whether min <= val <= max.
func InRange(val, min, max int) bool {
	return val >= min && val <= max
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
