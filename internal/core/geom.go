// Package core provides fundamental types shared by the simulation and the
// platform layers. It contains no terminal or window dependencies so that
// game logic stays pure and testable.
package core

// RectF is an axis-aligned box in world units.
// The origin is the top-left corner of the playfield and y grows downward.
type RectF struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRectF creates a world-space rectangle.
func NewRectF(x, y, w, h float64) RectF {
	return RectF{X: x, Y: y, W: w, H: h}
}

// Square creates a square of the given size with its top-left corner at (x, y).
func Square(x, y, size float64) RectF {
	return RectF{X: x, Y: y, W: size, H: size}
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// Intersects reports whether two boxes overlap.
// Comparisons are strict: boxes that only share an edge do not intersect.
func (r RectF) Intersects(other RectF) bool {
	return r.X < other.Right() &&
		r.Right() > other.X &&
		r.Y < other.Bottom() &&
		r.Bottom() > other.Y
}

// Rect is an axis-aligned box in screen cells, used for drawing.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a cell-space rectangle.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
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

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
