// Package core provides the foundational types shared by the game engine and
// the terminal platform: geometry, the screen buffer, and the input
// abstraction. It has no UI dependencies so game logic stays testable.
package core

// Point is a position on the play-area grid.
type Point struct {
	X, Y int
}

// Pt is a convenience constructor for Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Rect is an axis-aligned rectangle identified by its top-left corner.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a rectangle at (x, y) with the given dimensions.
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

// Contains reports whether the point (x, y) lies inside the rectangle.
// The right and bottom edges are exclusive.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ContainsPoint reports whether p lies inside the rectangle.
func (r Rect) ContainsPoint(p Point) bool {
	return r.Contains(p.X, p.Y)
}

// Intersects reports whether two rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Clamp restricts a value to [min, max].
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

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
