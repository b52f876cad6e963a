// Package core provides fundamental types shared by the game and its frontends.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Point is a cell on the character grid. Arena-interior cells are 1-based;
// column and row 0 belong to the border.
type Point struct {
	X, Y int
}

// NewPoint creates a point at (x, y).
func NewPoint(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the point displaced by d.
func (p Point) Add(d Direction) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Direction is a per-tick displacement. Components are -1, 0 or +1.
type Direction struct {
	X, Y int
}

// NewDirection creates a direction with the given components.
func NewDirection(x, y int) Direction {
	return Direction{X: x, Y: y}
}

// Rect represents an axis-aligned area of the grid.
type Rect struct {
	X, Y int // Top-left corner position
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

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// InRange reports whether v lies in the closed interval [lo, hi].
func InRange(v, lo, hi int) bool {
	return v >= lo && v <= hi
}
