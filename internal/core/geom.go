// Package core provides fundamental types and utilities for the arkanoid platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Position is a point in pixel or grid space depending on context.
type Position struct {
	X, Y int
}

// Pos is shorthand for constructing a Position.
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// Add returns the position moved by one step of v.
func (p Position) Add(v Velocity) Position {
	return Position{X: p.X + v.X, Y: p.Y + v.Y}
}

// Velocity is a per-tick displacement in whole pixels.
type Velocity struct {
	X, Y int
}

// Vel is shorthand for constructing a Velocity.
func Vel(x, y int) Velocity {
	return Velocity{X: x, Y: y}
}

// Times multiplies component-wise. Multiplying by a vector of ±1 reflects
// the selected axes.
func (v Velocity) Times(o Velocity) Velocity {
	return Velocity{X: v.X * o.X, Y: v.Y * o.Y}
}

// ClampX restricts the horizontal component to [-limit, limit].
func (v Velocity) ClampX(limit int) Velocity {
	return Velocity{X: Clamp(v.X, -limit, limit), Y: v.Y}
}

// Area is the size of the play field in pixels.
type Area struct {
	Width  int
	Height int
}

// Rect represents an axis-aligned bounding box used for collision detection.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Closest returns the point of the rectangle (edges included) nearest to p.
func (r Rect) Closest(p Position) Position {
	return Position{
		X: Clamp(p.X, r.X, r.Right()),
		Y: Clamp(p.Y, r.Y, r.Bottom()),
	}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
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

// Sign returns -1, 0, or 1.
func Sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
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
