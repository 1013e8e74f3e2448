// Package core provides fundamental types and utilities shared by the game
// logic and the hosts. It contains no external dependencies (especially no
// Bubble Tea or Ebitengine) to keep the simulation pure and testable.
package core

import "math"

// Vec2 is a 2D vector in logical pixels.
type Vec2 struct {
	X, Y float64
}

// Rect represents an axis-aligned box in logical pixels.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// CenterY returns the vertical center of the rectangle.
func (r Rect) CenterY() float64 {
	return r.Y + r.H/2
}

// SetCenterY moves the rectangle so that its vertical center is y.
func (r *Rect) SetCenterY(y float64) {
	r.Y = y - r.H/2
}

// Intersects returns true if this rectangle overlaps with another.
// Touching edges do not count as an overlap.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Circle is a circle given by its center and radius.
type Circle struct {
	X, Y float64 // Center
	R    float64
}

// MinX returns the leftmost x-coordinate of the circle.
func (c Circle) MinX() float64 { return c.X - c.R }

// MaxX returns the rightmost x-coordinate of the circle.
func (c Circle) MaxX() float64 { return c.X + c.R }

// MinY returns the topmost y-coordinate of the circle.
func (c Circle) MinY() float64 { return c.Y - c.R }

// MaxY returns the bottommost y-coordinate of the circle.
func (c Circle) MaxY() float64 { return c.Y + c.R }

// Intersects reports whether the circle overlaps the rectangle.
// It measures the distance from the center to the closest point of r.
func (c Circle) Intersects(r Rect) bool {
	nearestX := ClampF(c.X, r.X, r.Right())
	nearestY := ClampF(c.Y, r.Y, r.Bottom())
	dx := c.X - nearestX
	dy := c.Y - nearestY
	return dx*dx+dy*dy < c.R*c.R
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

// Clamp restricts an int value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Round converts a logical coordinate to the nearest integer cell.
func Round(v float64) int {
	return int(math.Round(v))
}
