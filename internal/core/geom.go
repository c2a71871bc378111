// Package core provides fundamental types and utilities shared by the
// simulation, the driver and the terminal front-end. It has no external
// dependencies so the game logic stays pure and testable.
package core

// Box is an axis-aligned bounding box in world units.
// World space is y-up: Y is the elevation of the box's bottom edge above
// the ground baseline, so a box resting on the ground has Y == baseline.
type Box struct {
	X, Y float64 // Left edge, bottom edge
	W, H float64 // Width and height
}

// NewBox creates a box with the given position and dimensions.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right (trailing) edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Top returns the y-coordinate of the top edge.
func (b Box) Top() float64 {
	return b.Y + b.H
}

// Inset shrinks the box by pad on every side.
// Width and height never go below zero; a fully collapsed box keeps its center.
func (b Box) Inset(pad float64) Box {
	if pad == 0 {
		return b
	}
	out := Box{X: b.X + pad, Y: b.Y + pad, W: b.W - 2*pad, H: b.H - 2*pad}
	if out.W < 0 {
		out.X = b.X + b.W/2
		out.W = 0
	}
	if out.H < 0 {
		out.Y = b.Y + b.H/2
		out.H = 0
	}
	return out
}

// Overlaps reports whether two boxes share any interior area.
// Boxes that only touch along an edge do not overlap.
func (b Box) Overlaps(other Box) bool {
	if b.X >= other.Right() || other.X >= b.Right() {
		return false
	}
	if b.Y >= other.Top() || other.Y >= b.Top() {
		return false
	}
	return true
}

// PaddedOverlap insets both boxes by pad and tests them for overlap.
// The result does not depend on argument order.
func PaddedOverlap(a, b Box, pad float64) bool {
	return a.Inset(pad).Overlaps(b.Inset(pad))
}

// Rect is an integer cell rectangle used when drawing into a Screen.
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
