// Package core provides fundamental types and utilities shared by the simulation,
// the renderer and the terminal platform. It has no dependency on Bubble Tea so game
// logic stays pure and testable.
package core

import "github.com/go-gl/mathgl/mgl64"

// Rect is an axis-aligned box described by its center and half-extents.
// It is a value type; operations return new rects.
type Rect struct {
	Pos     mgl64.Vec2 // Center
	Extents mgl64.Vec2 // Half width and half height, never negative
}

// NewRect creates a rect centered at pos with the given half-extents.
// Negative extents are folded to their absolute value.
func NewRect(pos, extents mgl64.Vec2) Rect {
	return Rect{
		Pos:     pos,
		Extents: mgl64.Vec2{AbsF(extents.X()), AbsF(extents.Y())},
	}
}

// Min returns the top-left corner (smallest x and y).
func (r Rect) Min() mgl64.Vec2 {
	return r.Pos.Sub(r.Extents)
}

// Max returns the bottom-right corner (largest x and y).
func (r Rect) Max() mgl64.Vec2 {
	return r.Pos.Add(r.Extents)
}

// Size returns the full width and height.
func (r Rect) Size() mgl64.Vec2 {
	return r.Extents.Mul(2)
}

// Translate returns a copy of this rect moved by offset.
func (r Rect) Translate(offset mgl64.Vec2) Rect {
	return Rect{Pos: r.Pos.Add(offset), Extents: r.Extents}
}

// Intersects reports whether the two rects overlap.
// The intervals are open: rects that only share an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	start, end := r.Min(), r.Max()
	otherStart, otherEnd := other.Min(), other.Max()
	return start.X() < otherEnd.X() &&
		end.X() > otherStart.X() &&
		start.Y() < otherEnd.Y() &&
		end.Y() > otherStart.Y()
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

// AbsF returns the absolute value of a float64.
func AbsF(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
