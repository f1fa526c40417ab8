// Package core holds the types shared by every game and platform: the
// screen buffer, input frames and the input sampler, runtime configuration
// and the per-step result. It imports no UI library so game logic stays
// testable headless.
package core

import "math"

// Rect is an integer axis-aligned rectangle in screen cells, y growing down.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
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

// Intersects reports whether two rectangles overlap. Touching edges do not count.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains reports whether the cell (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center cell of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Viewport maps y-up world coordinates onto screen cells.
// World point (OriginX, OriginY) lands on the bottom-left cell of the
// screen. One column spans Scale world units; one row spans ScaleY, or
// Scale when ScaleY is zero. Terminal cells are about twice as tall as
// they are wide, so ScaleY = 2*Scale keeps proportions.
type Viewport struct {
	OriginX, OriginY float64
	Scale            float64
	ScaleY           float64
	Height           int // screen rows, needed to flip the y axis
}

// ColScale returns world units per column.
func (v Viewport) ColScale() float64 {
	if v.Scale == 0 {
		return 1
	}
	return v.Scale
}

// RowScale returns world units per row.
func (v Viewport) RowScale() float64 {
	if v.ScaleY == 0 {
		return v.ColScale()
	}
	return v.ScaleY
}

// Cell converts a world point into a screen cell.
func (v Viewport) Cell(wx, wy float64) (int, int) {
	cx := int(math.Floor((wx - v.OriginX) / v.ColScale()))
	cy := v.Height - 1 - int(math.Floor((wy-v.OriginY)/v.RowScale()))
	return cx, cy
}

// Follow recentres the viewport horizontally on wx for a screen width
// cols, keeping the view inside [lo, hi] when hi > lo.
func (v *Viewport) Follow(wx float64, cols int, lo, hi float64) {
	span := float64(cols) * v.ColScale()
	v.OriginX = wx - span/2
	if hi > lo {
		if v.OriginX+span > hi {
			v.OriginX = hi - span
		}
		if v.OriginX < lo {
			v.OriginX = lo
		}
	}
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
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
	return min(a, b)
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	return max(a, b)
}
