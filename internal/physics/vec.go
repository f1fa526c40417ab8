// Package physics provides the entity state and collision resolver shared by
// the real-time games: a float vector, an axis-aligned box, and a body that
// integrates under gravity against platforms and a ground half-plane.
//
// World coordinates are y-up. 2D games leave Z at zero.
package physics

import "math"

// Vec is a 3D vector.
type Vec struct {
	X, Y, Z float64
}

// V2 builds a vector on the XY plane.
func V2(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

func (v Vec) Add(o Vec) Vec {
	return Vec{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec) Sub(o Vec) Vec {
	return Vec{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec) Scale(k float64) Vec {
	return Vec{v.X * k, v.Y * k, v.Z * k}
}

// Len returns the Euclidean length.
func (v Vec) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Dist returns the Euclidean distance between two points.
func (v Vec) Dist(o Vec) float64 {
	return v.Sub(o).Len()
}

// Normalize returns the unit vector, or zero for a zero vector.
func (v Vec) Normalize() Vec {
	l := v.Len()
	if l == 0 {
		return Vec{}
	}
	return v.Scale(1 / l)
}

// Hit is the distance-threshold collision policy: two points with radii
// ra and rb collide when their centres are no further apart than ra+rb.
func Hit(a, b Vec, ra, rb float64) bool {
	return a.Dist(b) <= ra+rb
}
