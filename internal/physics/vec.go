// Package physics provides the geometric primitives of the grid world:
// continuous 2D vectors, integer cells, world bounds, and energy helpers.
package physics

import "math"

// Vec2 is a continuous 2D vector (position, velocity, normal).
type Vec2 struct {
	X, Y float64
}

// Cell is an integer grid coordinate obtained by flooring a position.
// Cells are 1 unit wide; at rest one particle occupies one cell.
type Cell struct {
	X, Y int
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v multiplied by the scalar s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Length returns the Euclidean length of v.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalized returns v scaled to unit length. The zero vector is returned
// unchanged so corner normals never divide by zero.
func (v Vec2) Normalized() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Cell returns the grid cell containing v (component-wise floor).
func (v Vec2) Cell() Cell {
	return Cell{int(math.Floor(v.X)), int(math.Floor(v.Y))}
}

// Quantize rounds each component to the nearest 0.01. Resolved velocities
// are always quantized so recursive collision chains settle instead of
// drifting on floating-point noise.
func (v Vec2) Quantize() Vec2 {
	return Vec2{
		X: math.Round(v.X*100) / 100,
		Y: math.Round(v.Y*100) / 100,
	}
}

// KineticEnergy returns 0.5 * mass * |vel|^2.
func KineticEnergy(mass float64, vel Vec2) float64 {
	return 0.5 * mass * vel.Dot(vel)
}
