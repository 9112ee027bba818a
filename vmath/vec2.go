// Package vmath provides 2D vector math for the simulation.
package vmath

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Vec2 is a 2D vector in world units. Values are copied on assignment, so a
// Vec2 can be shared freely; entity state mutates its own copy in place.
type Vec2 struct {
	X, Y float64
}

// Zero is the zero vector.
var Zero = Vec2{}

// New returns the vector (x, y).
func New(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// FromAngle returns the unit vector pointing at angle radians.
func FromAngle(angle float64) Vec2 {
	return Vec2{X: math.Cos(angle), Y: math.Sin(angle)}
}

func (v Vec2) r2() r2.Vec {
	return r2.Vec{X: v.X, Y: v.Y}
}

func fromR2(p r2.Vec) Vec2 {
	return Vec2{X: p.X, Y: p.Y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return fromR2(r2.Add(v.r2(), o.r2()))
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return fromR2(r2.Sub(v.r2(), o.r2()))
}

// Scale returns v * f.
func (v Vec2) Scale(f float64) Vec2 {
	return fromR2(r2.Scale(f, v.r2()))
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return r2.Dot(v.r2(), o.r2())
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return r2.Norm(v.r2())
}

// LenSq returns the squared length of v.
func (v Vec2) LenSq() float64 {
	return r2.Norm2(v.r2())
}

// Normalize returns the unit vector in the direction of v.
// The zero vector normalizes to the zero vector.
func (v Vec2) Normalize() Vec2 {
	if v.X == 0 && v.Y == 0 {
		return Zero
	}
	return fromR2(r2.Unit(v.r2()))
}

// Rotate returns v rotated by angle radians around the origin.
func (v Vec2) Rotate(angle float64) Vec2 {
	return fromR2(r2.Rotate(v.r2(), angle, r2.Vec{}))
}

// Angle returns the direction of v in radians, measured from +X.
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// IsZero reports whether v is the zero vector.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// String implements fmt.Stringer.
func (v Vec2) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", v.X, v.Y)
}

// Distance returns the distance between a and b.
func Distance(a, b Vec2) float64 {
	return a.Sub(b).Len()
}

// DistanceSq returns the squared distance between a and b.
func DistanceSq(a, b Vec2) float64 {
	return a.Sub(b).LenSq()
}

// Lerp interpolates between a and b; t=0 gives a, t=1 gives b.
func Lerp(a, b Vec2, t float64) Vec2 {
	return Vec2{
		X: a.X*(1-t) + b.X*t,
		Y: a.Y*(1-t) + b.Y*t,
	}
}

// Clamp restricts v to the axis-aligned box [min, max].
func Clamp(v, min, max Vec2) Vec2 {
	return Vec2{
		X: ClampFloat(v.X, min.X, max.X),
		Y: ClampFloat(v.Y, min.Y, max.Y),
	}
}

// ClampFloat restricts x to [lo, hi].
func ClampFloat(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// LerpFloat interpolates between a and b.
func LerpFloat(a, b, t float64) float64 {
	return a + (b-a)*t
}
