// Package systems contains the per-tick simulation rules.
package systems

import (
	"github.com/pthm-cable/harpoon/components"
	"github.com/pthm-cable/harpoon/vmath"
)

// DefaultDamping is the velocity damping coefficient per sim-second.
const DefaultDamping = 0.1

// Bounds represents the square world extent.
type Bounds struct {
	Min, Max vmath.Vec2
}

// BoundsFromSize returns bounds of ±size/2 on both axes.
func BoundsFromSize(size float64) Bounds {
	half := size / 2
	return Bounds{Min: vmath.New(-half, -half), Max: vmath.New(half, half)}
}

// Integrate advances pos by vel*dt, then damps vel by (1 - damping*dt).
func Integrate(pos *components.Position, vel *components.Velocity, damping, dt float64) {
	pos.Vec2 = pos.Add(vel.Scale(dt))
	vel.Vec2 = vel.Scale(1 - damping*dt)
}

// ClampToBounds clamps pos to the world bounds on both axes.
func ClampToBounds(pos *components.Position, b Bounds) {
	pos.Vec2 = vmath.Clamp(pos.Vec2, b.Min, b.Max)
}

// Thrust adds dir*accel*dt to vel.
func Thrust(vel *components.Velocity, dir vmath.Vec2, accel, dt float64) {
	vel.Vec2 = vel.Add(dir.Scale(accel * dt))
}
