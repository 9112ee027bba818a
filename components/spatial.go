// Package components defines ECS components for the simulation.
package components

import "github.com/pthm-cable/harpoon/vmath"

// Position represents an entity's world position.
type Position struct {
	vmath.Vec2
}

// Velocity represents an entity's velocity in world units per sim-second.
type Velocity struct {
	vmath.Vec2
}

// Rotation represents an entity's heading.
type Rotation struct {
	Heading float64 `inspect:"angle"` // radians
}

// Dir returns the unit vector along the heading.
func (r Rotation) Dir() vmath.Vec2 {
	return vmath.FromAngle(r.Heading)
}
