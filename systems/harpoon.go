package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/harpoon/components"
	"github.com/pthm-cable/harpoon/vmath"
)

// HarpoonParams tunes launch, flight, tether and capture.
type HarpoonParams struct {
	MinSpeed        float64
	MaxSpeed        float64
	AttachDistance  float64 // flying harpoon attaches closer than this
	TetherBreak     float64 // flying harpoon is lost beyond this from the player
	TetherStiffness float64 // impulse divisor; larger is softer
	FishDrag        float64 // share of the tether impulse applied back to the fish
	CaptureDistance float64 // damage applies while the fish is closer than this
	DamageRate      float64 // health per sim-second inside capture range
}

// DefaultHarpoonParams returns the standard harpoon tuning.
func DefaultHarpoonParams() HarpoonParams {
	return HarpoonParams{
		MinSpeed:        50,
		MaxSpeed:        400,
		AttachDistance:  30,
		TetherBreak:     500,
		TetherStiffness: 5000,
		FishDrag:        0.05,
		CaptureDistance: 150,
		DamageRate:      1000,
	}
}

// FlightResult reports a harpoon state transition.
type FlightResult uint8

const (
	FlightUnchanged FlightResult = iota
	FlightAttached
	FlightLost
)

func (r FlightResult) String() string {
	switch r {
	case FlightAttached:
		return "attached"
	case FlightLost:
		return "lost"
	default:
		return "unchanged"
	}
}

// HarpoonBody groups the harpoon entity's components.
type HarpoonBody struct {
	Pos   *components.Position
	Vel   *components.Velocity
	Rot   *components.Rotation
	State *components.Harpoon
}

// LaunchHarpoon puts the harpoon in flight from `from` toward aim. Speed is
// clamped to [MinSpeed, MaxSpeed] and the carrier's velocity is inherited.
// The returned speed is the clamped launch speed.
func LaunchHarpoon(h HarpoonBody, from, aim vmath.Vec2, launchSpeed float64, carrierVel vmath.Vec2, p HarpoonParams) float64 {
	speed := vmath.ClampFloat(launchSpeed, p.MinSpeed, p.MaxSpeed)

	h.Pos.Vec2 = from
	h.Vel.Vec2 = aim.Normalize().Scale(speed).Add(carrierVel)
	h.Rot.Heading = aim.Angle()
	h.State.Reset()
	h.State.Active = true
	return speed
}

// AdvanceHarpoon moves a flying harpoon ballistically, without damping. An
// attached harpoon rides on the fish.
func AdvanceHarpoon(h HarpoonBody, fishPos vmath.Vec2, dt float64) {
	switch {
	case !h.State.Active:
		return
	case h.State.Attached:
		h.Pos.Vec2 = fishPos
	default:
		h.Pos.Vec2 = h.Pos.Add(h.Vel.Scale(dt))
	}
}

// ResolveFlight attaches a flying harpoon near a live fish, or drops it when
// it strays past the tether length. Attachment wins when both apply.
func ResolveFlight(h HarpoonBody, fish ecs.Entity, fishPos vmath.Vec2, fishAlive bool, playerPos vmath.Vec2, p HarpoonParams) FlightResult {
	if !h.State.Flying() {
		return FlightUnchanged
	}
	if fishAlive && vmath.Distance(h.Pos.Vec2, fishPos) < p.AttachDistance {
		h.State.Attached = true
		h.State.Target = fish
		h.Pos.Vec2 = fishPos
		return FlightAttached
	}
	if vmath.Distance(playerPos, h.Pos.Vec2) > p.TetherBreak {
		h.State.Reset()
		return FlightLost
	}
	return FlightUnchanged
}

// ApplyTether pulls the player toward the fish and drags the fish back
// slightly. The pull grows with the square of the distance. Returns the
// player to fish distance.
func ApplyTether(playerPos vmath.Vec2, playerVel *components.Velocity, fishPos vmath.Vec2, fishVel *components.Velocity, dt float64, p HarpoonParams) float64 {
	diff := fishPos.Sub(playerPos)
	dist := diff.Len()
	impulse := diff.Scale(dt * dist / p.TetherStiffness)

	playerVel.Vec2 = playerVel.Add(impulse)
	fishVel.Vec2 = fishVel.Add(impulse.Scale(-p.FishDrag))
	return dist
}

// ApplyCaptureDamage damages the fish while it is held within capture range.
// Returns true on the tick the fish's health reaches zero.
func ApplyCaptureDamage(f *components.Fish, dist, dt float64, p HarpoonParams) bool {
	if !f.Alive() || dist >= p.CaptureDistance {
		return false
	}
	f.Health -= dt * p.DamageRate
	return !f.Alive()
}

// Release deactivates the harpoon and clears its target.
func Release(h *components.Harpoon) {
	h.Reset()
}
