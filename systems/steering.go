package systems

import (
	"math"

	"github.com/pthm-cable/harpoon/components"
	"github.com/pthm-cable/harpoon/terrain"
	"github.com/pthm-cable/harpoon/vmath"
)

// DensitySampler answers terrain density queries. *terrain.Field satisfies it.
type DensitySampler interface {
	DensityAt(pos vmath.Vec2) float64
}

// Probes holds six terrain readings taken ahead of the fish.
type Probes struct {
	ShortFront, ShortLeft, ShortRight float64
	LongFront, LongLeft, LongRight    float64
}

// Array returns the readings as short front/left/right then long front/left/right.
func (p Probes) Array() [6]float64 {
	return [6]float64{p.ShortFront, p.ShortLeft, p.ShortRight, p.LongFront, p.LongLeft, p.LongRight}
}

// SteerParams tunes the reactive steering rules.
type SteerParams struct {
	ProbeDistance float64 // short probe reach; long probes reach twice as far
	ProbeSpread   float64 // angle between the front probe and each side probe
	Hazard        float64 // density above which a probe reads as danger
	Cautious      float64 // thrust factor when danger is only far ahead
	LongTurn      float64 // turn weight of the long side probes
	Correct       float64 // turn weight of the short probe imbalance
}

// DefaultSteerParams returns the standard whale steering parameters.
func DefaultSteerParams() SteerParams {
	return SteerParams{
		ProbeDistance: 200,
		ProbeSpread:   0.15 * math.Pi,
		Hazard:        0.7,
		Cautious:      0.1,
		LongTurn:      0.25,
		Correct:       0.5,
	}
}

// ProbePoints returns the world positions ProbeTerrain samples, in Probes.Array
// order. Right is heading+spread, left is heading-spread.
func ProbePoints(pos vmath.Vec2, heading float64, p SteerParams) [6]vmath.Vec2 {
	at := func(angle, dist float64) vmath.Vec2 {
		return pos.Add(vmath.FromAngle(angle).Scale(dist))
	}
	short := p.ProbeDistance
	long := p.ProbeDistance * 2
	right := heading + p.ProbeSpread
	left := heading - p.ProbeSpread

	return [6]vmath.Vec2{
		at(heading, short), at(left, short), at(right, short),
		at(heading, long), at(left, long), at(right, long),
	}
}

// ProbeTerrain samples density at the six ProbePoints ahead of pos.
func ProbeTerrain(s DensitySampler, pos vmath.Vec2, heading float64, p SteerParams) Probes {
	pts := ProbePoints(pos, heading, p)
	return Probes{
		ShortFront: s.DensityAt(pts[0]),
		ShortLeft:  s.DensityAt(pts[1]),
		ShortRight: s.DensityAt(pts[2]),
		LongFront:  s.DensityAt(pts[3]),
		LongLeft:   s.DensityAt(pts[4]),
		LongRight:  s.DensityAt(pts[5]),
	}
}

// SteerFish turns and thrusts from fixed probe readings. Thrust follows the
// heading from before the turn.
func SteerFish(rot *components.Rotation, vel *components.Velocity, pr Probes, speed, dt float64, p SteerParams) {
	dir := rot.Dir()

	switch {
	case pr.ShortLeft > p.Hazard:
		rot.Heading += pr.ShortLeft / p.Hazard * dt
	case pr.ShortRight > p.Hazard:
		rot.Heading -= pr.ShortRight / p.Hazard * dt
	default:
		rot.Heading += (pr.ShortLeft - pr.ShortRight) * p.Correct * dt
	}
	rot.Heading += pr.LongLeft / p.Hazard * p.LongTurn * dt
	rot.Heading -= pr.LongRight / p.Hazard * p.LongTurn * dt

	switch {
	case pr.ShortFront > p.Hazard:
		Thrust(vel, dir, -speed, dt)
	case pr.LongFront > p.Hazard && pr.LongFront != terrain.OutOfBounds:
		Thrust(vel, dir, -speed*p.Cautious, dt)
	default:
		Thrust(vel, dir, speed, dt)
	}
}

// FishSpeed picks the fish's thrust speed: fear speed while harpooned.
func FishSpeed(f *components.Fish, harpooned bool) float64 {
	if harpooned {
		return f.FearSpeed
	}
	return f.Speed
}
