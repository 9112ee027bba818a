package game

import (
	"math"

	"github.com/pthm-cable/harpoon/session"
	"github.com/pthm-cable/harpoon/systems"
	"github.com/pthm-cable/harpoon/vmath"
)

// Autopilot drives the player in headless runs: it closes on the fish, keeps
// off the shore, charges a throw and launches once the fish is in range.
// With a terrain set it routes round land that blocks the direct line.
type Autopilot struct {
	ChargeTicks int     // ticks to hold the launch button
	Range       float64 // launch when the fish is closer than this
	Cruise      float64 // stop thrusting inside this distance
	LookAhead   float64 // shore probe distance along the heading
	Shore       float64 // density treated as shore
	Deadband    float64 // heading error ignored when turning
	Replan      int32   // ticks before a route is recomputed
	Arrival     float64 // waypoint reached within this distance

	charged int
	planner *systems.AStarPlanner
	route   systems.Route
}

// NewAutopilot returns an autopilot tuned for the default config.
func NewAutopilot() *Autopilot {
	return &Autopilot{
		ChargeTicks: 48,
		Range:       350,
		Cruise:      250,
		LookAhead:   150,
		Shore:       0.6,
		Deadband:    0.05,
		Replan:      120,
		Arrival:     60,
	}
}

// SetTerrain builds the route planner for a new map.
func (a *Autopilot) SetTerrain(terrain systems.DensitySampler, b systems.Bounds) {
	grid := systems.NewNavGrid(terrain, b, systems.NavGridCellSize, a.LookAhead/3, a.Shore)
	a.planner = systems.NewAStarPlanner(grid)
	a.route = systems.Route{}
}

// goal returns where to steer for: the fish when the line to it is clear,
// otherwise the next waypoint of a route round the land.
func (a *Autopilot) goal(pos, fish vmath.Vec2, tick int32) vmath.Vec2 {
	if a.planner == nil || a.planner.Grid().LineOfSight(pos, fish) {
		a.route = systems.Route{}
		return fish
	}
	if !a.planner.RouteValid(&a.route, fish, tick, a.Replan, a.Arrival) {
		a.route = systems.Route{
			Waypoints: a.planner.FindPath(pos, fish),
			Target:    fish,
			Tick:      tick,
		}
	}
	if wp, ok := systems.NextWaypoint(&a.route, pos, a.Arrival); ok {
		return wp
	}
	return fish
}

// Input decides the next tick's controls from the current snapshot.
func (a *Autopilot) Input(snap session.Snapshot, terrain systems.DensitySampler) session.Input {
	var in session.Input
	if snap.Player.Dead {
		a.charged = 0
		return in
	}

	p := snap.Player
	toFish := snap.Fish.Pos.Sub(p.Pos)
	dist := toFish.Len()

	ahead := p.Pos.Add(vmath.FromAngle(p.Heading).Scale(a.LookAhead))
	switch {
	case terrain.DensityAt(ahead) > a.Shore:
		in.Right = true
		in.Reverse = true
	case snap.Fish.Alive && !snap.Harpoon.Attached:
		goal := a.goal(p.Pos, snap.Fish.Pos, snap.Tick)
		routed := goal != snap.Fish.Pos
		turn := systems.AngleDiff(p.Heading, goal.Sub(p.Pos).Angle())
		in.Right = turn > a.Deadband
		in.Left = turn < -a.Deadband
		in.Forward = (routed || dist > a.Cruise) && math.Abs(turn) < math.Pi/2
	}

	if !snap.Fish.Alive || snap.Harpoon.Active {
		a.charged = 0
		return in
	}

	if a.charged >= a.ChargeTicks && dist < a.Range {
		in.Launch = true
		in.Aim = toFish
		a.charged = 0
		return in
	}
	in.Charge = true
	if a.charged < a.ChargeTicks {
		a.charged++
	}
	return in
}

// Reset forgets any partial charge and route, e.g. after a session swap.
func (a *Autopilot) Reset() {
	a.charged = 0
	a.route = systems.Route{}
}
