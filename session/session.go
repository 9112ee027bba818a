// Package session runs one hunt: a player boat, a whale and a harpoon on a
// terrain field, advanced by a fixed-order Step.
package session

import (
	"errors"
	"log/slog"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/harpoon/camera"
	"github.com/pthm-cable/harpoon/components"
	"github.com/pthm-cable/harpoon/systems"
	"github.com/pthm-cable/harpoon/telemetry"
	"github.com/pthm-cable/harpoon/terrain"
	"github.com/pthm-cable/harpoon/vmath"
)

// Session owns the ECS world and terrain for one hunt. It is not safe for
// concurrent use; hosts replace a whole Session rather than mutating one
// that is being drawn.
type Session struct {
	world   *ecs.World
	terrain *terrain.Field
	params  Params
	camera  *camera.Camera

	player  ecs.Entity
	fish    ecs.Entity
	harpoon ecs.Entity

	posMap     *ecs.Map1[components.Position]
	velMap     *ecs.Map1[components.Velocity]
	rotMap     *ecs.Map1[components.Rotation]
	playerMap  *ecs.Map1[components.Player]
	fishMap    *ecs.Map1[components.Fish]
	harpoonMap *ecs.Map1[components.Harpoon]

	tick    int32
	outcome Outcome

	// Telemetry
	events    []telemetry.Event
	collector *telemetry.Collector
	flights   *telemetry.FlightTracker
	perf      *telemetry.PerfCollector

	// last tether distance, 0 when not attached
	tetherDist float64

	// launch button state on the previous tick; charging starts on its press
	chargeHeld bool
}

// New creates a session on field. Spawn points that fall on land are moved to
// the nearest open water.
func New(field *terrain.Field, p Params) (*Session, error) {
	if field == nil {
		return nil, errors.New("session: nil terrain")
	}
	if p.DT <= 0 {
		return nil, errors.New("session: dt must be positive")
	}
	if p.Harpoon.TetherStiffness <= 0 {
		return nil, errors.New("session: tether stiffness must be positive")
	}

	world := ecs.NewWorld()
	s := &Session{
		world:      world,
		terrain:    field,
		params:     p,
		camera:     camera.New(p.ViewW, p.ViewH, field.Size()),
		posMap:     ecs.NewMap1[components.Position](world),
		velMap:     ecs.NewMap1[components.Velocity](world),
		rotMap:     ecs.NewMap1[components.Rotation](world),
		playerMap:  ecs.NewMap1[components.Player](world),
		fishMap:    ecs.NewMap1[components.Fish](world),
		harpoonMap: ecs.NewMap1[components.Harpoon](world),
		collector:  telemetry.NewCollector(p.StatsWindow, p.DT),
		flights:    telemetry.NewFlightTracker(p.DT),
	}

	s.spawn()
	s.camera.Follow(s.posMap.Get(s.player).Vec2)
	return s, nil
}

func (s *Session) spawn() {
	p := s.params

	playerPos := s.openSpawn(p.PlayerSpawn, "player")
	fishPos := s.openSpawn(p.FishSpawn, "fish")

	mover := ecs.NewMap4[components.Position, components.Velocity, components.Rotation, components.Player](s.world)
	s.player = mover.NewEntity(
		&components.Position{Vec2: playerPos},
		&components.Velocity{},
		&components.Rotation{Heading: p.PlayerHeading},
		&components.Player{},
	)

	fishMapper := ecs.NewMap4[components.Position, components.Velocity, components.Rotation, components.Fish](s.world)
	s.fish = fishMapper.NewEntity(
		&components.Position{Vec2: fishPos},
		&components.Velocity{},
		&components.Rotation{Heading: p.FishHeading},
		&components.Fish{
			Health:    p.FishHealth,
			MaxHealth: p.FishHealth,
			Speed:     p.FishSpeed,
			FearSpeed: p.FishFearSpeed,
			Length:    p.FishLength,
			Girth:     p.FishGirth,
		},
	)

	harpoonMapper := ecs.NewMap4[components.Position, components.Velocity, components.Rotation, components.Harpoon](s.world)
	s.harpoon = harpoonMapper.NewEntity(
		&components.Position{Vec2: playerPos},
		&components.Velocity{},
		&components.Rotation{},
		&components.Harpoon{},
	)
}

func (s *Session) openSpawn(pos vmath.Vec2, who string) vmath.Vec2 {
	open, ok := s.terrain.NearestOpen(pos, s.params.OpenThreshold)
	if !ok {
		slog.Warn("no open water for spawn", "entity", who, "x", pos.X, "y", pos.Y)
		return pos
	}
	if open != pos {
		slog.Debug("spawn moved to open water", "entity", who,
			"from_x", pos.X, "from_y", pos.Y, "x", open.X, "y", open.Y)
	}
	return open
}

// SetPerf attaches a perf collector timing each Step phase. nil disables it.
func (s *Session) SetPerf(p *telemetry.PerfCollector) {
	s.perf = p
}

// Step advances the session by one tick of dt sim-seconds. Triggers in in
// apply first, then player, harpoon, fish, flight resolution, tether,
// terrain collision and camera, in that order.
func (s *Session) Step(dt float64, in Input) {
	if dt <= 0 {
		return
	}
	s.tick++
	s.perf.StartTick()

	s.perf.StartPhase(telemetry.PhaseInput)
	s.applyTriggers(in)

	s.perf.StartPhase(telemetry.PhasePlayer)
	s.updatePlayer(in, dt)

	s.perf.StartPhase(telemetry.PhaseHarpoon)
	h := s.harpoonBody()
	systems.AdvanceHarpoon(h, s.posMap.Get(s.fish).Vec2, dt)

	s.perf.StartPhase(telemetry.PhaseFish)
	s.updateFish(dt)

	s.perf.StartPhase(telemetry.PhaseFlight)
	s.resolveFlight()

	s.perf.StartPhase(telemetry.PhaseTether)
	s.updateTether(dt)

	s.perf.StartPhase(telemetry.PhaseCollision)
	s.checkCollision()

	s.perf.StartPhase(telemetry.PhaseCamera)
	s.camera.Follow(s.posMap.Get(s.player).Vec2)

	s.perf.EndTick()

	h = s.harpoonBody()
	s.collector.Sample(h.State.Attached, s.tetherDist, s.velMap.Get(s.player).Len())
}

func (s *Session) harpoonBody() systems.HarpoonBody {
	return systems.HarpoonBody{
		Pos:   s.posMap.Get(s.harpoon),
		Vel:   s.velMap.Get(s.harpoon),
		Rot:   s.rotMap.Get(s.harpoon),
		State: s.harpoonMap.Get(s.harpoon),
	}
}

func (s *Session) applyTriggers(in Input) {
	pressed := in.Charge && !s.chargeHeld
	s.chargeHeld = in.Charge

	pl := s.playerMap.Get(s.player)
	if pl.Dead {
		return
	}

	// Release cancels a charge. Holding on afterwards does not restart it.
	if in.Release {
		pl.Charging = false
		pl.ChargingTime = 0
		s.release()
		return
	}

	if pressed && !pl.Charging {
		pl.Charging = true
		pl.ChargingTime = 0
	}

	if in.Launch {
		s.launch(pl, in.Aim)
	}
}

// launch throws the harpoon with the accumulated charge. Without a charge in
// progress it does nothing.
func (s *Session) launch(pl *components.Player, aim vmath.Vec2) {
	if !pl.Charging {
		return
	}
	pos := s.posMap.Get(s.player).Vec2
	if aim.IsZero() {
		aim = s.rotMap.Get(s.player).Dir()
	}

	h := s.harpoonBody()
	if h.State.Active {
		s.release()
	}

	requested := pl.ChargingTime * s.params.ChargeRate
	speed := systems.LaunchHarpoon(h, pos, aim, requested, s.velMap.Get(s.player).Vec2, s.params.Harpoon)
	pl.Charging = false
	pl.ChargingTime = 0

	s.flights.Launch(s.tick, speed)
	s.emit(telemetry.NewLaunchEvent(s.tick, pos.X, pos.Y, speed))
}

// release drops an active harpoon and records it.
func (s *Session) release() {
	h := s.harpoonMap.Get(s.harpoon)
	if !h.Active {
		return
	}
	if h.Flying() {
		s.flights.End(s.tick, "released")
	}
	systems.Release(h)
	s.tetherDist = 0

	pos := s.posMap.Get(s.harpoon).Vec2
	s.emit(telemetry.NewReleaseEvent(s.tick, pos.X, pos.Y))
}

func (s *Session) updatePlayer(in Input, dt float64) {
	pl := s.playerMap.Get(s.player)
	if pl.Dead {
		return
	}

	rot := s.rotMap.Get(s.player)
	vel := s.velMap.Get(s.player)
	pos := s.posMap.Get(s.player)

	if in.Left {
		rot.Heading -= s.params.TurnRate * dt
	}
	if in.Right {
		rot.Heading += s.params.TurnRate * dt
	}

	accel := s.params.Thrust
	if in.Boost {
		accel = s.params.BoostThrust
	}
	if in.Forward {
		systems.Thrust(vel, rot.Dir(), accel, dt)
	}
	if in.Reverse {
		systems.Thrust(vel, rot.Dir(), -accel, dt)
	}

	if pl.Charging {
		pl.ChargingTime += dt
	}

	systems.Integrate(pos, vel, s.params.Damping, dt)
	systems.ClampToBounds(pos, s.params.Bounds)
}

func (s *Session) updateFish(dt float64) {
	f := s.fishMap.Get(s.fish)
	if !f.Alive() {
		s.finishHunt()
		return
	}

	pos := s.posMap.Get(s.fish)
	vel := s.velMap.Get(s.fish)
	rot := s.rotMap.Get(s.fish)

	probes := systems.ProbeTerrain(s.terrain, pos.Vec2, rot.Heading, s.params.Steer)
	f.Sensors = probes.Array()

	speed := systems.FishSpeed(f, s.harpoonedFish())
	systems.SteerFish(rot, vel, probes, speed, dt, s.params.Steer)
	systems.Integrate(pos, vel, s.params.Damping, dt)
	systems.ClampToBounds(pos, s.params.Bounds)
}

// harpoonedFish reports whether the harpoon is attached to the session's fish.
func (s *Session) harpoonedFish() bool {
	h := s.harpoonMap.Get(s.harpoon)
	return h.Attached && h.Target == s.fish
}

// finishHunt marks the hunt won and drops the harpoon once the fish is dead.
func (s *Session) finishHunt() {
	if s.outcome == Playing {
		s.outcome = Won
	}
	s.release()
}

func (s *Session) resolveFlight() {
	h := s.harpoonBody()
	if !h.State.Flying() {
		return
	}

	playerPos := s.posMap.Get(s.player).Vec2
	fishPos := s.posMap.Get(s.fish).Vec2
	fishAlive := s.world.Alive(s.fish) && s.fishMap.Get(s.fish).Alive()

	s.flights.UpdateRange(vmath.Distance(playerPos, h.Pos.Vec2))

	switch systems.ResolveFlight(h, s.fish, fishPos, fishAlive, playerPos, s.params.Harpoon) {
	case systems.FlightAttached:
		d := vmath.Distance(playerPos, fishPos)
		s.flights.End(s.tick, "attached")
		s.emit(telemetry.NewAttachEvent(s.tick, fishPos.X, fishPos.Y, d))
	case systems.FlightLost:
		d := vmath.Distance(playerPos, h.Pos.Vec2)
		s.flights.End(s.tick, "lost")
		s.emit(telemetry.NewLostEvent(s.tick, h.Pos.X, h.Pos.Y, d))
	}
}

func (s *Session) updateTether(dt float64) {
	s.tetherDist = 0
	h := s.harpoonMap.Get(s.harpoon)
	if !h.Attached || !s.world.Alive(h.Target) {
		return
	}
	f := s.fishMap.Get(h.Target)
	if f == nil || !f.Alive() {
		return
	}

	playerPos := s.posMap.Get(s.player).Vec2
	fishPos := s.posMap.Get(h.Target).Vec2
	dist := systems.ApplyTether(playerPos, s.velMap.Get(s.player), fishPos, s.velMap.Get(h.Target), dt, s.params.Harpoon)
	s.tetherDist = dist
	// keep the head on the fish after it has moved this tick
	s.posMap.Get(s.harpoon).Vec2 = fishPos

	if systems.ApplyCaptureDamage(f, dist, dt, s.params.Harpoon) {
		s.emit(telemetry.NewCaptureEvent(s.tick, fishPos.X, fishPos.Y))
		slog.Info("fish captured", "tick", s.tick)
		s.finishHunt()
	}
}

func (s *Session) checkCollision() {
	pl := s.playerMap.Get(s.player)
	if pl.Dead {
		return
	}
	pos := s.posMap.Get(s.player).Vec2
	if !systems.Crashed(s.terrain, pos, s.params.LandThreshold) {
		return
	}

	pl.Dead = true
	pl.Charging = false
	pl.ChargingTime = 0
	s.velMap.Get(s.player).Vec2 = vmath.Zero

	d := s.terrain.DensityAt(pos)
	s.emit(telemetry.NewCrashEvent(s.tick, pos.X, pos.Y, d))
	slog.Info("player crashed", "tick", s.tick, "density", d)

	s.release()
	if s.outcome == Playing {
		s.outcome = Crashed
	}
}

func (s *Session) emit(e telemetry.Event) {
	s.events = append(s.events, e)
	s.collector.Record(e)
}

// Tick returns the number of steps taken.
func (s *Session) Tick() int32 { return s.tick }

// Outcome returns the state of the hunt.
func (s *Session) Outcome() Outcome { return s.outcome }

// Terrain returns the session's terrain field.
func (s *Session) Terrain() *terrain.Field { return s.terrain }

// Camera returns the session's camera.
func (s *Session) Camera() *camera.Camera { return s.camera }

// Params returns the session tuning.
func (s *Session) Params() Params { return s.params }

// World returns the ECS world. Entities are Player, Fish and Harpoon.
func (s *Session) World() *ecs.World { return s.world }

// Player returns the player entity.
func (s *Session) Player() ecs.Entity { return s.player }

// Fish returns the fish entity.
func (s *Session) Fish() ecs.Entity { return s.fish }

// Harpoon returns the harpoon entity.
func (s *Session) Harpoon() ecs.Entity { return s.harpoon }

// DrainEvents returns and clears events emitted since the last call.
func (s *Session) DrainEvents() []telemetry.Event {
	out := s.events
	s.events = nil
	return out
}

// DrainFlights returns finished harpoon throws since the last call.
func (s *Session) DrainFlights() []telemetry.FlightStats {
	return s.flights.Drain()
}

// FlushStats returns the window stats when a stats window has elapsed.
func (s *Session) FlushStats() (telemetry.WindowStats, bool) {
	if !s.collector.ShouldFlush(s.tick) {
		return telemetry.WindowStats{}, false
	}
	return s.collector.Flush(s.tick, s.fishMap.Get(s.fish).Health), true
}

// Flights returns the number of harpoon throws so far.
func (s *Session) Flights() int {
	return s.flights.Count()
}

// FlushPartialStats flushes a window cut short, e.g. before the host swaps
// sessions. It reports false when nothing was sampled since the last flush.
func (s *Session) FlushPartialStats() (telemetry.WindowStats, bool) {
	if s.collector.Pending() == 0 {
		return telemetry.WindowStats{}, false
	}
	return s.collector.Flush(s.tick, s.fishMap.Get(s.fish).Health), true
}
