package session

import (
	"github.com/pthm-cable/harpoon/camera"
	"github.com/pthm-cable/harpoon/vmath"
)

// Body is the kinematic state shared by every entity.
type Body struct {
	Pos     vmath.Vec2
	Vel     vmath.Vec2
	Heading float64
}

// PlayerState is the player as seen by the renderer.
type PlayerState struct {
	Body
	Charging     bool
	ChargingTime float64
	LaunchSpeed  float64 // speed a launch would have now, after clamping
	Dead         bool
}

// FishState is the fish as seen by the renderer.
type FishState struct {
	Body
	Alive          bool
	Health         float64
	MaxHealth      float64
	HealthFraction float64
	Length         float64
	Girth          float64
	Sensors        [6]float64
}

// HarpoonState is the harpoon as seen by the renderer.
type HarpoonState struct {
	Body
	Active   bool
	Attached bool
}

// Snapshot is a read-only copy of everything a frame needs to draw.
type Snapshot struct {
	Tick    int32
	Outcome Outcome

	Player  PlayerState
	Fish    FishState
	Harpoon HarpoonState
	Camera  camera.Camera

	CaptureDistance float64
	TetherDistance  float64

	// ShowAim is set while the player is alive and not attached to a live
	// fish; AimBearing is the angle from the player to the fish.
	ShowAim    bool
	AimBearing float64
}

// Snapshot copies the current session state.
func (s *Session) Snapshot() Snapshot {
	body := func(pos, vel vmath.Vec2, heading float64) Body {
		return Body{Pos: pos, Vel: vel, Heading: heading}
	}

	pl := s.playerMap.Get(s.player)
	f := s.fishMap.Get(s.fish)
	h := s.harpoonMap.Get(s.harpoon)

	playerPos := s.posMap.Get(s.player).Vec2
	fishPos := s.posMap.Get(s.fish).Vec2

	launch := pl.ChargingTime * s.params.ChargeRate
	launch = vmath.ClampFloat(launch, s.params.Harpoon.MinSpeed, s.params.Harpoon.MaxSpeed)

	snap := Snapshot{
		Tick:    s.tick,
		Outcome: s.outcome,
		Player: PlayerState{
			Body:         body(playerPos, s.velMap.Get(s.player).Vec2, s.rotMap.Get(s.player).Heading),
			Charging:     pl.Charging,
			ChargingTime: pl.ChargingTime,
			LaunchSpeed:  launch,
			Dead:         pl.Dead,
		},
		Fish: FishState{
			Body:           body(fishPos, s.velMap.Get(s.fish).Vec2, s.rotMap.Get(s.fish).Heading),
			Alive:          f.Alive(),
			Health:         f.Health,
			MaxHealth:      f.MaxHealth,
			HealthFraction: f.HealthFraction(),
			Length:         f.Length,
			Girth:          f.Girth,
			Sensors:        f.Sensors,
		},
		Harpoon: HarpoonState{
			Body:     body(s.posMap.Get(s.harpoon).Vec2, s.velMap.Get(s.harpoon).Vec2, s.rotMap.Get(s.harpoon).Heading),
			Active:   h.Active,
			Attached: h.Attached,
		},
		Camera:          *s.camera,
		CaptureDistance: s.params.Harpoon.CaptureDistance,
		TetherDistance:  s.tetherDist,
	}

	if !pl.Dead && f.Alive() && !h.Attached {
		snap.ShowAim = true
		snap.AimBearing = fishPos.Sub(playerPos).Angle()
	}
	return snap
}
