package game

import (
	"math"
	"testing"

	"github.com/pthm-cable/harpoon/session"
	"github.com/pthm-cable/harpoon/systems"
	"github.com/pthm-cable/harpoon/vmath"
)

type densityFunc func(vmath.Vec2) float64

func (f densityFunc) DensityAt(p vmath.Vec2) float64 { return f(p) }

var openWater = densityFunc(func(vmath.Vec2) float64 { return 0.1 })

func huntSnapshot(fish vmath.Vec2) session.Snapshot {
	var snap session.Snapshot
	snap.Fish.Pos = fish
	snap.Fish.Alive = true
	return snap
}

func TestAutopilotSteering(t *testing.T) {
	tests := []struct {
		name                 string
		fish                 vmath.Vec2
		left, right, forward bool
	}{
		{"dead ahead far", vmath.New(1000, 0), false, false, true},
		{"dead ahead close", vmath.New(100, 0), false, false, false},
		{"to the right", vmath.New(0, 1000), false, true, true},
		{"to the left", vmath.New(0, -1000), true, false, true},
		{"behind", vmath.New(-1000, -1), true, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAutopilot()
			in := a.Input(huntSnapshot(tt.fish), openWater)
			if in.Left != tt.left || in.Right != tt.right || in.Forward != tt.forward {
				t.Errorf("input = %+v, want left=%v right=%v forward=%v", in, tt.left, tt.right, tt.forward)
			}
		})
	}
}

func TestAutopilotAvoidsShore(t *testing.T) {
	a := NewAutopilot()
	shore := densityFunc(func(p vmath.Vec2) float64 {
		if p.X > 100 {
			return 0.9
		}
		return 0.1
	})

	in := a.Input(huntSnapshot(vmath.New(1000, 0)), shore)
	if !in.Reverse || !in.Right || in.Forward {
		t.Errorf("input = %+v, want reverse and turn", in)
	}
}

func TestAutopilotChargeThenLaunch(t *testing.T) {
	a := NewAutopilot()
	a.ChargeTicks = 3
	snap := huntSnapshot(vmath.New(200, 0))

	for i := 0; i < 3; i++ {
		in := a.Input(snap, openWater)
		if !in.Charge || in.Launch {
			t.Fatalf("tick %d: input = %+v, want charging", i, in)
		}
	}

	in := a.Input(snap, openWater)
	if !in.Launch {
		t.Fatalf("input = %+v, want launch", in)
	}
	if math.Abs(in.Aim.Angle()) > 1e-12 || in.Aim.Len() != 200 {
		t.Errorf("aim = %v", in.Aim)
	}

	// Out of range: keep holding.
	far := huntSnapshot(vmath.New(2000, 0))
	for i := 0; i < 10; i++ {
		if in := a.Input(far, openWater); in.Launch || !in.Charge {
			t.Fatalf("launched out of range: %+v", in)
		}
	}
}

func TestAutopilotIdle(t *testing.T) {
	a := NewAutopilot()

	dead := huntSnapshot(vmath.New(1000, 0))
	dead.Player.Dead = true
	if in := a.Input(dead, openWater); in != (session.Input{}) {
		t.Errorf("dead player input = %+v", in)
	}

	flying := huntSnapshot(vmath.New(200, 0))
	flying.Harpoon.Active = true
	if in := a.Input(flying, openWater); in.Charge || in.Launch {
		t.Errorf("charged with a harpoon out: %+v", in)
	}

	won := huntSnapshot(vmath.New(200, 0))
	won.Fish.Alive = false
	if in := a.Input(won, openWater); in.Charge || in.Launch || in.Forward {
		t.Errorf("hunting a dead fish: %+v", in)
	}
}

func TestAutopilotRoutesRoundLand(t *testing.T) {
	// Wall between boat and whale, open water north of y = -600
	wall := densityFunc(func(p vmath.Vec2) float64 {
		if math.Abs(p.X) > 1000 || math.Abs(p.Y) > 1000 {
			return 10
		}
		if p.X > 200 && p.X < 400 && p.Y > -600 {
			return 0.9
		}
		return 0.1
	})
	snap := huntSnapshot(vmath.New(800, 0))

	direct := NewAutopilot()
	if in := direct.Input(snap, wall); in.Left || in.Right {
		t.Fatalf("without a planner the boat should head straight, got %+v", in)
	}

	a := NewAutopilot()
	a.SetTerrain(wall, systems.BoundsFromSize(2000))
	in := a.Input(snap, wall)
	if !in.Left || !in.Forward {
		t.Errorf("input = %+v, want a left turn towards the gap", in)
	}
	if len(a.route.Waypoints) < 2 {
		t.Fatalf("route = %+v", a.route)
	}
	for _, wp := range a.route.Waypoints {
		if wp.Y < -600 {
			return
		}
	}
	t.Errorf("route %v does not pass north of the wall", a.route.Waypoints)
}

func TestAutopilotResetClearsRoute(t *testing.T) {
	a := NewAutopilot()
	a.route = systems.Route{Waypoints: []vmath.Vec2{vmath.New(1, 1)}}
	a.charged = 5
	a.Reset()
	if a.charged != 0 || len(a.route.Waypoints) != 0 {
		t.Errorf("Reset left charge %d route %v", a.charged, a.route)
	}
}
