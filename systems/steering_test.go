package systems

import (
	"math"
	"testing"

	"github.com/pthm-cable/harpoon/components"
	"github.com/pthm-cable/harpoon/terrain"
	"github.com/pthm-cable/harpoon/vmath"
)

// samplerFunc adapts a function to DensitySampler.
type samplerFunc func(vmath.Vec2) float64

func (f samplerFunc) DensityAt(p vmath.Vec2) float64 { return f(p) }

func TestSteerAwayFromLeftHazard(t *testing.T) {
	p := DefaultSteerParams()

	tests := []struct {
		name  string
		probe Probes
	}{
		{"short only", Probes{ShortLeft: 0.9, ShortRight: 0.2}},
		{"equal long probes", Probes{ShortLeft: 0.9, ShortRight: 0.2, LongLeft: 0.5, LongRight: 0.5}},
		{"land ahead too", Probes{ShortFront: 0.95, ShortLeft: 0.9, ShortRight: 0.2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rot := components.Rotation{Heading: 1}
			vel := components.Velocity{}
			SteerFish(&rot, &vel, tt.probe, 3, 0.0625, p)
			if rot.Heading <= 1 {
				t.Errorf("heading = %v, want > 1", rot.Heading)
			}
		})
	}
}

func TestSteerTurnRules(t *testing.T) {
	p := DefaultSteerParams()
	const dt = 0.5

	tests := []struct {
		name  string
		probe Probes
		want  float64 // heading change
	}{
		{"right hazard", Probes{ShortRight: 0.8}, -0.8 / 0.7 * dt},
		{"left wins over right", Probes{ShortLeft: 0.8, ShortRight: 0.9}, 0.8 / 0.7 * dt},
		{"gentle correction", Probes{ShortLeft: 0.6, ShortRight: 0.2}, 0.4 * 0.5 * dt},
		{"long left only", Probes{LongLeft: 0.7}, 0.25 * dt},
		{"long right only", Probes{LongRight: 0.7}, -0.25 * dt},
		{"open water", Probes{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rot := components.Rotation{}
			vel := components.Velocity{}
			SteerFish(&rot, &vel, tt.probe, 3, dt, p)
			if math.Abs(rot.Heading-tt.want) > 1e-12 {
				t.Errorf("heading change = %v, want %v", rot.Heading, tt.want)
			}
		})
	}
}

func TestSteerThrust(t *testing.T) {
	p := DefaultSteerParams()
	const (
		speed = 3.0
		dt    = 1.0
	)

	tests := []struct {
		name  string
		probe Probes
		wantX float64
	}{
		{"open water forward", Probes{}, speed},
		{"land close ahead brakes", Probes{ShortFront: 0.8}, -speed},
		{"land far ahead slows", Probes{LongFront: 0.8}, -speed * 0.1},
		{"edge of map far ahead", Probes{LongFront: terrain.OutOfBounds}, speed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rot := components.Rotation{Heading: 0}
			vel := components.Velocity{}
			SteerFish(&rot, &vel, tt.probe, speed, dt, p)
			if math.Abs(vel.X-tt.wantX) > 1e-12 || math.Abs(vel.Y) > 1e-12 {
				t.Errorf("vel = %v, want (%v, 0)", vel.Vec2, tt.wantX)
			}
		})
	}
}

func TestSteerThrustUsesPreTurnHeading(t *testing.T) {
	p := DefaultSteerParams()
	rot := components.Rotation{Heading: 0}
	vel := components.Velocity{}
	SteerFish(&rot, &vel, Probes{ShortLeft: 0.9}, 3, 1, p)

	if rot.Heading == 0 {
		t.Fatal("expected a turn")
	}
	if math.Abs(vel.Y) > 1e-12 || vel.X != 3 {
		t.Errorf("vel = %v, want thrust along old heading (3, 0)", vel.Vec2)
	}
}

func TestProbeTerrainDirections(t *testing.T) {
	p := DefaultSteerParams()
	pos := vmath.New(100, 50)

	// Encode the probe offset in the reading: distance*10 + which side.
	s := samplerFunc(func(q vmath.Vec2) float64 {
		d := q.Sub(pos)
		side := 0.0
		switch {
		case d.Y > 1e-6:
			side = 1 // +angle from heading 0 is +Y
		case d.Y < -1e-6:
			side = 2
		}
		return math.Round(d.Len())*10 + side
	})

	got := ProbeTerrain(s, pos, 0, p)
	want := Probes{
		ShortFront: 2000,
		ShortRight: 2001,
		ShortLeft:  2002,
		LongFront:  4000,
		LongRight:  4001,
		LongLeft:   4002,
	}
	if got != want {
		t.Errorf("ProbeTerrain = %+v, want %+v", got, want)
	}
}

func TestProbeArrayOrder(t *testing.T) {
	pr := Probes{ShortFront: 1, ShortLeft: 2, ShortRight: 3, LongFront: 4, LongLeft: 5, LongRight: 6}
	if got := pr.Array(); got != [6]float64{1, 2, 3, 4, 5, 6} {
		t.Errorf("Array = %v", got)
	}
}

func TestFishSpeed(t *testing.T) {
	f := components.Fish{Speed: 3, FearSpeed: 10}
	if got := FishSpeed(&f, false); got != 3 {
		t.Errorf("calm speed = %v", got)
	}
	if got := FishSpeed(&f, true); got != 10 {
		t.Errorf("harpooned speed = %v", got)
	}
}

func TestProbePointsReach(t *testing.T) {
	p := DefaultSteerParams()
	pos := vmath.New(10, -5)
	pts := ProbePoints(pos, 0.3, p)

	for i, pt := range pts {
		want := p.ProbeDistance
		if i >= 3 {
			want *= 2
		}
		if d := vmath.Distance(pos, pt); math.Abs(d-want) > 1e-9 {
			t.Errorf("probe %d at distance %v, want %v", i, d, want)
		}
	}
	if math.Abs(pts[2].Sub(pos).Angle()-(0.3+p.ProbeSpread)) > 1e-9 {
		t.Errorf("short right probe angle = %v", pts[2].Sub(pos).Angle())
	}
}
