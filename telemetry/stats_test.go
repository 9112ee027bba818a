package telemetry

import (
	"math"
	"testing"
)

func TestComputeDistribution(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   Distribution
	}{
		{"empty", nil, Distribution{}},
		{"single", []float64{7}, Distribution{Mean: 7, P10: 7, P50: 7, P90: 7}},
		{
			"one to ten",
			[]float64{10, 9, 8, 7, 6, 5, 4, 3, 2, 1},
			Distribution{Mean: 5.5, Std: math.Sqrt(55.0 / 6.0), P10: 1, P50: 5, P90: 9},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeDistribution(tt.values)
			check := func(field string, got, want float64) {
				if math.Abs(got-want) > 1e-9 {
					t.Errorf("%s = %v, want %v", field, got, want)
				}
			}
			check("Mean", got.Mean, tt.want.Mean)
			check("Std", got.Std, tt.want.Std)
			check("P10", got.P10, tt.want.P10)
			check("P50", got.P50, tt.want.P50)
			check("P90", got.P90, tt.want.P90)
		})
	}
}

func TestComputeDistributionDoesNotSortInput(t *testing.T) {
	values := []float64{3, 1, 2}
	ComputeDistribution(values)
	if values[0] != 3 || values[1] != 1 || values[2] != 2 {
		t.Errorf("input reordered: %v", values)
	}
}

func TestCollectorFlush(t *testing.T) {
	c := NewCollector(1, 0.0625) // 16 ticks per window

	if c.WindowDurationTicks() != 16 {
		t.Fatalf("WindowDurationTicks = %d, want 16", c.WindowDurationTicks())
	}

	c.Record(NewLaunchEvent(1, 0, 0, 200))
	c.Record(NewLaunchEvent(5, 0, 0, 300))
	c.Record(NewAttachEvent(8, 10, 10, 120))
	c.Record(NewCrashEvent(12, 5, 5, 0.8))

	for tick := int32(1); tick <= 16; tick++ {
		attached := tick > 8
		c.Sample(attached, 100, 4)
		if tick < 16 && c.ShouldFlush(tick) {
			t.Fatalf("ShouldFlush(%d) = true before window end", tick)
		}
	}
	if !c.ShouldFlush(16) {
		t.Fatal("ShouldFlush(16) = false at window end")
	}

	s := c.Flush(16, 90000)
	if s.Launches != 2 || s.Attaches != 1 || s.Crashes != 1 {
		t.Errorf("counts = %d/%d/%d", s.Launches, s.Attaches, s.Crashes)
	}
	if s.HitRate != 0.5 {
		t.Errorf("HitRate = %v, want 0.5", s.HitRate)
	}
	if s.AttachedFrac != 0.5 {
		t.Errorf("AttachedFrac = %v, want 0.5", s.AttachedFrac)
	}
	if s.TetherMean != 100 || s.SpeedMean != 4 {
		t.Errorf("TetherMean = %v SpeedMean = %v", s.TetherMean, s.SpeedMean)
	}
	if s.SimTimeSec != 1 {
		t.Errorf("SimTimeSec = %v, want 1", s.SimTimeSec)
	}
	if s.FishHealth != 90000 {
		t.Errorf("FishHealth = %v", s.FishHealth)
	}

	// Counters reset for the next window.
	next := c.Flush(32, 90000)
	if next.Launches != 0 || next.AttachedFrac != 0 || next.TetherMean != 0 {
		t.Errorf("window not reset: %+v", next)
	}
	if next.WindowStartTick != 16 {
		t.Errorf("WindowStartTick = %d, want 16", next.WindowStartTick)
	}
}

func TestFlightTracker(t *testing.T) {
	ft := NewFlightTracker(0.0625)

	ft.End(3, "lost") // nothing flying
	if len(ft.Drain()) != 0 {
		t.Fatal("ended a flight that never launched")
	}

	ft.Launch(10, 250)
	ft.UpdateRange(100)
	ft.UpdateRange(340)
	ft.UpdateRange(200)
	ft.End(26, "attached")

	ft.Launch(30, 50)
	ft.Launch(40, 400) // relaunch closes the previous throw

	done := ft.Drain()
	if len(done) != 2 {
		t.Fatalf("finished = %d, want 2", len(done))
	}
	first := done[0]
	if first.ID != 1 || first.Outcome != "attached" || first.MaxRange != 340 {
		t.Errorf("first flight = %+v", first)
	}
	if first.FlightSec != 1 {
		t.Errorf("FlightSec = %v, want 1", first.FlightSec)
	}
	if done[1].Outcome != "released" || done[1].EndTick != 40 {
		t.Errorf("second flight = %+v", done[1])
	}
	if cur := ft.Current(); cur == nil || cur.ID != 3 {
		t.Errorf("current = %+v, want flight 3", cur)
	}
	if ft.Count() != 3 {
		t.Errorf("Count = %d, want 3", ft.Count())
	}
	if len(ft.Drain()) != 0 {
		t.Error("Drain did not clear finished flights")
	}
}

func TestEventTypeString(t *testing.T) {
	if got := EventFishCaptured.String(); got != "fish_captured" {
		t.Errorf("String = %q", got)
	}
	if got := EventType(200).String(); got != "unknown" {
		t.Errorf("String = %q", got)
	}
	rec := NewLostEvent(7, 1, 2, 501).Record()
	if rec.Type != "harpoon_lost" || rec.Amount != 501 || rec.Tick != 7 {
		t.Errorf("Record = %+v", rec)
	}
}
