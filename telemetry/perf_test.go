package telemetry

import (
	"testing"
	"time"
)

func TestPerfCollector_BasicTiming(t *testing.T) {
	pc := NewPerfCollector(10)

	for i := 0; i < 5; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseFish)
		time.Sleep(100 * time.Microsecond)
		pc.StartPhase(PhaseTether)
		time.Sleep(200 * time.Microsecond)
		pc.EndTick()
	}

	stats := pc.Stats()

	if stats.AvgTickDuration <= 0 {
		t.Error("expected positive average tick duration")
	}
	if _, ok := stats.PhaseAvg[PhaseFish]; !ok {
		t.Error("expected fish phase to be tracked")
	}
	if _, ok := stats.PhaseAvg[PhaseTether]; !ok {
		t.Error("expected tether phase to be tracked")
	}
}

func TestPerfCollector_RollingWindow(t *testing.T) {
	pc := NewPerfCollector(5)

	for i := 0; i < 10; i++ {
		pc.StartTick()
		pc.StartPhase(PhasePlayer)
		time.Sleep(10 * time.Microsecond)
		pc.EndTick()
	}

	stats := pc.Stats()
	if stats.AvgTickDuration <= 0 {
		t.Error("expected positive average tick duration after window filled")
	}
	if stats.TicksPerSecond <= 0 {
		t.Error("expected positive ticks per second")
	}
}

func TestPerfCollector_PhasePercentages(t *testing.T) {
	pc := NewPerfCollector(10)

	for i := 0; i < 5; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseCamera)
		time.Sleep(10 * time.Microsecond)
		pc.StartPhase(PhaseCollision)
		time.Sleep(500 * time.Microsecond)
		pc.EndTick()
	}

	stats := pc.Stats()
	if stats.PhasePct[PhaseCollision] <= stats.PhasePct[PhaseCamera] {
		t.Errorf("expected collision (%v%%) > camera (%v%%)",
			stats.PhasePct[PhaseCollision], stats.PhasePct[PhaseCamera])
	}

	row := stats.ToCSV(42)
	if row.WindowEnd != 42 {
		t.Errorf("WindowEnd = %d", row.WindowEnd)
	}
	if row.CollisionPct != stats.PhasePct[PhaseCollision] {
		t.Errorf("CollisionPct = %v, want %v", row.CollisionPct, stats.PhasePct[PhaseCollision])
	}
}

func TestPerfCollector_EmptyStats(t *testing.T) {
	pc := NewPerfCollector(10)

	stats := pc.Stats()
	if stats.AvgTickDuration != 0 {
		t.Error("expected zero avg tick duration for empty collector")
	}
	if stats.PhaseAvg == nil || stats.PhasePct == nil {
		t.Error("expected non-nil phase maps")
	}
}

func TestPerfCollector_Nil(t *testing.T) {
	var pc *PerfCollector

	// None of these may panic.
	pc.StartTick()
	pc.StartPhase(PhaseInput)
	pc.EndTick()
	pc.RecordFrame()
	pc.Reset()

	stats := pc.Stats()
	if stats.PhaseAvg == nil {
		t.Error("expected non-nil PhaseAvg from nil collector")
	}
}

func TestPerfCollector_Reset(t *testing.T) {
	pc := NewPerfCollector(10)
	pc.StartTick()
	pc.StartPhase(PhaseInput)
	pc.EndTick()

	pc.Reset()
	if stats := pc.Stats(); stats.AvgTickDuration != 0 {
		t.Errorf("expected no samples after reset, avg = %v", stats.AvgTickDuration)
	}
}

func TestPerfCollector_FrameTiming(t *testing.T) {
	pc := NewPerfCollector(10)

	pc.RecordFrame()
	time.Sleep(16 * time.Millisecond)
	pc.RecordFrame()

	stats := pc.Stats()
	if stats.FrameDuration < 15*time.Millisecond {
		t.Errorf("expected frame duration >= 15ms, got %v", stats.FrameDuration)
	}
	if stats.FPS <= 0 {
		t.Error("expected positive FPS")
	}
}
