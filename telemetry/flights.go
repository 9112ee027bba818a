package telemetry

// FlightStats tracks one harpoon throw from launch until it stops flying.
type FlightStats struct {
	ID          int     `csv:"flight"`
	LaunchTick  int32   `csv:"launch_tick"`
	EndTick     int32   `csv:"end_tick"`
	LaunchSpeed float64 `csv:"launch_speed"`
	MaxRange    float64 `csv:"max_range"` // furthest player to harpoon distance
	Outcome     string  `csv:"outcome"`   // attached, lost, released
	FlightSec   float64 `csv:"flight_sec"`
}

// FlightTracker follows the current throw and keeps finished ones.
type FlightTracker struct {
	dt       float64
	nextID   int
	current  *FlightStats
	finished []FlightStats
}

// NewFlightTracker creates a tracker; dt converts ticks to sim-seconds.
func NewFlightTracker(dt float64) *FlightTracker {
	return &FlightTracker{dt: dt}
}

// Launch starts tracking a new throw. A throw still in flight is closed as released.
func (ft *FlightTracker) Launch(tick int32, speed float64) {
	if ft.current != nil {
		ft.End(tick, "released")
	}
	ft.nextID++
	ft.current = &FlightStats{
		ID:          ft.nextID,
		LaunchTick:  tick,
		LaunchSpeed: speed,
	}
}

// UpdateRange records the player to harpoon distance for the throw in flight.
func (ft *FlightTracker) UpdateRange(dist float64) {
	if ft.current != nil && dist > ft.current.MaxRange {
		ft.current.MaxRange = dist
	}
}

// End closes the current throw with the given outcome. No-op when nothing is flying.
func (ft *FlightTracker) End(tick int32, outcome string) {
	if ft.current == nil {
		return
	}
	f := *ft.current
	f.EndTick = tick
	f.Outcome = outcome
	f.FlightSec = float64(tick-f.LaunchTick) * ft.dt
	ft.finished = append(ft.finished, f)
	ft.current = nil
}

// Current returns the throw in flight, or nil.
func (ft *FlightTracker) Current() *FlightStats {
	return ft.current
}

// Drain returns finished throws and forgets them.
func (ft *FlightTracker) Drain() []FlightStats {
	out := ft.finished
	ft.finished = nil
	return out
}

// Count returns the number of throws started.
func (ft *FlightTracker) Count() int {
	return ft.nextID
}
