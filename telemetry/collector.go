package telemetry

// Collector accumulates events within time windows and produces WindowStats.
type Collector struct {
	windowDurationTicks int32
	dt                  float64

	// Current window tracking
	windowStartTick int32

	// Event counters for current window
	launches int
	attaches int
	lost     int
	releases int
	captures int
	crashes  int

	// Per-tick samples for current window
	ticks         int
	attachedTicks int
	tether        []float64
	speeds        []float64
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds
// dt: simulation seconds per tick (used for tick-to-time conversion)
func NewCollector(windowDurationSec, dt float64) *Collector {
	ticksPerWindow := int32(windowDurationSec / dt)
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
	}
}

// Record counts an event in the current window.
func (c *Collector) Record(e Event) {
	switch e.Type {
	case EventHarpoonLaunched:
		c.launches++
	case EventHarpoonAttached:
		c.attaches++
	case EventHarpoonLost:
		c.lost++
	case EventHarpoonReleased:
		c.releases++
	case EventFishCaptured:
		c.captures++
	case EventPlayerCrashed:
		c.crashes++
	}
}

// Sample records per-tick state. tetherDist is only sampled while attached.
func (c *Collector) Sample(attached bool, tetherDist, playerSpeed float64) {
	c.ticks++
	if attached {
		c.attachedTicks++
		c.tether = append(c.tether, tetherDist)
	}
	c.speeds = append(c.speeds, playerSpeed)
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentTick int32, fishHealth float64) WindowStats {
	var hitRate, attachedFrac float64
	if c.launches > 0 {
		hitRate = float64(c.attaches) / float64(c.launches)
	}
	if c.ticks > 0 {
		attachedFrac = float64(c.attachedTicks) / float64(c.ticks)
	}

	tether := ComputeDistribution(c.tether)
	speed := ComputeDistribution(c.speeds)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * c.dt,

		Launches: c.launches,
		Attaches: c.attaches,
		Lost:     c.lost,
		Releases: c.releases,
		Captures: c.captures,
		Crashes:  c.crashes,
		HitRate:  hitRate,

		AttachedFrac: attachedFrac,

		TetherMean: tether.Mean,
		TetherStd:  tether.Std,
		TetherP10:  tether.P10,
		TetherP50:  tether.P50,
		TetherP90:  tether.P90,

		SpeedMean: speed.Mean,
		SpeedP90:  speed.P90,

		FishHealth: fishHealth,
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.launches = 0
	c.attaches = 0
	c.lost = 0
	c.releases = 0
	c.captures = 0
	c.crashes = 0
	c.ticks = 0
	c.attachedTicks = 0
	c.tether = c.tether[:0]
	c.speeds = c.speeds[:0]

	return stats
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int32 {
	return c.windowDurationTicks
}

// Pending returns the number of ticks sampled since the last flush.
func (c *Collector) Pending() int {
	return c.ticks
}
