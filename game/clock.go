package game

// Clock converts wall-clock frame time into a whole number of fixed ticks.
type Clock struct {
	TickSeconds float64 // wall-clock seconds per tick
	MaxSteps    int     // ticks per frame before the backlog is dropped

	acc float64
}

// NewClock creates a clock running tickRate ticks per wall-clock second.
func NewClock(tickRate float64, maxSteps int) *Clock {
	if tickRate <= 0 {
		tickRate = 60
	}
	if maxSteps < 1 {
		maxSteps = 1
	}
	return &Clock{TickSeconds: 1 / tickRate, MaxSteps: maxSteps}
}

// Advance adds elapsed wall time and returns how many ticks to run.
// Non-positive or NaN elapsed time runs nothing. When more than MaxSteps are
// due the remainder is discarded so a stall does not snowball.
func (c *Clock) Advance(elapsed float64) int {
	if !(elapsed > 0) {
		return 0
	}
	c.acc += elapsed

	n := int(c.acc / c.TickSeconds)
	if n > c.MaxSteps {
		c.acc = 0
		return c.MaxSteps
	}
	c.acc -= float64(n) * c.TickSeconds
	return n
}

// Alpha is the fraction of a tick accumulated but not yet run.
func (c *Clock) Alpha() float64 {
	return c.acc / c.TickSeconds
}

// Reset drops any accumulated time, e.g. while paused.
func (c *Clock) Reset() {
	c.acc = 0
}
