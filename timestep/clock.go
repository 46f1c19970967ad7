// Package timestep converts wall-clock frame time into fixed logic steps
// plus the fractional remainder used as the render interpolation alpha.
package timestep

import "time"

// maxFrameDelta caps how much real time a single frame may contribute, so a
// long stall (window drag, debugger pause) does not trigger a burst of
// catch-up steps.
const maxFrameDelta = 250 * time.Millisecond

// defaultMaxSteps bounds logic steps per frame for the same reason.
const defaultMaxSteps = 5

// Clock accumulates elapsed real time against a fixed logic-step duration.
// Each frame the host asks how many whole steps to simulate, then reads
// Alpha for the leftover fraction.
type Clock struct {
	step     time.Duration
	accum    time.Duration
	maxSteps int
	last     time.Time
	lastDT   time.Duration
	started  bool
}

// NewClock returns a clock for the given logic rate in steps per second.
func NewClock(rate int) *Clock {
	if rate <= 0 {
		rate = 30
	}
	return &Clock{
		step:     time.Second / time.Duration(rate),
		maxSteps: defaultMaxSteps,
	}
}

// Advance feeds the clock the current time and returns how many logic steps
// the host should run this frame. The first call establishes the time base
// and returns 0.
func (c *Clock) Advance(now time.Time) int {
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}
	dt := now.Sub(c.last)
	c.last = now
	return c.AdvanceBy(dt)
}

// AdvanceBy adds dt to the accumulator and returns the number of whole
// steps it covers, capped at the per-frame maximum. Excess time beyond the
// cap is discarded rather than carried, trading accuracy for stability.
func (c *Clock) AdvanceBy(dt time.Duration) int {
	if dt < 0 {
		dt = 0
	}
	if dt > maxFrameDelta {
		dt = maxFrameDelta
	}
	c.lastDT = dt
	c.accum += dt

	steps := 0
	for c.accum >= c.step && steps < c.maxSteps {
		c.accum -= c.step
		steps++
	}
	if c.accum >= c.step {
		c.accum %= c.step
	}
	return steps
}

// Alpha returns the fraction of the next logic step already elapsed, in
// [0, 1). This is the interpolation factor between the last two steps.
func (c *Clock) Alpha() float64 {
	return float64(c.accum) / float64(c.step)
}

// LastDelta returns the (clamped) real-time delta of the most recent
// advance. Diagnostic only.
func (c *Clock) LastDelta() time.Duration {
	return c.lastDT
}

// Step returns the logic step duration.
func (c *Clock) Step() time.Duration {
	return c.step
}
