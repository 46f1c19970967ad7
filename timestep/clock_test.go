package timestep

import (
	"testing"
	"time"
)

func TestClockWholeSteps(t *testing.T) {
	c := NewClock(30) // step = 33.33ms
	steps := c.AdvanceBy(c.Step() * 2)
	if steps != 2 {
		t.Errorf("steps = %d for two step durations, want 2", steps)
	}
	if c.Alpha() != 0 {
		t.Errorf("alpha = %v after exact steps, want 0", c.Alpha())
	}
}

func TestClockAlphaRemainder(t *testing.T) {
	c := NewClock(30)
	steps := c.AdvanceBy(c.Step() + c.Step()/2)
	if steps != 1 {
		t.Errorf("steps = %d, want 1", steps)
	}
	if a := c.Alpha(); a < 0.49 || a > 0.51 {
		t.Errorf("alpha = %v, want ~0.5", a)
	}
}

func TestClockAccumulatesAcrossFrames(t *testing.T) {
	c := NewClock(30)
	if steps := c.AdvanceBy(c.Step() / 2); steps != 0 {
		t.Errorf("steps = %d for half a step, want 0", steps)
	}
	// Step()/2 truncates at 30 Hz, so advance by the exact complement.
	if steps := c.AdvanceBy(c.Step() - c.Step()/2); steps != 1 {
		t.Errorf("steps = %d after a full step accumulated, want 1", steps)
	}
}

func TestClockCapsCatchUp(t *testing.T) {
	c := NewClock(30)
	steps := c.AdvanceBy(10 * time.Second)
	if steps != defaultMaxSteps {
		t.Errorf("steps = %d after a stall, want cap %d", steps, defaultMaxSteps)
	}
	if a := c.Alpha(); a < 0 || a >= 1 {
		t.Errorf("alpha = %v after a stall, want [0, 1)", a)
	}
}

func TestClockFirstAdvanceEstablishesBase(t *testing.T) {
	c := NewClock(30)
	now := time.Now()
	if steps := c.Advance(now); steps != 0 {
		t.Errorf("first Advance returned %d steps, want 0", steps)
	}
	if steps := c.Advance(now.Add(c.Step())); steps != 1 {
		t.Errorf("second Advance returned %d steps, want 1", steps)
	}
}

func TestClockNegativeDelta(t *testing.T) {
	c := NewClock(30)
	if steps := c.AdvanceBy(-time.Second); steps != 0 {
		t.Errorf("steps = %d for negative delta, want 0", steps)
	}
	if c.Alpha() != 0 {
		t.Errorf("alpha = %v for negative delta, want 0", c.Alpha())
	}
}
