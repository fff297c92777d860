package main

import (
	"testing"
	"time"
)

func TestDriverFirstCallPrimes(t *testing.T) {
	w := NewWorld("drv", defaultParams())
	d := NewDriver(w)
	if steps := d.Advance(time.Unix(1000, 0)); steps != 0 {
		t.Errorf("first call took %d steps, want 0", steps)
	}
}

func TestDriverFixedSteps(t *testing.T) {
	w := NewWorld("drv", defaultParams())
	b := w.addBody(newCircleShape(0.2), Vec2{}, 0)
	b.Vel = Vec2{0.5, 0}
	w.Running = true

	d := NewDriver(w)
	t0 := time.Unix(1000, 0)
	d.Advance(t0)

	// 25 ms covers exactly three 1/120 s steps.
	if steps := d.Advance(t0.Add(25 * time.Millisecond)); steps != 3 {
		t.Errorf("steps = %d, want 3", steps)
	}
	if b.Pos.X <= 0 {
		t.Error("steps did not reach the world")
	}
}

func TestDriverClampsStalls(t *testing.T) {
	w := NewWorld("stall", defaultParams())
	d := NewDriver(w)
	t0 := time.Unix(1000, 0)
	d.Advance(t0)

	// A two-second stall is clamped to 50 ms: six steps, not 240.
	if steps := d.Advance(t0.Add(2 * time.Second)); steps != 6 {
		t.Errorf("steps = %d, want 6", steps)
	}
}

func TestDriverAccumulatesRemainder(t *testing.T) {
	w := NewWorld("acc", defaultParams())
	d := NewDriver(w)
	t0 := time.Unix(1000, 0)
	d.Advance(t0)

	// 5 ms is under one step; two more make 15 ms, one step with change.
	if steps := d.Advance(t0.Add(5 * time.Millisecond)); steps != 0 {
		t.Errorf("after 5ms: steps = %d, want 0", steps)
	}
	if steps := d.Advance(t0.Add(10 * time.Millisecond)); steps != 1 {
		t.Errorf("after 10ms: steps = %d, want 1", steps)
	}
	if steps := d.Advance(t0.Add(15 * time.Millisecond)); steps != 0 {
		t.Errorf("after 15ms: steps = %d, want 0", steps)
	}
	if steps := d.Advance(t0.Add(20 * time.Millisecond)); steps != 1 {
		t.Errorf("after 20ms: steps = %d, want 1", steps)
	}
}

func TestDriverBackwardClock(t *testing.T) {
	w := NewWorld("back", defaultParams())
	d := NewDriver(w)
	t0 := time.Unix(1000, 0)
	d.Advance(t0)
	if steps := d.Advance(t0.Add(-time.Second)); steps != 0 {
		t.Errorf("backward clock took %d steps", steps)
	}
}

func TestDriverReset(t *testing.T) {
	w := NewWorld("reset", defaultParams())
	d := NewDriver(w)
	t0 := time.Unix(1000, 0)
	d.Advance(t0)
	d.Advance(t0.Add(7 * time.Millisecond)) // leaves time in the accumulator

	t1 := t0.Add(time.Hour)
	d.Reset(t1)
	if steps := d.Advance(t1.Add(5 * time.Millisecond)); steps != 0 {
		t.Errorf("stale accumulator survived reset: %d steps", steps)
	}
}
