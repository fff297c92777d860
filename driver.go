package main

import "time"

const (
	physicsDT    = 1.0 / 120 // fixed simulation step, seconds
	maxFrameTime = 0.05      // elapsed clamp so a stall cannot spiral
)

// Driver converts wall-clock time into fixed simulation steps. One instance
// per world, ticked from the frame loop.
type Driver struct {
	world *World
	last  time.Time
	acc   float64
}

func NewDriver(w *World) *Driver {
	return &Driver{world: w}
}

// Advance feeds the time since the previous call into the accumulator and
// drains it in fixed steps. Returns the number of steps taken.
func (d *Driver) Advance(now time.Time) int {
	if d.last.IsZero() {
		d.last = now
		return 0
	}
	elapsed := now.Sub(d.last).Seconds()
	d.last = now
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > maxFrameTime {
		elapsed = maxFrameTime
	}

	d.acc += elapsed
	steps := 0
	for d.acc >= physicsDT {
		d.world.Step(physicsDT)
		d.acc -= physicsDT
		steps++
	}
	return steps
}

// Reset discards any accumulated time, used when the composition is rebuilt
// so stale time does not burn steps on the fresh layout.
func (d *Driver) Reset(now time.Time) {
	d.last = now
	d.acc = 0
}
