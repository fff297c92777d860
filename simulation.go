package main

import "math"

// Collision response constants
const (
	spinGain  = 1.8 // angular velocity added per unit of tangential slip
	dragBlend = 0.5 // smoothing on the velocity estimate while dragging
)

// Step advances the world by one fixed timestep. Paused worlds do nothing.
func (w *World) Step(dt float64) {
	if !w.Running {
		return
	}

	p := w.Params
	linDamp := p.LinearDamping * math.Exp(-p.LinearViscosity*dt)
	angDamp := p.AngularDamping * math.Exp(-p.AngularViscosity*dt)

	for _, b := range w.Bodies {
		if b.Dragged {
			// Pinned: position is driven externally, velocity only decays
			// so a sudden release cannot fling the body.
			b.Vel = b.Vel.Scale(linDamp)
			continue
		}
		b.Rot += b.AngVel * dt
		b.AngVel *= angDamp
		b.Vel = b.Vel.Scale(linDamp)
		b.Pos = b.Pos.Add(b.Vel.Scale(dt))
		w.bounceWalls(b)
	}

	w.resolvePairs()

	if w.settled() {
		w.Running = false
	}
}

// bounceWalls reflects a body off the viewport edges, each axis on its own.
// The bounding circle is the wall extent, so polygons may visually poke a
// corner past the wall less often than they would with exact support.
func (w *World) bounceWalls(b *Body) {
	r := b.Shape.BoundingRadius
	if b.Pos.X+r > w.HalfX {
		b.Pos.X = w.HalfX - r
		b.Vel.X = -math.Abs(b.Vel.X)
	}
	if b.Pos.X-r < -w.HalfX {
		b.Pos.X = -w.HalfX + r
		b.Vel.X = math.Abs(b.Vel.X)
	}
	if b.Pos.Y+r > w.HalfY {
		b.Pos.Y = w.HalfY - r
		b.Vel.Y = -math.Abs(b.Vel.Y)
	}
	if b.Pos.Y-r < -w.HalfY {
		b.Pos.Y = -w.HalfY + r
		b.Vel.Y = math.Abs(b.Vel.Y)
	}
}

// resolvePairs runs collision detection and response over every unordered
// pair, in slice order so the outcome is reproducible.
func (w *World) resolvePairs() {
	for i := 0; i < len(w.Bodies); i++ {
		for j := i + 1; j < len(w.Bodies); j++ {
			w.resolvePair(w.Bodies[i], w.Bodies[j])
		}
	}
}

func (w *World) resolvePair(a, b *Body) {
	totalInv := a.InvMass + b.InvMass
	if totalInv == 0 {
		return
	}

	// Cheap reject on bounding circles before the axis test.
	reach := a.Shape.BoundingRadius + b.Shape.BoundingRadius
	if a.Pos.Sub(b.Pos).LenSq() > reach*reach {
		return
	}

	ov, hit := satOverlap(a.WorldVerts(), b.WorldVerts())
	if !hit {
		return
	}

	// Separate along the normal, split by inverse mass. Pinned bodies have
	// inverse mass zero and stay put.
	a.Pos = a.Pos.Sub(ov.Normal.Scale(ov.Depth * a.InvMass / totalInv))
	b.Pos = b.Pos.Add(ov.Normal.Scale(ov.Depth * b.InvMass / totalInv))

	rel := b.Vel.Sub(a.Vel)
	vn := rel.Dot(ov.Normal)
	if vn >= 0 {
		// Already separating; overlap came from positional drift.
		return
	}

	imp := -(1 + w.Params.Restitution) * vn / totalInv
	a.Vel = a.Vel.Sub(ov.Normal.Scale(imp * a.InvMass))
	b.Vel = b.Vel.Add(ov.Normal.Scale(imp * b.InvMass))

	// Tangential slip turns into spin, same sign on both bodies.
	vt := rel.Dot(ov.Normal.Perp())
	spin := spinGain * vt
	if !a.Dragged {
		a.AngVel = clampAbs(a.AngVel+spin, w.Params.MaxAngularSpeed)
	}
	if !b.Dragged {
		b.AngVel = clampAbs(b.AngVel+spin, w.Params.MaxAngularSpeed)
	}

	if w.ColorExchange {
		a.ColorIdx, b.ColorIdx = b.ColorIdx, a.ColorIdx
	}
}

// settled reports whether every free body has slowed below the motion
// thresholds. A held body keeps the scene awake.
func (w *World) settled() bool {
	if w.draggedID >= 0 {
		return false
	}
	p := w.Params
	for _, b := range w.Bodies {
		if b.Dragged {
			continue
		}
		if b.speed() >= p.SettleLinear || math.Abs(b.AngVel) >= p.SettleAngular {
			return false
		}
	}
	return true
}

// Resume re-enters the running state and relaunches every free body with a
// fresh seeded velocity. This is the only way a settled scene regains energy.
func (w *World) Resume() {
	w.assignMotion()
	w.Running = true
}

// SetRunning pauses or resumes. Resuming from pause relaunches bodies.
func (w *World) SetRunning(run bool) {
	if run && !w.Running {
		w.Resume()
		return
	}
	w.Running = run
}

// StartDragAt pins the topmost body under the pointer and returns its id,
// or -1 when the point hits nothing. Grabbing a body wakes the scene without
// relaunching anything.
func (w *World) StartDragAt(p Vec2) int {
	for i := len(w.Bodies) - 1; i >= 0; i-- {
		b := w.Bodies[i]
		if !pointInConvex(b.WorldVerts(), p) {
			continue
		}
		b.Dragged = true
		b.InvMass = 0
		b.Vel = Vec2{}
		b.AngVel = 0
		b.dragVel = Vec2{}
		w.draggedID = b.ID
		w.Running = true
		return b.ID
	}
	return -1
}

// DragTo moves the held body toward the pointer, clamped inside the walls,
// and folds the step displacement into the release velocity estimate.
func (w *World) DragTo(p Vec2, dt float64) {
	if w.draggedID < 0 {
		return
	}
	b := w.ByID(w.draggedID)
	if b == nil {
		w.draggedID = -1
		return
	}
	prev := b.Pos
	b.Pos = p
	w.clampBody(b)
	if dt > 0 {
		inst := b.Pos.Sub(prev).Scale(1 / dt)
		b.dragVel = b.dragVel.Scale(1 - dragBlend).Add(inst.Scale(dragBlend))
	}
}

// EndDrag releases the held body with the velocity its recent movement
// implies, capped so a fast flick stays controllable.
func (w *World) EndDrag() {
	if w.draggedID < 0 {
		return
	}
	b := w.ByID(w.draggedID)
	w.draggedID = -1
	if b == nil {
		return
	}
	b.Dragged = false
	b.InvMass = 1 / b.Mass
	v := b.dragVel
	if speed := v.Len(); speed > w.Params.DragMaxSpeed {
		v = v.Scale(w.Params.DragMaxSpeed / speed)
	}
	b.Vel = v
	b.dragVel = Vec2{}
}

func clampAbs(v, max float64) float64 {
	if v > max {
		return max
	}
	if v < -max {
		return -max
	}
	return v
}
