package main

// Speed scale gives small shapes livelier motion than large ones.
const (
	speedScaleRef = 0.24
	speedScaleMin = 0.6
	speedScaleMax = 2.5
)

// Body is one placed shape with its motion state. Mass follows the bounding
// radius squared so area roughly wins collisions.
type Body struct {
	ID      int
	Shape   *Shape
	Pos     Vec2
	Rot     float64
	Vel     Vec2
	AngVel  float64
	Mass    float64
	InvMass float64

	SpeedScale float64
	ColorIdx   int

	Dragged bool
	dragVel Vec2 // blended displacement estimate while dragged
}

// WorldVerts returns the body's vertices transformed into world space.
func (b *Body) WorldVerts() []Vec2 {
	return transformVerts(b.Shape.Verts, b.Pos, b.Rot)
}

// speed reports the linear speed.
func (b *Body) speed() float64 {
	return b.Vel.Len()
}

// World owns the bodies, the bounds and the composition's random stream.
// Bodies keep slice order so every walk over them is deterministic.
type World struct {
	Bodies []*Body

	HalfX, HalfY float64

	Seed string
	Rng  *Rand

	Running       bool
	ColorExchange bool
	Params        Params

	nextID    int
	draggedID int // -1 when nothing is held
}

func NewWorld(seed string, params Params) *World {
	return &World{
		HalfX:     1.0,
		HalfY:     1.0,
		Seed:      seed,
		Rng:       NewRand(seed),
		Params:    params,
		draggedID: -1,
	}
}

// addBody registers a body and hands it an id. Ids are never reused, even
// after Clear, so stale references cannot alias a new body.
func (w *World) addBody(shape *Shape, pos Vec2, rot float64) *Body {
	mass := shape.BoundingRadius * shape.BoundingRadius
	scale := speedScaleRef / shape.BoundingRadius
	if scale < speedScaleMin {
		scale = speedScaleMin
	}
	if scale > speedScaleMax {
		scale = speedScaleMax
	}
	b := &Body{
		ID:         w.nextID,
		Shape:      shape,
		Pos:        pos,
		Rot:        rot,
		Mass:       mass,
		InvMass:    1 / mass,
		SpeedScale: scale,
	}
	w.nextID++
	w.Bodies = append(w.Bodies, b)
	return b
}

// Clear drops all bodies and any active drag.
func (w *World) Clear() {
	w.Bodies = w.Bodies[:0]
	w.draggedID = -1
}

// ByID finds a body by id, nil if gone.
func (w *World) ByID(id int) *Body {
	for _, b := range w.Bodies {
		if b.ID == id {
			return b
		}
	}
	return nil
}

// SetBounds resizes the viewport and pulls any body that fell outside back
// in. Placement is not replayed; the layout just shifts.
func (w *World) SetBounds(halfX, halfY float64) {
	if halfX <= 0 || halfY <= 0 {
		return
	}
	w.HalfX = halfX
	w.HalfY = halfY
	for _, b := range w.Bodies {
		w.clampBody(b)
	}
}

// clampBody shifts a body so its true extent stays inside the walls,
// axis by axis. Uses support distances rather than the bounding radius so
// thin shapes are not pushed further than they need.
func (w *World) clampBody(b *Body) {
	verts := b.WorldVerts()
	right := supportRadius(verts, b.Pos, Vec2{1, 0})
	left := supportRadius(verts, b.Pos, Vec2{-1, 0})
	up := supportRadius(verts, b.Pos, Vec2{0, 1})
	down := supportRadius(verts, b.Pos, Vec2{0, -1})

	if b.Pos.X+right > w.HalfX {
		b.Pos.X = w.HalfX - right
	}
	if b.Pos.X-left < -w.HalfX {
		b.Pos.X = -w.HalfX + left
	}
	if b.Pos.Y+up > w.HalfY {
		b.Pos.Y = w.HalfY - up
	}
	if b.Pos.Y-down < -w.HalfY {
		b.Pos.Y = -w.HalfY + down
	}
}
