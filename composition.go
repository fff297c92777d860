package main

import (
	"log"
	"math"
)

const (
	shapesPerComposition = 10
	colorPresets         = 10 // one preset per shape, shuffled

	maxShapeRadius = 0.34 // first shape
	minShapeRadius = 0.16 // last shape
	sizeJitter     = 0.12

	launchSpeedMin = 0.25
	launchSpeedMax = 0.7
	launchSpinMax  = 2.0
)

// Rebuild replaces the whole composition from a seed: same seed, same shape
// sequence, same layout, same launch velocities. Shapes that find no legal
// position are skipped with a warning and the rest carry on.
func (w *World) Rebuild(seed string) {
	w.Seed = seed
	w.Rng = NewRand(seed)
	w.Clear()

	palette := w.Rng.Perm(colorPresets)
	for i := 0; i < shapesPerComposition; i++ {
		shape := nextShape(w.Rng, i)
		b, err := placeShape(w, shape)
		if err != nil {
			log.Printf("composition %q: shape %d (%v) skipped: %v", seed, i, shape.Kind, err)
			continue
		}
		b.ColorIdx = palette[i]
	}

	w.assignMotion()
	w.Running = true
}

// nextShape draws the i-th shape of a composition. Sizes run from large to
// small so later shapes can still find gaps; kinds are weighted toward
// circles, which pack best.
func nextShape(rng *Rand, i int) *Shape {
	roll := rng.Float64()

	t := float64(i) / float64(shapesPerComposition-1)
	base := maxShapeRadius + (minShapeRadius-maxShapeRadius)*t
	size := base * (1 + sizeJitter*(2*rng.Float64()-1))

	switch {
	case roll < 0.5:
		return newCircleShape(size)
	case roll < 0.75:
		aspect := 0.55 + 0.4*rng.Float64()
		return newRectShape(2*size, 2*size*aspect)
	default:
		return newTriangleShape(size)
	}
}

// assignMotion hands every free body a fresh seeded velocity and spin,
// scaled so small shapes dart and large ones drift.
func (w *World) assignMotion() {
	for _, b := range w.Bodies {
		if b.Dragged {
			continue
		}
		ang := w.Rng.Angle()
		speed := w.Rng.Range(launchSpeedMin, launchSpeedMax) * b.SpeedScale
		s, c := math.Sincos(ang)
		b.Vel = Vec2{c * speed, s * speed}
		b.AngVel = w.Rng.Range(-launchSpinMax, launchSpinMax) * b.SpeedScale
	}
}
