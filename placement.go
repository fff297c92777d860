package main

import (
	"errors"
	"fmt"
	"math"
)

const (
	tangentSamples    = 96  // ring samples per placed body in the one-tangent tier
	gridStepFactor    = 0.5 // grid tier step as a fraction of the new contact radius
	rectRotationTries = 12
	triRotationTries  = 10
)

var errNoPlacement = errors.New("no legal placement")

// candidate is a legal position with its tangency quality.
type candidate struct {
	pos      Vec2
	contacts int
	score    float64
}

// obstacle caches a placed body's world geometry for the duration of one
// placement search.
type obstacle struct {
	pos     Vec2
	contact float64
	circle  bool
	verts   []Vec2
}

func gatherObstacles(bodies []*Body) []obstacle {
	obs := make([]obstacle, len(bodies))
	for i, b := range bodies {
		obs[i] = obstacle{
			pos:     b.Pos,
			contact: b.Shape.ContactRadius,
			circle:  b.Shape.Kind == KindCircle,
			verts:   b.WorldVerts(),
		}
	}
	return obs
}

// placeShape finds a position (and rotation, for polygons) for the shape and
// registers the resulting body. Failure skips the shape and is not fatal.
func placeShape(w *World, shape *Shape) (*Body, error) {
	obs := gatherObstacles(w.Bodies)
	trials := rotationTrials(w.Rng, shape.Kind)

	if len(obs) == 0 {
		for _, rot := range trials {
			if insideBounds(w, transformVerts(shape.Verts, Vec2{}, rot)) {
				return w.addBody(shape, Vec2{}, rot), nil
			}
		}
		return nil, fmt.Errorf("%v does not fit at origin: %w", shape.Kind, errNoPlacement)
	}

	if shape.Kind == KindCircle && len(obs) == 2 && obs[0].circle && obs[1].circle {
		if pos, ok := thirdCirclePos(w, shape, obs); ok {
			return w.addBody(shape, pos, 0), nil
		}
	}

	for _, rot := range trials {
		if pos, ok := searchPosition(w, shape, rot, obs); ok {
			return w.addBody(shape, pos, rot), nil
		}
	}
	return nil, fmt.Errorf("%v has no legal position: %w", shape.Kind, errNoPlacement)
}

// rotationTrials draws the full rotation sequence up front so the random
// stream advances the same way no matter which trial succeeds.
func rotationTrials(rng *Rand, kind Kind) []float64 {
	var n int
	switch kind {
	case KindRect:
		n = rectRotationTries
	case KindTriangle:
		n = triRotationTries
	default:
		return []float64{0}
	}
	trials := make([]float64, n)
	for i := range trials {
		trials[i] = rng.Angle()
	}
	return trials
}

// thirdCirclePos handles the two-circles-placed special case: the new circle
// goes on one of the two points tangent to both, leaving them untouched.
func thirdCirclePos(w *World, shape *Shape, obs []obstacle) (Vec2, bool) {
	p0, p1, n := circleIntersection(
		obs[0].pos, obs[0].contact+shape.ContactRadius,
		obs[1].pos, obs[1].contact+shape.ContactRadius,
	)
	points := []Vec2{p0, p1}[:n]
	for _, p := range points {
		if _, ok := evaluate(w, shape, 0, p, obs); ok {
			return p, true
		}
	}
	return Vec2{}, false
}

// searchPosition runs the tiered candidate search at a fixed rotation.
// Each tier only runs when the previous one produced no legal candidate.
func searchPosition(w *World, shape *Shape, rot float64, obs []obstacle) (Vec2, bool) {
	legal := evaluateAll(w, shape, rot, pairTangentCandidates(shape, obs), obs)

	// Two tangencies are only demanded when a two-tangent point is actually
	// attainable here; otherwise one contact is enough.
	required := 1
	if len(legal) > 0 && len(obs) >= 2 {
		required = 2
	}

	if len(legal) == 0 {
		legal = evaluateAll(w, shape, rot, ringCandidates(shape, obs), obs)
	}
	if len(legal) == 0 {
		legal = evaluateAll(w, shape, rot, gridCandidates(w, shape), obs)
	}
	if len(legal) == 0 {
		return Vec2{}, false
	}
	return selectBest(legal, required).pos, true
}

// pairTangentCandidates returns, for every pair of placed bodies, the points
// simultaneously tangent to both (up to two per pair).
func pairTangentCandidates(shape *Shape, obs []obstacle) []Vec2 {
	var out []Vec2
	for i := 0; i < len(obs); i++ {
		for j := i + 1; j < len(obs); j++ {
			p0, p1, n := circleIntersection(
				obs[i].pos, obs[i].contact+shape.ContactRadius,
				obs[j].pos, obs[j].contact+shape.ContactRadius,
			)
			if n >= 1 {
				out = append(out, p0)
			}
			if n >= 2 {
				out = append(out, p1)
			}
		}
	}
	return out
}

// ringCandidates samples equally spaced points on the tangent circle around
// every placed body.
func ringCandidates(shape *Shape, obs []obstacle) []Vec2 {
	out := make([]Vec2, 0, len(obs)*tangentSamples)
	for _, ob := range obs {
		r := ob.contact + shape.ContactRadius
		for k := 0; k < tangentSamples; k++ {
			ang := 2 * math.Pi * float64(k) / tangentSamples
			s, c := math.Sincos(ang)
			out = append(out, Vec2{ob.pos.X + r*c, ob.pos.Y + r*s})
		}
	}
	return out
}

// gridCandidates scans the whole viewport as a last resort.
func gridCandidates(w *World, shape *Shape) []Vec2 {
	step := gridStepFactor * shape.ContactRadius
	var out []Vec2
	for x := -w.HalfX; x <= w.HalfX; x += step {
		for y := -w.HalfY; y <= w.HalfY; y += step {
			out = append(out, Vec2{x, y})
		}
	}
	return out
}

func evaluateAll(w *World, shape *Shape, rot float64, positions []Vec2, obs []obstacle) []candidate {
	var legal []candidate
	for _, pos := range positions {
		if c, ok := evaluate(w, shape, rot, pos, obs); ok {
			legal = append(legal, c)
		}
	}
	return legal
}

// evaluate checks one position for legality and scores its tangency. A legal
// candidate is fully in bounds and overlaps nothing beyond tolerance.
func evaluate(w *World, shape *Shape, rot float64, pos Vec2, obs []obstacle) (candidate, bool) {
	p := w.Params
	verts := transformVerts(shape.Verts, pos, rot)
	if !insideBounds(w, verts) {
		return candidate{}, false
	}

	contacts := 0
	minGap := math.Inf(1)
	nearest := math.Inf(1)
	for i := range obs {
		ob := &obs[i]
		d := pos.Dist(ob.pos)
		ideal := shape.ContactRadius + ob.contact

		if shape.Kind == KindCircle && ob.circle {
			if d < ideal-p.CircleOverlapTolerance {
				return candidate{}, false
			}
		} else {
			if ov, hit := satOverlap(verts, ob.verts); hit && ov.Depth > p.SatDepthTolerance {
				return candidate{}, false
			}
		}

		if math.Abs(d-ideal) <= p.ContactBand*ideal {
			contacts++
		}
		if gap := d - ideal; gap < minGap {
			minGap = gap
		}
		if d < nearest {
			nearest = d
		}
	}

	score := math.Abs(minGap-p.IdealGap) + p.NearestPenalty*nearest
	return candidate{pos: pos, contacts: contacts, score: score}, true
}

// insideBounds reports whether every vertex sits inside the walls with the
// placement margin to spare.
func insideBounds(w *World, verts []Vec2) bool {
	m := w.Params.BoundsMargin
	for _, v := range verts {
		if v.X < -w.HalfX+m || v.X > w.HalfX-m ||
			v.Y < -w.HalfY+m || v.Y > w.HalfY-m {
			return false
		}
	}
	return true
}

// selectBest prefers candidates that reach the required contact count and
// takes the lowest score among them; ties keep the earliest candidate so the
// outcome is independent of evaluation incidentals.
func selectBest(legal []candidate, required int) candidate {
	best := -1
	for i, c := range legal {
		if c.contacts < required {
			continue
		}
		if best < 0 || c.score < legal[best].score {
			best = i
		}
	}
	if best >= 0 {
		return legal[best]
	}
	for i, c := range legal {
		if best < 0 || c.score < legal[best].score {
			best = i
		}
	}
	return legal[best]
}
