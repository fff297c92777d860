package main

import "math"

// Vec2 is a 2D vector in world units. World space is Y-up with the origin at
// the center of the viewport; rotation follows the counter-clockwise math
// convention.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

func (v Vec2) Cross(o Vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec2) Dist(o Vec2) float64 {
	return v.Sub(o).Len()
}

// Normalize returns the unit vector pointing the same way; the zero vector
// stays zero.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Perp returns v rotated 90 degrees counter-clockwise.
func (v Vec2) Perp() Vec2 {
	return Vec2{-v.Y, v.X}
}

// degenerateEdge is the squared edge length below which a polygon edge
// contributes no separating axis.
const degenerateEdge = 1e-18

// Overlap describes a colliding polygon pair: the unit axis of least
// penetration and how deep the polygons interpenetrate along it.
type Overlap struct {
	Normal Vec2 // points from the first polygon toward the second
	Depth  float64
}

// transformVerts rotates local vertices counter-clockwise by rot and
// translates them to pos, returning world-space vertices.
func transformVerts(local []Vec2, pos Vec2, rot float64) []Vec2 {
	sin, cos := math.Sincos(rot)
	out := make([]Vec2, len(local))
	for i, v := range local {
		out[i] = Vec2{
			X: pos.X + v.X*cos - v.Y*sin,
			Y: pos.Y + v.X*sin + v.Y*cos,
		}
	}
	return out
}

// projectOntoAxis returns the scalar interval covered by verts along axis.
func projectOntoAxis(verts []Vec2, axis Vec2) (min, max float64) {
	min = verts[0].Dot(axis)
	max = min
	for _, v := range verts[1:] {
		d := v.Dot(axis)
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	return min, max
}

// satOverlap runs the separating-axis test over the edge normals of both
// convex polygons. When the polygons interpenetrate it returns the axis of
// least penetration, oriented from a toward b. Zero-length edges contribute
// no axis.
func satOverlap(a, b []Vec2) (Overlap, bool) {
	if len(a) < 3 || len(b) < 3 {
		return Overlap{}, false
	}
	best := Overlap{Depth: math.MaxFloat64}
	if !tightenAxes(a, b, &best) || !tightenAxes(b, a, &best) {
		return Overlap{}, false
	}
	// Orient the normal so it pushes b away from a.
	if polyCentroid(b).Sub(polyCentroid(a)).Dot(best.Normal) < 0 {
		best.Normal = best.Normal.Scale(-1)
	}
	return best, true
}

// tightenAxes projects both polygons onto each edge normal of poly, keeping
// the smallest positive overlap in best. It reports false as soon as an axis
// separates the polygons.
func tightenAxes(poly, other []Vec2, best *Overlap) bool {
	for i := range poly {
		edge := poly[(i+1)%len(poly)].Sub(poly[i])
		lenSq := edge.LenSq()
		if lenSq < degenerateEdge {
			continue
		}
		inv := 1 / math.Sqrt(lenSq)
		axis := Vec2{edge.Y * inv, -edge.X * inv}
		minA, maxA := projectOntoAxis(poly, axis)
		minB, maxB := projectOntoAxis(other, axis)
		depth := math.Min(maxA, maxB) - math.Max(minA, minB)
		if depth <= 0 {
			return false
		}
		if depth < best.Depth {
			best.Normal = axis
			best.Depth = depth
		}
	}
	return true
}

// supportRadius returns the farthest signed extent of world verts from
// center along the unit direction dir. Placement and bounds clamping use it
// to measure how far a body reaches; it is not part of the collision path.
func supportRadius(verts []Vec2, center Vec2, dir Vec2) float64 {
	best := math.Inf(-1)
	for _, v := range verts {
		if d := v.Sub(center).Dot(dir); d > best {
			best = d
		}
	}
	return best
}

// pointInConvex reports whether p lies inside (or on) a counter-clockwise
// convex polygon.
func pointInConvex(verts []Vec2, p Vec2) bool {
	if len(verts) < 3 {
		return false
	}
	for i := range verts {
		a := verts[i]
		b := verts[(i+1)%len(verts)]
		if b.Sub(a).Cross(p.Sub(a)) < 0 {
			return false
		}
	}
	return true
}

// polyCentroid averages the vertices, which is centroid enough for the
// convex shapes used here.
func polyCentroid(verts []Vec2) Vec2 {
	var c Vec2
	for _, v := range verts {
		c = c.Add(v)
	}
	return c.Scale(1 / float64(len(verts)))
}

// circleIntersection returns the 0, 1, or 2 points where two circles meet.
// This is the tangency construction placement relies on: a point at distance
// r0 from c0 and r1 from c1 touches both parent circles at once.
func circleIntersection(c0 Vec2, r0 float64, c1 Vec2, r1 float64) (Vec2, Vec2, int) {
	delta := c1.Sub(c0)
	d := delta.Len()
	if d < 1e-12 || d > r0+r1 || d < math.Abs(r0-r1) {
		return Vec2{}, Vec2{}, 0
	}
	a := (r0*r0 - r1*r1 + d*d) / (2 * d)
	h2 := r0*r0 - a*a
	if h2 < 0 {
		h2 = 0
	}
	h := math.Sqrt(h2)
	mid := c0.Add(delta.Scale(a / d))
	if h < 1e-9 {
		return mid, Vec2{}, 1
	}
	off := Vec2{-delta.Y * h / d, delta.X * h / d}
	return mid.Add(off), mid.Sub(off), 2
}
