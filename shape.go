package main

import "math"

// Kind tags the shape variants a body can take.
type Kind int

const (
	KindCircle Kind = iota
	KindRect
	KindTriangle
)

func (k Kind) String() string {
	switch k {
	case KindCircle:
		return "circle"
	case KindRect:
		return "rect"
	case KindTriangle:
		return "triangle"
	}
	return "shape"
}

// circleSegments is the polygon resolution used to approximate circles for
// the separating-axis test.
const circleSegments = 24

// Shape is the geometry half of a body: a closed convex polygon in local
// space, wound counter-clockwise, plus the two radii placement works with.
// The bounding radius is the true reach of the shape (wall bounces, coarse
// rejects); the contact radius is the smaller heuristic radius tangency
// scoring uses, which lets polygons pack face-to-face instead of
// corner-to-corner.
type Shape struct {
	Kind           Kind
	Verts          []Vec2
	BoundingRadius float64
	ContactRadius  float64
}

// newCircleShape approximates a circle of radius r as a regular polygon.
// Contact and bounding radii coincide for circles.
func newCircleShape(r float64) *Shape {
	verts := make([]Vec2, circleSegments)
	for i := range verts {
		a := 2 * math.Pi * float64(i) / circleSegments
		verts[i] = Vec2{r * math.Cos(a), r * math.Sin(a)}
	}
	return &Shape{
		Kind:           KindCircle,
		Verts:          verts,
		BoundingRadius: r,
		ContactRadius:  r,
	}
}

// newRectShape builds an axis-aligned w×h rectangle centered on the origin.
// The contact radius is the mean half-extent, well under the corner reach.
func newRectShape(w, h float64) *Shape {
	hw, hh := w/2, h/2
	return &Shape{
		Kind:           KindRect,
		Verts:          []Vec2{{hw, -hh}, {hw, hh}, {-hw, hh}, {-hw, -hh}},
		BoundingRadius: math.Sqrt(hw*hw + hh*hh),
		ContactRadius:  (hw + hh) / 2,
	}
}

// newTriangleShape builds an equilateral triangle with circumradius r, apex
// up. The contact radius sits between the inradius (r/2) and the vertex
// reach, so triangles neither wedge into gaps they cannot fill nor refuse
// legal face contacts.
func newTriangleShape(r float64) *Shape {
	verts := make([]Vec2, 3)
	for i := range verts {
		a := math.Pi/2 + 2*math.Pi*float64(i)/3
		verts[i] = Vec2{r * math.Cos(a), r * math.Sin(a)}
	}
	return &Shape{
		Kind:           KindTriangle,
		Verts:          verts,
		BoundingRadius: r,
		ContactRadius:  0.75 * r,
	}
}
