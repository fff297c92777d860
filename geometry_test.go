package main

import (
	"math"
	"testing"
)

const testEps = 1e-9

func almost(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func vecAlmost(a, b Vec2, tol float64) bool {
	return almost(a.X, b.X, tol) && almost(a.Y, b.Y, tol)
}

func TestVec2Ops(t *testing.T) {
	a := Vec2{3, 4}
	b := Vec2{1, -2}

	if got := a.Add(b); !vecAlmost(got, Vec2{4, 2}, testEps) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); !vecAlmost(got, Vec2{2, 6}, testEps) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Dot(b); !almost(got, -5, testEps) {
		t.Errorf("Dot = %v", got)
	}
	if got := a.Len(); !almost(got, 5, testEps) {
		t.Errorf("Len = %v", got)
	}
	if got := a.Normalize(); !almost(got.Len(), 1, testEps) {
		t.Errorf("Normalize length = %v", got.Len())
	}
	if got := (Vec2{}).Normalize(); got != (Vec2{}) {
		t.Errorf("Normalize zero = %v", got)
	}
	// Perp rotates a quarter turn counterclockwise.
	if got := (Vec2{1, 0}).Perp(); !vecAlmost(got, Vec2{0, 1}, testEps) {
		t.Errorf("Perp = %v", got)
	}
}

func TestTransformVerts(t *testing.T) {
	local := []Vec2{{1, 0}, {0, 1}}
	got := transformVerts(local, Vec2{2, 3}, math.Pi/2)
	want := []Vec2{{2, 4}, {1, 3}}
	for i := range want {
		if !vecAlmost(got[i], want[i], testEps) {
			t.Errorf("vert %d = %v, want %v", i, got[i], want[i])
		}
	}
	if !vecAlmost(local[0], Vec2{1, 0}, testEps) {
		t.Error("transformVerts mutated its input")
	}
}

func TestSATOverlap(t *testing.T) {
	square := newRectShape(1, 1).Verts
	tri := newTriangleShape(0.5).Verts

	tests := []struct {
		name      string
		bPos      Vec2
		bVerts    []Vec2
		wantHit   bool
		wantDepth float64
	}{
		{"separated squares", Vec2{1.5, 0}, square, false, 0},
		{"overlapping squares", Vec2{0.8, 0}, square, true, 0.2},
		{"deep overlap", Vec2{0.2, 0}, square, true, 0.8},
		{"touching squares", Vec2{1, 0}, square, false, 0},
		{"diagonal overlap", Vec2{0.9, 0.9}, square, true, 0.1},
		{"separated triangle", Vec2{2, 2}, tri, false, 0},
		{"overlapping triangle", Vec2{0.6, 0}, tri, true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := transformVerts(square, Vec2{}, 0)
			b := transformVerts(tt.bVerts, tt.bPos, 0)
			ov, hit := satOverlap(a, b)
			if hit != tt.wantHit {
				t.Fatalf("hit = %v, want %v", hit, tt.wantHit)
			}
			if !hit {
				return
			}
			if ov.Depth <= 0 {
				t.Errorf("depth = %v, want > 0", ov.Depth)
			}
			if tt.wantDepth > 0 && !almost(ov.Depth, tt.wantDepth, 1e-6) {
				t.Errorf("depth = %v, want %v", ov.Depth, tt.wantDepth)
			}
			// Normal points from the first polygon toward the second.
			if ov.Normal.Dot(tt.bPos) < 0 {
				t.Errorf("normal %v points away from b at %v", ov.Normal, tt.bPos)
			}
			if !almost(ov.Normal.Len(), 1, 1e-9) {
				t.Errorf("normal not unit: %v", ov.Normal)
			}
		})
	}
}

func TestSATNormalDirection(t *testing.T) {
	square := newRectShape(1, 1).Verts
	a := transformVerts(square, Vec2{}, 0)
	b := transformVerts(square, Vec2{0.7, 0}, 0)

	ov, hit := satOverlap(a, b)
	if !hit {
		t.Fatal("expected overlap")
	}
	if !vecAlmost(ov.Normal, Vec2{1, 0}, 1e-9) {
		t.Errorf("normal = %v, want {1 0}", ov.Normal)
	}

	// Swapping the operands flips the normal.
	ov2, hit2 := satOverlap(b, a)
	if !hit2 {
		t.Fatal("expected overlap")
	}
	if !vecAlmost(ov2.Normal, Vec2{-1, 0}, 1e-9) {
		t.Errorf("swapped normal = %v, want {-1 0}", ov2.Normal)
	}
}

func TestSupportRadius(t *testing.T) {
	square := transformVerts(newRectShape(1, 1).Verts, Vec2{}, 0)

	tests := []struct {
		name string
		dir  Vec2
		want float64
	}{
		{"axis", Vec2{1, 0}, 0.5},
		{"diagonal", Vec2{1, 1}.Normalize(), math.Sqrt(0.5)},
		{"negative axis", Vec2{0, -1}, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := supportRadius(square, Vec2{}, tt.dir)
			if !almost(got, tt.want, 1e-9) {
				t.Errorf("supportRadius = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPointInConvex(t *testing.T) {
	square := transformVerts(newRectShape(1, 1).Verts, Vec2{2, 0}, 0)

	tests := []struct {
		name string
		p    Vec2
		want bool
	}{
		{"center", Vec2{2, 0}, true},
		{"inside corner", Vec2{2.4, 0.4}, true},
		{"on edge", Vec2{2.5, 0}, true},
		{"outside", Vec2{3, 1}, false},
		{"far away", Vec2{-5, -5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pointInConvex(square, tt.p); got != tt.want {
				t.Errorf("pointInConvex(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestCircleIntersection(t *testing.T) {
	t.Run("two points", func(t *testing.T) {
		p0, p1, n := circleIntersection(Vec2{0, 0}, 1, Vec2{1, 0}, 1)
		if n != 2 {
			t.Fatalf("n = %d, want 2", n)
		}
		h := math.Sqrt(0.75)
		if !vecAlmost(p0, Vec2{0.5, h}, 1e-9) {
			t.Errorf("p0 = %v", p0)
		}
		if !vecAlmost(p1, Vec2{0.5, -h}, 1e-9) {
			t.Errorf("p1 = %v", p1)
		}
	})
	t.Run("tangent", func(t *testing.T) {
		p0, _, n := circleIntersection(Vec2{0, 0}, 1, Vec2{2, 0}, 1)
		if n != 1 {
			t.Fatalf("n = %d, want 1", n)
		}
		if !vecAlmost(p0, Vec2{1, 0}, 1e-9) {
			t.Errorf("p0 = %v", p0)
		}
	})
	t.Run("disjoint", func(t *testing.T) {
		if _, _, n := circleIntersection(Vec2{0, 0}, 1, Vec2{3, 0}, 1); n != 0 {
			t.Errorf("n = %d, want 0", n)
		}
	})
	t.Run("contained", func(t *testing.T) {
		if _, _, n := circleIntersection(Vec2{0, 0}, 2, Vec2{0.3, 0}, 0.5); n != 0 {
			t.Errorf("n = %d, want 0", n)
		}
	})
	t.Run("coincident", func(t *testing.T) {
		if _, _, n := circleIntersection(Vec2{1, 1}, 1, Vec2{1, 1}, 1); n != 0 {
			t.Errorf("n = %d, want 0", n)
		}
	})
}
