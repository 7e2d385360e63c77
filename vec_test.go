package scanfill

import (
	"math"
	"testing"
)

func TestVec2_Creation(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
	}{
		{"zero", 0, 0},
		{"positive", 3, 4},
		{"negative", -1, -2},
		{"fractional", 1.5, 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := V2(tt.x, tt.y)
			if v.X != tt.x || v.Y != tt.y {
				t.Errorf("V2(%v, %v) = %v, want (%v, %v)", tt.x, tt.y, v, tt.x, tt.y)
			}
		})
	}
}

func TestVec2_Cross(t *testing.T) {
	tests := []struct {
		name   string
		v, w   Vec2
		expect float64
	}{
		{"orthogonal", V2(1, 0), V2(0, 1), 1},
		{"parallel", V2(1, 0), V2(2, 0), 0},
		{"clockwise", V2(0, 1), V2(1, 0), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.v.Cross(tt.w)
			if math.Abs(result-tt.expect) > 1e-10 {
				t.Errorf("%v.Cross(%v) = %v, want %v", tt.v, tt.w, result, tt.expect)
			}
		})
	}
}

func TestVec2_Normalize(t *testing.T) {
	tests := []struct {
		name   string
		v      Vec2
		expect Vec2
	}{
		{"unit x", V2(5, 0), V2(1, 0)},
		{"diagonal", V2(3, 4), V2(0.6, 0.8)},
		{"zero", V2(0, 0), V2(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.v.Normalize()
			if !result.Approx(tt.expect, 1e-10) {
				t.Errorf("%v.Normalize() = %v, want %v", tt.v, result, tt.expect)
			}
		})
	}
}

func TestVec2_Approx(t *testing.T) {
	a := V2(0, 0)
	// Inclusive comparison: exactly epsilon apart still compares equal.
	if !a.Approx(V2(epsilon, 0), epsilon) {
		t.Error("exact epsilon difference should compare equal")
	}
	if a.Approx(V2(2*epsilon, 0), epsilon) {
		t.Error("double epsilon difference should compare unequal")
	}
}

func TestVec3_Cross(t *testing.T) {
	tests := []struct {
		name   string
		v, w   Vec3
		expect Vec3
	}{
		{"x cross y", V3(1, 0, 0), V3(0, 1, 0), V3(0, 0, 1)},
		{"y cross z", V3(0, 1, 0), V3(0, 0, 1), V3(1, 0, 0)},
		{"parallel", V3(1, 2, 3), V3(2, 4, 6), V3(0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.v.Cross(tt.w)
			if !result.Approx(tt.expect, 1e-10) {
				t.Errorf("%v.Cross(%v) = %v, want %v", tt.v, tt.w, result, tt.expect)
			}
		})
	}
}

func TestOrthoBasis(t *testing.T) {
	tests := []struct {
		name string
		n    Vec3
	}{
		{"up", V3(0, 0, 1)},
		{"down", V3(0, 0, -1)},
		{"x axis", V3(1, 0, 0)},
		{"y axis", V3(0, 1, 0)},
		{"oblique", V3(1, 2, 3).Normalize()},
		{"oblique negative", V3(-0.3, 0.4, -0.5).Normalize()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, v := orthoBasis(tt.n)
			if d := math.Abs(u.Dot(tt.n)); d > 1e-9 {
				t.Errorf("u not orthogonal to n, dot = %g", d)
			}
			if d := math.Abs(v.Dot(tt.n)); d > 1e-9 {
				t.Errorf("v not orthogonal to n, dot = %g", d)
			}
			if d := math.Abs(u.Dot(v)); d > 1e-9 {
				t.Errorf("u not orthogonal to v, dot = %g", d)
			}
			if l := u.Length(); math.Abs(l-1) > 1e-9 {
				t.Errorf("|u| = %g, want 1", l)
			}
			if l := v.Length(); math.Abs(l-1) > 1e-9 {
				t.Errorf("|v| = %g, want 1", l)
			}
		})
	}
}

func TestNewellNormal(t *testing.T) {
	// CCW unit square in the XY plane: Newell yields +Z with magnitude
	// twice the enclosed area.
	pts := []Vec3{V3(0, 0, 0), V3(1, 0, 0), V3(1, 1, 0), V3(0, 1, 0)}
	var n Vec3
	prev := pts[len(pts)-1]
	for _, p := range pts {
		addNewellCross(&n, prev, p)
		prev = p
	}
	want := V3(0, 0, 2)
	if !n.Approx(want, 1e-12) {
		t.Errorf("Newell normal = %v, want %v", n, want)
	}
}

func TestCornerCos(t *testing.T) {
	tests := []struct {
		name       string
		p1, p2, p3 Vec2
		expect     float64
	}{
		{"right angle", V2(1, 0), V2(0, 0), V2(0, 1), 0},
		{"straight", V2(-1, 0), V2(0, 0), V2(1, 0), -1},
		{"folded", V2(1, 0), V2(0, 0), V2(2, 0), 1},
		{"degenerate ray", V2(0, 0), V2(0, 0), V2(1, 0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cornerCos(tt.p1, tt.p2, tt.p3)
			if math.Abs(got-tt.expect) > 1e-12 {
				t.Errorf("cornerCos(%v, %v, %v) = %g, want %g",
					tt.p1, tt.p2, tt.p3, got, tt.expect)
			}
		})
	}
}

func TestDistSquaredToLine(t *testing.T) {
	tests := []struct {
		name   string
		l1, l2 Vec2
		p      Vec2
		expect float64
	}{
		{"above line", V2(0, 0), V2(1, 0), V2(0.5, 1), 1},
		// The distance is to the infinite line, not the segment.
		{"past segment end", V2(0, 0), V2(1, 0), V2(5, 1), 1},
		{"degenerate line", V2(0, 0), V2(0, 0), V2(3, 4), 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := distSquaredToLine(tt.l1, tt.l2, tt.p)
			if math.Abs(got-tt.expect) > 1e-12 {
				t.Errorf("distSquaredToLine(%v, %v, %v) = %g, want %g",
					tt.l1, tt.l2, tt.p, got, tt.expect)
			}
		})
	}
}
