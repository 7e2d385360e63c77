package scanfill

import "math"

// Vec2 represents a 2D point or displacement vector.
// The engine stores projected vertex positions as Vec2.
type Vec2 struct {
	X, Y float64
}

// V2 is a convenience function to create a Vec2.
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of two vectors.
func (v Vec2) Dot(w Vec2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the 2D cross product (scalar).
// This is the z-component of the 3D cross product with z=0.
func (v Vec2) Cross(w Vec2) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Length returns the length (magnitude) of the vector.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LengthSq returns the squared length of the vector.
// This is faster than Length() when you only need to compare magnitudes.
func (v Vec2) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns a unit vector in the same direction.
// Returns zero vector if the original vector has zero length.
func (v Vec2) Normalize() Vec2 {
	length := v.Length()
	if length == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / length, Y: v.Y / length}
}

// Approx returns true if two vectors are approximately equal within epsilon.
// The comparison is componentwise and inclusive, so exact epsilon
// differences still compare equal.
func (v Vec2) Approx(w Vec2, epsilon float64) bool {
	return math.Abs(v.X-w.X) <= epsilon && math.Abs(v.Y-w.Y) <= epsilon
}

// Vec3 represents a 3D point or displacement vector.
// Input vertex coordinates are Vec3; 2D callers leave Z zero.
type Vec3 struct {
	X, Y, Z float64
}

// V3 is a convenience function to create a Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Sub returns the difference of two vectors.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Neg returns the negation of the vector.
func (v Vec3) Neg() Vec3 {
	return Vec3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(w Vec3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the 3D cross product.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// Length returns the length (magnitude) of the vector.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns a unit vector in the same direction.
// Returns zero vector if the original vector has zero length.
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length == 0 {
		return Vec3{}
	}
	return Vec3{X: v.X / length, Y: v.Y / length, Z: v.Z / length}
}

// Approx returns true if two vectors are approximately equal within epsilon.
func (v Vec3) Approx(w Vec3, epsilon float64) bool {
	return math.Abs(v.X-w.X) <= epsilon &&
		math.Abs(v.Y-w.Y) <= epsilon &&
		math.Abs(v.Z-w.Z) <= epsilon
}

// addNewellCross accumulates one term of Newell's method for the
// best-fit plane normal of a vertex loop.
func addNewellCross(n *Vec3, prev, cur Vec3) {
	n.X += (prev.Y - cur.Y) * (prev.Z + cur.Z)
	n.Y += (prev.Z - cur.Z) * (prev.X + cur.X)
	n.Z += (prev.X - cur.X) * (prev.Y + cur.Y)
}

// orthoBasis returns two vectors forming an orthonormal basis with n.
// n must be normalized. The basis is derived from the dominant axis so
// that near-identical normals produce near-identical projections.
func orthoBasis(n Vec3) (u, v Vec3) {
	const eps = 1.19209290e-7

	f := n.X*n.X + n.Y*n.Y
	if f > eps {
		d := 1.0 / math.Sqrt(f)
		u = Vec3{X: n.Y * d, Y: -n.X * d}
		v = Vec3{
			X: -n.Z * u.Y,
			Y: n.Z * u.X,
			Z: n.X*u.Y - n.Y*u.X,
		}
	} else {
		// Degenerate case: normal is (near) parallel to the Z axis.
		if n.Z < 0 {
			u = Vec3{X: -1}
		} else {
			u = Vec3{X: 1}
		}
		v = Vec3{Y: 1}
	}
	return u, v
}

// project maps a 3D coordinate into the 2D basis returned by orthoBasis.
func project(co Vec3, u, v Vec3) Vec2 {
	return Vec2{X: co.Dot(u), Y: co.Dot(v)}
}

// cornerCos returns the cosine of the corner angle at p2 formed by the
// rays towards p1 and p3. Degenerate (zero length) rays yield 0.
func cornerCos(p1, p2, p3 Vec2) float64 {
	vec1 := p1.Sub(p2).Normalize()
	vec2 := p3.Sub(p2).Normalize()
	return vec1.Dot(vec2)
}

// distSquaredToLine returns the squared distance from p to the infinite
// line through l1 and l2. A degenerate line measures to l1.
func distSquaredToLine(l1, l2, p Vec2) float64 {
	d := l2.Sub(l1)
	lenSq := d.LengthSq()
	if lenSq == 0 {
		return p.Sub(l1).LengthSq()
	}
	t := p.Sub(l1).Dot(d) / lenSq
	closest := l1.Add(d.Mul(t))
	return p.Sub(closest).LengthSq()
}
