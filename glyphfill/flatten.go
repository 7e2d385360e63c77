package glyphfill

import (
	"math"

	"github.com/gogpu/scanfill"
)

// DefaultTolerance is the maximum distance between a flattened chord
// and the true curve, in pixels.
const DefaultTolerance = 0.1

// contours flattens an outline's curves into closed polygon contours.
// Each OpMoveTo starts a new contour; the closing edge back to the
// contour start is implicit and not emitted as a point.
func contours(o *Outline, tolerance float64) [][]scanfill.Vec2 {
	var result [][]scanfill.Vec2
	var cur []scanfill.Vec2
	var pen scanfill.Vec2

	flush := func() {
		if len(cur) >= 3 {
			result = append(result, cur)
		}
		cur = nil
	}

	for _, seg := range o.Segments {
		switch seg.Op {
		case OpMoveTo:
			flush()
			pen = seg.Points[0]
			cur = append(cur, pen)

		case OpLineTo:
			pen = seg.Points[0]
			cur = appendPoint(cur, pen)

		case OpQuadTo:
			flattenQuadratic(pen, seg.Points[0], seg.Points[1], tolerance, &cur)
			pen = seg.Points[1]

		case OpCubeTo:
			flattenCubic(pen, seg.Points[0], seg.Points[1], seg.Points[2], tolerance, &cur)
			pen = seg.Points[2]
		}
	}
	flush()

	// Drop a duplicated closing point so every contour is a plain loop.
	for i, c := range result {
		if len(c) > 1 && c[0] == c[len(c)-1] {
			result[i] = c[:len(c)-1]
		}
	}
	return result
}

// appendPoint appends p unless it repeats the previous point exactly.
func appendPoint(pts []scanfill.Vec2, p scanfill.Vec2) []scanfill.Vec2 {
	if len(pts) > 0 && pts[len(pts)-1] == p {
		return pts
	}
	return append(pts, p)
}

// flattenQuadratic recursively subdivides a quadratic Bezier curve.
func flattenQuadratic(p0, p1, p2 scanfill.Vec2, tolerance float64, points *[]scanfill.Vec2) {
	// Distance from the control point to the chord p0-p2.
	dist := distanceToSegment(p1, p0, p2)

	if dist < tolerance {
		// Curve is flat enough, add the endpoint.
		*points = appendPoint(*points, p2)
		return
	}

	// Subdivide the curve.
	q0 := lerp(p0, p1, 0.5)
	q1 := lerp(p1, p2, 0.5)
	q2 := lerp(q0, q1, 0.5)

	flattenQuadratic(p0, q0, q2, tolerance, points)
	flattenQuadratic(q2, q1, p2, tolerance, points)
}

// flattenCubic recursively subdivides a cubic Bezier curve using
// de Casteljau's algorithm.
func flattenCubic(p0, p1, p2, p3 scanfill.Vec2, tolerance float64, points *[]scanfill.Vec2) {
	d1 := distanceToSegment(p1, p0, p3)
	d2 := distanceToSegment(p2, p0, p3)
	dist := math.Max(d1, d2)

	if dist < tolerance {
		*points = appendPoint(*points, p3)
		return
	}

	q0 := lerp(p0, p1, 0.5)
	q1 := lerp(p1, p2, 0.5)
	q2 := lerp(p2, p3, 0.5)
	r0 := lerp(q0, q1, 0.5)
	r1 := lerp(q1, q2, 0.5)
	s := lerp(r0, r1, 0.5)

	flattenCubic(p0, q0, r0, s, tolerance, points)
	flattenCubic(s, r1, q2, p3, tolerance, points)
}

func lerp(p, q scanfill.Vec2, t float64) scanfill.Vec2 {
	return scanfill.V2(p.X+(q.X-p.X)*t, p.Y+(q.Y-p.Y)*t)
}

// distanceToSegment is the perpendicular distance from p to the
// segment (a, b), clamped to the segment's endpoints.
func distanceToSegment(p, a, b scanfill.Vec2) float64 {
	ab := b.Sub(a)
	abLenSq := ab.LengthSq()

	if abLenSq < 1e-20 {
		// Segment is a point.
		return p.Sub(a).Length()
	}

	t := p.Sub(a).Dot(ab) / abLenSq
	t = math.Max(0, math.Min(1, t))
	closest := a.Add(ab.Mul(t))
	return p.Sub(closest).Length()
}
