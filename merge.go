package scanfill

// polyFill aggregates one island's bookkeeping between partitioning
// and the sweep: counts, projected bounding box and validity status.
type polyFill struct {
	edges, verts int
	min, max     Vec2
	nr           uint16
	f            uint8
}

// buildPolyFills gathers per-island vertex/edge counts and bounding
// boxes for the live geometry.
func (c *Context) buildPolyFills(poly uint16) []polyFill {
	pflist := make([]polyFill, poly)
	for a := range pflist {
		pflist[a] = polyFill{
			min: Vec2{X: 1e20, Y: 1e20},
			max: Vec2{X: -1e20, Y: -1e20},
			nr:  uint16(a),
			f:   polyNew,
		}
	}

	for i := range c.arena.edges {
		e := &c.arena.edges[i]
		if !e.removed {
			pflist[e.polyNr].edges++
		}
	}

	for i := range c.arena.verts {
		v := &c.arena.verts[i]
		if v.removed {
			continue
		}
		pf := &pflist[v.polyNr]
		pf.verts++
		pf.min.X = min(pf.min.X, v.xy.X)
		pf.min.Y = min(pf.min.Y, v.xy.Y)
		pf.max.X = max(pf.max.X, v.xy.X)
		pf.max.Y = max(pf.max.Y, v.xy.Y)
		if v.edgeCount > 2 {
			pf.f = polyValid
		}
	}

	return pflist
}

// boundIsect reports whether the bounding boxes of two non-empty
// islands overlap.
func boundIsect(pf2, pf1 *polyFill) bool {
	if pf1.edges == 0 || pf2.edges == 0 {
		return false
	}
	if pf2.max.X < pf1.min.X || pf2.max.Y < pf1.min.Y {
		return false
	}
	if pf2.min.X > pf1.max.X || pf2.min.Y > pf1.max.Y {
		return false
	}
	return true
}

// mergeOverlappingPolys unions islands whose bounding boxes intersect,
// transitively, so each overlap group becomes one island for the
// sweep. Hole detection proper happens inside the sweep; this only
// guarantees nested loops end up in the same sweep set.
func (c *Context) mergeOverlappingPolys(pflist []polyFill) {
	targetMap := make([]int, len(pflist))
	for i := range targetMap {
		targetMap[i] = i
	}

	// Chase transitive overlaps with an explicit stack: everything
	// reachable from island a through box overlaps targets a.
	var stack []int
	for a := range pflist {
		if targetMap[a] != a {
			continue
		}
		stack = append(stack[:0], a)
		for len(stack) > 0 {
			test := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for b := a + 1; b < len(pflist); b++ {
				if targetMap[b] != b {
					// All intersections already identified for this island.
					continue
				}
				if boundIsect(&pflist[test], &pflist[b]) {
					targetMap[b] = a
					stack = append(stack, b)
				}
			}
		}
	}

	for a := range pflist {
		if targetMap[a] != a {
			c.mergePolys(&pflist[targetMap[a]], &pflist[a])
		}
	}
}

// mergePolys folds island src into dst: reassigns island ids on all
// live vertices and edges, accumulates counts, unions bounds, ORs
// status and empties src.
func (c *Context) mergePolys(dst, src *polyFill) {
	for i := range c.arena.verts {
		v := &c.arena.verts[i]
		if !v.removed && v.polyNr == src.nr {
			v.polyNr = dst.nr
		}
	}
	for i := range c.arena.edges {
		e := &c.arena.edges[i]
		if !e.removed && e.polyNr == src.nr {
			e.polyNr = dst.nr
		}
	}

	dst.verts += src.verts
	dst.edges += src.edges

	dst.min.X = min(dst.min.X, src.min.X)
	dst.min.Y = min(dst.min.Y, src.min.Y)
	dst.max.X = max(dst.max.X, src.max.X)
	dst.max.Y = max(dst.max.Y, src.max.Y)

	dst.f |= src.f

	src.verts = 0
	src.edges = 0
}
