package scanfill

import "sort"

// scanVertLink pairs a vertex with the doubly linked list of edges
// currently open (spanning downward) at that vertex during the sweep.
type scanVertLink struct {
	vert        VertexID
	first, last EdgeID
}

// edgeSide reports whether p lies to the right of the directed line
// v1->v2. Points exactly on the line count as right, except points
// coincident with an endpoint, which count as outside. The equality
// comparisons are exact on purpose: the tie-break must be bit-stable,
// not epsilon-fuzzed.
func edgeSide(v1, v2, p Vec2) bool {
	inp := (v2.X-v1.X)*(v1.Y-p.Y) + (v1.Y-v2.Y)*(v1.X-p.X)
	if inp < 0 {
		return false
	}
	if inp == 0 {
		if v1 == p || v2 == p {
			return false
		}
	}
	return true
}

// vergCmp orders scan vertices top to bottom: primarily by descending
// Y, secondarily by ascending X. Exact comparisons; equal positions
// compare equal, which makes the sort order of coincident vertices
// depend on input enumeration order (an accepted upstream behavior).
func vergCmp(a, b Vec2) int {
	if a.Y < b.Y {
		return 1
	}
	if a.Y > b.Y {
		return -1
	}
	if a.X > b.X {
		return 1
	}
	if a.X < b.X {
		return -1
	}
	return 0
}

// Scan-list splicing. The open-edge lists are threaded through the
// arena's edge records via next/prev ids; splicing keeps the exact
// "move to closed list" semantics of the algorithm without pointer
// aliasing.

func (c *Context) scanRemove(sc *scanVertLink, eid EdgeID) {
	e := c.edge(eid)
	if e.prev != noEdge {
		c.edge(e.prev).next = e.next
	} else {
		sc.first = e.next
	}
	if e.next != noEdge {
		c.edge(e.next).prev = e.prev
	} else {
		sc.last = e.prev
	}
	e.next, e.prev = noEdge, noEdge
}

func (c *Context) scanAddTail(sc *scanVertLink, eid EdgeID) {
	e := c.edge(eid)
	e.prev = sc.last
	e.next = noEdge
	if sc.last != noEdge {
		c.edge(sc.last).next = eid
	}
	sc.last = eid
	if sc.first == noEdge {
		sc.first = eid
	}
}

func (c *Context) scanInsertBefore(sc *scanVertLink, ref, eid EdgeID) {
	e := c.edge(eid)
	r := c.edge(ref)
	e.prev = r.prev
	e.next = ref
	if r.prev != noEdge {
		c.edge(r.prev).next = eid
	} else {
		sc.first = eid
	}
	r.prev = eid
}

// addEdgeToScanVert inserts eid into sc's open list, ordered by the X
// intercept each edge would have at sc's Y. Vertical edges get a huge
// synthetic slope so they sort by X direction. Returns false when an
// edge to the same lower vertex already exists (duplicate).
func (c *Context) addEdgeToScanVert(sc *scanVertLink, eid EdgeID) bool {
	e := c.edge(eid)
	if sc.first == noEdge {
		sc.first, sc.last = eid, eid
		e.prev, e.next = noEdge, noEdge
		return true
	}

	x := c.vert(e.V1).xy.X
	y := c.vert(e.V1).xy.Y

	fac1 := c.vert(e.V2).xy.Y - y
	if fac1 == 0 {
		fac1 = 1.0e10 * (c.vert(e.V2).xy.X - x)
	} else {
		fac1 = (x - c.vert(e.V2).xy.X) / fac1
	}

	ed := sc.first
	for ; ed != noEdge; ed = c.edge(ed).next {
		other := c.edge(ed)
		if other.V2 == e.V2 {
			return false
		}

		fac := c.vert(other.V2).xy.Y - y
		if fac == 0 {
			fac = 1.0e10 * (c.vert(other.V2).xy.X - x)
		} else {
			fac = (x - c.vert(other.V2).xy.X) / fac
		}

		if fac > fac1 {
			break
		}
	}
	if ed != noEdge {
		c.scanInsertBefore(sc, ed, eid)
	} else {
		c.scanAddTail(sc, eid)
	}
	return true
}

// addEdgeToScanList canonicalizes eid so V1 is the topmost endpoint,
// locates that endpoint's scan link by binary search and inserts the
// edge there. When an identical edge already exists it returns the
// link's index and false; otherwise (-1, true).
func (c *Context) addEdgeToScanList(links []scanVertLink, eid EdgeID) (int, bool) {
	e := c.edge(eid)

	// Which endpoint is top-left?
	if c.vert(e.V1).xy.Y == c.vert(e.V2).xy.Y {
		if c.vert(e.V1).xy.X > c.vert(e.V2).xy.X {
			e.V1, e.V2 = e.V2, e.V1
		}
	} else if c.vert(e.V1).xy.Y < c.vert(e.V2).xy.Y {
		e.V1, e.V2 = e.V2, e.V1
	}

	key := c.vert(e.V1).xy
	idx := -1
	lo, hi := 0, len(links)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		switch cmp := vergCmp(key, c.vert(links[mid].vert).xy); {
		case cmp == 0:
			idx = mid
			lo = hi
		case cmp < 0:
			hi = mid
		default:
			lo = mid + 1
		}
	}

	if idx == -1 {
		// Should not happen with a consistent scan list; treat like a
		// successful insert so degree bookkeeping stays untouched.
		Logger().Warn("scanfill: scan list search failed for edge", "edge", eid)
		return -1, true
	}
	if !c.addEdgeToScanVert(&links[idx], eid) {
		return idx, false
	}
	return -1, true
}

// collapseZeroLenEdges flags coincident-endpoint edges' vertices as
// zero length and records redirects in tmp, chaining duplicates onto
// one representative vertex.
func (c *Context) collapseZeroLenEdges(tmp []VertexID, nr uint16) {
	verts := c.arena.verts
	for i := range c.arena.edges {
		e := &c.arena.edges[i]
		if e.removed || e.polyNr != nr {
			continue
		}
		if verts[e.V1].xy != verts[e.V2].xy {
			continue
		}
		switch {
		case verts[e.V1].f == vertZeroLen && verts[e.V2].f != vertZeroLen:
			verts[e.V2].f = vertZeroLen
			tmp[e.V2] = tmp[e.V1]
		case verts[e.V2].f == vertZeroLen && verts[e.V1].f != vertZeroLen:
			verts[e.V1].f = vertZeroLen
			tmp[e.V1] = tmp[e.V2]
		case verts[e.V1].f == vertZeroLen && verts[e.V2].f == vertZeroLen:
			tmp[e.V1] = tmp[e.V2]
		default:
			verts[e.V2].f = vertZeroLen
			tmp[e.V2] = e.V1
		}
	}
}

// redirectZeroLen follows a vertex's redirect chain to its
// representative. The guards stop on self-references and two-cycles so
// malformed chains cannot loop forever.
func (c *Context) redirectZeroLen(tmp []VertexID, id VertexID) VertexID {
	orig := id
	for c.vert(id).f == vertZeroLen &&
		tmp[id] != noVertex && tmp[id] != orig && id != tmp[id] {
		id = tmp[id]
	}
	return id
}

// noVertex marks an empty redirect slot.
const noVertex VertexID = -1

// sweepFill runs the scan-line fill for one island and returns the
// number of triangles emitted.
func (c *Context) sweepFill(pf *polyFill, flags Flags) int {
	nr := pf.nr

	// STEP 0: collapse zero sized edges.
	var tmp []VertexID
	if flags&CalcRemoveDoubles != 0 {
		tmp = c.zeroTmp
		c.collapseZeroLenEdges(tmp, nr)
	}

	// STEP 1: sorted scan links for the island's usable vertices.
	links := make([]scanVertLink, 0, pf.verts)
	for i := range c.arena.verts {
		v := &c.arena.verts[i]
		if v.removed || v.polyNr != nr {
			continue
		}
		if v.f != vertZeroLen {
			v.f = vertNew // flag for connect edges later on
			links = append(links, scanVertLink{
				vert:  VertexID(i),
				first: noEdge,
				last:  noEdge,
			})
		}
	}

	sort.Slice(links, func(i, j int) bool {
		return vergCmp(c.vert(links[i].vert).xy, c.vert(links[j].vert).xy) < 0
	})

	if flags&CalcRemoveDoubles != 0 {
		for i := range c.arena.edges {
			e := &c.arena.edges[i]
			if e.removed || e.polyNr != nr {
				continue
			}
			e.V1 = c.redirectZeroLen(tmp, e.V1)
			e.V2 = c.redirectZeroLen(tmp, e.V2)
			if e.V1 != e.V2 {
				c.addEdgeToScanList(links, EdgeID(i))
			}
		}
	} else {
		for i := range c.arena.edges {
			e := &c.arena.edges[i]
			if e.removed || e.polyNr != nr {
				continue
			}
			if e.V1 != e.V2 {
				c.addEdgeToScanList(links, EdgeID(i))
			}
		}
	}

	// STEP 2: fill loop.
	twoconnected := pf.f == polyNew

	// Safety: never much more faces than vertices. 2*verts is based on
	// a filled circle within a triangle; without hole detection the
	// island is assumed to be a non overlapping loop.
	var maxFace uint
	if flags&CalcHoles != 0 {
		maxFace = 2 * uint(len(links))
	} else {
		maxFace = uint(len(links) - 2)
	}
	var totFace uint

	var nextID EdgeID

scan:
	for a := 0; a < len(links); a++ {
		sc := &links[a]

		// Demote edges that can no longer participate (an endpoint is
		// down to a single edge); mark the rest's lower ends available.
		for ed1 := sc.first; ed1 != noEdge; ed1 = nextID {
			nextID = c.edge(ed1).next
			e1 := c.edge(ed1)
			if c.vert(e1.V1).edgeCount == 1 || c.vert(e1.V2).edgeCount == 1 {
				c.scanRemove(sc, ed1)
				if c.vert(e1.V1).edgeCount > 1 {
					c.vert(e1.V1).edgeCount--
				}
				if c.vert(e1.V2).edgeCount > 1 {
					c.vert(e1.V2).edgeCount--
				}
			} else {
				c.vert(e1.V2).f = vertAvailable
			}
		}

		for sc.first != noEdge { // for as long there are open edges
			ed1 := sc.first
			ed2 := c.edge(ed1).next

			if totFace >= maxFace {
				Logger().Warn("scanfill: triangle ceiling hit, aborting island",
					"island", nr, "faces", totFace)
				break scan
			}
			if ed2 == noEdge {
				// Just one edge left at this vertex.
				sc.first, sc.last = noEdge, noEdge
				e1 := c.edge(ed1)
				c.vert(e1.V2).f = vertNew
				c.vert(e1.V1).edgeCount--
				c.vert(e1.V2).edgeCount--
			} else {
				v1 := c.edge(ed1).V2
				v2 := c.edge(ed1).V1
				v3 := c.edge(ed2).V2

				// Happens with a series of overlapping edges.
				if v1 == v2 || v2 == v3 {
					break
				}

				xy1 := c.vert(v1).xy
				xy2 := c.vert(v2).xy
				xy3 := c.vert(v3).xy

				// Search every unprocessed vertex inside the candidate
				// triangle. Multiple points can be inside (concave
				// holes), so keep scanning and pick the sharpest
				// corner.
				best := -1
				bestCos := -1.0
				firstTime := false
				minY := min(xy1.Y, xy3.Y)

				for b := a + 1; b < len(links); b++ {
					cand := links[b].vert
					if c.vert(cand).f == vertNew {
						if c.vert(cand).xy.Y <= minY {
							break
						}
						cxy := c.vert(cand).xy
						if edgeSide(xy1, xy2, cxy) &&
							edgeSide(xy2, xy3, cxy) &&
							edgeSide(xy3, xy1, cxy) {
							if best == -1 {
								// Even without holes, keep checking.
								best = b
							} else {
								if !firstTime {
									bestCos = cornerCos(xy2, xy1, c.vert(links[best].vert).xy)
									firstTime = true
								}
								if cos := cornerCos(xy2, xy1, cxy); cos > bestCos {
									best = b
									bestCos = cos
								}
							}
						}
					}
				}

				if best != -1 {
					// Route around the interior point: new diagonal
					// from the scan vertex, then start over.
					ed3 := c.addEdge(v2, links[best].vert, polyUnset)
					c.scanInsertBefore(sc, ed2, ed3)
					e3 := c.edge(ed3)
					e3.f = EdgeInternal
					c.vert(e3.V2).f = vertAvailable
					c.vert(e3.V1).edgeCount++
					c.vert(e3.V2).edgeCount++
				} else {
					// New triangle.
					c.addFace(v1, v2, v3)
					totFace++
					c.scanRemove(sc, ed1)
					e1 := c.edge(ed1)
					c.vert(e1.V2).f = vertNew
					c.vert(e1.V1).edgeCount--
					c.vert(e1.V2).edgeCount--

					// ed2 can be closed too when it is an original
					// boundary edge of a plain loop.
					e2 := c.edge(ed2)
					if e2.f == EdgeNew && twoconnected {
						c.scanRemove(sc, ed2)
						c.vert(e2.V2).f = vertNew
						c.vert(e2.V1).edgeCount--
						c.vert(e2.V2).edgeCount--
					}

					ed3 := c.addEdge(v1, v3, polyUnset)
					e3 := c.edge(ed3)
					e3.f = EdgeInternal
					c.vert(v1).edgeCount++
					c.vert(v3).edgeCount++

					dupIdx, inserted := c.addEdgeToScanList(links, ed3)
					if !inserted {
						// ed3 already exists: drop it, and close the
						// existing edge when the loop is plain.
						c.vert(v1).edgeCount--
						c.vert(v3).edgeCount--

						sc1 := &links[dupIdx]
						for ee := sc1.first; ee != noEdge; ee = c.edge(ee).next {
							e := c.edge(ee)
							if (e.V1 == v1 && e.V2 == v3) || (e.V1 == v3 && e.V2 == v1) {
								if twoconnected {
									c.scanRemove(sc1, ee)
									c.vert(e.V1).edgeCount--
									c.vert(e.V2).edgeCount--
								}
								break
							}
						}
					}
				}
			}

			// Close edges orphaned by the bookkeeping above.
			for ed1 := sc.first; ed1 != noEdge; ed1 = nextID {
				nextID = c.edge(ed1).next
				e1 := c.edge(ed1)
				if c.vert(e1.V1).edgeCount < 2 || c.vert(e1.V2).edgeCount < 2 {
					c.scanRemove(sc, ed1)
					if c.vert(e1.V1).edgeCount > 1 {
						c.vert(e1.V1).edgeCount--
					}
					if c.vert(e1.V2).edgeCount > 1 {
						c.vert(e1.V2).edgeCount--
					}
				}
			}
		}
	}

	return int(totFace)
}
