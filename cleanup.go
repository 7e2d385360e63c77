package scanfill

// maxVertexDegree is the ceiling on edges per vertex. Beyond it the
// later pruning passes could no longer guarantee termination, so the
// whole fill aborts.
const maxVertexDegree = 250

// countDegreesChecked accumulates per-vertex edge degrees, aborting if
// any vertex would exceed maxVertexDegree.
func (c *Context) countDegreesChecked() bool {
	verts := c.arena.verts
	edges := c.arena.edges
	for i := range edges {
		v1 := &verts[edges[i].V1]
		if v1.edgeCount > maxVertexDegree {
			Logger().Warn("scanfill: vertex degree ceiling exceeded, aborting fill",
				"limit", maxVertexDegree)
			return false
		}
		v1.edgeCount++
		v2 := &verts[edges[i].V2]
		if v2.edgeCount > maxVertexDegree {
			Logger().Warn("scanfill: vertex degree ceiling exceeded, aborting fill",
				"limit", maxVertexDegree)
			return false
		}
		v2.edgeCount++
	}
	return true
}

// boundInsideEdgeVert reports whether vert v lies inside the bounding
// box of edge e.
func (c *Context) boundInsideEdgeVert(e *Edge, v *Vertex) bool {
	minX, maxX := c.vert(e.V1).xy.X, c.vert(e.V2).xy.X
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	if v.xy.X >= minX && v.xy.X <= maxX {
		minY, maxY := c.vert(e.V1).xy.Y, c.vert(e.V2).xy.Y
		if minY > maxY {
			minY, maxY = maxY, minY
		}
		if v.xy.Y >= minY && v.xy.Y <= maxY {
			return true
		}
	}
	return false
}

// insertNearEdgeVerts repairs near-miss topology: each dangling vertex
// (degree exactly 1) is snapped onto a coincident vertex, or spliced
// into the nearest edge of its island when it sits within epsilon of
// it. Such gaps are common in font outlines and hand-drawn curves.
func (c *Context) insertNearEdgeVerts() {
	for vi := range c.arena.verts {
		eve := VertexID(vi)
		if c.vert(eve).edgeCount != 1 {
			continue
		}

		// Find the edge using this vertex and point its V2 at it.
		ed1 := noEdge
		for j := range c.arena.edges {
			e := &c.arena.edges[j]
			if e.V1 == eve || e.V2 == eve {
				ed1 = EdgeID(j)
				break
			}
		}
		if ed1 == noEdge {
			continue
		}
		if c.edge(ed1).V1 == eve {
			e := c.edge(ed1)
			e.V1, e.V2 = e.V2, e.V1
		}

		for j := range c.arena.edges {
			eed := EdgeID(j)
			e := c.edge(eed)
			if eve == e.V1 || eve == e.V2 || c.vert(eve).polyNr != e.polyNr {
				continue
			}
			if c.vert(eve).xy.Approx(c.vert(e.V1).xy, epsilon) {
				c.edge(ed1).V2 = e.V1
				c.vert(e.V1).edgeCount++
				c.vert(eve).edgeCount = 0
				break
			}
			if c.vert(eve).xy.Approx(c.vert(e.V2).xy, epsilon) {
				c.edge(ed1).V2 = e.V2
				c.vert(e.V2).edgeCount++
				c.vert(eve).edgeCount = 0
				break
			}
			if c.boundInsideEdgeVert(e, c.vert(eve)) {
				dist := distSquaredToLine(c.vert(e.V1).xy, c.vert(e.V2).xy, c.vert(eve).xy)
				if dist < epsilonSq {
					// Splice: new edge from the edge's upper end to the
					// dangling vertex, then redirect the edge onto it.
					c.addEdge(c.edge(eed).V1, eve, c.edge(eed).polyNr)
					c.edge(eed).V1 = eve
					c.vert(eve).edgeCount = 3
					break
				}
			}
		}
	}
}

// pruneLooseEdges iteratively removes edges with a degree-1 endpoint,
// alternating scan direction each pass, until no dangling chains are
// left.
func (c *Context) pruneLooseEdges() {
	verts := c.arena.verts
	edges := c.arena.edges

	toggle := 0
	ok := true
	for ok {
		ok = false
		toggle++
		for j := range edges {
			i := j
			if toggle&1 == 0 {
				i = len(edges) - 1 - j
			}
			e := &edges[i]
			if e.removed {
				continue
			}
			if verts[e.V1].edgeCount == 1 {
				verts[e.V2].edgeCount--
				verts[e.V1].removed = true
				e.removed = true
				ok = true
			} else if verts[e.V2].edgeCount == 1 {
				verts[e.V1].edgeCount--
				verts[e.V2].removed = true
				e.removed = true
				ok = true
			}
		}
	}
}
