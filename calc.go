package scanfill

// Calc triangulates the current input and returns the number of
// triangles appended to Faces. It returns 0 for every degenerate,
// empty or over-bound condition; there is no error channel.
//
// The projection normal is computed from the input with Newell's
// method, which is only stable for a single simple polygon. Use
// CalcNormal with an explicit normal when filling multiple unrelated
// loops in 3D.
func (c *Context) Calc(flags Flags) int {
	return c.calc(flags, Vec3{}, false)
}

// CalcNormal is Calc with an explicit projection plane normal.
// A zero-length normal yields 0 triangles.
func (c *Context) CalcNormal(flags Flags, normal Vec3) int {
	return c.calc(flags, normal, true)
}

func (c *Context) calc(flags Flags, norProj Vec3, hasNormal bool) int {
	verts := c.arena.verts
	edges := c.arena.edges

	// Flag vertices that are referenced by edges; anything else can
	// never contribute to a fill.
	for i := range edges {
		verts[edges[i].V1].f = vertAvailable
		verts[edges[i].V2].f = vertAvailable
	}

	vertAvailableFound := false
	for i := range verts {
		if verts[i].f == vertAvailable {
			vertAvailableFound = true
			break
		}
	}
	if !vertAvailableFound {
		return 0
	}

	var n Vec3
	if hasNormal {
		n = norProj
	} else {
		// Best-fit plane normal via Newell's method, skipping
		// consecutive near-duplicate points. Order dependent: only
		// gives a stable direction for a single simple polygon.
		vPrev := verts[len(verts)-1].Co
		for i := range verts {
			if !vPrev.Approx(verts[i].Co, epsilon) {
				addNewellCross(&n, vPrev, verts[i].Co)
				vPrev = verts[i].Co
			}
		}
	}

	n = n.Normalize()
	if n == (Vec3{}) {
		return 0
	}

	// 2D basis from the negated dominant axis of the normal.
	basisU, basisV := orthoBasis(n.Neg())

	// STEP 1: count islands and project every vertex into the plane.
	poly := uint16(0)
	if c.polyNr != polyUnset {
		poly = c.polyNr + 1
		c.polyNr = polyUnset
	}

	switch {
	case flags&CalcPolys != 0 && poly == 0:
		for i := range verts {
			verts[i].xy = project(verts[i].Co, basisU, basisV)

			// Flood-fill an island id from the first unset vertex,
			// alternating scan direction each pass to avoid worst-case
			// behavior on pathological edge orderings.
			if verts[i].polyNr == polyUnset {
				verts[i].polyNr = poly
				toggle := 0
				ok := true
				for ok {
					ok = false
					toggle++
					for j := range edges {
						e := &edges[j]
						if toggle&1 == 0 {
							e = &edges[len(edges)-1-j]
						}
						switch {
						case verts[e.V1].polyNr == polyUnset && verts[e.V2].polyNr == poly:
							verts[e.V1].polyNr = poly
							e.polyNr = poly
							ok = true
						case verts[e.V2].polyNr == polyUnset && verts[e.V1].polyNr == poly:
							verts[e.V2].polyNr = poly
							e.polyNr = poly
							ok = true
						case e.polyNr == polyUnset:
							if verts[e.V1].polyNr == poly && verts[e.V2].polyNr == poly {
								e.polyNr = poly
								ok = true
							}
						}
					}
				}
				poly++
			}
		}
	case poly != 0:
		// Island ids were pre-assigned by the caller through NextPoly.
		for i := range verts {
			verts[i].xy = project(verts[i].Co, basisU, basisV)
		}
	default:
		// Polygon computation disabled: the whole input is one island.
		poly = 1
		for i := range verts {
			verts[i].xy = project(verts[i].Co, basisU, basisV)
			verts[i].polyNr = 0
		}
		for i := range edges {
			edges[i].polyNr = 0
		}
	}

	// STEP 2: per-vertex edge degrees, optionally removing loose
	// geometry (whiskers and dangling chains).
	if flags&CalcLoose != 0 {
		if !c.countDegreesChecked() {
			return 0
		}
		c.insertNearEdgeVerts()
		c.pruneLooseEdges()

		liveEdges := false
		for i := range c.arena.edges {
			if !c.arena.edges[i].removed {
				liveEdges = true
				break
			}
		}
		if !liveEdges {
			// Everything was dangling.
			return 0
		}
	} else {
		for i := range edges {
			verts[edges[i].V1].edgeCount++
			verts[edges[i].V2].edgeCount++
		}
	}

	// STEP 3: per-island counts and bounding boxes.
	pflist := c.buildPolyFills(poly)

	// STEP 4: merge islands with overlapping bounds so the sweep can
	// find holes by winding within one connected set.
	if flags&CalcHoles != 0 && poly > 1 {
		c.mergeOverlappingPolys(pflist)
	}

	// STEP 5: sweep-fill each remaining island.
	if flags&CalcRemoveDoubles != 0 {
		c.zeroTmp = make([]VertexID, len(c.arena.verts))
		for i := range c.zeroTmp {
			c.zeroTmp[i] = noVertex
		}
	}

	totFaces := 0
	for i := range pflist {
		if pflist[i].edges > 1 {
			totFaces += c.sweepFill(&pflist[i], flags)
		}
	}

	Logger().Debug("scanfill: calc done",
		"islands", len(pflist), "faces", totFaces)

	return totFaces
}
