package scanfill

// Fill epsilons. Zero-length detection and the near-edge distance test
// are the only epsilon-based comparisons in the engine; every other
// geometric tie-break uses exact floating point equality so that
// results are deterministic for a fixed input order.
const (
	epsilon   = 0.00003
	epsilonSq = epsilon * epsilon
)

// Vertex status values.
const (
	vertNew       = 0 // all new vertices start with this
	vertAvailable = 1 // referenced by at least one edge
	vertZeroLen   = 2 // collapsed into another vertex during doubles removal
)

// Edge status values. Callers may inspect Status after a fill to tell
// original boundary edges from diagonals the sweep synthesized.
const (
	// EdgeNew marks edges supplied by the caller.
	EdgeNew uint8 = 0
	// EdgeInternal marks diagonal edges created while scan-filling.
	EdgeInternal uint8 = 2
)

// Island status values.
const (
	polyNew   = 0 // plain loop, no vertex touches more than two edges
	polyValid = 1 // has at least one vertex with three or more edges
)

// polyUnset means no island id has been assigned yet.
const polyUnset uint16 = 0xffff

// Flags control which optional passes Calc runs.
type Flags uint8

const (
	// CalcRemoveDoubles collapses vertices whose projected positions
	// coincide exactly, redirecting their edges to one representative.
	CalcRemoveDoubles Flags = 1 << iota

	// CalcPolys partitions the input into connected islands before
	// sweeping. Without it (and without caller pre-assignment through
	// NextPoly) the whole input is treated as a single polygon.
	CalcPolys

	// CalcHoles merges islands with overlapping bounds so the sweep can
	// detect reverse-wound inner loops as holes.
	CalcHoles

	// CalcLoose removes zero-area whiskers: dangling vertices are
	// spliced onto near-coincident edges where possible, then chains of
	// degree-1 edges are pruned entirely.
	CalcLoose
)

// VertexID identifies a vertex within one fill session.
type VertexID int32

// EdgeID identifies an edge within one fill session.
type EdgeID int32

// noEdge marks an empty link in the per-vertex open edge lists.
const noEdge EdgeID = -1

// Vertex is a fill input point. Co is the caller-supplied coordinate
// and is never modified; xy is its projection onto the fill plane.
type Vertex struct {
	// Co is the input coordinate. 2D callers leave Z zero.
	Co Vec3

	// Tag is an opaque caller slot, passed through untouched.
	Tag any

	xy        Vec2
	polyNr    uint16
	edgeCount int
	f         uint8
	removed   bool
}

// Edge connects two vertices. Edges are undirected for connectivity;
// the sweep canonicalizes endpoint order internally.
type Edge struct {
	// V1 and V2 are the endpoints. After a fill with CalcRemoveDoubles
	// they may differ from the IDs passed to AddEdge if an endpoint was
	// collapsed into a coincident vertex.
	V1, V2 VertexID

	// Tag is an opaque caller slot, passed through untouched.
	Tag any

	polyNr  uint16
	f       uint8
	removed bool

	// Open-edge list links, only meaningful while an edge sits in a
	// scan vertex's open list during the sweep.
	next, prev EdgeID
}

// Status reports whether the edge was supplied by the caller (EdgeNew)
// or synthesized by the sweep (EdgeInternal).
func (e *Edge) Status() uint8 { return e.f }

// Face is an output triangle: three vertex references, no edges.
type Face struct {
	V1, V2, V3 VertexID
}

// Arena owns all vertex, edge and face storage for fill sessions.
// It can be shared across many sequential fills to avoid reallocating;
// Clear resets the collections but keeps the backing memory. An Arena
// performs no locking; callers sharing one must serialize access.
type Arena struct {
	verts []Vertex
	edges []Edge
	faces []Face
}

// NewArena creates an empty arena for use with NewWithArena.
func NewArena() *Arena {
	return &Arena{}
}

// Clear empties the arena without releasing backing memory.
func (a *Arena) Clear() {
	a.verts = a.verts[:0]
	a.edges = a.edges[:0]
	a.faces = a.faces[:0]
}

// Context is one polygon fill session. Create one with New or
// NewWithArena, add vertices and edges, run Calc, then read Faces.
// A Context is single-threaded; concurrent fills need separate
// contexts with separate arenas.
type Context struct {
	arena  *Arena
	owned  bool
	polyNr uint16

	// Zero-length collapse redirect table, shared by all islands
	// within one Calc when doubles removal is on.
	zeroTmp []VertexID
}

// New starts a fill session with its own arena.
func New() *Context {
	c := NewWithArena(NewArena())
	c.owned = true
	return c
}

// NewWithArena starts a fill session on a caller-owned arena, enabling
// cheap reuse across repeated fills (see the package example). The
// arena must be empty or Cleared.
func NewWithArena(a *Arena) *Context {
	return &Context{arena: a, polyNr: polyUnset}
}

// AddVertex appends a vertex and returns its stable id.
// The id is valid until Release or Reset.
func (c *Context) AddVertex(co Vec3) VertexID {
	id := VertexID(len(c.arena.verts))
	c.arena.verts = append(c.arena.verts, Vertex{
		Co:     co,
		polyNr: c.polyNr,
		f:      vertNew,
	})
	return id
}

// AddEdge appends an edge between two previously added vertices and
// returns its stable id. Both vertices must come from AddVertex on the
// same context; anything else is a caller contract violation.
func (c *Context) AddEdge(v1, v2 VertexID) EdgeID {
	return c.addEdge(v1, v2, c.polyNr)
}

func (c *Context) addEdge(v1, v2 VertexID, polyNr uint16) EdgeID {
	id := EdgeID(len(c.arena.edges))
	c.arena.edges = append(c.arena.edges, Edge{
		V1:     v1,
		V2:     v2,
		polyNr: polyNr,
		f:      EdgeNew,
		next:   noEdge,
		prev:   noEdge,
	})
	return id
}

// NextPoly advances the island id assigned to subsequently added
// vertices and edges. Callers that already know their loop structure
// (one NextPoly per loop) skip the connectivity flood-fill inside Calc
// even without CalcPolys.
func (c *Context) NextPoly() {
	if c.polyNr == polyUnset {
		c.polyNr = 0
	} else {
		c.polyNr++
	}
}

// Vertex returns the vertex record for id. The pointer is valid until
// the next AddVertex, Reset or Release.
func (c *Context) Vertex(id VertexID) *Vertex {
	return &c.arena.verts[id]
}

// Edge returns the edge record for id. The pointer is valid until the
// next AddEdge, Calc, Reset or Release.
func (c *Context) Edge(id EdgeID) *Edge {
	return &c.arena.edges[id]
}

// Faces returns the triangles produced by Calc. The slice and the
// vertex ids inside it are valid until Reset or Release; copy out
// anything needed beyond that.
func (c *Context) Faces() []Face {
	return c.arena.faces
}

// Release ends the session and drops all storage. A context created
// with NewWithArena detaches from the arena without clearing it.
func (c *Context) Release() {
	if c.owned && c.arena != nil {
		c.arena.verts = nil
		c.arena.edges = nil
		c.arena.faces = nil
	}
	c.arena = nil
}

// Reset ends the current fill but keeps the arena's backing memory for
// the next one. This is the fast path for tight loops such as
// per-glyph fills.
func (c *Context) Reset() {
	c.arena.Clear()
	c.polyNr = polyUnset
}

func (c *Context) vert(id VertexID) *Vertex {
	return &c.arena.verts[id]
}

func (c *Context) edge(id EdgeID) *Edge {
	return &c.arena.edges[id]
}

func (c *Context) addFace(v1, v2, v3 VertexID) {
	// Does not make edges.
	c.arena.faces = append(c.arena.faces, Face{V1: v1, V2: v2, V3: v3})
}
