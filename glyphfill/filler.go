package glyphfill

import (
	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"github.com/gogpu/scanfill"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"
)

// Mesh is a triangulated glyph or string. Triangles index into
// Vertices; shared boundary vertices are emitted once.
type Mesh struct {
	// Vertices are the triangle corner positions in pixels, Y up.
	Vertices []scanfill.Vec2

	// Triangles are index triples into Vertices.
	Triangles [][3]int

	// Advance is the total horizontal advance in pixels.
	Advance float64
}

// IsEmpty returns true if the mesh contains no triangles.
func (m *Mesh) IsEmpty() bool {
	return len(m.Triangles) == 0
}

// Option configures a Filler.
type Option func(*Filler)

// WithTolerance sets the curve flattening tolerance in pixels. Smaller
// values follow curves more closely and emit more triangles. Values
// that are zero or negative are ignored.
func WithTolerance(t float64) Option {
	return func(f *Filler) {
		if t > 0 {
			f.tolerance = t
		}
	}
}

// Filler triangulates glyph outlines. It keeps one scanfill arena and
// reuses it across fills, so per-glyph filling in a loop does not
// reallocate. A Filler is not safe for concurrent use.
type Filler struct {
	ctx       *scanfill.Context
	tolerance float64
	shaper    shaping.HarfbuzzShaper
}

// NewFiller creates a Filler with the given options.
func NewFiller(opts ...Option) *Filler {
	f := &Filler{
		ctx:       scanfill.New(),
		tolerance: DefaultTolerance,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// FillOutline triangulates a single outline. Empty outlines produce an
// empty mesh with the outline's advance, not an error.
func (f *Filler) FillOutline(o *Outline) (*Mesh, error) {
	mesh := f.fill(contours(o, f.tolerance))
	mesh.Advance = o.Advance
	return mesh, nil
}

// FillRune extracts the outline for r from src and triangulates it.
func (f *Filler) FillRune(src Source, r rune, size float64) (*Mesh, error) {
	o, err := src.GlyphOutline(r, size)
	if err != nil {
		return nil, err
	}
	return f.FillOutline(o)
}

// FillString shapes text through HarfBuzz and triangulates every glyph
// into one mesh, positioned on a common baseline starting at x=0.
// The base direction is detected from the text with the Unicode bidi
// algorithm, so Hebrew or Arabic input lays out right to left.
func (f *Filler) FillString(src *GoTextSource, text string, size float64) (*Mesh, error) {
	if text == "" {
		return &Mesh{}, nil
	}

	runes := []rune(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: baseDirection(text),
		Face:      font.NewFace(src.font),
		Size:      fixed.Int26_6(size * 64),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}
	output := f.shaper.Shape(input)

	var all [][]scanfill.Vec2
	var penX float64
	for _, g := range output.Glyphs {
		o, err := src.outlineByGID(g.GlyphID, size)
		if err != nil {
			return nil, err
		}
		offset := scanfill.V2(
			penX+float64(g.XOffset)/64.0,
			float64(g.YOffset)/64.0,
		)
		for _, c := range contours(o, f.tolerance) {
			for i := range c {
				c[i] = c[i].Add(offset)
			}
			all = append(all, c)
		}
		penX += float64(g.XAdvance) / 64.0
	}

	mesh := f.fill(all)
	mesh.Advance = penX
	return mesh, nil
}

// fill runs the scan fill over a set of closed contours, one island
// per contour, with hole merging on.
func (f *Filler) fill(loops [][]scanfill.Vec2) *Mesh {
	f.ctx.Reset()

	for _, loop := range loops {
		if len(loop) < 3 {
			continue
		}
		f.ctx.NextPoly()
		ids := make([]scanfill.VertexID, len(loop))
		for i, p := range loop {
			ids[i] = f.ctx.AddVertex(scanfill.V3(p.X, p.Y, 0))
		}
		for i := range ids {
			f.ctx.AddEdge(ids[i], ids[(i+1)%len(ids)])
		}
	}

	// Glyphs are flat: a fixed projection normal keeps the fill
	// deterministic regardless of contour winding.
	f.ctx.CalcNormal(
		scanfill.CalcRemoveDoubles|scanfill.CalcHoles,
		scanfill.V3(0, 0, 1),
	)
	return f.buildMesh()
}

// buildMesh copies the fill result out of the arena, deduplicating
// vertex references.
func (f *Filler) buildMesh() *Mesh {
	mesh := &Mesh{}
	remap := make(map[scanfill.VertexID]int)

	for _, face := range f.ctx.Faces() {
		var tri [3]int
		for i, id := range [3]scanfill.VertexID{face.V1, face.V2, face.V3} {
			idx, ok := remap[id]
			if !ok {
				co := f.ctx.Vertex(id).Co
				idx = len(mesh.Vertices)
				mesh.Vertices = append(mesh.Vertices, scanfill.V2(co.X, co.Y))
				remap[id] = idx
			}
			tri[i] = idx
		}
		mesh.Triangles = append(mesh.Triangles, tri)
	}
	return mesh
}

// baseDirection resolves the paragraph direction of text with the
// Unicode bidi algorithm.
func baseDirection(text string) di.Direction {
	var p bidi.Paragraph
	if _, err := p.SetString(text); err != nil {
		return di.DirectionLTR
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return di.DirectionLTR
	}
	if ordering.Direction() == bidi.RightToLeft {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// detectScript inspects the runes and returns the script of the first
// non-space character. This is a simple heuristic; for mixed-script
// text, split runs by script before shaping.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
