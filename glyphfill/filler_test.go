package glyphfill

import (
	"errors"
	"math"
	"testing"

	"github.com/go-text/typesetting/di"
	"github.com/gogpu/scanfill"
	"golang.org/x/image/font/gofont/goregular"
)

func newGoTextSource(t *testing.T) *GoTextSource {
	t.Helper()
	src, err := NewGoTextSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewGoTextSource() = %v", err)
	}
	return src
}

func newSFNTSource(t *testing.T) *SFNTSource {
	t.Helper()
	src, err := NewSFNTSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewSFNTSource() = %v", err)
	}
	return src
}

// meshArea sums the unsigned triangle areas of a mesh.
func meshArea(m *Mesh) float64 {
	var area float64
	for _, tri := range m.Triangles {
		a := m.Vertices[tri[0]]
		b := m.Vertices[tri[1]]
		c := m.Vertices[tri[2]]
		area += math.Abs(b.Sub(a).Cross(c.Sub(a))) / 2
	}
	return area
}

func checkMesh(t *testing.T, m *Mesh) {
	t.Helper()
	if m.IsEmpty() {
		t.Fatal("mesh is empty")
	}
	for i, tri := range m.Triangles {
		for _, idx := range tri {
			if idx < 0 || idx >= len(m.Vertices) {
				t.Fatalf("triangle %d references vertex %d, have %d vertices",
					i, idx, len(m.Vertices))
			}
		}
	}
	if area := meshArea(m); area <= 0 {
		t.Errorf("mesh area = %g, want > 0", area)
	}
}

func TestSourceOutline(t *testing.T) {
	sources := map[string]Source{
		"gotext": newGoTextSource(t),
		"sfnt":   newSFNTSource(t),
	}

	for name, src := range sources {
		t.Run(name, func(t *testing.T) {
			o, err := src.GlyphOutline('A', 64)
			if err != nil {
				t.Fatalf("GlyphOutline('A') = %v", err)
			}
			if o.IsEmpty() {
				t.Error("outline of 'A' is empty")
			}
			if o.Advance <= 0 {
				t.Errorf("advance = %g, want > 0", o.Advance)
			}
		})
	}
}

func TestGoTextOutlineOps(t *testing.T) {
	// Go Regular is TrueType: every contour must open with a MoveTo
	// and the curved glyphs must carry quadratic segments.
	o, err := newGoTextSource(t).GlyphOutline('O', 64)
	if err != nil {
		t.Fatalf("GlyphOutline('O') = %v", err)
	}
	if len(o.Segments) == 0 {
		t.Fatal("no segments extracted")
	}
	if o.Segments[0].Op != OpMoveTo {
		t.Errorf("first segment op = %v, want MoveTo", o.Segments[0].Op)
	}
	var quads int
	for _, seg := range o.Segments {
		if seg.Op == OpQuadTo {
			quads++
		}
	}
	if quads == 0 {
		t.Error("outline of 'O' has no quadratic segments")
	}
}

func TestSourceMissingGlyph(t *testing.T) {
	sources := map[string]Source{
		"gotext": newGoTextSource(t),
		"sfnt":   newSFNTSource(t),
	}

	for name, src := range sources {
		t.Run(name, func(t *testing.T) {
			// Go Regular carries no CJK coverage.
			_, err := src.GlyphOutline('中', 64)
			var fe *FontError
			if !errors.As(err, &fe) {
				t.Errorf("GlyphOutline('中') error = %v, want *FontError", err)
			}
		})
	}
}

func TestFillRune(t *testing.T) {
	filler := NewFiller()
	sources := map[string]Source{
		"gotext": newGoTextSource(t),
		"sfnt":   newSFNTSource(t),
	}

	for name, src := range sources {
		t.Run(name, func(t *testing.T) {
			// 'A' has a counter (enclosed hole), 'o' has two nested
			// contours, 'i' is two separate islands.
			for _, r := range []rune{'A', 'o', 'i'} {
				mesh, err := filler.FillRune(src, r, 64)
				if err != nil {
					t.Fatalf("FillRune(%q) = %v", r, err)
				}
				checkMesh(t, mesh)
			}
		})
	}
}

func TestFillRuneSpace(t *testing.T) {
	filler := NewFiller()
	mesh, err := filler.FillRune(newGoTextSource(t), ' ', 64)
	if err != nil {
		t.Fatalf("FillRune(' ') = %v", err)
	}
	if !mesh.IsEmpty() {
		t.Error("space glyph produced triangles")
	}
	if mesh.Advance <= 0 {
		t.Errorf("space advance = %g, want > 0", mesh.Advance)
	}
}

func TestFillRuneHoleArea(t *testing.T) {
	// The counter of 'O' must be subtracted: the filled area has to be
	// well below the outline's bounding box area.
	filler := NewFiller()
	src := newGoTextSource(t)

	mesh, err := filler.FillRune(src, 'O', 64)
	if err != nil {
		t.Fatalf("FillRune('O') = %v", err)
	}
	checkMesh(t, mesh)

	minP := scanfill.V2(math.Inf(1), math.Inf(1))
	maxP := scanfill.V2(math.Inf(-1), math.Inf(-1))
	for _, v := range mesh.Vertices {
		minP.X = math.Min(minP.X, v.X)
		minP.Y = math.Min(minP.Y, v.Y)
		maxP.X = math.Max(maxP.X, v.X)
		maxP.Y = math.Max(maxP.Y, v.Y)
	}
	bbox := (maxP.X - minP.X) * (maxP.Y - minP.Y)
	if area := meshArea(mesh); area > 0.75*bbox {
		t.Errorf("filled area %g vs bbox %g: hole does not look subtracted", area, bbox)
	}
}

func TestFillOutlineEmpty(t *testing.T) {
	filler := NewFiller()
	mesh, err := filler.FillOutline(&Outline{Advance: 10})
	if err != nil {
		t.Fatalf("FillOutline(empty) = %v", err)
	}
	if !mesh.IsEmpty() {
		t.Error("empty outline produced triangles")
	}
	if mesh.Advance != 10 {
		t.Errorf("advance = %g, want 10", mesh.Advance)
	}
}

func TestFillString(t *testing.T) {
	filler := NewFiller()
	src := newGoTextSource(t)

	mesh, err := filler.FillString(src, "Av", 32)
	if err != nil {
		t.Fatalf("FillString = %v", err)
	}
	checkMesh(t, mesh)

	single, err := filler.FillRune(src, 'A', 32)
	if err != nil {
		t.Fatalf("FillRune = %v", err)
	}
	if mesh.Advance <= single.Advance {
		t.Errorf("string advance %g not beyond single glyph advance %g",
			mesh.Advance, single.Advance)
	}
}

func TestFillStringEmpty(t *testing.T) {
	filler := NewFiller()
	mesh, err := filler.FillString(newGoTextSource(t), "", 32)
	if err != nil {
		t.Fatalf("FillString(\"\") = %v", err)
	}
	if !mesh.IsEmpty() || mesh.Advance != 0 {
		t.Errorf("empty string mesh = %d triangles, advance %g", len(mesh.Triangles), mesh.Advance)
	}
}

func TestBaseDirection(t *testing.T) {
	tests := []struct {
		name string
		text string
		want di.Direction
	}{
		{"latin", "Av", di.DirectionLTR},
		{"hebrew", "שלום", di.DirectionRTL},
		{"neutral", "123", di.DirectionLTR},
		{"empty", "", di.DirectionLTR},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := baseDirection(tt.text); got != tt.want {
				t.Errorf("baseDirection(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestFillerReuse(t *testing.T) {
	// Sequential fills share one arena; results must stay independent.
	filler := NewFiller()
	src := newGoTextSource(t)

	first, err := filler.FillRune(src, 'g', 48)
	if err != nil {
		t.Fatalf("first FillRune = %v", err)
	}
	checkMesh(t, first)
	firstCount := len(first.Triangles)

	for _, r := range "handgloves" {
		mesh, err := filler.FillRune(src, r, 48)
		if err != nil {
			t.Fatalf("FillRune(%q) = %v", r, err)
		}
		checkMesh(t, mesh)
	}

	again, err := filler.FillRune(src, 'g', 48)
	if err != nil {
		t.Fatalf("repeat FillRune = %v", err)
	}
	if len(again.Triangles) != firstCount {
		t.Errorf("repeat fill of 'g' gave %d triangles, first gave %d",
			len(again.Triangles), firstCount)
	}
}

func TestWithTolerance(t *testing.T) {
	src := newGoTextSource(t)

	coarse, err := NewFiller(WithTolerance(2)).FillRune(src, 'o', 64)
	if err != nil {
		t.Fatalf("coarse FillRune = %v", err)
	}
	fine, err := NewFiller(WithTolerance(0.02)).FillRune(src, 'o', 64)
	if err != nil {
		t.Fatalf("fine FillRune = %v", err)
	}
	if len(fine.Triangles) <= len(coarse.Triangles) {
		t.Errorf("fine tolerance gave %d triangles, coarse %d; want more",
			len(fine.Triangles), len(coarse.Triangles))
	}

	// Invalid tolerances fall back to the default.
	f := NewFiller(WithTolerance(-1))
	if f.tolerance != DefaultTolerance {
		t.Errorf("tolerance = %g, want default %g", f.tolerance, DefaultTolerance)
	}
}

func TestOpString(t *testing.T) {
	tests := []struct {
		op     Op
		expect string
	}{
		{OpMoveTo, "MoveTo"},
		{OpLineTo, "LineTo"},
		{OpQuadTo, "QuadTo"},
		{OpCubeTo, "CubeTo"},
		{Op(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.expect {
			t.Errorf("Op(%d).String() = %q, want %q", tt.op, got, tt.expect)
		}
	}
}

func TestFontError(t *testing.T) {
	err := &FontError{Reason: "test error"}
	expected := "glyphfill: test error"
	if err.Error() != expected {
		t.Errorf("FontError.Error() = %v, want %v", err.Error(), expected)
	}
}
