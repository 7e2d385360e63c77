package glyphfill

import "github.com/gogpu/scanfill"

// Op is the type of outline path operation.
type Op uint8

const (
	// OpMoveTo starts a new contour at the target point.
	OpMoveTo Op = iota

	// OpLineTo draws a line to the target point.
	OpLineTo

	// OpQuadTo draws a quadratic bezier curve.
	OpQuadTo

	// OpCubeTo draws a cubic bezier curve.
	OpCubeTo
)

// String returns a string representation of the operation.
func (op Op) String() string {
	switch op {
	case OpMoveTo:
		return "MoveTo"
	case OpLineTo:
		return "LineTo"
	case OpQuadTo:
		return "QuadTo"
	case OpCubeTo:
		return "CubeTo"
	default:
		return "Unknown"
	}
}

// Segment is one operation of a glyph outline path.
type Segment struct {
	// Op is the segment operation type.
	Op Op

	// Points contains the control and end points for this segment.
	//   - MoveTo: Points[0] is the target point
	//   - LineTo: Points[0] is the target point
	//   - QuadTo: Points[0] is control, Points[1] is target
	//   - CubeTo: Points[0], Points[1] are controls, Points[2] is target
	Points [3]scanfill.Vec2
}

// Outline is the vector outline of one glyph, already scaled to the
// requested size. Contours are opened by OpMoveTo and implicitly
// closed by the next OpMoveTo or the end of the segment list.
type Outline struct {
	// Segments is the list of path segments that make up the outline.
	Segments []Segment

	// Advance is the horizontal advance width of the glyph in pixels.
	Advance float64

	// GID is the font glyph id this outline came from.
	GID uint32
}

// IsEmpty returns true if the outline has no segments. Whitespace
// glyphs typically have an advance but no segments.
func (o *Outline) IsEmpty() bool {
	return len(o.Segments) == 0
}

// Source extracts glyph outlines from a font. Implementations must be
// safe for concurrent use.
type Source interface {
	// GlyphOutline returns the outline for r scaled to size pixels per
	// em. Runes without a glyph return a *FontError.
	GlyphOutline(r rune, size float64) (*Outline, error)
}

// FontError represents a font-related error.
type FontError struct {
	Reason string
}

func (e *FontError) Error() string {
	return "glyphfill: " + e.Reason
}
