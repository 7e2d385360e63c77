package glyphfill

import (
	"bytes"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/gogpu/scanfill"
)

// GoTextSource extracts glyph outlines through go-text/typesetting.
// It is the backend behind [Filler.FillString], which shapes whole
// strings via HarfBuzz before filling.
//
// GoTextSource is safe for concurrent use: the parsed font.Font is
// read-only, and the per-call font.Face instances (which are NOT
// concurrent-safe) are created fresh for each extraction. font.NewFace
// is cheap, it wraps the shared *Font and initializes glyph caches.
type GoTextSource struct {
	font *font.Font
	upem float64
}

// NewGoTextSource parses TTF or OTF font data.
func NewGoTextSource(data []byte) (*GoTextSource, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return &GoTextSource{
		font: face.Font,
		upem: float64(face.Font.Upem()),
	}, nil
}

// GlyphOutline implements the Source interface.
func (s *GoTextSource) GlyphOutline(r rune, size float64) (*Outline, error) {
	gid, ok := s.font.NominalGlyph(r)
	if !ok {
		return nil, &FontError{Reason: "no glyph for rune"}
	}
	return s.outlineByGID(gid, size)
}

// outlineByGID extracts and scales the outline for one glyph id.
func (s *GoTextSource) outlineByGID(gid font.GID, size float64) (*Outline, error) {
	face := font.NewFace(s.font)
	scale := size / s.upem

	outline := &Outline{
		GID:     uint32(gid),
		Advance: float64(face.HorizontalAdvance(gid)) * scale,
	}

	data, ok := face.GlyphData(gid).(font.GlyphOutline)
	if !ok {
		// Bitmap and SVG glyphs carry no vector outline to fill.
		// Whitespace also lands here in some fonts; treat both as an
		// empty outline rather than an error.
		return outline, nil
	}

	pt := func(p font.SegmentPoint) scanfill.Vec2 {
		return scanfill.V2(float64(p.X)*scale, float64(p.Y)*scale)
	}

	for _, seg := range data.Segments {
		var out Segment
		switch seg.Op {
		case ot.SegmentOpMoveTo:
			out.Op = OpMoveTo
			out.Points[0] = pt(seg.Args[0])
		case ot.SegmentOpLineTo:
			out.Op = OpLineTo
			out.Points[0] = pt(seg.Args[0])
		case ot.SegmentOpQuadTo:
			out.Op = OpQuadTo
			out.Points[0] = pt(seg.Args[0])
			out.Points[1] = pt(seg.Args[1])
		case ot.SegmentOpCubeTo:
			out.Op = OpCubeTo
			out.Points[0] = pt(seg.Args[0])
			out.Points[1] = pt(seg.Args[1])
			out.Points[2] = pt(seg.Args[2])
		default:
			continue
		}
		outline.Segments = append(outline.Segments, out)
	}
	return outline, nil
}
