package glyphfill

import (
	"sync"

	"github.com/gogpu/scanfill"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// SFNTSource extracts glyph outlines through golang.org/x/image's sfnt
// parser. It has no shaping support: use it for per-rune fills where
// kerning and ligatures do not matter.
//
// SFNTSource is safe for concurrent use. sfnt.Font methods need a
// scratch sfnt.Buffer which is not concurrent-safe, so extraction is
// serialized with a mutex.
type SFNTSource struct {
	font *sfnt.Font

	mu  sync.Mutex
	buf sfnt.Buffer
}

// NewSFNTSource parses TTF or OTF font data.
func NewSFNTSource(data []byte) (*SFNTSource, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, err
	}
	return &SFNTSource{font: f}, nil
}

// GlyphOutline implements the Source interface.
//
// sfnt reports outlines in device space with Y pointing down; the
// result is mirrored to the Y-up convention used by Outline.
func (s *SFNTSource) GlyphOutline(r rune, size float64) (*Outline, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	gid, err := s.font.GlyphIndex(&s.buf, r)
	if err != nil {
		return nil, err
	}
	if gid == 0 {
		return nil, &FontError{Reason: "no glyph for rune"}
	}

	ppem := fixed.Int26_6(size * 64)
	segs, err := s.font.LoadGlyph(&s.buf, gid, ppem, nil)
	if err != nil {
		return nil, err
	}

	outline := &Outline{GID: uint32(gid)}
	if advance, err := s.font.GlyphAdvance(&s.buf, gid, ppem, xfont.HintingNone); err == nil {
		outline.Advance = float64(advance) / 64.0
	}

	pt := func(p fixed.Point26_6) scanfill.Vec2 {
		return scanfill.V2(float64(p.X)/64.0, -float64(p.Y)/64.0)
	}

	for _, seg := range segs {
		var out Segment
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			out.Op = OpMoveTo
			out.Points[0] = pt(seg.Args[0])
		case sfnt.SegmentOpLineTo:
			out.Op = OpLineTo
			out.Points[0] = pt(seg.Args[0])
		case sfnt.SegmentOpQuadTo:
			out.Op = OpQuadTo
			out.Points[0] = pt(seg.Args[0])
			out.Points[1] = pt(seg.Args[1])
		case sfnt.SegmentOpCubeTo:
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
