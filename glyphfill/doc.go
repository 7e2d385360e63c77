// Package glyphfill triangulates font glyph outlines into 2D meshes.
//
// # Overview
//
// glyphfill sits on top of the scanfill engine: it extracts vector
// outlines from a font, flattens the bezier curves into polygon
// contours and runs a hole-aware scan fill over them. The result is a
// compact triangle mesh suitable for GPU upload or geometry export.
//
// Two outline sources are provided:
//
//   - [GoTextSource] uses go-text/typesetting. It is the richer
//     backend: FillString shapes whole strings through HarfBuzz with
//     kerning, ligatures and bidi support.
//   - [SFNTSource] uses golang.org/x/image/font/sfnt. It is a small
//     dependency-light backend for per-rune fills.
//
// # Quick Start
//
//	src, err := glyphfill.NewGoTextSource(goregular.TTF)
//	if err != nil {
//		log.Fatal(err)
//	}
//	filler := glyphfill.NewFiller()
//	mesh, err := filler.FillRune(src, 'A', 64)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, tri := range mesh.Triangles {
//		// mesh.Vertices[tri[0]], mesh.Vertices[tri[1]], ...
//	}
//
// A Filler reuses one scanfill arena across fills, so filling many
// glyphs in a loop does not reallocate. A Filler is not safe for
// concurrent use; sources are.
//
// Coordinates are in pixels at the requested size with Y pointing up,
// matching font design space.
package glyphfill
