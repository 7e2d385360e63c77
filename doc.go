// Package scanfill triangulates 2D/3D polygons with support for holes,
// islands and loose geometry, using a sweep-line method.
//
// # Overview
//
// scanfill fills one or more closed polygon loops with triangles. Input
// is a flat list of vertices plus edges describing loop connectivity;
// output is a list of triangle faces referencing the input vertices.
// The filler handles multiple disjoint or nested loops, detects holes
// automatically from winding, collapses near-coincident vertices and
// prunes dangling edge chains, which makes it suitable for real-world
// curve and font outline data.
//
// # Quick Start
//
//	import "github.com/gogpu/scanfill"
//
//	ctx := scanfill.New()
//	defer ctx.Release()
//
//	var prev, first scanfill.VertexID
//	for i, p := range points {
//		v := ctx.AddVertex(scanfill.Vec3{X: p.X, Y: p.Y})
//		if i == 0 {
//			first = v
//		} else {
//			ctx.AddEdge(prev, v)
//		}
//		prev = v
//	}
//	ctx.AddEdge(prev, first)
//
//	n := ctx.Calc(scanfill.CalcHoles | scanfill.CalcPolys)
//	for _, f := range ctx.Faces()[:n] {
//		// f.V1, f.V2, f.V3 index the vertices added above.
//	}
//
// # Arena Reuse
//
// All vertex, edge and face storage for a fill lives in an Arena and is
// released in one go. Tight loops that fill many small polygons (for
// example one fill per font glyph) can share one Arena across fills and
// call Reset between them, which clears the collections without
// releasing the backing memory:
//
//	arena := scanfill.NewArena()
//	ctx := scanfill.NewWithArena(arena)
//	for _, glyph := range glyphs {
//		addGlyphLoops(ctx, glyph)
//		ctx.Calc(flags)
//		consume(ctx.Faces())
//		ctx.Reset()
//	}
//
// Faces reference vertices by index into the same arena, so results
// must be copied out before Reset or Release.
//
// # Limitations
//
// Triangle shapes follow the sweep heuristic and are not optimized
// (this is not a constrained Delaunay triangulation). Self-intersecting
// input may produce visually incorrect but non-crashing output. The
// automatic best-fit normal is only stable for a single simple polygon;
// pass an explicit normal to CalcNormal when filling multiple unrelated
// loops in 3D.
//
// The glyphfill subpackage builds triangle meshes from font glyph
// outlines on top of this package.
package scanfill
