// Package vector defines the dense vector network: the fully explicit
// graph form of a vector shape's geometry as the host editor exposes it.
//
// # Overview
//
// A [Network] has three parts:
//
//   - Vertices: points with per-vertex styling (corner radius, stroke cap
//     and join, handle mirroring). A vertex is identified by its index.
//   - Segments: directed edges between two vertices, each with a bezier
//     handle at either end. Zero handles give straight lines.
//   - Regions: filled closed areas. Each region lists one or more loops of
//     vertex indices (outer boundary first, then holes), a winding rule and
//     an optional fill list.
//
// Every edge of a region loop, including the one closing the loop, is
// expected to exist as a segment. Segments that belong to no loop form
// open paths.
//
// # Basic Usage
//
//	n := vector.Network{
//	    Vertices: []vector.Vertex{
//	        vector.NewVertex(0, 0),
//	        vector.NewVertex(100, 0),
//	        vector.NewVertex(50, 100),
//	    },
//	    Segments: []vector.Segment{
//	        vector.Line(0, 1), vector.Line(1, 2), vector.Line(2, 0),
//	    },
//	    Regions: []vector.Region{{Loops: [][]int{{0, 1, 2}}}},
//	}
//	if err := n.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Defaults
//
// Style enums use empty strings to mean "default" so that hand-built
// networks stay short. [NewVertex] and [Vertex.Normalize] spell the
// defaults out, which is the form the codec's decoder produces.
//
// # Fills
//
// [Paint] is an opaque JSON object owned by the host. This package never
// inspects paint content; the codec's palette compares paints by their
// canonical JSON form.
//
// # Concurrency
//
// A Network is a value. Methods never modify the receiver, and [Network.Clone]
// gives an independent copy for callers that want to mutate one.
package vector
