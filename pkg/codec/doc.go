// Package codec converts vector networks between their dense form
// ([vector.Network]) and a compact sparse wire form ([Sparse]).
//
// # Overview
//
// The dense form spells out every segment and every style field. The
// sparse form is what travels inside tool payloads:
//
//	{
//	  "vertices": "[0,0,100,0,50,100]",
//	  "regions": [{"loops": ["[0,1,2]"], "fillIndex": 0}],
//	  "paths": ["[2,3]"],
//	  "handles": {"1": "[0,0,10,0]"},
//	  "vertexProps": {"2": {"cornerRadius": 4}},
//	  "fills": [[{"type": "SOLID", "color": {"r": 1, "g": 0, "b": 0}}]]
//	}
//
// Vertices, loops, paths and handle values are JSON documents embedded as
// strings. Fields at their default value are left out, and repeated fill
// lists are stored once in a palette.
//
// # Encoding
//
// [Encode] works in one pass:
//
//  1. Vertex coordinates are flattened into one string.
//  2. Each region's loops become index strings; NONZERO winding is
//     omitted; fill lists are deduplicated through the palette.
//  3. Segments not implied by any loop edge are traced into maximal open
//     paths, taking candidates in input order so output is stable.
//  4. Tangents of all segments are folded into per-vertex in/out handles.
//  5. Non-default vertex styling goes into vertexProps.
//
// Segments are not stored explicitly: a loop implies one segment per
// consecutive pair plus the closing pair, a path one per consecutive pair.
//
// # Decoding
//
// [Decode] reverses the process and validates as it goes. Failures are
// reported with the offending field, value and valid range:
//
//	INVALID_SHAPE: vertices: expected an even number of coordinates (x,y pairs), got 5
//	OUT_OF_RANGE: regions[0].loops[0]: vertex index 5 out of range (valid range 0-1)
//
// # Handles
//
// The sparse form keeps one incoming and one outgoing handle per vertex. A
// network where two segments give the same side of a vertex different
// tangents cannot be represented exactly; the encoder keeps the later
// segment's value and reports the conflict through [Options.Warn].
//
// # Concurrency
//
// Both directions are pure functions of their input. Nothing is shared
// between calls, so they are safe to run concurrently.
package codec
