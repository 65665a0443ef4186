// Package pkg provides the libraries behind vecnet, a codec for vector
// networks.
//
// # Overview
//
// A vector network is a set of vertices joined by directed bezier
// segments, with regions bounded by closed loops of vertices. Design tools
// hold it in a dense form: one object per vertex and per segment, every
// field present. vecnet converts between that form and a sparse form that
// an agent can read and write cheaply:
//
//	{
//	  "vertices": "[0,0,100,0,50,100]",
//	  "regions": [{"loops": ["[0,1,2]"], "fillIndex": 0}],
//	  "fills": [[{"type": "SOLID", "color": {"r": 1, "g": 0, "b": 0}}]]
//	}
//
// Segments that a region loop already implies are dropped; the rest are
// chained into paths. Only non-zero handles, non-default vertex styles and
// distinct fill lists are kept.
//
// # Architecture
//
//	dense JSON                         sparse JSON
//	     ↓                                  ↓
//	[io] ReadNetwork                   [io] ReadSparse
//	     ↓                                  ↓
//	[pipeline] limits, cache, hooks ←→ [pipeline]
//	     ↓                                  ↓
//	[codec] Encode        ──────→      [codec] Decode
//
// # Main Packages
//
// [vector] - The dense data model: vertices, segments, regions, paints and
// the style enums, with index validation and handle conflict detection.
//
// [codec] - Encode and Decode. Decode reports malformed input with a
// field path and, for indices, the valid range.
//
// [errors] - Error codes and the structured *Error carried by codec
// failures, plus input validation helpers.
//
// [io] - JSON reading and writing for both forms.
//
// [pipeline] - Runs the codec with size limits, result caching and
// observability hooks. Used by the CLI and the tool envelope.
//
// [cache] - Result caches: file (CLI), Redis (shared) and null.
//
// [config] - TOML settings for the cache backend and input limits.
//
// [tool] - The encode_vector_network and decode_vector_network tool
// envelope served over JSON lines.
//
// [render/nodelink] - Graphviz diagrams of a network's connectivity, for
// debugging which segments become paths.
//
// [observability] - Hook interfaces for codec, cache and tool events.
package pkg
