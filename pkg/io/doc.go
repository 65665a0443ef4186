// Package io reads and writes vector networks as JSON documents.
//
// # Overview
//
// Two document kinds are supported:
//
//   - Dense networks ([vector.Network]): the form a host hands to the
//     codec, with explicit vertices, segments and regions.
//   - Sparse networks ([codec.Sparse]): the compact wire form produced by
//     [codec.Encode].
//
// # Dense Format
//
//	{
//	  "vertices": [
//	    {"x": 0, "y": 0},
//	    {"x": 100, "y": 0, "cornerRadius": 4},
//	    {"x": 50, "y": 100}
//	  ],
//	  "segments": [
//	    {"start": 0, "end": 1},
//	    {"start": 1, "end": 2, "tangentStart": {"x": 10, "y": 0}},
//	    {"start": 2, "end": 0}
//	  ],
//	  "regions": [
//	    {"loops": [[0, 1, 2]], "fills": [{"type": "SOLID", "color": {"r": 1, "g": 0, "b": 0}}]}
//	  ]
//	}
//
// Style fields and tangents may be omitted; they take their defaults.
//
// # Sparse Format
//
// See the [codec] package for the sparse layout. Reading a sparse
// document only checks the JSON envelope; the embedded strings are
// validated by [codec.Decode].
//
// # Files
//
// [ImportNetwork], [ImportSparse], [ExportNetwork] and [ExportSparse] wrap
// the reader and writer functions with file handling. Errors carry the
// path for context.
//
// # Concurrency
//
// Every function works on its own values and is safe to call
// concurrently.
package io
