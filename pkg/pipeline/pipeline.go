// Package pipeline runs the vector network codec over JSON documents.
//
// This package wraps [codec.Encode] and [codec.Decode] with everything a
// caller needs around them: input size limits, index validation, result
// caching, logging and observability hooks. The CLI and the tool envelope
// both go through a [Runner], so limits and caching behave the same
// everywhere.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	res, err := runner.Encode(ctx, denseJSON)
//	if err != nil {
//	    return errors.UserMessage(err)
//	}
//	os.Stdout.Write(res.Data)
//
// Decode works the same way on sparse documents:
//
//	res, err := runner.Decode(ctx, sparseJSON)
//
// # Caching
//
// Results are stored under a key derived from the SHA-256 of the
// re-serialized input, so formatting differences in the input JSON do not
// defeat the cache. Handle conflict warnings are cached with the encode
// result and replayed on a hit.
package pipeline

import (
	"time"

	"github.com/matzehuels/vecnet/pkg/codec"
	"github.com/matzehuels/vecnet/pkg/vector"
)

// Format constants for topology renders.
const (
	FormatDOT = "dot"
	FormatSVG = "svg"
)

// ValidFormats is the set of supported topology render formats.
var ValidFormats = map[string]bool{
	FormatDOT: true,
	FormatSVG: true,
}

// Stats describes the size of one codec run.
type Stats struct {
	Vertices    int
	Segments    int
	Regions     int
	Paths       int
	Handles     int
	Fills       int
	InputBytes  int
	OutputBytes int
	Duration    time.Duration
}

// Ratio returns OutputBytes/InputBytes, or 0 for empty input.
func (s Stats) Ratio() float64 {
	if s.InputBytes == 0 {
		return 0
	}
	return float64(s.OutputBytes) / float64(s.InputBytes)
}

// EncodeResult is the outcome of [Runner.Encode].
type EncodeResult struct {
	Sparse   codec.Sparse
	Data     []byte   // Sparse as JSON
	Warnings []string // handle conflicts reported by the encoder
	Stats    Stats
	CacheHit bool
}

// DecodeResult is the outcome of [Runner.Decode].
type DecodeResult struct {
	Network  vector.Network
	Data     []byte // Network as JSON
	Stats    Stats
	CacheHit bool
}

// RoundtripResult is the outcome of [Runner.Roundtrip].
type RoundtripResult struct {
	First  codec.Sparse // encoding of the input
	Second codec.Sparse // encoding of the decoded first encoding

	// Stable reports whether both encodings are identical.
	Stable bool

	// Conflicts lists vertices whose handles the sparse form cannot hold
	// exactly. A network without conflicts decodes to an equivalent one.
	Conflicts []vector.HandleConflict

	Stats Stats
}

func sparseStats(s codec.Sparse) Stats {
	return Stats{
		Regions: len(s.Regions),
		Paths:   len(s.Paths),
		Handles: len(s.Handles),
		Fills:   len(s.Fills),
	}
}
