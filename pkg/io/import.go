package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/vecnet/pkg/codec"
	"github.com/matzehuels/vecnet/pkg/vector"
)

// ReadSparse decodes one sparse network document from r.
//
// Only the JSON envelope is checked here. The embedded strings (vertices,
// loops, paths, handles) are parsed by [codec.Decode], which reports field
// level errors. ReadSparse does not close r.
func ReadSparse(r io.Reader) (codec.Sparse, error) {
	var s codec.Sparse
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return codec.Sparse{}, fmt.Errorf("decode: %w", err)
	}
	return s, nil
}

// ReadNetwork decodes one dense network document from r.
//
// The input has the shape
//
//	{
//	  "vertices": [{"x": 0, "y": 0}, {"x": 10, "y": 0}],
//	  "segments": [{"start": 0, "end": 1}],
//	  "regions":  [{"loops": [[0, 1]], "windingRule": "EVENODD"}]
//	}
//
// Missing tangents are zero and missing style fields take their defaults.
// ReadNetwork does not check indices; call [vector.Network.Validate] before
// encoding untrusted input.
func ReadNetwork(r io.Reader) (vector.Network, error) {
	var n vector.Network
	if err := json.NewDecoder(r).Decode(&n); err != nil {
		return vector.Network{}, fmt.Errorf("decode: %w", err)
	}
	for i, v := range n.Vertices {
		n.Vertices[i] = v.Normalize()
	}
	for i, reg := range n.Regions {
		n.Regions[i].WindingRule = reg.WindingRule.OrDefault()
	}
	return n, nil
}

// ImportNetwork reads a dense network from the JSON file at path.
func ImportNetwork(path string) (vector.Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return vector.Network{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadNetwork(f)
}

// ImportSparse reads a sparse network from the JSON file at path.
func ImportSparse(path string) (codec.Sparse, error) {
	f, err := os.Open(path)
	if err != nil {
		return codec.Sparse{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadSparse(f)
}
