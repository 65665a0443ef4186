package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/vecnet/pkg/codec"
	"github.com/matzehuels/vecnet/pkg/vector"
)

// WriteSparse encodes s as indented JSON and writes it to w.
// The output can be read back with [ReadSparse].
func WriteSparse(s codec.Sparse, w io.Writer) error {
	return writeJSON(s, w)
}

// WriteNetwork encodes n as indented JSON and writes it to w.
// The output can be read back with [ReadNetwork].
func WriteNetwork(n vector.Network, w io.Writer) error {
	if n.Vertices == nil {
		n.Vertices = []vector.Vertex{}
	}
	if n.Segments == nil {
		n.Segments = []vector.Segment{}
	}
	if n.Regions == nil {
		n.Regions = []vector.Region{}
	}
	return writeJSON(n, w)
}

// ExportNetwork writes n as JSON to the file at path, creating or
// truncating it.
func ExportNetwork(n vector.Network, path string) error {
	return exportFile(path, func(w io.Writer) error { return WriteNetwork(n, w) })
}

// ExportSparse writes s as JSON to the file at path, creating or
// truncating it.
func ExportSparse(s codec.Sparse, path string) error {
	return exportFile(path, func(w io.Writer) error { return WriteSparse(s, w) })
}

func writeJSON(v any, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func exportFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
