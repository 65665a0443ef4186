package codec

import "github.com/matzehuels/vecnet/pkg/vector"

// Sparse is the compact wire form of a vector network.
//
// Vertices, every loop, every path and every handle value are JSON
// documents embedded as strings; clients parse each one separately.
// Everything except Vertices is omitted when empty.
type Sparse struct {
	// Vertices is a flat JSON array of coordinates: "[x0,y0,x1,y1,...]".
	Vertices string `json:"vertices"`

	Regions []SparseRegion `json:"regions,omitempty"`

	// Paths holds open polylines as JSON index arrays, e.g. "[0,1,2]".
	// Consecutive indices are joined by one segment; paths do not wrap.
	Paths []string `json:"paths,omitempty"`

	// Handles maps a vertex index to "[inX,inY,outX,outY]": the tangent of
	// the segment arriving at the vertex and of the segment leaving it.
	Handles map[string]string `json:"handles,omitempty"`

	// VertexProps maps a vertex index to its non-default style fields.
	VertexProps map[string]VertexProps `json:"vertexProps,omitempty"`

	// Fills is the palette of distinct fill lists referenced by
	// SparseRegion.FillIndex.
	Fills []vector.PaintList `json:"fills,omitempty"`
}

// SparseRegion is one filled region in wire form.
type SparseRegion struct {
	// Loops holds JSON index arrays; each loop closes back to its first
	// vertex.
	Loops []string `json:"loops"`

	// WindingRule is omitted for NONZERO.
	WindingRule vector.WindingRule `json:"windingRule,omitempty"`

	// FillIndex points into Sparse.Fills; nil when the region has no fills.
	FillIndex *int `json:"fillIndex,omitempty"`
}

// VertexProps carries the style fields of one vertex that differ from
// their defaults.
type VertexProps struct {
	CornerRadius    float64                `json:"cornerRadius,omitempty"`
	StrokeCap       vector.StrokeCap       `json:"strokeCap,omitempty"`
	StrokeJoin      vector.StrokeJoin      `json:"strokeJoin,omitempty"`
	HandleMirroring vector.HandleMirroring `json:"handleMirroring,omitempty"`
}

// Options tunes encoding.
type Options struct {
	// Warn receives non-fatal diagnostics, such as two segments assigning
	// different handles to the same side of a vertex. Nil discards them.
	Warn func(format string, args ...any)
}

func (o Options) warnf(format string, args ...any) {
	if o.Warn != nil {
		o.Warn(format, args...)
	}
}
