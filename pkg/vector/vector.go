package vector

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

var (
	// ErrIndexOutOfRange is returned by [Network.Validate] when a segment or
	// region loop references a vertex that does not exist.
	ErrIndexOutOfRange = errors.New("vertex index out of range")

	// ErrEmptyLoop is returned by [Network.Validate] when a region holds a
	// loop with no vertices.
	ErrEmptyLoop = errors.New("region loop is empty")
)

// Point is a 2D vector. Tangents are stored relative to their vertex.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// IsZero reports whether both components are zero.
func (p Point) IsZero() bool { return p.X == 0 && p.Y == 0 }

// Vertex is a point of the network with its per-vertex styling.
// Empty enum fields mean the default value; [NewVertex] fills them in
// explicitly.
type Vertex struct {
	X               float64         `json:"x"`
	Y               float64         `json:"y"`
	CornerRadius    float64         `json:"cornerRadius,omitempty"`
	StrokeCap       StrokeCap       `json:"strokeCap,omitempty"`
	StrokeJoin      StrokeJoin      `json:"strokeJoin,omitempty"`
	HandleMirroring HandleMirroring `json:"handleMirroring,omitempty"`
}

// NewVertex returns a vertex at (x, y) with every style field set to its
// explicit default.
func NewVertex(x, y float64) Vertex {
	return Vertex{
		X:               x,
		Y:               y,
		StrokeCap:       StrokeCapNone,
		StrokeJoin:      StrokeJoinMiter,
		HandleMirroring: HandleMirroringNone,
	}
}

// Normalize returns v with empty enum fields replaced by their defaults.
func (v Vertex) Normalize() Vertex {
	v.StrokeCap = v.StrokeCap.OrDefault()
	v.StrokeJoin = v.StrokeJoin.OrDefault()
	v.HandleMirroring = v.HandleMirroring.OrDefault()
	return v
}

// HasStyle reports whether any style field differs from its default.
func (v Vertex) HasStyle() bool {
	return v.CornerRadius != 0 ||
		v.StrokeCap.OrDefault() != StrokeCapNone ||
		v.StrokeJoin.OrDefault() != StrokeJoinMiter ||
		v.HandleMirroring.OrDefault() != HandleMirroringNone
}

// Segment is a directed edge between two vertices. TangentStart is the
// bezier handle leaving Start; TangentEnd the handle arriving at End.
// Zero tangents give a straight edge.
type Segment struct {
	Start        int   `json:"start"`
	End          int   `json:"end"`
	TangentStart Point `json:"tangentStart"`
	TangentEnd   Point `json:"tangentEnd"`
}

// Line returns a straight segment from start to end.
func Line(start, end int) Segment {
	return Segment{Start: start, End: end}
}

// Region is a filled closed area. Loops[0] is the outer boundary, further
// loops are holes. Each loop lists vertex indices in drawing order and is
// implicitly closed from its last vertex back to its first.
type Region struct {
	Loops       [][]int     `json:"loops"`
	WindingRule WindingRule `json:"windingRule,omitempty"`
	Fills       PaintList   `json:"fills,omitempty"`
}

// Network is the dense form of a vector shape's geometry. It is a plain
// value: the host hands one in whole and receives one back whole.
//
// The zero value is an empty network.
type Network struct {
	Vertices []Vertex  `json:"vertices"`
	Segments []Segment `json:"segments"`
	Regions  []Region  `json:"regions"`
}

// VertexCount returns the number of vertices.
func (n Network) VertexCount() int { return len(n.Vertices) }

// SegmentCount returns the number of segments.
func (n Network) SegmentCount() int { return len(n.Segments) }

// Clone returns a deep copy of the network. Fill lists are copied too, so
// the clone can be modified without affecting n.
func (n Network) Clone() Network {
	out := Network{
		Vertices: slices.Clone(n.Vertices),
		Segments: slices.Clone(n.Segments),
	}
	if n.Regions != nil {
		out.Regions = make([]Region, len(n.Regions))
		for i, r := range n.Regions {
			out.Regions[i] = r.Clone()
		}
	}
	return out
}

// Clone returns a deep copy of the region.
func (r Region) Clone() Region {
	out := Region{WindingRule: r.WindingRule, Fills: r.Fills.Clone()}
	if r.Loops != nil {
		out.Loops = make([][]int, len(r.Loops))
		for i, l := range r.Loops {
			out.Loops[i] = slices.Clone(l)
		}
	}
	return out
}

// Edges returns every directed (start, end) pair implied by the region's
// loops, including the pair that closes each loop.
func (r Region) Edges() [][2]int {
	var edges [][2]int
	for _, loop := range r.Loops {
		for i, v := range loop {
			edges = append(edges, [2]int{v, loop[(i+1)%len(loop)]})
		}
	}
	return edges
}

// Validate checks that every index referenced by segments and region loops
// lies in [0, VertexCount). It returns the first violation found, wrapped
// with the location of the offending reference.
//
// The codec does not call Validate: the host is trusted to supply a
// consistent network. Tooling that builds networks by hand should.
func (n Network) Validate() error {
	count := len(n.Vertices)
	check := func(idx int) bool { return idx >= 0 && idx < count }

	for i, s := range n.Segments {
		if !check(s.Start) {
			return fmt.Errorf("segments[%d].start %d: %w", i, s.Start, ErrIndexOutOfRange)
		}
		if !check(s.End) {
			return fmt.Errorf("segments[%d].end %d: %w", i, s.End, ErrIndexOutOfRange)
		}
	}
	for i, r := range n.Regions {
		for j, loop := range r.Loops {
			if len(loop) == 0 {
				return fmt.Errorf("regions[%d].loops[%d]: %w", i, j, ErrEmptyLoop)
			}
			for _, idx := range loop {
				if !check(idx) {
					return fmt.Errorf("regions[%d].loops[%d] index %d: %w", i, j, idx, ErrIndexOutOfRange)
				}
			}
		}
	}
	return nil
}

// TangentHalf names which handle of a vertex a segment end addresses.
type TangentHalf string

const (
	// TangentIn is the handle arriving at a vertex (a segment's TangentEnd).
	TangentIn TangentHalf = "in"
	// TangentOut is the handle leaving a vertex (a segment's TangentStart).
	TangentOut TangentHalf = "out"
)

// HandleConflict describes a vertex whose in or out handle is set to
// different values by different segments. The sparse form keeps one
// handle per half per vertex, so only one of the values can survive.
type HandleConflict struct {
	Vertex   int
	Half     TangentHalf
	Segments []int   // segment indices in input order
	Values   []Point // tangent each segment assigns, parallel to Segments
}

// HandleConflicts lists every vertex half that receives more than one
// distinct tangent. Results are ordered by vertex index, "in" before
// "out". A well-formed network has none.
func (n Network) HandleConflicts() []HandleConflict {
	type key struct {
		v    int
		half TangentHalf
	}
	seen := make(map[key]*HandleConflict)
	record := func(k key, seg int, p Point) {
		c, ok := seen[k]
		if !ok {
			c = &HandleConflict{Vertex: k.v, Half: k.half}
			seen[k] = c
		}
		c.Segments = append(c.Segments, seg)
		c.Values = append(c.Values, p)
	}
	for i, s := range n.Segments {
		record(key{s.Start, TangentOut}, i, s.TangentStart)
		record(key{s.End, TangentIn}, i, s.TangentEnd)
	}

	var out []HandleConflict
	for _, k := range slices.SortedFunc(maps.Keys(seen), func(a, b key) int {
		if a.v != b.v {
			return a.v - b.v
		}
		if a.half == b.half {
			return 0
		}
		if a.half == TangentIn {
			return -1
		}
		return 1
	}) {
		c := seen[k]
		if distinct(c.Values) {
			out = append(out, *c)
		}
	}
	return out
}

func distinct(ps []Point) bool {
	for _, p := range ps[1:] {
		if p != ps[0] {
			return true
		}
	}
	return false
}
