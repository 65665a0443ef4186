package codec

import (
	"errors"
	"fmt"

	vecerrors "github.com/matzehuels/vecnet/pkg/errors"
	"github.com/matzehuels/vecnet/pkg/vector"
)

// Decode converts a sparse wire network back to its dense form.
//
// Every string field is parsed and every referenced vertex index checked.
// Errors are *errors.Error values with code INVALID_FORMAT, OUT_OF_RANGE
// or INVALID_SHAPE, and name the offending field; their
// [vecerrors.UserMessage] is meant to reach the calling agent unchanged.
//
// Segments are derived from region loops first (region order, loop order,
// closing pair included), then from paths. A directed pair already derived
// from a loop is not derived again, so regions sharing an edge share its
// segment.
func Decode(s Sparse) (vector.Network, error) {
	vertices, err := parseVertices(s.Vertices)
	if err != nil {
		return vector.Network{}, err
	}
	if err := applyVertexProps(vertices, s.VertexProps); err != nil {
		return vector.Network{}, err
	}
	count := len(vertices)

	handles, err := parseHandles(s.Handles, count)
	if err != nil {
		return vector.Network{}, err
	}

	d := decoder{handles: handles, seen: make(map[[2]int]bool)}
	var regions []vector.Region
	for i, sr := range s.Regions {
		r, err := d.region(i, sr, s.Fills, count)
		if err != nil {
			return vector.Network{}, err
		}
		regions = append(regions, r)
	}

	for i, raw := range s.Paths {
		field := fmt.Sprintf("paths[%d]", i)
		path, err := parseIndices(field, raw, count)
		if err != nil {
			return vector.Network{}, err
		}
		for j := 0; j+1 < len(path); j++ {
			d.segment(path[j], path[j+1], false)
		}
	}

	return vector.Network{
		Vertices: vertices,
		Segments: d.segments,
		Regions:  regions,
	}, nil
}

// decoder accumulates segments for one Decode call.
type decoder struct {
	handles  []vertexHandles
	segments []vector.Segment
	seen     map[[2]int]bool // directed pairs derived from loops
}

func (d *decoder) region(i int, sr SparseRegion, fills []vector.PaintList, count int) (vector.Region, error) {
	if !sr.WindingRule.Valid() {
		return vector.Region{}, vecerrors.Format(fmt.Sprintf("regions[%d].windingRule", i),
			string(sr.WindingRule), errors.New("unknown winding rule"))
	}
	r := vector.Region{
		Loops:       make([][]int, len(sr.Loops)),
		WindingRule: sr.WindingRule.OrDefault(),
	}

	if sr.FillIndex != nil {
		fi := *sr.FillIndex
		if fi < 0 || fi >= len(fills) {
			return vector.Region{}, &vecerrors.Error{
				Code:    vecerrors.ErrCodeOutOfRange,
				Field:   fmt.Sprintf("regions[%d].fillIndex", i),
				Message: fmt.Sprintf("fill index %d out of range (palette has %d entries)", fi, len(fills)),
			}
		}
		r.Fills = fills[fi].Clone()
	}

	for j, raw := range sr.Loops {
		field := fmt.Sprintf("regions[%d].loops[%d]", i, j)
		loop, err := parseIndices(field, raw, count)
		if err != nil {
			return vector.Region{}, err
		}
		if len(loop) == 0 {
			return vector.Region{}, vecerrors.Format(field, raw, errors.New("loop must list at least one vertex"))
		}
		r.Loops[j] = loop
		for k, v := range loop {
			d.segment(v, loop[(k+1)%len(loop)], true)
		}
	}
	return r, nil
}

// segment appends the segment start->end with tangents taken from the
// handle table. Loop-derived pairs are emitted once.
func (d *decoder) segment(start, end int, fromLoop bool) {
	pair := [2]int{start, end}
	if d.seen[pair] {
		return
	}
	if fromLoop {
		d.seen[pair] = true
	}
	d.segments = append(d.segments, vector.Segment{
		Start:        start,
		End:          end,
		TangentStart: d.handles[start].Out,
		TangentEnd:   d.handles[end].In,
	})
}
