package codec

import (
	"encoding/json"
	"fmt"
	"strconv"

	vecerrors "github.com/matzehuels/vecnet/pkg/errors"
	"github.com/matzehuels/vecnet/pkg/vector"
)

// vertexHandles is the pair of bezier handles meeting at one vertex.
type vertexHandles struct {
	In  vector.Point // TangentEnd of the segment arriving at the vertex
	Out vector.Point // TangentStart of the segment leaving the vertex
}

func (h vertexHandles) isZero() bool { return h.In.IsZero() && h.Out.IsZero() }

// aggregateHandles folds per-segment tangents into per-vertex handles and
// returns the sparse handle map, or nil when every handle is zero.
//
// A vertex half addressed by several segments with different tangents
// cannot be represented; the later segment in iteration order wins and
// the conflict is reported through opts.Warn.
func aggregateHandles(segs []vector.Segment, vertexCount int, opts Options) map[string]string {
	handles := make([]vertexHandles, vertexCount)
	inFrom := make([]int, vertexCount)  // segment that set handles[v].In, -1 if none
	outFrom := make([]int, vertexCount) // segment that set handles[v].Out, -1 if none
	for i := range inFrom {
		inFrom[i], outFrom[i] = -1, -1
	}

	for i, s := range segs {
		if prev := outFrom[s.Start]; prev >= 0 && handles[s.Start].Out != s.TangentStart {
			opts.warnf("vertex %d: out handle set by segments %d and %d with different values; keeping segment %d", s.Start, prev, i, i)
		}
		handles[s.Start].Out = s.TangentStart
		outFrom[s.Start] = i

		if prev := inFrom[s.End]; prev >= 0 && handles[s.End].In != s.TangentEnd {
			opts.warnf("vertex %d: in handle set by segments %d and %d with different values; keeping segment %d", s.End, prev, i, i)
		}
		handles[s.End].In = s.TangentEnd
		inFrom[s.End] = i
	}

	var out map[string]string
	for v, h := range handles {
		if h.isZero() {
			continue
		}
		if out == nil {
			out = make(map[string]string)
		}
		out[strconv.Itoa(v)] = formatNumbers(h.In.X, h.In.Y, h.Out.X, h.Out.Y)
	}
	return out
}

// parseHandles reads the sparse handle map into a per-vertex table.
// Vertices without an entry get zero handles.
func parseHandles(raw map[string]string, vertexCount int) ([]vertexHandles, error) {
	handles := make([]vertexHandles, vertexCount)
	for _, key := range sortedKeys(raw) {
		v, err := parseVertexKey("handles", key, vertexCount)
		if err != nil {
			return nil, err
		}
		field := fmt.Sprintf("handles[%q]", key)
		var c []float64
		if err := json.Unmarshal([]byte(raw[key]), &c); err != nil {
			return nil, vecerrors.Format(field, raw[key], err)
		}
		if len(c) != 4 {
			return nil, vecerrors.Format(field, raw[key],
				fmt.Errorf("expected [inX,inY,outX,outY], got %d numbers", len(c)))
		}
		handles[v] = vertexHandles{
			In:  vector.Point{X: c[0], Y: c[1]},
			Out: vector.Point{X: c[2], Y: c[3]},
		}
	}
	return handles, nil
}
