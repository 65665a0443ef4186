package codec

import (
	"maps"
	"slices"

	"github.com/matzehuels/vecnet/pkg/vector"
)

// Encode converts a dense network to its sparse wire form.
//
// The network is trusted to be consistent: every index must lie in
// [0, VertexCount). Use [vector.Network.Validate] first when the network
// does not come straight from the host.
func Encode(n vector.Network) Sparse {
	return EncodeWithOptions(n, Options{})
}

// EncodeWithOptions is [Encode] with diagnostics routed through opts.
func EncodeWithOptions(n vector.Network, opts Options) Sparse {
	out := Sparse{Vertices: flattenVertices(n.Vertices)}
	pal := newPalette()

	for _, r := range n.Regions {
		sr := SparseRegion{Loops: make([]string, len(r.Loops))}
		for i, loop := range r.Loops {
			sr.Loops[i] = formatIndices(loop)
		}
		if w := r.WindingRule.OrDefault(); w != vector.WindingNonZero {
			sr.WindingRule = w
		}
		if len(r.Fills) > 0 {
			idx := pal.add(r.Fills)
			sr.FillIndex = &idx
		}
		out.Regions = append(out.Regions, sr)
	}

	residual := residualSegments(n.Segments, claimedEdges(n.Regions))
	for _, p := range tracePaths(n.Segments, residual) {
		out.Paths = append(out.Paths, formatIndices(p))
	}

	out.Handles = aggregateHandles(n.Segments, len(n.Vertices), opts)
	out.VertexProps = collectVertexProps(n.Vertices)
	out.Fills = pal.list()
	return out
}

// sortedKeys returns the keys of m in lexical order so that validation
// reports the same first error on every run.
func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}
