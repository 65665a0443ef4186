package codec

import "github.com/matzehuels/vecnet/pkg/vector"

// claimedEdges returns the set of directed (start, end) pairs implied by
// region loops, including each loop's closing pair.
func claimedEdges(regions []vector.Region) map[[2]int]bool {
	claimed := make(map[[2]int]bool)
	for _, r := range regions {
		for _, e := range r.Edges() {
			claimed[e] = true
		}
	}
	return claimed
}

// residualSegments returns the indices, in input order, of segments whose
// directed pair is not claimed by any region loop.
func residualSegments(segs []vector.Segment, claimed map[[2]int]bool) []int {
	var out []int
	for i, s := range segs {
		if !claimed[[2]int{s.Start, s.End}] {
			out = append(out, i)
		}
	}
	return out
}

// tracer partitions a set of segments into maximal chains.
//
// Candidates for each vertex are kept in input order together with a
// cursor past the entries already consumed, so finding the first unused
// extension is amortised O(1) while matching a linear scan of the input.
type tracer struct {
	segs     []vector.Segment
	used     []bool        // indexed by segment index
	outgoing map[int][]int // vertex -> segments starting there, input order
	incoming map[int][]int // vertex -> segments ending there, input order
	outPos   map[int]int
	inPos    map[int]int
}

func newTracer(segs []vector.Segment, members []int) *tracer {
	t := &tracer{
		segs:     segs,
		used:     make([]bool, len(segs)),
		outgoing: make(map[int][]int),
		incoming: make(map[int][]int),
		outPos:   make(map[int]int),
		inPos:    make(map[int]int),
	}
	for _, i := range members {
		s := segs[i]
		t.outgoing[s.Start] = append(t.outgoing[s.Start], i)
		t.incoming[s.End] = append(t.incoming[s.End], i)
	}
	return t
}

// next returns the first unused segment in list, advancing the vertex's
// cursor past used entries. It returns -1 when none is left.
func (t *tracer) next(list []int, pos map[int]int, v int) int {
	p := pos[v]
	for p < len(list) && t.used[list[p]] {
		p++
	}
	pos[v] = p
	if p == len(list) {
		return -1
	}
	return list[p]
}

// chain grows a path from seed: forward while a segment starts at the
// tail, then backward while a segment ends at the head.
func (t *tracer) chain(seed int) []int {
	t.used[seed] = true
	s := t.segs[seed]
	path := []int{s.Start, s.End}

	for {
		tail := path[len(path)-1]
		i := t.next(t.outgoing[tail], t.outPos, tail)
		if i < 0 {
			break
		}
		t.used[i] = true
		path = append(path, t.segs[i].End)
	}

	var prefix []int
	head := path[0]
	for {
		i := t.next(t.incoming[head], t.inPos, head)
		if i < 0 {
			break
		}
		t.used[i] = true
		head = t.segs[i].Start
		prefix = append(prefix, head)
	}
	if len(prefix) == 0 {
		return path
	}

	out := make([]int, 0, len(prefix)+len(path))
	for i := len(prefix) - 1; i >= 0; i-- {
		out = append(out, prefix[i])
	}
	return append(out, path...)
}

// tracePaths reconstructs open paths from the member segments. Each member
// appears in exactly one returned path; seeds are taken in input order.
func tracePaths(segs []vector.Segment, members []int) [][]int {
	t := newTracer(segs, members)
	var paths [][]int
	for _, i := range members {
		if t.used[i] {
			continue
		}
		paths = append(paths, t.chain(i))
	}
	return paths
}
