package codec

import (
	"testing"

	gocmp "github.com/google/go-cmp/cmp"

	"github.com/matzehuels/vecnet/pkg/vector"
)

func allMembers(segs []vector.Segment) []int {
	members := make([]int, len(segs))
	for i := range segs {
		members[i] = i
	}
	return members
}

func TestTracePaths(t *testing.T) {
	tests := []struct {
		name string
		segs []vector.Segment
		want [][]int
	}{
		{
			name: "empty",
			segs: nil,
			want: nil,
		},
		{
			name: "single segment",
			segs: []vector.Segment{vector.Line(3, 4)},
			want: [][]int{{3, 4}},
		},
		{
			name: "disjoint chains interleaved",
			segs: []vector.Segment{vector.Line(0, 1), vector.Line(5, 6), vector.Line(1, 2), vector.Line(6, 7)},
			want: [][]int{{0, 1, 2}, {5, 6, 7}},
		},
		{
			name: "extends backward",
			segs: []vector.Segment{vector.Line(1, 2), vector.Line(0, 1)},
			want: [][]int{{0, 1, 2}},
		},
		{
			name: "branch takes first candidate",
			segs: []vector.Segment{vector.Line(0, 1), vector.Line(1, 2), vector.Line(1, 3)},
			want: [][]int{{0, 1, 2}, {1, 3}},
		},
		{
			name: "closed cycle",
			segs: []vector.Segment{vector.Line(0, 1), vector.Line(1, 2), vector.Line(2, 0)},
			want: [][]int{{0, 1, 2, 0}},
		},
		{
			name: "opposite directions stay apart",
			segs: []vector.Segment{vector.Line(0, 1), vector.Line(2, 1)},
			want: [][]int{{0, 1}, {2, 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tracePaths(tt.segs, allMembers(tt.segs))
			if diff := gocmp.Diff(tt.want, got); diff != "" {
				t.Errorf("tracePaths() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTracePathsUsesEverySegmentOnce(t *testing.T) {
	// A star with a long arm, a detached pair and a repeated edge.
	segs := []vector.Segment{
		vector.Line(0, 1), vector.Line(0, 2), vector.Line(0, 3),
		vector.Line(3, 4), vector.Line(4, 5), vector.Line(9, 8),
		vector.Line(0, 1),
	}
	paths := tracePaths(segs, allMembers(segs))

	count := make(map[[2]int]int)
	for _, p := range paths {
		if len(p) < 2 {
			t.Fatalf("path %v has fewer than two vertices", p)
		}
		for i := 0; i+1 < len(p); i++ {
			count[[2]int{p[i], p[i+1]}]++
		}
	}
	want := make(map[[2]int]int)
	for _, s := range segs {
		want[[2]int{s.Start, s.End}]++
	}
	if diff := gocmp.Diff(want, count); diff != "" {
		t.Errorf("edge multiset mismatch (-want +got):\n%s", diff)
	}
}

func TestResidualSegments(t *testing.T) {
	regions := []vector.Region{{Loops: [][]int{{0, 1, 2}}}}
	segs := []vector.Segment{
		vector.Line(0, 1), vector.Line(1, 0), vector.Line(1, 2), vector.Line(2, 3), vector.Line(2, 0),
	}
	got := residualSegments(segs, claimedEdges(regions))
	if diff := gocmp.Diff([]int{1, 3}, got); diff != "" {
		t.Errorf("residualSegments() mismatch (-want +got):\n%s", diff)
	}
}
