package vector

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func triangle() Network {
	return Network{
		Vertices: []Vertex{NewVertex(0, 0), NewVertex(100, 0), NewVertex(50, 100)},
		Segments: []Segment{Line(0, 1), Line(1, 2), Line(2, 0)},
		Regions:  []Region{{Loops: [][]int{{0, 1, 2}}}},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(n *Network)
		wantErr error
	}{
		{
			name:   "valid",
			mutate: func(n *Network) {},
		},
		{
			name:    "segment start",
			mutate:  func(n *Network) { n.Segments[0].Start = 3 },
			wantErr: ErrIndexOutOfRange,
		},
		{
			name:    "segment end negative",
			mutate:  func(n *Network) { n.Segments[1].End = -1 },
			wantErr: ErrIndexOutOfRange,
		},
		{
			name:    "loop index",
			mutate:  func(n *Network) { n.Regions[0].Loops[0][2] = 9 },
			wantErr: ErrIndexOutOfRange,
		},
		{
			name:    "empty loop",
			mutate:  func(n *Network) { n.Regions[0].Loops = append(n.Regions[0].Loops, nil) },
			wantErr: ErrEmptyLoop,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := triangle()
			tt.mutate(&n)
			err := n.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRegionEdges(t *testing.T) {
	r := Region{Loops: [][]int{{0, 1, 2}, {3, 4, 5}}}
	want := [][2]int{{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 5}, {5, 3}}
	if diff := cmp.Diff(want, r.Edges()); diff != "" {
		t.Errorf("Edges() mismatch (-want +got):\n%s", diff)
	}
}

func TestRegionEdgesSingleVertexLoop(t *testing.T) {
	r := Region{Loops: [][]int{{4}}}
	want := [][2]int{{4, 4}}
	if diff := cmp.Diff(want, r.Edges()); diff != "" {
		t.Errorf("Edges() mismatch (-want +got):\n%s", diff)
	}
}

func TestCloneIsDeep(t *testing.T) {
	n := triangle()
	n.Regions[0].Fills = PaintList{Solid(1, 0, 0)}

	c := n.Clone()
	c.Vertices[0].X = 42
	c.Regions[0].Loops[0][0] = 2
	c.Regions[0].Fills[0]["color"].(map[string]any)["r"] = 0.5

	if n.Vertices[0].X != 0 {
		t.Error("Clone shares vertex storage")
	}
	if n.Regions[0].Loops[0][0] != 0 {
		t.Error("Clone shares loop storage")
	}
	if got := n.Regions[0].Fills[0]["color"].(map[string]any)["r"]; got != 1.0 {
		t.Errorf("Clone shares paint storage: r = %v", got)
	}
}

func TestVertexDefaults(t *testing.T) {
	var v Vertex
	if v.HasStyle() {
		t.Error("zero Vertex reports style")
	}
	if diff := cmp.Diff(NewVertex(0, 0), v.Normalize()); diff != "" {
		t.Errorf("Normalize() mismatch (-want +got):\n%s", diff)
	}

	styled := []Vertex{
		{CornerRadius: 4},
		{StrokeCap: StrokeCapRound},
		{StrokeJoin: StrokeJoinBevel},
		{HandleMirroring: HandleMirroringAngle},
	}
	for _, s := range styled {
		if !s.HasStyle() {
			t.Errorf("%+v: HasStyle() = false, want true", s)
		}
	}
}

func TestEnumValid(t *testing.T) {
	if !StrokeCap("").Valid() || !StrokeCapArrowLines.Valid() || StrokeCap("BUTT").Valid() {
		t.Error("StrokeCap.Valid mismatch")
	}
	if !StrokeJoinRound.Valid() || StrokeJoin("SHARP").Valid() {
		t.Error("StrokeJoin.Valid mismatch")
	}
	if !HandleMirroringAngleAndLength.Valid() || HandleMirroring("LENGTH").Valid() {
		t.Error("HandleMirroring.Valid mismatch")
	}
	if !WindingEvenOdd.Valid() || WindingRule("ODD").Valid() {
		t.Error("WindingRule.Valid mismatch")
	}
	if WindingRule("").OrDefault() != WindingNonZero {
		t.Error("WindingRule default is not NONZERO")
	}
}

func TestHandleConflicts(t *testing.T) {
	n := Network{
		Vertices: []Vertex{NewVertex(0, 0), NewVertex(10, 0), NewVertex(0, 10)},
		Segments: []Segment{
			{Start: 0, End: 1, TangentStart: Point{X: 1}},
			{Start: 0, End: 2, TangentStart: Point{Y: 1}},
			{Start: 2, End: 1},
		},
	}

	got := n.HandleConflicts()
	want := []HandleConflict{{
		Vertex:   0,
		Half:     TangentOut,
		Segments: []int{0, 1},
		Values:   []Point{{X: 1}, {Y: 1}},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("HandleConflicts() mismatch (-want +got):\n%s", diff)
	}
}

func TestHandleConflictsNoneForConsistentHandles(t *testing.T) {
	n := triangle()
	n.Segments[0].TangentStart = Point{X: 5, Y: 5}
	if got := n.HandleConflicts(); len(got) != 0 {
		t.Errorf("HandleConflicts() = %v, want none", got)
	}
}
