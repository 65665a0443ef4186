package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	vecerrors "github.com/matzehuels/vecnet/pkg/errors"
	"github.com/matzehuels/vecnet/pkg/observability"
	"github.com/matzehuels/vecnet/pkg/render/nodelink"
	"github.com/matzehuels/vecnet/pkg/vector"
)

// memCache is an in-memory cache.Cache for tests.
type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemCache() *memCache { return &memCache{data: make(map[string][]byte)} }

func (c *memCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	d, ok := c.data[key]
	return d, ok, nil
}

func (c *memCache) Set(_ context.Context, key string, data []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = bytes.Clone(data)
	return nil
}

func (c *memCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

func (c *memCache) Close() error { return nil }

type countingCacheHooks struct {
	observability.NoopCacheHooks
	hits, misses, sets int
}

func (h *countingCacheHooks) OnCacheHit(context.Context, string)      { h.hits++ }
func (h *countingCacheHooks) OnCacheMiss(context.Context, string)     { h.misses++ }
func (h *countingCacheHooks) OnCacheSet(context.Context, string, int) { h.sets++ }

func quietLogger() *log.Logger {
	return log.NewWithOptions(&bytes.Buffer{}, log.Options{Level: log.DebugLevel})
}

func triangleJSON(t *testing.T) []byte {
	t.Helper()
	n := vector.Network{
		Vertices: []vector.Vertex{vector.NewVertex(0, 0), vector.NewVertex(100, 0), vector.NewVertex(50, 100)},
		Segments: []vector.Segment{vector.Line(0, 1), vector.Line(1, 2), vector.Line(2, 0)},
		Regions:  []vector.Region{{Loops: [][]int{{0, 1, 2}}, Fills: vector.PaintList{vector.Solid(1, 0, 0)}}},
	}
	return mustJSON(t, n)
}

// conflictJSON has two segments leaving vertex 0 with different tangents.
func conflictJSON(t *testing.T) []byte {
	t.Helper()
	n := vector.Network{
		Vertices: []vector.Vertex{vector.NewVertex(0, 0), vector.NewVertex(10, 0), vector.NewVertex(0, 10)},
		Segments: []vector.Segment{
			{Start: 0, End: 1, TangentStart: vector.Point{X: 1, Y: 0}},
			{Start: 0, End: 2, TangentStart: vector.Point{X: 0, Y: 1}},
		},
	}
	return mustJSON(t, n)
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func TestEncode(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())
	res, err := r.Encode(context.Background(), triangleJSON(t))
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if got := res.Sparse.Vertices; got != "[0,0,100,0,50,100]" {
		t.Errorf("Vertices = %s, want [0,0,100,0,50,100]", got)
	}
	if !bytes.Contains(res.Data, []byte(`"vertices": "[0,0,100,0,50,100]"`)) {
		t.Errorf("Data does not hold the vertex string:\n%s", res.Data)
	}
	if res.Stats.Vertices != 3 || res.Stats.Segments != 3 || res.Stats.Regions != 1 || res.Stats.Fills != 1 {
		t.Errorf("Stats = %+v", res.Stats)
	}
	if res.Stats.InputBytes == 0 || res.Stats.OutputBytes != len(res.Data) {
		t.Errorf("byte stats = %d in, %d out", res.Stats.InputBytes, res.Stats.OutputBytes)
	}
	if res.CacheHit {
		t.Error("CacheHit = true with NullCache")
	}
}

func TestEncodeCaches(t *testing.T) {
	hooks := &countingCacheHooks{}
	observability.SetCacheHooks(hooks)
	defer observability.Reset()

	r := NewRunner(newMemCache(), nil, quietLogger())
	ctx := context.Background()

	first, err := r.Encode(ctx, conflictJSON(t))
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	// Same network, different formatting.
	var indented bytes.Buffer
	_ = json.Indent(&indented, conflictJSON(t), "", "    ")
	second, err := r.Encode(ctx, indented.Bytes())
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	if first.CacheHit || !second.CacheHit {
		t.Errorf("CacheHit = %v, %v; want false, true", first.CacheHit, second.CacheHit)
	}
	if !bytes.Equal(first.Data, second.Data) {
		t.Errorf("cached Data differs:\n%s\n%s", first.Data, second.Data)
	}
	if len(first.Warnings) != 1 || len(second.Warnings) != 1 {
		t.Errorf("Warnings = %d, %d; want 1, 1", len(first.Warnings), len(second.Warnings))
	}
	if hooks.misses != 1 || hooks.hits != 1 || hooks.sets != 1 {
		t.Errorf("cache hooks = %d miss, %d hit, %d set; want 1 each", hooks.misses, hooks.hits, hooks.sets)
	}
}

func TestEncodeErrors(t *testing.T) {
	badIndex := vector.Network{
		Vertices: []vector.Vertex{vector.NewVertex(0, 0)},
		Segments: []vector.Segment{vector.Line(0, 3)},
	}

	tests := []struct {
		name   string
		limits func(r *Runner)
		input  []byte
		code   vecerrors.Code
	}{
		{"malformed", nil, []byte(`{"vertices": [`), vecerrors.ErrCodeInvalidInput},
		{"bad index", nil, mustJSON(t, badIndex), vecerrors.ErrCodeInvalidInput},
		{"too many vertices", func(r *Runner) { r.Limits.MaxVertices = 2 }, triangleJSON(t), vecerrors.ErrCodeInputTooLarge},
		{"too many segments", func(r *Runner) { r.Limits.MaxSegments = 1 }, triangleJSON(t), vecerrors.ErrCodeInputTooLarge},
		{"payload too large", func(r *Runner) { r.Limits.MaxPayloadBytes = 10 }, triangleJSON(t), vecerrors.ErrCodeInputTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRunner(nil, nil, quietLogger())
			if tt.limits != nil {
				tt.limits(r)
			}
			_, err := r.Encode(context.Background(), tt.input)
			if got := vecerrors.GetCode(err); got != tt.code {
				t.Errorf("code = %v, want %v (err: %v)", got, tt.code, err)
			}
		})
	}
}

func TestEncodeBadIndexUnwraps(t *testing.T) {
	n := vector.Network{
		Vertices: []vector.Vertex{vector.NewVertex(0, 0)},
		Regions:  []vector.Region{{Loops: [][]int{{0, 4}}}},
	}
	_, err := NewRunner(nil, nil, quietLogger()).Encode(context.Background(), mustJSON(t, n))
	if !errors.Is(err, vector.ErrIndexOutOfRange) {
		t.Errorf("error = %v, want wrapping ErrIndexOutOfRange", err)
	}
}

func TestDecode(t *testing.T) {
	r := NewRunner(newMemCache(), nil, quietLogger())
	ctx := context.Background()
	in := []byte(`{"vertices":"[0,0,10,0,10,10]","regions":[{"loops":["[0,1,2]"]}]}`)

	res, err := r.Decode(ctx, in)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if res.Stats.Vertices != 3 || res.Stats.Segments != 3 {
		t.Errorf("Stats = %+v", res.Stats)
	}

	again, err := r.Decode(ctx, in)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if !again.CacheHit {
		t.Error("second Decode should hit the cache")
	}
	if !bytes.Equal(res.Data, again.Data) {
		t.Errorf("cached Data differs:\n%s\n%s", res.Data, again.Data)
	}
}

func TestDecodeErrorsPassThrough(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())
	_, err := r.Decode(context.Background(), []byte(`{"vertices":"[0,0,100,0]","regions":[{"loops":["[0,1,5]"]}]}`))
	if got := vecerrors.GetCode(err); got != vecerrors.ErrCodeOutOfRange {
		t.Fatalf("code = %v, want OUT_OF_RANGE (err: %v)", got, err)
	}
	want := "regions[0].loops[0]: vertex index 5 out of range (valid range 0-1)"
	if got := vecerrors.UserMessage(err); got != want {
		t.Errorf("UserMessage = %q, want %q", got, want)
	}

	_, err = r.Decode(context.Background(), []byte(`[1,2]`))
	if got := vecerrors.GetCode(err); got != vecerrors.ErrCodeInvalidInput {
		t.Errorf("code = %v, want INVALID_INPUT (err: %v)", got, err)
	}
}

func TestRoundtrip(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())
	ctx := context.Background()

	res, err := r.Roundtrip(ctx, triangleJSON(t))
	if err != nil {
		t.Fatalf("Roundtrip() error = %v", err)
	}
	if !res.Stable || len(res.Conflicts) != 0 {
		t.Errorf("triangle: Stable = %v, conflicts = %d", res.Stable, len(res.Conflicts))
	}

	// Conflicting handles collapse on the first pass; after that the
	// encoding is a fixed point.
	res, err = r.Roundtrip(ctx, conflictJSON(t))
	if err != nil {
		t.Fatalf("Roundtrip() error = %v", err)
	}
	if !res.Stable {
		t.Error("conflict network: re-encoding should be stable")
	}
	if len(res.Conflicts) != 1 || res.Conflicts[0].Vertex != 0 || res.Conflicts[0].Half != vector.TangentOut {
		t.Errorf("Conflicts = %+v, want one out conflict at vertex 0", res.Conflicts)
	}
}

func TestRenderTopology(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())
	n := vector.Network{
		Vertices: []vector.Vertex{vector.NewVertex(0, 0), vector.NewVertex(1, 0)},
		Segments: []vector.Segment{vector.Line(0, 1)},
	}
	out, err := r.RenderTopology(context.Background(), n, []string{FormatDOT}, nodelink.Options{})
	if err != nil {
		t.Fatalf("RenderTopology() error = %v", err)
	}
	if !strings.Contains(string(out[FormatDOT]), "v0 -> v1") {
		t.Errorf("DOT missing edge:\n%s", out[FormatDOT])
	}
	if _, ok := out[FormatSVG]; ok {
		t.Error("SVG rendered without being requested")
	}

	if _, err := r.RenderTopology(context.Background(), n, []string{"png"}, nodelink.Options{}); err == nil {
		t.Error("RenderTopology() with unknown format should fail")
	}
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"dot", false},
		{"svg", false},
		{"png", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}

func TestStatsRatio(t *testing.T) {
	if got := (Stats{}).Ratio(); got != 0 {
		t.Errorf("Ratio() of empty = %v, want 0", got)
	}
	if got := (Stats{InputBytes: 200, OutputBytes: 50}).Ratio(); got != 0.25 {
		t.Errorf("Ratio() = %v, want 0.25", got)
	}
}
