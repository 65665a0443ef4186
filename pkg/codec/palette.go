package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/matzehuels/vecnet/pkg/vector"
)

// hostInternalKeys lists paint fields that only mean something inside the
// host process (live variable bindings, plugin storage). They are removed
// once, when a fill list enters the palette, at every nesting level.
// Keys starting with an underscore are host bookkeeping as well.
var hostInternalKeys = map[string]bool{
	"boundVariables":   true,
	"pluginData":       true,
	"sharedPluginData": true,
}

func isHostInternal(key string) bool {
	return hostInternalKeys[key] || strings.HasPrefix(key, "_")
}

// palette deduplicates fill lists by structural content. Two lists are the
// same entry when their cleaned canonical JSON forms are byte-identical.
// A palette lives for one encode call.
type palette struct {
	entries []vector.PaintList
	canon   [][]byte         // canonical form of entries[i]
	byHash  map[uint64][]int // xxhash of canonical form -> entry indices
}

func newPalette() *palette {
	return &palette{byHash: make(map[uint64][]int)}
}

// add returns the index of the entry structurally equal to fills, adding a
// cleaned copy when there is none.
func (p *palette) add(fills vector.PaintList) int {
	cleaned, canon := canonicalFills(fills)
	h := xxhash.Sum64(canon)
	for _, i := range p.byHash[h] {
		if bytes.Equal(p.canon[i], canon) {
			return i
		}
	}
	idx := len(p.entries)
	p.entries = append(p.entries, cleaned)
	p.canon = append(p.canon, canon)
	p.byHash[h] = append(p.byHash[h], idx)
	return idx
}

// list returns the accumulated entries, or nil if there are none.
func (p *palette) list() []vector.PaintList {
	if len(p.entries) == 0 {
		return nil
	}
	return p.entries
}

// canonicalFills returns a cleaned deep copy of fills together with its
// canonical JSON encoding (sorted keys, normalised numbers).
//
// Paints are round-tripped through encoding/json first so that values the
// host stored as Go structs or typed slices compare equal to the same
// content decoded from JSON.
func canonicalFills(fills vector.PaintList) (vector.PaintList, []byte) {
	cleaned := make(vector.PaintList, 0, len(fills))
	for _, paint := range fills {
		var generic any
		data, err := json.Marshal(paint)
		if err == nil {
			err = json.Unmarshal(data, &generic)
		}
		if err != nil {
			generic = map[string]any(paint.Clone())
		}
		obj, _ := clean(generic).(map[string]any)
		if obj == nil {
			obj = map[string]any{}
		}
		cleaned = append(cleaned, vector.Paint(obj))
	}
	canon := canonicalJSON(cleaned)
	if canon == nil {
		// fmt prints maps with sorted keys, which is enough to keep
		// unencodable lists apart.
		canon = []byte(fmt.Sprint(cleaned))
	}
	return cleaned, canon
}

// clean drops host-internal keys and normalises -0 to 0.
func clean(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for _, k := range slices.Sorted(maps.Keys(t)) {
			if isHostInternal(k) {
				continue
			}
			out[k] = clean(t[k])
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = clean(e)
		}
		return out
	case float64:
		if t == 0 {
			return float64(0)
		}
		return t
	default:
		return v
	}
}

// canonicalJSON encodes v with sorted object keys. encoding/json already
// sorts map keys and writes shortest round-trip floats, so the output is
// canonical once clean has run.
func canonicalJSON(v any) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		// Only reachable for NaN or Inf values, which JSON cannot carry.
		return nil
	}
	return data
}
