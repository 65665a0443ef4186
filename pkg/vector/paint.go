package vector

import "maps"

// Paint is one entry of a fill list. Its content belongs to the host
// (solid colours, gradients with stops and transforms, images) and is
// carried as a JSON object without interpretation.
type Paint map[string]any

// PaintList is an ordered fill list, bottom paint first.
type PaintList []Paint

// Solid returns a solid paint with r, g, b in [0, 1].
func Solid(r, g, b float64) Paint {
	return Paint{
		"type":  "SOLID",
		"color": map[string]any{"r": r, "g": g, "b": b},
	}
}

// Clone returns a deep copy of the paint. Nested maps and slices built from
// JSON values are copied; other values are shared.
func (p Paint) Clone() Paint {
	if p == nil {
		return nil
	}
	return Paint(cloneValue(map[string]any(p)).(map[string]any))
}

// Clone returns a deep copy of the list.
func (l PaintList) Clone() PaintList {
	if l == nil {
		return nil
	}
	out := make(PaintList, len(l))
	for i, p := range l {
		out[i] = p.Clone()
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = cloneValue(e)
		}
		return out
	case Paint:
		return t.Clone()
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	case map[string]float64:
		return maps.Clone(t)
	default:
		return v
	}
}
