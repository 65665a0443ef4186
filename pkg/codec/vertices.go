package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"

	vecerrors "github.com/matzehuels/vecnet/pkg/errors"
	"github.com/matzehuels/vecnet/pkg/vector"
)

// flattenVertices writes vertex coordinates as "[x0,y0,x1,y1,...]".
func flattenVertices(vs []vector.Vertex) string {
	buf := make([]byte, 0, 2+len(vs)*8)
	buf = append(buf, '[')
	for i, v := range vs {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = appendNumber(buf, v.X)
		buf = append(buf, ',')
		buf = appendNumber(buf, v.Y)
	}
	return string(append(buf, ']'))
}

// formatNumbers writes numbers as a JSON array.
func formatNumbers(fs ...float64) string {
	buf := make([]byte, 0, 2+len(fs)*4)
	buf = append(buf, '[')
	for i, f := range fs {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = appendNumber(buf, f)
	}
	return string(append(buf, ']'))
}

// formatIndices writes vertex indices as a JSON array.
func formatIndices(idx []int) string {
	buf := make([]byte, 0, 2+len(idx)*3)
	buf = append(buf, '[')
	for i, v := range idx {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = strconv.AppendInt(buf, int64(v), 10)
	}
	return string(append(buf, ']'))
}

// appendNumber formats f the way encoding/json does: shortest round-trip
// digits, exponent form only for very small or very large magnitudes.
// Negative zero is written as 0.
func appendNumber(buf []byte, f float64) []byte {
	if f == 0 {
		return append(buf, '0')
	}
	abs := math.Abs(f)
	format := byte('f')
	if abs < 1e-6 || abs >= 1e21 {
		format = 'e'
	}
	return strconv.AppendFloat(buf, f, format, -1, 64)
}

// parseVertices reads the vertex string into vertex records with every
// style field at its explicit default.
func parseVertices(raw string) ([]vector.Vertex, error) {
	var coords []float64
	if err := json.Unmarshal([]byte(raw), &coords); err != nil {
		return nil, vecerrors.Format("vertices", raw, err)
	}
	if len(coords)%2 != 0 {
		return nil, vecerrors.Shape("vertices", len(coords))
	}
	vs := make([]vector.Vertex, len(coords)/2)
	for i := range vs {
		vs[i] = vector.NewVertex(coords[2*i], coords[2*i+1])
	}
	return vs, nil
}

// parseIndices reads a JSON index array and checks every index against
// the vertex count.
func parseIndices(field, raw string, count int) ([]int, error) {
	var idx []int
	if err := json.Unmarshal([]byte(raw), &idx); err != nil {
		return nil, vecerrors.Format(field, raw, err)
	}
	for _, i := range idx {
		if i < 0 || i >= count {
			return nil, vecerrors.Range(field, i, count)
		}
	}
	return idx, nil
}

// parseVertexKey reads a map key naming a vertex.
func parseVertexKey(field, key string, count int) (int, error) {
	i, err := strconv.Atoi(key)
	if err != nil {
		return 0, vecerrors.Format(field, key, errors.New("key is not a vertex index"))
	}
	if i < 0 || i >= count {
		return 0, vecerrors.Range(fmt.Sprintf("%s[%q]", field, key), i, count)
	}
	return i, nil
}

// collectVertexProps returns the non-default style of every styled vertex,
// or nil when no vertex is styled.
func collectVertexProps(vs []vector.Vertex) map[string]VertexProps {
	var props map[string]VertexProps
	for i, v := range vs {
		if !v.HasStyle() {
			continue
		}
		var p VertexProps
		p.CornerRadius = v.CornerRadius
		if c := v.StrokeCap.OrDefault(); c != vector.StrokeCapNone {
			p.StrokeCap = c
		}
		if j := v.StrokeJoin.OrDefault(); j != vector.StrokeJoinMiter {
			p.StrokeJoin = j
		}
		if m := v.HandleMirroring.OrDefault(); m != vector.HandleMirroringNone {
			p.HandleMirroring = m
		}
		if props == nil {
			props = make(map[string]VertexProps)
		}
		props[strconv.Itoa(i)] = p
	}
	return props
}

// applyVertexProps overlays style overrides onto decoded vertices.
func applyVertexProps(vs []vector.Vertex, props map[string]VertexProps) error {
	for _, key := range sortedKeys(props) {
		i, err := parseVertexKey("vertexProps", key, len(vs))
		if err != nil {
			return err
		}
		p := props[key]
		field := fmt.Sprintf("vertexProps[%q]", key)
		if !p.StrokeCap.Valid() {
			return vecerrors.Format(field+".strokeCap", string(p.StrokeCap), errors.New("unknown stroke cap"))
		}
		if !p.StrokeJoin.Valid() {
			return vecerrors.Format(field+".strokeJoin", string(p.StrokeJoin), errors.New("unknown stroke join"))
		}
		if !p.HandleMirroring.Valid() {
			return vecerrors.Format(field+".handleMirroring", string(p.HandleMirroring), errors.New("unknown handle mirroring"))
		}

		v := &vs[i]
		v.CornerRadius = p.CornerRadius
		if p.StrokeCap != "" {
			v.StrokeCap = p.StrokeCap
		}
		if p.StrokeJoin != "" {
			v.StrokeJoin = p.StrokeJoin
		}
		if p.HandleMirroring != "" {
			v.HandleMirroring = p.HandleMirroring
		}
	}
	return nil
}
