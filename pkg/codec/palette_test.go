package codec

import (
	"math"
	"testing"

	"github.com/matzehuels/vecnet/pkg/vector"
)

func TestPaletteAdd(t *testing.T) {
	red := vector.PaintList{vector.Solid(1, 0, 0)}

	tests := []struct {
		name  string
		fills vector.PaintList
		want  int
	}{
		{"same content", vector.PaintList{vector.Solid(1, 0, 0)}, 0},
		{"bound variables stripped", vector.PaintList{{
			"type":           "SOLID",
			"color":          map[string]any{"r": 1.0, "g": 0.0, "b": 0.0},
			"boundVariables": map[string]any{"color": map[string]any{"id": "VariableID:1:2"}},
		}}, 0},
		{"underscore keys stripped", vector.PaintList{{
			"type":  "SOLID",
			"color": map[string]any{"r": 1.0, "g": 0.0, "b": 0.0, "_cache": "x"},
		}}, 0},
		{"negative zero", vector.PaintList{vector.Solid(1, math.Copysign(0, -1), 0)}, 0},
		{"typed nested map", vector.PaintList{{
			"type":  "SOLID",
			"color": map[string]float64{"r": 1, "g": 0, "b": 0},
		}}, 0},
		{"different colour", vector.PaintList{vector.Solid(0, 1, 0)}, 1},
		{"two paints", vector.PaintList{vector.Solid(1, 0, 0), vector.Solid(0, 1, 0)}, 1},
		{"empty paint list entry", vector.PaintList{{}}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPalette()
			if got := p.add(red); got != 0 {
				t.Fatalf("add(red) = %d, want 0", got)
			}
			if got := p.add(tt.fills); got != tt.want {
				t.Errorf("add() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPaletteOrderMatters(t *testing.T) {
	a, b := vector.Solid(1, 0, 0), vector.Solid(0, 0, 1)
	p := newPalette()
	if got := p.add(vector.PaintList{a, b}); got != 0 {
		t.Errorf("add(a,b) = %d, want 0", got)
	}
	if got := p.add(vector.PaintList{b, a}); got != 1 {
		t.Errorf("add(b,a) = %d, want 1", got)
	}
	if got := len(p.list()); got != 2 {
		t.Errorf("len(list()) = %d, want 2", got)
	}
}

func TestPaletteStripsNested(t *testing.T) {
	in := vector.PaintList{{
		"type": "GRADIENT_RADIAL",
		"gradientStops": []any{
			map[string]any{
				"position":       0.0,
				"color":          map[string]any{"r": 0.0, "g": 0.0, "b": 0.0, "a": 1.0},
				"boundVariables": map[string]any{"color": "VariableID:3:4"},
			},
		},
		"pluginData": map[string]any{"owner": "plugin"},
	}}

	p := newPalette()
	p.add(in)
	entry := p.list()[0][0]

	if _, ok := entry["pluginData"]; ok {
		t.Error("pluginData kept at top level")
	}
	stops, ok := entry["gradientStops"].([]any)
	if !ok || len(stops) != 1 {
		t.Fatalf("gradientStops = %#v, want one stop", entry["gradientStops"])
	}
	stop := stops[0].(map[string]any)
	if _, ok := stop["boundVariables"]; ok {
		t.Error("boundVariables kept inside gradient stop")
	}
	if stop["position"] != 0.0 {
		t.Errorf("position = %v, want 0", stop["position"])
	}

	// The caller's value is left untouched.
	if _, ok := in[0]["pluginData"]; !ok {
		t.Error("input paint lost pluginData")
	}
	inStop := in[0]["gradientStops"].([]any)[0].(map[string]any)
	if _, ok := inStop["boundVariables"]; !ok {
		t.Error("input stop lost boundVariables")
	}
}

func TestPaletteListEmpty(t *testing.T) {
	if got := newPalette().list(); got != nil {
		t.Errorf("list() = %v, want nil", got)
	}
}
