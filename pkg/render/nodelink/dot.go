package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/vecnet/pkg/vector"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed includes coordinates and non-default styling in vertex
	// labels. When false, only the vertex index is shown.
	Detailed bool

	// Geometric pins every vertex at its network coordinates (neato
	// layout) instead of letting Graphviz arrange the graph.
	Geometric bool
}

// pointsPerInch converts network units to Graphviz inches.
const pointsPerInch = 72.0

// ToDOT converts a vector network to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG].
//
// Vertices become nodes named v0, v1, ... Segments become directed edges:
// solid when a region loop claims the segment, dashed when it would be
// carried as an open path. Curved segments are drawn bold.
func ToDOT(n vector.Network, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	if opts.Geometric {
		buf.WriteString("  layout=neato;\n")
	} else {
		buf.WriteString("  rankdir=LR;\n")
	}
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=12, width=0.3];\n")
	buf.WriteString("  edge [arrowsize=0.6];\n")
	buf.WriteString("\n")

	for i, v := range n.Vertices {
		attrs := []string{fmt.Sprintf("label=%q", fmtLabel(i, v, opts.Detailed))}
		if opts.Geometric {
			// DOT's y axis points up.
			attrs = append(attrs, fmt.Sprintf("pos=\"%s,%s!\"",
				fmtFloat(v.X/pointsPerInch), fmtFloat(-v.Y/pointsPerInch)))
		}
		if v.HasStyle() {
			attrs = append(attrs, "fillcolor=lightyellow")
		}
		fmt.Fprintf(&buf, "  v%d [%s];\n", i, strings.Join(attrs, ", "))
	}

	claimed := make(map[[2]int]bool)
	for _, r := range n.Regions {
		for _, e := range r.Edges() {
			claimed[e] = true
		}
	}

	buf.WriteString("\n")
	for i, s := range n.Segments {
		fmt.Fprintf(&buf, "  v%d -> v%d [%s];\n", s.Start, s.End, strings.Join(edgeAttrs(i, s, claimed), ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(i int, v vector.Vertex, detailed bool) string {
	label := strconv.Itoa(i)
	if !detailed {
		return label
	}
	parts := []string{label, fmt.Sprintf("(%s, %s)", fmtFloat(v.X), fmtFloat(v.Y))}
	if v.CornerRadius != 0 {
		parts = append(parts, "r="+fmtFloat(v.CornerRadius))
	}
	if c := v.StrokeCap.OrDefault(); c != vector.StrokeCapNone {
		parts = append(parts, "cap="+string(c))
	}
	if j := v.StrokeJoin.OrDefault(); j != vector.StrokeJoinMiter {
		parts = append(parts, "join="+string(j))
	}
	if m := v.HandleMirroring.OrDefault(); m != vector.HandleMirroringNone {
		parts = append(parts, "mirror="+string(m))
	}
	return strings.Join(parts, "\n")
}

func edgeAttrs(i int, s vector.Segment, claimed map[[2]int]bool) []string {
	attrs := []string{fmt.Sprintf("tooltip=\"segment %d\"", i)}
	if !claimed[[2]int{s.Start, s.End}] {
		attrs = append(attrs, "style=dashed")
	}
	if !s.TangentStart.IsZero() || !s.TangentEnd.IsZero() {
		attrs = append(attrs, "penwidth=2")
	}
	return attrs
}

func fmtFloat(f float64) string {
	if f == 0 {
		return "0"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces the Graphviz root tag with one whose viewBox
// starts at the origin and whose size matches the drawing.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
