// Package nodelink draws the topology of a vector network as a node-link
// diagram.
//
// # Overview
//
// The diagram is a debugging aid for connectivity: which vertices are
// joined, which segments region loops account for, and which ones the
// encoder will carry as open paths. It does not draw the shape itself.
//
// # Usage
//
// Convert a network to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(n, nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # Options
//
//   - Detailed: vertex labels include coordinates and non-default styling
//   - Geometric: vertices are pinned at their coordinates (neato layout)
//
// # DOT Format
//
// The [ToDOT] function produces Graphviz DOT source that can be:
//
//   - Rendered directly via [RenderSVG]
//   - Saved and processed with external Graphviz tools
//   - Customized before rendering
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering.
package nodelink
