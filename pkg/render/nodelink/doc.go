// Package nodelink renders antenna graphs as node-link diagrams.
//
// # Overview
//
// Each antenna becomes a node pinned to its grid cell and each same-frequency
// link becomes a line, so the diagram keeps the geometry of the map. Nodes
// are coloured by frequency.
//
// # Usage
//
// Convert a graph to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(g, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// For PDF or PNG output, use the render functions:
//
//	pdf, err := nodelink.RenderPDF(ctx, dot)
//	png, err := nodelink.RenderPNG(ctx, dot, 2.0)  // 2x scale
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - Detailed: label nodes with their id and position, not just the symbol
//   - Interference: draw interference cells as small grey markers
//   - Path: draw the links of one path in bold red
//
// # DOT Format
//
// [ToDOT] emits an undirected graph with neato-style pinned positions
// (pos="x,-y!"), so row 0 is drawn at the top. [RenderSVG] lays it out
// with the neato engine, which honours those positions.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package nodelink
