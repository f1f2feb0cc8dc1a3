// Package render draws antenna graphs for terminals and image files.
//
// # Overview
//
// The package provides:
//
//   - Text rendering of the map grid ([Grid], [Text])
//   - An adjacency listing of the graph ([Adjacency])
//   - Generic format conversion (SVG to PDF/PNG)
//   - Node-link diagrams (in [nodelink] subpackage)
//
// # Map Grid
//
// [Grid] returns one string per map row. Empty cells are '.', antennas show
// their frequency symbol and interference cells are '#':
//
//	rows := render.Grid(g, bounds, interference.Project(g, bounds))
//
// An interference mark never replaces an antenna.
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg).
//
//	svg, err := nodelink.RenderSVG(dot)
//	pdf, err := render.ToPDF(ctx, svg)
//
// [nodelink]: github.com/antennamap/antennamap/pkg/render/nodelink
package render
