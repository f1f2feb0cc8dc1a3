package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/antennamap/antennamap/pkg/antenna"
	"github.com/antennamap/antennamap/pkg/antenna/interference"
	"github.com/antennamap/antennamap/pkg/render"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed labels nodes with "A#3 (6,5)" instead of the bare symbol.
	Detailed bool
	// Interference, when non-empty, is drawn as grey markers.
	Interference interference.Cells
	// Path highlights the links between consecutive antennas.
	Path []antenna.ID
}

// palette holds fill colours assigned to frequencies in sorted order.
var palette = []string{
	"#8ecae6", "#ffb703", "#90be6d", "#f28482", "#cdb4db",
	"#f4a261", "#a8dadc", "#e9c46a", "#b5838d", "#84a59d",
}

// scale is the distance in points between neighbouring grid cells.
const scale = 0.6

// ToDOT converts g to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG], [RenderPDF], or [RenderPNG].
func ToDOT(g *antenna.Graph, opts Options) string {
	colors := make(map[antenna.Frequency]string)
	for i, f := range g.Frequencies() {
		colors[f] = palette[i%len(palette)]
	}
	onPath := pathEdges(opts.Path)

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fixedsize=true, width=0.4, fontsize=12];\n")
	buf.WriteString("  edge [color=\"#00000055\"];\n")
	buf.WriteString("\n")

	for _, a := range g.Antennas() {
		fmt.Fprintf(&buf, "  %s [label=%q, fillcolor=%q, pos=%q];\n",
			nodeName(a.ID), fmtLabel(a, opts.Detailed), colors[a.Freq], pos(a.Pos.X, a.Pos.Y))
	}

	if opts.Interference.Len() > 0 {
		buf.WriteString("\n")
		for i, p := range opts.Interference.Points() {
			fmt.Fprintf(&buf, "  i%d [label=\"#\", shape=square, width=0.25, fontsize=8, fillcolor=lightgrey, color=grey, pos=%q];\n",
				i, pos(p.X, p.Y))
		}
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %s -- %s", nodeName(e.From), nodeName(e.To))
		if onPath[e] {
			buf.WriteString(" [color=red, penwidth=3]")
		}
		buf.WriteString(";\n")
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeName(id antenna.ID) string { return "a" + strconv.Itoa(int(id)) }

func pos(x, y int) string {
	return fmt.Sprintf("%.2f,%.2f!", float64(x)*scale, float64(-y)*scale)
}

func fmtLabel(a antenna.Antenna, detailed bool) string {
	if !detailed {
		return a.Freq.String()
	}
	return fmt.Sprintf("%s#%d\n%s", a.Freq, a.ID, a.Pos)
}

func pathEdges(path []antenna.ID) map[antenna.Edge]bool {
	out := make(map[antenna.Edge]bool, len(path))
	for i := 1; i < len(path); i++ {
		u, v := path[i-1], path[i]
		if u > v {
			u, v = v, u
		}
		out[antenna.Edge{From: u, To: v}] = true
	}
	return out
}

// RenderSVG renders a DOT graph to SVG using Graphviz's neato engine.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

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

// normalizeViewBox replaces the root tag so the SVG scales with its container.
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

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(ctx, svg, scale)
}

// Format names accepted by [Render].
const (
	FormatDOT = "dot"
	FormatSVG = "svg"
	FormatPDF = "pdf"
	FormatPNG = "png"
)

// Render produces the diagram of g in format.
func Render(ctx context.Context, g *antenna.Graph, format string, opts Options) ([]byte, error) {
	dot := ToDOT(g, opts)
	switch strings.ToLower(format) {
	case FormatDOT:
		return []byte(dot), nil
	case FormatSVG:
		return RenderSVG(ctx, dot)
	case FormatPDF:
		return RenderPDF(ctx, dot)
	case FormatPNG:
		return RenderPNG(ctx, dot, 2.0)
	default:
		return nil, fmt.Errorf("unknown diagram format %q", format)
	}
}
