package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/antennamap/antennamap/pkg/antenna"
	"github.com/antennamap/antennamap/pkg/antenna/interference"
	"github.com/antennamap/antennamap/pkg/errors"
)

// Grid draws the map of g. Antennas outside bounds are not drawn.
func Grid(g *antenna.Graph, bounds interference.Bounds, cells interference.Cells) []string {
	if bounds.Rows <= 0 || bounds.Cols <= 0 {
		return nil
	}
	grid := make([][]byte, bounds.Rows)
	for y := range grid {
		grid[y] = []byte(strings.Repeat(string(errors.EmptyCell), bounds.Cols))
	}
	for _, a := range g.Antennas() {
		if bounds.Contains(a.Pos) {
			grid[a.Pos.Y][a.Pos.X] = byte(a.Freq)
		}
	}
	for _, p := range cells.Points() {
		if bounds.Contains(p) && grid[p.Y][p.X] == errors.EmptyCell {
			grid[p.Y][p.X] = errors.InterferenceCell
		}
	}

	out := make([]string, bounds.Rows)
	for y, row := range grid {
		out[y] = string(row)
	}
	return out
}

// Text writes the map of g with its interference cells to w, one row per
// line.
func Text(w io.Writer, g *antenna.Graph, bounds interference.Bounds) error {
	bw := bufio.NewWriter(w)
	for _, row := range Grid(g, bounds, interference.Project(g, bounds)) {
		bw.WriteString(row)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Adjacency writes one line per antenna listing its neighbours in traversal
// order:
//
//	Antenna A (6,5) -> A(7,10)  A(8,8)
//	Antenna B (1,1) -> no connections
func Adjacency(w io.Writer, g *antenna.Graph) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Graph (%d antennas):\n", g.Len())
	for _, a := range g.Antennas() {
		fmt.Fprintf(bw, "Antenna %s %s -> ", a.Freq, a.Pos)
		var parts []string
		for id := range g.Neighbors(a.ID) {
			n, _ := g.Antenna(id)
			parts = append(parts, n.String())
		}
		if len(parts) == 0 {
			bw.WriteString("no connections")
		} else {
			bw.WriteString(strings.Join(parts, "  "))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
