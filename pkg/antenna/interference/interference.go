// Package interference projects the cells disturbed by aligned antenna pairs.
//
// Two antennas on the same frequency interfere when the vector between them
// is aligned: horizontal, vertical, diagonal, or with a 1:2 or 1:3 slope in
// either direction. An aligned pair u, v with offset d = v - u disturbs the
// two cells that extend the line by one step past each end, u - d and v + d.
// A projected cell only counts when it lies on the map and is not occupied by
// an antenna. Each cell is reported once however many pairs project onto it.
package interference

import (
	"slices"

	"github.com/antennamap/antennamap/pkg/antenna"
	"github.com/antennamap/antennamap/pkg/geom"
)

// Bounds is the extent of a map in cells.
type Bounds struct {
	Rows int
	Cols int
}

// Contains reports whether p lies on the map.
func (b Bounds) Contains(p geom.Point) bool {
	return p.X >= 0 && p.X < b.Cols && p.Y >= 0 && p.Y < b.Rows
}

// Aligned reports whether delta falls in one of the alignment classes.
func Aligned(delta geom.Point) bool {
	dx, dy := geom.Abs(delta.X), geom.Abs(delta.Y)
	return dx == 0 || dy == 0 ||
		dx == dy ||
		dx == 2*dy || 2*dx == dy ||
		dx == 3*dy || 3*dx == dy
}

// Cells is a set of interference cells.
type Cells struct {
	set map[geom.Point]struct{}
}

// Contains reports whether p is an interference cell.
func (c Cells) Contains(p geom.Point) bool {
	_, ok := c.set[p]
	return ok
}

// Len returns the number of cells.
func (c Cells) Len() int { return len(c.set) }

// Points returns the cells in row-major order.
func (c Cells) Points() []geom.Point {
	out := make([]geom.Point, 0, len(c.set))
	for p := range c.set {
		out = append(out, p)
	}
	slices.SortFunc(out, geom.Compare)
	return out
}

// Project computes the interference cells of g inside bounds.
func Project(g *antenna.Graph, bounds Bounds) Cells {
	cells := Cells{set: make(map[geom.Point]struct{})}
	mark := func(p geom.Point) {
		if !bounds.Contains(p) {
			return
		}
		if _, occupied := g.Find(p); occupied {
			return
		}
		cells.set[p] = struct{}{}
	}

	for _, f := range g.Frequencies() {
		class := g.ByFrequency(f)
		for _, vi := range class {
			v, _ := g.Antenna(vi)
			for _, ui := range class {
				if ui == vi {
					continue
				}
				u, _ := g.Antenna(ui)
				d := u.Pos.Sub(v.Pos)
				if !Aligned(d) {
					continue
				}
				mark(v.Pos.Sub(d))
				mark(u.Pos.Add(d))
			}
		}
	}
	return cells
}
