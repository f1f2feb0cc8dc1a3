package antenna

import (
	"slices"

	"github.com/dhconnelly/rtreego"

	"github.com/antennamap/antennamap/pkg/geom"
)

// cellTol is the half-width of the box indexed around each grid point. Boxes
// of neighbouring cells never touch, so a search returns at most the antenna
// at the queried cell.
const cellTol = 0.25

// indexEntry wraps an antenna for R-tree storage.
type indexEntry struct {
	id   ID
	bbox rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *indexEntry) Bounds() rtreego.Rect { return e.bbox }

func newIndexEntry(a Antenna) (*indexEntry, error) {
	bbox, err := rtreego.NewRect(
		rtreego.Point{float64(a.Pos.X) - cellTol, float64(a.Pos.Y) - cellTol},
		[]float64{2 * cellTol, 2 * cellTol},
	)
	if err != nil {
		return nil, err
	}
	return &indexEntry{id: a.ID, bbox: bbox}, nil
}

// cellRect is the query box for a single grid cell.
func cellRect(p geom.Point) rtreego.Rect {
	// Lengths are positive constants, so NewRect cannot fail.
	r, _ := rtreego.NewRect(
		rtreego.Point{float64(p.X) - cellTol, float64(p.Y) - cellTol},
		[]float64{2 * cellTol, 2 * cellTol},
	)
	return r
}

// Within returns the antennas whose positions fall inside the inclusive box
// [lo, hi], in ID order.
func (g *Graph) Within(lo, hi geom.Point) []ID {
	if len(g.antennas) == 0 || hi.X < lo.X || hi.Y < lo.Y {
		return nil
	}
	box, err := rtreego.NewRect(
		rtreego.Point{float64(lo.X) - cellTol, float64(lo.Y) - cellTol},
		[]float64{float64(hi.X-lo.X) + 2*cellTol, float64(hi.Y-lo.Y) + 2*cellTol},
	)
	if err != nil {
		return nil
	}
	var ids []ID
	for _, s := range g.index.SearchIntersect(box) {
		ids = append(ids, s.(*indexEntry).id)
	}
	slices.Sort(ids)
	return ids
}
