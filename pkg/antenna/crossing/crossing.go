// Package crossing finds where the links of two frequency classes cross.
//
// Every edge of a graph is a straight segment between two antennas. [Find]
// tests each edge of one frequency against each edge of another and reports
// the distinct grid points where they meet. Points are deduplicated by
// coordinate; the first pair of segments found at a point is the one kept.
package crossing

import (
	"fmt"

	"github.com/antennamap/antennamap/pkg/antenna"
	"github.com/antennamap/antennamap/pkg/geom"
)

// Segment is an edge resolved to its two antennas.
type Segment struct {
	U, V antenna.Antenna
}

// String formats the segment as "A(0,0)-A(4,4)".
func (s Segment) String() string { return s.U.String() + "-" + s.V.String() }

func (s Segment) geom() geom.Segment { return geom.Segment{A: s.U.Pos, B: s.V.Pos} }

// Intersection is a point where a segment of each frequency meets.
type Intersection struct {
	Point geom.Point
	A     Segment // segment of the first frequency
	B     Segment // segment of the second frequency
}

// String formats the intersection as "A(0,0)-A(4,4) x 0(0,4)-0(4,0) at (2,2)".
func (i Intersection) String() string {
	return fmt.Sprintf("%s x %s at %s", i.A, i.B, i.Point)
}

// Result lists distinct intersections in discovery order.
type Result struct {
	Intersections []Intersection
	Count         int
}

// Find reports the distinct points where an edge of freqA crosses an edge of
// freqB. Edges are taken in the graph's stable order (each undirected edge
// once, lower ID first), so results are reproducible.
func Find(g *antenna.Graph, freqA, freqB antenna.Frequency) Result {
	as := segments(g, freqA)
	bs := segments(g, freqB)

	var res Result
	seen := make(map[geom.Point]bool)
	for _, a := range as {
		for _, b := range bs {
			p, ok := a.geom().Intersect(b.geom())
			if !ok || seen[p] {
				continue
			}
			seen[p] = true
			res.Intersections = append(res.Intersections, Intersection{Point: p, A: a, B: b})
		}
	}
	res.Count = len(res.Intersections)
	return res
}

func segments(g *antenna.Graph, f antenna.Frequency) []Segment {
	edges := g.EdgesOf(f)
	out := make([]Segment, 0, len(edges))
	for _, e := range edges {
		u, _ := g.Antenna(e.From)
		v, _ := g.Antenna(e.To)
		out = append(out, Segment{U: u, V: v})
	}
	return out
}
