package antenna

import (
	"iter"
	"slices"

	"github.com/dhconnelly/rtreego"

	"github.com/antennamap/antennamap/pkg/errors"
	"github.com/antennamap/antennamap/pkg/geom"
)

// ID is the stable handle of an antenna inside a [Graph]. IDs are assigned in
// insertion order starting at zero.
type ID int

// NoID is the handle returned when a lookup fails.
const NoID ID = -1

// Frequency is the symbol an antenna broadcasts on, e.g. 'A' or '0'.
type Frequency byte

// String returns the symbol as a one-character string.
func (f Frequency) String() string { return string(rune(f)) }

// Antenna is a vertex of the graph.
type Antenna struct {
	ID   ID
	Freq Frequency
	Pos  geom.Point
}

// String formats the antenna as "A(x,y)".
func (a Antenna) String() string { return a.Freq.String() + a.Pos.String() }

// Edge is an undirected connection. From is always the lower ID.
type Edge struct {
	From ID
	To   ID
}

func normEdge(u, v ID) Edge {
	if u > v {
		u, v = v, u
	}
	return Edge{From: u, To: v}
}

// Graph holds antennas and their same-frequency adjacency.
//
// The zero value is not usable - use New to create a valid Graph.
type Graph struct {
	antennas []Antenna
	adj      [][]ID            // insertion order, per antenna
	edgeSet  map[Edge]struct{} // normalised edges for O(1) dedup
	edges    []Edge            // normalised edges in insertion order
	index    *rtreego.Rtree
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		edgeSet: make(map[Edge]struct{}),
		index:   rtreego.NewTree(2, 4, 16),
	}
}

// Len returns the number of antennas in the graph.
func (g *Graph) Len() int { return len(g.antennas) }

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Valid reports whether id refers to an antenna of g.
func (g *Graph) Valid(id ID) bool { return id >= 0 && int(id) < len(g.antennas) }

// AddAntenna inserts an antenna and returns its handle.
//
// Returns INVALID_INPUT if freq is not a usable frequency symbol, or
// DUPLICATE_ANTENNA if another antenna already occupies (x, y).
func (g *Graph) AddAntenna(freq Frequency, x, y int) (ID, error) {
	if err := errors.ValidateFrequency(byte(freq)); err != nil {
		return NoID, err
	}
	if other, ok := g.FindVertex(x, y); ok {
		return NoID, errors.New(errors.ErrCodeDuplicateAntenna,
			"position (%d,%d) already holds antenna %s", x, y, g.antennas[other])
	}

	id := ID(len(g.antennas))
	a := Antenna{ID: id, Freq: freq, Pos: geom.Pt(x, y)}
	entry, err := newIndexEntry(a)
	if err != nil {
		return NoID, errors.Wrap(errors.ErrCodeInternal, err, "index antenna %s", a)
	}

	g.antennas = append(g.antennas, a)
	g.adj = append(g.adj, nil)
	g.index.Insert(entry)
	return id, nil
}

// AddEdge connects u and v.
//
// Returns VERTEX_NOT_FOUND if either handle is unknown, INVALID_INPUT for a
// self loop, or FREQUENCY_MISMATCH if the antennas broadcast on different
// frequencies. Adding an existing edge is a no-op and returns nil.
func (g *Graph) AddEdge(u, v ID) error {
	if !g.Valid(u) || !g.Valid(v) {
		return errors.New(errors.ErrCodeVertexNotFound, "edge %d-%d references an unknown antenna", u, v)
	}
	if u == v {
		return errors.New(errors.ErrCodeInvalidInput, "antenna %s cannot connect to itself", g.antennas[u])
	}
	au, av := g.antennas[u], g.antennas[v]
	if au.Freq != av.Freq {
		return errors.New(errors.ErrCodeFrequencyMismatch,
			"cannot connect %s and %s: frequencies differ", au, av)
	}

	e := normEdge(u, v)
	if _, exists := g.edgeSet[e]; exists {
		return nil
	}
	g.edgeSet[e] = struct{}{}
	g.edges = append(g.edges, e)
	g.adj[u] = append(g.adj[u], v)
	g.adj[v] = append(g.adj[v], u)
	return nil
}

// Connect adds an edge between every pair of same-frequency antennas and
// returns the number of edges created. It is the second pass of map loading
// and must run after every antenna has been added.
//
// Both loops of the pairing run from the newest antenna to the oldest, so
// afterwards [Graph.Neighbors] yields each antenna's class in ascending ID
// order.
func (g *Graph) Connect() int {
	before := len(g.edges)
	for _, class := range g.classes() {
		for i := len(class) - 1; i >= 0; i-- {
			for j := len(class) - 1; j >= 0; j-- {
				if i != j {
					_ = g.AddEdge(class[i], class[j]) // same class: cannot fail
				}
			}
		}
	}
	return len(g.edges) - before
}

// classes groups antenna IDs by frequency, preserving ID order within a class.
func (g *Graph) classes() [][]ID {
	byFreq := make(map[Frequency][]ID)
	for _, a := range g.antennas {
		byFreq[a.Freq] = append(byFreq[a.Freq], a.ID)
	}
	out := make([][]ID, 0, len(byFreq))
	for _, f := range g.Frequencies() {
		out = append(out, byFreq[f])
	}
	return out
}

// FindVertex returns the antenna at exactly (x, y).
func (g *Graph) FindVertex(x, y int) (ID, bool) {
	if len(g.antennas) == 0 {
		return NoID, false
	}
	p := geom.Pt(x, y)
	for _, s := range g.index.SearchIntersect(cellRect(p)) {
		e := s.(*indexEntry)
		if g.antennas[e.id].Pos == p {
			return e.id, true
		}
	}
	return NoID, false
}

// Find is FindVertex for a point.
func (g *Graph) Find(p geom.Point) (ID, bool) { return g.FindVertex(p.X, p.Y) }

// Antenna returns the antenna with the given handle.
func (g *Graph) Antenna(id ID) (Antenna, bool) {
	if !g.Valid(id) {
		return Antenna{}, false
	}
	return g.antennas[id], true
}

// Antennas returns a copy of all antennas in ID order.
func (g *Graph) Antennas() []Antenna { return slices.Clone(g.antennas) }

// Neighbors yields the antennas adjacent to id, most recently connected
// first. Yields nothing for an unknown handle.
func (g *Graph) Neighbors(id ID) iter.Seq[ID] {
	return func(yield func(ID) bool) {
		if !g.Valid(id) {
			return
		}
		adj := g.adj[id]
		for i := len(adj) - 1; i >= 0; i-- {
			if !yield(adj[i]) {
				return
			}
		}
	}
}

// Degree returns the number of antennas adjacent to id.
func (g *Graph) Degree(id ID) int {
	if !g.Valid(id) {
		return 0
	}
	return len(g.adj[id])
}

// HasEdge reports whether u and v are connected.
func (g *Graph) HasEdge(u, v ID) bool {
	_, ok := g.edgeSet[normEdge(u, v)]
	return ok
}

// Edges returns a copy of all edges in insertion order, each undirected edge
// exactly once with the lower ID first.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// EdgesOf returns the edges whose endpoints both broadcast on f.
func (g *Graph) EdgesOf(f Frequency) []Edge {
	var out []Edge
	for _, e := range g.edges {
		if g.antennas[e.From].Freq == f {
			out = append(out, e)
		}
	}
	return out
}

// Frequencies returns the distinct frequencies present, sorted ascending.
func (g *Graph) Frequencies() []Frequency {
	seen := make(map[Frequency]bool)
	var out []Frequency
	for _, a := range g.antennas {
		if !seen[a.Freq] {
			seen[a.Freq] = true
			out = append(out, a.Freq)
		}
	}
	slices.Sort(out)
	return out
}

// ByFrequency returns the IDs of antennas broadcasting on f in ID order.
func (g *Graph) ByFrequency(f Frequency) []ID {
	var out []ID
	for _, a := range g.antennas {
		if a.Freq == f {
			out = append(out, a.ID)
		}
	}
	return out
}

// Release drops every antenna, edge and index entry as one unit. The graph
// is empty and reusable afterwards; handles obtained before Release are
// invalid.
func (g *Graph) Release() {
	*g = *New()
}

// ResetVisited sizes m to the graph and clears every marker. Searches call
// it before they start; a marker set is never assumed clean.
func (g *Graph) ResetVisited(m *Marks) {
	m.reset(len(g.antennas))
}

// NewMarks returns a cleared marker set sized to g.
func (g *Graph) NewMarks() *Marks {
	m := &Marks{}
	g.ResetVisited(m)
	return m
}
