package search

import (
	stderrors "errors"

	"github.com/antennamap/antennamap/pkg/antenna"
	"github.com/antennamap/antennamap/pkg/errors"
)

// ErrStop may be returned by a WalkPaths callback to end the walk early.
// WalkPaths then returns nil.
var ErrStop = stderrors.New("search: stop walk")

// Path is a sequence of antennas from source to destination.
type Path []antenna.ID

// PathSet is the result of AllPaths.
type PathSet struct {
	Paths []Path
	Count int
}

// Searcher runs queries against one graph with its own visited markers.
// It is not safe for concurrent use.
type Searcher struct {
	g     *antenna.Graph
	marks *antenna.Marks
}

// New returns a Searcher over g.
func New(g *antenna.Graph) *Searcher {
	return &Searcher{g: g, marks: g.NewMarks()}
}

// Visited reports whether id was reached by the last query.
func (s *Searcher) Visited(id antenna.ID) bool { return s.marks.Visited(id) }

// ResetVisited clears every marker and resizes the set to the graph.
func (s *Searcher) ResetVisited() { s.g.ResetVisited(s.marks) }

func (s *Searcher) checkStart(start antenna.ID) error {
	if !s.g.Valid(start) {
		return errors.New(errors.ErrCodeInvalidStart, "start antenna %d does not exist", start)
	}
	return nil
}

// DFS returns the antennas reachable from start in depth-first preorder.
// An antenna is emitted when it is first entered.
func (s *Searcher) DFS(start antenna.ID) ([]antenna.ID, error) {
	if err := s.checkStart(start); err != nil {
		return nil, err
	}
	s.ResetVisited()

	var order []antenna.ID
	var visit func(v antenna.ID)
	visit = func(v antenna.ID) {
		s.marks.Mark(v)
		order = append(order, v)
		for w := range s.g.Neighbors(v) {
			if !s.marks.Visited(w) {
				visit(w)
			}
		}
	}
	visit(start)
	return order, nil
}

// BFS returns the antennas reachable from start in breadth-first order.
// Antennas are marked when enqueued, so none is queued twice.
func (s *Searcher) BFS(start antenna.ID) ([]antenna.ID, error) {
	if err := s.checkStart(start); err != nil {
		return nil, err
	}
	s.ResetVisited()

	s.marks.Mark(start)
	queue := []antenna.ID{start}
	order := make([]antenna.ID, 0, s.g.Len())
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		order = append(order, v)
		for w := range s.g.Neighbors(v) {
			if s.marks.Mark(w) {
				queue = append(queue, w)
			}
		}
	}
	return order, nil
}
