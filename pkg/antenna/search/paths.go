package search

import (
	"context"
	stderrors "errors"
	"slices"

	"github.com/antennamap/antennamap/pkg/antenna"
	"github.com/antennamap/antennamap/pkg/errors"
)

// AllPaths returns every simple path from src to dst.
//
// Returns VERTEX_NOT_FOUND, with an *errors.MissingEndpoints cause naming the
// absent side, when either handle is unknown, and FREQUENCY_MISMATCH when the
// endpoints broadcast on different frequencies. Finding no path is not an
// error. When src == dst the result is the single trivial path [src].
func (s *Searcher) AllPaths(src, dst antenna.ID) (PathSet, error) {
	var set PathSet
	err := s.WalkPaths(context.Background(), src, dst, func(p Path) error {
		set.Paths = append(set.Paths, p)
		return nil
	})
	if err != nil {
		return PathSet{}, err
	}
	set.Count = len(set.Paths)
	return set, nil
}

// WalkPaths calls fn for every simple path from src to dst, in the order
// AllPaths would list them. Each path passed to fn is a fresh copy.
//
// The walk stops when ctx is done, returning ctx.Err(), or when fn returns an
// error. If that error is ErrStop, WalkPaths returns nil.
func (s *Searcher) WalkPaths(ctx context.Context, src, dst antenna.ID, fn func(Path) error) error {
	if err := s.checkEndpoints(src, dst); err != nil {
		return err
	}
	s.ResetVisited()

	w := walker{s: s, ctx: ctx, dst: dst, fn: fn}
	err := w.walk(src)
	if stderrors.Is(err, ErrStop) {
		return nil
	}
	return err
}

func (s *Searcher) checkEndpoints(src, dst antenna.ID) error {
	missing := errors.MissingEndpoints{Source: !s.g.Valid(src), Destination: !s.g.Valid(dst)}
	if missing.Source || missing.Destination {
		return errors.Wrap(errors.ErrCodeVertexNotFound, &missing, "path %d -> %d", src, dst)
	}
	a, _ := s.g.Antenna(src)
	b, _ := s.g.Antenna(dst)
	if a.Freq != b.Freq {
		return errors.New(errors.ErrCodeFrequencyMismatch,
			"no path between %s and %s: frequencies differ", a, b)
	}
	return nil
}

type walker struct {
	s      *Searcher
	ctx    context.Context
	dst    antenna.ID
	fn     func(Path) error
	prefix Path
}

func (w *walker) walk(v antenna.ID) error {
	if err := w.ctx.Err(); err != nil {
		return err
	}
	w.prefix = append(w.prefix, v)
	defer func() { w.prefix = w.prefix[:len(w.prefix)-1] }()

	if v == w.dst {
		return w.fn(slices.Clone(w.prefix))
	}

	w.s.marks.Mark(v)
	defer w.s.marks.Unmark(v)
	for n := range w.s.g.Neighbors(v) {
		if w.s.marks.Visited(n) {
			continue
		}
		if err := w.walk(n); err != nil {
			return err
		}
	}
	return nil
}
