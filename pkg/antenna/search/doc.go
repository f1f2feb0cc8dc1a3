// Package search implements traversals and path enumeration over an
// [antenna.Graph].
//
// A [Searcher] owns the visited markers of one graph walk. Every entry point
// resets them before it starts, so a Searcher can be reused for any number of
// queries, and two Searchers can walk the same graph independently:
//
//	s := search.New(g)
//	order, err := s.DFS(start)
//	set, err := s.AllPaths(src, dst)
//
// Neighbours are visited in the graph's fixed adjacency order (most recently
// connected first), which makes every result reproducible.
//
// # Path Enumeration
//
// [Searcher.AllPaths] lists every simple path between two antennas of the same
// frequency by backtracking over a single shared prefix. Within a complete
// subgraph of n antennas the number of paths grows factorially with n; use
// [Searcher.WalkPaths] to stream paths under a context and stop early with
// [ErrStop].
package search
