// Package antenna provides the graph store for antenna maps.
//
// # Overview
//
// An antenna is a point on an integer grid tagged with a frequency symbol.
// Antennas that share a frequency are related: the graph connects every pair
// of same-frequency antennas, so each frequency class forms a complete
// subgraph (clique). Antennas of different frequencies are never connected.
//
// # Basic Usage
//
// Create a graph with [New], add antennas with [Graph.AddAntenna], then run
// the pairwise connection pass with [Graph.Connect] once every antenna exists:
//
//	g := antenna.New()
//	a, _ := g.AddAntenna('A', 6, 5)
//	b, _ := g.AddAntenna('A', 8, 8)
//	g.Connect()
//	g.HasEdge(a, b) // true
//
// Individual edges can also be added with [Graph.AddEdge]. Adding an edge that
// already exists is a no-op, and edges between different frequencies are
// rejected with a FREQUENCY_MISMATCH error.
//
// # Handles
//
// Antennas are stored in an arena and addressed by [ID], their insertion
// index. IDs are stable for the lifetime of the graph and double as the
// deterministic total order used wherever an undirected edge must be counted
// once. Identity is positional: [Graph.AddAntenna] rejects a second antenna
// at an occupied coordinate, and [Graph.FindVertex] resolves a coordinate to
// at most one antenna through an R-tree index.
//
// # Adjacency Order
//
// Each antenna keeps its neighbours in edge insertion order. [Graph.Neighbors]
// yields them most-recently-added first, which is the fixed order every
// traversal uses, so DFS and BFS output is reproducible. [Graph.Connect]
// pairs antennas newest first, so on a loaded map every antenna lists its
// class in ascending ID (row-major) order.
//
// # Visited Markers
//
// Traversal state is not stored on antennas. Searches own a [Marks] set keyed
// by ID and reset it with [Graph.ResetVisited] before every call, so separate
// marker sets can walk one graph independently.
//
// # Concurrency
//
// Graph instances are not safe for concurrent mutation. Once built, a graph
// may be read from multiple goroutines as long as each uses its own [Marks].
package antenna
