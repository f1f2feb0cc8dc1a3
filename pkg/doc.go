// Package pkg provides the core libraries for antenna map analysis.
//
// # Overview
//
// An antenna map is a grid where some cells hold an antenna broadcasting on
// a frequency symbol. Antennas on the same frequency are linked, so each
// frequency forms a complete subgraph. The pkg directory is organized into
// these areas:
//
//  1. [antenna] - Graph store, visited markers and the spatial index
//  2. [antenna/search] - DFS, BFS and simple path enumeration
//  3. [antenna/crossing] and [antenna/interference] - Geometric queries
//  4. [io] - Binary, text and JSON map formats
//  5. [render] - Text grids and node-link diagrams
//  6. [pipeline] - Orchestration (load → query), with [cache] and [observability]
//
// # Architecture
//
// The typical data flow:
//
//	Map file (.bin / text / .json)
//	         ↓
//	    [io] package (decode grid, build graph, connect classes)
//	         ↓
//	    [antenna] package (graph + R-tree index)
//	         ↓
//	    [antenna/search], [antenna/crossing], [antenna/interference]
//	         ↓
//	    Text report, JSON, DOT/SVG/PDF/PNG output
//
// # Quick Start
//
//	import (
//	    "github.com/antennamap/antennamap/pkg/antenna/search"
//	    "github.com/antennamap/antennamap/pkg/geom"
//	    mapio "github.com/antennamap/antennamap/pkg/io"
//	)
//
//	// 1. Load the map and build its graph
//	m, _ := mapio.Load("data/mapa.bin")
//	g, _ := m.Graph()
//
//	// 2. Resolve two antennas and enumerate the paths between them
//	src, _ := g.Find(geom.Pt(4, 4))
//	dst, _ := g.Find(geom.Pt(7, 3))
//	paths, _ := search.New(g).AllPaths(src, dst)
//
// # Error Handling
//
// Libraries return [errors.Error] values carrying a machine-readable code
// such as VERTEX_NOT_FOUND or FREQUENCY_MISMATCH. Use [errors.Is] to test
// the code and [errors.UserMessage] for display.
//
// # Thread Safety
//
// A built graph may be shared by readers. Each search owns its visited
// markers, so concurrent queries must use separate searchers.
package pkg
