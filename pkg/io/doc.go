// Package io reads and writes antenna maps and graphs.
//
// # Map Files
//
// A map is a grid of cells. Each cell is either empty ('.') or holds the
// frequency symbol of one antenna. Two encodings are supported:
//
// Binary (extension .bin): two little-endian 32-bit integers, rows then
// columns, followed by rows*cols bytes in row-major order.
//
// Text (any other extension): one line per row, every row the same width:
//
//	............
//	.......0....
//	....0.......
//	......A.....
//
// Use [Load] to read either format from a path, or [ReadBinary] and
// [ReadText] for any io.Reader. [LoadOrCreate] writes [DefaultMap] to a
// missing path before loading it, so a fresh checkout always has a map.
//
// [Map.Graph] turns a map into an [antenna.Graph]: every non-empty cell
// becomes an antenna (IDs in row-major order), then every pair of antennas on
// the same frequency is connected.
//
// # JSON Format
//
// [WriteJSON] and [ReadJSON] exchange a graph as node-link JSON:
//
//	{
//	  "antennas": [
//	    {"id": 0, "freq": "0", "x": 7, "y": 3},
//	    {"id": 1, "freq": "0", "x": 4, "y": 4}
//	  ],
//	  "edges": [
//	    {"from": 0, "to": 1}
//	  ]
//	}
//
// Edge endpoints refer to antenna ids within the document. Imported graphs
// are rebuilt from scratch, so ids are renumbered in document order.
//
// # Concurrency
//
// Functions in this package do not retain their arguments. Writers are safe
// to call concurrently with other readers of the same graph.
package io
