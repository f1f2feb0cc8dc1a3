// Package pipeline runs the standard sequence of antenna map queries.
//
// This package implements the load → query pipeline shared by every CLI
// command. By centralizing this logic, each command behaves the same way
// whether it runs one query or the whole sequence.
//
// # Sequence
//
// [Runner.Execute] performs, in order:
//
//  1. Load: read the map (writing the default map when it is missing)
//  2. Interference: project the interference cells onto the map bounds
//  3. DFS and BFS from the configured start cells
//  4. Paths: enumerate every simple path between two cells
//  5. Intersections: find where the links of two frequencies cross
//
// A query whose start cell holds no antenna is skipped, not fatal. A path
// query with a missing endpoint or mixed frequencies records the error in
// [Result.PathErr] and the run continues.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Paths.Count)
//
// Run individual stages:
//
//	m, g, created, err := runner.Load(ctx, "data/mapa.bin")
//	order, err := runner.Traverse(ctx, g, pipeline.DFS, geom.Pt(5, 7))
//	paths, err := runner.Paths(ctx, g, pipeline.PathQuery{From: from, To: to})
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/antennamap/antennamap/pkg/antenna"
	"github.com/antennamap/antennamap/pkg/antenna/crossing"
	"github.com/antennamap/antennamap/pkg/antenna/interference"
	"github.com/antennamap/antennamap/pkg/antenna/search"
	"github.com/antennamap/antennamap/pkg/errors"
	"github.com/antennamap/antennamap/pkg/geom"
	mapio "github.com/antennamap/antennamap/pkg/io"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultMapPath is where the map is read from, and where the default map
	// is written when missing.
	DefaultMapPath = "data/mapa.bin"

	// DefaultFreqA and DefaultFreqB are the frequencies checked for crossings.
	DefaultFreqA = "A"
	DefaultFreqB = "0"
)

// Default query cells of the sample map.
var (
	DefaultDFSStart = geom.Pt(5, 7)
	DefaultBFSStart = geom.Pt(8, 8)
	DefaultPathFrom = geom.Pt(4, 4)
	DefaultPathTo   = geom.Pt(7, 3)
)

// Traversal kinds accepted by [Runner.Traverse].
type Traversal string

const (
	DFS Traversal = "dfs"
	BFS Traversal = "bfs"
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options configures a pipeline run. Nil start cells and empty frequencies
// skip the corresponding query.
type Options struct {
	MapPath string `json:"map_path"`

	// Rows and Cols bound the interference projection. Zero means the size
	// of the loaded map.
	Rows int `json:"rows,omitempty"`
	Cols int `json:"cols,omitempty"`

	DFSStart *geom.Point `json:"dfs,omitempty"`
	BFSStart *geom.Point `json:"bfs,omitempty"`
	PathFrom *geom.Point `json:"from,omitempty"`
	PathTo   *geom.Point `json:"to,omitempty"`
	FreqA    string      `json:"freq_a,omitempty"`
	FreqB    string      `json:"freq_b,omitempty"`

	// MaxPaths stops path enumeration after that many paths. Zero means no
	// limit.
	MaxPaths int `json:"max_paths,omitempty"`

	// Refresh ignores cached path results.
	Refresh bool `json:"refresh,omitempty"`

	Logger *log.Logger `json:"-"`

	validated bool
}

// DefaultOptions returns the sample sequence: the default map, DFS from
// (5,7), BFS from (8,8), paths (4,4) to (7,3) and crossings of A and 0.
func DefaultOptions() Options {
	dfs, bfs, from, to := DefaultDFSStart, DefaultBFSStart, DefaultPathFrom, DefaultPathTo
	return Options{
		MapPath:  DefaultMapPath,
		DFSStart: &dfs,
		BFSStart: &bfs,
		PathFrom: &from,
		PathTo:   &to,
		FreqA:    DefaultFreqA,
		FreqB:    DefaultFreqB,
	}
}

// ValidateAndSetDefaults checks the options and fills in defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.MapPath == "" {
		o.MapPath = DefaultMapPath
	}
	if err := errors.ValidatePath(o.MapPath); err != nil {
		return err
	}
	if o.Rows < 0 || o.Cols < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "bounds must not be negative, got %dx%d", o.Rows, o.Cols)
	}
	if (o.Rows == 0) != (o.Cols == 0) {
		return errors.New(errors.ErrCodeInvalidInput, "set both rows and cols, or neither")
	}
	if (o.PathFrom == nil) != (o.PathTo == nil) {
		return errors.New(errors.ErrCodeInvalidInput, "a path query needs both endpoints")
	}
	if (o.FreqA == "") != (o.FreqB == "") {
		return errors.New(errors.ErrCodeInvalidInput, "an intersection query needs two frequencies")
	}
	for _, f := range []string{o.FreqA, o.FreqB} {
		if f == "" {
			continue
		}
		if _, err := ParseFrequency(f); err != nil {
			return err
		}
	}
	if o.MaxPaths < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "max paths must not be negative, got %d", o.MaxPaths)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// ParseFrequency converts a one-character string to a frequency.
func ParseFrequency(s string) (antenna.Frequency, error) {
	if len(s) != 1 {
		return 0, errors.New(errors.ErrCodeInvalidInput, "frequency %q must be a single character", s)
	}
	if err := errors.ValidateFrequency(s[0]); err != nil {
		return 0, err
	}
	return antenna.Frequency(s[0]), nil
}

// =============================================================================
// Result
// =============================================================================

// Result contains the outputs of a pipeline run. Fields of skipped queries
// are left zero.
type Result struct {
	Map     mapio.Map
	Graph   *antenna.Graph
	Bounds  interference.Bounds
	Created bool // the default map was written

	Interference interference.Cells
	DFS          []antenna.ID
	BFS          []antenna.ID

	Paths          search.PathSet
	PathsTruncated bool
	PathErr        error

	Intersections crossing.Result

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Antennas  int
	Edges     int
	LoadTime  time.Duration
	QueryTime time.Duration
}

// CacheInfo tracks which queries were answered from the cache.
type CacheInfo struct {
	PathsHit bool
}
