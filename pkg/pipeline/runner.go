package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/antennamap/antennamap/pkg/antenna"
	"github.com/antennamap/antennamap/pkg/antenna/crossing"
	"github.com/antennamap/antennamap/pkg/antenna/interference"
	"github.com/antennamap/antennamap/pkg/antenna/search"
	"github.com/antennamap/antennamap/pkg/cache"
	"github.com/antennamap/antennamap/pkg/errors"
	"github.com/antennamap/antennamap/pkg/geom"
	mapio "github.com/antennamap/antennamap/pkg/io"
	"github.com/antennamap/antennamap/pkg/observability"
)

// Runner executes pipeline stages with caching and logging.
//
// The Runner holds no query state; each stage creates its own searcher.
// Multiple goroutines can use the same Runner as long as they do not share
// a graph being modified.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Execute loads the map and runs every configured query in order.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	res := &Result{}
	loadStart := time.Now()
	m, g, created, err := r.Load(ctx, opts.MapPath)
	if err != nil {
		return nil, err
	}
	res.Map, res.Graph, res.Created = m, g, created
	res.Stats.LoadTime = time.Since(loadStart)
	res.Stats.Antennas = g.Len()
	res.Stats.Edges = g.EdgeCount()

	res.Bounds = interference.Bounds{Rows: m.Rows, Cols: m.Cols}
	if opts.Rows > 0 {
		res.Bounds = interference.Bounds{Rows: opts.Rows, Cols: opts.Cols}
	}

	queryStart := time.Now()
	res.Interference = r.Interference(ctx, g, res.Bounds)

	for _, q := range []struct {
		kind  Traversal
		start *geom.Point
		out   *[]antenna.ID
	}{
		{DFS, opts.DFSStart, &res.DFS},
		{BFS, opts.BFSStart, &res.BFS},
	} {
		if q.start == nil {
			continue
		}
		order, err := r.Traverse(ctx, g, q.kind, *q.start)
		switch {
		case errors.Is(err, errors.ErrCodeInvalidStart):
			r.Logger.Warn("skipping traversal", "kind", q.kind, "start", *q.start, "reason", errors.UserMessage(err))
		case err != nil:
			return nil, err
		default:
			*q.out = order
		}
	}

	if opts.PathFrom != nil {
		pr, err := r.Paths(ctx, g, PathQuery{
			MapHash: MapHash(m),
			From:    *opts.PathFrom,
			To:      *opts.PathTo,
			Limit:   opts.MaxPaths,
			Refresh: opts.Refresh,
		})
		switch {
		case errors.Is(err, errors.ErrCodeVertexNotFound), errors.Is(err, errors.ErrCodeFrequencyMismatch):
			res.PathErr = err
			r.Logger.Warn("path query failed", "from", *opts.PathFrom, "to", *opts.PathTo, "reason", errors.UserMessage(err))
		case err != nil:
			return nil, err
		default:
			res.Paths = pr.Set
			res.PathsTruncated = pr.Truncated
			res.CacheInfo.PathsHit = pr.CacheHit
		}
	}

	if opts.FreqA != "" {
		a, _ := ParseFrequency(opts.FreqA)
		b, _ := ParseFrequency(opts.FreqB)
		res.Intersections = r.Intersections(ctx, g, a, b)
	}
	res.Stats.QueryTime = time.Since(queryStart)

	r.Logger.Info("queries complete",
		"antennas", res.Stats.Antennas,
		"edges", res.Stats.Edges,
		"paths", res.Paths.Count,
		"intersections", res.Intersections.Count,
		"duration", res.Stats.QueryTime)
	return res, nil
}

// Load reads the map at path, writing the default map first when the file
// does not exist, and builds its graph.
func (r *Runner) Load(ctx context.Context, path string) (mapio.Map, *antenna.Graph, bool, error) {
	hooks := observability.Load()
	hooks.OnLoadStart(ctx, path)
	start := time.Now()

	m, created, err := mapio.LoadOrCreate(path)
	if err != nil {
		hooks.OnLoadComplete(ctx, path, 0, 0, time.Since(start), err)
		return mapio.Map{}, nil, false, fmt.Errorf("load map: %w", err)
	}
	if created {
		hooks.OnMapCreated(ctx, path)
		r.Logger.Info("map not found, wrote default map", "path", path)
	}

	g, err := m.Graph()
	if err != nil {
		hooks.OnLoadComplete(ctx, path, 0, 0, time.Since(start), err)
		return mapio.Map{}, nil, false, fmt.Errorf("build graph: %w", err)
	}
	hooks.OnLoadComplete(ctx, path, g.Len(), g.EdgeCount(), time.Since(start), nil)

	r.Logger.Debug("loaded map",
		"path", path,
		"size", fmt.Sprintf("%dx%d", m.Rows, m.Cols),
		"antennas", g.Len(),
		"edges", g.EdgeCount(),
		"duration", time.Since(start))
	return m, g, created, nil
}

// Traverse runs a DFS or BFS from the antenna at start. An empty start cell
// is an INVALID_START error.
func (r *Runner) Traverse(ctx context.Context, g *antenna.Graph, kind Traversal, start geom.Point) ([]antenna.ID, error) {
	qk := string(kind)
	hooks := observability.Query()
	hooks.OnQueryStart(ctx, qk)
	t0 := time.Now()

	id, _ := g.Find(start)
	s := search.New(g)
	var order []antenna.ID
	var err error
	switch kind {
	case DFS:
		order, err = s.DFS(id)
	case BFS:
		order, err = s.BFS(id)
	default:
		err = errors.New(errors.ErrCodeInvalidInput, "unknown traversal %q", kind)
	}
	hooks.OnQueryComplete(ctx, qk, len(order), time.Since(t0), err)
	if err != nil {
		return nil, err
	}
	r.Logger.Debug("traversal", "kind", qk, "start", start, "visited", len(order))
	return order, nil
}

// PathQuery describes a path enumeration.
type PathQuery struct {
	// MapHash identifies the map for caching. Empty disables the cache.
	MapHash string
	From    geom.Point
	To      geom.Point
	// Limit stops the enumeration after that many paths; zero is unlimited.
	Limit int
	// Refresh skips the cache lookup but still stores the result.
	Refresh bool
}

// PathResult is the outcome of a path enumeration.
type PathResult struct {
	Set       search.PathSet
	Truncated bool // Limit was reached
	CacheHit  bool
}

type cachedPaths struct {
	Paths     []search.Path `json:"paths"`
	Truncated bool          `json:"truncated"`
}

// Paths enumerates the simple paths between the antennas at q.From and
// q.To. Missing endpoints and mixed frequencies are reported with the
// VERTEX_NOT_FOUND and FREQUENCY_MISMATCH codes.
func (r *Runner) Paths(ctx context.Context, g *antenna.Graph, q PathQuery) (PathResult, error) {
	hooks := observability.Query()
	hooks.OnQueryStart(ctx, observability.QueryPaths)
	t0 := time.Now()

	src, _ := g.Find(q.From)
	dst, _ := g.Find(q.To)
	bothFound := g.Valid(src) && g.Valid(dst)

	var key string
	if q.MapHash != "" && bothFound {
		key = r.Keyer.PathsKey(q.MapHash, cache.PathsKeyOpts{
			FromX: q.From.X, FromY: q.From.Y,
			ToX: q.To.X, ToY: q.To.Y,
			Limit: q.Limit,
		})
	}

	if key != "" && !q.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			var c cachedPaths
			if err := json.Unmarshal(data, &c); err == nil {
				res := PathResult{Set: search.PathSet{Paths: c.Paths, Count: len(c.Paths)}, Truncated: c.Truncated, CacheHit: true}
				hooks.OnQueryComplete(ctx, observability.QueryPaths, res.Set.Count, time.Since(t0), nil)
				r.Logger.Debug("paths from cache", "from", q.From, "to", q.To, "count", res.Set.Count)
				return res, nil
			}
		}
	}

	var res PathResult
	err := search.New(g).WalkPaths(ctx, src, dst, func(p search.Path) error {
		res.Set.Paths = append(res.Set.Paths, p)
		if q.Limit > 0 && len(res.Set.Paths) >= q.Limit {
			res.Truncated = true
			return search.ErrStop
		}
		return nil
	})
	res.Set.Count = len(res.Set.Paths)
	hooks.OnQueryComplete(ctx, observability.QueryPaths, res.Set.Count, time.Since(t0), err)
	if err != nil {
		return PathResult{}, err
	}

	if key != "" {
		if data, err := json.Marshal(cachedPaths{Paths: res.Set.Paths, Truncated: res.Truncated}); err == nil {
			if err := r.Cache.Set(ctx, key, data, cache.TTLPaths); err != nil {
				r.Logger.Warn("cache write failed", "error", err)
			}
		}
	}
	r.Logger.Debug("paths", "from", q.From, "to", q.To, "count", res.Set.Count, "truncated", res.Truncated)
	return res, nil
}

// Intersections finds the crossings of the links of freqA and freqB.
func (r *Runner) Intersections(ctx context.Context, g *antenna.Graph, freqA, freqB antenna.Frequency) crossing.Result {
	hooks := observability.Query()
	hooks.OnQueryStart(ctx, observability.QueryIntersections)
	t0 := time.Now()

	res := crossing.Find(g, freqA, freqB)
	hooks.OnQueryComplete(ctx, observability.QueryIntersections, res.Count, time.Since(t0), nil)
	r.Logger.Debug("intersections", "a", freqA, "b", freqB, "count", res.Count)
	return res
}

// Interference projects the interference cells of g inside bounds.
func (r *Runner) Interference(ctx context.Context, g *antenna.Graph, bounds interference.Bounds) interference.Cells {
	hooks := observability.Query()
	hooks.OnQueryStart(ctx, observability.QueryInterference)
	t0 := time.Now()

	cells := interference.Project(g, bounds)
	hooks.OnQueryComplete(ctx, observability.QueryInterference, cells.Len(), time.Since(t0), nil)
	return cells
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// MapHash returns the content hash of m used in cache keys.
func MapHash(m mapio.Map) string {
	var buf bytes.Buffer
	if err := mapio.WriteBinary(&buf, m); err != nil {
		return ""
	}
	return cache.Hash(buf.Bytes())
}
