package pipeline

import (
	"context"
	stderrors "errors"
	"path/filepath"
	"slices"
	"testing"

	"github.com/antennamap/antennamap/pkg/antenna"
	"github.com/antennamap/antennamap/pkg/antenna/crossing"
	"github.com/antennamap/antennamap/pkg/cache"
	"github.com/antennamap/antennamap/pkg/errors"
	"github.com/antennamap/antennamap/pkg/geom"
)

func pt(x, y int) *geom.Point {
	p := geom.Pt(x, y)
	return &p
}

func testOptions(t *testing.T) Options {
	t.Helper()
	opts := DefaultOptions()
	opts.MapPath = filepath.Join(t.TempDir(), "data", "mapa.bin")
	return opts
}

func positions(t *testing.T, g *antenna.Graph, ids []antenna.ID) []geom.Point {
	t.Helper()
	out := make([]geom.Point, len(ids))
	for i, id := range ids {
		a, ok := g.Antenna(id)
		if !ok {
			t.Fatalf("unknown id %d", id)
		}
		out[i] = a.Pos
	}
	return out
}

func TestValidateAndSetDefaults(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{"empty is valid", Options{}, false},
		{"defaults", DefaultOptions(), false},
		{"negative rows", Options{Rows: -1, Cols: 3}, true},
		{"rows without cols", Options{Rows: 3}, true},
		{"one endpoint", Options{PathFrom: pt(1, 1)}, true},
		{"one frequency", Options{FreqA: "A"}, true},
		{"long frequency", Options{FreqA: "AB", FreqB: "0"}, true},
		{"empty-cell frequency", Options{FreqA: ".", FreqB: "0"}, true},
		{"negative limit", Options{MaxPaths: -1}, true},
		{"bad path", Options{MapPath: " map.bin"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if (err != nil) != tt.wantErr {
				t.Errorf("err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	var o Options
	if err := o.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if o.MapPath != DefaultMapPath || o.Logger == nil {
		t.Errorf("defaults not applied: %+v", o)
	}
}

func TestExecuteDefaultSequence(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	res, err := r.Execute(context.Background(), testOptions(t))
	if err != nil {
		t.Fatal(err)
	}

	if !res.Created {
		t.Error("default map was not created")
	}
	if res.Stats.Antennas != 7 || res.Stats.Edges != 9 {
		t.Errorf("stats = %+v", res.Stats)
	}
	if res.Bounds.Rows != 12 || res.Bounds.Cols != 12 {
		t.Errorf("bounds = %+v", res.Bounds)
	}

	wantDFS := []geom.Point{geom.Pt(5, 7), geom.Pt(7, 3), geom.Pt(4, 4), geom.Pt(9, 6)}
	if got := positions(t, res.Graph, res.DFS); !slices.Equal(got, wantDFS) {
		t.Errorf("DFS = %v, want %v", got, wantDFS)
	}
	wantBFS := []geom.Point{geom.Pt(8, 8), geom.Pt(6, 5), geom.Pt(7, 10)}
	if got := positions(t, res.Graph, res.BFS); !slices.Equal(got, wantBFS) {
		t.Errorf("BFS = %v, want %v", got, wantBFS)
	}

	if res.PathErr != nil {
		t.Fatalf("PathErr = %v", res.PathErr)
	}
	if res.Paths.Count != 5 || res.PathsTruncated {
		t.Errorf("paths = %d (truncated %v), want 5", res.Paths.Count, res.PathsTruncated)
	}
	first := positions(t, res.Graph, res.Paths.Paths[0])
	if !slices.Equal(first, []geom.Point{geom.Pt(4, 4), geom.Pt(7, 3)}) {
		t.Errorf("direct link listed as %v, want first", first)
	}
	last := positions(t, res.Graph, res.Paths.Paths[4])
	wantLast := []geom.Point{geom.Pt(4, 4), geom.Pt(5, 7), geom.Pt(9, 6), geom.Pt(7, 3)}
	if !slices.Equal(last, wantLast) {
		t.Errorf("last path = %v, want %v", last, wantLast)
	}

	want := crossing.Find(res.Graph, 'A', '0')
	if res.Intersections.Count != want.Count {
		t.Errorf("intersections = %d, want %d", res.Intersections.Count, want.Count)
	}
	if res.Interference.Len() == 0 {
		t.Error("no interference cells on the sample map")
	}
}

func TestExecuteSkipsEmptyStarts(t *testing.T) {
	opts := testOptions(t)
	opts.DFSStart = pt(0, 0)
	opts.BFSStart = nil

	res, err := NewRunner(nil, nil, nil).Execute(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if res.DFS != nil || res.BFS != nil {
		t.Errorf("DFS = %v, BFS = %v, want both skipped", res.DFS, res.BFS)
	}
}

func TestExecutePathErrors(t *testing.T) {
	tests := []struct {
		name     string
		from, to *geom.Point
		code     errors.Code
		missing  errors.MissingEndpoints
	}{
		{"source missing", pt(0, 0), pt(7, 3), errors.ErrCodeVertexNotFound, errors.MissingEndpoints{Source: true}},
		{"destination missing", pt(4, 4), pt(0, 0), errors.ErrCodeVertexNotFound, errors.MissingEndpoints{Destination: true}},
		{"both missing", pt(0, 0), pt(1, 1), errors.ErrCodeVertexNotFound, errors.MissingEndpoints{Source: true, Destination: true}},
		{"frequency mismatch", pt(4, 4), pt(8, 8), errors.ErrCodeFrequencyMismatch, errors.MissingEndpoints{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := testOptions(t)
			opts.PathFrom, opts.PathTo = tt.from, tt.to

			res, err := NewRunner(nil, nil, nil).Execute(context.Background(), opts)
			if err != nil {
				t.Fatalf("Execute failed: %v", err)
			}
			if !errors.Is(res.PathErr, tt.code) {
				t.Fatalf("PathErr = %v, want %s", res.PathErr, tt.code)
			}
			var m *errors.MissingEndpoints
			if stderrors.As(res.PathErr, &m) && *m != tt.missing {
				t.Errorf("missing = %+v, want %+v", *m, tt.missing)
			}
			if res.Intersections.Count == 0 {
				t.Error("run stopped after the failed path query")
			}
		})
	}
}

func TestExecuteMaxPaths(t *testing.T) {
	opts := testOptions(t)
	opts.MaxPaths = 2

	res, err := NewRunner(nil, nil, nil).Execute(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if res.Paths.Count != 2 || !res.PathsTruncated {
		t.Errorf("paths = %d (truncated %v), want 2 truncated", res.Paths.Count, res.PathsTruncated)
	}
}

func TestExecuteBoundsOverride(t *testing.T) {
	opts := testOptions(t)
	opts.Rows, opts.Cols = 6, 6

	res, err := NewRunner(nil, nil, nil).Execute(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range res.Interference.Points() {
		if p.X >= 6 || p.Y >= 6 {
			t.Errorf("cell %v outside 6x6 bounds", p)
		}
	}
}

func TestPathsCache(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(c, nil, nil)
	opts := testOptions(t)

	first, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if first.CacheInfo.PathsHit {
		t.Error("first run hit the cache")
	}

	second, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if !second.CacheInfo.PathsHit {
		t.Error("second run missed the cache")
	}
	if second.Paths.Count != first.Paths.Count {
		t.Fatalf("cached count %d != %d", second.Paths.Count, first.Paths.Count)
	}
	for i := range first.Paths.Paths {
		if !slices.Equal(first.Paths.Paths[i], second.Paths.Paths[i]) {
			t.Errorf("cached path %d = %v, want %v", i, second.Paths.Paths[i], first.Paths.Paths[i])
		}
	}

	opts.Refresh = true
	third, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if third.CacheInfo.PathsHit {
		t.Error("Refresh still read the cache")
	}
}

func TestPathsCanceled(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	m, g, _, err := r.Load(context.Background(), filepath.Join(t.TempDir(), "m.bin"))
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.Paths(ctx, g, PathQuery{MapHash: MapHash(m), From: DefaultPathFrom, To: DefaultPathTo})
	if !stderrors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestTraverseMissingStart(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	_, g, _, err := r.Load(context.Background(), filepath.Join(t.TempDir(), "m.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := r.Traverse(context.Background(), g, DFS, geom.Pt(0, 0)); !errors.Is(err, errors.ErrCodeInvalidStart) {
		t.Errorf("err = %v, want INVALID_START", err)
	}
	order, err := r.Traverse(context.Background(), g, BFS, DefaultBFSStart)
	if err != nil || len(order) != 3 {
		t.Errorf("BFS = %v, %v", order, err)
	}
}

func TestMapHash(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	m1, _, _, err := r.Load(context.Background(), filepath.Join(t.TempDir(), "a.bin"))
	if err != nil {
		t.Fatal(err)
	}
	h := MapHash(m1)
	if len(h) != 64 {
		t.Fatalf("MapHash = %q", h)
	}
	m1.Cells[0][0] = 'Z'
	if MapHash(m1) == h {
		t.Error("hash unchanged after editing the map")
	}
}
