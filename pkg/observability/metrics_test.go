package observability

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsRecordEvents(t *testing.T) {
	ctx := context.Background()
	m := NewMetrics()

	m.OnLoadStart(ctx, "m.bin")
	m.OnMapCreated(ctx, "m.bin")
	m.OnLoadComplete(ctx, "m.bin", 7, 9, time.Millisecond, nil)

	m.OnQueryStart(ctx, QueryPaths)
	m.OnQueryComplete(ctx, QueryPaths, 5, time.Millisecond, nil)
	m.OnQueryStart(ctx, QueryDFS)
	m.OnQueryComplete(ctx, QueryDFS, 0, time.Millisecond, errors.New("no antenna"))

	if got := testutil.ToFloat64(m.antennas); got != 7 {
		t.Errorf("antennas = %v, want 7", got)
	}
	if got := testutil.ToFloat64(m.edges); got != 9 {
		t.Errorf("edges = %v, want 9", got)
	}
	if got := testutil.ToFloat64(m.mapsCreated); got != 1 {
		t.Errorf("maps created = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.queryResults.WithLabelValues(QueryPaths)); got != 5 {
		t.Errorf("paths results = %v, want 5", got)
	}
	if got := testutil.ToFloat64(m.queryErrors.WithLabelValues(QueryDFS)); got != 1 {
		t.Errorf("dfs errors = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.queriesRunning); got != 0 {
		t.Errorf("in flight = %v, want 0", got)
	}
	if n := testutil.CollectAndCount(m.queryDuration); n != 2 {
		t.Errorf("duration series = %d, want 2", n)
	}
}

func TestMetricsLoadError(t *testing.T) {
	m := NewMetrics()
	m.OnLoadComplete(context.Background(), "m.bin", 0, 0, time.Millisecond, errors.New("corrupt"))

	if got := testutil.ToFloat64(m.loadErrors); got != 1 {
		t.Errorf("load errors = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.antennas); got != 0 {
		t.Errorf("failed load should not set antennas, got %v", got)
	}
}

func TestMetricsWriteTextfile(t *testing.T) {
	m := NewMetrics()
	m.OnQueryStart(context.Background(), QueryBFS)
	m.OnQueryComplete(context.Background(), QueryBFS, 3, time.Millisecond, nil)

	path := filepath.Join(t.TempDir(), "antennamap.prom")
	if err := m.WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile() error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `antennamap_query_results_total{kind="bfs"} 3`) {
		t.Errorf("textfile missing bfs results:\n%s", data)
	}
}

func TestMultiHooks(t *testing.T) {
	ctx := context.Background()
	a, b := &testQueryHooks{}, &testQueryHooks{}
	MultiQueryHooks{a, b}.OnQueryComplete(ctx, QueryPaths, 5, time.Millisecond, nil)
	if a.completed[QueryPaths] != 5 || b.completed[QueryPaths] != 5 {
		t.Errorf("fan-out saw %v and %v", a.completed, b.completed)
	}

	la, lb := &testLoadHooks{}, &testLoadHooks{}
	MultiLoadHooks{la, lb}.OnLoadStart(ctx, "m.bin")
	if la.startCalls != 1 || lb.startCalls != 1 {
		t.Errorf("fan-out calls = %d, %d, want 1 each", la.startCalls, lb.startCalls)
	}
}
