package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	l := NoopLoadHooks{}
	l.OnLoadStart(ctx, "data/mapa.bin")
	l.OnLoadComplete(ctx, "data/mapa.bin", 7, 9, time.Millisecond, nil)
	l.OnMapCreated(ctx, "data/mapa.bin")

	q := NoopQueryHooks{}
	q.OnQueryStart(ctx, QueryPaths)
	q.OnQueryComplete(ctx, QueryPaths, 5, time.Millisecond, errors.New("boom"))
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Load().(NoopLoadHooks); !ok {
		t.Error("Load() should return NoopLoadHooks by default")
	}
	if _, ok := Query().(NoopQueryHooks); !ok {
		t.Error("Query() should return NoopQueryHooks by default")
	}

	customLoad := &testLoadHooks{}
	SetLoadHooks(customLoad)
	if Load() != customLoad {
		t.Error("SetLoadHooks should set custom hooks")
	}

	customQuery := &testQueryHooks{}
	SetQueryHooks(customQuery)
	if Query() != customQuery {
		t.Error("SetQueryHooks should set custom hooks")
	}

	Query().OnQueryComplete(context.Background(), QueryDFS, 4, time.Second, nil)
	if customQuery.completed[QueryDFS] != 4 {
		t.Errorf("custom hook saw %v", customQuery.completed)
	}

	Reset()
	if _, ok := Query().(NoopQueryHooks); !ok {
		t.Error("Reset() should restore NoopQueryHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testQueryHooks{}
	SetQueryHooks(custom)
	SetQueryHooks(nil)
	SetLoadHooks(nil)

	if Query() != custom {
		t.Error("SetQueryHooks(nil) should be ignored")
	}
	if _, ok := Load().(NoopLoadHooks); !ok {
		t.Error("SetLoadHooks(nil) should be ignored")
	}

	Reset()
}

type testLoadHooks struct {
	NoopLoadHooks
	startCalls int
}

func (h *testLoadHooks) OnLoadStart(context.Context, string) { h.startCalls++ }

type testQueryHooks struct {
	NoopQueryHooks
	completed map[string]int
}

func (h *testQueryHooks) OnQueryComplete(_ context.Context, kind string, results int, _ time.Duration, _ error) {
	if h.completed == nil {
		h.completed = make(map[string]int)
	}
	h.completed[kind] = results
}
