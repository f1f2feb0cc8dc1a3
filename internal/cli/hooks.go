package cli

import (
	"context"
	"time"

	"github.com/antennamap/antennamap/pkg/observability"
)

// logHooks reports pipeline events at debug level through the logger
// attached to the context.
type logHooks struct{}

var (
	_ observability.LoadHooks  = logHooks{}
	_ observability.QueryHooks = logHooks{}
)

func (logHooks) OnLoadStart(ctx context.Context, path string) {
	loggerFromContext(ctx).Debug("load start", "path", path)
}

func (logHooks) OnLoadComplete(ctx context.Context, path string, antennas, edges int, d time.Duration, err error) {
	l := loggerFromContext(ctx)
	if err != nil {
		l.Debug("load failed", "path", path, "duration", d, "error", err)
		return
	}
	l.Debug("load complete", "path", path, "antennas", antennas, "edges", edges, "duration", d)
}

func (logHooks) OnMapCreated(ctx context.Context, path string) {
	loggerFromContext(ctx).Debug("default map written", "path", path)
}

func (logHooks) OnQueryStart(ctx context.Context, kind string) {
	loggerFromContext(ctx).Debug("query start", "kind", kind)
}

func (logHooks) OnQueryComplete(ctx context.Context, kind string, results int, d time.Duration, err error) {
	l := loggerFromContext(ctx)
	if err != nil {
		l.Debug("query failed", "kind", kind, "duration", d, "error", err)
		return
	}
	l.Debug("query complete", "kind", kind, "results", results, "duration", d)
}
