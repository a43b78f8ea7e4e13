package core

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/encodeous/hopsim/perf"
	"github.com/encodeous/hopsim/state"
)

// SimRouter logs router events and feeds the perf counters
type SimRouter struct {
	log *slog.Logger
}

func NewSimRouter(log *slog.Logger) *SimRouter {
	return &SimRouter{log: log}
}

func (r *SimRouter) Log(event RouterEvent, desc string, args ...any) {
	switch event {
	case RouteAdded:
		perf.RoutesAdded.Add(1)
	case RouteIgnored:
		perf.RoutesIgnored.Add(1)
	case TableSent:
		perf.TablesSent.Add(1)
	}

	level := slog.LevelDebug
	if state.DBG_log_router {
		level = slog.LevelInfo
	}
	if event >= NeighbourUnresolved {
		level = slog.LevelWarn
	}
	r.log.Log(context.Background(), level, fmt.Sprintf("%s %s", event.String(), desc), args...)
}
