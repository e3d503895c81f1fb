package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/pathfinder/pkg/domain"
)

// LogHooks returns lifecycle hooks that write search events to logger.
// Per-step events are logged at debug level only.
func LogHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnSearchStart: func(ctx context.Context, e *domain.SearchEvent) {
			logger.InfoContext(ctx, "search_start", "start", e.Start, "finish", e.Finish)
		},
		OnExpand: func(ctx context.Context, e *domain.StepEvent) {
			logger.DebugContext(ctx, "expand", "pos", e.Position, "iteration", e.Iteration, "frontier", e.Frontier)
		},
		OnPathMark: func(ctx context.Context, e *domain.StepEvent) {
			logger.DebugContext(ctx, "path_mark", "pos", e.Position)
		},
		OnSearchEnd: func(ctx context.Context, e *domain.SearchEvent) {
			if e.Result == nil {
				return
			}
			logger.InfoContext(ctx, "search_end",
				"outcome", e.Result.Outcome,
				"steps", e.Result.StepCount,
				"expanded", e.Result.Expanded,
				"duration", e.Result.Duration,
			)
		},
	}
}
