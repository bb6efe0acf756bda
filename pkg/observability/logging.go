package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/chempath/pkg/domain"
)

// LogHooks traces searches to logger. Start and end are logged at Info,
// expansions and reactions at Debug.
func LogHooks(logger *slog.Logger) domain.SearchHooks {
	return domain.SearchHooks{
		OnSearchStart: func(ctx context.Context, e *domain.SearchEvent) {
			logger.InfoContext(ctx, "search_start", "start", e.Start, "target", e.Target)
		},
		OnExpand: func(ctx context.Context, e *domain.ExpandEvent) {
			logger.DebugContext(ctx, "expand", "formula", e.Formula, "depth", e.Depth)
		},
		OnReaction: func(ctx context.Context, e *domain.ReactionEvent) {
			logger.DebugContext(ctx, "reaction",
				"rule", e.Rule,
				"reactant", e.Reactant,
				"product", e.Product,
				"novel", e.Novel,
			)
		},
		OnSearchEnd: func(ctx context.Context, e *domain.SearchEvent) {
			attrs := []any{
				"start", e.Start,
				"target", e.Target,
				"found", e.Found,
				"steps", e.Steps,
				"visited", e.Visited,
				"elapsed", e.Elapsed,
			}
			if e.Err != nil {
				logger.WarnContext(ctx, "search_end", append(attrs, "error", e.Err)...)
				return
			}
			logger.InfoContext(ctx, "search_end", attrs...)
		},
	}
}
