package search

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/chempath/internal/logging"
	"github.com/aretw0/chempath/pkg/domain"
	"github.com/aretw0/chempath/pkg/rules"
)

// Option configures a single search.
type Option func(*config)

type config struct {
	maxVisited int
	hooks      domain.SearchHooks
	logger     *slog.Logger
}

// WithMaxVisited caps the number of distinct compounds a search may discover.
// Zero (the default) leaves the search unbounded.
func WithMaxVisited(n int) Option {
	return func(c *config) {
		c.maxVisited = n
	}
}

// WithHooks registers observability callbacks.
func WithHooks(h domain.SearchHooks) Option {
	return func(c *config) {
		c.hooks = h
	}
}

// WithLogger sets the logger used for debug traces.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// entry is one frontier item: a compound and how it was reached.
type entry struct {
	compound domain.Compound
	path     []domain.Compound
	steps    []domain.Reaction
}

// FindPath runs a breadth-first search from start to target over the graph
// induced by applying every rule in set to every discovered compound.
//
// Compounds are identified by formula and marked visited when enqueued, so
// the first path that reaches the target is a shortest one. An unreachable
// target yields Outcome.Found == false and a nil error. The only error is
// domain.ErrSearchLimit, when WithMaxVisited is exceeded.
//
// ctx is handed to hooks; the search itself never blocks and is not
// cancellable.
func FindPath(ctx context.Context, start, target domain.Compound, set rules.Set, opts ...Option) (domain.Outcome, error) {
	cfg := config{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	began := time.Now()
	out := domain.Outcome{Start: start, Target: target}

	if cfg.hooks.OnSearchStart != nil {
		cfg.hooks.OnSearchStart(ctx, &domain.SearchEvent{
			EventBase: domain.EventBase{Timestamp: began, Type: domain.EventSearchStart},
			Start:     start.Key(),
			Target:    target.Key(),
		})
	}

	out, err := run(ctx, &cfg, out, set)

	if cfg.hooks.OnSearchEnd != nil {
		cfg.hooks.OnSearchEnd(ctx, &domain.SearchEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventSearchEnd},
			Start:     start.Key(),
			Target:    target.Key(),
			Found:     out.Found,
			Visited:   out.Visited,
			Steps:     out.Path.Len(),
			Elapsed:   time.Since(began),
			Err:       err,
		})
	}
	cfg.logger.Debug("search finished",
		"start", start.Key(),
		"target", target.Key(),
		"found", out.Found,
		"steps", out.Path.Len(),
		"visited", out.Visited,
		"err", err,
	)
	return out, err
}

func run(ctx context.Context, cfg *config, out domain.Outcome, set rules.Set) (domain.Outcome, error) {
	all := set.All()
	goal := out.Target.Key()

	queue := []entry{{
		compound: out.Start,
		path:     []domain.Compound{out.Start},
		steps:    []domain.Reaction{},
	}}
	visited := map[string]struct{}{out.Start.Key(): {}}

	for len(queue) > 0 {
		cur := queue[0]
		queue[0] = entry{}
		queue = queue[1:]

		if cur.compound.Key() == goal {
			out.Found = true
			out.Path = domain.Path{Compounds: cur.path, Steps: cur.steps}
			out.Visited = len(visited)
			return out, nil
		}

		if cfg.hooks.OnExpand != nil {
			cfg.hooks.OnExpand(ctx, &domain.ExpandEvent{
				EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventExpand},
				Formula:   cur.compound.Key(),
				Depth:     len(cur.steps),
			})
		}

		for _, rule := range all {
			rx, ok := rule.Apply(cur.compound)
			if !ok {
				continue
			}
			key := rx.Product.Key()
			_, seen := visited[key]

			if cfg.hooks.OnReaction != nil {
				cfg.hooks.OnReaction(ctx, &domain.ReactionEvent{
					EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventReaction},
					Rule:      rule.Name,
					Reactant:  cur.compound.Key(),
					Product:   key,
					Novel:     !seen,
				})
			}
			if seen {
				continue
			}

			visited[key] = struct{}{}
			if cfg.maxVisited > 0 && len(visited) > cfg.maxVisited {
				out.Visited = len(visited)
				return out, fmt.Errorf("%w: more than %d compounds discovered from %s", domain.ErrSearchLimit, cfg.maxVisited, out.Start.Key())
			}

			queue = append(queue, entry{
				compound: rx.Product,
				path:     appendCopy(cur.path, rx.Product),
				steps:    appendCopy(cur.steps, rx),
			})
		}
	}

	out.Visited = len(visited)
	return out, nil
}

// appendCopy returns a new slice holding s followed by v, so sibling
// frontier entries never share a backing array.
func appendCopy[T any](s []T, v T) []T {
	out := make([]T, len(s), len(s)+1)
	copy(out, s)
	return append(out, v)
}
