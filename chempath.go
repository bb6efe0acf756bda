package chempath

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aretw0/chempath/internal/logging"
	"github.com/aretw0/chempath/internal/search"
	"github.com/aretw0/chempath/pkg/domain"
	"github.com/aretw0/chempath/pkg/ports"
	"github.com/aretw0/chempath/pkg/rules"
)

// Planner is the high-level entry point for the chempath library.
// It wraps the internal search and provides a simplified API for consumers.
type Planner struct {
	rules      rules.Set
	customSet  bool
	cache      ports.PathCache
	hooks      domain.SearchHooks
	logger     *slog.Logger
	maxVisited int
}

// Option defines a functional option for configuring the Planner.
type Option func(*Planner)

// WithRules replaces the default reaction catalog.
func WithRules(set rules.Set) Option {
	return func(p *Planner) {
		p.rules = set
		p.customSet = true
	}
}

// WithLogger sets a custom structured logger for the planner.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Planner) {
		p.logger = logger
	}
}

// WithHooks registers observability hooks. Calling it more than once
// merges the hooks in registration order.
func WithHooks(hooks domain.SearchHooks) Option {
	return func(p *Planner) {
		p.hooks = p.hooks.Merge(hooks)
	}
}

// WithCache memoizes completed searches.
func WithCache(c ports.PathCache) Option {
	return func(p *Planner) {
		p.cache = c
	}
}

// WithMaxVisited caps the compounds a single search may discover.
// Zero means unbounded.
func WithMaxVisited(n int) Option {
	return func(p *Planner) {
		p.maxVisited = n
	}
}

// New initializes a Planner over the default rule catalog.
func New(opts ...Option) *Planner {
	p := &Planner{}
	for _, opt := range opts {
		opt(p)
	}
	if !p.customSet {
		p.rules = rules.Default()
	}
	if p.logger == nil {
		p.logger = logging.NewNop()
	}
	p.logger = p.logger.With("component", "planner")
	return p
}

// Query names the two ends of a search by group name and carbon count,
// as they arrive from a CLI, HTTP request or tool call.
type Query struct {
	StartGroup    string `json:"start_group" mapstructure:"start_group"`
	StartCarbons  int    `json:"start_carbons" mapstructure:"start_carbons"`
	TargetGroup   string `json:"target_group" mapstructure:"target_group"`
	TargetCarbons int    `json:"target_carbons" mapstructure:"target_carbons"`
}

// Resolve validates both ends before any search runs.
// Errors are *domain.ValidationError tagged with the failing side.
func (q Query) Resolve() (start, target domain.Compound, err error) {
	start, err = domain.ResolveCompound(domain.SideStart, q.StartGroup, q.StartCarbons)
	if err != nil {
		return domain.Compound{}, domain.Compound{}, err
	}
	target, err = domain.ResolveCompound(domain.SideTarget, q.TargetGroup, q.TargetCarbons)
	if err != nil {
		return domain.Compound{}, domain.Compound{}, err
	}
	return start, target, nil
}

// Result is a completed plan.
type Result struct {
	domain.Outcome
	Cached bool `json:"cached"`
}

// Plan validates q and finds the shortest reaction path.
// An unreachable target is a Result with Found == false, not an error.
func (p *Planner) Plan(ctx context.Context, q Query) (*Result, error) {
	start, target, err := q.Resolve()
	if err != nil {
		return nil, err
	}
	return p.FindPath(ctx, start, target)
}

// FindPath searches between two already validated compounds.
func (p *Planner) FindPath(ctx context.Context, start, target domain.Compound) (*Result, error) {
	if start.IsZero() {
		return nil, &domain.ValidationError{Side: domain.SideStart, Field: "compound", Reason: "compound is not initialized"}
	}
	if target.IsZero() {
		return nil, &domain.ValidationError{Side: domain.SideTarget, Field: "compound", Reason: "compound is not initialized"}
	}

	key := p.cacheKey(start, target)
	if p.cache != nil {
		out, err := p.cache.Get(ctx, key)
		switch {
		case err == nil:
			p.logger.Debug("cache hit", "key", key)
			return &Result{Outcome: out, Cached: true}, nil
		case !errors.Is(err, domain.ErrCacheMiss):
			p.logger.Warn("cache read failed", "key", key, "error", err)
		}
	}

	out, err := search.FindPath(ctx, start, target, p.rules,
		search.WithMaxVisited(p.maxVisited),
		search.WithHooks(p.hooks),
		search.WithLogger(p.logger),
	)
	if err != nil {
		return nil, err
	}

	if p.cache != nil {
		if err := p.cache.Put(ctx, key, out); err != nil {
			p.logger.Warn("cache write failed", "key", key, "error", err)
		}
	}
	return &Result{Outcome: out}, nil
}

// Trace plans q with extra hooks that apply to this call only.
// The cache is bypassed so every search step is observed.
func (p *Planner) Trace(ctx context.Context, q Query, hooks domain.SearchHooks) (*Result, error) {
	start, target, err := q.Resolve()
	if err != nil {
		return nil, err
	}
	out, err := search.FindPath(ctx, start, target, p.rules,
		search.WithMaxVisited(p.maxVisited),
		search.WithHooks(p.hooks.Merge(hooks)),
		search.WithLogger(p.logger),
	)
	if err != nil {
		return nil, err
	}
	return &Result{Outcome: out}, nil
}

// Explore returns up to limit compounds reachable from start and the
// reactions between them.
func (p *Planner) Explore(start domain.Compound, limit int) domain.Graph {
	return search.Explore(start, p.rules, limit)
}

// Rules returns the reaction catalog in use.
func (p *Planner) Rules() rules.Set {
	return p.rules
}

// cacheKey identifies a search by its ends and the rule catalog.
func (p *Planner) cacheKey(start, target domain.Compound) string {
	return start.Key() + "|" + target.Key() + "|" + p.rules.Fingerprint()
}
