package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventSearchStart EventType = "search_start"
	EventExpand      EventType = "expand"
	EventReaction    EventType = "reaction"
	EventSearchEnd   EventType = "search_end"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// SearchEvent marks the beginning or end of a path search.
// Found, Visited, Steps and Err are only meaningful on EventSearchEnd.
type SearchEvent struct {
	EventBase
	Start   string        `json:"start"`
	Target  string        `json:"target"`
	Found   bool          `json:"found"`
	Visited int           `json:"visited"`
	Steps   int           `json:"steps"`
	Elapsed time.Duration `json:"elapsed"`
	Err     error         `json:"-"`
}

// ExpandEvent is emitted when a compound is dequeued and its rules applied.
type ExpandEvent struct {
	EventBase
	Formula string `json:"formula"`
	Depth   int    `json:"depth"`
}

// ReactionEvent is emitted for every rule that produced a product.
// Novel is false when the product had already been discovered.
type ReactionEvent struct {
	EventBase
	Rule     string `json:"rule"`
	Reactant string `json:"reactant"`
	Product  string `json:"product"`
	Novel    bool   `json:"novel"`
}

// SearchHooks defines callbacks for search observability.
// Any of them may be nil.
type SearchHooks struct {
	OnSearchStart func(context.Context, *SearchEvent)
	OnExpand      func(context.Context, *ExpandEvent)
	OnReaction    func(context.Context, *ReactionEvent)
	OnSearchEnd   func(context.Context, *SearchEvent)
}

// Merge returns hooks that call h first and then other.
func (h SearchHooks) Merge(other SearchHooks) SearchHooks {
	return SearchHooks{
		OnSearchStart: chain(h.OnSearchStart, other.OnSearchStart),
		OnExpand:      chain(h.OnExpand, other.OnExpand),
		OnReaction:    chain(h.OnReaction, other.OnReaction),
		OnSearchEnd:   chain(h.OnSearchEnd, other.OnSearchEnd),
	}
}

func chain[E any](a, b func(context.Context, E)) func(context.Context, E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e E) {
		a(ctx, e)
		b(ctx, e)
	}
}
