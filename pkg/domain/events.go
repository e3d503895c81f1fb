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
	EventPathMark    EventType = "path_mark"
	EventSearchEnd   EventType = "search_end"
)

// StepEvent is emitted after each frontier pop/expand cycle and after each
// path reconstruction tag.
type StepEvent struct {
	Type      EventType `json:"type"`
	Position  Position  `json:"position"`
	Iteration int       `json:"iteration"`
	Frontier  int       `json:"frontier"` // Live frontier entries after the step
}

// SearchEvent brackets a search run.
type SearchEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Start     Position  `json:"start"`
	Finish    Position  `json:"finish"`
	Result    *Result   `json:"result,omitempty"` // Set on EventSearchEnd
}

// Observer is the synchronous per-step hook used for visualization and for
// polling a cancellation source. It must not mutate the grid or the search.
// Returning a non-nil error aborts the search with OutcomeCancelled.
type Observer func(ctx context.Context, ev StepEvent) error

// LifecycleHooks defines callbacks for engine observability.
type LifecycleHooks struct {
	OnSearchStart func(context.Context, *SearchEvent)
	OnExpand      func(context.Context, *StepEvent)
	OnPathMark    func(context.Context, *StepEvent)
	OnSearchEnd   func(context.Context, *SearchEvent)
}

// Merge returns hooks that call h first and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnSearchStart: chain(h.OnSearchStart, other.OnSearchStart),
		OnExpand:      chain(h.OnExpand, other.OnExpand),
		OnPathMark:    chain(h.OnPathMark, other.OnPathMark),
		OnSearchEnd:   chain(h.OnSearchEnd, other.OnSearchEnd),
	}
}

func chain[E any](a, b func(context.Context, *E)) func(context.Context, *E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e *E) {
		a(ctx, e)
		b(ctx, e)
	}
}
