package runtime

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"time"

	"github.com/aretw0/pathfinder/pkg/domain"
	"github.com/aretw0/pathfinder/pkg/grid"
)

const noPredecessor = -1

// Engine runs A* searches over a grid. It holds configuration only; all
// per-search state lives in a session created by Run and dropped on return.
type Engine struct {
	heuristic Heuristic
	observer  domain.Observer
	hooks     domain.LifecycleHooks
	logger    *slog.Logger
	outcome   domain.Outcome
}

// EngineOption defines a functional option for configuring the Engine.
type EngineOption func(*Engine)

// WithObserver registers the per-step hook.
func WithObserver(o domain.Observer) EngineOption {
	return func(e *Engine) {
		e.observer = o
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithHeuristic overrides the distance estimate. It must stay admissible for
// results to remain shortest paths.
func WithHeuristic(h Heuristic) EngineOption {
	return func(e *Engine) {
		if h != nil {
			e.heuristic = h
		}
	}
}

// NewEngine creates an idle engine.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		heuristic: Manhattan,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		outcome:   domain.OutcomeIdle,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Outcome returns the phase reached by the most recent Run.
func (e *Engine) Outcome() domain.Outcome { return e.outcome }

// session is the state owned by a single Run call.
type session struct {
	g         *grid.Grid
	start     int
	finish    int
	goal      domain.Position
	gScore    []float64
	fScore    []float64
	cameFrom  []int
	closed    []bool
	frontier  *Frontier
	iteration int
	expanded  int
}

func (e *Engine) newSession(g *grid.Grid, start, finish domain.Position) *session {
	n := g.Len()
	s := &session{
		g:        g,
		start:    g.Index(start),
		finish:   g.Index(finish),
		goal:     finish,
		gScore:   make([]float64, n),
		fScore:   make([]float64, n),
		cameFrom: make([]int, n),
		closed:   make([]bool, n),
		frontier: NewFrontier(),
	}
	for i := range n {
		s.gScore[i] = math.Inf(1)
		s.fScore[i] = math.Inf(1)
		s.cameFrom[i] = noPredecessor
	}
	return s
}

// Run searches g for a shortest path from its start to its finish.
//
// Precondition violations (missing roles, stale neighbor caches) are returned
// as errors before any cell is touched. Otherwise the run ends in one of
// Succeeded, Failed (frontier exhausted) or Cancelled (ctx done or the
// observer returned an error); cancelled runs keep their partial tags.
func (e *Engine) Run(ctx context.Context, g *grid.Grid) (domain.Result, error) {
	e.outcome = domain.OutcomeIdle
	startPos, ok := g.Start()
	if !ok {
		return domain.Result{Outcome: domain.OutcomeIdle}, domain.ErrMissingStart
	}
	finishPos, ok := g.Finish()
	if !ok {
		return domain.Result{Outcome: domain.OutcomeIdle}, domain.ErrMissingFinish
	}
	if g.Stale() {
		return domain.Result{Outcome: domain.OutcomeIdle}, domain.ErrStaleNeighbors
	}

	began := time.Now()
	e.outcome = domain.OutcomeRunning
	e.emitSearchStart(ctx, startPos, finishPos)
	e.logger.Debug("search started", "start", startPos, "finish", finishPos, "rows", g.Rows())

	s := e.newSession(g, startPos, finishPos)
	res, err := e.loop(ctx, s)
	if err != nil {
		return res, err
	}

	res.Expanded = s.expanded
	res.FinishG = s.gScore[s.finish]
	res.FinishF = s.fScore[s.finish]
	res.Duration = time.Since(began)
	e.outcome = res.Outcome

	e.emitSearchEnd(ctx, startPos, finishPos, &res)
	e.logger.Debug("search finished",
		"outcome", res.Outcome,
		"steps", res.StepCount,
		"expanded", res.Expanded,
		"duration", res.Duration,
	)
	return res, nil
}

func (e *Engine) loop(ctx context.Context, s *session) (domain.Result, error) {
	s.gScore[s.start] = 0
	s.fScore[s.start] = e.heuristic(s.g.PositionOf(s.start), s.goal)
	s.frontier.Push(s.start, s.fScore[s.start])
	s.g.Mark(s.start, domain.StateFrontier)

	for !s.frontier.IsEmpty() {
		if ctx.Err() != nil {
			e.logger.Debug("search cancelled", "iteration", s.iteration, "err", ctx.Err())
			return domain.Result{Outcome: domain.OutcomeCancelled}, nil
		}

		current, priority, err := s.frontier.PopMin()
		if err != nil {
			return domain.Result{}, fmt.Errorf("pop frontier: %w", err)
		}
		if s.closed[current] || priority > s.fScore[current] {
			continue
		}

		if current == s.finish {
			return e.succeed(ctx, s)
		}

		s.iteration++
		s.closed[current] = true
		s.expanded++
		e.relax(s, current)

		if current != s.start {
			s.g.Mark(current, domain.StateVisited)
		}

		if err := e.step(ctx, s, domain.EventExpand, current); err != nil {
			e.logger.Debug("search aborted by observer", "iteration", s.iteration, "err", err)
			return domain.Result{Outcome: domain.OutcomeCancelled}, nil
		}
	}

	return domain.Result{Outcome: domain.OutcomeFailed}, nil
}

// relax applies unit-cost edges from current to every cached neighbor.
func (e *Engine) relax(s *session, current int) {
	for _, npos := range s.g.At(current).Neighbors() {
		n := s.g.Index(npos)
		tentative := s.gScore[current] + 1
		if tentative >= s.gScore[n] {
			continue
		}
		s.cameFrom[n] = current
		s.gScore[n] = tentative
		s.fScore[n] = tentative + e.heuristic(npos, s.goal)
		if !s.frontier.Contains(n) {
			s.g.Mark(n, domain.StateFrontier)
		}
		s.frontier.Push(n, s.fScore[n])
	}
}

func (e *Engine) succeed(ctx context.Context, s *session) (domain.Result, error) {
	s.closed[s.finish] = true
	s.expanded++
	path, steps, err := Reconstruct(ctx, s.g, s.cameFrom, s.finish, func(ctx context.Context, idx int) error {
		return e.step(ctx, s, domain.EventPathMark, idx)
	})
	s.g.At(s.finish).SetState(domain.StateFinish)
	if err != nil {
		e.logger.Debug("path reconstruction aborted", "err", err)
		return domain.Result{Outcome: domain.OutcomeCancelled}, nil
	}
	return domain.Result{
		Outcome:   domain.OutcomeSucceeded,
		Path:      path,
		StepCount: steps,
	}, nil
}

// step fires the matching hook and then the observer.
func (e *Engine) step(ctx context.Context, s *session, typ domain.EventType, idx int) error {
	ev := domain.StepEvent{
		Type:      typ,
		Position:  s.g.PositionOf(idx),
		Iteration: s.iteration,
		Frontier:  s.frontier.Len(),
	}
	switch typ {
	case domain.EventExpand:
		if e.hooks.OnExpand != nil {
			e.hooks.OnExpand(ctx, &ev)
		}
	case domain.EventPathMark:
		if e.hooks.OnPathMark != nil {
			e.hooks.OnPathMark(ctx, &ev)
		}
	}
	if e.observer == nil {
		return nil
	}
	return e.observer(ctx, ev)
}

func (e *Engine) emitSearchStart(ctx context.Context, start, finish domain.Position) {
	if e.hooks.OnSearchStart == nil {
		return
	}
	e.hooks.OnSearchStart(ctx, &domain.SearchEvent{
		Timestamp: time.Now(),
		Type:      domain.EventSearchStart,
		Start:     start,
		Finish:    finish,
	})
}

func (e *Engine) emitSearchEnd(ctx context.Context, start, finish domain.Position, res *domain.Result) {
	if e.hooks.OnSearchEnd == nil {
		return
	}
	e.hooks.OnSearchEnd(ctx, &domain.SearchEvent{
		Timestamp: time.Now(),
		Type:      domain.EventSearchEnd,
		Start:     start,
		Finish:    finish,
		Result:    res,
	})
}
