package pathfinder

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/aretw0/pathfinder/internal/runtime"
	"github.com/aretw0/pathfinder/pkg/domain"
	"github.com/aretw0/pathfinder/pkg/grid"
)

// Session is the high-level entry point for the pathfinder library.
// It owns one grid and runs searches on it one at a time. A Session is not
// safe for concurrent use; hosts that share one must serialise access.
type Session struct {
	rows     int
	width    int
	grid     *grid.Grid
	observer domain.Observer
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
	rng      *rand.Rand
}

// Option defines a functional option for configuring the Session.
type Option func(*Session)

// WithObserver registers the per-step hook (visualization, cancellation polling).
func WithObserver(o domain.Observer) Option {
	return func(s *Session) {
		s.observer = o
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(s *Session) {
		s.hooks = hooks
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithSeed makes Scatter reproducible.
func WithSeed(seed uint64) Option {
	return func(s *Session) {
		s.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// New creates a session over a fresh rows×rows grid. width is the display
// extent handed to presenters (see grid.New).
func New(rows, width int, opts ...Option) (*Session, error) {
	s := &Session{rows: rows, width: width}
	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if s.rng == nil {
		seed := uint64(time.Now().UnixNano())
		s.rng = rand.New(rand.NewPCG(seed, seed>>1))
	}

	g, err := grid.New(rows, width)
	if err != nil {
		return nil, fmt.Errorf("failed to create grid: %w", err)
	}
	s.grid = g
	s.logger = s.logger.With("rows", rows)
	return s, nil
}

// Grid exposes the edit API. The pointer changes after Reset.
func (s *Session) Grid() *grid.Grid {
	return s.grid
}

// Run clears the tags of any previous search, refreshes adjacency and runs
// the engine. The observer passed here, if any, replaces the session observer
// for this run only.
func (s *Session) Run(ctx context.Context, observer ...domain.Observer) (domain.Result, error) {
	obs := s.observer
	if len(observer) > 0 && observer[0] != nil {
		obs = observer[0]
	}

	s.grid.ClearSearch()
	s.grid.RefreshNeighbors()

	engine := runtime.NewEngine(
		runtime.WithObserver(obs),
		runtime.WithLifecycleHooks(s.hooks),
		runtime.WithLogger(s.logger),
	)
	res, err := engine.Run(ctx, s.grid)
	if err != nil {
		return res, fmt.Errorf("search rejected: %w", err)
	}
	s.logger.Info("search complete", "outcome", res.Outcome, "steps", res.StepCount, "expanded", res.Expanded)
	return res, nil
}

// Reset discards the grid and replaces it with a fresh one of the same size.
// Roles are dropped along with everything else.
func (s *Session) Reset() {
	g, err := grid.New(s.rows, s.width)
	if err != nil {
		// rows was validated by New.
		panic(err)
	}
	s.grid = g
	s.logger.Debug("grid reset")
}

// Scatter drops n obstacles at uniformly random positions, skipping the start
// and finish. It returns how many cells changed.
func (s *Session) Scatter(n int) int {
	placed := s.grid.Scatter(s.rng, n)
	s.logger.Debug("obstacles scattered", "requested", n, "placed", placed)
	return placed
}
