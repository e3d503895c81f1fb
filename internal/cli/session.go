package cli

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/pathfinder"
	"github.com/aretw0/pathfinder/internal/config"
	"github.com/aretw0/pathfinder/pkg/domain"
)

// NewSession builds a session from a scenario. Roles and fixed obstacles are
// placed first, then Scatter random obstacles are dropped around them.
// A zero Seed leaves the random source time-seeded.
func NewSession(sc config.Scenario, logger *slog.Logger, hooks domain.LifecycleHooks) (*pathfinder.Session, error) {
	opts := []pathfinder.Option{
		pathfinder.WithLogger(logger),
		pathfinder.WithLifecycleHooks(hooks),
	}
	if sc.Seed != 0 {
		opts = append(opts, pathfinder.WithSeed(sc.Seed))
	}

	sess, err := pathfinder.New(sc.Rows, sc.Width, opts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing session: %w", err)
	}

	sc.Apply(sess.Grid())
	if sc.Scatter > 0 {
		sess.Scatter(sc.Scatter)
	}
	logger.Debug("session ready",
		"rows", sc.Rows,
		"obstacles", len(sess.Grid().Obstacles()),
		"seed", sc.Seed,
	)
	return sess, nil
}
