package pathfinder_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/pathfinder"
	"github.com/aretw0/pathfinder/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_RunTwiceIsDeterministic(t *testing.T) {
	sess, err := pathfinder.New(10, 0, pathfinder.WithSeed(1))
	require.NoError(t, err)

	g := sess.Grid()
	g.SetStart(domain.Pos(0, 0))
	g.SetFinish(domain.Pos(9, 9))
	sess.Scatter(25)

	first, err := sess.Run(context.Background())
	require.NoError(t, err)
	second, err := sess.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first.Outcome, second.Outcome)
	assert.Equal(t, first.Path, second.Path)
	assert.Equal(t, first.StepCount, second.StepCount)
}

func TestSession_RunRefreshesAfterEdits(t *testing.T) {
	sess, err := pathfinder.New(5, 0)
	require.NoError(t, err)

	g := sess.Grid()
	g.SetStart(domain.Pos(0, 0))
	g.SetFinish(domain.Pos(0, 4))

	res, err := sess.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, res.StepCount)

	// Wall off column 2 except the bottom row.
	for r := range 4 {
		g.SetObstacle(domain.Pos(r, 2))
	}
	res, err = sess.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeSucceeded, res.Outcome)
	assert.Equal(t, 12, res.StepCount)
}

func TestSession_RunWithoutRoles(t *testing.T) {
	sess, err := pathfinder.New(4, 0)
	require.NoError(t, err)

	_, err = sess.Run(context.Background())
	if !errors.Is(err, domain.ErrMissingStart) {
		t.Fatalf("Expected ErrMissingStart, got %v", err)
	}
}

func TestSession_Reset(t *testing.T) {
	sess, err := pathfinder.New(6, 0)
	require.NoError(t, err)

	before := sess.Grid()
	before.SetStart(domain.Pos(0, 0))
	before.SetObstacle(domain.Pos(2, 2))

	sess.Reset()
	after := sess.Grid()

	assert.NotSame(t, before, after)
	_, ok := after.Start()
	assert.False(t, ok)
	assert.Empty(t, after.Obstacles())
	assert.Equal(t, 6, after.Rows())
}

func TestSession_ScatterSkipsRoles(t *testing.T) {
	sess, err := pathfinder.New(3, 0, pathfinder.WithSeed(99))
	require.NoError(t, err)

	g := sess.Grid()
	g.SetStart(domain.Pos(0, 0))
	g.SetFinish(domain.Pos(2, 2))

	placed := sess.Scatter(500)
	assert.Equal(t, 7, placed, "every non-role cell ends up blocked")

	st, _ := g.State(domain.Pos(0, 0))
	assert.Equal(t, domain.StateStart, st)
	st, _ = g.State(domain.Pos(2, 2))
	assert.Equal(t, domain.StateFinish, st)
}

func TestSession_ObserverOverride(t *testing.T) {
	var sessionCalls, runCalls int
	sess, err := pathfinder.New(4, 0, pathfinder.WithObserver(func(ctx context.Context, ev domain.StepEvent) error {
		sessionCalls++
		return nil
	}))
	require.NoError(t, err)
	sess.Grid().SetStart(domain.Pos(0, 0))
	sess.Grid().SetFinish(domain.Pos(3, 3))

	_, err = sess.Run(context.Background(), func(ctx context.Context, ev domain.StepEvent) error {
		runCalls++
		return nil
	})
	require.NoError(t, err)
	assert.Zero(t, sessionCalls)
	assert.NotZero(t, runCalls)
}

func TestNew_InvalidSize(t *testing.T) {
	_, err := pathfinder.New(0, 100)
	if !errors.Is(err, domain.ErrInvalidSize) {
		t.Fatalf("Expected ErrInvalidSize, got %v", err)
	}
}
