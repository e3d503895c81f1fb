package runtime_test

import (
	"context"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/aretw0/pathfinder/internal/runtime"
	"github.com/aretw0/pathfinder/pkg/domain"
	"github.com/aretw0/pathfinder/pkg/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGrid(t *testing.T, rows int, start, finish domain.Position, obstacles ...domain.Position) *grid.Grid {
	t.Helper()
	g, err := grid.New(rows, 0)
	require.NoError(t, err)
	require.True(t, g.SetStart(start))
	require.True(t, g.SetFinish(finish))
	for _, o := range obstacles {
		g.SetObstacle(o)
	}
	g.RefreshNeighbors()
	return g
}

// bfsDistance computes the shortest path length straight from cell states,
// without going through the neighbor caches. -1 means unreachable.
func bfsDistance(g *grid.Grid, from, to domain.Position) int {
	dist := make([]int, g.Len())
	for i := range dist {
		dist[i] = -1
	}
	dist[g.Index(from)] = 0
	queue := []domain.Position{from}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if p == to {
			return dist[g.Index(p)]
		}
		for _, d := range []domain.Position{{Row: 1}, {Row: -1}, {Col: 1}, {Col: -1}} {
			n := domain.Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
			if !g.InBounds(n) || dist[g.Index(n)] != -1 {
				continue
			}
			if st, _ := g.State(n); st == domain.StateObstacle {
				continue
			}
			dist[g.Index(n)] = dist[g.Index(p)] + 1
			queue = append(queue, n)
		}
	}
	return -1
}

func TestEngine_EmptyGrid_ManhattanSteps(t *testing.T) {
	g := newGrid(t, 10, domain.Pos(0, 0), domain.Pos(9, 9))

	res, err := runtime.NewEngine().Run(context.Background(), g)
	require.NoError(t, err)

	assert.Equal(t, domain.OutcomeSucceeded, res.Outcome)
	assert.Equal(t, 18, res.StepCount)
	require.Len(t, res.Path, 19)
	assert.Equal(t, domain.Pos(0, 0), res.Path[0])
	assert.Equal(t, domain.Pos(9, 9), res.Path[18])
	assert.Equal(t, 18.0, res.FinishG)
}

func TestEngine_Scenario_ObstaclesDoNotBlockMonotonePaths(t *testing.T) {
	g := newGrid(t, 10, domain.Pos(0, 0), domain.Pos(9, 9),
		domain.Pos(9, 7), domain.Pos(8, 7), domain.Pos(6, 7), domain.Pos(6, 8))

	res, err := runtime.NewEngine().Run(context.Background(), g)
	require.NoError(t, err)

	assert.Equal(t, domain.OutcomeSucceeded, res.Outcome)
	assert.Equal(t, 18, res.StepCount)
	for _, p := range res.Path {
		st, _ := g.State(p)
		assert.NotEqual(t, domain.StateObstacle, st, "path crosses obstacle at %s", p)
	}
}

func TestEngine_PathIsContiguous(t *testing.T) {
	g := newGrid(t, 8, domain.Pos(0, 0), domain.Pos(7, 0),
		domain.Pos(3, 0), domain.Pos(3, 1), domain.Pos(3, 2), domain.Pos(3, 3), domain.Pos(3, 4), domain.Pos(3, 5), domain.Pos(3, 6))

	res, err := runtime.NewEngine().Run(context.Background(), g)
	require.NoError(t, err)
	require.True(t, res.Found())

	for i := 1; i < len(res.Path); i++ {
		a, b := res.Path[i-1], res.Path[i]
		assert.Equal(t, 1.0, runtime.Manhattan(a, b), "jump between %s and %s", a, b)
	}
	assert.Equal(t, bfsDistance(g, domain.Pos(0, 0), domain.Pos(7, 0)), res.StepCount)
}

func TestEngine_MarksPathAndVisited(t *testing.T) {
	g := newGrid(t, 5, domain.Pos(0, 0), domain.Pos(0, 4))

	res, err := runtime.NewEngine().Run(context.Background(), g)
	require.NoError(t, err)
	require.True(t, res.Found())

	for _, p := range res.Path[1 : len(res.Path)-1] {
		st, _ := g.State(p)
		assert.Equal(t, domain.StatePath, st, "at %s", p)
	}
	st, _ := g.State(domain.Pos(0, 0))
	assert.Equal(t, domain.StateStart, st)
	st, _ = g.State(domain.Pos(0, 4))
	assert.Equal(t, domain.StateFinish, st)
}

func TestEngine_Unreachable(t *testing.T) {
	// Finish boxed in by obstacles on every orthogonal side.
	g := newGrid(t, 10, domain.Pos(0, 0), domain.Pos(5, 5),
		domain.Pos(4, 5), domain.Pos(6, 5), domain.Pos(5, 4), domain.Pos(5, 6))

	engine := runtime.NewEngine()
	res, err := engine.Run(context.Background(), g)
	require.NoError(t, err)

	assert.Equal(t, domain.OutcomeFailed, res.Outcome)
	assert.Equal(t, domain.OutcomeFailed, engine.Outcome())
	assert.Empty(t, res.Path)
	assert.True(t, math.IsInf(res.FinishG, 1))
	assert.True(t, math.IsInf(res.FinishF, 1))
	// Everything reachable except the walls and the enclosed finish got expanded.
	assert.Equal(t, 100-4-1, res.Expanded)
}

func TestEngine_Determinism(t *testing.T) {
	build := func() *grid.Grid {
		return newGrid(t, 12, domain.Pos(1, 1), domain.Pos(10, 9),
			domain.Pos(4, 2), domain.Pos(4, 3), domain.Pos(4, 4), domain.Pos(7, 8), domain.Pos(8, 8))
	}

	first, err := runtime.NewEngine().Run(context.Background(), build())
	require.NoError(t, err)
	second, err := runtime.NewEngine().Run(context.Background(), build())
	require.NoError(t, err)

	assert.Equal(t, first.Path, second.Path)
	assert.Equal(t, first.StepCount, second.StepCount)
	assert.Equal(t, first.Expanded, second.Expanded)
}

func TestEngine_OptimalAgainstBFS(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 7))
	for trial := range 200 {
		rows := 3 + rng.IntN(14)
		g, err := grid.New(rows, 0)
		require.NoError(t, err)

		start := domain.Pos(rng.IntN(rows), rng.IntN(rows))
		finish := domain.Pos(rng.IntN(rows), rng.IntN(rows))
		if start == finish {
			continue
		}
		g.SetStart(start)
		g.SetFinish(finish)
		g.Scatter(rng, rng.IntN(rows*rows/2+1))
		g.RefreshNeighbors()

		want := bfsDistance(g, start, finish)
		res, err := runtime.NewEngine().Run(context.Background(), g)
		require.NoError(t, err)

		if want < 0 {
			assert.Equal(t, domain.OutcomeFailed, res.Outcome, "trial %d", trial)
			continue
		}
		require.Equal(t, domain.OutcomeSucceeded, res.Outcome, "trial %d", trial)
		assert.Equal(t, want, res.StepCount, "trial %d: rows=%d start=%s finish=%s", trial, rows, start, finish)
		assert.Equal(t, len(res.Path)-1, res.StepCount)
	}
}
