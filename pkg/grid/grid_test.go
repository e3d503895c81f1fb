package grid_test

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/aretw0/pathfinder/pkg/domain"
	"github.com/aretw0/pathfinder/pkg/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustGrid(t *testing.T, rows int) *grid.Grid {
	t.Helper()
	g, err := grid.New(rows, 0)
	require.NoError(t, err)
	return g
}

func stateAt(t *testing.T, g *grid.Grid, p domain.Position) domain.State {
	t.Helper()
	st, err := g.State(p)
	require.NoError(t, err)
	return st
}

func TestNew(t *testing.T) {
	g, err := grid.New(10, 500)
	require.NoError(t, err)

	assert.Equal(t, 10, g.Rows())
	assert.Equal(t, 100, g.Len())
	assert.Equal(t, 50, g.Gap())
	for _, c := range g.Cells() {
		assert.Equal(t, domain.StateUnvisited, c.State())
	}
	assert.True(t, g.Stale(), "new grid has no adjacency yet")

	_, err = grid.New(0, 10)
	assert.True(t, errors.Is(err, domain.ErrInvalidSize))
}

func TestIndexRoundTrip(t *testing.T) {
	g := mustGrid(t, 7)
	for i := range g.Len() {
		assert.Equal(t, i, g.Index(g.PositionOf(i)))
	}
	assert.Equal(t, domain.Pos(2, 3), g.PositionOf(17))
}

func TestObstacleEdits(t *testing.T) {
	g := mustGrid(t, 5)
	p := domain.Pos(1, 1)

	assert.True(t, g.SetObstacle(p))
	assert.False(t, g.SetObstacle(p), "second placement is a no-op")
	assert.Equal(t, domain.StateObstacle, stateAt(t, g, p))

	assert.True(t, g.ClearObstacle(p))
	assert.False(t, g.ClearObstacle(p))
	assert.Equal(t, domain.StateUnvisited, stateAt(t, g, p))

	assert.False(t, g.SetObstacle(domain.Pos(9, 9)), "out of bounds is ignored")
	_, err := g.State(domain.Pos(-1, 0))
	assert.True(t, errors.Is(err, domain.ErrOutOfBounds))
}

func TestProtectedRoles(t *testing.T) {
	g := mustGrid(t, 5)
	start, finish := domain.Pos(0, 0), domain.Pos(4, 4)
	require.True(t, g.SetStart(start))
	require.True(t, g.SetFinish(finish))

	assert.False(t, g.SetObstacle(start))
	assert.False(t, g.SetObstacle(finish))
	assert.False(t, g.ClearObstacle(start))
	assert.False(t, g.SetStart(finish), "finish cannot become start")
	assert.False(t, g.SetFinish(start), "start cannot become finish")

	assert.Equal(t, domain.StateStart, stateAt(t, g, start))
	assert.Equal(t, domain.StateFinish, stateAt(t, g, finish))
}

func TestRolesAreUnique(t *testing.T) {
	g := mustGrid(t, 5)
	g.SetStart(domain.Pos(0, 0))
	g.SetStart(domain.Pos(2, 2))

	assert.Equal(t, domain.StateUnvisited, stateAt(t, g, domain.Pos(0, 0)))
	pos, ok := g.Start()
	require.True(t, ok)
	assert.Equal(t, domain.Pos(2, 2), pos)

	starts := 0
	for _, c := range g.Cells() {
		if c.State() == domain.StateStart {
			starts++
		}
	}
	assert.Equal(t, 1, starts)

	// A role placed on an obstacle replaces it.
	g.SetObstacle(domain.Pos(3, 3))
	require.True(t, g.SetFinish(domain.Pos(3, 3)))
	assert.Equal(t, domain.StateFinish, stateAt(t, g, domain.Pos(3, 3)))

	assert.True(t, g.ClearFinish())
	_, ok = g.Finish()
	assert.False(t, ok)
	assert.False(t, g.ClearFinish())
}

func TestRefreshNeighbors(t *testing.T) {
	g := mustGrid(t, 3)
	g.SetObstacle(domain.Pos(1, 2))
	g.RefreshNeighbors()
	assert.False(t, g.Stale())

	// Probe order: below, above, right, left.
	assert.Equal(t, []domain.Position{domain.Pos(2, 1), domain.Pos(0, 1), domain.Pos(1, 0)}, g.Neighbors(domain.Pos(1, 1)))
	assert.Equal(t, []domain.Position{domain.Pos(1, 0), domain.Pos(0, 1)}, g.Neighbors(domain.Pos(0, 0)))
	assert.Nil(t, g.Neighbors(domain.Pos(5, 5)))

	// Caches do not react to edits until refreshed.
	g.ClearObstacle(domain.Pos(1, 2))
	assert.True(t, g.Stale())
	assert.Len(t, g.Neighbors(domain.Pos(1, 1)), 3)
	g.RefreshNeighbors()
	assert.Len(t, g.Neighbors(domain.Pos(1, 1)), 4)
}

func TestReset(t *testing.T) {
	g := mustGrid(t, 4)
	g.SetStart(domain.Pos(0, 0))
	g.SetFinish(domain.Pos(3, 3))
	g.SetObstacle(domain.Pos(1, 1))
	g.Mark(g.Index(domain.Pos(2, 2)), domain.StateVisited)
	g.Mark(g.Index(domain.Pos(2, 1)), domain.StatePath)

	snapshot := func() []domain.State {
		var out []domain.State
		for _, c := range g.Cells() {
			out = append(out, c.State())
		}
		return out
	}

	g.Reset()
	first := snapshot()
	g.Reset()
	second := snapshot()

	assert.Equal(t, first, second)
	for i, st := range first {
		switch g.PositionOf(i) {
		case domain.Pos(0, 0):
			assert.Equal(t, domain.StateStart, st)
		case domain.Pos(3, 3):
			assert.Equal(t, domain.StateFinish, st)
		default:
			assert.Equal(t, domain.StateUnvisited, st)
		}
	}
}

func TestClearSearchKeepsObstacles(t *testing.T) {
	g := mustGrid(t, 4)
	g.SetStart(domain.Pos(0, 0))
	g.SetObstacle(domain.Pos(1, 1))
	g.Mark(g.Index(domain.Pos(2, 2)), domain.StateFrontier)
	g.Mark(g.Index(domain.Pos(0, 0)), domain.StateVisited)

	g.ClearSearch()

	assert.Equal(t, domain.StateObstacle, stateAt(t, g, domain.Pos(1, 1)))
	assert.Equal(t, domain.StateUnvisited, stateAt(t, g, domain.Pos(2, 2)))
	assert.Equal(t, domain.StateStart, stateAt(t, g, domain.Pos(0, 0)), "Mark never overwrites roles")
}

func TestScatter(t *testing.T) {
	g := mustGrid(t, 10)
	g.SetStart(domain.Pos(0, 0))
	g.SetFinish(domain.Pos(9, 9))

	rng := rand.New(rand.NewPCG(3, 4))
	placed := g.Scatter(rng, 30)

	assert.LessOrEqual(t, placed, 30)
	assert.Len(t, g.Obstacles(), placed)
	assert.Equal(t, domain.StateStart, stateAt(t, g, domain.Pos(0, 0)))
	assert.Equal(t, domain.StateFinish, stateAt(t, g, domain.Pos(9, 9)))

	// Same seed, same board.
	other := mustGrid(t, 10)
	other.SetStart(domain.Pos(0, 0))
	other.SetFinish(domain.Pos(9, 9))
	other.Scatter(rand.New(rand.NewPCG(3, 4)), 30)
	assert.Equal(t, g.Obstacles(), other.Obstacles())
}
