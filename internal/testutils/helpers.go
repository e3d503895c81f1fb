package testutils

import (
	"testing"

	"github.com/aretw0/pathfinder/pkg/domain"
	"github.com/aretw0/pathfinder/pkg/grid"
	"github.com/stretchr/testify/require"
)

// GridFromPicture builds a square grid from one string per row:
// 'S' start, 'F' finish, '#' obstacle, anything else empty.
// Neighbor caches are refreshed so the grid is ready to search.
// It fails the test immediately on a malformed picture.
func GridFromPicture(t *testing.T, rows ...string) *grid.Grid {
	t.Helper()

	g, err := grid.New(len(rows), 0)
	require.NoError(t, err, "Failed to create grid")

	for r, line := range rows {
		require.Len(t, line, len(rows), "row %d must be %d cells wide", r, len(rows))
		for c, ch := range line {
			p := domain.Pos(r, c)
			switch ch {
			case 'S':
				g.SetStart(p)
			case 'F':
				g.SetFinish(p)
			case '#':
				g.SetObstacle(p)
			}
		}
	}
	g.RefreshNeighbors()
	return g
}
