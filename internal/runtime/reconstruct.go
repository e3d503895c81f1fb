package runtime

import (
	"context"

	"github.com/aretw0/pathfinder/pkg/domain"
	"github.com/aretw0/pathfinder/pkg/grid"
)

// Reconstruct walks cameFrom backward from finish until it reaches a cell with
// no predecessor (the start). Every intermediate cell is tagged Path and
// reported to observe. The returned path runs start to finish with both
// endpoints; stepCount is its number of moves.
func Reconstruct(
	ctx context.Context,
	g *grid.Grid,
	cameFrom []int,
	finish int,
	observe func(ctx context.Context, idx int) error,
) (path []domain.Position, stepCount int, err error) {
	indices := []int{finish}
	for current := cameFrom[finish]; current != noPredecessor; current = cameFrom[current] {
		indices = append(indices, current)
		if cameFrom[current] == noPredecessor {
			break
		}
		g.Mark(current, domain.StatePath)
		if observe != nil {
			if err := observe(ctx, current); err != nil {
				return nil, 0, err
			}
		}
	}

	path = make([]domain.Position, len(indices))
	for i, idx := range indices {
		path[len(indices)-1-i] = g.PositionOf(idx)
	}
	return path, len(path) - 1, nil
}
