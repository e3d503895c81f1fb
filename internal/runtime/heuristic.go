package runtime

import "github.com/aretw0/pathfinder/pkg/domain"

// Heuristic estimates the remaining cost between two positions.
type Heuristic func(from, to domain.Position) float64

// Manhattan is the sum of absolute row and column differences. It never
// overestimates on a four-directional unit-cost grid.
func Manhattan(a, b domain.Position) float64 {
	return float64(abs(a.Row-b.Row) + abs(a.Col-b.Col))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
