package grid

import "github.com/aretw0/pathfinder/pkg/domain"

// Probe order for adjacency: below, above, right, left.
var offsets = [4]domain.Position{
	{Row: 1, Col: 0},
	{Row: -1, Col: 0},
	{Row: 0, Col: 1},
	{Row: 0, Col: -1},
}

// RefreshNeighbors recomputes every cell's adjacency as the in-bounds
// orthogonal positions that are not obstacles. Call it once after the last
// edit and before searching.
func (g *Grid) RefreshNeighbors() {
	for _, c := range g.cells {
		pos := c.Position()
		ns := make([]domain.Position, 0, len(offsets))
		for _, d := range offsets {
			n := domain.Position{Row: pos.Row + d.Row, Col: pos.Col + d.Col}
			if g.InBounds(n) && g.cells[g.Index(n)].State() != domain.StateObstacle {
				ns = append(ns, n)
			}
		}
		c.SetNeighbors(ns)
	}
	g.stale = false
}

// Neighbors returns the cached adjacency of pos.
func (g *Grid) Neighbors(pos domain.Position) []domain.Position {
	c := g.Cell(pos)
	if c == nil {
		return nil
	}
	return c.Neighbors()
}
