package grid

import (
	"math/rand/v2"

	"github.com/aretw0/pathfinder/pkg/domain"
)

// SetObstacle turns pos into an obstacle. It reports whether anything changed;
// role cells and out-of-bounds positions are left alone.
func (g *Grid) SetObstacle(pos domain.Position) bool {
	c := g.Cell(pos)
	if c == nil || c.State().IsRole() || c.State() == domain.StateObstacle {
		return false
	}
	c.SetState(domain.StateObstacle)
	g.stale = true
	return true
}

// ClearObstacle returns an obstacle at pos to unvisited.
func (g *Grid) ClearObstacle(pos domain.Position) bool {
	c := g.Cell(pos)
	if c == nil || c.State() != domain.StateObstacle {
		return false
	}
	c.SetState(domain.StateUnvisited)
	g.stale = true
	return true
}

// SetStart moves the start role to pos, releasing any previous start.
// It is a no-op when pos is the finish or out of bounds.
func (g *Grid) SetStart(pos domain.Position) bool {
	return g.setRole(pos, &g.start, domain.StateStart)
}

// SetFinish moves the finish role to pos, releasing any previous finish.
// It is a no-op when pos is the start or out of bounds.
func (g *Grid) SetFinish(pos domain.Position) bool {
	return g.setRole(pos, &g.finish, domain.StateFinish)
}

func (g *Grid) setRole(pos domain.Position, holder *int, s domain.State) bool {
	c := g.Cell(pos)
	if c == nil || c.State().IsRole() {
		return false
	}
	if *holder != noRole {
		g.cells[*holder].SetState(domain.StateUnvisited)
	}
	*holder = g.Index(pos)
	c.SetState(s)
	g.stale = true
	return true
}

// ClearStart releases the start role.
func (g *Grid) ClearStart() bool { return g.clearRole(&g.start) }

// ClearFinish releases the finish role.
func (g *Grid) ClearFinish() bool { return g.clearRole(&g.finish) }

func (g *Grid) clearRole(holder *int) bool {
	if *holder == noRole {
		return false
	}
	g.cells[*holder].SetState(domain.StateUnvisited)
	*holder = noRole
	g.stale = true
	return true
}

// Reset returns every non-role cell, obstacles included, to unvisited.
func (g *Grid) Reset() {
	for _, c := range g.cells {
		if c.State().IsRole() {
			continue
		}
		if c.State() == domain.StateObstacle {
			g.stale = true
		}
		c.SetState(domain.StateUnvisited)
	}
}

// ClearSearch drops the frontier, visited and path tags left by a previous run.
// Obstacles and roles stay.
func (g *Grid) ClearSearch() {
	for _, c := range g.cells {
		if c.State().IsSearchMark() {
			c.SetState(domain.StateUnvisited)
		}
	}
}

// Scatter picks n uniformly random positions and turns each into an obstacle.
// Role cells are skipped and repeated picks are no-ops. It returns how many
// cells actually became obstacles.
func (g *Grid) Scatter(rng *rand.Rand, n int) int {
	placed := 0
	for range n {
		pos := domain.Position{Row: rng.IntN(g.rows), Col: rng.IntN(g.rows)}
		if g.SetObstacle(pos) {
			placed++
		}
	}
	return placed
}
