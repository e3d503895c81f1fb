package domain

// Cell is a single grid position and its search state.
// Neighbors are held as positions, never as references to other cells.
type Cell struct {
	pos       Position
	state     State
	neighbors []Position
}

// NewCell creates an unvisited cell at pos.
func NewCell(pos Position) *Cell {
	return &Cell{pos: pos, state: StateUnvisited}
}

func (c *Cell) State() State { return c.state }

func (c *Cell) SetState(s State) { c.state = s }

func (c *Cell) Position() Position { return c.pos }

// Neighbors returns the cached orthogonal neighbors.
// The cache is only meaningful after the owning grid refreshed it.
func (c *Cell) Neighbors() []Position { return c.neighbors }

// SetNeighbors replaces the adjacency cache.
func (c *Cell) SetNeighbors(ns []Position) { c.neighbors = ns }
