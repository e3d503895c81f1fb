package grid

import (
	"fmt"
	"iter"

	"github.com/aretw0/pathfinder/pkg/domain"
)

const noRole = -1

// Grid is a square collection of cells plus the start/finish roles.
type Grid struct {
	rows  int
	width int
	cells []*domain.Cell

	start  int
	finish int

	// stale is set by any edit that can change adjacency.
	stale bool
}

// New allocates a rows×rows grid with every cell unvisited.
// width is the display extent presenters divide among the rows; values <= 0
// default to one unit per cell.
func New(rows, width int) (*Grid, error) {
	if rows < 1 {
		return nil, fmt.Errorf("%w: got %d", domain.ErrInvalidSize, rows)
	}
	if width <= 0 {
		width = rows
	}
	g := &Grid{
		rows:   rows,
		width:  width,
		cells:  make([]*domain.Cell, rows*rows),
		start:  noRole,
		finish: noRole,
		stale:  true,
	}
	for i := range g.cells {
		g.cells[i] = domain.NewCell(g.PositionOf(i))
	}
	return g, nil
}

// Rows returns the number of rows (and columns).
func (g *Grid) Rows() int { return g.rows }

// Width returns the display extent given at construction.
func (g *Grid) Width() int { return g.width }

// Gap returns the display size of one cell.
func (g *Grid) Gap() int { return g.width / g.rows }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether pos lies inside the grid.
func (g *Grid) InBounds(pos domain.Position) bool {
	return pos.Row >= 0 && pos.Row < g.rows && pos.Col >= 0 && pos.Col < g.rows
}

// Index maps an in-bounds position to its storage index.
func (g *Grid) Index(pos domain.Position) int {
	return pos.Row*g.rows + pos.Col
}

// PositionOf is the inverse of Index.
func (g *Grid) PositionOf(idx int) domain.Position {
	return domain.Position{Row: idx / g.rows, Col: idx % g.rows}
}

// Cell returns the cell at pos, or nil when out of bounds.
func (g *Grid) Cell(pos domain.Position) *domain.Cell {
	if !g.InBounds(pos) {
		return nil
	}
	return g.cells[g.Index(pos)]
}

// At returns the cell stored at idx.
func (g *Grid) At(idx int) *domain.Cell { return g.cells[idx] }

// State returns the state at pos. Out-of-bounds positions report ErrOutOfBounds.
func (g *Grid) State(pos domain.Position) (domain.State, error) {
	c := g.Cell(pos)
	if c == nil {
		return 0, fmt.Errorf("%w: %s", domain.ErrOutOfBounds, pos)
	}
	return c.State(), nil
}

// Start returns the start position, if set.
func (g *Grid) Start() (domain.Position, bool) { return g.role(g.start) }

// Finish returns the finish position, if set.
func (g *Grid) Finish() (domain.Position, bool) { return g.role(g.finish) }

func (g *Grid) role(idx int) (domain.Position, bool) {
	if idx == noRole {
		return domain.Position{}, false
	}
	return g.PositionOf(idx), true
}

// Stale reports whether the neighbor caches are out of date.
func (g *Grid) Stale() bool { return g.stale }

// Cells iterates every cell in row-major order.
func (g *Grid) Cells() iter.Seq2[int, *domain.Cell] {
	return func(yield func(int, *domain.Cell) bool) {
		for i, c := range g.cells {
			if !yield(i, c) {
				return
			}
		}
	}
}

// Obstacles lists obstacle positions in row-major order.
func (g *Grid) Obstacles() []domain.Position {
	var out []domain.Position
	for _, c := range g.cells {
		if c.State() == domain.StateObstacle {
			out = append(out, c.Position())
		}
	}
	return out
}

// Mark sets a search tag on the cell at idx. Role cells keep their tag.
func (g *Grid) Mark(idx int, s domain.State) {
	c := g.cells[idx]
	if c.State().IsRole() {
		return
	}
	c.SetState(s)
}
