/*
Package domain contains the core data model of the pathfinder engine.

It defines the entities shared by the grid, the search runtime and every
presenter: positions, cells and their search state, search outcomes and the
hooks used to observe a running search. This package is kept pure and free of
I/O, rendering or persistence concerns.

# Key Entities

  - Position: a (row, col) coordinate inside a square grid.
  - State: the search-relevant tag carried by a Cell (obstacle, frontier, path...).
  - Cell: a single grid position with its state and cached adjacency.
  - Result: the outcome of one search run (path, step count, expanded cells).
  - LifecycleHooks / Observer: callbacks invoked synchronously while a search runs.

Colors are deliberately absent: how a State is drawn belongs to the presenter.
*/
package domain
