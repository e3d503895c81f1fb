package domain

import "errors"

// ErrMissingStart is returned when a search is requested before a start cell is set.
var ErrMissingStart = errors.New("start cell not set")

// ErrMissingFinish is returned when a search is requested before a finish cell is set.
var ErrMissingFinish = errors.New("finish cell not set")

// ErrStaleNeighbors is returned when the grid was edited after its last neighbor refresh.
var ErrStaleNeighbors = errors.New("neighbor cache is stale; refresh neighbors before searching")

// ErrEmptyFrontier is returned when popping from an empty frontier.
var ErrEmptyFrontier = errors.New("frontier is empty")

// ErrInvalidSize is returned when a grid is created with fewer than one row.
var ErrInvalidSize = errors.New("grid must have at least one row")

// ErrOutOfBounds is returned when a position lies outside the grid.
var ErrOutOfBounds = errors.New("position out of bounds")

// ErrUnknownState is returned when parsing an unrecognised state name.
var ErrUnknownState = errors.New("unknown cell state")
