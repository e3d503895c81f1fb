package domain

import "fmt"

// State is the search-relevant tag of a cell.
// It is data only; the presentation layer owns the mapping to colors.
type State uint8

const (
	StateUnvisited State = iota // Never touched by the current search
	StateFrontier               // Discovered, waiting for expansion
	StateVisited                // Expanded (closed)
	StateObstacle               // Impassable
	StateStart                  // Search origin
	StateFinish                 // Search target
	StatePath                   // Part of the reconstructed route
)

var stateNames = [...]string{
	StateUnvisited: "unvisited",
	StateFrontier:  "frontier",
	StateVisited:   "visited",
	StateObstacle:  "obstacle",
	StateStart:     "start",
	StateFinish:    "finish",
	StatePath:      "path",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

// IsRole reports whether the state marks the start or the finish.
func (s State) IsRole() bool {
	return s == StateStart || s == StateFinish
}

// IsSearchMark reports whether the state was produced by a search run
// (as opposed to an edit).
func (s State) IsSearchMark() bool {
	return s == StateFrontier || s == StateVisited || s == StatePath
}

// ParseState converts a lower-case state name back into a State.
func ParseState(name string) (State, error) {
	for i, n := range stateNames {
		if n == name {
			return State(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownState, name)
}

// MarshalText implements encoding.TextMarshaler.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *State) UnmarshalText(b []byte) error {
	parsed, err := ParseState(string(b))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
