package domain

import "time"

// Outcome is the phase of a search run. Succeeded, Failed and Cancelled are terminal.
type Outcome string

const (
	OutcomeIdle      Outcome = "idle"
	OutcomeRunning   Outcome = "running"
	OutcomeSucceeded Outcome = "succeeded"
	OutcomeFailed    Outcome = "failed"    // Frontier exhausted, no path exists
	OutcomeCancelled Outcome = "cancelled" // Aborted by context or observer
)

// IsTerminal reports whether no further transition can follow.
func (o Outcome) IsTerminal() bool {
	return o == OutcomeSucceeded || o == OutcomeFailed || o == OutcomeCancelled
}

// Result describes how a search run ended.
type Result struct {
	Outcome Outcome `json:"outcome"`

	// Path runs from start to finish, both endpoints included. Empty unless Succeeded.
	Path []Position `json:"path,omitempty"`

	// StepCount is the number of moves along Path (len(Path)-1).
	StepCount int `json:"step_count"`

	// Expanded counts the cells closed by the search.
	Expanded int `json:"expanded"`

	// FinishG and FinishF are the session scores of the finish cell.
	// Both stay +Inf when the finish was never reached.
	FinishG float64 `json:"-"`
	FinishF float64 `json:"-"`

	Duration time.Duration `json:"duration"`
}

// Found reports whether a path was produced.
func (r Result) Found() bool {
	return r.Outcome == OutcomeSucceeded
}
