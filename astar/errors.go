package astar

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by New and FindPath.
var (
	// ErrNilGrid indicates that a nil *terrain.Grid was passed to New.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrInvalidInput is the parent of every start/end validation failure.
	ErrInvalidInput = errors.New("astar: invalid input")

	// ErrInvalidStart indicates the engine's start cell is unusable.
	ErrInvalidStart = fmt.Errorf("%w: start", ErrInvalidInput)

	// ErrInvalidEnd indicates the requested end cell is unusable.
	ErrInvalidEnd = fmt.Errorf("%w: end", ErrInvalidInput)

	// ErrOutOfBounds is the reason for a position outside the grid.
	ErrOutOfBounds = errors.New("astar: position out of bounds")

	// ErrBlocked is the reason for a position on a Blocked cell.
	ErrBlocked = errors.New("astar: position is blocked")

	// ErrNoPath indicates the frontier was exhausted before reaching the end.
	ErrNoPath = errors.New("astar: no path found")

	// ErrExpansionLimit indicates the WithMaxExpansions budget ran out.
	ErrExpansionLimit = errors.New("astar: expansion limit reached")
)

// Outcome is the tagged classification of a FindPath result.
type Outcome int

const (
	// OutcomeFound means a non-empty path from start to end was returned.
	OutcomeFound Outcome = iota
	// OutcomeNoPath means the end is unreachable from the start.
	OutcomeNoPath
	// OutcomeInvalidInput means start or end (or the engine setup) was invalid.
	OutcomeInvalidInput
	// OutcomeAborted means the search stopped early: context done or limit hit.
	OutcomeAborted
)

// String implements fmt.Stringer.
func (o Outcome) String() string {
	switch o {
	case OutcomeFound:
		return "found"
	case OutcomeNoPath:
		return "no-path"
	case OutcomeInvalidInput:
		return "invalid-input"
	case OutcomeAborted:
		return "aborted"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Classify maps an error returned by New or FindPath to its Outcome.
// A nil error is OutcomeFound. Unknown errors count as OutcomeAborted.
func Classify(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeFound
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrNilGrid),
		errors.Is(err, ErrOptionViolation):
		return OutcomeInvalidInput
	case errors.Is(err, ErrNoPath):
		return OutcomeNoPath
	default:
		return OutcomeAborted
	}
}
