package astar

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/gridpath/terrain"
)

// HeuristicMode selects how h is estimated. See the package documentation.
type HeuristicMode int

const (
	// HeuristicCorrected uses Manhattan (4-way) or octile (8-way) distance
	// from the candidate cell to the end.
	HeuristicCorrected HeuristicMode = iota
	// HeuristicReference uses Euclidean (8-way) or |dx| - |dy| (4-way)
	// measured from the expanding cell.
	HeuristicReference
)

// String implements fmt.Stringer.
func (m HeuristicMode) String() string {
	switch m {
	case HeuristicCorrected:
		return "corrected"
	case HeuristicReference:
		return "reference"
	default:
		return fmt.Sprintf("HeuristicMode(%d)", int(m))
	}
}

// Node is one waypoint of a returned Path.
type Node struct {
	Pos terrain.Position
	G   float64 // accumulated cost from start
	H   float64 // heuristic estimate at discovery
}

// F returns the ordering key G + H.
func (n Node) F() float64 { return n.G + n.H }

// Path is an ordered sequence of nodes from start to end inclusive.
type Path []Node

// Positions returns the cells of p in order.
func (p Path) Positions() []terrain.Position {
	out := make([]terrain.Position, len(p))
	for i, n := range p {
		out[i] = n.Pos
	}
	return out
}

// Cost returns the accumulated cost at the last node, or 0 for an empty path.
func (p Path) Cost() float64 {
	if len(p) == 0 {
		return 0
	}
	return p[len(p)-1].G
}

// Steps returns the number of moves in p.
func (p Path) Steps() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Option configures an Engine via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds the tunables of an Engine.
type Options struct {
	// Diagonal enables 8-way movement.
	Diagonal bool

	// Heuristic selects the h estimate.
	Heuristic HeuristicMode

	// MaxExpansions, if > 0, caps the number of nodes expanded per search
	// (start included). 0 disables the cap.
	MaxExpansions int

	// Logger receives diagnostics for invalid input and search summaries.
	Logger *slog.Logger

	// OnExpand is called each time a node is moved to the closed set,
	// the start node included.
	OnExpand func(Node)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns an Options with:
//   - orthogonal movement only
//   - HeuristicCorrected
//   - no expansion cap
//   - slog.Default() as logger
//   - a no-op OnExpand hook
func DefaultOptions() Options {
	return Options{
		Diagonal:      false,
		Heuristic:     HeuristicCorrected,
		MaxExpansions: 0,
		Logger:        slog.Default(),
		OnExpand:      func(Node) {},
	}
}

// WithDiagonal enables or disables diagonal movement.
func WithDiagonal(enabled bool) Option {
	return func(o *Options) {
		o.Diagonal = enabled
	}
}

// WithHeuristic selects the heuristic. Unknown modes are an ErrOptionViolation.
func WithHeuristic(mode HeuristicMode) Option {
	return func(o *Options) {
		switch mode {
		case HeuristicCorrected, HeuristicReference:
			o.Heuristic = mode
		default:
			o.err = fmt.Errorf("%w: unknown heuristic %v", ErrOptionViolation, mode)
		}
	}
}

// WithMaxExpansions caps the nodes expanded per search.
//
//	n > 0: at most n expansions, then ErrExpansionLimit
//	n == 0: no cap
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithLogger sets the diagnostics logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnExpand registers a callback run on every expansion.
func WithOnExpand(fn func(Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}
