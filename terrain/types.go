package terrain

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("terrain: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("terrain: all rows must have the same length")
	// ErrNegativeCost indicates a cell holds a negative cost code.
	ErrNegativeCost = errors.New("terrain: cost codes must be non-negative")
)

// Cost codes with a fixed meaning. Any other non-negative value is added
// to the step cost literally.
const (
	Free      = 0
	Blocked   = 1
	Penalized = 2
)

const (
	// BaseStep is the cost of any single move before add-ons.
	BaseStep = 1.0
	// PenaltyExtra is charged on top of the code itself when entering a Penalized cell.
	PenaltyExtra = 3.0
	// DiagonalExtra approximates the extra length of a diagonal move (1.4 total).
	DiagonalExtra = 0.4
)

// Position identifies a grid cell. X is the column, Y the row.
type Position struct {
	X, Y int
}

// Pos is shorthand for Position{X: x, Y: y}.
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// Add returns p shifted by o.
func (p Position) Add(o Offset) Position {
	return Position{X: p.X + o.DX, Y: p.Y + o.DY}
}

// String renders p as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Offset is a relative move between two adjacent cells.
type Offset struct {
	DX, DY int
}

// Diagonal reports whether both components are non-zero.
func (o Offset) Diagonal() bool {
	return o.DX != 0 && o.DY != 0
}

// Grid is an immutable rectangular matrix of cost codes.
// cells is stored row-major: cells[y*width+x].
type Grid struct {
	width, height int
	cells         []int
}
