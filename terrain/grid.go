package terrain

import "fmt"

// New constructs a Grid from a non-empty, rectangular 2D slice of cost codes.
// It deep-copies the input, so later mutation of rows has no effect.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs, and ErrNegativeCost
// (wrapped with the offending cell) if any code is below zero.
// Complexity: O(W×H) time and memory.
func New(rows [][]int) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	cells := make([]int, 0, w*h)
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		for x, v := range row {
			if v < 0 {
				return nil, fmt.Errorf("%w: cell (%d,%d)=%d", ErrNegativeCost, x, y, v)
			}
		}
		cells = append(cells, row...)
	}

	return &Grid{width: w, height: h, cells: cells}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// At returns the cost code at p, and false if p is out of bounds.
func (g *Grid) At(p Position) (int, bool) {
	if !g.InBounds(p) {
		return 0, false
	}
	return g.cells[g.Index(p)], true
}

// Walkable reports whether p is in bounds and not Blocked.
func (g *Grid) Walkable(p Position) bool {
	v, ok := g.At(p)
	return ok && v != Blocked
}

// Index maps p to its row-major index y*Width + x.
// The caller must ensure p is in bounds.
func (g *Grid) Index(p Position) int {
	return p.Y*g.width + p.X
}

// Position converts a row-major index back to a Position.
func (g *Grid) Position(idx int) Position {
	return Position{X: idx % g.width, Y: idx / g.width}
}

// Rows returns a fresh copy of the grid as [][]int.
func (g *Grid) Rows() [][]int {
	out := make([][]int, g.height)
	for y := range out {
		out[y] = make([]int, g.width)
		copy(out[y], g.cells[y*g.width:(y+1)*g.width])
	}
	return out
}
