// Package terrain models a rectangular 2D grid of integer terrain cost codes
// and the per-step cost of moving across it.
//
// What:
//
//   - Grid wraps a validated, rectangular [][]int that is immutable once built.
//   - Position addresses a cell as (X, Y); the cell value is rows[Y][X].
//   - StepCost prices a single move into a cell, orthogonal or diagonal.
//   - Offsets enumerates the neighbor offsets for 4- or 8-way movement.
//
// Cost codes:
//
//   - Free      (0): base step cost only.
//   - Blocked   (1): impassable.
//   - Penalized (2): base + 2 + PenaltyExtra.
//   - any other non-negative value v: base + v.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNegativeCost: a cell holds a negative cost code.
//
// Complexity:
//
//   - New:     O(W×H) time and memory (deep copy).
//   - lookups: O(1).
package terrain
