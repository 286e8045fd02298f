// Package astar finds a least-cost path between two cells of a terrain.Grid
// using the A* best-first search, with optional diagonal movement.
//
// Overview:
//
//   - An Engine is bound to one grid and one start cell. FindPath searches from
//     that start to any end cell; each call owns its own frontier, node arena
//     and discovered set, so a single Engine may serve concurrent callers.
//   - The frontier is a binary heap ordered by f = g + h. Equal f values are
//     popped in discovery order, which matches a stable re-sort of the open
//     list after every expansion.
//   - Cells already discovered (open or closed) are skipped, never relaxed.
//     The result is therefore not guaranteed optimal when a cheaper route to
//     an already discovered cell appears later. With the default heuristic
//     on uniform terrain the returned path is optimal.
//
// Costs (see terrain.StepCost):
//
//   - Orthogonal step 1.0, diagonal step 1.4.
//   - Entering a cell adds its code; a Penalized cell adds a further 3.
//
// Heuristics:
//
//   - HeuristicCorrected (default): evaluated at the candidate cell.
//     Manhattan distance for 4-way movement, octile distance (max + 0.4·min)
//     for 8-way movement. Admissible for the cost model above.
//   - HeuristicReference: evaluated at the expanding cell, not the candidate.
//     Euclidean distance for 8-way movement and the signed |dx| - |dy| for
//     4-way movement. Kept for parity with existing embeddings; it can change
//     expansion order and path choice.
//
// Outcomes:
//
//	path, err := eng.FindPath(ctx, end)
//	switch astar.Classify(err) {
//	case astar.OutcomeFound:        // path[0] is start, path[len(path)-1] is end
//	case astar.OutcomeInvalidInput: // start or end out of bounds or blocked
//	case astar.OutcomeNoPath:       // frontier exhausted
//	case astar.OutcomeAborted:      // context done or expansion limit hit
//	}
//
// Errors (sentinel):
//
//   - ErrNilGrid, ErrOptionViolation: returned by New.
//   - ErrInvalidInput, wrapped by ErrInvalidStart / ErrInvalidEnd, together
//     with ErrOutOfBounds or ErrBlocked for the reason.
//   - ErrNoPath: the end cell is unreachable.
//   - ErrExpansionLimit: WithMaxExpansions budget exhausted.
//
// Complexity:
//
//   - Time:  O(N log N) for N = W×H cells; each cell is discovered at most once.
//   - Space: O(N) for the arena, discovered flags and heap.
package astar
