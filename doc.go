// Package gridpath finds least-cost routes across 2D terrain grids.
//
// What is gridpath?
//
//	A small, pure-Go library built around one search engine:
//		• terrain/ — immutable cost-code grids, positions and the step cost model
//		• astar/   — A* search with optional diagonal movement, cancellation,
//		             expansion budgets, hooks and a tagged outcome
//
// Cost codes:
//
//	0 = free, 1 = blocked, 2 = penalized (+3 on top of its code),
//	any other value = literal extra cost.
//
// Quick example:
//
//	g, _ := terrain.New([][]int{
//	    {0, 0, 0},
//	    {0, 1, 0},
//	    {0, 0, 0},
//	})
//	path, err := astar.FindPath(ctx, g, terrain.Pos(0, 0), terrain.Pos(2, 2),
//	    astar.WithDiagonal(true))
//
// Grid loading, rendering and replanning are left to the caller.
// See examples/ for a runnable program.
package gridpath
