package astar

import (
	"container/heap"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/terrain"
)

// TestFrontier_TieBreak pops equal f values in discovery order,
// matching a stable sort of the open list.
func TestFrontier_TieBreak(t *testing.T) {
	q := make(frontier, 0)
	heap.Init(&q)
	in := []entry{
		{id: 0, f: 4}, {id: 1, f: 3}, {id: 2, f: 4}, {id: 3, f: 3},
		{id: 4, f: 2.5}, {id: 5, f: 4}, {id: 6, f: 3},
	}
	for _, e := range in {
		heap.Push(&q, e)
	}

	var got []int
	for q.Len() > 0 {
		got = append(got, heap.Pop(&q).(entry).id)
	}
	assert.Equal(t, []int{4, 1, 3, 6, 0, 2, 5}, got)
}

// TestFrontier_WideIDs keeps discovery order for arena indices past the
// int32 range.
func TestFrontier_WideIDs(t *testing.T) {
	if strconv.IntSize < 64 {
		t.Skip("int is 32 bits on this platform")
	}
	base := math.MaxInt32
	q := make(frontier, 0)
	for _, e := range []entry{
		{id: base + 3, f: 1}, {id: base - 1, f: 1}, {id: base + 1, f: 1}, {id: 2, f: 0.5},
	} {
		heap.Push(&q, e)
	}

	var got []int
	for q.Len() > 0 {
		got = append(got, heap.Pop(&q).(entry).id)
	}
	assert.Equal(t, []int{2, base - 1, base + 1, base + 3}, got)
}

func TestHeuristics(t *testing.T) {
	end := terrain.Pos(4, 1)
	p := terrain.Pos(0, 0)

	assert.InDelta(t, 5.0, corrected(p, end, false), 1e-9)
	assert.InDelta(t, 4.4, corrected(p, end, true), 1e-9)
	assert.Zero(t, corrected(end, end, true))

	assert.InDelta(t, math.Sqrt(17), reference(p, end, true), 1e-9)
	assert.InDelta(t, 3.0, reference(p, end, false), 1e-9)
	assert.InDelta(t, -3.0, reference(terrain.Pos(4, 4), end, false), 1e-9)
}

// TestEstimate_Anchor checks which cell each mode measures from.
func TestEstimate_Anchor(t *testing.T) {
	s := &search{opts: &Options{Heuristic: HeuristicCorrected}, end: terrain.Pos(3, 0)}
	from, cand := terrain.Pos(0, 0), terrain.Pos(1, 0)
	assert.InDelta(t, 2.0, s.estimate(from, cand), 1e-9)

	s.opts.Heuristic = HeuristicReference
	assert.InDelta(t, 3.0, s.estimate(from, cand), 1e-9)
}

// TestReconstruct follows parent indices back to the arena root.
func TestReconstruct(t *testing.T) {
	g, err := terrain.New([][]int{{0, 0, 0}})
	require.NoError(t, err)
	s := newSearch(g, &Options{}, terrain.Pos(0, 0), terrain.Pos(2, 0))
	s.nodes = append(s.nodes,
		node{pos: terrain.Pos(1, 0), parent: 0, g: 1},
		node{pos: terrain.Pos(2, 0), parent: 1, g: 2},
	)

	path := s.reconstruct(2)
	require.Len(t, path, 3)
	assert.Equal(t, []terrain.Position{terrain.Pos(0, 0), terrain.Pos(1, 0), terrain.Pos(2, 0)}, path.Positions())
	assert.InDelta(t, 2.0, path.Cost(), 1e-9)

	assert.Len(t, s.reconstruct(0), 1)
}
