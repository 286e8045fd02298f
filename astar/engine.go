package astar

import (
	"container/heap"
	"context"
	"fmt"

	"github.com/katalvlaran/gridpath/terrain"
)

// Engine searches one immutable grid from a fixed start cell.
// It holds no per-search state and is safe for concurrent FindPath calls.
type Engine struct {
	grid     *terrain.Grid
	start    terrain.Position
	opts     Options
	startErr error // non-nil if start is out of bounds or blocked
}

// New builds an Engine for grid g starting at start.
//
// An invalid start (out of bounds or Blocked) does not fail construction:
// a warning is logged and every FindPath call returns ErrInvalidStart.
// New itself fails only with ErrNilGrid or ErrOptionViolation.
func New(g *terrain.Grid, start terrain.Position, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	e := &Engine{grid: g, start: start, opts: o}
	if reason := checkCell(g, start); reason != nil {
		e.startErr = fmt.Errorf("%w %v: %w", ErrInvalidStart, start, reason)
		o.Logger.Warn("astar: source is invalid", "start", start.String(), "reason", reason.Error())
	}

	return e, nil
}

// Start returns the engine's start cell.
func (e *Engine) Start() terrain.Position { return e.start }

// Valid returns nil if the start cell is usable, ErrInvalidStart otherwise.
func (e *Engine) Valid() error { return e.startErr }

// FindPath searches for a path from the engine's start to end.
//
// Returns:
//
//   - the path start..end inclusive and nil on success;
//   - ErrInvalidStart or ErrInvalidEnd (both ErrInvalidInput) for unusable cells;
//   - ErrNoPath if the frontier empties first;
//   - ctx.Err() if ctx is done, checked once per expansion;
//   - ErrExpansionLimit if the MaxExpansions budget runs out.
func (e *Engine) FindPath(ctx context.Context, end terrain.Position) (Path, error) {
	if e.startErr != nil {
		return nil, e.startErr
	}
	if reason := checkCell(e.grid, end); reason != nil {
		e.opts.Logger.Warn("astar: destination is invalid", "end", end.String(), "reason", reason.Error())
		return nil, fmt.Errorf("%w %v: %w", ErrInvalidEnd, end, reason)
	}

	s := newSearch(e.grid, &e.opts, e.start, end)
	path, err := s.run(ctx)
	if err != nil {
		e.opts.Logger.Debug("astar: search stopped",
			"start", e.start.String(), "end", end.String(),
			"expanded", s.expanded, "reason", err.Error())
		return nil, err
	}
	e.opts.Logger.Debug("astar: path found",
		"start", e.start.String(), "end", end.String(),
		"expanded", s.expanded, "steps", path.Steps(), "cost", path.Cost())

	return path, nil
}

// FindPath is a one-shot helper equivalent to New followed by Engine.FindPath.
func FindPath(ctx context.Context, g *terrain.Grid, start, end terrain.Position, opts ...Option) (Path, error) {
	e, err := New(g, start, opts...)
	if err != nil {
		return nil, err
	}
	return e.FindPath(ctx, end)
}

// checkCell returns ErrOutOfBounds or ErrBlocked for an unusable cell.
func checkCell(g *terrain.Grid, p terrain.Position) error {
	code, ok := g.At(p)
	if !ok {
		return ErrOutOfBounds
	}
	if code == terrain.Blocked {
		return ErrBlocked
	}
	return nil
}

// node is an arena record. parent is an arena index, -1 for the start.
type node struct {
	pos    terrain.Position
	parent int
	g, h   float64
}

// search holds the mutable state of a single FindPath call.
type search struct {
	grid     *terrain.Grid
	opts     *Options
	end      terrain.Position
	nodes    []node   // arena, in discovery order
	seen     []bool   // per cell: discovered (open or closed)
	open     frontier // min-heap over arena indices
	expanded int
}

func newSearch(g *terrain.Grid, opts *Options, start, end terrain.Position) *search {
	s := &search{
		grid:  g,
		opts:  opts,
		end:   end,
		nodes: make([]node, 0, 64),
		seen:  make([]bool, g.Len()),
		open:  make(frontier, 0, 64),
	}
	s.nodes = append(s.nodes, node{pos: start, parent: -1})
	s.seen[g.Index(start)] = true

	return s
}

// run is the main loop. The start node (arena index 0) is closed first;
// afterwards the minimum (f, discovery) entry is popped until it is the end.
func (s *search) run(ctx context.Context) (Path, error) {
	// 1) Close the start node; it is its own path when start == end.
	cur := 0
	s.close(cur)
	for s.nodes[cur].pos != s.end {
		// 2) Push every new walkable neighbor of the current node.
		s.expand(cur)

		// 3) Stop on cancellation, an exhausted frontier or a spent budget.
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if s.open.Len() == 0 {
			return nil, ErrNoPath
		}
		if s.opts.MaxExpansions > 0 && s.expanded >= s.opts.MaxExpansions {
			return nil, fmt.Errorf("%w: %d nodes", ErrExpansionLimit, s.expanded)
		}

		// 4) Pop the lowest f; ties go to the earliest discovered node.
		cur = heap.Pop(&s.open).(entry).id
		s.close(cur)
	}

	// 5) cur is the end node; walk its parents back to the start.
	return s.reconstruct(cur), nil
}

// close counts an expansion and reports it to the hook.
func (s *search) close(id int) {
	s.expanded++
	s.opts.OnExpand(s.nodes[id].export())
}

// expand discovers every walkable, undiscovered neighbor of the node at id
// and pushes it onto the frontier with id as parent.
func (s *search) expand(id int) {
	cur := s.nodes[id]
	for _, off := range terrain.Offsets(s.opts.Diagonal) {
		// 1) Skip cells outside the grid or blocked.
		p := cur.pos.Add(off)
		code, ok := s.grid.At(p)
		if !ok || code == terrain.Blocked {
			continue
		}

		// 2) Skip cells already open or closed. A cheaper route found later
		//    does not re-parent them.
		idx := s.grid.Index(p)
		if s.seen[idx] {
			continue
		}
		s.seen[idx] = true

		// 3) Price the step and estimate the remainder.
		n := node{
			pos:    p,
			parent: id,
			g:      cur.g + terrain.StepCost(code, off.Diagonal()),
			h:      s.estimate(cur.pos, p),
		}

		// 4) Append to the arena; the arena index is the discovery order.
		child := len(s.nodes)
		s.nodes = append(s.nodes, n)
		heap.Push(&s.open, entry{id: child, f: n.g + n.h})
	}
}

// reconstruct walks parent links from id back to the start and returns
// the nodes in start→end order.
func (s *search) reconstruct(id int) Path {
	n := 0
	for i := id; i >= 0; i = s.nodes[i].parent {
		n++
	}
	path := make(Path, n)
	for i := id; i >= 0; i = s.nodes[i].parent {
		n--
		path[n] = s.nodes[i].export()
	}
	return path
}

func (n node) export() Node {
	return Node{Pos: n.pos, G: n.g, H: n.h}
}
