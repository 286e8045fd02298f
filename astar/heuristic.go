package astar

import (
	"math"

	"github.com/katalvlaran/gridpath/terrain"
)

// estimate returns h for a candidate discovered from the expanding cell.
func (s *search) estimate(from, candidate terrain.Position) float64 {
	if s.opts.Heuristic == HeuristicReference {
		return reference(from, s.end, s.opts.Diagonal)
	}
	return corrected(candidate, s.end, s.opts.Diagonal)
}

// corrected is Manhattan for 4-way movement and octile for 8-way movement,
// both exact on open free terrain.
func corrected(p, end terrain.Position, diagonal bool) float64 {
	dx, dy := absInt(p.X-end.X), absInt(p.Y-end.Y)
	if !diagonal {
		return float64(dx + dy)
	}
	lo, hi := dx, dy
	if lo > hi {
		lo, hi = hi, lo
	}
	return float64(hi) + terrain.DiagonalExtra*float64(lo)
}

// reference is the legacy estimate. The 4-way form may be negative.
func reference(p, end terrain.Position, diagonal bool) float64 {
	dx, dy := float64(p.X-end.X), float64(p.Y-end.Y)
	if diagonal {
		return math.Hypot(dx, dy)
	}
	return math.Abs(dx) - math.Abs(dy)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
