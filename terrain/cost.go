package terrain

var (
	orthogonal = []Offset{{-1, 0}, {0, -1}, {0, 1}, {1, 0}}
	allEight   = []Offset{
		{-1, -1}, {-1, 0}, {-1, 1},
		{0, -1}, {0, 1},
		{1, -1}, {1, 0}, {1, 1},
	}
)

// Offsets returns the neighbor offsets in expansion order: dx from -1 to 1
// in the outer loop, dy from -1 to 1 in the inner loop, (0,0) excluded.
// With diagonal false only the four orthogonal offsets remain.
// The returned slice is shared and must not be modified.
func Offsets(diagonal bool) []Offset {
	if diagonal {
		return allEight
	}
	return orthogonal
}

// StepCost returns the cost of moving into a cell holding code.
// Callers must not price Blocked cells; the result for them is meaningless.
//
//	BaseStep + code (+ PenaltyExtra if Penalized) (+ DiagonalExtra if diagonal)
func StepCost(code int, diagonal bool) float64 {
	c := BaseStep + float64(code)
	if code == Penalized {
		c += PenaltyExtra
	}
	if diagonal {
		c += DiagonalExtra
	}
	return c
}
