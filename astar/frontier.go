package astar

// entry is a frontier slot: an arena index and its cached f = g + h.
// Arena indices grow in discovery order, so id doubles as the tie-breaker.
type entry struct {
	id int
	f  float64
}

// frontier is a min-heap of entry ordered by (f, id) ascending.
// Every cell enters at most once, so there are no stale entries to skip.
type frontier []entry

// Len returns the number of items in the heap.
func (q frontier) Len() int { return len(q) }

// Less orders by f, then by discovery order.
func (q frontier) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].id < q[j].id
}

// Swap swaps two elements in the heap.
func (q frontier) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

// Push is called by heap.Push; x must be an entry.
func (q *frontier) Push(x interface{}) { *q = append(*q, x.(entry)) }

// Pop is called by heap.Pop and returns the last element as an entry.
func (q *frontier) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]

	return item
}
