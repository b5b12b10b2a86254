package astar

// frontierItem is a cell waiting in the open set together with its priority
// (cost so far + heuristic at push time).
type frontierItem struct {
	priority uint64
	index    uint32
}

// frontier implements heap.Interface as a min-heap on priority.
// Equal priorities pop the higher cell index first.
type frontier []frontierItem

// Len returns the number of items in the heap.
func (f frontier) Len() int { return len(f) }

// Less orders by priority, then by descending index.
func (f frontier) Less(i, j int) bool {
	if f[i].priority != f[j].priority {
		return f[i].priority < f[j].priority
	}
	return f[i].index > f[j].index
}

// Swap swaps two items in the heap.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push adds an item to the heap (called by heap.Push).
func (f *frontier) Push(x interface{}) {
	*f = append(*f, x.(frontierItem))
}

// Pop removes and returns the last item (called by heap.Pop).
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]
	return item
}
