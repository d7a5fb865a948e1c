package pathfind

import (
	"container/heap"

	"github.com/katalvlaran/gridpath/grid"
)

// AStar runs A* search on g from start to end.
//
// Moving to an orthogonal neighbor costs 1 and to a diagonal neighbor costs
// Diagonal. The heuristic is Chebyshev(cell, end). The frontier is ordered by
// priority = cost-so-far + heuristic; equal priorities pop in (row, col)
// order. A neighbor is relaxed when it has no recorded cost or the new cost
// improves it; the relaxed neighbor is pushed with its new priority and the
// older entry stays in the frontier. Stale entries are expanded again when
// popped, using the current best cost of their cell.
//
// Returns a cheapest path, ErrNoPath when the frontier empties first,
// or a precondition, option, hook or context error.
// Complexity: O(N·d·log N) time, O(N·d) memory.
func AStar(g *grid.Grid, start, end grid.Coord, opts ...Option) (grid.Path, error) {
	w, err := newWalker(g, start, end, opts)
	if err != nil {
		return nil, err
	}

	costSoFar := make([]float64, g.Size())
	known := make([]bool, g.Size())
	known[g.Index(start)] = true

	pq := make(frontier, 0, g.Size())
	heap.Push(&pq, &entry{
		priority: float64(Chebyshev(start, end)),
		trail:    w.seed(start),
	})

	for pq.Len() > 0 {
		if err = w.admit(); err != nil {
			return nil, err
		}
		cur := heap.Pop(&pq).(*entry).trail

		if err = w.visit(cur); err != nil {
			return nil, err
		}
		if cur.at == end {
			return cur.path(), nil
		}
		base := costSoFar[g.Index(cur.at)]
		for _, n := range g.Neighbors(cur.at) {
			if !g.IsTraversable(n) {
				continue
			}
			i := g.Index(n)
			newCost := base + MoveCost(cur.at, n)
			if known[i] && newCost >= costSoFar[i] {
				continue
			}
			known[i] = true
			costSoFar[i] = newCost
			heap.Push(&pq, &entry{
				priority: newCost + float64(Chebyshev(n, end)),
				trail:    w.extend(cur, n),
			})
		}
	}

	return nil, ErrNoPath
}

// entry is a frontier element: a trail and its priority.
type entry struct {
	priority float64
	trail    *step
}

// frontier is a min-heap of *entry implementing heap.Interface.
type frontier []*entry

// Len returns the number of elements in the heap.
func (pq frontier) Len() int { return len(pq) }

// Less orders by priority, then by row and column of the queued cell.
func (pq frontier) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.priority != b.priority {
		return a.priority < b.priority
	}
	if a.trail.at.Row != b.trail.at.Row {
		return a.trail.at.Row < b.trail.at.Row
	}
	return a.trail.at.Col < b.trail.at.Col
}

// Swap swaps two elements in the heap.
func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *frontier) Push(x any) { *pq = append(*pq, x.(*entry)) }

// Pop removes and returns the last element; heap.Pop moves the minimum there first.
func (pq *frontier) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
