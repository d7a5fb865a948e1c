package pathfind

import "github.com/katalvlaran/gridpath/grid"

// BFS runs breadth-first search on g from start to end.
//
// The frontier is a FIFO queue seeded with start. A dequeued cell equal to end
// terminates the search with its trail; otherwise every traversable,
// unvisited neighbor is marked visited and enqueued. Marking on enqueue means
// the first discovery of a cell fixes its trail, so among several paths of
// equal length the one found via earlier neighbors and earlier queue entries
// is returned.
//
// Returns a path with the fewest moves, ErrNoPath when the queue empties
// first, or a precondition, option, hook or context error.
// Complexity: O(N·d) time, O(N) memory.
func BFS(g *grid.Grid, start, end grid.Coord, opts ...Option) (grid.Path, error) {
	w, err := newWalker(g, start, end, opts)
	if err != nil {
		return nil, err
	}

	visited := make([]bool, g.Size())
	visited[g.Index(start)] = true
	queue := make([]*step, 0, g.Size())
	queue = append(queue, w.seed(start))

	for len(queue) > 0 {
		if err = w.admit(); err != nil {
			return nil, err
		}
		cur := queue[0]
		queue[0] = nil
		queue = queue[1:]

		if err = w.visit(cur); err != nil {
			return nil, err
		}
		if cur.at == end {
			return cur.path(), nil
		}
		for _, n := range g.Neighbors(cur.at) {
			i := g.Index(n)
			if visited[i] || !g.IsTraversable(n) {
				continue
			}
			visited[i] = true
			queue = append(queue, w.extend(cur, n))
		}
	}

	return nil, ErrNoPath
}
