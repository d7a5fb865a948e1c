package pathfind

import "github.com/katalvlaran/gridpath/grid"

// DFS runs depth-first search on g from start to end.
//
// It expands exactly like BFS (visited-on-enqueue, same neighbor order) but
// pops from a LIFO stack, so the most recently discovered cell is expanded
// first. The result is a valid path, not necessarily the shortest one.
//
// Returns the first path reaching end, ErrNoPath when the stack empties,
// or a precondition, option, hook or context error.
// Complexity: O(N·d) time, O(N) memory.
func DFS(g *grid.Grid, start, end grid.Coord, opts ...Option) (grid.Path, error) {
	w, err := newWalker(g, start, end, opts)
	if err != nil {
		return nil, err
	}

	visited := make([]bool, g.Size())
	visited[g.Index(start)] = true
	stack := []*step{w.seed(start)}

	for len(stack) > 0 {
		if err = w.admit(); err != nil {
			return nil, err
		}
		top := len(stack) - 1
		cur := stack[top]
		stack[top] = nil
		stack = stack[:top]

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
			stack = append(stack, w.extend(cur, n))
		}
	}

	return nil, ErrNoPath
}
