// Package pathfind finds routes between two cells of a grid.Grid using
// breadth-first search, depth-first search or A*.
//
// What
//
//   - BFS returns a shortest path by move count (orthogonal and diagonal moves weigh 1 hop).
//   - DFS returns a valid path, not necessarily the shortest.
//   - AStar returns a cheapest path where orthogonal moves cost 1 and diagonal
//     moves cost Diagonal (1.414), guided by the Chebyshev-distance heuristic.
//   - Search dispatches to one of the three by Algorithm.
//
// Every search is a pure function of the grid, the start and the end: the grid
// is only read, no state survives the call, and a second call on an unchanged
// grid returns the identical path.
//
// Results
//
//	A found route is a grid.Path from start to end, both inclusive, with no
//	repeated cell. start == end yields the single-cell path [start].
//	An unreachable end yields ErrNoPath, never an empty path.
//
// Determinism
//
//	Neighbors are expanded in grid.Grid.Neighbors order. BFS breaks ties by
//	FIFO order, DFS by LIFO order, and A* orders equal priorities by
//	(row, col) of the queued cell.
//
// Paths are carried as back-pointer trails: each frontier entry points at the
// entry it was discovered from, and the slice is materialised once at the
// goal. The result is the same sequence that copying the path into every
// frontier entry would produce.
//
// A* does not skip stale frontier entries; a superseded entry is expanded
// again when popped, which never changes the result.
//
// Complexity (N = rows×cols, d = neighbors per cell)
//
//   - BFS, DFS: Time O(N·d), Memory O(N)
//   - AStar:    Time O(N·d·log N), Memory O(N·d) (lazy decrease-key)
//
// Options
//
//   - WithContext(ctx):        cancel a long search; checked once per expansion.
//   - WithMaxExpansions(n):    give up with ErrExpansionLimit after n expansions.
//   - WithOnEnqueue(fn):       hook when a cell enters the frontier.
//   - WithOnVisit(fn):         hook when a cell is expanded; an error aborts.
//
// Errors
//
//   - ErrNoPath                the end cannot be reached.
//   - ErrNilGrid               the grid pointer is nil.
//   - ErrStartOutOfBounds      start lies outside the grid.
//   - ErrEndOutOfBounds        end lies outside the grid.
//   - ErrUnknownAlgorithm      Search or ParseAlgorithm got an unknown algorithm.
//   - ErrOptionViolation       an Option was given an invalid value.
//   - ErrExpansionLimit        WithMaxExpansions was exhausted.
//   - Wrapped OnVisit errors and ctx.Err().
package pathfind
