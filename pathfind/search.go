package pathfind

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Search runs the selected algorithm on g from start to end.
// It returns ErrUnknownAlgorithm for values outside the closed set and
// otherwise whatever BFS, DFS or AStar returns.
func Search(alg Algorithm, g *grid.Grid, start, end grid.Coord, opts ...Option) (grid.Path, error) {
	switch alg {
	case BFSAlgorithm:
		return BFS(g, start, end, opts...)
	case DFSAlgorithm:
		return DFS(g, start, end, opts...)
	case AStarAlgorithm:
		return AStar(g, start, end, opts...)
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(alg))
}
