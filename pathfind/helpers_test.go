package pathfind_test

import (
	"container/heap"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/pathfind"
)

// mustGrid parses marker rows and locates S and E.
func mustGrid(t testing.TB, rows ...string) (*grid.Grid, grid.Coord, grid.Coord) {
	t.Helper()
	g, err := grid.FromRows(rows)
	require.NoError(t, err)
	s, ok := g.Find(grid.Start)
	require.True(t, ok, "fixture has no S")
	e, ok := g.Find(grid.End)
	require.True(t, ok, "fixture has no E")
	return g, s, e
}

// randomGrid builds an n×n grid with roughly density obstacles and distinct
// start/end cells, deterministic for a given seed.
func randomGrid(t testing.TB, seed int64, n int, density float64) (*grid.Grid, grid.Coord, grid.Coord) {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	g, err := grid.New(n, n)
	require.NoError(t, err)
	for i := 0; i < g.Size(); i++ {
		if r.Float64() < density {
			require.NoError(t, g.Set(g.Coordinate(i), grid.Obstacle))
		}
	}
	start := grid.Coord{Row: r.Intn(n), Col: r.Intn(n)}
	end := grid.Coord{Row: r.Intn(n), Col: r.Intn(n)}
	require.NoError(t, g.Set(start, grid.Start))
	require.NoError(t, g.Set(end, grid.End))
	return g, start, end
}

// requireValidPath checks endpoints, contiguity, traversability and uniqueness.
func requireValidPath(t testing.TB, g *grid.Grid, start, end grid.Coord, p grid.Path) {
	t.Helper()
	require.NotEmpty(t, p)
	require.Equal(t, start, p[0], "path must begin at start")
	require.Equal(t, end, p[len(p)-1], "path must finish at end")
	require.True(t, pathfind.IsContiguous(p), "path must be contiguous without repeats: %v", p)
	for _, c := range p[1:] {
		require.True(t, g.IsTraversable(c), "path crosses obstacle at %v", c)
	}
}

// referenceCost is an independent uniform-cost search (Dijkstra) over the
// same move model, used to check A* optimality. Returns -1 if unreachable.
func referenceCost(g *grid.Grid, start, end grid.Coord) float64 {
	dist := map[grid.Coord]float64{start: 0}
	done := map[grid.Coord]bool{}
	pq := &costHeap{{c: start, d: 0}}
	for pq.Len() > 0 {
		it := heap.Pop(pq).(costItem)
		if done[it.c] {
			continue
		}
		done[it.c] = true
		if it.c == end {
			return it.d
		}
		for _, n := range g.Neighbors(it.c) {
			if !g.IsTraversable(n) {
				continue
			}
			nd := it.d + pathfind.MoveCost(it.c, n)
			if old, ok := dist[n]; !ok || nd < old {
				dist[n] = nd
				heap.Push(pq, costItem{c: n, d: nd})
			}
		}
	}
	return -1
}

type costItem struct {
	c grid.Coord
	d float64
}

type costHeap []costItem

func (h costHeap) Len() int           { return len(h) }
func (h costHeap) Less(i, j int) bool { return h[i].d < h[j].d }
func (h costHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *costHeap) Push(x any)        { *h = append(*h, x.(costItem)) }
func (h *costHeap) Pop() any {
	old := *h
	it := old[len(old)-1]
	*h = old[:len(old)-1]
	return it
}
