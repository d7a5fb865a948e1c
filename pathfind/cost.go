package pathfind

import "github.com/katalvlaran/gridpath/grid"

// Diagonal is the cost of one diagonal move. It is a fixed literal rather
// than math.Sqrt2 so path costs compare exactly across implementations.
const Diagonal = 1.414

// MoveCost returns the cost of stepping from a to the adjacent cell b:
// 1 for an orthogonal move, Diagonal otherwise.
func MoveCost(a, b grid.Coord) float64 {
	if abs(a.Row-b.Row)+abs(a.Col-b.Col) == 1 {
		return 1
	}
	return Diagonal
}

// Chebyshev returns max(|Δrow|, |Δcol|), the minimum number of 8-directional
// moves between a and b.
func Chebyshev(a, b grid.Coord) int {
	dr, dc := abs(a.Row-b.Row), abs(a.Col-b.Col)
	if dr > dc {
		return dr
	}
	return dc
}

// PathCost sums MoveCost over consecutive cells of p.
func PathCost(p grid.Path) float64 {
	total := 0.0
	for i := 1; i < len(p); i++ {
		total += MoveCost(p[i-1], p[i])
	}
	return total
}

// IsContiguous reports whether every consecutive pair of p is one
// 8-directional move apart and no cell repeats.
func IsContiguous(p grid.Path) bool {
	seen := make(map[grid.Coord]struct{}, len(p))
	for i, c := range p {
		if _, dup := seen[c]; dup {
			return false
		}
		seen[c] = struct{}{}
		if i > 0 && Chebyshev(p[i-1], c) != 1 {
			return false
		}
	}
	return true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
