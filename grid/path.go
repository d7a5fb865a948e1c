package grid

import "strings"

// Path is an ordered sequence of cells from start (inclusive) to end (inclusive).
type Path []Coord

// Hops returns the number of moves along p.
func (p Path) Hops() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Contains reports whether c lies on p.
func (p Path) Contains(c Coord) bool {
	for _, x := range p {
		if x == c {
			return true
		}
	}
	return false
}

// Equal reports whether p and q visit the same cells in the same order.
func (p Path) Equal(q Path) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// String renders p as "(r,c) -> (r,c) -> ...".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = c.String()
	}
	return strings.Join(parts, " -> ")
}

// Overlay marks every cell of p as OnPath, leaving Start and End cells
// untouched. Out-of-bounds entries are skipped.
func (g *Grid) Overlay(p Path) {
	for _, c := range p {
		if !g.InBounds(c) {
			continue
		}
		i := g.Index(c)
		if g.cells[i] == Start || g.cells[i] == End {
			continue
		}
		g.cells[i] = OnPath
	}
}

// ClearPath resets every OnPath cell to Empty and returns how many were cleared.
func (g *Grid) ClearPath() int {
	n := 0
	for i, m := range g.cells {
		if m == OnPath {
			g.cells[i] = Empty
			n++
		}
	}
	return n
}
