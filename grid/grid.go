package grid

import (
	"fmt"
	"strings"
)

// conn8Offsets lists (dRow, dCol) in the fixed enumeration order
// up, down, left, right, up-left, up-right, down-left, down-right.
// Conn4 uses the first four entries.
var conn8Offsets = [][2]int{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
}

// New constructs a rows×cols Grid with every cell Empty.
// Returns ErrEmptyGrid if rows < 1 or cols < 1.
// Complexity: O(R×C) time and memory.
func New(rows, cols int, opts ...Option) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrEmptyGrid, rows, cols)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	offsets := conn8Offsets
	if o.Conn == Conn4 {
		offsets = conn8Offsets[:4]
	}

	return &Grid{
		rows:    rows,
		cols:    cols,
		cells:   make([]Marker, rows*cols),
		conn:    o.Conn,
		offsets: offsets,
	}, nil
}

// FromRows builds a Grid from one string per row, each rune a marker
// as accepted by ParseMarker.
// Returns ErrEmptyGrid, ErrNonRectangular or ErrUnknownMarker on bad input.
func FromRows(lines []string, opts ...Option) (*Grid, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}
	first := []rune(lines[0])
	g, err := New(len(lines), len(first), opts...)
	if err != nil {
		return nil, err
	}
	for r, line := range lines {
		runes := []rune(line)
		if len(runes) != g.cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(runes), g.cols)
		}
		for c, ch := range runes {
			m, err := ParseMarker(ch)
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", r, c, err)
			}
			g.cells[r*g.cols+c] = m
		}
	}

	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Connectivity returns the neighbor connectivity chosen at construction.
func (g *Grid) Connectivity() Connectivity { return g.conn }

// Size returns rows×cols.
func (g *Grid) Size() int { return len(g.cells) }

// InBounds reports whether c lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Index maps c to its row-major index: Row*Cols + Col.
// The caller must ensure c is in bounds.
func (g *Grid) Index(c Coord) int {
	return c.Row*g.cols + c.Col
}

// Coordinate converts a row-major index back to a Coord.
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{Row: idx / g.cols, Col: idx % g.cols}
}

// At returns the marker at c, or ErrOutOfBounds.
func (g *Grid) At(c Coord) (Marker, error) {
	if !g.InBounds(c) {
		return Empty, fmt.Errorf("%w: %v in %d×%d", ErrOutOfBounds, c, g.rows, g.cols)
	}
	return g.cells[g.Index(c)], nil
}

// Set stores m at c, or returns ErrOutOfBounds.
func (g *Grid) Set(c Coord, m Marker) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v in %d×%d", ErrOutOfBounds, c, g.rows, g.cols)
	}
	g.cells[g.Index(c)] = m
	return nil
}

// IsTraversable reports whether a search may enter c: true for every
// in-bounds cell except Obstacle. Start and End are always traversable.
// Complexity: O(1).
func (g *Grid) IsTraversable(c Coord) bool {
	return g.InBounds(c) && g.cells[g.Index(c)] != Obstacle
}

// Offsets returns the precomputed (dRow, dCol) neighbor offsets in
// enumeration order. The slice must not be modified.
func (g *Grid) Offsets() [][2]int {
	return g.offsets
}

// Neighbors returns the cells adjacent to c under the grid's connectivity,
// clipped to bounds, in the fixed order of Offsets. Obstacles are included;
// callers filter with IsTraversable.
// Complexity: O(d).
func (g *Grid) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, len(g.offsets))
	for _, d := range g.offsets {
		n := Coord{Row: c.Row + d[0], Col: c.Col + d[1]}
		if g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// Find returns the first cell holding m in row-major order.
func (g *Grid) Find(m Marker) (Coord, bool) {
	for i, cell := range g.cells {
		if cell == m {
			return g.Coordinate(i), true
		}
	}
	return Coord{}, false
}

// Count returns the number of cells holding m.
func (g *Grid) Count(m Marker) int {
	n := 0
	for _, cell := range g.cells {
		if cell == m {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	cells := make([]Marker, len(g.cells))
	copy(cells, g.cells)
	return &Grid{
		rows:    g.rows,
		cols:    g.cols,
		cells:   cells,
		conn:    g.conn,
		offsets: g.offsets,
	}
}

// Lines renders each row as a string of marker runes.
func (g *Grid) Lines() []string {
	lines := make([]string, g.rows)
	var sb strings.Builder
	for r := 0; r < g.rows; r++ {
		sb.Reset()
		for _, m := range g.cells[r*g.cols : (r+1)*g.cols] {
			sb.WriteRune(m.Rune())
		}
		lines[r] = sb.String()
	}
	return lines
}

// String renders the grid one row per line.
func (g *Grid) String() string {
	return strings.Join(g.Lines(), "\n")
}
