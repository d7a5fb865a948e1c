package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates a grid with no rows or no columns was requested.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrUnknownMarker indicates an unrecognised marker rune.
	ErrUnknownMarker = errors.New("grid: unknown marker")
)

// Marker is the state of a single cell.
type Marker uint8

const (
	// Empty is an open cell.
	Empty Marker = iota
	// Obstacle blocks movement.
	Obstacle
	// Start marks the search origin.
	Start
	// End marks the search destination.
	End
	// OnPath marks a cell on the most recently rendered route.
	OnPath
)

// markerRunes holds the display rune for each marker, indexed by Marker.
var markerRunes = [...]rune{
	Empty:    '.',
	Obstacle: 'X',
	Start:    'S',
	End:      'E',
	OnPath:   '-',
}

var markerNames = [...]string{
	Empty:    "empty",
	Obstacle: "obstacle",
	Start:    "start",
	End:      "end",
	OnPath:   "path",
}

// Rune returns the display rune of m.
func (m Marker) Rune() rune {
	if int(m) < len(markerRunes) {
		return markerRunes[m]
	}
	return '?'
}

// String implements fmt.Stringer.
func (m Marker) String() string {
	if int(m) < len(markerNames) {
		return markerNames[m]
	}
	return fmt.Sprintf("marker(%d)", uint8(m))
}

// ParseMarker maps a display rune back to its Marker.
// Both '.' and ' ' are accepted for Empty.
func ParseMarker(r rune) (Marker, error) {
	switch r {
	case '.', ' ':
		return Empty, nil
	case 'X', 'x', '#':
		return Obstacle, nil
	case 'S', 's':
		return Start, nil
	case 'E', 'e':
		return End, nil
	case '-':
		return OnPath, nil
	}
	return Empty, fmt.Errorf("%w: %q", ErrUnknownMarker, r)
}

// Coord addresses a cell by 0-indexed row and column.
type Coord struct {
	Row, Col int
}

// String renders c as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn8 uses 8-directional connectivity. It is the default.
	Conn8 Connectivity = iota
	// Conn4 uses 4-directional connectivity: up, down, left, right.
	Conn4
)

// Options contains tunable parameters for a Grid.
type Options struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// Option configures a Grid at construction.
type Option func(*Options)

// DefaultOptions returns Options with Conn=Conn8.
func DefaultOptions() Options {
	return Options{Conn: Conn8}
}

// WithConnectivity selects the neighbor connectivity.
func WithConnectivity(conn Connectivity) Option {
	return func(o *Options) {
		o.Conn = conn
	}
}

// Grid is a rows×cols matrix of markers. Dimensions are fixed at construction.
// cells is stored row-major; offsets is precomputed from the connectivity.
type Grid struct {
	rows, cols int
	cells      []Marker
	conn       Connectivity
	offsets    [][2]int
}
