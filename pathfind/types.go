package pathfind

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for searches.
var (
	// ErrNoPath is returned when the end cell is unreachable from the start cell.
	ErrNoPath = errors.New("pathfind: no path between start and end")

	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("pathfind: grid is nil")

	// ErrStartOutOfBounds is returned when start lies outside the grid.
	ErrStartOutOfBounds = errors.New("pathfind: start out of bounds")

	// ErrEndOutOfBounds is returned when end lies outside the grid.
	ErrEndOutOfBounds = errors.New("pathfind: end out of bounds")

	// ErrUnknownAlgorithm is returned for an algorithm outside the closed set.
	ErrUnknownAlgorithm = errors.New("pathfind: unknown algorithm")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pathfind: invalid option supplied")

	// ErrExpansionLimit is returned when WithMaxExpansions is exhausted.
	ErrExpansionLimit = errors.New("pathfind: expansion limit reached")
)

// Algorithm selects a search strategy.
type Algorithm int

const (
	// BFSAlgorithm is breadth-first search.
	BFSAlgorithm Algorithm = iota
	// DFSAlgorithm is depth-first search.
	DFSAlgorithm
	// AStarAlgorithm is A* with the Chebyshev heuristic.
	AStarAlgorithm
)

// Algorithms lists every supported algorithm in menu order.
var Algorithms = []Algorithm{BFSAlgorithm, DFSAlgorithm, AStarAlgorithm}

// String returns the canonical name: "bfs", "dfs" or "a_star".
func (a Algorithm) String() string {
	switch a {
	case BFSAlgorithm:
		return "bfs"
	case DFSAlgorithm:
		return "dfs"
	case AStarAlgorithm:
		return "a_star"
	}
	return fmt.Sprintf("algorithm(%d)", int(a))
}

// ParseAlgorithm maps a name to its Algorithm. Matching is case-insensitive;
// "a_star", "astar", "a-star" and "a*" all select AStarAlgorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bfs":
		return BFSAlgorithm, nil
	case "dfs":
		return DFSAlgorithm, nil
	case "a_star", "astar", "a-star", "a*":
		return AStarAlgorithm, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	switch a {
	case BFSAlgorithm, DFSAlgorithm, AStarAlgorithm:
		return []byte(a.String()), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Algorithm) UnmarshalText(text []byte) error {
	parsed, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Option configures a search via functional arguments.
// If an Option is invalid it is recorded and surfaced as ErrOptionViolation
// when the search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxExpansions, if > 0, aborts with ErrExpansionLimit once that many
	// cells have been expanded. 0 disables the limit.
	MaxExpansions int

	// OnEnqueue is called when a cell enters the frontier, with its depth
	// (moves from start) along the trail that discovered it.
	OnEnqueue func(c grid.Coord, depth int)

	// OnVisit is called when a cell is taken off the frontier for expansion.
	// Returning an error aborts the search.
	OnVisit func(c grid.Coord, depth int) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context, no expansion
// limit and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MaxExpansions: 0,
		OnEnqueue:     func(grid.Coord, int) {},
		OnVisit:       func(grid.Coord, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExpansions caps the number of expanded cells.
//
//	n > 0: abort with ErrExpansionLimit after n expansions
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnEnqueue registers a callback to run when a cell is enqueued.
func WithOnEnqueue(fn func(c grid.Coord, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run when a cell is expanded;
// returning an error from it stops the search.
func WithOnVisit(fn func(c grid.Coord, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
