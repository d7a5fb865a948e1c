package pathfind

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// step is one node of a back-pointer trail. Trails share their prefixes, so
// extending a path costs one allocation instead of a full copy.
type step struct {
	at    grid.Coord
	prev  *step
	depth int
}

// path materialises the trail ending at s, start first.
func (s *step) path() grid.Path {
	p := make(grid.Path, s.depth+1)
	for cur := s; cur != nil; cur = cur.prev {
		p[cur.depth] = cur.at
	}
	return p
}

// walker encapsulates state shared by all three searches.
type walker struct {
	grid     *grid.Grid
	end      grid.Coord
	opts     Options
	ctx      context.Context
	expanded int
}

// newWalker applies options and validates preconditions.
func newWalker(g *grid.Grid, start, end grid.Coord, opts []Option) (*walker, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if g == nil {
		return nil, ErrNilGrid
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: %v in %d×%d", ErrStartOutOfBounds, start, g.Rows(), g.Cols())
	}
	if !g.InBounds(end) {
		return nil, fmt.Errorf("%w: %v in %d×%d", ErrEndOutOfBounds, end, g.Rows(), g.Cols())
	}

	return &walker{grid: g, end: end, opts: o, ctx: o.Ctx}, nil
}

// seed returns the single-cell trail at start and reports it to OnEnqueue.
func (w *walker) seed(start grid.Coord) *step {
	s := &step{at: start}
	w.opts.OnEnqueue(start, 0)
	return s
}

// extend returns the trail cur→next and reports it to OnEnqueue.
func (w *walker) extend(cur *step, next grid.Coord) *step {
	s := &step{at: next, prev: cur, depth: cur.depth + 1}
	w.opts.OnEnqueue(next, s.depth)
	return s
}

// admit checks cancellation and the expansion budget before the next pop.
func (w *walker) admit() error {
	select {
	case <-w.ctx.Done():
		return w.ctx.Err()
	default:
	}
	if w.opts.MaxExpansions > 0 && w.expanded >= w.opts.MaxExpansions {
		return fmt.Errorf("%w: %d cells expanded", ErrExpansionLimit, w.expanded)
	}
	return nil
}

// visit counts an expansion and calls OnVisit.
func (w *walker) visit(s *step) error {
	w.expanded++
	if err := w.opts.OnVisit(s.at, s.depth); err != nil {
		return fmt.Errorf("pathfind: OnVisit error at %v: %w", s.at, err)
	}
	return nil
}
