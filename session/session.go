package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/ctxlog"
	"github.com/katalvlaran/gridpath/pathfind"
)

// Session owns a grid and the user's start/end/mode state.
type Session struct {
	mu    sync.Mutex
	grid  *grid.Grid
	start *grid.Coord
	end   *grid.Coord
	mode  Mode
	cfg   config
}

// New creates a session over an all-empty rows×cols grid.
func New(rows, cols int, opts ...Option) (*Session, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.maxExpansions < 0 {
		return nil, fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", pathfind.ErrOptionViolation, cfg.maxExpansions)
	}
	g, err := grid.New(rows, cols, cfg.gridOpts...)
	if err != nil {
		return nil, err
	}
	return &Session{grid: g, cfg: cfg}, nil
}

// Grid returns a snapshot of the current grid.
func (s *Session) Grid() *grid.Grid {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.Clone()
}

// Start returns the start cell, if set.
func (s *Session) Start() (grid.Coord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.start == nil {
		return grid.Coord{}, false
	}
	return *s.start, true
}

// End returns the end cell, if set.
func (s *Session) End() (grid.Coord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.end == nil {
		return grid.Coord{}, false
	}
	return *s.end, true
}

// Mode returns the current paint mode.
func (s *Session) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// SetMode selects what subsequent clicks paint.
func (s *Session) SetMode(m Mode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = m
}

// Click applies the current mode to cell c.
// Returns grid.ErrOutOfBounds for cells outside the grid and ErrRejected when
// the painting rules refuse the cell. With ModeNone the click is a no-op.
func (s *Session) Click(c grid.Coord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, err := s.grid.At(c)
	if err != nil {
		return err
	}
	switch s.mode {
	case ModeStart:
		if cur == grid.Obstacle || cur == grid.End {
			return fmt.Errorf("%w: start cannot be placed on %v at %v", ErrRejected, cur, c)
		}
		s.start = s.move(s.start, c, grid.Start)
	case ModeEnd:
		if cur == grid.Obstacle || cur == grid.Start {
			return fmt.Errorf("%w: end cannot be placed on %v at %v", ErrRejected, cur, c)
		}
		s.end = s.move(s.end, c, grid.End)
	case ModeObstacle:
		if cur == grid.Start || cur == grid.End {
			return fmt.Errorf("%w: obstacle cannot be placed on %v at %v", ErrRejected, cur, c)
		}
		_ = s.grid.Set(c, grid.Obstacle)
	}
	return nil
}

// move clears prev (if any), paints m at c and returns the new position.
func (s *Session) move(prev *grid.Coord, c grid.Coord, m grid.Marker) *grid.Coord {
	if prev != nil {
		_ = s.grid.Set(*prev, grid.Empty)
	}
	_ = s.grid.Set(c, m)
	return &c
}

// ResetPath erases the rendered route and returns how many cells were cleared.
func (s *Session) ResetPath() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.ClearPath()
}

// Run searches from start to end with alg and overlays a found route.
// Returns ErrNotReady if start or end is unset; an unreachable end yields
// Report.Found == false and a nil error. Engine errors other than
// pathfind.ErrNoPath (cancellation, expansion limit) are returned as is.
func (s *Session) Run(ctx context.Context, alg pathfind.Algorithm) (Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rep := Report{Algorithm: alg}
	if s.start == nil || s.end == nil {
		return rep, ErrNotReady
	}
	s.grid.ClearPath()

	began := time.Now()
	path, err := pathfind.Search(alg, s.grid, *s.start, *s.end,
		pathfind.WithContext(ctx),
		pathfind.WithMaxExpansions(s.cfg.maxExpansions),
		pathfind.WithOnVisit(func(grid.Coord, int) error {
			rep.Expanded++
			return nil
		}),
	)
	rep.Elapsed = time.Since(began)

	logger := ctxlog.FromContext(ctx).With("algorithm", alg.String(), "expanded", rep.Expanded, "elapsed", rep.Elapsed)
	switch {
	case errors.Is(err, pathfind.ErrNoPath):
		logger.Info("no path found")
		return rep, nil
	case err != nil:
		logger.Warn("search failed", "error", err)
		return rep, err
	}

	rep.Found = true
	rep.Path = path
	rep.Cost = pathfind.PathCost(path)
	s.grid.Overlay(path)
	logger.Info("path found", "hops", path.Hops(), "cost", rep.Cost)
	return rep, nil
}
