package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/pathfind"
)

// Sentinel errors for session operations.
var (
	// ErrNotReady is returned by Run when the start or the end is unset.
	ErrNotReady = errors.New("session: start and end must both be set")

	// ErrRejected is returned by Click when the painting rules refuse the cell.
	ErrRejected = errors.New("session: cell rejected")

	// ErrUnknownMode is returned by ParseMode.
	ErrUnknownMode = errors.New("session: unknown mode")
)

// Mode selects what a click paints.
type Mode int

const (
	// ModeNone ignores clicks.
	ModeNone Mode = iota
	// ModeStart places the start cell.
	ModeStart
	// ModeEnd places the end cell.
	ModeEnd
	// ModeObstacle paints obstacles.
	ModeObstacle
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "none"
	case ModeStart:
		return "start"
	case ModeEnd:
		return "end"
	case ModeObstacle:
		return "obstacle"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// ParseMode maps a mode name to its Mode, case-insensitively.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "none", "":
		return ModeNone, nil
	case "start":
		return ModeStart, nil
	case "end":
		return ModeEnd, nil
	case "obstacle", "wall":
		return ModeObstacle, nil
	}
	return ModeNone, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

// Report describes one Run.
type Report struct {
	Algorithm pathfind.Algorithm
	// Found is false when the end is unreachable; Path is then nil.
	Found    bool
	Path     grid.Path
	Cost     float64
	Expanded int
	Elapsed  time.Duration
}

// Option configures a Session.
type Option func(*config)

type config struct {
	gridOpts      []grid.Option
	maxExpansions int
}

// WithGridOptions forwards options to grid.New.
func WithGridOptions(opts ...grid.Option) Option {
	return func(c *config) {
		c.gridOpts = append(c.gridOpts, opts...)
	}
}

// WithMaxExpansions caps every Run; 0 disables the cap.
func WithMaxExpansions(n int) Option {
	return func(c *config) {
		c.maxExpansions = n
	}
}
