package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/ctxlog"
	"github.com/katalvlaran/gridpath/pathfind"
	"github.com/katalvlaran/gridpath/session"
)

const helpText = `Commands:
  mode start|end|obstacle|none   select what click paints
  click R C                      apply the current mode to cell (R,C)
  start R C                      place the start cell
  end R C                        place the end cell
  obstacle R C                   paint an obstacle
  run [bfs|dfs|a_star]           search and draw the route
  reset                          erase the drawn route
  show                           print the grid
  help                           show this help
  exit | quit                    leave`

// Options configures a Console.
type Options struct {
	MaxRows     int                // dimension cap for the prompt, 0 for none
	MaxCols     int                // dimension cap for the prompt, 0 for none
	Algorithm   pathfind.Algorithm // used by a bare "run"
	SessionOpts []session.Option   // forwarded to session.New
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns A* with no dimension caps.
func DefaultOptions() Options {
	return Options{Algorithm: pathfind.AStarAlgorithm}
}

// WithLimits caps the grid dimensions accepted at the prompt.
func WithLimits(maxRows, maxCols int) Option {
	return func(o *Options) {
		o.MaxRows, o.MaxCols = maxRows, maxCols
	}
}

// WithAlgorithm sets the algorithm used by a bare "run".
func WithAlgorithm(alg pathfind.Algorithm) Option {
	return func(o *Options) {
		o.Algorithm = alg
	}
}

// WithSessionOptions forwards options to session.New.
func WithSessionOptions(opts ...session.Option) Option {
	return func(o *Options) {
		o.SessionOpts = append(o.SessionOpts, opts...)
	}
}

// Console reads commands from in and writes responses to out.
type Console struct {
	in   *bufio.Reader
	out  io.Writer
	opts Options
	sess *session.Session
}

// New builds a Console. The session is created by Run once the dimensions
// are known.
func New(in io.Reader, out io.Writer, opts ...Option) *Console {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Console{in: lineReader(in), out: out, opts: o}
}

// Session returns the session being edited, or nil before Run has read the
// dimensions.
func (c *Console) Session() *session.Session {
	return c.sess
}

// Run prompts for the dimensions and then executes commands until exit or
// end of input. It returns ErrInputClosed only if the input ends before the
// dimensions are read.
func (c *Console) Run(ctx context.Context) error {
	rows, cols, err := ReadDimensions(c.in, c.out, c.opts.MaxRows, c.opts.MaxCols)
	if err != nil {
		return err
	}
	c.sess, err = session.New(rows, cols, c.opts.SessionOpts...)
	if err != nil {
		return err
	}
	ctxlog.FromContext(ctx).Debug("console session created", "rows", rows, "cols", cols)

	c.show()
	fmt.Fprintln(c.out, `Type "help" for a list of commands.`)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(c.out, "> ")
		line, err := readLine(c.in)
		if errors.Is(err, ErrInputClosed) {
			fmt.Fprintln(c.out)
			return nil
		}
		if err != nil {
			return err
		}
		if c.exec(ctx, line) {
			return nil
		}
	}
}

// exec runs one command line and reports whether the loop should stop.
func (c *Console) exec(ctx context.Context, line string) bool {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return false
	}
	cmd, args := fields[0], fields[1:]
	ctxlog.FromContext(ctx).Debug("console command", "command", cmd, "args", args)

	switch cmd {
	case "exit", "quit":
		return true
	case "help":
		fmt.Fprintln(c.out, helpText)
	case "show":
		c.show()
	case "mode":
		if len(args) != 1 {
			fmt.Fprintln(c.out, "Usage: mode start|end|obstacle|none")
			return false
		}
		m, err := session.ParseMode(args[0])
		if err != nil {
			fmt.Fprintf(c.out, "Unknown mode %q.\n", args[0])
			return false
		}
		c.sess.SetMode(m)
		fmt.Fprintf(c.out, "Mode: %v\n", m)
	case "click":
		c.click(cmd, args)
	case "start", "end", "obstacle":
		m, _ := session.ParseMode(cmd)
		c.sess.SetMode(m)
		c.click(cmd, args)
	case "run":
		c.run(ctx, args)
	case "reset":
		n := c.sess.ResetPath()
		fmt.Fprintf(c.out, "Cleared %d path cells.\n", n)
		c.show()
	default:
		fmt.Fprintf(c.out, "Unknown command %q. Type \"help\" for a list of commands.\n", cmd)
	}
	return false
}

func (c *Console) click(cmd string, args []string) {
	at, ok := parseCoord(args)
	if !ok {
		fmt.Fprintf(c.out, "Usage: %s ROW COL\n", cmd)
		return
	}
	switch err := c.sess.Click(at); {
	case errors.Is(err, grid.ErrOutOfBounds):
		fmt.Fprintf(c.out, "Cell %v is outside the grid.\n", at)
	case errors.Is(err, session.ErrRejected):
		fmt.Fprintf(c.out, "Cannot paint %v at %v.\n", c.sess.Mode(), at)
	case err != nil:
		fmt.Fprintf(c.out, "Error: %v\n", err)
	default:
		c.show()
	}
}

func (c *Console) run(ctx context.Context, args []string) {
	alg := c.opts.Algorithm
	if len(args) > 0 {
		var err error
		if alg, err = pathfind.ParseAlgorithm(args[0]); err != nil {
			fmt.Fprintf(c.out, "Unknown algorithm %q. Choose bfs, dfs or a_star.\n", args[0])
			return
		}
	}

	rep, err := c.sess.Run(ctx, alg)
	switch {
	case errors.Is(err, session.ErrNotReady):
		fmt.Fprintln(c.out, "Set both a start and an end cell before running a search.")
	case err != nil:
		fmt.Fprintf(c.out, "Search stopped: %v\n", err)
	case !rep.Found:
		fmt.Fprintln(c.out, "No path found using selected algorithm.")
	default:
		c.show()
		fmt.Fprintf(c.out, "%v: %d steps, cost %.3f, %d cells expanded in %v\n",
			rep.Algorithm, rep.Path.Hops(), rep.Cost, rep.Expanded, rep.Elapsed)
	}
}

func (c *Console) show() {
	fmt.Fprintln(c.out, c.sess.Grid().String())
}

func parseCoord(args []string) (grid.Coord, bool) {
	if len(args) != 2 {
		return grid.Coord{}, false
	}
	r, err1 := strconv.Atoi(args[0])
	col, err2 := strconv.Atoi(args[1])
	if err1 != nil || err2 != nil {
		return grid.Coord{}, false
	}
	return grid.Coord{Row: r, Col: col}, true
}
