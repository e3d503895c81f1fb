package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aretw0/pathfinder"
	"github.com/aretw0/pathfinder/internal/presentation/tui"
	"github.com/aretw0/pathfinder/pkg/domain"
)

// errQuit ends the console loop.
var errQuit = errors.New("quit")

const consoleHelp = `commands:
  obstacle <row> <col>   place an obstacle
  clear <row> <col>      remove an obstacle
  clear                  wipe obstacles and search marks, keep start/finish
  start <row> <col>      move the start
  finish <row> <col>     move the finish
  scatter <n>            drop n random obstacles
  run                    search for a path
  reset                  discard the grid and start over
  show                   draw the board
  help                   this text
  quit                   leave
`

// Console is a line-oriented command loop over one session: the text
// stand-in for clicking cells and pressing keys.
type Console struct {
	sess  *pathfinder.Session
	in    io.Reader
	out   io.Writer
	board *tui.Board
	opts  RunOptions
}

// NewConsole creates a console reading commands from in and writing to out.
// opts controls how "run" prints its result.
func NewConsole(sess *pathfinder.Session, in io.Reader, out io.Writer, opts RunOptions) *Console {
	return &Console{
		sess:  sess,
		in:    in,
		out:   out,
		board: tui.NewBoard(out, Profile(out, opts.Plain)),
		opts:  opts,
	}
}

type line struct {
	text string
	err  error
}

// pump reads lines in the background so a blocked read never holds up
// cancellation.
func (c *Console) pump(ctx context.Context) <-chan line {
	ch := make(chan line)
	go func() {
		defer close(ch)
		sc := bufio.NewScanner(c.in)
		for sc.Scan() {
			select {
			case ch <- line{text: sc.Text()}:
			case <-ctx.Done():
				return
			}
		}
		if err := sc.Err(); err != nil {
			select {
			case ch <- line{err: err}:
			case <-ctx.Done():
			}
		}
	}()
	return ch
}

// Serve runs commands until quit, end of input or ctx is done. Command
// errors are printed and the loop continues.
func (c *Console) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	lines := c.pump(ctx)

	fmt.Fprint(c.out, "type 'help' for commands\n> ")
	for {
		select {
		case <-ctx.Done():
			fmt.Fprintln(c.out)
			return nil
		case l, ok := <-lines:
			if !ok {
				fmt.Fprintln(c.out)
				return nil
			}
			if l.err != nil {
				return fmt.Errorf("input error: %w", l.err)
			}
			err := c.Exec(ctx, l.text)
			if errors.Is(err, errQuit) {
				return nil
			}
			if err != nil {
				fmt.Fprintf(c.out, "error: %v\n", err)
			}
			fmt.Fprint(c.out, "> ")
		}
	}
}

// Exec runs one command line.
func (c *Console) Exec(ctx context.Context, text string) error {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]
	g := c.sess.Grid()

	switch cmd {
	case "obstacle", "wall":
		p, err := c.position(args)
		if err != nil {
			return err
		}
		c.report(p, g.SetObstacle(p))
	case "clear":
		if len(args) == 0 {
			g.Reset()
			return c.board.Draw(g)
		}
		p, err := c.position(args)
		if err != nil {
			return err
		}
		c.report(p, g.ClearObstacle(p))
	case "start":
		p, err := c.position(args)
		if err != nil {
			return err
		}
		c.report(p, g.SetStart(p))
	case "finish":
		p, err := c.position(args)
		if err != nil {
			return err
		}
		c.report(p, g.SetFinish(p))
	case "scatter":
		if len(args) != 1 {
			return fmt.Errorf("usage: scatter <n>")
		}
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 {
			return fmt.Errorf("scatter needs a non-negative count, got %q", args[0])
		}
		fmt.Fprintf(c.out, "placed %d obstacles\n", c.sess.Scatter(n))
	case "run":
		_, err := Run(ctx, c.out, c.sess, c.opts)
		return err
	case "reset":
		c.sess.Reset()
		return c.board.Draw(c.sess.Grid())
	case "show":
		return c.board.Draw(g)
	case "help", "?":
		fmt.Fprint(c.out, consoleHelp)
	case "quit", "exit", "q":
		return errQuit
	default:
		return fmt.Errorf("unknown command %q (try help)", cmd)
	}
	return nil
}

func (c *Console) position(args []string) (domain.Position, error) {
	if len(args) != 2 {
		return domain.Position{}, fmt.Errorf("expected <row> <col>, got %d values", len(args))
	}
	row, err := strconv.Atoi(args[0])
	if err != nil {
		return domain.Position{}, fmt.Errorf("bad row %q", args[0])
	}
	col, err := strconv.Atoi(args[1])
	if err != nil {
		return domain.Position{}, fmt.Errorf("bad col %q", args[1])
	}
	p := domain.Pos(row, col)
	if !c.sess.Grid().InBounds(p) {
		return domain.Position{}, fmt.Errorf("%s: %w", p, domain.ErrOutOfBounds)
	}
	return p, nil
}

func (c *Console) report(p domain.Position, changed bool) {
	if changed {
		fmt.Fprintf(c.out, "%s updated\n", p)
		return
	}
	fmt.Fprintf(c.out, "%s unchanged\n", p)
}
