package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aretw0/pathfinder"
	"github.com/aretw0/pathfinder/internal/presentation/graph"
	"github.com/aretw0/pathfinder/internal/presentation/tui"
	"github.com/aretw0/pathfinder/pkg/domain"
	"github.com/muesli/termenv"
)

// Output formats accepted by Run.
const (
	FormatBoard   = "board"
	FormatMermaid = "mermaid"
	FormatJSON    = "json"
)

// RunOptions contains all the configuration for a single search.
type RunOptions struct {
	Format  string
	Animate bool          // redraw the board after every step (board format only)
	Delay   time.Duration // pause between animated frames
	Plain   bool          // no colors, no cursor movement
	Visited bool          // mermaid: include expanded cells
}

// Validate rejects unknown formats.
func (o RunOptions) Validate() error {
	switch o.Format {
	case "", FormatBoard, FormatMermaid, FormatJSON:
		return nil
	}
	return fmt.Errorf("unknown format %q (want %s, %s or %s)", o.Format, FormatBoard, FormatMermaid, FormatJSON)
}

// JSONReport is what the json format prints.
type JSONReport struct {
	domain.Result
	Board []string `json:"board"`
}

// Run executes one search on sess and writes the outcome to out in the
// requested format. A cancelled ctx ends the search with OutcomeCancelled and
// the partial board is still printed.
func Run(ctx context.Context, out io.Writer, sess *pathfinder.Session, opts RunOptions) (domain.Result, error) {
	if err := opts.Validate(); err != nil {
		return domain.Result{}, err
	}
	if opts.Format == "" {
		opts.Format = FormatBoard
	}

	profile := Profile(out, opts.Plain)
	board := tui.NewBoard(out, profile)

	var observer domain.Observer
	if opts.Animate && opts.Format == FormatBoard {
		observer = func(ctx context.Context, _ domain.StepEvent) error {
			if err := board.Redraw(sess.Grid()); err != nil {
				return err
			}
			return pause(ctx, opts.Delay)
		}
	}

	res, err := sess.Run(ctx, observer)
	if err != nil {
		return res, err
	}

	switch opts.Format {
	case FormatMermaid:
		_, err = io.WriteString(out, graph.GenerateMermaid(sess.Grid(), res.Path, opts.Visited))
	case FormatJSON:
		plain := tui.NewBoard(io.Discard, termenv.Ascii).Render(sess.Grid())
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		err = enc.Encode(JSONReport{Result: res, Board: strings.Split(strings.TrimSuffix(plain, "\n"), "\n")})
	default:
		err = printBoard(out, board, sess, res, profile)
	}
	return res, err
}

func printBoard(out io.Writer, board *tui.Board, sess *pathfinder.Session, res domain.Result, profile termenv.Profile) error {
	if err := board.Redraw(sess.Grid()); err != nil {
		return err
	}
	render := tui.NewRenderer(profile == termenv.Ascii)
	report, err := render(tui.Report(res))
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	_, err = io.WriteString(out, report)
	return err
}

// pause waits d, returning early with ctx's error if it is cancelled.
func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
