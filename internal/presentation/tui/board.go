package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/pathfinder/pkg/grid"
	"github.com/muesli/termenv"
)

// Board draws a grid to a terminal.
type Board struct {
	out     io.Writer
	profile termenv.Profile
	palette Palette
	drawn   int // lines written by the previous frame
}

// NewBoard creates a board writing to w with the given color profile.
// termenv.Ascii yields plain glyphs.
func NewBoard(w io.Writer, profile termenv.Profile) *Board {
	return &Board{out: w, profile: profile, palette: DefaultPalette()}
}

// WithPalette swaps the state styles.
func (b *Board) WithPalette(p Palette) *Board {
	b.palette = p
	return b
}

// Render returns one frame of g.
func (b *Board) Render(g *grid.Grid) string {
	var sb strings.Builder
	for i, c := range g.Cells() {
		sb.WriteString(b.palette.Paint(b.profile, c.State()))
		if (i+1)%g.Rows() == 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Draw writes a frame of g.
func (b *Board) Draw(g *grid.Grid) error {
	_, err := io.WriteString(b.out, b.Render(g))
	b.drawn = g.Rows()
	return err
}

// Redraw moves the cursor back over the previous frame before drawing, so
// repeated calls animate in place.
func (b *Board) Redraw(g *grid.Grid) error {
	if b.drawn > 0 && b.profile != termenv.Ascii {
		if _, err := fmt.Fprintf(b.out, "\x1b[%dA", b.drawn); err != nil {
			return err
		}
	}
	return b.Draw(g)
}
