package tui

import (
	"github.com/aretw0/pathfinder/pkg/domain"
	"github.com/muesli/termenv"
)

// Style is how one cell state is drawn.
type Style struct {
	Glyph string
	Color string // hex, used as background
}

// Palette maps cell states to styles. It is owned by the presenter; the
// engine never sees it.
type Palette map[domain.State]Style

// DefaultPalette keeps frontier and unvisited cells visually distinct.
func DefaultPalette() Palette {
	return Palette{
		domain.StateUnvisited: {Glyph: "·", Color: "#1f2937"},
		domain.StateFrontier:  {Glyph: "+", Color: "#f97316"},
		domain.StateVisited:   {Glyph: "∘", Color: "#eab308"},
		domain.StateObstacle:  {Glyph: "#", Color: "#1d4ed8"},
		domain.StateStart:     {Glyph: "S", Color: "#16a34a"},
		domain.StateFinish:    {Glyph: "F", Color: "#dc2626"},
		domain.StatePath:      {Glyph: "o", Color: "#14b8a6"},
	}
}

func (p Palette) style(s domain.State) Style {
	if st, ok := p[s]; ok {
		return st
	}
	return Style{Glyph: "?"}
}

// Paint renders one cell for the given color profile.
func (p Palette) Paint(profile termenv.Profile, s domain.State) string {
	st := p.style(s)
	out := profile.String(" " + st.Glyph + " ")
	if st.Color != "" {
		out = out.Background(profile.Color(st.Color)).Foreground(profile.Color("#f9fafb"))
	}
	return out.String()
}
