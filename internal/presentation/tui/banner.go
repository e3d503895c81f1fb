package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the pathfinder banner and version.
func PrintBanner(w io.Writer, profile termenv.Profile, version string) {
	// Same hues as the default palette: start, path, finish.
	lines := []struct{ text, color string }{
		{"  ┌─┐┌─┐┌┬┐┬ ┬", "#16a34a"},
		{"  ├─┘├─┤ │ ├─┤  finder", "#14b8a6"},
		{"  ┴  ┴ ┴ ┴ ┴ ┴", "#dc2626"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, profile.String(l.text).Foreground(profile.Color(l.color)))
	}
	fmt.Fprintf(w, "  v%s\n\n", version)
}
