package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/aretw0/pathfinder/pkg/domain"
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
// It follows the terminal background; plain selects the no-color style.
func NewRenderer(plain bool) func(string) (string, error) {
	style := glamour.WithAutoStyle()
	if plain {
		style = glamour.WithStandardStyle("notty")
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(80))
	if err != nil {
		return func(markdown string) (string, error) { return markdown, nil }
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// Report builds the markdown summary printed after a run.
func Report(res domain.Result) string {
	var sb strings.Builder
	sb.WriteString("## Search report\n\n")
	sb.WriteString("| Outcome | Steps | Expanded | Time |\n")
	sb.WriteString("|---|---|---|---|\n")
	fmt.Fprintf(&sb, "| %s | %d | %d | %s |\n\n", res.Outcome, res.StepCount, res.Expanded, res.Duration.Round(time.Microsecond))

	switch res.Outcome {
	case domain.OutcomeSucceeded:
		parts := make([]string, len(res.Path))
		for i, p := range res.Path {
			parts[i] = p.String()
		}
		fmt.Fprintf(&sb, "**Path:** `%s`\n", strings.Join(parts, " → "))
	case domain.OutcomeFailed:
		sb.WriteString("No path exists: the finish is cut off from the start.\n")
	case domain.OutcomeCancelled:
		sb.WriteString("Search cancelled before completion.\n")
	}
	return sb.String()
}
