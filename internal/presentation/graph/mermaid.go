package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/pathfinder/pkg/domain"
	"github.com/aretw0/pathfinder/pkg/grid"
)

// GenerateMermaid produces a Mermaid flowchart of the route found on g.
// Path cells are chained left to right; start and finish get round shapes.
// When withVisited is set, the cells the search expanded are listed as
// detached nodes and styled so the explored area is visible next to the route.
func GenerateMermaid(g *grid.Grid, path []domain.Position, withVisited bool) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	for i, p := range path {
		opener, closer := "[", "]"
		if i == 0 || i == len(path)-1 {
			opener, closer = "((", "))" // Circle
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%d,%d\"%s\n", nodeID(p), opener, p.Row, p.Col, closer))
	}
	for i := 1; i < len(path); i++ {
		sb.WriteString(fmt.Sprintf("    %s --> %s\n", nodeID(path[i-1]), nodeID(path[i])))
	}

	if withVisited {
		sb.WriteString("\n    %% Explored cells\n")
		sb.WriteString("    classDef visited fill:#fef9c3,stroke:#ca8a04,color:#000;\n")
		sb.WriteString("    classDef route fill:#ccfbf1,stroke:#0f766e,stroke-width:2px,color:#000;\n")

		onPath := make(map[domain.Position]bool, len(path))
		for _, p := range path {
			onPath[p] = true
		}
		for _, c := range g.Cells() {
			p := c.Position()
			if c.State() != domain.StateVisited || onPath[p] {
				continue
			}
			sb.WriteString(fmt.Sprintf("    %s[\"%d,%d\"]\n", nodeID(p), p.Row, p.Col))
			sb.WriteString(fmt.Sprintf("    class %s visited;\n", nodeID(p)))
		}
		for _, p := range path {
			sb.WriteString(fmt.Sprintf("    class %s route;\n", nodeID(p)))
		}
	}

	return sb.String()
}

func nodeID(p domain.Position) string {
	return fmt.Sprintf("c%d_%d", p.Row, p.Col)
}
