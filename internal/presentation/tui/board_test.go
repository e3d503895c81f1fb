package tui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/pathfinder/pkg/domain"
	"github.com/aretw0/pathfinder/pkg/grid"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard_RenderAscii(t *testing.T) {
	g, err := grid.New(3, 0)
	require.NoError(t, err)
	g.SetStart(domain.Pos(0, 0))
	g.SetFinish(domain.Pos(2, 2))
	g.SetObstacle(domain.Pos(1, 1))

	out := NewBoard(&bytes.Buffer{}, termenv.Ascii).Render(g)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")

	require.Len(t, lines, 3)
	assert.Equal(t, " S  ·  · ", lines[0])
	assert.Equal(t, " ·  #  · ", lines[1])
	assert.Equal(t, " ·  ·  F ", lines[2])
}

func TestBoard_RedrawMovesCursorOnColorTerminals(t *testing.T) {
	g, err := grid.New(2, 0)
	require.NoError(t, err)

	var buf bytes.Buffer
	b := NewBoard(&buf, termenv.ANSI256)
	require.NoError(t, b.Redraw(g))
	assert.NotContains(t, buf.String(), "\x1b[2A", "nothing to move over on the first frame")

	buf.Reset()
	require.NoError(t, b.Redraw(g))
	assert.True(t, strings.HasPrefix(buf.String(), "\x1b[2A"))
}

func TestPalette_DistinguishesFrontierFromUnvisited(t *testing.T) {
	p := DefaultPalette()
	assert.NotEqual(t, p[domain.StateUnvisited], p[domain.StateFrontier])
	assert.Equal(t, " ? ", p.Paint(termenv.Ascii, domain.State(99)))
}

func TestReport(t *testing.T) {
	res := domain.Result{
		Outcome:   domain.OutcomeSucceeded,
		Path:      []domain.Position{domain.Pos(0, 0), domain.Pos(0, 1)},
		StepCount: 1,
		Expanded:  2,
		Duration:  time.Millisecond,
	}
	md := Report(res)
	assert.Contains(t, md, "| succeeded | 1 | 2 |")
	assert.Contains(t, md, "(0,0) → (0,1)")

	assert.Contains(t, Report(domain.Result{Outcome: domain.OutcomeFailed}), "No path exists")
	assert.Contains(t, Report(domain.Result{Outcome: domain.OutcomeCancelled}), "cancelled")
}
