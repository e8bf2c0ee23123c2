package tui_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/hanoi/internal/presentation/tui"
	"github.com/aretw0/hanoi/pkg/domain"
)

func TestRenderBoard(t *testing.T) {
	state, err := domain.InitialState(3, domain.PegA)
	require.NoError(t, err)

	out := tui.RenderBoard(state)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	// Three disk rows, a base line, a label row.
	require.Len(t, lines, 5)

	// All disks on A: pegs B and C show only their poles.
	for _, row := range lines[:3] {
		assert.Equal(t, 2, strings.Count(row, "│"), "row %q", row)
	}

	assert.Contains(t, lines[3], "─")
	labels := strings.Fields(lines[4])
	assert.Equal(t, []string{"A", "B", "C"}, labels)
}

func TestRenderBoard_DiskWidths(t *testing.T) {
	state, err := domain.InitialState(2, domain.PegA)
	require.NoError(t, err)

	out := tui.RenderBoard(state)
	lines := strings.Split(out, "\n")

	// Rank 1 on top (one block), rank 2 below (three blocks).
	assert.Equal(t, 1, strings.Count(lines[0], "█"))
	assert.Equal(t, 3, strings.Count(lines[1], "█"))
}

func TestRenderMove(t *testing.T) {
	got := tui.RenderMove(3, domain.Move{From: domain.PegA, To: domain.PegC})
	assert.Equal(t, "   3. A->C", got)
}

func TestNewMarkdownRenderer(t *testing.T) {
	render := tui.NewMarkdownRenderer()
	out, err := render("# How the solve works")
	require.NoError(t, err)
	assert.Contains(t, out, "How the solve works")
}
