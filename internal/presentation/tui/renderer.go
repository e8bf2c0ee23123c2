package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"

	"github.com/aretw0/hanoi/pkg/domain"
)

// Disk colors cycle through a warm-to-cool palette, smallest first.
var diskPalette = []string{
	"#fb7185", "#f472b6", "#e879f9", "#c084fc", "#a78bfa",
	"#818cf8", "#60a5fa", "#38bdf8", "#22d3ee", "#2dd4bf",
}

// RenderBoard draws the three pegs side by side, one row per disk slot,
// widest disk at the bottom. Disks render as colored bars sized by rank.
func RenderBoard(state domain.State) string {
	p := termenv.ColorProfile()
	n := state.Disks()
	colWidth := 2*n + 3

	pegs := [domain.PegCount][]int{}
	for peg := domain.PegA; peg < domain.PegCount; peg++ {
		pegs[peg] = state.Peg(peg)
	}

	var sb strings.Builder
	for row := n - 1; row >= 0; row-- {
		for peg := domain.PegA; peg < domain.PegCount; peg++ {
			if row < len(pegs[peg]) {
				sb.WriteString(diskCell(p, pegs[peg][row], colWidth))
			} else {
				sb.WriteString(center("│", colWidth))
			}
		}
		sb.WriteByte('\n')
	}

	// Base line and peg labels.
	sb.WriteString(strings.Repeat("─", colWidth*domain.PegCount))
	sb.WriteByte('\n')
	for peg := domain.PegA; peg < domain.PegCount; peg++ {
		sb.WriteString(center(peg.String(), colWidth))
	}
	sb.WriteByte('\n')
	return sb.String()
}

func diskCell(p termenv.Profile, rank, width int) string {
	bar := strings.Repeat("█", 2*rank+1)
	colored := termenv.String(bar).Foreground(p.Color(diskPalette[(rank-1)%len(diskPalette)]))
	pad := width - (2*rank + 1)
	left := pad / 2
	return strings.Repeat(" ", left) + colored.String() + strings.Repeat(" ", pad-left)
}

func center(s string, width int) string {
	pad := width - len([]rune(s))
	if pad < 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

// RenderMove formats one move line for playback output.
func RenderMove(step int, m domain.Move) string {
	return fmt.Sprintf("%4d. %s", step, m)
}

// NewMarkdownRenderer returns a function that renders markdown using glamour.
// Used by the explain command; auto-detects light/dark backgrounds.
func NewMarkdownRenderer() func(string) (string, error) {
	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
	)
	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}
