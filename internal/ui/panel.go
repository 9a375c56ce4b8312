package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/Makepad-fr/tada/internal/model"
)

// Fpanel draws a framed box to w. Widths ignore ANSI sequences and count
// wide runes as two cells.
func Fpanel(w io.Writer, lines []string) {
	t := Current()
	maxw := 0
	for _, ln := range lines {
		if vis := ansi.StringWidth(ln); vis > maxw {
			maxw = vis
		}
	}
	pad := func(s string) string {
		if vis := ansi.StringWidth(s); vis < maxw {
			s += strings.Repeat(" ", maxw-vis)
		}
		return s
	}
	fmt.Fprintln(w, t.CornerTL+strings.Repeat(t.H, maxw+2)+t.CornerTR)
	for _, ln := range lines {
		fmt.Fprintln(w, t.V+" "+pad(ln)+" "+t.V)
	}
	fmt.Fprintln(w, t.CornerBL+strings.Repeat(t.H, maxw+2)+t.CornerBR)
}

const maxSummaryWidth = 80

// SummaryLines renders the items left at the end of a session.
func SummaryLines(items []model.Item) []string {
	t := Current()
	lines := []string{
		fmt.Sprintf("%s  %s %d", C(t.Title, "Todos"), C(t.Accent, "Total"), len(items)),
		"",
	}
	if len(items) == 0 {
		return append(lines, C(t.Muted, "no items"))
	}
	for i, it := range items {
		idx := fmt.Sprintf("%2d.", i+1)
		text := ansi.Truncate(it.Text, maxSummaryWidth, "...")
		lines = append(lines, fmt.Sprintf("%s %s %s", C(dim, idx), C(t.Muted, t.Bullet), text))
	}
	return lines
}
