package tui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles holds the lipgloss styles for one theme.
type Styles struct {
	Title    lipgloss.Style
	Accent   lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style
	Editing  lipgloss.Style
	Help     lipgloss.Style
	Bar      lipgloss.Style
	Panel    lipgloss.Style

	Cursor string
	Pencil string
}

// NewStyles returns the styles for a theme name (classic, neon or mono).
func NewStyles(theme string) Styles {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1)

	s := Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("55")).Padding(0, 2),
		Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Muted:    lipgloss.NewStyle().Faint(true),
		Selected: lipgloss.NewStyle().Bold(true).Reverse(true),
		Editing:  lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Help:     lipgloss.NewStyle().Faint(true),
		Bar:      border,
		Panel:    border,
		Cursor:   "> ",
		Pencil:   "✎ ",
	}

	switch theme {
	case "neon":
		s.Title = s.Title.Background(lipgloss.Color("93"))
		s.Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("51"))
		s.Editing = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
		s.Bar = s.Bar.BorderForeground(lipgloss.Color("93"))
		s.Panel = s.Panel.BorderForeground(lipgloss.Color("51"))
	case "mono":
		r := lipgloss.NewRenderer(io.Discard)
		r.SetColorProfile(termenv.Ascii)
		s.Title = r.NewStyle().Bold(true)
		s.Accent = r.NewStyle()
		s.Muted = r.NewStyle()
		s.Selected = r.NewStyle().Bold(true)
		s.Editing = r.NewStyle()
		s.Help = r.NewStyle()
		s.Bar = r.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
		s.Panel = s.Bar
		s.Pencil = "* "
	}
	return s
}
