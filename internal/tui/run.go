package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/tada/internal/app"
)

// Run starts the interactive list and blocks until the user quits or ctx is
// cancelled. The session holds the final state afterwards.
func Run(ctx context.Context, s *app.Session, opts Options, altScreen bool) error {
	popts := []tea.ProgramOption{tea.WithContext(ctx)}
	if altScreen {
		popts = append(popts, tea.WithAltScreen())
	}
	p := tea.NewProgram(New(s, opts), popts...)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}
