package cmd

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/uhey22e/matrix-rain/internal/tui"
)

func defaultRunTUI(cfg tui.Config) error {
	p := tea.NewProgram(
		tui.NewModel(cfg),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
