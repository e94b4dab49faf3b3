package cli

import (
	tea "github.com/charmbracelet/bubbletea"
)

// RunTUI starts the full-screen console and blocks until the user quits.
func RunTUI(app *App) error {
	p := tea.NewProgram(newAppModel(app), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
