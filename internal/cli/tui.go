package cli

import (
	tea "github.com/charmbracelet/bubbletea"
)

// RunTUI binds a card table to the tracker and runs the interactive board.
// The session file, when set, is saved once on exit.
func RunTUI(app *App) error {
	cards := NewCardTable()
	app.Tracker.SetView(cards)

	program := tea.NewProgram(newAppModel(app, cards), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}
	return app.saveSession()
}
