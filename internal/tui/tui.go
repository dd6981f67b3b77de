package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"marlow-cli/internal/store"
)

// Run starts the interactive TUI over the given store. The TUI is a
// read-only surface: mutations go through the CLI, and `r` reloads the
// snapshot so changes made in another terminal show up.
func Run(s store.Store, db *store.DB) error {
	p := tea.NewProgram(newAppModel(s, db), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
