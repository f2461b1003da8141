package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joao-arthur/libre-chess-sub000/board"
)

func Run(mode board.Mode, opts ...ModelOption) error {
	m, err := NewModel(mode, opts...)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
