package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/niveshak/internal/dispatcher"
	"github.com/Rorical/niveshak/internal/router"
)

// AppModel is the root Bubble Tea model. It keeps the core event listener
// running and hands everything else to the router.
type AppModel struct {
	router     *router.Router
	dispatcher *dispatcher.EventDispatcher
	startPath  string
}

func (m *AppModel) Init() tea.Cmd {
	return tea.Batch(
		m.router.Navigate(m.startPath),
		m.dispatcher.ListenForCoreEvents(),
	)
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Core events go to the mounted view; keep listening for the next one
	if _, ok := msg.(dispatcher.CoreEventMsg); ok {
		_, cmd := m.router.Update(msg)
		return m, tea.Batch(cmd, m.dispatcher.ListenForCoreEvents())
	}

	_, cmd := m.router.Update(msg)
	return m, cmd
}

func (m *AppModel) View() string {
	return m.router.View()
}
