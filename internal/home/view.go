// Package home is the landing page served at both home routes.
package home

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/niveshak/internal/router"
	"github.com/Rorical/niveshak/ui/components"
)

type View struct {
	nav       router.Navigator
	assistant string
	width     int
	height    int
}

func New(nav router.Navigator, assistant string) *View {
	return &View{nav: nav, assistant: assistant}
}

func (v *View) Init() tea.Cmd {
	return nil
}

func (v *View) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width, v.height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "c", "enter":
			return v, v.nav.Navigate(router.ChatPath)
		case "q":
			return v, tea.Quit
		}
	}
	return v, nil
}

func (v *View) View() string {
	return components.RenderHome(v.assistant, v.width, v.height)
}
