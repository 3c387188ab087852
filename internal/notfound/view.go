// Package notfound is the page shown for unknown routes. Its only action
// sends the user back to the fallback route.
package notfound

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/niveshak/internal/router"
	"github.com/Rorical/niveshak/ui/components"
)

type View struct {
	nav    router.Navigator
	width  int
	height int
}

func New(nav router.Navigator) *View {
	return &View{nav: nav}
}

// OnActivate navigates to the fallback route.
func (v *View) OnActivate() tea.Cmd {
	return v.nav.Navigate(router.FallbackPath)
}

func (v *View) Init() tea.Cmd {
	return nil
}

func (v *View) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width, v.height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter, tea.KeySpace:
			return v, v.OnActivate()
		}
	case tea.MouseMsg:
		if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionRelease {
			return v, v.OnActivate()
		}
	}
	return v, nil
}

func (v *View) View() string {
	return components.RenderNotFound(v.width, v.height)
}
