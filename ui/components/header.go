package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/niveshak/ui/styles"
)

func RenderHeader(assistant string, width int) string {
	title := styles.TitleStyle().Render(assistant + " ChatBot")
	subtitle := styles.SubtitleStyle().Render("Your intelligent assistant")
	return styles.HeaderStyle(width).Render(lipgloss.JoinVertical(lipgloss.Left, title, subtitle))
}
