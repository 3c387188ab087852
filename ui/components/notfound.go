package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/niveshak/ui/styles"
)

const (
	NotFoundTitle  = "Oops! You're lost."
	NotFoundBody   = "The page you are looking for was not found."
	NotFoundButton = "Back to Home"
)

// RenderNotFound centers the 404 page in width x height. Zero sizes skip
// the placement.
func RenderNotFound(width, height int) string {
	digits := lipgloss.JoinHorizontal(lipgloss.Center,
		styles.BigDigitStyle().Render("4"),
		styles.AlertStyle().Render("(!)"),
		styles.BigDigitStyle().Render("4"),
	)

	body := lipgloss.JoinVertical(lipgloss.Center,
		digits,
		"",
		styles.TitleStyle().Render(NotFoundTitle),
		NotFoundBody,
		styles.ButtonStyle().Render(NotFoundButton),
		styles.HintStyle().Render("enter or click to go back"),
	)

	if width <= 0 || height <= 0 {
		return body
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

// RenderHome is the landing page.
func RenderHome(assistant string, width, height int) string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		styles.TitleStyle().Render("Welcome"),
		"",
		styles.ButtonStyle().Render("Chat with "+assistant),
		styles.HintStyle().Render("c or enter to chat, q to quit"),
	)

	if width <= 0 || height <= 0 {
		return body
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}
