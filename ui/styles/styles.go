package styles

import "github.com/charmbracelet/lipgloss"

const (
	userColor      = lipgloss.Color("33")
	assistantColor = lipgloss.Color("245")
	accentColor    = lipgloss.Color("141")
	dangerColor    = lipgloss.Color("160")
)

func HeaderStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("255")).
		Background(lipgloss.Color("54")).
		Padding(0, 1).
		Width(width)
}

func TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true)
}

func SubtitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
}

func InputStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Padding(0, 1).
		Width(width - 4)
}

func StatusStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Background(lipgloss.Color("235")).
		Padding(0, 1).
		Width(width)
}

func ErrorStatusStyle(width int) lipgloss.Style {
	return StatusStyle(width).Foreground(dangerColor)
}

// UserBubbleStyle is right aligned by the caller.
func UserBubbleStyle(maxWidth int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("255")).
		Background(userColor).
		Padding(0, 1).
		MaxWidth(maxWidth)
}

func AssistantBubbleStyle(maxWidth int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(assistantColor).
		Padding(0, 1).
		MaxWidth(maxWidth)
}

func TimestampStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("244")).
		Faint(true)
}

func TypingStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 1)
}

func SpinnerStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(accentColor)
}

func BigDigitStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1)
}

func AlertStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(dangerColor).
		Bold(true)
}

func ButtonStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("255")).
		Background(lipgloss.Color("236")).
		Padding(0, 4).
		MarginTop(1)
}

func HintStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
}
