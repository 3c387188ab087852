package components

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/niveshak/internal/models"
	"github.com/Rorical/niveshak/ui/styles"
)

const timestampLayout = "15:04:05"

// NewMarkdownRenderer returns the renderer used for assistant replies.
func NewMarkdownRenderer(width int) (*glamour.TermRenderer, error) {
	return glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
}

// RenderMessages draws the transcript in order: user messages on the
// right, assistant messages on the left, each followed by its time.
// A nil renderer leaves assistant text as is.
func RenderMessages(messages []models.Message, width int, md *glamour.TermRenderer) string {
	if width <= 0 {
		width = 80
	}
	maxWidth := width * 4 / 5

	var b strings.Builder
	for _, msg := range messages {
		stamp := styles.TimestampStyle().Render(msg.Timestamp.Format(timestampLayout))

		if msg.FromUser() {
			bubble := styles.UserBubbleStyle(maxWidth).Render(msg.Content)
			block := lipgloss.JoinVertical(lipgloss.Right, bubble, stamp)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Right, block))
		} else {
			bubble := styles.AssistantBubbleStyle(maxWidth).Render(renderMarkdown(md, msg.Content))
			b.WriteString(lipgloss.JoinVertical(lipgloss.Left, bubble, stamp))
		}
		b.WriteString("\n\n")
	}

	return b.String()
}

// RenderTyping is shown below the transcript while a reply is pending.
func RenderTyping(assistant, spinner string) string {
	return styles.TypingStyle().Render(spinner + " " + assistant + " is typing...")
}

func renderMarkdown(md *glamour.TermRenderer, content string) string {
	if md == nil {
		return content
	}
	out, err := md.Render(content)
	if err != nil {
		return content
	}
	return strings.Trim(out, "\n")
}
