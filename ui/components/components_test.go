package components

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/niveshak/internal/models"
)

func TestRenderMessages_OrderAndTimestamps(t *testing.T) {
	at := time.Date(2024, 3, 1, 9, 30, 15, 0, time.Local)
	messages := []models.Message{
		{ID: 1, Sender: models.Assistant, Content: "Hi there!", Timestamp: at},
		{ID: 2, Sender: models.User, Content: "Hello", Timestamp: at.Add(time.Minute)},
	}

	out := RenderMessages(messages, 60, nil)

	first := strings.Index(out, "Hi there!")
	second := strings.Index(out, "Hello")
	require.NotEqual(t, -1, first)
	require.NotEqual(t, -1, second)
	assert.Less(t, first, second, "insertion order is display order")
	assert.Contains(t, out, "09:30:15")
	assert.Contains(t, out, "09:31:15")
}

func TestRenderMessages_UserRightAligned(t *testing.T) {
	out := RenderMessages([]models.Message{{ID: 2, Sender: models.User, Content: "Hello"}}, 40, nil)

	line := strings.Split(out, "\n")[0]
	assert.True(t, strings.HasPrefix(line, " "), "user bubble must be padded from the left: %q", line)
}

func TestRenderMessages_Markdown(t *testing.T) {
	md, err := NewMarkdownRenderer(60)
	require.NoError(t, err)

	out := RenderMessages([]models.Message{{ID: 1, Sender: models.Assistant, Content: "**bold** move"}}, 60, md)
	assert.Contains(t, out, "bold")
	assert.NotContains(t, out, "**")
}

func TestRenderTyping(t *testing.T) {
	assert.Contains(t, RenderTyping("Niveshak", "*"), "Niveshak is typing...")
}

func TestRenderHeader(t *testing.T) {
	out := RenderHeader("Niveshak", 50)
	assert.Contains(t, out, "Niveshak ChatBot")
	assert.Contains(t, out, "Your intelligent assistant")
}

func TestRenderNotFound(t *testing.T) {
	for _, size := range [][2]int{{0, 0}, {80, 24}} {
		out := RenderNotFound(size[0], size[1])
		assert.Contains(t, out, NotFoundTitle)
		assert.Contains(t, out, NotFoundBody)
		assert.Contains(t, out, NotFoundButton)
	}
}

func TestRenderHome(t *testing.T) {
	assert.Contains(t, RenderHome("Niveshak", 0, 0), "Chat with Niveshak")
}
