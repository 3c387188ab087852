package chat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/niveshak/internal/models"
)

func TestTranscript(t *testing.T) {
	clock := time.Unix(1700000000, 0)
	tr := NewTranscript("hello", func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	})

	require.Equal(t, 1, tr.Len())
	assert.Equal(t, models.Assistant, tr.Last().Sender)

	first := tr.Append(models.User, "a")
	second := tr.Append(models.Assistant, "b")

	assert.Equal(t, 2, first.ID)
	assert.Equal(t, 3, second.ID)
	assert.True(t, second.Timestamp.After(first.Timestamp))
	assert.Equal(t, second, tr.Last())
	assert.Equal(t, []string{"hello", "a", "b"}, contents(tr.Messages()))
}

func TestTranscript_DefaultClock(t *testing.T) {
	before := time.Now()
	tr := NewTranscript("hello", nil)
	assert.False(t, tr.Last().Timestamp.Before(before))
}

func contents(messages []models.Message) []string {
	out := make([]string, len(messages))
	for i, m := range messages {
		out[i] = m.Content
	}
	return out
}
